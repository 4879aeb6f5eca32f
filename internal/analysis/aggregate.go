package analysis

// Totals rolls a set of day records into sums and per-day averages.
type Totals struct {
	Days int

	ConsumptionKWh float64
	SolarKWh       float64
	ExcessKWh      float64
	DeficitKWh     float64
	DischargeKWh   float64

	AvgConsumptionKWh    float64
	AvgSolarKWh          float64
	AvgOptimalBatteryKWh float64
	AvgDischargeKWh      float64
}

// Summary is the whole-run aggregate plus the most-recent-week window.
type Summary struct {
	Overall Totals
	// LastWeek covers the most recent 7 calendar dates; with fewer than
	// 7 dates it equals Overall.
	LastWeek Totals
}

// Aggregate rolls per-day records up. Records are expected in date
// order, as the engine produces them. An empty input yields zero-valued
// totals with Days == 0 rather than a division by zero.
func Aggregate(records []DayRecord) Summary {
	week := records
	if len(records) > 7 {
		week = records[len(records)-7:]
	}
	return Summary{
		Overall:  totals(records),
		LastWeek: totals(week),
	}
}

func totals(records []DayRecord) Totals {
	t := Totals{Days: len(records)}
	if len(records) == 0 {
		return t
	}

	optimalSum := 0.0
	for _, r := range records {
		t.ConsumptionKWh += r.ConsumptionKWh
		t.SolarKWh += r.SolarKWh
		t.ExcessKWh += r.TotalExcessKWh
		t.DeficitKWh += r.TotalDeficitKWh
		t.DischargeKWh += r.Dispatch.DischargeKWh
		optimalSum += r.OptimalBatteryKWh
	}

	n := float64(len(records))
	t.AvgConsumptionKWh = t.ConsumptionKWh / n
	t.AvgSolarKWh = t.SolarKWh / n
	t.AvgOptimalBatteryKWh = optimalSum / n
	t.AvgDischargeKWh = t.DischargeKWh / n
	return t
}
