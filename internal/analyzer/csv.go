package analyzer

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteDailyCSV writes one row per analyzed day. This is the primary
// textual artifact for "what happened" in a run.
func WriteDailyCSV(path string, result *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"date",
		"consumption_kwh",
		"solar_kwh",
		"excess_kwh",
		"deficit_kwh",
		"net_balance_kwh",
		"max_excess_kwh",
		"max_deficit_kwh",
		"battery_needed_kwh",
		"battery_optimal_kwh",
		"solar_direct_use_kwh",
		"evening_load_kwh",
		"evening_load_after_battery_kwh",
		"evening_load_above_threshold_kwh",
		"evening_discharge_kwh",
		"battery_available_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range result.Days {
		row := []string{
			d.Date.Format("2006-01-02"),
			fmtFloat(d.ConsumptionKWh),
			fmtFloat(d.SolarKWh),
			fmtFloat(d.TotalExcessKWh),
			fmtFloat(d.TotalDeficitKWh),
			fmtFloat(d.NetBalanceKWh),
			fmtFloat(d.MaxExcessKWh),
			fmtFloat(d.MaxDeficitKWh),
			fmtFloat(d.BatterySizeNeededKWh),
			fmtFloat(d.OptimalBatteryKWh),
			fmtFloat(d.SolarDirectUseKWh),
			fmtFloat(d.EveningLoadKWh),
			fmtFloat(d.Dispatch.EffectiveLoadKWh),
			fmtFloat(d.Dispatch.LoadAboveThresholdKWh),
			fmtFloat(d.Dispatch.DischargeKWh),
			fmtFloat(d.Dispatch.AvailableKWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}
