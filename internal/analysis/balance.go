// Package analysis computes per-day energy balances and multi-day
// rollups from a normalized series and its synthesized solar profile.
package analysis

import (
	"time"

	"solar-analyzer/internal/dispatch"
	"solar-analyzer/internal/model"
)

// autoSizeFactor sizes the recommended battery below the worst-case
// swing; the last 20% of the envelope is rarely worth the capacity.
const autoSizeFactor = 0.8

// DayRecord is one date's computed balance. Created once per run per
// date and immutable afterwards.
type DayRecord struct {
	Date time.Time

	// PowerDifference is solar minus load per sample, kW.
	PowerDifference []float64
	// CumulativeBalance is the running trapezoidal integral of
	// PowerDifference, kWh; starts at zero.
	CumulativeBalance []float64

	MaxExcessKWh  float64
	MaxDeficitKWh float64
	// BatterySizeNeededKWh is the max absolute swing of the cumulative
	// balance.
	BatterySizeNeededKWh float64
	// OptimalBatteryKWh is the configured fixed size when set, else 80%
	// of the needed size.
	OptimalBatteryKWh float64

	TotalExcessKWh  float64
	TotalDeficitKWh float64
	NetBalanceKWh   float64

	ConsumptionKWh float64
	SolarKWh       float64

	// Extended solar metrics.
	SolarDirectUseKWh      float64
	SolarToBatteryKWh      float64
	EveningLoadKWh         float64
	SolarAboveThresholdKWh float64

	Dispatch dispatch.Result
}

// ComputeDay builds the balance record for one date. samples and
// solarKW must be the date's slices, index-aligned. Pure arithmetic;
// validation happened upstream.
func ComputeDay(date time.Time, samples []model.Sample, solarKW []float64, params model.AnalysisParams) DayRecord {
	n := len(samples)
	diff := make([]float64, n)
	for i := 0; i < n; i++ {
		diff[i] = solarKW[i] - samples[i].Consumption
	}

	cum := CumulativeTrapezoid(diff, model.StepHours)
	maxExcess, maxDeficit := 0.0, 0.0
	if n > 0 {
		maxExcess, maxDeficit = cum[0], cum[0]
		for _, v := range cum {
			if v > maxExcess {
				maxExcess = v
			}
			if v < maxDeficit {
				maxDeficit = v
			}
		}
	}

	needed := abs(maxExcess)
	if abs(maxDeficit) > needed {
		needed = abs(maxDeficit)
	}
	optimal := needed * autoSizeFactor
	if params.BatterySizeKWh > 0 {
		optimal = params.BatterySizeKWh
	}

	excess := Trapezoid(positive(diff), model.StepHours)
	deficit := Trapezoid(negated(diff), model.StepHours)

	load := make([]float64, n)
	for i, s := range samples {
		load[i] = s.Consumption
	}

	rec := DayRecord{
		Date:                 date,
		PowerDifference:      diff,
		CumulativeBalance:    cum,
		MaxExcessKWh:         maxExcess,
		MaxDeficitKWh:        maxDeficit,
		BatterySizeNeededKWh: needed,
		OptimalBatteryKWh:    optimal,
		TotalExcessKWh:       excess,
		TotalDeficitKWh:      deficit,
		NetBalanceKWh:        excess - deficit,
		ConsumptionKWh:       Trapezoid(load, model.StepHours),
		SolarKWh:             Trapezoid(solarKW, model.StepHours),
		SolarToBatteryKWh:    excess,
	}

	thresholdKW := params.ThresholdKW()
	for i, s := range samples {
		if solarKW[i] < s.Consumption {
			rec.SolarDirectUseKWh += solarKW[i] * model.StepHours
		} else {
			rec.SolarDirectUseKWh += s.Consumption * model.StepHours
		}
		if dispatch.InWindow(s) {
			rec.EveningLoadKWh += s.Consumption * model.StepHours
		}
		if solarKW[i] > thresholdKW {
			rec.SolarAboveThresholdKWh += (solarKW[i] - thresholdKW) * model.StepHours
		}
	}

	rec.Dispatch = dispatch.Simulate(samples, rec.SolarToBatteryKWh, params)
	return rec
}

// Trapezoid integrates a sampled sequence with fixed spacing dx.
func Trapezoid(values []float64, dx float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(values); i++ {
		sum += 0.5 * (values[i-1] + values[i]) * dx
	}
	return sum
}

// CumulativeTrapezoid returns the running integral, same length as the
// input, with the first element zero.
func CumulativeTrapezoid(values []float64, dx float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		out[i] = out[i-1] + 0.5*(values[i-1]+values[i])*dx
	}
	return out
}

func positive(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v > 0 {
			out[i] = v
		}
	}
	return out
}

func negated(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v < 0 {
			out[i] = -v
		}
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
