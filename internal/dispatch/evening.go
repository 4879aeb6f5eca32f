// Package dispatch simulates threshold-based battery discharge over the
// evening load window.
package dispatch

import (
	"solar-analyzer/internal/model"
)

// Evening window, hours of day: [start, end).
const (
	WindowStartHour = 16
	WindowEndHour   = 22
)

// Result captures one day's evening dispatch.
type Result struct {
	// AvailableKWh is the stored energy usable for discharge this day:
	// the day's excess solar energy, capped at the configured battery
	// size when one is set.
	AvailableKWh float64

	// DischargePowerKW is the per-sample discharge, one entry per
	// evening-window sample, in kW.
	DischargePowerKW []float64
	// RemainingKWh traces the battery energy left after each window
	// sample. Non-increasing, never negative.
	RemainingKWh []float64

	// DischargeKWh is the total energy discharged.
	DischargeKWh float64
	// LoadAboveThresholdKWh is the evening load energy above threshold,
	// before any battery contribution.
	LoadAboveThresholdKWh float64
	// EffectiveLoadKWh is the evening load energy after the battery
	// shaves the above-threshold portion it can cover.
	EffectiveLoadKWh float64
}

// InWindow reports whether a sample falls in the evening window.
func InWindow(s model.Sample) bool {
	h := s.Timestamp.Hour()
	return h >= WindowStartHour && h < WindowEndHour
}

// Simulate folds the day's samples through the discharge state machine.
// State is the remaining battery energy, initialized from the day's
// excess solar (solarToBatteryKWh) and the configured size cap. Samples
// outside the evening window are ignored.
//
// Per window sample: load above threshold defines an energy need for the
// quarter hour; the battery covers min(remaining, need); the effective
// load is the threshold plus whatever excess stayed uncovered.
func Simulate(samples []model.Sample, solarToBatteryKWh float64, params model.AnalysisParams) Result {
	available := solarToBatteryKWh
	if params.BatterySizeKWh > 0 && available > params.BatterySizeKWh {
		available = params.BatterySizeKWh
	}

	res := Result{
		AvailableKWh:     available,
		DischargePowerKW: make([]float64, 0, len(samples)),
		RemainingKWh:     make([]float64, 0, len(samples)),
	}

	thresholdKW := params.ThresholdKW()
	remaining := available

	for _, s := range samples {
		if !InWindow(s) {
			continue
		}

		dischargeKW := 0.0
		effectiveKW := s.Consumption
		if s.Consumption > thresholdKW {
			excessKW := s.Consumption - thresholdKW
			res.LoadAboveThresholdKWh += excessKW * model.StepHours

			neededKWh := excessKW * model.StepHours
			dischargedKWh := neededKWh
			if remaining < dischargedKWh {
				dischargedKWh = remaining
			}
			remaining -= dischargedKWh
			res.DischargeKWh += dischargedKWh

			dischargeKW = dischargedKWh / model.StepHours
			uncoveredKW := excessKW - dischargeKW
			if uncoveredKW < 0 {
				uncoveredKW = 0
			}
			effectiveKW = thresholdKW + uncoveredKW
		}
		res.EffectiveLoadKWh += effectiveKW * model.StepHours

		res.DischargePowerKW = append(res.DischargePowerKW, dischargeKW)
		res.RemainingKWh = append(res.RemainingKWh, remaining)
	}

	return res
}
