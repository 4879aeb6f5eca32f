package model

// AnalysisParams defines one analysis run.
// Units:
// - SolarCapacityMW: MWp of the array
// - SunHours: average full-sun hours per day, (0, 12]
// - ThresholdW: evening discharge threshold in W
// - BatterySizeKWh: fixed battery size in kWh; 0 means auto-size per day
//
// A params value is immutable for the duration of a run; every pipeline
// stage receives it explicitly rather than reading shared state.
type AnalysisParams struct {
	SolarCapacityMW float64
	SunHours        float64
	ThresholdW      float64
	BatterySizeKWh  float64
}

// DefaultParams mirrors the tool's interactive defaults.
func DefaultParams() AnalysisParams {
	return AnalysisParams{
		SolarCapacityMW: 3.0,
		SunHours:        4.0,
		ThresholdW:      1500.0,
		BatterySizeKWh:  0,
	}
}

func (p AnalysisParams) Validate() error {
	if p.SolarCapacityMW <= 0 {
		return &ConfigError{Field: "solar_capacity_mw", Reason: "must be > 0"}
	}
	if p.SunHours <= 0 || p.SunHours > 12 {
		return &ConfigError{Field: "sun_hours", Reason: "must be in (0, 12]"}
	}
	if p.ThresholdW < 0 {
		return &ConfigError{Field: "threshold_w", Reason: "must be >= 0"}
	}
	if p.BatterySizeKWh < 0 {
		return &ConfigError{Field: "battery_size_kwh", Reason: "must be >= 0 (0 = auto-size)"}
	}
	return nil
}

// SolarCapacityKW converts the configured array size to kW, the unit the
// pipeline computes in.
func (p AnalysisParams) SolarCapacityKW() float64 {
	return p.SolarCapacityMW * 1000.0
}

// ThresholdKW converts the discharge threshold to kW.
func (p AnalysisParams) ThresholdKW() float64 {
	return p.ThresholdW / 1000.0
}
