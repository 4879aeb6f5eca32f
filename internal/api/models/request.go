package models

// AnalyzeRequest is the request body for running an analysis.
type AnalyzeRequest struct {
	Rows    []RowInput     `json:"rows" binding:"required"`
	Config  AnalysisConfig `json:"config,omitempty"`
	Options AnalyzeOptions `json:"options,omitempty"`
}

// RowInput is one raw meter row. Channel fields stay text so the
// normalizer's non-numeric-to-zero coercion applies uniformly.
type RowInput struct {
	Timestamp string `json:"timestamp" binding:"required"`
	RateA     string `json:"rate_a,omitempty"`
	RateB     string `json:"rate_b,omitempty"`
	RateC     string `json:"rate_c,omitempty"`
}

// AnalysisConfig carries run parameters; zero fields fall back to the
// tool defaults (battery_size_kwh excepted: zero means auto-size).
type AnalysisConfig struct {
	SolarCapacityMW float64 `json:"solar_capacity_mw,omitempty"`
	SunHours        float64 `json:"sun_hours,omitempty"`
	ThresholdW      float64 `json:"threshold_w,omitempty"`
	BatterySizeKWh  float64 `json:"battery_size_kwh,omitempty"`
}

// AnalyzeOptions contains optional analysis parameters.
type AnalyzeOptions struct {
	LimitRows     int  `json:"limit_rows,omitempty"`     // 0 = all
	IncludeDays   bool `json:"include_days,omitempty"`   // default: false
	IncludeSeries bool `json:"include_series,omitempty"` // per-day arrays, implies days
}
