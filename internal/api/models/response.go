package models

// AnalyzeResponse is the response from an analysis run.
type AnalyzeResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	DroppedRows int       `json:"dropped_rows"`
	Curve       CurveInfo `json:"curve"`
	Summary     Summary   `json:"summary"`
	Days        []DayRow  `json:"days,omitempty"`
}

// CurveInfo describes the solved generation model.
type CurveInfo struct {
	CapacityKW float64 `json:"capacity_kw"`
	TargetKWh  float64 `json:"target_kwh"`
	SigmaHours float64 `json:"sigma_hours"`
	PeakKW     float64 `json:"peak_kw"`
}

// Summary aggregates the run.
type Summary struct {
	Overall  Totals `json:"overall"`
	LastWeek Totals `json:"last_week"`
}

// Totals is one rollup window.
type Totals struct {
	Days                 int     `json:"days"`
	ConsumptionKWh       float64 `json:"consumption_kwh"`
	SolarKWh             float64 `json:"solar_kwh"`
	ExcessKWh            float64 `json:"excess_kwh"`
	DeficitKWh           float64 `json:"deficit_kwh"`
	DischargeKWh         float64 `json:"discharge_kwh"`
	AvgConsumptionKWh    float64 `json:"avg_consumption_kwh"`
	AvgSolarKWh          float64 `json:"avg_solar_kwh"`
	AvgOptimalBatteryKWh float64 `json:"avg_optimal_battery_kwh"`
	AvgDischargeKWh      float64 `json:"avg_discharge_kwh"`
}

// DayRow is one analyzed day. Series arrays are included only when the
// request asked for them; rendering collaborators consume those.
type DayRow struct {
	Date string `json:"date"`

	ConsumptionKWh       float64 `json:"consumption_kwh"`
	SolarKWh             float64 `json:"solar_kwh"`
	ExcessKWh            float64 `json:"excess_kwh"`
	DeficitKWh           float64 `json:"deficit_kwh"`
	NetBalanceKWh        float64 `json:"net_balance_kwh"`
	MaxExcessKWh         float64 `json:"max_excess_kwh"`
	MaxDeficitKWh        float64 `json:"max_deficit_kwh"`
	BatterySizeNeededKWh float64 `json:"battery_needed_kwh"`
	OptimalBatteryKWh    float64 `json:"battery_optimal_kwh"`

	SolarDirectUseKWh      float64 `json:"solar_direct_use_kwh"`
	SolarToBatteryKWh      float64 `json:"solar_to_battery_kwh"`
	EveningLoadKWh         float64 `json:"evening_load_kwh"`
	SolarAboveThresholdKWh float64 `json:"solar_above_threshold_kwh"`

	Dispatch DispatchRow `json:"dispatch"`

	ConsumptionKW     []float64 `json:"consumption_kw,omitempty"`
	SolarKW           []float64 `json:"solar_kw,omitempty"`
	CumulativeBalance []float64 `json:"cumulative_balance_kwh,omitempty"`
}

// DispatchRow is one day's evening dispatch outcome.
type DispatchRow struct {
	AvailableKWh          float64   `json:"available_kwh"`
	DischargeKWh          float64   `json:"discharge_kwh"`
	LoadAboveThresholdKWh float64   `json:"load_above_threshold_kwh"`
	EffectiveLoadKWh      float64   `json:"effective_load_kwh"`
	DischargePowerKW      []float64 `json:"discharge_power_kw,omitempty"`
	RemainingKWh          []float64 `json:"remaining_kwh,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
