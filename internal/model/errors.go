package model

import "fmt"

// DataError means ingestion produced no usable rows (every timestamp
// unparseable, or the input was empty after filtering).
type DataError struct {
	Reason  string
	Dropped int
}

func (e *DataError) Error() string {
	if e.Dropped > 0 {
		return fmt.Sprintf("data error: %s (%d rows dropped)", e.Reason, e.Dropped)
	}
	return "data error: " + e.Reason
}

// ConfigError reports an invalid analysis parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s %s", e.Field, e.Reason)
}

// ConvergenceError means the sigma solver could not bound the target
// energy within its doubling budget. This is a hard failure; the curve
// is never silently approximated.
type ConvergenceError struct {
	TargetKWh float64
	UpperKWh  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("convergence error: target %.1f kWh not bounded (reached %.1f kWh at max width)",
		e.TargetKWh, e.UpperKWh)
}
