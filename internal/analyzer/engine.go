// Package analyzer orchestrates the analysis pipeline: normalize, fit
// the solar curve, then compute balance and dispatch per date.
package analyzer

import (
	"solar-analyzer/internal/analysis"
	"solar-analyzer/internal/model"
	"solar-analyzer/internal/series"
	"solar-analyzer/internal/solar"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Result is the full output of one analysis run.
type Result struct {
	Params model.AnalysisParams
	Curve  solar.Curve

	Samples []model.Sample
	// SolarKW is the synthesized generation, index-aligned with Samples.
	SolarKW []float64

	Days    []analysis.DayRecord
	Summary analysis.Summary

	// DroppedRows counts input rows lost to unparseable timestamps.
	DroppedRows int
}

// Run executes the whole pipeline on raw rows. The pipeline is
// synchronous and deterministic: per-date computations carry no
// cross-date state and run in date order.
func (e *Engine) Run(rows []model.RawRow, params model.AnalysisParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	norm, err := series.Normalize(rows)
	if err != nil {
		return nil, err
	}

	curve, err := solar.Synthesize(params)
	if err != nil {
		return nil, err
	}
	solarKW := curve.Series(norm.Samples)

	dates, byDate := model.GroupByDate(norm.Samples)
	days := make([]analysis.DayRecord, 0, len(dates))
	offset := 0
	for _, date := range dates {
		daySamples := byDate[date]
		daySolar := solarKW[offset : offset+len(daySamples)]
		offset += len(daySamples)
		days = append(days, analysis.ComputeDay(date, daySamples, daySolar, params))
	}

	return &Result{
		Params:      params,
		Curve:       curve,
		Samples:     norm.Samples,
		SolarKW:     solarKW,
		Days:        days,
		Summary:     analysis.Aggregate(days),
		DroppedRows: norm.Dropped,
	}, nil
}
