package model

import "time"

// SampleInterval is the fixed spacing of the input series.
const SampleInterval = 15 * time.Minute

// StepHours is the integration step for one sample, in hours.
const StepHours = 0.25

// RawRow is one unvalidated input row as handed over by a collaborator
// (CSV reader, API request). Timestamp stays text until normalization.
type RawRow struct {
	Timestamp string `json:"timestamp"`
	RateA     string `json:"rate_a"`
	RateB     string `json:"rate_b"`
	RateC     string `json:"rate_c"`
}

// Sample is one quarter-hour observation after normalization.
// Consumption is the sum of the three rate channels, in kW.
type Sample struct {
	Timestamp   time.Time
	RateA       float64
	RateB       float64
	RateC       float64
	Consumption float64
}

// Date returns the calendar-date key of the sample (midnight, local zone
// of the timestamp). Samples sharing a Date form one DaySeries.
func (s Sample) Date() time.Time {
	y, m, d := s.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.Timestamp.Location())
}

// GroupByDate splits a chronological sample sequence into per-date
// sub-slices, preserving order. The sub-slices alias the input; callers
// must not mutate the samples.
func GroupByDate(samples []Sample) ([]time.Time, map[time.Time][]Sample) {
	dates := make([]time.Time, 0)
	byDate := make(map[time.Time][]Sample)
	for _, s := range samples {
		d := s.Date()
		if _, ok := byDate[d]; !ok {
			dates = append(dates, d)
		}
		byDate[d] = append(byDate[d], s)
	}
	return dates, byDate
}
