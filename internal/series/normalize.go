// Package series turns raw meter rows into a validated quarter-hour
// consumption series.
package series

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"solar-analyzer/internal/model"
)

// Buddhist-calendar years (ไทย) are 543 ahead of Gregorian. Meter exports
// mix both systems, so anything past this cutoff is treated as Buddhist.
const buddhistYearCutoff = 2500

// NormalizeResult carries the cleaned series plus ingestion bookkeeping.
type NormalizeResult struct {
	Samples []model.Sample
	// Dropped counts input rows whose timestamp failed to parse.
	Dropped int
}

// Normalize parses, corrects and sorts raw rows into a chronological
// sample sequence.
//
// Corrections applied, in order:
//   - a "24.00"/"24:00" time of day becomes 00:00 of the next calendar day
//   - years past the Buddhist cutoff get 543 subtracted before parsing
//   - non-numeric rate channels coerce to zero
//   - rows with unparseable timestamps are dropped and counted
//
// Exact duplicate timestamps are kept as-is; the sort is stable and no
// dedup pass runs. Returns a DataError when nothing parseable remains.
func Normalize(rows []model.RawRow) (NormalizeResult, error) {
	if len(rows) == 0 {
		return NormalizeResult{}, &model.DataError{Reason: "no input rows"}
	}

	samples := make([]model.Sample, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		ts, ok := parseTimestamp(row.Timestamp)
		if !ok {
			dropped++
			continue
		}
		a := parseRate(row.RateA)
		b := parseRate(row.RateB)
		c := parseRate(row.RateC)
		samples = append(samples, model.Sample{
			Timestamp:   ts,
			RateA:       a,
			RateB:       b,
			RateC:       c,
			Consumption: a + b + c,
		})
	}

	if len(samples) == 0 {
		return NormalizeResult{}, &model.DataError{
			Reason:  "no parseable rows after filtering",
			Dropped: dropped,
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.Before(samples[j].Timestamp)
	})

	return NormalizeResult{Samples: samples, Dropped: dropped}, nil
}

// parseTimestamp handles "DD/MM/YYYY HH.MM" and "DD/MM/YYYY HH:MM".
func parseTimestamp(text string) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return time.Time{}, false
	}
	datePart := fields[0]
	timePart := "00.00"
	if len(fields) > 1 {
		timePart = fields[1]
	}

	dateComp := strings.Split(datePart, "/")
	if len(dateComp) != 3 {
		return time.Time{}, false
	}
	day, err1 := strconv.Atoi(dateComp[0])
	month, err2 := strconv.Atoi(dateComp[1])
	year, err3 := strconv.Atoi(dateComp[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if year > buddhistYearCutoff {
		year -= 543
	}

	timeComp := strings.Split(strings.ReplaceAll(timePart, ".", ":"), ":")
	if len(timeComp) < 2 {
		return time.Time{}, false
	}
	hour, err1 := strconv.Atoi(timeComp[0])
	minute, err2 := strconv.Atoi(timeComp[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}

	// Meters stamp the end-of-day reading as 24:00; that instant belongs
	// to midnight of the following date.
	rollover := hour == 24 && minute == 0
	if rollover {
		hour = 0
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if rollover {
		ts = ts.AddDate(0, 0, 1)
	}
	return ts, true
}

// parseRate coerces a channel field to a number, treating anything
// non-numeric (including empty) as zero consumption.
func parseRate(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return v
}
