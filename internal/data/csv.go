// Package data loads raw meter rows from files. Parsing and validation
// of the rows themselves is the series normalizer's job.
package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"solar-analyzer/internal/model"
)

// Meter exports carry a datetime column followed by alternating rate and
// filler columns: datetime, rate_a, _, rate_b, _, rate_c, _.
const (
	colDatetime = 0
	colRateA    = 1
	colRateB    = 3
	colRateC    = 5
)

// LoadCSV reads a meter export into raw rows. The first record is
// assumed to be a header and skipped. Short records are padded with
// empty channels (the normalizer coerces them to zero).
func LoadCSV(path string) ([]model.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(f)
}

// ReadRows parses CSV content from a reader.
func ReadRows(r io.Reader) ([]model.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports vary in trailing filler columns

	rows := make([]model.RawRow, 0)
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, model.RawRow{
			Timestamp: field(record, colDatetime),
			RateA:     field(record, colRateA),
			RateB:     field(record, colRateB),
			RateC:     field(record, colRateC),
		})
	}
	return rows, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
