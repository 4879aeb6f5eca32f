package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-analyzer/internal/dispatch"
)

func makeRecords(n int) []DayRecord {
	records := make([]DayRecord, n)
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := range records {
		records[i] = DayRecord{
			Date:              base.AddDate(0, 0, i),
			ConsumptionKWh:    1000 + float64(i)*100,
			SolarKWh:          800,
			TotalExcessKWh:    50,
			TotalDeficitKWh:   250,
			OptimalBatteryKWh: 120,
			Dispatch:          dispatch.Result{DischargeKWh: 30},
		}
	}
	return records
}

func TestAggregate_FewerThanSevenDaysEqualsOverall(t *testing.T) {
	summary := Aggregate(makeRecords(5))
	assert.Equal(t, summary.Overall, summary.LastWeek)
	assert.Equal(t, 5, summary.Overall.Days)
}

func TestAggregate_LastWeekIsMostRecentSeven(t *testing.T) {
	summary := Aggregate(makeRecords(10))

	require.Equal(t, 10, summary.Overall.Days)
	require.Equal(t, 7, summary.LastWeek.Days)

	// Records 3..9 carry consumption 1300..1900.
	wantWeek := 0.0
	for i := 3; i < 10; i++ {
		wantWeek += 1000 + float64(i)*100
	}
	assert.InDelta(t, wantWeek, summary.LastWeek.ConsumptionKWh, 1e-9)
	assert.InDelta(t, wantWeek/7, summary.LastWeek.AvgConsumptionKWh, 1e-9)
}

func TestAggregate_SumsAndAverages(t *testing.T) {
	summary := Aggregate(makeRecords(4))
	o := summary.Overall

	assert.InDelta(t, 1000+1100+1200+1300, o.ConsumptionKWh, 1e-9)
	assert.InDelta(t, 4*800, o.SolarKWh, 1e-9)
	assert.InDelta(t, 4*50, o.ExcessKWh, 1e-9)
	assert.InDelta(t, 4*250, o.DeficitKWh, 1e-9)
	assert.InDelta(t, 4*30, o.DischargeKWh, 1e-9)
	assert.InDelta(t, 1150, o.AvgConsumptionKWh, 1e-9)
	assert.InDelta(t, 120, o.AvgOptimalBatteryKWh, 1e-9)
	assert.InDelta(t, 30, o.AvgDischargeKWh, 1e-9)
}

func TestAggregate_EmptyInputYieldsZeroTotals(t *testing.T) {
	summary := Aggregate(nil)
	assert.Equal(t, 0, summary.Overall.Days)
	assert.Zero(t, summary.Overall.AvgConsumptionKWh)
	assert.Equal(t, summary.Overall, summary.LastWeek)
}
