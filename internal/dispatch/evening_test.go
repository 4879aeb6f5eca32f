package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-analyzer/internal/model"
)

var day = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

// eveningDay builds a full day where every evening-window sample draws
// loadKW and the rest of the day draws 100 kW.
func eveningDay(loadKW float64) []model.Sample {
	samples := make([]model.Sample, 96)
	for i := range samples {
		ts := day.Add(time.Duration(i) * model.SampleInterval)
		load := 100.0
		if h := ts.Hour(); h >= WindowStartHour && h < WindowEndHour {
			load = loadKW
		}
		samples[i] = model.Sample{Timestamp: ts, Consumption: load}
	}
	return samples
}

func TestSimulate_FixedSizeCapsAvailableEnergy(t *testing.T) {
	// 80 kWh of excess solar but a 50 kWh battery: usable energy is 50.
	params := model.DefaultParams()
	params.BatterySizeKWh = 50

	res := Simulate(eveningDay(5000), 80, params)
	assert.Equal(t, 50.0, res.AvailableKWh)
	assert.InDelta(t, 50.0, res.DischargeKWh, 1e-9)
}

func TestSimulate_UncappedWhenAutoSized(t *testing.T) {
	params := model.DefaultParams() // battery size 0 = auto
	res := Simulate(eveningDay(5000), 80, params)
	assert.Equal(t, 80.0, res.AvailableKWh)
}

func TestSimulate_RemainingIsMonotonicAndNonNegative(t *testing.T) {
	res := Simulate(eveningDay(5000), 80, model.DefaultParams())
	require.NotEmpty(t, res.RemainingKWh)

	prev := res.AvailableKWh
	for _, r := range res.RemainingKWh {
		assert.LessOrEqual(t, r, prev+1e-12)
		assert.GreaterOrEqual(t, r, 0.0)
		prev = r
	}
	assert.LessOrEqual(t, res.DischargeKWh, res.AvailableKWh+1e-12)
}

func TestSimulate_NoDischargeBelowThreshold(t *testing.T) {
	// Threshold is 1500 W = 1.5 kW; stay below it all evening.
	samples := eveningDay(1.0)
	res := Simulate(samples, 80, model.DefaultParams())

	assert.Zero(t, res.DischargeKWh)
	assert.Zero(t, res.LoadAboveThresholdKWh)
	// Effective load equals raw evening load: 1 kW over 6 hours.
	assert.InDelta(t, 6.0, res.EffectiveLoadKWh, 1e-9)
	for _, p := range res.DischargePowerKW {
		assert.Zero(t, p)
	}
}

func TestSimulate_FullCoverageFlattensLoadToThreshold(t *testing.T) {
	// 3 kW load against a 1.5 kW threshold, plenty of stored energy:
	// the battery covers the whole excess and the effective load sits
	// at the threshold.
	res := Simulate(eveningDay(3.0), 1000, model.DefaultParams())

	window := 6.0 // hours
	assert.InDelta(t, 1.5*window, res.LoadAboveThresholdKWh, 1e-9)
	assert.InDelta(t, 1.5*window, res.DischargeKWh, 1e-9)
	assert.InDelta(t, 1.5*window, res.EffectiveLoadKWh, 1e-9)
	for _, p := range res.DischargePowerKW {
		assert.InDelta(t, 1.5, p, 1e-9)
	}
}

func TestSimulate_DepletionStopsDischarge(t *testing.T) {
	// Only 1 kWh available against a sustained 1.5 kW excess: the
	// battery drains early and later samples discharge nothing.
	res := Simulate(eveningDay(3.0), 1.0, model.DefaultParams())

	assert.InDelta(t, 1.0, res.DischargeKWh, 1e-9)
	require.NotEmpty(t, res.DischargePowerKW)
	last := res.DischargePowerKW[len(res.DischargePowerKW)-1]
	assert.Zero(t, last)
	assert.Zero(t, res.RemainingKWh[len(res.RemainingKWh)-1])
	// Uncovered excess stays in the effective load.
	assert.InDelta(t, 3.0*6.0-1.0, res.EffectiveLoadKWh, 1e-9)
}

func TestSimulate_IgnoresSamplesOutsideWindow(t *testing.T) {
	res := Simulate(eveningDay(3.0), 1000, model.DefaultParams())
	// 6 hours at quarter-hour steps.
	assert.Len(t, res.DischargePowerKW, 24)
	assert.Len(t, res.RemainingKWh, 24)
}
