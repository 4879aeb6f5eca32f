package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-analyzer/internal/model"
)

func params(capacityMW, sunHours float64) model.AnalysisParams {
	p := model.DefaultParams()
	p.SolarCapacityMW = capacityMW
	p.SunHours = sunHours
	return p
}

func TestSynthesize_EnergyMatchesTarget(t *testing.T) {
	// Scenario: capacity 3 MWp, 4 sun hours -> 12000 kWh/day, peak <= 2700 kW.
	curve, err := Synthesize(params(3.0, 4.0))
	require.NoError(t, err)

	assert.Equal(t, 12000.0, curve.TargetKWh)
	assert.InDelta(t, 12000.0, DailyEnergy(curve.CapacityKW, curve.Sigma), 12000.0*1e-3)

	peak := 0.0
	for _, p := range curve.Template {
		if p > peak {
			peak = p
		}
	}
	assert.LessOrEqual(t, peak, 2700.0+1e-9)
}

func TestSynthesize_EnergyMatchAcrossConfigurations(t *testing.T) {
	cases := []struct {
		capacityMW float64
		sunHours   float64
	}{
		{1.0, 2.0},
		{2.5, 6.0},
		{5.0, 8.0},
		{0.5, 10.5},
	}
	for _, tc := range cases {
		curve, err := Synthesize(params(tc.capacityMW, tc.sunHours))
		require.NoError(t, err)
		want := tc.capacityMW * 1000 * tc.sunHours
		assert.InDelta(t, want, DailyEnergy(curve.CapacityKW, curve.Sigma), want*1e-3,
			"capacity %.1f MW, %.1f sun hours", tc.capacityMW, tc.sunHours)
	}
}

func TestSynthesize_ClampsToPhysicalCeiling(t *testing.T) {
	// 12 sun hours at a 0.9-derated peak is not reachable; the target
	// must clamp to the ceiling, and the curve must deliver the ceiling.
	curve, err := Synthesize(params(3.0, 12.0))
	require.NoError(t, err)

	ceiling := MaxDailyEnergy(3000.0)
	assert.Less(t, ceiling, 36000.0)
	assert.Equal(t, ceiling, curve.TargetKWh)
	assert.InDelta(t, ceiling, DailyEnergy(curve.CapacityKW, curve.Sigma), ceiling*1e-3)
}

func TestSolveSigma_UnboundableTargetFails(t *testing.T) {
	_, err := SolveSigma(1e9, 3000.0, 0.2, 20.0, 200.0, 60)
	var convErr *model.ConvergenceError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, 1e9, convErr.TargetKWh)
}

func TestTemplate_ZeroOutsideDaylightWindow(t *testing.T) {
	curve, err := Synthesize(params(3.0, 4.0))
	require.NoError(t, err)
	require.Len(t, curve.Template, SamplesPerDay)

	for i, p := range curve.Template {
		hour := float64(i) * model.StepHours
		if hour < SunriseHour || hour > SunsetHour {
			assert.Zero(t, p, "hour %.2f should be dark", hour)
		}
	}
	// Midday slot carries the peak.
	assert.InDelta(t, 2700.0, curve.Template[48], 1e-9)
}

func TestSeries_AlignsPerDate(t *testing.T) {
	curve, err := Synthesize(params(3.0, 4.0))
	require.NoError(t, err)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	samples := make([]model.Sample, 0, SamplesPerDay+4)
	for i := 0; i < SamplesPerDay; i++ {
		samples = append(samples, model.Sample{Timestamp: day1.Add(time.Duration(i) * model.SampleInterval)})
	}
	// Second day truncated after one hour of samples.
	for i := 0; i < 4; i++ {
		samples = append(samples, model.Sample{Timestamp: day2.Add(time.Duration(i) * model.SampleInterval)})
	}

	series := curve.Series(samples)
	require.Len(t, series, len(samples))

	for i := 0; i < SamplesPerDay; i++ {
		assert.Equal(t, curve.Template[i], series[i])
	}
	// The truncated day restarts at the top of the template.
	for i := 0; i < 4; i++ {
		assert.Equal(t, curve.Template[i], series[SamplesPerDay+i])
	}
}
