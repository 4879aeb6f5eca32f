package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-analyzer/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "analysis:\n  solar_capacity_mw: 5.0\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.Analysis.SolarCapacityMW)
	assert.Equal(t, 4.0, cfg.Analysis.SunHours)
	assert.Equal(t, 1500.0, cfg.Analysis.ThresholdW)
	assert.Zero(t, cfg.Analysis.BatterySizeKWh)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `analysis:
  solar_capacity_mw: 2.5
  sun_hours: 5.5
  threshold_w: 2200
  battery_size_kwh: 40
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	params := cfg.Analysis.ToParams()
	assert.Equal(t, model.AnalysisParams{
		SolarCapacityMW: 2.5,
		SunHours:        5.5,
		ThresholdW:      2200,
		BatterySizeKWh:  40,
	}, params)
}

func TestLoad_InvalidSunHours(t *testing.T) {
	path := writeConfig(t, "analysis:\n  sun_hours: 20\n")

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *model.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestMerge_OverlaysNonZeroFields(t *testing.T) {
	base := AnalysisConfig{SolarCapacityMW: 3, SunHours: 4, ThresholdW: 1500}
	merged := Merge(base, AnalysisConfig{SunHours: 6, BatterySizeKWh: 25})

	assert.Equal(t, 3.0, merged.SolarCapacityMW)
	assert.Equal(t, 6.0, merged.SunHours)
	assert.Equal(t, 1500.0, merged.ThresholdW)
	assert.Equal(t, 25.0, merged.BatterySizeKWh)
}
