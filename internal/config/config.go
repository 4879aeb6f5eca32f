package config

import (
	"errors"
	"fmt"
	"os"

	"solar-analyzer/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
}

type AnalysisConfig struct {
	SolarCapacityMW float64 `yaml:"solar_capacity_mw"`
	SunHours        float64 `yaml:"sun_hours"`
	ThresholdW      float64 `yaml:"threshold_w"`
	BatterySizeKWh  float64 `yaml:"battery_size_kwh"`
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Analysis = ApplyDefaults(c.Analysis)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads without defaulting or validating. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills unset (zero) fields with the tool defaults.
// battery_size_kwh stays zero-able: zero means auto-size.
func ApplyDefaults(a AnalysisConfig) AnalysisConfig {
	def := model.DefaultParams()
	if a.SolarCapacityMW == 0 {
		a.SolarCapacityMW = def.SolarCapacityMW
	}
	if a.SunHours == 0 {
		a.SunHours = def.SunHours
	}
	if a.ThresholdW == 0 {
		a.ThresholdW = def.ThresholdW
	}
	return a
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override AnalysisConfig) AnalysisConfig {
	out := base
	if override.SolarCapacityMW != 0 {
		out.SolarCapacityMW = override.SolarCapacityMW
	}
	if override.SunHours != 0 {
		out.SunHours = override.SunHours
	}
	if override.ThresholdW != 0 {
		out.ThresholdW = override.ThresholdW
	}
	if override.BatterySizeKWh != 0 {
		out.BatterySizeKWh = override.BatterySizeKWh
	}
	return out
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Analysis.ToParams().Validate(); err != nil {
		return fmt.Errorf("analysis config invalid: %w", err)
	}
	return nil
}

func (a AnalysisConfig) ToParams() model.AnalysisParams {
	return model.AnalysisParams{
		SolarCapacityMW: a.SolarCapacityMW,
		SunHours:        a.SunHours,
		ThresholdW:      a.ThresholdW,
		BatterySizeKWh:  a.BatterySizeKWh,
	}
}
