// Package solar synthesizes an idealized quarter-hour generation profile
// for a configured array.
//
// The profile is a single symmetric bell curve fitted once and reused for
// every date in the series. That is a deliberate modeling simplification
// (an average-day model), not a per-date irradiance fit.
package solar

import (
	"math"

	"solar-analyzer/internal/model"
)

const (
	// Daylight window, hours of day. Generation is zero outside it.
	SunriseHour = 6.0
	SunsetHour  = 18.0

	// PeakFactor derates the array nameplate to the curve's peak power.
	PeakFactor = 0.9

	// SamplesPerDay is the canonical day grid at 15-minute resolution.
	SamplesPerDay = 96

	// Sigma solver bounds and budget.
	sigmaLo      = 0.2
	sigmaHi      = 20.0
	sigmaHiCeil  = 200.0
	solverRounds = 60
)

// Curve is the solved generation model for one run.
type Curve struct {
	CapacityKW float64
	// TargetKWh is the daily energy the curve integrates to. It may be
	// lower than capacity*sunHours when the physical ceiling clamped it.
	TargetKWh float64
	// Sigma is the solved bell-curve width, in hours.
	Sigma float64
	// Template holds one canonical day, kW per quarter-hour slot.
	Template []float64
}

// Synthesize solves the curve for the given parameters.
//
// Target daily energy is capacityKW*sunHours, clamped down to the
// reachable maximum under the fixed daylight window. The clamp is a
// physical ceiling, not an error.
func Synthesize(params model.AnalysisParams) (Curve, error) {
	capacityKW := params.SolarCapacityKW()
	targetKWh := capacityKW * params.SunHours

	if ceiling := MaxDailyEnergy(capacityKW); targetKWh > ceiling {
		targetKWh = ceiling
	}

	sigma, err := SolveSigma(targetKWh, capacityKW, sigmaLo, sigmaHi, sigmaHiCeil, solverRounds)
	if err != nil {
		return Curve{}, err
	}

	return Curve{
		CapacityKW: capacityKW,
		TargetKWh:  targetKWh,
		Sigma:      sigma,
		Template:   template(capacityKW, sigma),
	}, nil
}

// SolveSigma finds the bell-curve width whose integrated daily energy
// matches targetKWh, by doubling hi until the target is bounded and then
// bisecting for a fixed number of rounds.
//
// Returns a ConvergenceError if hi reaches hiCeil without bounding the
// target; the caller is expected to have clamped the target to the
// physical ceiling first.
func SolveSigma(targetKWh, capacityKW, lo, hi, hiCeil float64, rounds int) (float64, error) {
	for DailyEnergy(capacityKW, hi) < targetKWh && hi < hiCeil {
		hi *= 2.0
	}
	if DailyEnergy(capacityKW, hi) < targetKWh {
		return 0, &model.ConvergenceError{
			TargetKWh: targetKWh,
			UpperKWh:  DailyEnergy(capacityKW, hi),
		}
	}

	for i := 0; i < rounds; i++ {
		mid := 0.5 * (lo + hi)
		if DailyEnergy(capacityKW, mid) < targetKWh {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), nil
}

// MaxDailyEnergy is the physical ceiling: the daily energy the curve
// reaches at the solver's maximum width, where the profile flattens
// toward the derated peak across the whole daylight window. Requested
// targets above it are clamped, never erred.
func MaxDailyEnergy(capacityKW float64) float64 {
	return DailyEnergy(capacityKW, sigmaHiCeil)
}

// DailyEnergy integrates one day of the curve at width sigma, in kWh.
func DailyEnergy(capacityKW, sigma float64) float64 {
	return trapezoid(template(capacityKW, sigma), model.StepHours)
}

// template samples the curve over the canonical day grid.
func template(capacityKW, sigma float64) []float64 {
	center := 0.5 * (SunriseHour + SunsetHour)
	peak := capacityKW * PeakFactor

	power := make([]float64, SamplesPerDay)
	for i := range power {
		hour := float64(i) * model.StepHours
		if hour < SunriseHour || hour > SunsetHour {
			continue
		}
		z := (hour - center) / sigma
		power[i] = peak * math.Exp(-0.5*z*z)
	}
	return power
}

// Series replicates the curve across the sample sequence, one generation
// value per sample, aligned positionally within each calendar date.
// Positions past the canonical day (possible with duplicate timestamps)
// get zero; trailing template slots past a short day are discarded.
func (c Curve) Series(samples []model.Sample) []float64 {
	out := make([]float64, len(samples))
	pos := 0
	var current int64 = math.MinInt64
	for i, s := range samples {
		day := s.Date().Unix()
		if day != current {
			current = day
			pos = 0
		}
		if pos < len(c.Template) {
			out[i] = c.Template[pos]
		}
		pos++
	}
	return out
}

func trapezoid(values []float64, dx float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(values); i++ {
		sum += 0.5 * (values[i-1] + values[i]) * dx
	}
	return sum
}
