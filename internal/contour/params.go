// Package contour generates closed, noise-displaced 2D contours.
//
// The pipeline has two stages: a base polygon (an ellipse sampled at N
// points around a jittered center, fixed per seed) and a per-time
// displacement pass (coherent-noise radial and angular offsets, smoothed by
// a circular kernel, around a slowly drifting center). The displaced
// polygon is fitted into a closed piecewise-cubic curve for rendering.
//
// Everything here is a pure function of the parameters: same seed, same
// time, same output, regardless of call order.
package contour

import (
	"github.com/inkfield/inkfield/internal/noise"
)

// Params configures one contour generation run. Treat values as immutable:
// edit by replacing the whole record, not by mutating fields mid-run.
type Params struct {
	Seed int64

	// Points is the number of polygon vertices N. Index arithmetic wraps
	// modulo N throughout the pipeline.
	Points int

	// NoiseFreq scales the spatial noise coordinate (index/N * NoiseFreq).
	NoiseFreq float64
	// TimeFreq scales the temporal noise coordinate (t * TimeFreq).
	TimeFreq float64

	// Tension controls curve tightness in the fitter; clamped to [0.1, 3].
	Tension float64

	// Smoothing is the circular kernel strength for the radial field.
	// The angular field uses half of it. Below 0.01 smoothing is identity.
	Smoothing float64

	// Layers is the number of evenly spaced time samples rendered per frame,
	// TimeStep the spacing between them.
	Layers   int
	TimeStep float64
	// BoldEvery marks every k-th layer for emphasized rendering (0 disables).
	BoldEvery int

	// Geometric ratios, all relative to min(canvas width, height).
	RadiusMinRatio    float64 // lower bound for randomized ellipse radii
	RadiusMaxRatio    float64 // upper bound for randomized ellipse radii
	CenterOffsetRatio float64 // max random offset of the base center
	RadialRatio       float64 // amplitude of the radial displacement
	DriftRatio        float64 // amplitude of the center drift
	// AngularAmp is the angular displacement amplitude in radians.
	AngularAmp float64

	// Seed offsets for the independent noise channels. Configurable because
	// the exact values are a convention, not an invariant.
	AngularSeedOffset int64
	DriftXSeedOffset  int64
	DriftYSeedOffset  int64
}

// DefaultParams returns the stock contour configuration for a seed.
func DefaultParams(seed int64) Params {
	return Params{
		Seed:              seed,
		Points:            24,
		NoiseFreq:         3.5,
		TimeFreq:          0.8,
		Tension:           1.2,
		Smoothing:         1.5,
		Layers:            12,
		TimeStep:          0.35,
		BoldEvery:         4,
		RadiusMinRatio:    0.22,
		RadiusMaxRatio:    0.38,
		CenterOffsetRatio: 0.08,
		RadialRatio:       0.10,
		DriftRatio:        0.05,
		AngularAmp:        0.35,
		AngularSeedOffset: noise.AngularSeedOffset,
		DriftXSeedOffset:  noise.DriftXSeedOffset,
		DriftYSeedOffset:  noise.DriftYSeedOffset,
	}
}

const (
	minTension = 0.1
	maxTension = 3.0
)

// Clamped returns a copy with every numeric field forced into its valid
// range. Out-of-range configuration is corrected here, never rejected.
func (p Params) Clamped() Params {
	if p.Points < 3 {
		p.Points = 3
	}
	p.Tension = clamp(p.Tension, minTension, maxTension)
	if p.Smoothing < 0 {
		p.Smoothing = 0
	}
	if p.Layers < 1 {
		p.Layers = 1
	}
	if p.TimeStep < 0 {
		p.TimeStep = 0
	}
	if p.BoldEvery < 0 {
		p.BoldEvery = 0
	}
	p.RadiusMinRatio = clamp(p.RadiusMinRatio, 0.01, 1)
	p.RadiusMaxRatio = clamp(p.RadiusMaxRatio, p.RadiusMinRatio, 1)
	p.CenterOffsetRatio = clamp(p.CenterOffsetRatio, 0, 0.5)
	p.RadialRatio = clamp(p.RadialRatio, 0, 1)
	p.DriftRatio = clamp(p.DriftRatio, 0, 1)
	if p.AngularSeedOffset == 0 && p.DriftXSeedOffset == 0 && p.DriftYSeedOffset == 0 {
		p.AngularSeedOffset = noise.AngularSeedOffset
		p.DriftXSeedOffset = noise.DriftXSeedOffset
		p.DriftYSeedOffset = noise.DriftYSeedOffset
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
