package contour

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/inkfield/inkfield/internal/noise"
)

// Field derives displaced polygons from a base polygon over time. The four
// noise channels (radial, angular, drift x, drift y) are seeded with
// distinct offsets so they evolve independently.
type Field struct {
	params  Params
	base    BasePolygon
	minDim  float64
	radial  *noise.Channel
	angular *noise.Channel
	driftX  *noise.Channel
	driftY  *noise.Channel
}

// NewField builds the base polygon and noise channels for one parameter set.
func NewField(p Params, width, height int) *Field {
	p = p.Clamped()
	return &Field{
		params:  p,
		base:    NewBasePolygon(p, width, height),
		minDim:  float64(min(width, height)),
		radial:  noise.NewChannel(p.Seed),
		angular: noise.NewChannel(p.Seed + p.AngularSeedOffset),
		driftX:  noise.NewChannel(p.Seed + p.DriftXSeedOffset),
		driftY:  noise.NewChannel(p.Seed + p.DriftYSeedOffset),
	}
}

// Base returns the time-independent polygon.
func (f *Field) Base() BasePolygon { return f.base }

// Params returns the clamped parameter record the field was built with.
func (f *Field) Params() Params { return f.params }

// PolygonAt returns the displaced polygon for time t. The result always has
// exactly N points and preserves the base polygon's point ordering: index i
// in the output corresponds to index i in the base polygon.
func (f *Field) PolygonAt(t float64) []orb.Point {
	p := f.params
	n := len(f.base.Points)
	tt := t * p.TimeFreq

	radialRaw := make([]float64, n)
	angularRaw := make([]float64, n)
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n) * p.NoiseFreq
		radialRaw[i] = f.radial.At(u, tt) * p.RadialRatio * f.minDim
		angularRaw[i] = f.angular.At(u, tt) * p.AngularAmp
	}

	radialOff := SmoothCircular(radialRaw, p.Smoothing)
	angularOff := SmoothCircular(angularRaw, p.Smoothing/2)

	drift := p.DriftRatio * f.minDim
	cx := f.base.Center[0] + f.driftX.At(0.5, tt)*drift
	cy := f.base.Center[1] + f.driftY.At(0.5, tt)*drift

	out := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		dx := f.base.Points[i][0] - f.base.Center[0]
		dy := f.base.Points[i][1] - f.base.Center[1]
		r := math.Hypot(dx, dy) + radialOff[i]
		phi := math.Atan2(dy, dx) + angularOff[i]
		out[i] = orb.Point{
			cx + r*math.Cos(phi),
			cy + r*math.Sin(phi),
		}
	}
	return out
}

// ContourAt returns the closed fitted curve for time t.
func (f *Field) ContourAt(t float64) Curve {
	return FitClosed(f.PolygonAt(t), f.params.Tension)
}
