package contour

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// BasePolygon is the time-independent stage of the pipeline: an ellipse
// sampled at N points around a jittered center. It is a pure function of
// the seed and the canvas dimensions.
type BasePolygon struct {
	Center orb.Point
	Points []orb.Point
}

// NewBasePolygon builds the base polygon for the given parameters and
// canvas dimensions. The ellipse radii are drawn independently from the
// configured ratio range and the center is offset from the canvas center by
// up to CenterOffsetRatio of the minimum dimension.
func NewBasePolygon(p Params, width, height int) BasePolygon {
	p = p.Clamped()
	rng := rand.New(rand.NewSource(p.Seed))
	minDim := float64(min(width, height))

	rx := minDim * lerp(p.RadiusMinRatio, p.RadiusMaxRatio, rng.Float64())
	ry := minDim * lerp(p.RadiusMinRatio, p.RadiusMaxRatio, rng.Float64())

	maxOff := p.CenterOffsetRatio * minDim
	cx := float64(width)/2 + (rng.Float64()*2-1)*maxOff
	cy := float64(height)/2 + (rng.Float64()*2-1)*maxOff
	center := orb.Point{cx, cy}

	pts := make([]orb.Point, p.Points)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(p.Points)
		pts[i] = orb.Point{
			cx + rx*math.Cos(theta),
			cy + ry*math.Sin(theta),
		}
	}

	return BasePolygon{Center: center, Points: pts}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
