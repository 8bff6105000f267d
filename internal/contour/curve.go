package contour

import (
	"github.com/paulmach/orb"
)

// Segment is one cubic Bézier piece of a fitted contour.
type Segment struct {
	P0, C1, C2, P1 orb.Point
}

// Curve is a closed piecewise-cubic curve through an ordered point set.
// Segment i starts at input point i, so point ordering survives fitting.
type Curve struct {
	segs []Segment
}

// FitClosed fits a closed smooth curve through pts in order. The tangent at
// each vertex is estimated from its two neighbours (wrapping modulo N) and
// scaled by 1/clamp(tension, 0.1, 3.0); higher tension pulls the curve
// tighter to the polygon. Fewer than 3 points yields an empty curve.
func FitClosed(pts []orb.Point, tension float64) Curve {
	n := len(pts)
	if n < 3 {
		return Curve{}
	}
	ct := clamp(tension, minTension, maxTension)
	scale := 1.0 / ct

	tangents := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		tangents[i] = orb.Point{
			(next[0] - prev[0]) * scale,
			(next[1] - prev[1]) * scale,
		}
	}

	segs := make([]Segment, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p0 := pts[i]
		p1 := pts[j]
		segs[i] = Segment{
			P0: p0,
			C1: orb.Point{p0[0] + tangents[i][0]/6, p0[1] + tangents[i][1]/6},
			C2: orb.Point{p1[0] - tangents[j][0]/6, p1[1] - tangents[j][1]/6},
			P1: p1,
		}
	}
	return Curve{segs: segs}
}

// Empty reports whether the curve has no segments.
func (c Curve) Empty() bool { return len(c.segs) == 0 }

// Segments returns the cubic pieces in order. The returned slice is shared;
// callers must not mutate it.
func (c Curve) Segments() []Segment { return c.segs }

// Point evaluates the curve at parameter t in [0, 1) over the whole closed
// loop. t wraps, so Point(0) == Point(1): the curve is closed.
func (c Curve) Point(t float64) orb.Point {
	n := len(c.segs)
	if n == 0 {
		return orb.Point{}
	}
	t -= float64(int(t))
	if t < 0 {
		t += 1
	}
	scaled := t * float64(n)
	i := int(scaled)
	if i >= n {
		i = n - 1
	}
	return c.segs[i].at(scaled - float64(i))
}

// Flatten samples the curve into a closed polyline with samplesPerSegment
// points per cubic piece. The final point repeats the first.
func (c Curve) Flatten(samplesPerSegment int) []orb.Point {
	if c.Empty() {
		return nil
	}
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}
	out := make([]orb.Point, 0, len(c.segs)*samplesPerSegment+1)
	for _, s := range c.segs {
		for k := 0; k < samplesPerSegment; k++ {
			out = append(out, s.at(float64(k)/float64(samplesPerSegment)))
		}
	}
	out = append(out, c.segs[0].P0)
	return out
}

// Polyline samples the segment into samples+1 points from P0 to P1.
func (s Segment) Polyline(samples int) []orb.Point {
	if samples < 1 {
		samples = 1
	}
	out := make([]orb.Point, samples+1)
	for k := 0; k <= samples; k++ {
		out[k] = s.at(float64(k) / float64(samples))
	}
	return out
}

func (s Segment) at(t float64) orb.Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return orb.Point{
		b0*s.P0[0] + b1*s.C1[0] + b2*s.C2[0] + b3*s.P1[0],
		b0*s.P0[1] + b1*s.C1[1] + b2*s.C2[1] + b3*s.P1[1],
	}
}
