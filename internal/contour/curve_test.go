package contour

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func squarePoints() []orb.Point {
	return []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

func TestFitClosedDegenerateInput(t *testing.T) {
	for _, pts := range [][]orb.Point{nil, {{1, 2}}, {{1, 2}, {3, 4}}} {
		c := FitClosed(pts, 1.0)
		if !c.Empty() {
			t.Errorf("%d points: expected empty curve", len(pts))
		}
		if got := c.Flatten(8); got != nil {
			t.Errorf("%d points: expected nil flatten, got %d points", len(pts), len(got))
		}
	}
}

func TestFitClosedIsClosed(t *testing.T) {
	c := FitClosed(squarePoints(), 1.0)
	start := c.Point(0)
	end := c.Point(1)
	if math.Hypot(start[0]-end[0], start[1]-end[1]) > 1e-12 {
		t.Fatalf("curve not closed: start %v, end %v", start, end)
	}

	segs := c.Segments()
	last := segs[len(segs)-1].P1
	if last != segs[0].P0 {
		t.Fatalf("last segment ends at %v, first starts at %v", last, segs[0].P0)
	}
}

func TestFitClosedInterpolatesInputPoints(t *testing.T) {
	pts := squarePoints()
	c := FitClosed(pts, 1.2)
	segs := c.Segments()
	if len(segs) != len(pts) {
		t.Fatalf("expected %d segments, got %d", len(pts), len(segs))
	}
	for i, s := range segs {
		if s.P0 != pts[i] {
			t.Errorf("segment %d starts at %v, want %v", i, s.P0, pts[i])
		}
	}
}

func TestFitClosedTensionClampEquivalence(t *testing.T) {
	pts := squarePoints()
	low := FitClosed(pts, -5)
	clamped := FitClosed(pts, 0.1)
	for _, tt := range []float64{0, 0.13, 0.5, 0.77} {
		a := low.Point(tt)
		b := clamped.Point(tt)
		if a != b {
			t.Fatalf("t=%v: tension=-5 gave %v, tension=0.1 gave %v", tt, a, b)
		}
	}

	high := FitClosed(pts, 99)
	top := FitClosed(pts, 3.0)
	if high.Point(0.4) != top.Point(0.4) {
		t.Fatal("tension above 3.0 not clamped")
	}
}

func TestCurvePointWraps(t *testing.T) {
	c := FitClosed(squarePoints(), 1.0)
	a := c.Point(0.25)
	b := c.Point(1.25)
	if math.Hypot(a[0]-b[0], a[1]-b[1]) > 1e-9 {
		t.Fatalf("parameter did not wrap: %v vs %v", a, b)
	}
}

func TestCurvatureSignOnCircle(t *testing.T) {
	// A counter-clockwise circle in a y-down coordinate system still has a
	// consistent curvature sign everywhere; magnitude is near 1/r.
	n := 48
	r := 100.0
	pts := make([]orb.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{r * math.Cos(th), r * math.Sin(th)}
	}
	c := FitClosed(pts, 1.0)

	for _, tt := range []float64{0.1, 0.4, 0.8} {
		k := c.CurvatureAt(tt)
		if math.Abs(math.Abs(k)-1/r) > 0.2/r {
			t.Errorf("t=%v: |curvature| = %v, want about %v", tt, math.Abs(k), 1/r)
		}
	}
}

func TestCurvatureDegenerateCurveIsZero(t *testing.T) {
	var c Curve
	if got := c.CurvatureAt(0.5); got != 0 {
		t.Fatalf("empty curve curvature = %v, want 0", got)
	}

	// Coincident points produce zero-length chords; the epsilon guard must
	// keep the result finite.
	pts := []orb.Point{{5, 5}, {5, 5}, {5, 5}, {5, 5}}
	k := FitClosed(pts, 1.0).CurvatureAt(0.3)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		t.Fatalf("degenerate curvature not finite: %v", k)
	}
}

func TestHighlightSelectorDeterminism(t *testing.T) {
	f := NewField(scenarioParams(), 600, 600)
	c := f.ContourAt(0.7)

	pick := func() []bool {
		h := NewHighlightSelector(42, 0.001, 0.5)
		out := make([]bool, len(c.Segments()))
		for i := range out {
			out[i] = h.Highlight(c, i)
		}
		return out
	}

	a := pick()
	b := pick()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment %d: highlight decision not reproducible", i)
		}
	}
}
