package contour

import (
	"math"
	"math/rand"
)

const (
	curvatureEpsilon = 1e-3
	// curvatureGuard keeps the denominator positive for degenerate
	// zero-length tangent chords (coincident or self-intersecting points).
	curvatureGuard = 1e-9
)

// CurvatureAt estimates the signed curvature of the curve at parameter t
// using a finite-difference cross product of adjacent tangent chords.
// Degenerate geometry yields a near-zero value rather than an error.
func (c Curve) CurvatureAt(t float64) float64 {
	if c.Empty() {
		return 0
	}
	p0 := c.Point(t)
	p1 := c.Point(t + curvatureEpsilon)
	p2 := c.Point(t + 2*curvatureEpsilon)

	ax := p1[0] - p0[0]
	ay := p1[1] - p0[1]
	bx := p2[0] - p1[0]
	by := p2[1] - p1[1]

	cross := ax*by - ay*bx
	la := math.Hypot(ax, ay)
	return cross / (la*la*la + curvatureGuard)
}

// HighlightSelector decides which curve segments get emphasized strokes.
// The decision combines a curvature threshold with a per-segment seeded
// draw, so highlights cluster on bends but stay sparse.
type HighlightSelector struct {
	Threshold   float64 // minimum |curvature| to consider
	Probability float64 // chance a qualifying segment is emphasized
	rng         *rand.Rand
}

// NewHighlightSelector creates a selector with its own seeded generator.
func NewHighlightSelector(seed int64, threshold, probability float64) *HighlightSelector {
	return &HighlightSelector{
		Threshold:   threshold,
		Probability: probability,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Highlight reports whether the segment at index i of the curve should be
// emphasized. Call sequentially over segment indices for reproducibility.
func (h *HighlightSelector) Highlight(c Curve, i int) bool {
	n := len(c.Segments())
	if n == 0 {
		return false
	}
	draw := h.rng.Float64()
	mid := (float64(i) + 0.5) / float64(n)
	if math.Abs(c.CurvatureAt(mid)) < h.Threshold {
		return false
	}
	return draw < h.Probability
}
