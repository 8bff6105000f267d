package sketch

import (
	"fmt"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/contour"
	"github.com/inkfield/inkfield/internal/palette"
)

// Contours renders layered noise-displaced closed contours: one fitted
// curve per evenly spaced time sample, every k-th layer emphasized, with
// curvature-driven highlight strokes.
type Contours struct{}

func (s *Contours) Name() string { return "contours" }

const (
	contourSamplesPerSegment = 12
	highlightThreshold       = 0.004
	highlightProbability     = 0.35
)

func (s *Contours) Render(c *canvas.Canvas, cfg Config) error {
	p := cfg.Contour
	if p.Points == 0 {
		p = contour.DefaultParams(cfg.Seed)
	}
	p.Seed = cfg.Seed
	p = p.Clamped()

	field := contour.NewField(p, c.Width(), c.Height())

	for layer := 0; layer < p.Layers; layer++ {
		t := cfg.Time + float64(layer)*p.TimeStep
		curve := field.ContourAt(t)
		if curve.Empty() {
			continue
		}

		bold := p.BoldEvery > 0 && layer%p.BoldEvery == 0
		col := cfg.Palette.Color(layer)
		width := 1.6
		if bold {
			width = 3.4
		} else {
			col = palette.WithAlpha(col, 150)
		}

		c.StrokePolyline(curve.Flatten(contourSamplesPerSegment), width, col)

		if bold {
			s.drawHighlights(c, curve, cfg, layer)
		}
	}

	if cfg.Label {
		c.Label(
			fmt.Sprintf("contours s%d n%d f%.2f", p.Seed, p.Points, p.NoiseFreq),
			6, c.Height()-8, cfg.Palette.Ink,
		)
	}
	return nil
}

// drawHighlights emphasizes high-curvature segments of a bold layer with a
// short stroke in the palette's ink color.
func (s *Contours) drawHighlights(c *canvas.Canvas, curve contour.Curve, cfg Config, layer int) {
	sel := contour.NewHighlightSelector(cfg.Seed+int64(layer), highlightThreshold, highlightProbability)
	segs := curve.Segments()
	for i := range segs {
		if !sel.Highlight(curve, i) {
			continue
		}
		pts := segs[i].Polyline(contourSamplesPerSegment)
		c.StrokePolyline(pts, 4.6, palette.WithAlpha(cfg.Palette.Ink, 220))
	}
}
