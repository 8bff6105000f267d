package sketch

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/palette"
)

// Grid renders a grid composition: every cell draws one seeded shape mode
// in a palette color.
type Grid struct{}

func (s *Grid) Name() string { return "grid" }

// cellMode enumerates the per-cell shape table.
type cellMode int

const (
	modeBlank cellMode = iota
	modeDisc
	modeRing
	modeDiagonal
	modeCross
	modeCount
)

// modeWeights biases the draw toward filled shapes; blanks stay rare so the
// grid reads as dense.
var modeWeights = map[cellMode]float64{
	modeBlank:    0.08,
	modeDisc:     0.30,
	modeRing:     0.22,
	modeDiagonal: 0.25,
	modeCross:    0.15,
}

func pickMode(rng *rand.Rand) cellMode {
	draw := rng.Float64()
	acc := 0.0
	for m := modeBlank; m < modeCount; m++ {
		acc += modeWeights[m]
		if draw < acc {
			return m
		}
	}
	return modeDisc
}

const gridCells = 9

func (s *Grid) Render(c *canvas.Canvas, cfg Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	cw := float64(c.Width()) / gridCells
	chh := float64(c.Height()) / gridCells
	margin := 0.16

	for row := 0; row < gridCells; row++ {
		for colI := 0; colI < gridCells; colI++ {
			mode := pickMode(rng)
			col := cfg.Palette.Color(rng.Intn(8))

			x0 := float64(colI)*cw + cw*margin
			y0 := float64(row)*chh + chh*margin
			x1 := float64(colI+1)*cw - cw*margin
			y1 := float64(row+1)*chh - chh*margin
			cx := (x0 + x1) / 2
			cy := (y0 + y1) / 2
			r := (x1 - x0) / 2

			switch mode {
			case modeDisc:
				c.FillCircle(cx, cy, r, col)
			case modeRing:
				c.FillCircle(cx, cy, r, col)
				c.FillCircle(cx, cy, r*0.55, palette.WithAlpha(cfg.Palette.Background, 255))
			case modeDiagonal:
				if rng.Float64() < 0.5 {
					c.StrokePolyline([]orb.Point{{x0, y0}, {x1, y1}}, r*0.4, col)
				} else {
					c.StrokePolyline([]orb.Point{{x0, y1}, {x1, y0}}, r*0.4, col)
				}
			case modeCross:
				c.StrokePolyline([]orb.Point{{cx, y0}, {cx, y1}}, r*0.3, col)
				c.StrokePolyline([]orb.Point{{x0, cy}, {x1, cy}}, r*0.3, col)
			case modeBlank:
				// leave the paper showing through
			}
		}
	}

	if cfg.Label {
		c.Label(fmt.Sprintf("grid s%d %s", cfg.Seed, cfg.Palette.Name),
			6, c.Height()-8, cfg.Palette.Ink)
	}
	return nil
}
