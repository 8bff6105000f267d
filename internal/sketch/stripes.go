package sketch

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/noise"
)

// Stripes renders a palette-driven vertical stripe pattern broken up by
// seeded disorder zones: horizontal bands where stripe phase, width, and
// color order are scrambled.
type Stripes struct{}

func (s *Stripes) Name() string { return "stripes" }

const (
	stripeBaseCount   = 28
	disorderZoneCount = 4
)

func (s *Stripes) Render(c *canvas.Canvas, cfg Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	ch := noise.NewChannel(cfg.Seed)

	w := float64(c.Width())
	h := float64(c.Height())
	stripeW := w / stripeBaseCount

	colors := cfg.Palette.Shuffled(rng)
	if len(colors) == 0 {
		colors = append(colors, cfg.Palette.Ink)
	}

	// Disorder zones: horizontal bands with randomized extent. Zones may
	// overlap; overlapping zones simply stay disordered.
	type zone struct{ top, bottom float64 }
	zones := make([]zone, disorderZoneCount)
	for i := range zones {
		center := rng.Float64() * h
		half := (0.04 + 0.10*rng.Float64()) * h
		zones[i] = zone{top: center - half, bottom: center + half}
	}
	inDisorder := func(y float64) bool {
		for _, z := range zones {
			if y >= z.top && y <= z.bottom {
				return true
			}
		}
		return false
	}

	// Row height chosen so zone boundaries land on row edges.
	rows := 64
	rowH := h / float64(rows)

	for row := 0; row < rows; row++ {
		y0 := float64(row) * rowH
		disordered := inDisorder(y0 + rowH/2)

		// Per-row offsets: ordered rows drift slowly with noise; disordered
		// rows jump by a noise sample at a much higher frequency and also
		// scramble the color index.
		offset := ch.At(0.3, y0/h*2) * stripeW * 0.4
		colorShift := 0
		widthScale := 1.0
		if disordered {
			offset = ch.At(7.7, y0/h*13) * stripeW * 2.5
			colorShift = int(ch.At(3.1, y0/h*9)*float64(len(colors))*2) % len(colors)
			if colorShift < 0 {
				colorShift += len(colors)
			}
			widthScale = 0.6 + 0.8*(ch.At(5.5, y0/h*11)+1)/2
		}

		x := -stripeW + offset
		i := 0
		for x < w {
			sw := stripeW * widthScale
			col := colors[(i+colorShift)%len(colors)]
			c.FillPath([]orb.Point{
				{x, y0}, {x + sw*0.82, y0}, {x + sw*0.82, y0 + rowH}, {x, y0 + rowH},
			}, col)
			x += sw
			i++
		}
	}

	if cfg.Label {
		c.Label(fmt.Sprintf("stripes s%d %s", cfg.Seed, cfg.Palette.Name),
			6, c.Height()-8, cfg.Palette.Ink)
	}
	return nil
}
