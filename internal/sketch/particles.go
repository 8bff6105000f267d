package sketch

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/noise"
	"github.com/inkfield/inkfield/internal/palette"
)

// Particles renders physics-free particle trails advected through a perlin
// flow field. Each trail is a fixed number of constant-length steps whose
// direction comes from the field at the current position.
type Particles struct{}

func (s *Particles) Name() string { return "particles" }

const (
	particleCount  = 420
	trailSteps     = 48
	trailStepLen   = 3.0
	flowFieldScale = 0.0035
)

func (s *Particles) Render(c *canvas.Canvas, cfg Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	flow := noise.NewChannel(cfg.Seed)

	w := float64(c.Width())
	h := float64(c.Height())

	for i := 0; i < particleCount; i++ {
		x := rng.Float64() * w
		y := rng.Float64() * h
		col := palette.WithAlpha(cfg.Palette.Color(i), 60)

		trail := make([]orb.Point, 0, trailSteps)
		trail = append(trail, orb.Point{x, y})
		for step := 0; step < trailSteps; step++ {
			angle := flow.FBM(x*flowFieldScale, y*flowFieldScale+cfg.Time*0.1, 2, 2.0, 0.5) * math.Pi * 2
			x += math.Cos(angle) * trailStepLen
			y += math.Sin(angle) * trailStepLen
			if x < 0 || y < 0 || x >= w || y >= h {
				break
			}
			trail = append(trail, orb.Point{x, y})
		}
		c.StrokePolyline(trail, 1.4, col)
	}

	if cfg.Label {
		c.Label(fmt.Sprintf("particles s%d %s", cfg.Seed, cfg.Palette.Name),
			6, c.Height()-8, cfg.Palette.Ink)
	}
	return nil
}
