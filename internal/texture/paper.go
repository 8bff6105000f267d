// Package texture generates the seeded paper background the sketches draw
// onto.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/inkfield/inkfield/internal/noise"
)

// PaperParams configures the paper background generator.
type PaperParams struct {
	Width  int
	Height int
	Seed   int64
	Base   color.NRGBA
	// Grain in [0,1] controls how visible the paper structure is.
	Grain float64
}

// paperSeedOffset keeps the paper channel independent from the sketch's own
// noise channels when both share a run seed.
const paperSeedOffset = 4242

// GeneratePaper renders a cold-pressed paper texture: the base tint plus a
// coarse ridge structure and fine fiber grain, both noise-driven. Pure in
// the parameters.
func GeneratePaper(p PaperParams) (*image.NRGBA, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("paper dimensions must be positive")
	}
	if p.Grain < 0 || p.Grain > 1 {
		return nil, fmt.Errorf("grain must be within [0,1]")
	}

	ch := noise.NewChannel(p.Seed + paperSeedOffset)

	grainStrength := 0.03 + 0.06*p.Grain
	ridgeStrength := 0.02 + 0.05*p.Grain

	baseR := float64(p.Base.R) / 255
	baseG := float64(p.Base.G) / 255
	baseB := float64(p.Base.B) / 255

	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		v := float64(y) / float64(p.Height)
		for x := 0; x < p.Width; x++ {
			u := float64(x) / float64(p.Width)

			coarse := (ch.FBM(u*3, v*3, 3, 2.0, 0.5) + 1) * 0.5
			fine := (ch.FBM(u*18+0.13, v*18+0.41, 4, 2.2, 0.55) + 1) * 0.5

			ridge := 1.0 - math.Abs(2.0*coarse-1.0)
			ridge = math.Pow(ridge, 2.4)

			delta := grainStrength*(fine-0.5) + ridgeStrength*(ridge-0.5)

			img.SetNRGBA(x, y, color.NRGBA{
				R: toByte(baseR + delta),
				G: toByte(baseG + delta),
				B: toByte(baseB + delta),
				A: 255,
			})
		}
	}
	return img, nil
}

func toByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v * 255)
}
