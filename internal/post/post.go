// Package post applies raster post-processing passes to rendered frames.
package post

import (
	"image"
	"math/rand"

	"github.com/disintegration/gift"
)

// Glow blurs src and returns it as a translucent halo layer. Compositing
// the result under or over the sharp strokes produces a soft bloom around
// bold contour layers. strength in [0,1] scales the halo's alpha.
func Glow(src image.Image, sigma float32, strength float64) *image.NRGBA {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}

	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = uint8(float64(dst.Pix[i]) * strength)
	}
	return dst
}

// Soften applies a light Gaussian blur, used to take the digital edge off
// stamped strokes before export.
func Soften(src image.Image, sigma float32) *image.NRGBA {
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// Grain adds seeded monochrome film grain to opaque pixels. strength is the
// maximum per-channel deviation in [0,1].
func Grain(src *image.NRGBA, seed int64, strength float64) *image.NRGBA {
	if strength <= 0 {
		return src
	}
	if strength > 1 {
		strength = 1
	}
	rng := rand.New(rand.NewSource(seed))
	amp := strength * 255

	out := image.NewNRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i+3] == 0 {
			continue
		}
		d := (rng.Float64()*2 - 1) * amp
		out.Pix[i] = addClamped(out.Pix[i], d)
		out.Pix[i+1] = addClamped(out.Pix[i+1], d)
		out.Pix[i+2] = addClamped(out.Pix[i+2], d)
	}
	return out
}

func addClamped(v uint8, d float64) uint8 {
	x := float64(v) + d
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
