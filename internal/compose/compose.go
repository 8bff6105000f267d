// Package compose stacks render passes into a single frame.
package compose

import (
	"fmt"
	"image"
	"image/color"
)

// OverBase alpha-composites the pass images, in order, over an opaque base
// (typically the paper texture). Every image must share the base's bounds.
func OverBase(base image.Image, passes []image.Image) (*image.NRGBA, error) {
	if base == nil {
		return nil, fmt.Errorf("base image is required")
	}
	bounds := base.Bounds()
	dst := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.Set(x, y, base.At(x, y))
		}
	}

	for i, pass := range passes {
		if pass == nil {
			continue
		}
		if pass.Bounds() != bounds {
			return nil, fmt.Errorf("pass %d bounds %v do not match base %v", i, pass.Bounds(), bounds)
		}
		alphaOver(dst, pass)
	}
	return dst, nil
}

// alphaOver composites src over dst in place using non-premultiplied alpha.
func alphaOver(dst *image.NRGBA, src image.Image) {
	bounds := dst.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sr, sg, sb, sa := src.At(x, y).RGBA()
			if sa == 0 {
				continue
			}
			if sa == 0xffff {
				dst.Set(x, y, src.At(x, y))
				continue
			}

			d := dst.NRGBAAt(x, y)
			// Convert the premultiplied RGBA() values back to straight alpha.
			a := float64(sa) / 0xffff
			srf := float64(sr) / float64(sa) * 255
			sgf := float64(sg) / float64(sa) * 255
			sbf := float64(sb) / float64(sa) * 255

			da := float64(d.A) / 255
			outA := a + da*(1-a)
			if outA == 0 {
				continue
			}
			blend := func(s float64, dv uint8) uint8 {
				v := (s*a + float64(dv)*da*(1-a)) / outA
				if v > 255 {
					v = 255
				}
				return uint8(v + 0.5)
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: blend(srf, d.R),
				G: blend(sgf, d.G),
				B: blend(sbf, d.B),
				A: uint8(outA*255 + 0.5),
			})
		}
	}
}
