// Package canvas is a minimal immediate-mode CPU canvas. Polygon fills go
// through the x/image vector rasterizer; strokes are stamped as overlapping
// discs along the polyline, which gives round joins and caps for free.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/paulmach/orb"
	"golang.org/x/image/vector"
)

// Canvas wraps an NRGBA image with drawing primitives.
type Canvas struct {
	img *image.NRGBA
	w   int
	h   int
}

// New creates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
		w:   width,
		h:   height,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.NRGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPath fills the closed polygon described by pts using the even-odd
// rasterizer. Fewer than 3 points is a no-op.
func (c *Canvas) FillPath(pts []orb.Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	ras := vector.NewRasterizer(c.w, c.h)
	ras.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, pt := range pts[1:] {
		ras.LineTo(float32(pt[0]), float32(pt[1]))
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, c.w, c.h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			cc := col
			cc.A = uint8(uint32(col.A) * uint32(a) / 255)
			c.blend(x, y, cc)
		}
	}
}

// StrokePolyline stamps discs of the given width along the polyline.
func (c *Canvas) StrokePolyline(pts []orb.Point, width float64, col color.NRGBA) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	radius := width / 2
	step := 0.75
	if width >= 5 {
		step = 0.9
	}

	for i := 0; i < len(pts)-1; i++ {
		x0, y0 := pts[i][0], pts[i][1]
		x1, y1 := pts[i+1][0], pts[i+1][1]

		dx := x1 - x0
		dy := y1 - y0
		segLen := math.Hypot(dx, dy)
		if segLen == 0 {
			c.FillCircle(x0, y0, radius, col)
			continue
		}

		steps := int(math.Ceil(segLen / step))
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			c.FillCircle(x0+dx*t, y0+dy*t, radius, col)
		}
	}
}

// FillCircle paints a hard-edged disc centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, radius float64, col color.NRGBA) {
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= c.w {
		maxX = c.w - 1
	}
	if maxY >= c.h {
		maxY = c.h - 1
	}

	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5) - cx
			dy := (float64(y) + 0.5) - cy
			if dx*dx+dy*dy <= r2 {
				c.blend(x, y, col)
			}
		}
	}
}

// blend composites col over the pixel at (x, y) in non-premultiplied space.
func (c *Canvas) blend(x, y int, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	if col.A == 255 {
		c.img.Pix[i] = col.R
		c.img.Pix[i+1] = col.G
		c.img.Pix[i+2] = col.B
		c.img.Pix[i+3] = 255
		return
	}

	sa := uint32(col.A)
	da := uint32(c.img.Pix[i+3])
	outA := sa + da*(255-sa)/255
	if outA == 0 {
		return
	}
	blendCh := func(s, d uint8) uint8 {
		v := (uint32(s)*sa + uint32(d)*da*(255-sa)/255) / outA
		return uint8(v)
	}
	c.img.Pix[i] = blendCh(col.R, c.img.Pix[i])
	c.img.Pix[i+1] = blendCh(col.G, c.img.Pix[i+1])
	c.img.Pix[i+2] = blendCh(col.B, c.img.Pix[i+2])
	c.img.Pix[i+3] = uint8(outA)
}
