package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the face used for on-canvas labels. Overridable in tests;
// a nil face degrades Label to a no-op instead of failing the render.
var labelFace font.Face = basicfont.Face7x13

// Label draws a small single-line text label with its baseline at (x, y).
func (c *Canvas) Label(text string, x, y int, col color.NRGBA) {
	if labelFace == nil || text == "" {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
