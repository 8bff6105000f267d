// Package palette holds the fixed color tables used by the sketches.
package palette

import (
	"image/color"
	"math/rand"
	"sort"
)

// Palette is an ordered set of stroke colors plus background and ink.
type Palette struct {
	Name       string
	Background color.NRGBA
	Ink        color.NRGBA
	Colors     []color.NRGBA
}

var palettes = map[string]Palette{
	"ink": {
		Name:       "ink",
		Background: color.NRGBA{R: 244, G: 240, B: 232, A: 255},
		Ink:        color.NRGBA{R: 34, G: 32, B: 30, A: 255},
		Colors: []color.NRGBA{
			{R: 34, G: 32, B: 30, A: 255},
			{R: 70, G: 70, B: 80, A: 255},
			{R: 110, G: 105, B: 100, A: 255},
			{R: 160, G: 150, B: 140, A: 255},
		},
	},
	"tidepool": {
		Name:       "tidepool",
		Background: color.NRGBA{R: 240, G: 244, B: 242, A: 255},
		Ink:        color.NRGBA{R: 20, G: 48, B: 60, A: 255},
		Colors: []color.NRGBA{
			{R: 105, G: 160, B: 210, A: 255},
			{R: 70, G: 110, B: 150, A: 255},
			{R: 122, G: 170, B: 120, A: 255},
			{R: 218, G: 198, B: 174, A: 255},
			{R: 232, G: 202, B: 132, A: 255},
		},
	},
	"ember": {
		Name:       "ember",
		Background: color.NRGBA{R: 30, G: 26, B: 24, A: 255},
		Ink:        color.NRGBA{R: 240, G: 226, B: 210, A: 255},
		Colors: []color.NRGBA{
			{R: 230, G: 110, B: 60, A: 255},
			{R: 200, G: 70, B: 50, A: 255},
			{R: 250, G: 180, B: 90, A: 255},
			{R: 150, G: 50, B: 60, A: 255},
			{R: 90, G: 40, B: 50, A: 255},
		},
	},
	"meadow": {
		Name:       "meadow",
		Background: color.NRGBA{R: 246, G: 244, B: 235, A: 255},
		Ink:        color.NRGBA{R: 40, G: 55, B: 38, A: 255},
		Colors: []color.NRGBA{
			{R: 120, G: 170, B: 110, A: 255},
			{R: 70, G: 120, B: 70, A: 255},
			{R: 190, G: 186, B: 178, A: 255},
			{R: 230, G: 170, B: 110, A: 255},
		},
	},
	"dusk": {
		Name:       "dusk",
		Background: color.NRGBA{R: 38, G: 36, B: 52, A: 255},
		Ink:        color.NRGBA{R: 235, G: 230, B: 240, A: 255},
		Colors: []color.NRGBA{
			{R: 190, G: 170, B: 190, A: 255},
			{R: 140, G: 180, B: 220, A: 255},
			{R: 120, G: 90, B: 130, A: 255},
			{R: 255, G: 230, B: 140, A: 255},
			{R: 200, G: 190, B: 210, A: 255},
		},
	},
}

// DefaultName is the palette used when none is configured.
const DefaultName = "tidepool"

// Lookup returns the palette for name.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// Names lists the available palette names in sorted order.
func Names() []string {
	out := make([]string, 0, len(palettes))
	for name := range palettes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Color returns the i-th stroke color, wrapping modulo the palette size.
func (p Palette) Color(i int) color.NRGBA {
	if len(p.Colors) == 0 {
		return p.Ink
	}
	i %= len(p.Colors)
	if i < 0 {
		i += len(p.Colors)
	}
	return p.Colors[i]
}

// Shuffled returns a copy of the stroke colors in an order drawn from rng.
// The caller owns the rng, keeping the shuffle reproducible per seed.
func (p Palette) Shuffled(rng *rand.Rand) []color.NRGBA {
	out := make([]color.NRGBA, len(p.Colors))
	copy(out, p.Colors)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
