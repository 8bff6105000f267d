// Package sketch holds the procedural sketches and their registry. Each
// sketch is a self-contained visual program: a pure function from
// (seed, size, time) to immediate-mode drawing calls on a canvas.
package sketch

import (
	"fmt"
	"sort"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/contour"
	"github.com/inkfield/inkfield/internal/palette"
)

// Config is the parameter record handed to a sketch for one frame. Treat it
// as copy-on-write: build a new Config per frame instead of mutating one.
type Config struct {
	Seed   int64
	Width  int
	Height int

	// Frame is the frame index, Time the time sample it maps to.
	Frame int
	Time  float64

	Palette palette.Palette

	// Contour configures the contours sketch; other sketches ignore it.
	Contour contour.Params

	// Label draws a small caption with the seed and key parameters.
	Label bool
}

// Sketch renders one frame onto a transparent canvas. The paper background
// and post passes are applied by the caller.
type Sketch interface {
	Name() string
	Render(c *canvas.Canvas, cfg Config) error
}

var registry = map[string]Sketch{}

// Register adds a sketch to the registry. Duplicate names panic: they are a
// programming error, not a runtime condition.
func Register(s Sketch) {
	if _, exists := registry[s.Name()]; exists {
		panic(fmt.Sprintf("sketch %q registered twice", s.Name()))
	}
	registry[s.Name()] = s
}

// Lookup returns the sketch registered under name.
func Lookup(name string) (Sketch, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names lists registered sketch names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register(&Contours{})
	Register(&Stripes{})
	Register(&Grid{})
	Register(&Particles{})
}
