package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfield/inkfield/internal/canvas"
	"github.com/inkfield/inkfield/internal/palette"
)

func testConfig(seed int64) Config {
	pal, _ := palette.Lookup(palette.DefaultName)
	return Config{
		Seed:    seed,
		Width:   96,
		Height:  96,
		Time:    0.5,
		Palette: pal,
	}
}

func TestRegistryContainsAllSketches(t *testing.T) {
	assert.Equal(t, []string{"contours", "grid", "particles", "stripes"}, Names())

	for _, name := range Names() {
		s, ok := Lookup(name)
		require.True(t, ok, "lookup %s", name)
		assert.Equal(t, name, s.Name())
	}

	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestEverySketchRendersDeterministically(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, _ := Lookup(name)
			cfg := testConfig(42)

			render := func() []byte {
				c := canvas.New(cfg.Width, cfg.Height)
				require.NoError(t, s.Render(c, cfg))
				return c.Image().Pix
			}

			a := render()
			b := render()
			assert.Equal(t, a, b, "two renders with identical config must match")
		})
	}
}

func TestEverySketchVariesWithSeed(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, _ := Lookup(name)

			render := func(seed int64) []byte {
				cfg := testConfig(seed)
				c := canvas.New(cfg.Width, cfg.Height)
				require.NoError(t, s.Render(c, cfg))
				return c.Image().Pix
			}

			assert.NotEqual(t, render(1), render(2), "seeds 1 and 2 produced identical output")
		})
	}
}

func TestSketchesDrawSomething(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, _ := Lookup(name)
			cfg := testConfig(7)
			c := canvas.New(cfg.Width, cfg.Height)
			require.NoError(t, s.Render(c, cfg))

			painted := 0
			pix := c.Image().Pix
			for i := 3; i < len(pix); i += 4 {
				if pix[i] != 0 {
					painted++
				}
			}
			assert.Greater(t, painted, 0, "sketch left the canvas fully transparent")
		})
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() { Register(&Contours{}) })
}
