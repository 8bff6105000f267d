package palette

import (
	"image/color"
	"math/rand"
	"sort"
	"testing"
)

func TestLookupKnownNames(t *testing.T) {
	for _, name := range Names() {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("Names() listed %q but Lookup failed", name)
		}
		if p.Name != name {
			t.Errorf("palette %q has mismatched Name field %q", name, p.Name)
		}
		if len(p.Colors) == 0 {
			t.Errorf("palette %q has no stroke colors", name)
		}
		if p.Background.A != 255 {
			t.Errorf("palette %q background must be opaque", name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("does-not-exist"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestDefaultNameExists(t *testing.T) {
	if _, ok := Lookup(DefaultName); !ok {
		t.Fatalf("default palette %q is not registered", DefaultName)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
}

func TestColorWraps(t *testing.T) {
	p, _ := Lookup("tidepool")
	n := len(p.Colors)

	if p.Color(0) != p.Color(n) {
		t.Error("index n should wrap to index 0")
	}
	if p.Color(-1) != p.Color(n-1) {
		t.Error("negative index should wrap from the end")
	}
}

func TestColorEmptyPaletteFallsBackToInk(t *testing.T) {
	p := Palette{Ink: color.NRGBA{R: 10, G: 20, B: 30, A: 255}}
	if p.Color(3) != p.Ink {
		t.Error("empty palette should return ink")
	}
}

func TestShuffledIsDeterministicPerSeed(t *testing.T) {
	p, _ := Lookup("ember")

	a := p.Shuffled(rand.New(rand.NewSource(7)))
	b := p.Shuffled(rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d", i)
		}
	}

	if len(a) != len(p.Colors) {
		t.Fatalf("shuffle changed length: %d != %d", len(a), len(p.Colors))
	}

	// The original slice must be untouched.
	orig, _ := Lookup("ember")
	for i := range orig.Colors {
		if orig.Colors[i] != p.Colors[i] {
			t.Fatal("shuffle mutated the palette")
		}
	}
}

func TestWithAlpha(t *testing.T) {
	p, _ := Lookup("dusk")
	c := WithAlpha(p.Ink, 80)
	if c.A != 80 {
		t.Fatalf("alpha not applied: %d", c.A)
	}
	if c.R != p.Ink.R || c.G != p.Ink.G || c.B != p.Ink.B {
		t.Fatal("color channels changed")
	}
}
