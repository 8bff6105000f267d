package texture

import (
	"image/color"
	"testing"
)

func TestGeneratePaperDeterminism(t *testing.T) {
	p := PaperParams{
		Width: 32, Height: 32, Seed: 7,
		Base:  color.NRGBA{R: 244, G: 240, B: 232, A: 255},
		Grain: 0.6,
	}
	a, err := GeneratePaper(p)
	if err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}
	b, err := GeneratePaper(p)
	if err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel byte %d differs between identical runs", i)
		}
	}
}

func TestGeneratePaperSeedsDiffer(t *testing.T) {
	p := PaperParams{
		Width: 32, Height: 32, Seed: 1,
		Base:  color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		Grain: 0.8,
	}
	a, _ := GeneratePaper(p)
	p.Seed = 2
	b, _ := GeneratePaper(p)

	same := true
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical paper")
	}
}

func TestGeneratePaperValidation(t *testing.T) {
	if _, err := GeneratePaper(PaperParams{Width: 0, Height: 10, Grain: 0.5}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := GeneratePaper(PaperParams{Width: 10, Height: 10, Grain: 1.5}); err == nil {
		t.Error("expected error for grain out of range")
	}
}

func TestGeneratePaperOpaque(t *testing.T) {
	img, err := GeneratePaper(PaperParams{
		Width: 8, Height: 8, Seed: 3,
		Base:  color.NRGBA{R: 230, G: 228, B: 220, A: 255},
		Grain: 0.4,
	})
	if err != nil {
		t.Fatalf("GeneratePaper: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.NRGBAAt(x, y).A != 255 {
				t.Fatalf("paper pixel (%d,%d) not opaque", x, y)
			}
		}
	}
}
