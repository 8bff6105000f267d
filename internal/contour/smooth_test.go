package contour

import (
	"math"
	"testing"
)

func TestSmoothCircularIdentityBelowThreshold(t *testing.T) {
	in := []float64{3, -1, 4, -1, 5, -9, 2, 6}
	out := SmoothCircular(in, 0.005)

	if len(out) != len(in) {
		t.Fatalf("length changed: got %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("index %d changed: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestSmoothCircularWrapsAroundEnds(t *testing.T) {
	n := 16
	base := make([]float64, n)
	perturbed := make([]float64, n)
	copy(perturbed, base)
	perturbed[n-1] = 10

	outBase := SmoothCircular(base, 1.0)
	outPert := SmoothCircular(perturbed, 1.0)

	// Index 0 must feel a perturbation at index N-1.
	if outPert[0] == outBase[0] {
		t.Fatalf("output at index 0 insensitive to input at index %d; kernel is not circular", n-1)
	}
}

func TestSmoothCircularNormalization(t *testing.T) {
	// A constant sequence must stay constant for any strength: the weighted
	// mean is normalized by the weights actually used.
	in := make([]float64, 10)
	for i := range in {
		in[i] = 7.5
	}
	for _, s := range []float64{0.2, 1.0, 2.5, 10} {
		out := SmoothCircular(in, s)
		for i, v := range out {
			if math.Abs(v-7.5) > 1e-12 {
				t.Fatalf("strength %v: index %d = %v, want 7.5", s, i, v)
			}
		}
	}
}

func TestSmoothCircularReducesVariance(t *testing.T) {
	in := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	out := SmoothCircular(in, 1.5)
	for i, v := range out {
		if math.Abs(v) >= 1 {
			t.Errorf("index %d not attenuated: |%v| >= 1", i, v)
		}
	}
}

func TestSmoothCircularEmptyInput(t *testing.T) {
	out := SmoothCircular(nil, 1.0)
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d values", len(out))
	}
}
