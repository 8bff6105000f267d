package contour

import (
	"math"
	"testing"
)

func scenarioParams() Params {
	p := DefaultParams(42)
	p.Points = 24
	p.NoiseFreq = 3.5
	p.TimeFreq = 0.8
	p.Tension = 1.2
	return p
}

func TestFieldDeterminism(t *testing.T) {
	p := scenarioParams()
	a := NewField(p, 800, 600)
	b := NewField(p, 800, 600)

	for _, tt := range []float64{0, 0.35, 1.7} {
		pa := a.PolygonAt(tt)
		pb := b.PolygonAt(tt)
		if len(pa) != len(pb) {
			t.Fatalf("t=%v: point counts differ: %d vs %d", tt, len(pa), len(pb))
		}
		for i := range pa {
			if pa[i] != pb[i] {
				t.Fatalf("t=%v index %d: %v != %v", tt, i, pa[i], pb[i])
			}
		}
	}
}

func TestFieldPointCountInvariant(t *testing.T) {
	for _, n := range []int{3, 5, 24, 100} {
		p := scenarioParams()
		p.Points = n
		f := NewField(p, 640, 640)
		got := f.PolygonAt(1.25)
		if len(got) != n {
			t.Errorf("N=%d: displaced polygon has %d points", n, len(got))
		}
	}
}

func TestFieldDisplacementNearBaseAtTimeZero(t *testing.T) {
	// At t=0 the noise value need not be zero, but the displaced polygon
	// must stay within the configured amplitudes of the base polygon.
	p := scenarioParams()
	f := NewField(p, 800, 600)
	base := f.Base()
	displaced := f.PolygonAt(0)

	minDim := 600.0
	maxShift := p.RadialRatio*minDim + p.DriftRatio*minDim + p.AngularAmp*minDim
	for i := range displaced {
		dx := displaced[i][0] - base.Points[i][0]
		dy := displaced[i][1] - base.Points[i][1]
		if math.Hypot(dx, dy) > maxShift {
			t.Errorf("index %d displaced by %v, beyond amplitude bound %v",
				i, math.Hypot(dx, dy), maxShift)
		}
	}
}

func TestFieldIndependentChannels(t *testing.T) {
	// With distinct seed offsets the radial and angular channels must not
	// produce identical sequences.
	p := scenarioParams()
	f := NewField(p, 512, 512)

	n := p.Points
	same := true
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n) * p.NoiseFreq
		if f.radial.At(u, 0.4) != f.angular.At(u, 0.4) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("radial and angular channels returned identical sequences")
	}
}

func TestBasePolygonPureInSeed(t *testing.T) {
	p := scenarioParams()
	a := NewBasePolygon(p, 1024, 768)
	b := NewBasePolygon(p, 1024, 768)
	if a.Center != b.Center {
		t.Fatalf("centers differ: %v vs %v", a.Center, b.Center)
	}
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("index %d: %v != %v", i, a.Points[i], b.Points[i])
		}
	}

	p2 := p
	p2.Seed = 43
	c := NewBasePolygon(p2, 1024, 768)
	if c.Center == a.Center {
		t.Error("different seeds produced the same center")
	}
}

func TestBasePolygonCenterOffsetBound(t *testing.T) {
	p := scenarioParams()
	for seed := int64(0); seed < 50; seed++ {
		p.Seed = seed
		bp := NewBasePolygon(p, 400, 300)
		maxOff := p.CenterOffsetRatio * 300
		if math.Abs(bp.Center[0]-200) > maxOff+1e-9 {
			t.Fatalf("seed %d: center x %v beyond offset bound", seed, bp.Center[0])
		}
		if math.Abs(bp.Center[1]-150) > maxOff+1e-9 {
			t.Fatalf("seed %d: center y %v beyond offset bound", seed, bp.Center[1])
		}
	}
}
