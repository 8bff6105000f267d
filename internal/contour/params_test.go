package contour

import "testing"

func TestParamsClamped(t *testing.T) {
	p := Params{
		Seed:              1,
		Points:            1,
		Tension:           -5,
		Smoothing:         -2,
		Layers:            0,
		TimeStep:          -0.1,
		BoldEvery:         -3,
		RadiusMinRatio:    0.9,
		RadiusMaxRatio:    0.1, // below min, must be raised
		CenterOffsetRatio: 2,
		RadialRatio:       -1,
		DriftRatio:        7,
	}
	c := p.Clamped()

	if c.Points != 3 {
		t.Errorf("Points = %d, want 3", c.Points)
	}
	if c.Tension != 0.1 {
		t.Errorf("Tension = %v, want 0.1", c.Tension)
	}
	if c.Smoothing != 0 {
		t.Errorf("Smoothing = %v, want 0", c.Smoothing)
	}
	if c.Layers != 1 {
		t.Errorf("Layers = %d, want 1", c.Layers)
	}
	if c.TimeStep != 0 {
		t.Errorf("TimeStep = %v, want 0", c.TimeStep)
	}
	if c.BoldEvery != 0 {
		t.Errorf("BoldEvery = %d, want 0", c.BoldEvery)
	}
	if c.RadiusMaxRatio < c.RadiusMinRatio {
		t.Errorf("RadiusMaxRatio %v below RadiusMinRatio %v", c.RadiusMaxRatio, c.RadiusMinRatio)
	}
	if c.CenterOffsetRatio != 0.5 {
		t.Errorf("CenterOffsetRatio = %v, want 0.5", c.CenterOffsetRatio)
	}
	if c.RadialRatio != 0 || c.DriftRatio != 1 {
		t.Errorf("ratios not clamped: radial %v, drift %v", c.RadialRatio, c.DriftRatio)
	}
	if c.AngularSeedOffset != 500 || c.DriftXSeedOffset != 1000 || c.DriftYSeedOffset != 2000 {
		t.Errorf("zero seed offsets not defaulted: %d/%d/%d",
			c.AngularSeedOffset, c.DriftXSeedOffset, c.DriftYSeedOffset)
	}

	// Clamping an in-range record must be the identity.
	d := DefaultParams(9)
	if d.Clamped() != d {
		t.Error("Clamped() changed an already valid record")
	}

	// Tension above the ceiling clamps to 3.
	p.Tension = 50
	if got := p.Clamped().Tension; got != 3.0 {
		t.Errorf("Tension = %v, want 3.0", got)
	}
}
