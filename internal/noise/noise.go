// Package noise wraps a coherent-noise generator behind seeded channels.
//
// Every consumer in the pipeline samples noise through an explicit Channel
// instance instead of shared process-wide state, so output depends only on
// the seed and the sampled coordinates, never on call order.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Seed offsets separating the noise channels of a contour generation run.
// Without an offset the radial, angular, and drift channels would evolve
// identically. The values are not load-bearing beyond being distinct.
const (
	AngularSeedOffset = 500
	DriftXSeedOffset  = 1000
	DriftYSeedOffset  = 2000
)

// Channel is a deterministic 2D coherent-noise source.
type Channel struct {
	p *perlin.Perlin
}

// NewChannel creates a noise channel for the given seed.
// alpha (persistence) 2, beta (lacunarity) 2, 3 octaves match the
// smoothness needed for organic motion without visible grid artifacts.
func NewChannel(seed int64) *Channel {
	return &Channel{p: perlin.NewPerlin(2.0, 2.0, 3, seed)}
}

// At samples the channel at (x, y). The result is approximately in [-1, 1].
func (c *Channel) At(x, y float64) float64 {
	return c.p.Noise2D(x, y)
}

// FBM sums octaves of the channel with the given lacunarity and gain,
// normalized so the result stays approximately in [-1, 1].
func (c *Channel) FBM(x, y float64, octaves int, lacunarity, gain float64) float64 {
	amp := 0.5
	freq := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += amp * c.p.Noise2D(x*freq, y*freq)
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
