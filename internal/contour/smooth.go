package contour

import "math"

// smoothingIdentityThreshold is the strength below which SmoothCircular is
// the identity. Skipping avoids a divide-by-zero in the weight sum.
const smoothingIdentityThreshold = 0.01

// SmoothCircular applies a Gaussian-weighted moving average with
// wrap-around indexing to vals. The sequence is circular: the window at
// index 0 reaches back to the end of the slice, and the result is
// normalized by the sum of the weights actually used.
func SmoothCircular(vals []float64, strength float64) []float64 {
	n := len(vals)
	out := make([]float64, n)
	if strength < smoothingIdentityThreshold || n == 0 {
		copy(out, vals)
		return out
	}

	halfWidth := int(math.Round(strength * 5))
	if halfWidth < 1 {
		halfWidth = 1
	}

	inv := 1.0 / (2*strength*strength + 1e-9)
	weights := make([]float64, halfWidth+1)
	for k := 0; k <= halfWidth; k++ {
		weights[k] = math.Exp(-float64(k*k) * inv)
	}

	for i := 0; i < n; i++ {
		sum := 0.0
		wsum := 0.0
		for k := -halfWidth; k <= halfWidth; k++ {
			j := i + k
			j %= n
			if j < 0 {
				j += n
			}
			w := weights[abs(k)]
			sum += vals[j] * w
			wsum += w
		}
		out[i] = sum / wsum
	}
	return out
}

func abs(k int) int {
	if k < 0 {
		return -k
	}
	return k
}
