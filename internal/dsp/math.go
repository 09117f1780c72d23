// Package dsp implements the small numeric primitives shared by the onset
// detector, period decoder and beat tracker: running mean, adaptive
// thresholding, positive-sum normalisation and the harmonic comb filter.
package dsp

import "math"

// Mean returns the arithmetic mean of xs. Panics on an empty slice, mirroring
// the precondition every caller in this package already guarantees.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		panic("dsp: mean of empty slice")
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// AdaptiveThreshold subtracts a local running mean from each sample and
// clamps negative results to zero, flattening a slowly varying baseline
// while keeping sharp local peaks. radius controls the half-width of the
// averaging window on each side of a sample; the window shrinks near the
// edges of in rather than wrapping or padding.
func AdaptiveThreshold(in []float64, radius int) []float64 {
	n := len(in)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo := i - radius
		if lo < 0 {
			lo = 0
		}
		hi := i + radius
		if hi > n-1 {
			hi = n - 1
		}
		thresh := Mean(in[lo : hi+1])
		out[i] = math.Max(0, in[i]-thresh)
	}
	return out
}

// Normalise rescales in so the positive elements sum to one. Elements that
// are already non-positive are scaled by the same factor and may end up
// negative; callers that rely on normalising a non-negative vector get a
// proper probability-like distribution back. The result is undefined if in
// has no positive elements.
func Normalise(in []float64) []float64 {
	var sum float64
	for _, v := range in {
		if v > 0 {
			sum += v
		}
	}
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v / sum
	}
	return out
}

// CombFilter reinforces periodicities in in by summing harmonics: for an
// input of length len(out)*stage, out[i] (i>=1) accumulates the mean of a
// (2*s-1)-wide window centred on the s-th harmonic of lag i, for every
// harmonic stage s in [1, stage]. out[0] is always zero. Panics if len(in)
// is not a multiple of len(out).
func CombFilter(in []float64, out []float64) {
	n := len(in)
	outLen := len(out)
	if outLen == 0 || n%outLen != 0 {
		panic("dsp: comb filter input length must be a multiple of the output length")
	}
	stage := n / outLen
	out[0] = 0
	for i := 1; i < outLen; i++ {
		var sum float64
		for s := 1; s <= stage; s++ {
			a := s*(i-1) + 1
			width := 2*s - 1
			sum += Mean(in[a : a+width])
		}
		out[i] = sum
	}
}
