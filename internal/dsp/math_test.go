package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Panics(t, func() { Mean(nil) })
}

func TestAdaptiveThreshold_NonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOfN(rapid.Float64Range(-1000, 1000), 1, 200).Draw(t, "in")
		radius := rapid.IntRange(0, 20).Draw(t, "radius")

		out := AdaptiveThreshold(in, radius)
		require.Len(t, out, len(in))
		for i, v := range out {
			assert.GreaterOrEqualf(t, v, 0.0, "out[%d] = %v", i, v)
		}
	})
}

func TestNormalise_PositiveSumIsOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOfN(rapid.Float64Range(0, 1000), 1, 200).
			Filter(func(xs []float64) bool {
				for _, x := range xs {
					if x > 0 {
						return true
					}
				}
				return false
			}).Draw(t, "in")

		out := Normalise(in)
		var sum float64
		for _, v := range out {
			if v > 0 {
				sum += v
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})
}

func TestCombFilter_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		CombFilter(make([]float64, 5), make([]float64, 2))
	})
}

func TestCombFilter_HarmonicPeak(t *testing.T) {
	// A lone impulse at in[i0] feeds directly into out[i0]'s fundamental
	// (stage 1) term with weight 1, the strongest any single out index can
	// get from one impulse; every other out index can only pick it up
	// through a wider, fractional-weight harmonic window, so out[i0] is
	// guaranteed to dominate.
	const n, stage, i0 = 64, 4, 10
	in := make([]float64, n)
	in[i0] = 1

	out := make([]float64, n/stage)
	CombFilter(in, out)

	maxIdx := 0
	for i, v := range out {
		if v > out[maxIdx] {
			maxIdx = i
		}
	}
	assert.Equal(t, i0, maxIdx)
}

func TestAdaptiveThreshold_ConstantInputIsZero(t *testing.T) {
	in := make([]float64, 10)
	for i := range in {
		in[i] = 5
	}
	out := AdaptiveThreshold(in, 3)
	for _, v := range out {
		assert.True(t, math.Abs(v) < 1e-9)
	}
}
