package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/argusdusty/gofft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// gofft.FFT computes the same unscaled forward transform convention this
// package's FFT does, so it serves as an independent cross-check on the
// hand-ported radix-4/2 kernel.
func TestFFT_MatchesIndependentOracle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logN := rapid.IntRange(1, 8).Draw(t, "logN")
		n := 1 << logN

		input := make([]complex128, n)
		oracle := make([]complex128, n)
		for i := range input {
			re := rapid.Float64Range(-10, 10).Draw(t, "re")
			im := rapid.Float64Range(-10, 10).Draw(t, "im")
			input[i] = complex(re, im)
			oracle[i] = input[i]
		}

		require.NoError(t, gofft.FFT(oracle))

		got := make([]complex128, n)
		New(n).Forward(input, got)

		for i := range got {
			assert.InDeltaf(t, real(oracle[i]), real(got[i]), 1e-6, "bin %d real", i)
			assert.InDeltaf(t, imag(oracle[i]), imag(got[i]), 1e-6, "bin %d imag", i)
		}
	})
}

func TestFFT_Impulse(t *testing.T) {
	const n = 16
	f := New(n)
	for k := 0; k < n; k++ {
		input := make([]complex128, n)
		input[k] = 1
		output := make([]complex128, n)
		f.Forward(input, output)

		for bin := 0; bin < n; bin++ {
			want := cmplx.Rect(1, -2*math.Pi*float64(k*bin)/float64(n))
			assert.InDeltaf(t, real(want), real(output[bin]), 1e-9, "k=%d bin=%d", k, bin)
			assert.InDeltaf(t, imag(want), imag(output[bin]), 1e-9, "k=%d bin=%d", k, bin)
		}
	}
}

func TestFFT_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logN := rapid.IntRange(1, 7).Draw(t, "logN")
		n := 1 << logN

		f := New(n)
		input := make([]complex128, n)
		for i := range input {
			input[i] = complex(rapid.Float64Range(-5, 5).Draw(t, "re"), rapid.Float64Range(-5, 5).Draw(t, "im"))
		}

		freq := make([]complex128, n)
		f.Forward(input, freq)
		back := make([]complex128, n)
		f.Backward(freq, back)

		for i := range back {
			want := input[i] * complex(float64(n), 0)
			assert.InDeltaf(t, real(want), real(back[i]), 1e-6*float64(n), "index %d", i)
			assert.InDeltaf(t, imag(want), imag(back[i]), 1e-6*float64(n), "index %d", i)
		}
	})
}

func TestNew_RejectsNonPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(3) })
	assert.Panics(t, func() { New(100) })
}

func TestRealFFT_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logN := rapid.IntRange(2, 9).Draw(t, "logN")
		n := 4 * (1 << logN)

		r := NewRealFFT(n)
		input := make([]float64, n)
		for i := range input {
			input[i] = rapid.Float64Range(-5, 5).Draw(t, "x")
		}

		freq := make([]complex128, n/2+1)
		r.Forward(input, freq)

		back := make([]float64, n)
		r.Backward(freq, back)

		for i := range back {
			assert.InDeltaf(t, input[i]*float64(n)/2, back[i], 1e-4*float64(n), "index %d", i)
		}
	})
}

func TestRealFFT_MatchesComplexOracle(t *testing.T) {
	const n = 64
	r := NewRealFFT(n)

	input := make([]float64, n)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * 5 * float64(i) / float64(n))
	}

	got := make([]complex128, n/2+1)
	r.Forward(input, got)

	oracle := make([]complex128, n)
	for i, v := range input {
		oracle[i] = complex(v, 0)
	}
	require.NoError(t, gofft.FFT(oracle))

	for bin := 0; bin <= n/2; bin++ {
		assert.InDeltaf(t, real(oracle[bin]), real(got[bin]), 1e-6, "bin %d real", bin)
		assert.InDeltaf(t, imag(oracle[bin]), imag(got[bin]), 1e-6, "bin %d imag", bin)
	}
}

func TestNewRealFFT_RejectsNonMultipleOfFour(t *testing.T) {
	assert.Panics(t, func() { NewRealFFT(0) })
	assert.Panics(t, func() { NewRealFFT(6) })
}
