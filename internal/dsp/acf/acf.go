// Package acf computes the unbiased autocorrelation of a real signal via the
// Wiener-Khinchin theorem: zero-pad to twice the window length, transform,
// square the magnitude, transform back, and divide each lag k by the n-k
// products that contribute to it.
package acf

import (
	"math"

	"github.com/linuxmatters/beatnik/internal/dsp/fft"
)

// ACF computes a length-n autocorrelation from a length-n input using a
// length-2n real FFT. An ACF owns scratch buffers and is not safe for
// concurrent use, matching every other streaming component in this module.
type ACF struct {
	n       int
	fft     *fft.RealFFT
	freq    []complex128
	timeBuf []float64
}

// New builds an ACF for windows of length n.
func New(n int) *ACF {
	return &ACF{
		n:       n,
		fft:     fft.NewRealFFT(2 * n),
		freq:    make([]complex128, n+1),
		timeBuf: make([]float64, 2*n),
	}
}

// Compute writes the length-n autocorrelation of input into output.
func (a *ACF) Compute(input, output []float64) {
	if len(input) != a.n || len(output) != a.n {
		panic("acf: length mismatch")
	}
	copy(a.timeBuf[:a.n], input)
	for i := a.n; i < 2*a.n; i++ {
		a.timeBuf[i] = 0
	}
	a.fft.Forward(a.timeBuf, a.freq)
	for i, v := range a.freq {
		mag2 := real(v)*real(v) + imag(v)*imag(v)
		a.freq[i] = complex(mag2, 0)
	}
	a.fft.Backward(a.freq, a.timeBuf)

	lag := a.n
	for k := 0; k < a.n; k++ {
		output[k] = math.Abs(a.timeBuf[k]) / float64(a.n*lag)
		lag--
	}
}
