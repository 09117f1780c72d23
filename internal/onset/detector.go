// Package onset implements the onset detection function: a windowed real
// FFT spectral-flux estimator that turns a stream of audio hops into a
// single "how much did the spectrum just change" sample per hop.
package onset

import (
	"math/cmplx"

	"github.com/linuxmatters/beatnik/internal/dsp/fft"
	"github.com/linuxmatters/beatnik/internal/ring"
)

// Detector accumulates audio into a sliding window of size N, and on every
// Process call recomputes the windowed spectrum and compares it against the
// previous frame's magnitudes. The sample is the count of frequency bins
// whose magnitude more than doubled since the last frame, plus a 1e-6 floor,
// divided by the number of bins.
type Detector struct {
	n          int
	window     *fft.HannWindow
	fft        *fft.RealFFT
	audio      *ring.Ring[float64]
	scratch    []float64
	fftOut     []complex128
	magnitudes []float64
	prevMag    []float64
}

// New builds a Detector operating on an FFT window of n samples, n a
// multiple of four.
func New(n int) *Detector {
	return &Detector{
		n:          n,
		window:     fft.NewHannWindow(n),
		fft:        fft.NewRealFFT(n),
		audio:      ring.New[float64](n),
		scratch:    make([]float64, n),
		fftOut:     make([]complex128, n/2+1),
		magnitudes: make([]float64, n/2),
		prevMag:    make([]float64, n/2),
	}
}

// Process feeds one hop of audio into the sliding window and returns the
// onset detection sample for the resulting frame.
func (d *Detector) Process(hop []float64) float64 {
	for _, s := range hop {
		d.audio.PushBack(s)
	}
	lin := d.audio.Linearise()
	d.window.Cut(lin, d.scratch)
	d.fft.Forward(d.scratch, d.fftOut)

	normFactor := 1.0 / (float64(d.n) * fft.NormCorrection)
	for i := 0; i < d.n/2; i++ {
		d.magnitudes[i] = cmplx.Abs(d.fftOut[i]) * normFactor
	}

	const floor = 1e-6
	sum := floor
	for i, mag := range d.magnitudes {
		if mag > 2*d.prevMag[i] {
			sum += 1
		}
	}
	copy(d.prevMag, d.magnitudes)

	return sum / float64(d.n/2)
}

// Magnitudes returns the most recently computed (non-Nyquist) spectral
// magnitudes, for visualisation. The returned slice aliases Detector state
// and is overwritten on the next Process call.
func (d *Detector) Magnitudes() []float64 {
	return d.magnitudes
}
