package fft

import "math"

// NormCorrection is the constant factor the Hann window's amplitude must be
// divided out by when converting a windowed FFT bin back into an amplitude
// comparable to an unwindowed signal of the same size.
const NormCorrection = 0.5

// HannWindow applies a precomputed Hann window to a fixed-size buffer.
type HannWindow struct {
	coeffs []float64
}

// NewHannWindow builds a Hann window of length n.
func NewHannWindow(n int) *HannWindow {
	coeffs := make([]float64, n)
	for i := range coeffs {
		rel := float64(i) / float64(n)
		coeffs[i] = (1 - math.Cos(rel*2*math.Pi)) / 2
	}
	return &HannWindow{coeffs: coeffs}
}

// Cut multiplies in by the window into out. in, out and the window must all
// share the same length.
func (w *HannWindow) Cut(in, out []float64) {
	if len(in) != len(w.coeffs) || len(out) != len(w.coeffs) {
		panic("fft: hann window length mismatch")
	}
	for i, c := range w.coeffs {
		out[i] = c * in[i]
	}
}
