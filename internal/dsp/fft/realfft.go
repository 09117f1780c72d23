package fft

import (
	"math"
	"math/cmplx"
)

// RealFFT computes the forward/inverse FFT of a real-valued signal by
// packing it into a half-size complex FFT and unfolding the Hermitian
// symmetry of the result, rather than running a full complex transform on
// zero-padded input. Size n must be a multiple of four.
type RealFFT struct {
	n        int
	half     *FFT
	twiddles []complex128 // n/2 entries, rotated a quarter turn from FFT's table
}

// NewRealFFT builds a RealFFT for a real input of length n.
func NewRealFFT(n int) *RealFFT {
	if n <= 0 || n%4 != 0 {
		panic("fft: real transform size must be a positive multiple of four")
	}
	half := n / 2
	tw := make([]complex128, half)
	step := -2 * math.Pi / float64(n)
	for i := 0; i < half; i++ {
		angle := float64(i+n/4) * step
		tw[i] = complex(math.Cos(angle), math.Sin(angle))
	}
	return &RealFFT{n: n, half: New(half), twiddles: tw}
}

// Size returns the real input length this RealFFT was built for.
func (r *RealFFT) Size() int {
	return r.n
}

// Forward computes the unscaled DFT of the real signal input (length n)
// into output (length n/2+1), the non-redundant half of the spectrum plus
// the Nyquist bin.
func (r *RealFFT) Forward(input []float64, output []complex128) {
	half := r.n / 2
	if len(input) != r.n || len(output) != half+1 {
		panic("fft: real forward transform length mismatch")
	}
	packed := make([]complex128, half)
	for i := range packed {
		packed[i] = complex(input[2*i], input[2*i+1])
	}
	r.half.Forward(packed, output[:half])
	output[half] = output[0]
	r.foldOut(output)
}

// Backward inverts Forward up to a factor of n/2: it writes half the
// unscaled inverse DFT of input (length n/2+1, Hermitian-packed as Forward
// produces) into the real output (length n), so Backward(Forward(x)) is x
// scaled by n/2. input is used as scratch space and is mutated.
func (r *RealFFT) Backward(input []complex128, output []float64) {
	half := r.n / 2
	if len(input) != half+1 || len(output) != r.n {
		panic("fft: real backward transform length mismatch")
	}
	r.foldIn(input)
	packed := make([]complex128, half)
	r.half.Backward(input[:half], packed)
	for i, c := range packed {
		output[2*i] = real(c)
		output[2*i+1] = imag(c)
	}
}

// foldOut turns the raw half-size complex spectrum (data[0:half] holding
// the packed transform, data[half] a duplicate of data[0] on entry) into
// the true real-input spectrum, in place.
func (r *RealFFT) foldOut(data []complex128) {
	half := r.n / 2
	data[half] = complex(real(data[0])-imag(data[0]), 0)
	data[0] = complex(real(data[0])+imag(data[0]), 0)

	for i := 1; 2*i <= half; i++ {
		w := data[i] + cmplx.Conj(data[half-i])
		z := (data[i] - cmplx.Conj(data[half-i])) * r.twiddles[i]
		data[i] = 0.5 * (w + z)
		data[half-i] = 0.5 * cmplx.Conj(w-z)
	}
}

// foldIn is the inverse of foldOut: it rebuilds the packed half-size
// spectrum the complex inverse FFT expects from the Hermitian spectrum
// Forward produced.
func (r *RealFFT) foldIn(data []complex128) {
	half := r.n / 2
	data[0] = 0.5 * complex(real(data[0])+real(data[half]), real(data[0])-real(data[half]))

	for i := 1; 2*i <= half; i++ {
		w := data[i] + cmplx.Conj(data[half-i])
		z := (data[i] - cmplx.Conj(data[half-i])) * r.twiddles[half-i]
		data[i] = 0.5 * (w + z)
		data[half-i] = 0.5 * cmplx.Conj(w-z)
	}
}
