// Package fft implements the complex and real-input fast Fourier transforms
// the onset detector and autocorrelation stage are built on. The transform
// is an unscaled radix-4/radix-2 decimation-in-time FFT: forward and inverse
// differ only in twiddle conjugation, and neither direction applies a 1/N
// normalisation factor. Callers that need a normalised transform (or its
// inverse to round-trip back to the original scale) apply the factor
// themselves; see the onset detector and ACF for the two places that do.
//
// This is a direct, explicit port: no aliasing of real memory as complex
// memory, no reliance on platform-specific layout tricks.
package fft

import (
	"math"
	"math/cmplx"
)

// FFT holds a precomputed twiddle table for a fixed transform size N, a
// power of two. An FFT is immutable after construction and safe to share
// across goroutines and to reuse across many Forward/Backward calls.
type FFT struct {
	n        int
	twiddles []complex128 // n+1 entries, the unit circle sampled at n points plus wraparound
}

// New builds an FFT for transform size n, which must be a power of two.
func New(n int) *FFT {
	if n <= 0 || n&(n-1) != 0 {
		panic("fft: size must be a positive power of two")
	}
	tw := make([]complex128, n+1)
	step := -2 * math.Pi / float64(n)
	for i := 0; i <= n; i++ {
		tw[i] = cmplx.Rect(1, float64(i)*step)
	}
	return &FFT{n: n, twiddles: tw}
}

// Size returns the transform length this FFT was built for.
func (f *FFT) Size() int {
	return f.n
}

// Forward computes the unscaled DFT of input into output. Both slices must
// have length Size().
func (f *FFT) Forward(input, output []complex128) {
	f.checkLen(input)
	f.checkLen(output)
	f.stepInto(false, input, 0, 1, f.n, output)
}

// Backward computes the unscaled inverse DFT of input into output (without
// the 1/N factor). Both slices must have length Size().
func (f *FFT) Backward(input, output []complex128) {
	f.checkLen(input)
	f.checkLen(output)
	f.stepInto(true, input, 0, 1, f.n, output)
}

func (f *FFT) checkLen(s []complex128) {
	if len(s) != f.n {
		panic("fft: slice length does not match transform size")
	}
}

// stepInto recursively decomposes the transform: offset/stride describe how
// to read the original input array for this subproblem, nOut is this
// subproblem's size, and output is where this subproblem's result is
// written (a contiguous slice of the caller's output array).
func (f *FFT) stepInto(inverse bool, input []complex128, offset, stride, nOut int, output []complex128) {
	radix := 2
	if nOut%4 == 0 {
		radix = 4
	}
	remainder := nOut / radix

	if remainder == 1 {
		for i := 0; i < nOut; i++ {
			output[i] = input[offset+i*stride]
		}
	} else {
		childStride := f.n / remainder
		for i := 0; i < radix; i++ {
			f.stepInto(inverse, input, offset+i*stride, childStride, remainder, output[i*remainder:(i+1)*remainder])
		}
	}

	if radix == 4 {
		f.butterflyRadix4(inverse, stride, output)
	} else {
		f.butterflyRadix2(inverse, stride, output)
	}
}

func (f *FFT) twiddle(inverse bool, stride, index int) complex128 {
	if inverse {
		return f.twiddles[f.n-index*stride]
	}
	return f.twiddles[index*stride]
}

func (f *FFT) butterflyRadix2(inverse bool, stride int, output []complex128) {
	half := len(output) / 2
	for i := 0; i < half; i++ {
		t := output[i+half] * f.twiddle(inverse, stride, i)
		output[i+half] = output[i] - t
		output[i] += t
	}
}

func (f *FFT) butterflyRadix4(inverse bool, stride int, output []complex128) {
	quarter := len(output) / 4
	sign := complex(0, -1)
	if inverse {
		sign = complex(0, 1)
	}
	for i := 0; i < quarter; i++ {
		s0 := output[i+quarter] * f.twiddle(inverse, stride, 1*i)
		s1 := output[i+2*quarter] * f.twiddle(inverse, stride, 2*i)
		s2 := output[i+3*quarter] * f.twiddle(inverse, stride, 3*i)

		s5 := output[i] - s1
		output[i] += s1

		s3 := s0 + s2
		s4 := (s0 - s2) * sign

		output[i+2*quarter] = output[i] - s3
		output[i] += s3
		output[i+quarter] = s5 + s4
		output[i+3*quarter] = s5 - s4
	}
}
