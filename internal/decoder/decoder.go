// Package decoder implements the period decoder: it turns a window of onset
// detection samples into a single best-guess beat period, in onset-function
// frames, via adaptive thresholding, autocorrelation, a harmonic comb filter
// and a single-step Viterbi decode.
package decoder

import (
	"github.com/linuxmatters/beatnik/internal/dsp"
	"github.com/linuxmatters/beatnik/internal/dsp/acf"
	"github.com/linuxmatters/beatnik/internal/viterbi"
)

const thresholdRadius = 7

// Decoder estimates the dominant periodicity of a fixed-size window of
// onset detection samples. Not safe for concurrent use.
type Decoder struct {
	windowSize    int
	combedSize    int
	viterbiSize   int
	viterbiOffset int
	minPeriod     int

	acf *acf.ACF
	vit *viterbi.Viterbi
}

// New builds a Decoder over windows of windowSize onset samples, comb
// filtering down by decimation. windowSize must be divisible by decimation,
// and the resulting combed size must be even.
func New(windowSize, decimation int) *Decoder {
	combedSize := windowSize / decimation
	viterbiSize := combedSize / 2
	return &Decoder{
		windowSize:    windowSize,
		combedSize:    combedSize,
		viterbiSize:   viterbiSize,
		viterbiOffset: combedSize - viterbiSize,
		minPeriod:     combedSize - viterbiSize,
		acf:           acf.New(windowSize),
		vit:           viterbi.New(viterbiSize),
	}
}

// MinPeriod returns the smallest period (in onset frames) this Decoder can
// report; every reported period is below 2*MinPeriod.
func (d *Decoder) MinPeriod() int {
	return d.minPeriod
}

// CalculatePeriod returns the best-guess beat period, in onset frames, for
// a window of len(odf) == windowSize onset samples.
func (d *Decoder) CalculatePeriod(odf []float64) int {
	thresholded := dsp.AdaptiveThreshold(odf, thresholdRadius)

	correlated := make([]float64, d.windowSize)
	d.acf.Compute(thresholded, correlated)

	combed := make([]float64, d.combedSize)
	dsp.CombFilter(correlated, combed)
	combed = dsp.AdaptiveThreshold(combed, thresholdRadius)

	window := combed[d.viterbiOffset : d.viterbiOffset+d.viterbiSize]
	offset := d.vit.Decode(window)
	return offset + d.minPeriod
}
