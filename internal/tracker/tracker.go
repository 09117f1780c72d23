// Package tracker implements the beat tracker: a cumulative-score dynamic
// program that, given a running onset detection signal and a period guess
// from the decoder, locks onto a beat phase and lets a caller recover the
// beat period by walking its backlinks.
package tracker

import (
	"math"

	"github.com/linuxmatters/beatnik/internal/ring"
)

// alpha balances how much a new cumulative score depends on the raw onset
// sample versus the best continuation of an earlier beat.
const alpha = 0.9

// Tracker accumulates a cumulative beat-strength score over a ring of the
// last minPeriod*beatsCount onset samples, alongside a parallel ring of
// backlinks recording which earlier frame each score built on. Not safe for
// concurrent use.
type Tracker struct {
	minPeriod int
	maxPeriod int
	n         int

	periodGuess int
	counter     int

	cumulativeScore *ring.Ring[float64]
	backlink        *ring.Ring[int]
	window          *skewedWindow
}

// New builds a Tracker with the given minimum period (in onset frames) and
// a history depth of beatsCount beats at that period.
func New(minPeriod, beatsCount int) *Tracker {
	n := minPeriod * beatsCount
	t := &Tracker{
		minPeriod:       minPeriod,
		maxPeriod:       2 * minPeriod,
		n:               n,
		cumulativeScore: ring.New[float64](n),
		backlink:        ring.New[int](n),
		window:          newSkewedWindow(minPeriod),
	}
	return t
}

func (t *Tracker) isValidPeriod(p int) bool {
	return p >= t.minPeriod && p < t.maxPeriod
}

// SetPeriodGuess updates the period the tracker scores new samples against.
// Panics if p falls outside [minPeriod, 2*minPeriod).
func (t *Tracker) SetPeriodGuess(p int) {
	if !t.isValidPeriod(p) {
		panic("tracker: period guess out of range")
	}
	t.periodGuess = p
}

// NewEstimateExpected reports whether EstimatePeriod is due: once a period
// guess is set, the tracker wants a fresh estimate every periodGuess
// samples so the backlink chain it builds stays anchored to a recent beat.
func (t *Tracker) NewEstimateExpected() bool {
	return t.isValidPeriod(t.periodGuess) && t.counter > t.periodGuess
}

// UpdateScore folds one onset detection sample into the cumulative score
// history and returns NewEstimateExpected's value after the update.
func (t *Tracker) UpdateScore(odf float64) bool {
	if !t.isValidPeriod(t.periodGuess) {
		return false
	}
	maxIdx, maxVal := t.window.findMaxScore(t.periodGuess, t.cumulativeScore.Reversed())

	newScore := (1-alpha)*odf + alpha*maxVal
	t.cumulativeScore.PushBack(newScore)
	t.backlink.PushBack(maxIdx)
	t.counter++

	return t.NewEstimateExpected()
}

// EstimatePeriod finds the highest-scoring beat within the last periodGuess
// frames, then walks its backlink chain toward the past, averaging the
// inter-beat gaps it finds. Resets the due-for-a-new-estimate counter.
func (t *Tracker) EstimatePeriod() float64 {
	t.counter = 0

	maxIdx := 0
	maxVal := math.Inf(-1)
	for i := 0; i < t.periodGuess; i++ {
		v := t.cumulativeScore.At(t.n - 1 - i)
		if v > maxVal {
			maxVal = v
			maxIdx = i
		}
	}
	lastBeat := t.n - 1 - maxIdx

	var sum float64
	var count float64
	for lastBeat > 0 && lastBeat > t.backlink.At(lastBeat) {
		lag := t.backlink.At(lastBeat)
		if lag <= 0 {
			break
		}
		sum += float64(lag)
		count++
		lastBeat -= lag
	}

	if count == 0 {
		return float64(t.minPeriod)
	}
	return sum / count
}

// Clear resets all accumulated score and backlink history and the current
// period guess, as if the Tracker had just been constructed.
func (t *Tracker) Clear() {
	t.periodGuess = 0
	t.counter = 0
	t.cumulativeScore = ring.New[float64](t.n)
	t.backlink = ring.New[int](t.n)
}
