package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeScores []float64

func (f fakeScores) Len() int            { return len(f) }
func (f fakeScores) At(i int) float64 { return f[i] }

func TestSkewedWindow_FindMaxScore_PrefersLagNearPeriod(t *testing.T) {
	const minPeriod, period = 16, 24
	w := newSkewedWindow(minPeriod)

	scores := make(fakeScores, 2*2*minPeriod)
	for i := range scores {
		scores[i] = 1
	}

	idx, val := w.findMaxScore(period, scores)
	assert.InDelta(t, period-1, idx, 1)
	assert.Greater(t, val, 0.0)
}

func TestSkewedWindow_FindMaxScore_EmptyHistory(t *testing.T) {
	const minPeriod, period = 16, 20
	w := newSkewedWindow(minPeriod)
	idx, _ := w.findMaxScore(period, fakeScores{})
	assert.Equal(t, 0, idx)
}
