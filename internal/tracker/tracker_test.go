package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_UpdateScore_NoGuessReturnsFalse(t *testing.T) {
	tr := New(64, 4)
	assert.False(t, tr.UpdateScore(0.5))
}

func TestTracker_SetPeriodGuess_OutOfRangePanics(t *testing.T) {
	tr := New(64, 4)
	assert.Panics(t, func() { tr.SetPeriodGuess(63) })
	assert.Panics(t, func() { tr.SetPeriodGuess(128) })
}

func TestTracker_SetPeriodGuess_InRangeAccepted(t *testing.T) {
	tr := New(64, 4)
	assert.NotPanics(t, func() { tr.SetPeriodGuess(64) })
	assert.NotPanics(t, func() { tr.SetPeriodGuess(127) })
}

func TestTracker_NewEstimateExpected_FiresAfterPeriodGuessSamples(t *testing.T) {
	const minPeriod = 8
	tr := New(minPeriod, 4)
	tr.SetPeriodGuess(minPeriod)

	ready := false
	for i := 0; i <= minPeriod; i++ {
		ready = tr.UpdateScore(0.2)
	}
	assert.True(t, ready)
}

func TestTracker_EstimatePeriod_FallsBackToMinPeriodWhenNoLinks(t *testing.T) {
	const minPeriod = 16
	tr := New(minPeriod, 4)
	tr.SetPeriodGuess(minPeriod)
	assert.Equal(t, float64(minPeriod), tr.EstimatePeriod())
}

func TestTracker_ClickTrainLocksOntoPeriod(t *testing.T) {
	const minPeriod, beats, period = 16, 8, 20
	tr := New(minPeriod, beats)
	tr.SetPeriodGuess(period)

	for round := 0; round < 6; round++ {
		for i := 0; i < period; i++ {
			odf := 0.05
			if i == 0 {
				odf = 1.0
			}
			tr.UpdateScore(odf)
		}
	}

	got := tr.EstimatePeriod()
	require.Greater(t, got, 0.0)
	assert.InDelta(t, period, got, 2)
}

func TestTracker_Clear(t *testing.T) {
	tr := New(16, 4)
	tr.SetPeriodGuess(16)
	tr.UpdateScore(0.5)
	tr.Clear()
	assert.False(t, tr.UpdateScore(0.5))
}
