// Package stats summarises a run's sequence of tempo estimates: how stable
// the engine's BPM reading stayed once it locked on, rather than just its
// last value.
package stats

import "gonum.org/v1/gonum/stat"

// TempoTrace accumulates a stream of BPM estimates and reports summary
// statistics over them.
type TempoTrace struct {
	estimates []float64
}

// Record appends one tempo estimate (beats per minute) to the trace.
func (t *TempoTrace) Record(bpm float64) {
	t.estimates = append(t.estimates, bpm)
}

// Len returns the number of estimates recorded so far.
func (t *TempoTrace) Len() int {
	return len(t.estimates)
}

// Summary holds the mean and standard deviation of a tempo trace, plus how
// many estimates contributed to it.
type Summary struct {
	Mean      float64
	StdDev    float64
	Estimates int
}

// Summarize computes the mean and sample standard deviation of every
// estimate recorded so far. Returns the zero Summary if nothing has been
// recorded.
func (t *TempoTrace) Summarize() Summary {
	if len(t.estimates) == 0 {
		return Summary{}
	}
	mean, stdDev := stat.MeanStdDev(t.estimates, nil)
	return Summary{Mean: mean, StdDev: stdDev, Estimates: len(t.estimates)}
}
