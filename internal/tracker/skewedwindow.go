package tracker

import "math"

// tightness controls how sharply the skewed window penalises a lag that
// deviates from the expected period; larger is sharper.
const tightness = 5

// skewedWindow precomputes, for every period in [minPeriod, 2*minPeriod), a
// row of weights biased toward a lag equal to that period: a lag of exactly
// period scores 1.0, and the score falls off as the lag moves away from it,
// faster toward longer lags than toward shorter ones (a lag of 2*period
// scores 0).
type skewedWindow struct {
	minPeriod int
	maxPeriod int
	rowSize   int
	rows      [][]float64
}

func newSkewedWindow(minPeriod int) *skewedWindow {
	maxPeriod := 2 * minPeriod
	rowSize := 2 * maxPeriod
	rows := make([][]float64, maxPeriod-minPeriod)
	for p := minPeriod; p < maxPeriod; p++ {
		row := make([]float64, rowSize)
		minLag := p / 2
		maxLag := 2 * p
		for lag := minLag; lag <= maxLag && lag-1 < rowSize; lag++ {
			if lag == 0 {
				continue
			}
			x := float64(lag) / float64(p)
			row[lag-1] = math.Exp(-0.5 * math.Pow(tightness*math.Log(2-x), 2))
		}
		rows[p-minPeriod] = row
	}
	return &skewedWindow{minPeriod: minPeriod, maxPeriod: maxPeriod, rowSize: rowSize, rows: rows}
}

// reversedScores is the minimal view skewedWindow needs from the beat
// tracker's cumulative score history: newest-first, fixed length.
type reversedScores interface {
	Len() int
	At(i int) float64
}

// findMaxScore scans the rowSize most recent cumulative scores (newest
// first) and returns the index and value of the highest score weighted by
// the skewed window for the given period guess.
func (w *skewedWindow) findMaxScore(period int, reversed reversedScores) (int, float64) {
	row := w.rows[period-w.minPeriod]
	d := reversed.Len()
	if w.rowSize < d {
		d = w.rowSize
	}
	bestIdx := 0
	bestVal := math.Inf(-1)
	for i := 0; i < d; i++ {
		v := reversed.At(i) * row[i]
		if v > bestVal {
			bestVal = v
			bestIdx = i
		}
	}
	return bestIdx, bestVal
}
