// Package viterbi implements a single-step Viterbi decoder: each Decode
// call advances a persistent posterior distribution by one observation,
// using a fixed Gaussian transition kernel, and returns the most likely
// predecessor state for the current best state. Calling Decode repeatedly
// on a stream of observations lets short-range transition smoothness
// accumulate across calls without ever re-running the decode over history.
package viterbi

import (
	"math"

	"github.com/linuxmatters/beatnik/internal/dsp"
)

// Viterbi holds the persistent posterior (delta) and the cached transition
// kernel for a chain of n states. Not safe for concurrent use: state
// carries across calls by design.
type Viterbi struct {
	n      int
	radius int
	kernel []float64 // kernel[d] is the transition weight for |i-j| == d
	delta  []float64 // current posterior over states, length n
}

// New builds a Viterbi over n states with transition radius n/2.
func New(n int) *Viterbi {
	radius := n / 2
	kernel := make([]float64, radius)
	sigma := float64(radius) / 4
	sigmaSquared := sigma * sigma
	for d := 0; d < radius; d++ {
		mu := float64(d)
		kernel[d] = math.Exp(-(mu * mu) / (2 * sigmaSquared))
	}
	delta := make([]float64, n)
	for i := range delta {
		delta[i] = 1
	}
	return &Viterbi{n: n, radius: radius, kernel: kernel, delta: delta}
}

// Decode advances the decoder by one observation (length n, the emission
// likelihood of each state) and returns the backlink of the most likely
// current state: the predecessor state that produced it.
func (v *Viterbi) Decode(observation []float64) int {
	if len(observation) != v.n {
		panic("viterbi: observation length mismatch")
	}

	newDelta := make([]float64, v.n)
	newPsi := make([]int, v.n)
	temp := make([]float64, v.radius)

	// Three-phase schedule: phase A computes this state's best predecessor
	// from the still-unmodified prior delta; phase B, running `radius`
	// iterations behind, multiplies the cached max into the emission to
	// finish the posterior for an earlier state. Running them interleaved
	// lets a single pass serve both without a second full scan.
	for i := 0; i < v.n+v.radius; i++ {
		m := i % v.radius
		if i >= v.radius {
			j := i - v.radius
			newDelta[j] = observation[j] * temp[m]
		}
		if i < v.n {
			idx, val := v.bestPredecessor(i)
			newPsi[i] = idx
			temp[m] = val
		}
	}

	v.delta = dsp.Normalise(newDelta)

	best := 0
	for i := 1; i < v.n; i++ {
		if v.delta[i] > v.delta[best] {
			best = i
		}
	}
	return newPsi[best]
}

func (v *Viterbi) bestPredecessor(target int) (int, float64) {
	bestIdx := 0
	bestVal := v.delta[0] * v.kernelAt(0, target)
	for i := 1; i < v.n; i++ {
		p := v.delta[i] * v.kernelAt(i, target)
		if p > bestVal {
			bestVal = p
			bestIdx = i
		}
	}
	return bestIdx, bestVal
}

func (v *Viterbi) kernelAt(i, j int) float64 {
	d := i - j
	if d < 0 {
		d = -d
	}
	if d >= v.radius {
		return 0
	}
	return v.kernel[d]
}
