// Package beatnik implements a real-time streaming tempo estimator: feed it
// fixed-size hops of audio and it reports, whenever it has gathered enough
// evidence, a current best-guess tempo in beats per minute.
//
// The pipeline has three stages. An onset detector (internal/onset) turns
// each hop into a single spectral-flux sample. A period decoder
// (internal/decoder) periodically looks at a window of those samples and
// estimates the dominant periodicity via autocorrelation, a harmonic comb
// filter and a Viterbi decode. A beat tracker (internal/tracker) uses that
// period guess to lock a cumulative-score dynamic program onto an actual
// beat phase, which is where the final tempo estimate comes from.
//
// An Engine is a single-threaded, stateful pipeline: like every component
// it wraps, it is not safe for concurrent use.
package beatnik

import (
	"fmt"

	"github.com/linuxmatters/beatnik/internal/decoder"
	"github.com/linuxmatters/beatnik/internal/onset"
	"github.com/linuxmatters/beatnik/internal/ring"
	"github.com/linuxmatters/beatnik/internal/tracker"
)

// Default pipeline parameters, tuned for 44.1-48kHz audio and a tempo range
// of [MinTempo, MaxTempo) beats per minute.
const (
	DefaultFFTSize    = 1024
	DefaultFFTStep    = 128
	DefaultODFSize    = 2048
	DefaultODFStep    = 128
	DefaultDecimation = 4
	DefaultBeatsCount = 8

	// MinTempo and MaxTempo bound the tempo octave the engine reports:
	// raw period estimates are folded by doubling or halving until they
	// land in [MinTempo, MaxTempo).
	MinTempo = 90.0
	MaxTempo = 180.0
)

// Config gathers the tunable parameters of an Engine's pipeline.
type Config struct {
	SampleRate float64
	FFTSize    int
	FFTStep    int
	ODFSize    int
	ODFStep    int
	Decimation int
	BeatsCount int
}

// DefaultConfig returns the default pipeline configuration for the given
// sample rate.
func DefaultConfig(sampleRate float64) Config {
	return Config{
		SampleRate: sampleRate,
		FFTSize:    DefaultFFTSize,
		FFTStep:    DefaultFFTStep,
		ODFSize:    DefaultODFSize,
		ODFStep:    DefaultODFStep,
		Decimation: DefaultDecimation,
		BeatsCount: DefaultBeatsCount,
	}
}

// Validate checks the configuration's internal divisibility requirements,
// returning a descriptive error for the first one violated.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("beatnik: sample rate must be positive")
	}
	if c.FFTSize <= 0 || c.FFTSize%4 != 0 {
		return fmt.Errorf("beatnik: fft size must be a positive multiple of four")
	}
	if c.ODFSize <= 0 || c.ODFSize%c.Decimation != 0 {
		return fmt.Errorf("beatnik: odf size must be a positive multiple of the decimation factor")
	}
	combedSize := c.ODFSize / c.Decimation
	if combedSize%2 != 0 {
		return fmt.Errorf("beatnik: odf size / decimation must be even")
	}
	if c.FFTStep <= 0 || c.ODFStep <= 0 || c.BeatsCount <= 0 {
		return fmt.Errorf("beatnik: step sizes and beat count must be positive")
	}
	return nil
}

// Engine is a complete streaming beat-tracking pipeline.
type Engine struct {
	cfg             Config
	framesPerMinute float64
	minPeriod       int

	onset   *onset.Detector
	decoder *decoder.Decoder
	tracker *tracker.Tracker

	odfBuffer *ring.Ring[float64]
	counter   int
}

// New builds an Engine with the default pipeline configuration for the
// given sample rate.
func New(sampleRate float64) *Engine {
	e, err := NewWithConfig(DefaultConfig(sampleRate))
	if err != nil {
		panic(err)
	}
	return e
}

// NewWithConfig builds an Engine from an explicit configuration.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxPeriod := cfg.ODFSize / cfg.Decimation
	minPeriod := maxPeriod / 2

	odfBuffer := ring.New[float64](cfg.ODFSize)
	odfBuffer.Fill(0.1)

	e := &Engine{
		cfg:             cfg,
		framesPerMinute: 60 * cfg.SampleRate / float64(cfg.FFTStep),
		minPeriod:       minPeriod,
		onset:           onset.New(cfg.FFTSize),
		decoder:         decoder.New(cfg.ODFSize, cfg.Decimation),
		tracker:         tracker.New(minPeriod, cfg.BeatsCount),
		odfBuffer:       odfBuffer,
	}
	return e, nil
}

// Process feeds one hop of audio (exactly FFTStep samples) through the
// pipeline and reports whether a fresh tempo estimate is now available via
// EstimateTempo.
func (e *Engine) Process(hop []float64) bool {
	if len(hop) != e.cfg.FFTStep {
		panic("beatnik: audio hop length must equal Config.FFTStep")
	}

	sample := e.onset.Process(hop)
	e.odfBuffer.PushBack(sample)

	e.tracker.UpdateScore(sample)

	e.counter++
	if e.counter >= e.cfg.ODFStep {
		e.counter = 0
		period := e.decoder.CalculatePeriod(e.odfBuffer.Linearise())
		e.tracker.SetPeriodGuess(period)
	}

	return e.tracker.NewEstimateExpected()
}

// EstimateTempo returns the engine's current tempo estimate in beats per
// minute, folded into [MinTempo, MaxTempo).
func (e *Engine) EstimateTempo() float64 {
	periodFrames := e.tracker.EstimatePeriod()
	bpm := e.framesPerMinute / periodFrames
	for bpm >= MaxTempo {
		bpm /= 2
	}
	for bpm < MinTempo {
		bpm *= 2
	}
	return bpm
}

// FFTMagnitudes returns the most recently computed onset-detector spectral
// magnitudes, for visualisation; the returned slice is overwritten on the
// next Process call.
func (e *Engine) FFTMagnitudes() []float64 {
	return e.onset.Magnitudes()
}

// ODFBuffer returns the engine's ODF sample history in oldest-first order,
// for visualisation or diagnostics. The returned slice aliases internal
// storage and is invalidated by the next Process call.
func (e *Engine) ODFBuffer() []float64 {
	return e.odfBuffer.Linearise()
}

// Clear resets the tracker's beat-phase lock and the onset-sample history
// window, without discarding the onset detector's own sliding audio
// window. Use this when a long gap or a known tempo change invalidates the
// beat phase the tracker has locked onto.
func (e *Engine) Clear() {
	e.counter = 0
	e.odfBuffer = ring.New[float64](e.cfg.ODFSize)
	e.odfBuffer.Fill(0.1)
	e.tracker.Clear()
}
