package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// RawDecoder implements AudioDecoder for a header-less stream of
// little-endian mono float32 samples, the format the engine's reference
// file-driven test tool reads directly. Since there is no header, the
// sample rate must be supplied by the caller.
type RawDecoder struct {
	file       *os.File
	sampleRate int
	numSamples int64
}

// NewRawDecoder opens filename as a header-less mono f32 PCM stream at the
// given sample rate.
func NewRawDecoder(filename string, sampleRate int) (*RawDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat raw PCM file: %w", err)
	}
	return &RawDecoder{
		file:       f,
		sampleRate: sampleRate,
		numSamples: info.Size() / 4,
	}, nil
}

// ReadChunk reads the next numSamples mono float32 samples.
func (d *RawDecoder) ReadChunk(numSamples int) ([]float64, error) {
	raw := make([]byte, numSamples*4)
	n, err := io.ReadFull(d.file, raw)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read raw PCM data: %w", err)
	}
	if n == 0 {
		return nil, io.EOF
	}

	frames := n / 4
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		bits := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		samples[i] = float64(math.Float32frombits(bits))
	}
	return samples, nil
}

// SampleRate returns the sample rate supplied at construction.
func (d *RawDecoder) SampleRate() int {
	return d.sampleRate
}

// NumSamples returns the sample count derived from the file size.
func (d *RawDecoder) NumSamples() int64 {
	return d.numSamples
}

// NumChannels always reports 1: the raw format carries no channel data.
func (d *RawDecoder) NumChannels() int {
	return 1
}

// Close closes the underlying file.
func (d *RawDecoder) Close() error {
	return d.file.Close()
}
