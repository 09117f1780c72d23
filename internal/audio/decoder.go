// Package audio adapts the container formats a user is likely to hand in
// (WAV, MP3, FLAC, or a header-less raw PCM stream) to a single mono
// float64 hop-reading interface the engine's pipeline consumes.
package audio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// AudioDecoder defines the interface for all audio format decoders.
type AudioDecoder interface {
	// ReadChunk reads the next chunk of mono samples as float64.
	// Returns io.EOF once no more samples are available.
	ReadChunk(numSamples int) ([]float64, error)

	// SampleRate returns the audio sample rate in Hz.
	SampleRate() int

	// NumSamples returns the total number of samples in the audio file.
	// Returns 0 if the length is unknown up front (e.g. streaming MP3).
	NumSamples() int64

	// NumChannels returns the number of channels in the source file.
	NumChannels() int

	// Close closes the decoder and releases resources.
	Close() error
}

// EOF re-exports io.EOF so callers need not import io solely to compare
// against ReadChunk's end-of-stream sentinel.
var EOF = io.EOF

// Open picks a decoder by file extension, or by the explicit format
// argument if non-empty ("wav", "mp3", "flac" or "raw"). rawSampleRate is
// only consulted for the "raw" format, which carries no header.
func Open(filename, format string, rawSampleRate int) (AudioDecoder, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
	switch format {
	case "wav":
		return NewWAVDecoder(filename)
	case "mp3":
		return NewMP3Decoder(filename)
	case "flac":
		return NewFLACDecoder(filename)
	case "raw", "pcm", "f32":
		return NewRawDecoder(filename, rawSampleRate)
	default:
		return nil, fmt.Errorf("audio: unrecognised format %q", format)
	}
}
