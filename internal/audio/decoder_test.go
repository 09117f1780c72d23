package audio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnrecognisedFormat(t *testing.T) {
	_, err := Open("song.ogg", "", 48000)
	assert.Error(t, err)
}

func TestOpen_ExplicitFormatOverridesExtension(t *testing.T) {
	path := writeRawFixture(t, []float32{0, 1, 0})
	wavPath := path + ".wav"
	require.NoError(t, os.Rename(path, wavPath))

	d, err := Open(wavPath, "raw", 44100)
	assert.NoError(t, err)
	if d != nil {
		defer d.Close()
		assert.Equal(t, 44100, d.SampleRate())
	}
}
