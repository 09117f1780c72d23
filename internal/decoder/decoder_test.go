package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_MinPeriod(t *testing.T) {
	d := New(2048, 4)
	assert.Equal(t, 256, d.MinPeriod())
}

func TestDecoder_CalculatePeriod_InRange(t *testing.T) {
	const windowSize, decimation = 2048, 4
	d := New(windowSize, decimation)

	odf := make([]float64, windowSize)
	const period = 32
	for i := 0; i < windowSize; i += period {
		odf[i] = 1
	}

	got := d.CalculatePeriod(odf)
	require.GreaterOrEqual(t, got, d.MinPeriod())
	assert.Less(t, got, 2*d.MinPeriod())
}

func TestDecoder_CalculatePeriod_Silence(t *testing.T) {
	d := New(2048, 4)
	odf := make([]float64, 2048)
	got := d.CalculatePeriod(odf)
	assert.GreaterOrEqual(t, got, d.MinPeriod())
	assert.Less(t, got, 2*d.MinPeriod())
}
