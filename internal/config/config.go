// Package config holds compile-time defaults for the CLI and live
// visualiser: sensible knobs for a user who never passes a flag, plus a
// small hex-colour parser and a RuntimeConfig palette-override type. The TUI
// draws with the fixed palette in internal/cli and does not read
// RuntimeConfig.
package config

import "fmt"

// Display settings for the live terminal visualiser.
const (
	// SpectrumBars is how many columns the spectrum visualiser rebins the
	// onset detector's FFT magnitudes into when the terminal width is
	// unknown or wider than 80 columns.
	SpectrumBars = 48

	// RefreshHz caps how often the TUI repaints regardless of how fast
	// audio hops are being processed.
	RefreshHz = 30.0
)

// Pulse colour palette: the default TUI theme.
const (
	// PulsePrimary is the current BPM readout colour (cyan).
	PulsePrimaryR, PulsePrimaryG, PulsePrimaryB = 0, 217, 255
	// PulseAccent is the spectrum-peak colour (violet).
	PulseAccentR, PulseAccentG, PulseAccentB = 138, 43, 226
	// PulseMuted is the secondary-text colour (gray).
	PulseMutedR, PulseMutedG, PulseMutedB = 100, 100, 110
)

// RuntimeConfig lets a caller override individual palette channels while
// falling back to the compiled-in default for anything left nil.
type RuntimeConfig struct {
	PrimaryR, PrimaryG, PrimaryB *uint8
	AccentR, AccentG, AccentB   *uint8
}

// GetPrimaryColor returns the configured primary colour, or the default
// pulse palette primary if any channel is unset.
func (c *RuntimeConfig) GetPrimaryColor() (uint8, uint8, uint8) {
	if c == nil || c.PrimaryR == nil || c.PrimaryG == nil || c.PrimaryB == nil {
		return PulsePrimaryR, PulsePrimaryG, PulsePrimaryB
	}
	return *c.PrimaryR, *c.PrimaryG, *c.PrimaryB
}

// GetAccentColor returns the configured accent colour, or the default
// pulse palette accent if any channel is unset.
func (c *RuntimeConfig) GetAccentColor() (uint8, uint8, uint8) {
	if c == nil || c.AccentR == nil || c.AccentG == nil || c.AccentB == nil {
		return PulseAccentR, PulseAccentG, PulseAccentB
	}
	return *c.AccentR, *c.AccentG, *c.AccentB
}

// ParseHexColor parses a 6-digit hex colour ("RRGGBB" or "#RRGGBB", any
// case) into its RGB components.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("config: %q is not a 6-digit hex colour", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseHexByte(s[i*2 : i*2+2])
		if err != nil {
			return 0, 0, 0, err
		}
		rgb[i] = v
	}
	return rgb[0], rgb[1], rgb[2], nil
}

func parseHexByte(s string) (uint8, error) {
	var v uint8
	for _, c := range []byte(s) {
		var digit uint8
		switch {
		case c >= '0' && c <= '9':
			digit = c - '0'
		case c >= 'a' && c <= 'f':
			digit = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			digit = c - 'A' + 10
		default:
			return 0, fmt.Errorf("config: invalid hex digit %q", c)
		}
		v = v<<4 | digit
	}
	return v, nil
}
