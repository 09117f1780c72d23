package config

import "testing"

// TestParseHexColor_ValidInputs verifies that ParseHexColor correctly parses
// various valid hex colour formats, catching case sensitivity issues,
// prefix handling, and byte ordering bugs.
func TestParseHexColor_ValidInputs(t *testing.T) {
	testCases := []struct {
		name                string
		input               string
		wantR, wantG, wantB uint8
	}{
		{name: "uppercase red, no hash", input: "FF0000", wantR: 255},
		{name: "lowercase red, no hash", input: "ff0000", wantR: 255},
		{name: "uppercase red, with hash", input: "#FF0000", wantR: 255},
		{name: "lowercase red, with hash", input: "#ff0000", wantR: 255},
		{name: "mixed case magenta", input: "Ff00fF", wantR: 255, wantB: 255},
		{name: "green", input: "00FF00", wantG: 255},
		{name: "blue", input: "0000FF", wantB: 255},
		{name: "black", input: "000000"},
		{name: "white", input: "FFFFFF", wantR: 255, wantG: 255, wantB: 255},
		{name: "gray", input: "808080", wantR: 128, wantG: 128, wantB: 128},
		{name: "pulse cyan", input: "00D9FF", wantR: 0, wantG: 217, wantB: 255},
		{name: "low values", input: "010203", wantR: 1, wantG: 2, wantB: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tc.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tc.input, err)
			}
			if r != tc.wantR || g != tc.wantG || b != tc.wantB {
				t.Errorf("ParseHexColor(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tc.input, r, g, b, tc.wantR, tc.wantG, tc.wantB)
			}
		})
	}
}

// TestParseHexColor_InvalidInputs verifies that ParseHexColor correctly
// rejects malformed input.
func TestParseHexColor_InvalidInputs(t *testing.T) {
	inputs := []string{
		"FFF", "#FFF", "FFFFFFF", "#FFFFFFF",
		"GGGGGG", "#GGGGGG", "FF00GG",
		"", "#", "FF 000", "FF#000", "##FF0000", "FF0000\n",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, _, _, err := ParseHexColor(input); err == nil {
				t.Errorf("ParseHexColor(%q) expected error, got nil", input)
			}
		})
	}
}

// TestRuntimeConfig_GetPrimaryColor verifies default fallback and full
// overrides of the primary palette colour.
func TestRuntimeConfig_GetPrimaryColor(t *testing.T) {
	r, g, b := (&RuntimeConfig{}).GetPrimaryColor()
	if r != PulsePrimaryR || g != PulsePrimaryG || b != PulsePrimaryB {
		t.Errorf("default primary = (%d,%d,%d), want (%d,%d,%d)", r, g, b, PulsePrimaryR, PulsePrimaryG, PulsePrimaryB)
	}

	custom := ptrUint8(255)
	cfg := &RuntimeConfig{PrimaryR: custom, PrimaryG: ptrUint8(128), PrimaryB: ptrUint8(64)}
	r, g, b = cfg.GetPrimaryColor()
	if r != 255 || g != 128 || b != 64 {
		t.Errorf("custom primary = (%d,%d,%d), want (255,128,64)", r, g, b)
	}

	// A nil pointer on any single channel falls back to the full default.
	partial := &RuntimeConfig{PrimaryR: ptrUint8(9)}
	r, g, b = partial.GetPrimaryColor()
	if r != PulsePrimaryR || g != PulsePrimaryG || b != PulsePrimaryB {
		t.Errorf("partial override = (%d,%d,%d), want default (%d,%d,%d)", r, g, b, PulsePrimaryR, PulsePrimaryG, PulsePrimaryB)
	}
}

// TestRuntimeConfig_GetAccentColor mirrors TestRuntimeConfig_GetPrimaryColor
// for the accent channel.
func TestRuntimeConfig_GetAccentColor(t *testing.T) {
	r, g, b := (&RuntimeConfig{}).GetAccentColor()
	if r != PulseAccentR || g != PulseAccentG || b != PulseAccentB {
		t.Errorf("default accent = (%d,%d,%d), want (%d,%d,%d)", r, g, b, PulseAccentR, PulseAccentG, PulseAccentB)
	}

	cfg := &RuntimeConfig{AccentR: ptrUint8(0), AccentG: ptrUint8(0), AccentB: ptrUint8(0)}
	r, g, b = cfg.GetAccentColor()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("custom black accent = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func ptrUint8(v uint8) *uint8 {
	return &v
}
