package cli

import "github.com/charmbracelet/lipgloss"

// Pulse colour palette.
// Shared theme colours for consistent branding across the CLI and the
// live visualiser.
var (
	PulseCyan    = lipgloss.Color("#00D9FF") // BPM readout
	PulseViolet  = lipgloss.Color("#8A2BE2") // spectrum peaks
	PulseMagenta = lipgloss.Color("#FF1493") // lock-on accent
	PulseAmber   = lipgloss.Color("#FFB000") // warnings

	// DimGray is used for subtle, secondary text.
	DimGray = lipgloss.Color("#64646E")
)
