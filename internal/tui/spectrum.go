package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/beatnik/internal/config"
)

// rebin averages magnitudes down to exactly width bars, the same
// bucket-averaging BinFFT once did for the video visualiser's bar display.
func rebin(magnitudes []float64, width int) []float64 {
	out := make([]float64, width)
	if len(magnitudes) == 0 || width == 0 {
		return out
	}
	binsPerBar := len(magnitudes) / width
	if binsPerBar == 0 {
		binsPerBar = 1
	}
	for bar := 0; bar < width; bar++ {
		start := bar * binsPerBar
		end := start + binsPerBar
		if end > len(magnitudes) {
			end = len(magnitudes)
		}
		if start >= end {
			continue
		}
		var sum float64
		for _, m := range magnitudes[start:end] {
			sum += m
		}
		out[bar] = sum / float64(end-start)
	}
	return out
}

// renderSpectrum draws a two-row ASCII spectrum from bar heights, using a
// cyan-to-violet gradient for intensity: dim bars read as cyan, loud bars
// shade toward violet.
func renderSpectrum(barHeights []float64, width int) string {
	if len(barHeights) == 0 || width == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	gradient := []lipgloss.Color{
		lipgloss.Color("#003B4A"),
		lipgloss.Color("#00627A"),
		lipgloss.Color("#0089AA"),
		lipgloss.Color("#00B0D9"),
		lipgloss.Color("#00D9FF"),
		lipgloss.Color("#4D7FFF"),
		lipgloss.Color("#8A2BE2"),
		lipgloss.Color("#C71585"),
	}

	heights := rebin(barHeights, width)

	maxHeight := 0.0
	for _, h := range heights {
		if h > maxHeight {
			maxHeight = h
		}
	}
	if maxHeight == 0 {
		maxHeight = 1
	}

	normalised := make([]float64, len(heights))
	for i, h := range heights {
		normalised[i] = h / maxHeight
	}

	var top, bottom strings.Builder
	for _, n := range normalised {
		colorIdx := int(n * float64(len(gradient)-1))
		if colorIdx >= len(gradient) {
			colorIdx = len(gradient) - 1
		}
		if colorIdx < 0 {
			colorIdx = 0
		}
		style := lipgloss.NewStyle().Foreground(gradient[colorIdx])

		if n > 0.5 {
			topPortion := (n - 0.5) * 2
			idx := int(topPortion * float64(len(blocks)-1))
			if idx >= len(blocks) {
				idx = len(blocks) - 1
			}
			top.WriteString(style.Render(string(blocks[idx])))
		} else {
			top.WriteString(" ")
		}

		var idx int
		if n >= 0.5 {
			idx = len(blocks) - 1
		} else {
			idx = int(n * 2 * float64(len(blocks)-1))
			if idx >= len(blocks) {
				idx = len(blocks) - 1
			}
		}
		bottom.WriteString(style.Render(string(blocks[idx])))
	}

	return top.String() + "\n" + bottom.String()
}

// spectrumWidth is the default bar count for renderSpectrum when a caller
// does not have a terminal width to fit to.
const spectrumWidth = config.SpectrumBars
