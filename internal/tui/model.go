// Package tui implements the live terminal visualiser: a spectrum display
// driven by the engine's onset-detector magnitudes, with the current BPM
// estimate and lock-on status overlaid.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linuxmatters/beatnik/internal/cli"
)

// TempoUpdate is sent whenever the engine has processed another hop of
// audio. Spectrum holds the latest onset-detector magnitudes.
type TempoUpdate struct {
	BPM      float64
	Locked   bool
	Spectrum []float64
	Elapsed  time.Duration
}

// Done signals that the input stream has been fully consumed.
type Done struct {
	FinalBPM  float64
	MeanBPM   float64
	StdDevBPM float64
	Estimates int
}

// Err carries a fatal error up from the audio-reading goroutine.
type Err struct {
	Err error
}

var (
	bpmStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.PulseCyan)
	lockStyle = lipgloss.NewStyle().Foreground(cli.PulseMagenta)
	waitStyle = lipgloss.NewStyle().Foreground(cli.DimGray).Italic(true)
)

// Model is the bubbletea model driving the live visualiser.
type Model struct {
	bpm      float64
	locked   bool
	spectrum []float64
	elapsed  time.Duration

	done  *Done
	err   error
	width int
}

// New builds an empty Model, ready to receive TempoUpdate messages.
func New() *Model {
	return &Model{}
}

// Init satisfies tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
	case tea.KeyMsg:
		if v.String() == "q" || v.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case TempoUpdate:
		m.bpm = v.BPM
		m.locked = v.Locked
		m.spectrum = v.Spectrum
		m.elapsed = v.Elapsed
	case Done:
		m.done = &v
		return m, tea.Quit
	case Err:
		m.err = v.Err
		return m, tea.Quit
	}
	return m, nil
}

// View satisfies tea.Model.
func (m *Model) View() string {
	if m.err != nil {
		return cli.ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}

	width := m.width
	if width <= 0 || width > 80 {
		width = spectrumWidth
	}

	status := waitStyle.Render("listening…")
	if m.locked {
		status = lockStyle.Render("locked")
	}

	header := fmt.Sprintf("%s   %s", bpmStyle.Render(fmt.Sprintf("%6.1f BPM", m.bpm)), status)
	spectrum := renderSpectrum(m.spectrum, width)
	elapsed := waitStyle.Render(cli.FormatDuration(m.elapsed))

	return header + "\n" + spectrum + "\n" + elapsed + "\n"
}
