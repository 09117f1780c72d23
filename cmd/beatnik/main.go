// Command beatnik estimates the tempo of an audio file in real time,
// printing or visualising the BPM estimate as it streams through.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxmatters/beatnik"
	"github.com/linuxmatters/beatnik/internal/audio"
	"github.com/linuxmatters/beatnik/internal/cli"
	"github.com/linuxmatters/beatnik/internal/config"
	"github.com/linuxmatters/beatnik/internal/stats"
	"github.com/linuxmatters/beatnik/internal/tui"
)

const version = "0.0.1"

var CLI struct {
	Input         string `arg:"" name:"input" help:"Audio file to track (wav, mp3, flac, or a header-less raw f32 PCM stream)." type:"existingfile"`
	Format        string `help:"Force the input format instead of inferring it from the file extension (wav, mp3, flac, raw)."`
	RawSampleRate int    `help:"Sample rate in Hz, used only when reading a raw PCM stream." default:"48000"`
	NoTUI         bool   `help:"Print BPM estimates to stdout instead of showing the live visualiser." short:"q"`
	Version       bool   `help:"Show version information." short:"v"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("beatnik"),
		kong.Description("Real-time tempo estimation for streaming audio."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	decoder, err := audio.Open(CLI.Input, CLI.Format, CLI.RawSampleRate)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	defer decoder.Close()

	engine := beatnik.New(float64(decoder.SampleRate()))

	if CLI.NoTUI {
		runHeadless(engine, decoder)
	} else {
		runTUI(engine, decoder)
	}
}

// runHeadless mirrors the engine's own reference file-driven test tool:
// print the current estimate on every fresh lock, flushing after each line.
func runHeadless(engine *beatnik.Engine, decoder audio.AudioDecoder) {
	trace := &stats.TempoTrace{}
	start := time.Now()

	for {
		hop, err := decoder.ReadChunk(beatnik.DefaultFFTStep)
		if err != nil {
			break
		}
		if len(hop) < beatnik.DefaultFFTStep {
			padded := make([]float64, beatnik.DefaultFFTStep)
			copy(padded, hop)
			hop = padded
		}
		if engine.Process(hop) {
			bpm := engine.EstimateTempo()
			trace.Record(bpm)
			fmt.Printf("\r%07.3f BPM", bpm)
		}
	}

	summary := trace.Summarize()
	fmt.Printf("\r%07.3f BPM\n\n", engine.EstimateTempo())
	fmt.Println(cli.PrintTempoSummary(cli.FormatDuration(time.Since(start)), summary.Mean, summary.StdDev, summary.Estimates))
}

// runTUI drives the engine from a background goroutine and feeds its
// progress into a bubbletea program as TempoUpdate messages.
func runTUI(engine *beatnik.Engine, decoder audio.AudioDecoder) {
	model := tui.New()
	program := tea.NewProgram(model)

	go func() {
		trace := &stats.TempoTrace{}
		start := time.Now()
		locked := false
		var bpm float64
		var lastSend time.Time

		for {
			hop, err := decoder.ReadChunk(beatnik.DefaultFFTStep)
			if err != nil {
				break
			}
			if len(hop) < beatnik.DefaultFFTStep {
				padded := make([]float64, beatnik.DefaultFFTStep)
				copy(padded, hop)
				hop = padded
			}

			if engine.Process(hop) {
				bpm = engine.EstimateTempo()
				locked = true
				trace.Record(bpm)
			}

			if time.Since(lastSend) < time.Second/config.RefreshHz {
				continue
			}
			lastSend = time.Now()
			program.Send(tui.TempoUpdate{
				BPM:      bpm,
				Locked:   locked,
				Spectrum: append([]float64(nil), engine.FFTMagnitudes()...),
				Elapsed:  time.Since(start),
			})
		}

		summary := trace.Summarize()
		program.Send(tui.Done{
			FinalBPM:  bpm,
			MeanBPM:   summary.Mean,
			StdDevBPM: summary.StdDev,
			Estimates: summary.Estimates,
		})
	}()

	if _, err := program.Run(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
