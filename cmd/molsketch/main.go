// Command molsketch draws the skeletal structure of a molecule description.
//
// Usage:
//
//	molsketch -input ethanol.json -output ethanol.png
//	molsketch -input ring.yaml -format svg -fit > ring.svg
//
// Every flag can also be set through a MOLSKETCH_* environment variable,
// e.g. MOLSKETCH_FORMAT=svg.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/molsketch"
	"github.com/gogpu/molsketch/molfile"
	"github.com/gogpu/molsketch/recording"
	_ "github.com/gogpu/molsketch/recording/backends/chrome"
	_ "github.com/gogpu/molsketch/recording/backends/raster"
	_ "github.com/gogpu/molsketch/recording/backends/svg"
	"github.com/gogpu/molsketch/text"
)

func main() {
	fs := flag.NewFlagSet("molsketch", flag.ExitOnError)
	cfg, err := loadConfig(fs, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "molsketch: %v\n", err)
		fs.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	molsketch.SetLogger(logger)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		logger.Error("molsketch failed", "error", err)
		os.Exit(1)
	}
}

// run renders the configured input to the configured output.
func run(cfg Config, stdin io.Reader, stdout io.Writer) error {
	log := molsketch.Logger()

	m, err := readMolecule(cfg.Input, stdin)
	if err != nil {
		return err
	}

	r, err := draw(cfg, m)
	if err != nil {
		return err
	}

	backend, err := recording.NewBackend(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w; available: %v", err, recording.Backends())
	}
	if err := r.Playback(backend); err != nil {
		return fmt.Errorf("%s playback: %w", cfg.Format, err)
	}

	if err := writeOutput(backend, cfg.Output, stdout); err != nil {
		return err
	}
	log.Info("molsketch: drawing written",
		"format", cfg.Format,
		"output", cfg.Output,
		"width", r.Width(),
		"height", r.Height())
	return nil
}

func readMolecule(input string, stdin io.Reader) (molsketch.Molecule, error) {
	if input == "-" {
		return molfile.Decode(stdin, molfile.FormatJSON)
	}
	return molfile.DecodeFile(input)
}

// draw renders m into a recording, cropped to its content when requested.
func draw(cfg Config, m molsketch.Molecule) (*recording.Recording, error) {
	var diagnostics int
	renderer := molsketch.NewRenderer(
		molsketch.WithBondLength(cfg.BondLength),
		molsketch.WithFontSize(cfg.FontSize),
		molsketch.WithRingClosure(cfg.RingClosure),
		molsketch.WithDiagnostics(func(molsketch.Diagnostic) { diagnostics++ }),
	)

	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	if err := renderer.Render(rec, m); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if diagnostics > 0 {
		molsketch.Logger().Warn("molsketch: drawing contains error markers", "count", diagnostics)
	}

	r := rec.FinishRecording()
	if !cfg.Fit {
		return r, nil
	}
	measurer, err := text.NewMeasurer(nil)
	if err != nil {
		return nil, err
	}
	return r.Fit(cfg.Padding, measurer), nil
}

func writeOutput(backend recording.Backend, output string, stdout io.Writer) error {
	if output != "-" {
		fb, ok := backend.(recording.FileBackend)
		if !ok {
			return errors.New("backend cannot write files")
		}
		return fb.SaveToFile(output)
	}
	wb, ok := backend.(recording.WriterBackend)
	if !ok {
		return errors.New("backend cannot write to stdout")
	}
	_, err := wb.WriteTo(stdout)
	return err
}
