package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/beamgrid/config"
)

// ExitError carries the process exit code for usage errors.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// parse turns command-line arguments into a validated run configuration.
// A -config file is loaded first and explicitly set flags override it.
// The boolean reports a clean exit (help requested or nothing to do).
func parse(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("beamgrid", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
beamgrid - count the cells a light beam energizes in a mirror/splitter grid.

Usage:
  beamgrid [options] [GRID_PATH]

Arguments:
  GRID_PATH
    Layout file over ". / \ | -"; files ending in .zst are decompressed.

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML run file; flags override its values.")
	mode := fs.String("mode", config.ModeEnergize, "Run mode: 'energize' (one entry) or 'maximize' (all boundary entries).")
	x := fs.Int("x", 0, "Entry column for energize mode.")
	y := fs.Int("y", 0, "Entry row for energize mode.")
	dir := fs.String("dir", "right", "Entry heading for energize mode: up, right, down or left.")
	workers := fs.Int("workers", 0, "Concurrent simulations in maximize mode; 0 uses GOMAXPROCS.")
	render := fs.Bool("render", false, "Print the energized cells before the count.")
	logLevel := fs.String("log-level", "info", "Logging level: 'trace', 'debug', 'info', 'warn' or 'error'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "x":
			cfg.Entry.X = *x
		case "y":
			cfg.Entry.Y = *y
		case "dir":
			cfg.Entry.Dir = *dir
		case "workers":
			cfg.Workers = *workers
		case "render":
			cfg.Render = *render
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if cfg.Input == "" {
		fs.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return &cfg, false, nil
}
