// Command beamgrid loads a deflector layout, runs the beam simulation and
// prints the number of energized cells.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/config"
	"github.com/katalvlaran/beamgrid/coverage"
	"github.com/katalvlaran/beamgrid/deflector"
	"github.com/katalvlaran/beamgrid/propagate"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := run(context.Background(), os.Stdout, log, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		log.WithError(err).Error("beamgrid failed")
		os.Exit(1)
	}
}

// run holds the driver logic so tests can call it with their own writers.
func run(ctx context.Context, out io.Writer, log *logrus.Logger, args []string) error {
	cfg, shouldExit, err := parse(args, out)
	if err != nil || shouldExit {
		return err
	}
	if lvl, err := cfg.Level(); err == nil {
		log.SetLevel(lvl)
	}

	g, err := deflector.LoadFile(cfg.Input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"input":  cfg.Input,
		"width":  g.Width(),
		"height": g.Height(),
		"mode":   cfg.Mode,
	}).Info("layout loaded")

	var entry beam.State
	switch cfg.Mode {
	case config.ModeMaximize:
		rep, err := coverage.Maximize(g, coverage.WithContext(ctx), coverage.WithWorkers(cfg.Workers))
		if err != nil {
			return err
		}
		for _, r := range rep.Runs {
			log.WithFields(logrus.Fields{"entry": r.Entry.String(), "energized": r.Energized}).Debug("boundary run")
		}
		log.WithFields(logrus.Fields{"best": rep.Best.String(), "max": rep.Max, "runs": len(rep.Runs)}).Info("search finished")
		entry = rep.Best
	default:
		if entry, err = cfg.BeamEntry(); err != nil {
			return err
		}
	}

	res, err := propagate.Simulate(g, entry,
		propagate.WithContext(ctx),
		propagate.WithOnVisit(func(s beam.State) error {
			log.WithFields(logrus.Fields{"x": s.X, "y": s.Y, "dir": s.Dir.String()}).Trace("beam step")
			return nil
		}),
		propagate.WithOnSplit(func(s beam.State) {
			log.WithField("at", s.String()).Trace("beam split")
		}),
		propagate.WithOnCycle(func(s beam.State) {
			log.WithField("at", s.String()).Trace("beam loop closed")
		}),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"entry":  entry.String(),
		"steps":  res.Steps,
		"splits": res.Splits,
		"cycles": res.Cycles,
		"exits":  res.Exits,
	}).Debug("simulation finished")

	if cfg.Render {
		fmt.Fprint(out, g.Overlay(res.IsEnergized))
	}
	fmt.Fprintln(out, res.Energized)
	return nil
}
