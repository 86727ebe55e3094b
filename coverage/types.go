// Package coverage defines options, sentinel errors and the report type for
// the boundary-entry maximization search.
package coverage

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/beamgrid/beam"
)

// Sentinel errors for Maximize.
var (
	// ErrEmptyGrid is returned for a nil grid or one with zero width or height.
	ErrEmptyGrid = errors.New("coverage: grid has zero width or height")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coverage: invalid option supplied")
)

// Option configures Maximize.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx cancels outstanding runs; the first failing run cancels the rest.
	Ctx context.Context

	// Workers caps concurrently running simulations.
	Workers int

	err error
}

// DefaultOptions returns a background context and one worker per GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker pool size.
//
//	n > 0: at most n simulations in flight
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// Run is the energized count of one boundary entry.
type Run struct {
	Entry     beam.State
	Energized int
}

// Report is the outcome of a maximization search.
//   - Max: the largest energized count over all entries.
//   - Best: the first entry, in enumeration order, that reaches Max.
//   - Runs: every entry's count, in enumeration order.
type Report struct {
	Max  int
	Best beam.State
	Runs []Run
}
