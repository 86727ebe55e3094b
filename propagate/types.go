// Package propagate provides tunable options, error definitions and the
// result type for single-entry beam simulations.
package propagate

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/deflector"
)

// Sentinel errors for Simulate.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("propagate: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("propagate: invalid option supplied")

	// ErrStepLimit is returned when WithMaxSteps stops a run early.
	ErrStepLimit = errors.New("propagate: step limit reached")
)

// Option configures Simulate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Simulate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one simulation run.
type Options struct {
	// Ctx allows cancellation; checked once per processed beam state.
	Ctx context.Context

	// OnVisit is called for every beam state that energizes its cell.
	// Returning an error aborts the run.
	OnVisit func(s beam.State) error

	// OnSplit is called when a beam state divides into two beams.
	OnSplit func(s beam.State)

	// OnCycle is called when a beam state is discarded as already visited.
	OnCycle func(s beam.State)

	// MaxSteps, if > 0, aborts the run with ErrStepLimit after that many
	// processed states. 0 means no limit; the state space bounds the run anyway.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(beam.State) error { return nil },
		OnSplit: func(beam.State) {},
		OnCycle: func(beam.State) {},
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

// WithOnVisit registers a callback run for each energizing beam state.
func WithOnVisit(fn func(s beam.State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnSplit registers a callback run at every split.
func WithOnSplit(fn func(s beam.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}

// WithOnCycle registers a callback run for every discarded revisit.
func WithOnCycle(fn func(s beam.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCycle = fn
		}
	}
}

// WithMaxSteps caps the number of processed beam states.
//
//	n > 0: stop with ErrStepLimit after n states
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result is the outcome of one run.
//   - Energized: number of distinct cells touched.
//   - Steps: beam states processed (each at most once).
//   - Splits: states that divided into two beams.
//   - Cycles: popped states discarded because they were already visited.
//   - Exits: popped states discarded because they left the grid.
type Result struct {
	Entry     beam.State
	Energized int
	Steps     int
	Splits    int
	Cycles    int
	Exits     int

	cells mapset.Set[deflector.Point]
}

// IsEnergized reports whether p was touched during the run.
func (r *Result) IsEnergized(p deflector.Point) bool {
	return r.cells.Has(p)
}

// Points returns the energized cells in row-major order.
func (r *Result) Points() []deflector.Point {
	pts := make([]deflector.Point, 0, r.Energized)
	r.cells.Each(func(p deflector.Point) {
		pts = append(pts, p)
	})
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}
