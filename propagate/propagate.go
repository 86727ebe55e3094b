package propagate

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/deflector"
)

// walker encapsulates the mutable state of one run. Nothing in it is
// shared with other runs; the grid is only read.
type walker struct {
	grid      *deflector.Grid
	opts      Options
	ctx       context.Context
	pending   []beam.State
	visited   mapset.Set[beam.State]
	energized mapset.Set[deflector.Point]
	res       *Result
}

// Simulate runs one beam from entry through g and counts energized cells.
// Pending states live on a LIFO worklist; a popped state is dropped when it
// is outside the grid or already visited, otherwise it energizes its cell
// and pushes one advanced state per outgoing direction.
// An entry outside the grid yields Energized == 0 and no error.
//
// Returns ErrGridNil, ErrOptionViolation, ErrStepLimit, the context error
// or a wrapped OnVisit error.
// Complexity: O(W×H×4) time and memory.
func Simulate(g *deflector.Grid, entry beam.State, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:      g,
		opts:      o,
		ctx:       o.Ctx,
		pending:   make([]beam.State, 0, 16),
		visited:   mapset.New[beam.State](),
		energized: mapset.New[deflector.Point](),
	}
	w.res = &Result{Entry: entry, cells: w.energized}
	w.pending = append(w.pending, entry)

	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Energized = w.energized.Size()
	return w.res, nil
}

// Count is Simulate with default options, returning only the energized
// count. A nil grid counts as 0.
func Count(g *deflector.Grid, entry beam.State) int {
	res, err := Simulate(g, entry)
	if err != nil {
		return 0
	}
	return res.Energized
}

// loop drains the worklist. Each iteration either discards a state or
// grows visited by one, so it ends after at most W×H×4 expansions.
func (w *walker) loop() error {
	for len(w.pending) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		s := w.pop()
		if !w.grid.InBounds(s.X, s.Y) {
			w.res.Exits++
			continue
		}
		if w.visited.Has(s) {
			w.res.Cycles++
			w.opts.OnCycle(s)
			continue
		}
		if w.opts.MaxSteps > 0 && w.res.Steps >= w.opts.MaxSteps {
			return fmt.Errorf("%w: %d states processed from %v", ErrStepLimit, w.res.Steps, w.res.Entry)
		}
		if err := w.visit(s); err != nil {
			return err
		}
		w.expand(s)
	}
	return nil
}

func (w *walker) pop() beam.State {
	s := w.pending[len(w.pending)-1]
	w.pending = w.pending[:len(w.pending)-1]
	return s
}

// visit records s as processed and energizes its cell.
func (w *walker) visit(s beam.State) error {
	w.visited.Put(s)
	w.energized.Put(s.At())
	w.res.Steps++
	if err := w.opts.OnVisit(s); err != nil {
		return fmt.Errorf("propagate: OnVisit error at %v: %w", s, err)
	}
	return nil
}

// expand pushes the advanced state for each outgoing direction.
func (w *walker) expand(s beam.State) {
	out := beam.NextDirections(w.grid.CellAt(s.X, s.Y), s.Dir)
	if out.IsSplit() {
		w.res.Splits++
		w.opts.OnSplit(s)
	}
	for i := 0; i < out.Len(); i++ {
		w.pending = append(w.pending, s.Advance(out.At(i)))
	}
}
