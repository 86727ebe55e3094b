package coverage

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/deflector"
	"github.com/katalvlaran/beamgrid/propagate"
)

// BoundaryEntries lists every inward-heading entry on the grid edge:
// for each column x, (x,0) Down and (x,H-1) Up; then for each row y,
// (0,y) Right and (W-1,y) Left. The result has exactly 2·W + 2·H entries.
func BoundaryEntries(g *deflector.Grid) []beam.State {
	if g == nil {
		return nil
	}
	w, h := g.Width(), g.Height()
	entries := make([]beam.State, 0, 2*w+2*h)
	for x := 0; x < w; x++ {
		entries = append(entries,
			beam.State{X: x, Y: 0, Dir: beam.Down},
			beam.State{X: x, Y: h - 1, Dir: beam.Up},
		)
	}
	for y := 0; y < h; y++ {
		entries = append(entries,
			beam.State{X: 0, Y: y, Dir: beam.Right},
			beam.State{X: w - 1, Y: y, Dir: beam.Left},
		)
	}
	return entries
}

// Maximize simulates every boundary entry of g and reports the largest
// energized count. Each entry gets its own run state; runs share only the
// read-only grid and write to distinct result slots, so they need no locks.
//
// Returns ErrEmptyGrid, ErrOptionViolation or the first run error.
// Complexity: O((W+H)×W×H) time, O(Workers×W×H) memory.
func Maximize(g *deflector.Grid, opts ...Option) (*Report, error) {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	entries := BoundaryEntries(g)
	runs := make([]Run, len(entries))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, entry := range entries {
		i, entry := i, entry // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			res, err := propagate.Simulate(g, entry, propagate.WithContext(ctx))
			if err != nil {
				return fmt.Errorf("coverage: entry %v: %w", entry, err)
			}
			runs[i] = Run{Entry: entry, Energized: res.Energized}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Runs: runs, Max: -1}
	for _, r := range runs {
		if r.Energized > rep.Max {
			rep.Max, rep.Best = r.Energized, r.Entry
		}
	}
	return rep, nil
}

// MaximizeCoverage returns only the maximum energized count over all
// boundary entries.
func MaximizeCoverage(g *deflector.Grid) (int, error) {
	rep, err := Maximize(g)
	if err != nil {
		return 0, err
	}
	return rep.Max, nil
}

// Energize is the single-entry case of the driver: one fixed entry,
// same validation as Maximize.
func Energize(g *deflector.Grid, entry beam.State, opts ...propagate.Option) (int, error) {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return 0, ErrEmptyGrid
	}
	res, err := propagate.Simulate(g, entry, opts...)
	if err != nil {
		return 0, err
	}
	return res.Energized, nil
}
