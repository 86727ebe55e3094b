package coverage_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/coverage"
	"github.com/katalvlaran/beamgrid/deflector"
	"github.com/katalvlaran/beamgrid/propagate"
)

const contraption = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func mustParse(t testing.TB, text string) *deflector.Grid {
	t.Helper()
	g, err := deflector.Parse(text)
	require.NoError(t, err)
	return g
}

// TestBoundaryEntries checks count, order and headings on a 3×2 grid.
func TestBoundaryEntries(t *testing.T) {
	g := mustParse(t, "...\n...")
	got := coverage.BoundaryEntries(g)
	want := []beam.State{
		{X: 0, Y: 0, Dir: beam.Down}, {X: 0, Y: 1, Dir: beam.Up},
		{X: 1, Y: 0, Dir: beam.Down}, {X: 1, Y: 1, Dir: beam.Up},
		{X: 2, Y: 0, Dir: beam.Down}, {X: 2, Y: 1, Dir: beam.Up},
		{X: 0, Y: 0, Dir: beam.Right}, {X: 2, Y: 0, Dir: beam.Left},
		{X: 0, Y: 1, Dir: beam.Right}, {X: 2, Y: 1, Dir: beam.Left},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BoundaryEntries mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got, 2*g.Width()+2*g.Height())
	assert.Nil(t, coverage.BoundaryEntries(nil))
}

// TestMaximize_Errors covers degenerate grids and bad options.
func TestMaximize_Errors(t *testing.T) {
	_, err := coverage.Maximize(nil)
	assert.ErrorIs(t, err, coverage.ErrEmptyGrid)

	_, err = coverage.Maximize(&deflector.Grid{})
	assert.ErrorIs(t, err, coverage.ErrEmptyGrid)

	_, err = coverage.MaximizeCoverage(&deflector.Grid{})
	assert.ErrorIs(t, err, coverage.ErrEmptyGrid)

	_, err = coverage.Energize(&deflector.Grid{}, beam.State{})
	assert.ErrorIs(t, err, coverage.ErrEmptyGrid)

	g := mustParse(t, "..")
	_, err = coverage.Maximize(g, coverage.WithWorkers(-2))
	assert.ErrorIs(t, err, coverage.ErrOptionViolation)
}

// TestMaximize_ReferenceContraption checks the published maximum.
func TestMaximize_ReferenceContraption(t *testing.T) {
	g := mustParse(t, contraption)
	rep, err := coverage.Maximize(g)
	require.NoError(t, err)
	assert.Equal(t, 51, rep.Max)
	require.Len(t, rep.Runs, 40)

	// Best must reproduce Max on its own, and no run may exceed it.
	assert.Equal(t, rep.Max, propagate.Count(g, rep.Best))
	for _, r := range rep.Runs {
		assert.LessOrEqual(t, r.Energized, rep.Max)
	}

	// Entering column 3 from the top is a known maximizer.
	want := coverage.Run{Entry: beam.State{X: 3, Y: 0, Dir: beam.Down}, Energized: 51}
	assert.Contains(t, rep.Runs, want)

	best, err := coverage.MaximizeCoverage(g)
	require.NoError(t, err)
	assert.Equal(t, 51, best)
}

// TestMaximize_WorkerCountsAgree checks that the report does not depend
// on pool size.
func TestMaximize_WorkerCountsAgree(t *testing.T) {
	g := mustParse(t, contraption)
	serial, err := coverage.Maximize(g, coverage.WithWorkers(1))
	require.NoError(t, err)
	for _, n := range []int{0, 2, 7, 64} {
		rep, err := coverage.Maximize(g, coverage.WithWorkers(n))
		require.NoError(t, err)
		if diff := cmp.Diff(serial, rep); diff != "" {
			t.Errorf("workers=%d report mismatch (-serial +got):\n%s", n, diff)
		}
	}
}

// TestMaximize_EmptyLayout: on an all-empty grid the best entry crosses
// the longer side.
func TestMaximize_EmptyLayout(t *testing.T) {
	g := mustParse(t, ".....\n.....\n.....")
	rep, err := coverage.Maximize(g)
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Max)
	assert.Equal(t, beam.State{X: 0, Y: 0, Dir: beam.Right}, rep.Best)
	for _, r := range rep.Runs {
		want := 3
		if r.Entry.Dir.Horizontal() {
			want = 5
		}
		assert.Equal(t, want, r.Energized, "%v", r.Entry)
	}
}

// TestMaximize_SingleCell: all four corner entries hit the same cell.
func TestMaximize_SingleCell(t *testing.T) {
	g := mustParse(t, "|")
	rep, err := coverage.Maximize(g)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Max)
	assert.Len(t, rep.Runs, 4)
}

// TestMaximize_Cancelled surfaces the context error.
func TestMaximize_Cancelled(t *testing.T) {
	g := mustParse(t, contraption)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := coverage.Maximize(g, coverage.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEnergize matches propagate for the single fixed entry.
func TestEnergize(t *testing.T) {
	g := mustParse(t, contraption)
	n, err := coverage.Energize(g, beam.State{X: 0, Y: 0, Dir: beam.Right})
	require.NoError(t, err)
	assert.Equal(t, 46, n)

	_, err = coverage.Energize(g, beam.State{Dir: beam.Right}, propagate.WithMaxSteps(-1))
	assert.ErrorIs(t, err, propagate.ErrOptionViolation)
}
