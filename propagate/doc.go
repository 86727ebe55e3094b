// Package propagate simulates one beam travelling through a deflector.Grid,
// splitting at splitters, turning at mirrors and energizing every cell it
// touches.
//
// What
//
//   - Simulate runs a single beam from an entry state and returns a Result
//     with the energized cell count, run statistics and the energized set.
//   - Count is the bare "how many cells light up" query.
//   - Supports functional hooks:
//   - OnVisit (every energizing state; may abort with an error)
//   - OnSplit (a state that divides into two beams)
//   - OnCycle (a state dropped because it was already processed)
//
// Termination
//
//	Every run owns a visited set keyed by beam.State. A popped state that is
//	already in the set is dropped, and every other popped state either leaves
//	the grid or grows the set by one. The set is bounded by W×H×4, so closed
//	mirror loops end without any step limit.
//
// Isolation
//
//	The grid is only read. The worklist, visited set and energized set are
//	created per call and never shared, so any number of Simulate calls may
//	run concurrently on the same grid.
//
// Complexity (W×H grid)
//
//   - Time:   O(W×H×4)
//   - Memory: O(W×H×4)
//
// Usage
//
//	res, err := propagate.Simulate(g, beam.State{X: 0, Y: 0, Dir: beam.Right})
//	if err != nil {
//		// ErrGridNil, ErrOptionViolation, ErrStepLimit, ctx.Err() or hook error
//	}
//	fmt.Println(res.Energized)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no step limit.
//   - WithContext(ctx):   cancellation, checked once per processed state.
//   - WithOnVisit(fn):    trace hook; returning error aborts the run.
//   - WithOnSplit(fn):    split hook.
//   - WithOnCycle(fn):    revisit hook.
//   - WithMaxSteps(n):    stop with ErrStepLimit after n states (n>0).
package propagate
