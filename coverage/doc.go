// Package coverage searches every boundary entry of a deflector.Grid for
// the one that energizes the most cells.
//
// What:
//
//   - BoundaryEntries enumerates the 2·W + 2·H inward-heading edge states.
//     Corner cells appear twice with different headings.
//   - Maximize runs propagate.Simulate for each entry on a bounded worker
//     pool and reduces to the maximum. Report.Runs keeps every count.
//   - MaximizeCoverage and Energize are the bare integer queries.
//
// Why:
//
//   - Each run is independent: fresh visited and energized sets, the grid
//     only read. The search is embarrassingly parallel and the reduction
//     order does not matter.
//   - Report.Best is chosen in enumeration order after all runs finish, so
//     it does not depend on worker scheduling.
//
// Options:
//
//   - WithContext(ctx): cancel outstanding runs.
//   - WithWorkers(n):   pool size; 0 means GOMAXPROCS.
//
// Errors:
//
//   - ErrEmptyGrid: nil grid, or zero width or height.
//   - ErrOptionViolation: negative worker count.
package coverage
