// Package deflector models the static layout of a beam contraption: a
// rectangular grid of empty tiles, mirrors and splitters.
//
// What:
//
//   - Grid is an immutable Width×Height map of CellType values.
//   - Parse turns a text block over the alphabet ". / \ | -" into a Grid.
//   - ReadGrid and LoadFile apply the same parsing to readers and files;
//     files ending in ".zst" are decompressed on the fly.
//   - String and Overlay render the layout, or a set of energized cells, back to text.
//
// Why:
//
//   - One Grid is loaded per simulation batch and shared read-only by every
//     run, so no locking is ever needed around it.
//   - Validation happens once at load time; simulations never fail on layout.
//
// Complexity:
//
//   - Parse / NewGrid: O(W×H) time and memory.
//   - CellAt, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: empty input, ragged rows or an unknown character.
//   - ErrNonRectangular: rows have differing lengths (also matches ErrMalformedGrid).
//   - ErrInvalidCell: a character outside the alphabet (also matches ErrMalformedGrid).
package deflector
