// Package beam defines travel directions, beam states and the transition
// rules that map (cell, incoming direction) to outgoing directions.
//
// NextDirections is the single source of truth for grid semantics:
//
//	cell  incoming      outgoing
//	 .    any           unchanged
//	 /    R U L D       U R D L
//	 \    R D L U       D R U L
//	 |    L, R          U + D (split)
//	 |    U, D          unchanged
//	 -    U, D          L + R (split)
//	 -    L, R          unchanged
//
// The rules are direction-symmetric: both splitters split when struck
// broadside from either side.
//
// A State is comparable and equal iff position and direction match, which
// makes it usable directly as a set key for cycle detection.
package beam
