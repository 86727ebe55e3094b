// Package beamgrid simulates light beams travelling through a grid of
// mirrors and splitters and counts the cells they energize.
//
// What is beamgrid?
//
//	A small, dependency-light library plus a thin command that brings together:
//		• Layouts: immutable rectangular deflector grids parsed from text
//		• Rules: one pure table from (cell, heading) to outgoing heading(s)
//		• Propagation: worklist simulation with per-run visited sets
//		• Coverage: a parallel search over every boundary entry
//
// Why beamgrid?
//
//   - Always terminates: closed mirror loops end on the first revisited state
//   - Share-nothing runs: one read-only grid, fresh state per simulation
//   - Hooks instead of logging: OnVisit, OnSplit, OnCycle for tracing
//
// Packages:
//
//	deflector/ : Grid, CellType, Parse, LoadFile (.zst aware), rendering
//	beam/      : Direction, State, NextDirections
//	propagate/ : Simulate, Count, run options and statistics
//	coverage/  : BoundaryEntries, Maximize on a worker pool
//	config/    : YAML run files for cmd/beamgrid
//
// Quick ASCII example:
//
//	 ...
//	>.|.      a beam entering at the left edge hits the splitter,
//	 ...      which sends one branch up and one down:
//	          4 cells energized.
//
//	go install github.com/katalvlaran/beamgrid/cmd/beamgrid@latest
package beamgrid
