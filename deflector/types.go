// Package deflector defines cell types, points, the Grid container and
// sentinel errors.
package deflector

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrMalformedGrid indicates the input cannot form a grid at all.
	ErrMalformedGrid = errors.New("deflector: malformed grid")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrInvalidCell indicates a character outside ". / \ | -".
	ErrInvalidCell = fmt.Errorf("%w: invalid cell character", ErrMalformedGrid)
)

// CellType is the fixed content of one grid tile.
type CellType uint8

const (
	// Empty lets a beam pass straight through ('.').
	Empty CellType = iota
	// MirrorForward turns Right↔Up and Left↔Down ('/').
	MirrorForward
	// MirrorBackward turns Right↔Down and Left↔Up ('\').
	MirrorBackward
	// SplitterVertical splits horizontal beams into Up and Down ('|').
	SplitterVertical
	// SplitterHorizontal splits vertical beams into Left and Right ('-').
	SplitterHorizontal
)

var cellRunes = [...]rune{
	Empty:              '.',
	MirrorForward:      '/',
	MirrorBackward:     '\\',
	SplitterVertical:   '|',
	SplitterHorizontal: '-',
}

var cellNames = [...]string{
	Empty:              "Empty",
	MirrorForward:      "MirrorForward",
	MirrorBackward:     "MirrorBackward",
	SplitterVertical:   "SplitterVertical",
	SplitterHorizontal: "SplitterHorizontal",
}

// ParseCell maps a layout character to its CellType.
func ParseCell(r rune) (CellType, error) {
	for c, cr := range cellRunes {
		if cr == r {
			return CellType(c), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, r)
}

// Rune returns the layout character of c.
func (c CellType) Rune() rune {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}

func (c CellType) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("CellType(%d)", uint8(c))
}

// Point is a cell coordinate: X is the column, Y the row, (0,0) top-left.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is an immutable rectangular layout. cells is stored row-major.
// The zero value is a valid 0×0 grid.
type Grid struct {
	width, height int
	cells         []CellType
}
