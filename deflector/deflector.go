package deflector

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from a text block of equal-length lines.
// Surrounding blank lines and carriage returns are ignored.
// Returns ErrMalformedGrid for empty input, ErrNonRectangular for ragged
// rows and ErrInvalidCell for unknown characters; no grid is returned on error.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	// trim blank lines at both ends; blank lines inside the block stay and fail as ragged rows
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}

	w := len([]rune(lines[0]))
	rows := make([][]CellType, len(lines))
	for y, line := range lines {
		row := make([]CellType, 0, w)
		for x, r := range []rune(line) {
			c, err := ParseCell(r)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			row = append(row, c)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		rows[y] = row
	}

	return NewGrid(rows)
}

// NewGrid constructs a Grid from typed rows. It deep-copies the input so the
// caller may reuse rows afterwards.
// Returns ErrMalformedGrid if rows is empty or has empty rows, ErrNonRectangular
// if any row length differs.
func NewGrid(rows [][]CellType) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	}
	h, w := len(rows), len(rows[0])
	cells := make([]CellType, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if int(c) >= len(cellRunes) {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrInvalidCell, c, x, y)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Size is Width×Height, the upper bound of any energized count.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the cell at (x,y). Callers must check InBounds first;
// an out-of-bounds coordinate is a programming error and panics.
func (g *Grid) CellAt(x, y int) CellType {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("deflector: CellAt(%d,%d) outside %d×%d grid", x, y, g.width, g.height))
	}
	return g.cells[g.Index(x, y)]
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// String renders the layout in its input alphabet, one line per row.
func (g *Grid) String() string {
	return g.render(func(x, y int) rune { return g.cells[g.Index(x, y)].Rune() })
}

// Overlay renders energized cells as '#' and every other cell as '.'.
func (g *Grid) Overlay(energized func(Point) bool) string {
	return g.render(func(x, y int) rune {
		if energized(Point{X: x, Y: y}) {
			return '#'
		}
		return '.'
	})
}

func (g *Grid) render(at func(x, y int) rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(at(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
