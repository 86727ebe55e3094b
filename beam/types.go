package beam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/beamgrid/deflector"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized names.
var ErrUnknownDirection = errors.New("beam: unknown direction")

// Direction is one of the four cardinal travel directions.
type Direction uint8

const (
	// Up travels towards row 0.
	Up Direction = iota
	// Right travels towards the last column.
	Right
	// Down travels towards the last row.
	Down
	// Left travels towards column 0.
	Left
)

// Directions lists all four directions in declaration order.
var Directions = [...]Direction{Up, Right, Down, Left}

var directionNames = [...]string{Up: "Up", Right: "Right", Down: "Down", Left: "Left"}

// deltas holds (dx, dy) per direction; y grows downwards.
var deltas = [...][2]int{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Delta returns the one-cell offset of travel along d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// ParseDirection accepts a direction name ("up", "Right") or its initial
// letter ("u", "R"), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	for _, d := range Directions {
		name := directionNames[d]
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:1]) {
			return d, nil
		}
	}
	return Up, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// State is a beam at cell (X,Y) travelling in Dir.
type State struct {
	X, Y int
	Dir  Direction
}

// At returns the state's cell position.
func (s State) At() deflector.Point {
	return deflector.Point{X: s.X, Y: s.Y}
}

// Advance moves one cell along d and takes d as the new heading.
func (s State) Advance(d Direction) State {
	dx, dy := d.Delta()
	return State{X: s.X + dx, Y: s.Y + dy, Dir: d}
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d) %v", s.X, s.Y, s.Dir)
}

// Outgoing holds the one or two directions leaving a cell.
type Outgoing struct {
	dirs [2]Direction
	n    int
}

func one(d Direction) Outgoing    { return Outgoing{dirs: [2]Direction{d}, n: 1} }
func two(a, b Direction) Outgoing { return Outgoing{dirs: [2]Direction{a, b}, n: 2} }

// Len is 1 for a continuing beam and 2 for a split.
func (o Outgoing) Len() int { return o.n }

// At returns the i-th outgoing direction, i < Len().
func (o Outgoing) At(i int) Direction { return o.dirs[:o.n][i] }

// IsSplit reports whether the beam divides in two.
func (o Outgoing) IsSplit() bool { return o.n == 2 }

// Slice returns the outgoing directions as a fresh slice.
func (o Outgoing) Slice() []Direction {
	out := make([]Direction, o.n)
	copy(out, o.dirs[:o.n])
	return out
}
