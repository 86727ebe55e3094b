package beam

import "github.com/katalvlaran/beamgrid/deflector"

// forward and backward give the reflected heading for '/' and '\' mirrors.
var (
	forward  = [...]Direction{Up: Right, Right: Up, Down: Left, Left: Down}
	backward = [...]Direction{Up: Left, Left: Up, Down: Right, Right: Down}
)

// NextDirections maps a cell and an incoming heading to the outgoing
// heading(s). It is pure and total over the five cell types; values outside
// them behave as Empty.
// Complexity: O(1), no allocation.
func NextDirections(cell deflector.CellType, in Direction) Outgoing {
	switch cell {
	case deflector.MirrorForward:
		return one(forward[in])
	case deflector.MirrorBackward:
		return one(backward[in])
	case deflector.SplitterVertical:
		if in.Horizontal() {
			return two(Up, Down)
		}
	case deflector.SplitterHorizontal:
		if !in.Horizontal() {
			return two(Left, Right)
		}
	}
	return one(in)
}
