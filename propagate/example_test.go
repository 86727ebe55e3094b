package propagate_test

import (
	"fmt"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/deflector"
	"github.com/katalvlaran/beamgrid/propagate"
)

// ExampleSimulate runs the reference contraption from its top-left corner,
// heading right, and draws the energized cells.
func ExampleSimulate() {
	g, err := deflector.Parse(contraption)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := propagate.Simulate(g, beam.State{X: 0, Y: 0, Dir: beam.Right})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("energized:", res.Energized)
	fmt.Print(g.Overlay(res.IsEnergized))
	// Output:
	// energized: 46
	// ######....
	// .#...#....
	// .#...#####
	// .#...##...
	// .#...##...
	// .#...##...
	// .#..####..
	// ########..
	// .#######..
	// .#...#.#..
}

// ExampleWithOnCycle counts how often a closed mirror loop is re-entered.
func ExampleWithOnCycle() {
	g, _ := deflector.Parse("/.\\\n\\./")
	loops := 0
	res, _ := propagate.Simulate(g, beam.State{X: 1, Y: 0, Dir: beam.Right},
		propagate.WithOnCycle(func(beam.State) { loops++ }))

	fmt.Println("energized:", res.Energized, "loops:", loops)
	// Output:
	// energized: 6 loops: 1
}
