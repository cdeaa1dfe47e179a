// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/distgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FromRows + String
////////////////////////////////////////////////////////////////////////////////

// ExampleFromRows builds a grid from rows and prints its aligned rendering.
func ExampleFromRows() {
	g, _ := grid.FromRows([][]int{
		{1, 20},
		{300, 40},
	})
	fmt.Println(g.String())
	// Output:
	// 1   20
	// 300 40
}

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors lists the neighbours of a corner and an interior cell
// in the fixed up, right, down, left order.
func ExampleGrid_Neighbors() {
	g, _ := grid.Uniform(3, 3, 0)
	for _, c := range []grid.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}} {
		fmt.Print(c, ":")
		for n := range g.Neighbors(c) {
			fmt.Print(" ", n)
		}
		fmt.Println()
	}
	// Output:
	// (0,0): (1,0) (0,1)
	// (1,1): (1,0) (2,1) (1,2) (0,1)
}
