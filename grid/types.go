package grid

import "fmt"

// Coordinate addresses a single cell: X is the column, Y is the row.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborOffsets lists the 4-connected moves in the fixed visiting order:
// up, right, down, left.
var neighborOffsets = [4]Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is an immutable rows×cols container of T in row-major order.
// The zero value is not usable; build one with New, FromRows or Uniform.
type Grid[T any] struct {
	rows, cols int // both ≥ 1
	values     []T // len(values) == rows*cols
}
