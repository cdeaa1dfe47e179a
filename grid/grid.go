package grid

import (
	"iter"
	"math"
)

// Method tags used in wrapped errors.
const (
	methodNew      = "New"
	methodFromRows = "FromRows"
	methodUniform  = "Uniform"
	methodAt       = "At"
	minDim         = 1
)

// New builds a rows×cols Grid over values, which must hold exactly rows*cols
// elements in row-major order. The slice is kept, not copied.
// Returns ErrInvalidArgument if rows < 1, cols < 1, rows*cols overflows int
// or len(values) != rows*cols.
// Complexity: O(1).
func New[T any](rows, cols int, values []T) (*Grid[T], error) {
	return build(methodNew, rows, cols, values)
}

// build is the single validation path behind every constructor.
func build[T any](method string, rows, cols int, values []T) (*Grid[T], error) {
	if rows < minDim {
		return nil, gridErrorf(method, "rows=%d, must be ≥ %d", rows, minDim)
	}
	if cols < minDim {
		return nil, gridErrorf(method, "cols=%d, must be ≥ %d", cols, minDim)
	}
	if cols > math.MaxInt/rows {
		return nil, gridErrorf(method, "%d×%d cells overflow int", rows, cols)
	}
	if len(values) != rows*cols {
		return nil, gridErrorf(method, "got %d values, want %d", len(values), rows*cols)
	}

	return &Grid[T]{rows: rows, cols: cols, values: values}, nil
}

// FromRows flattens a rectangular [][]T into a Grid.
// Returns ErrInvalidArgument if there are no rows or any row's length
// differs from the first row's.
// Complexity: O(R×C) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, gridErrorf(methodFromRows, "no rows")
	}
	cols := len(rows[0])
	values := make([]T, 0, len(rows)*cols)
	for y, row := range rows {
		if len(row) != cols {
			return nil, gridErrorf(methodFromRows, "row %d has %d values, want %d", y, len(row), cols)
		}
		values = append(values, row...)
	}

	return build(methodFromRows, len(rows), cols, values)
}

// Uniform returns a rows×cols Grid with every cell set to v.
// Complexity: O(R×C).
func Uniform[T any](rows, cols int, v T) (*Grid[T], error) {
	if rows < minDim || cols < minDim || cols > math.MaxInt/rows {
		return build[T](methodUniform, rows, cols, nil)
	}
	values := make([]T, rows*cols)
	for i := range values {
		values[i] = v
	}

	return build(methodUniform, rows, cols, values)
}

// Rows returns the grid height.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid[T]) Cols() int { return g.cols }

// Size returns rows*cols.
func (g *Grid[T]) Size() int { return g.rows * g.cols }

// Values returns the live row-major backing slice. It is shared with the
// grid, so callers must not modify it.
func (g *Grid[T]) Values() []T { return g.values }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// Index maps c to its row-major offset y*cols + x. c is not validated.
func (g *Grid[T]) Index(c Coordinate) int {
	return c.Y*g.cols + c.X
}

// Coordinate converts a row-major offset back to (x,y).
func (g *Grid[T]) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.cols, Y: idx / g.cols}
}

// At returns the value stored at c.
// Returns ErrInvalidArgument if c is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) At(c Coordinate) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, gridErrorf(methodAt, "coordinate %v outside %dx%d grid", c, g.rows, g.cols)
	}

	return g.values[g.Index(c)], nil
}

// Coordinates yields every coordinate in row-major order:
// (0,0), (1,0), …, (cols-1,0), (0,1), …
// Each call returns a fresh sequence.
func (g *Grid[T]) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for y := 0; y < g.rows; y++ {
			for x := 0; x < g.cols; x++ {
				if !yield(Coordinate{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Neighbors yields the in-bounds 4-connected neighbours of c in the order
// up, right, down, left. c itself is not validated.
func (g *Grid[T]) Neighbors(c Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, d := range neighborOffsets {
			n := Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
			if !g.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Rows2D returns a fresh [][]T copy of the grid, one slice per row.
// Complexity: O(R×C) time and memory.
func (g *Grid[T]) Rows2D() [][]T {
	out := make([][]T, g.rows)
	for y := range out {
		row := make([]T, g.cols)
		copy(row, g.values[y*g.cols:(y+1)*g.cols])
		out[y] = row
	}

	return out
}
