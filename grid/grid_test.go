// Package grid_test contains unit tests for Grid construction, access and
// iteration.
package grid_test

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distgrid/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects bad shapes with ErrInvalidArgument.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		values     []int
	}{
		{"ZeroRows", 0, 1, []int{}},
		{"ZeroCols", 1, 0, []int{}},
		{"NegativeRows", -2, 3, nil},
		{"TooFewValues", 1, 2, []int{1}},
		{"TooManyValues", 2, 2, []int{1, 2, 3, 4, 5}},
		{"ProductWrapsToZero", 1 << 32, 1 << 32, nil},
		{"ProductOverflows", math.MaxInt/2 + 1, 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols, tc.values)
			require.ErrorIs(t, err, grid.ErrInvalidArgument)
			require.Nil(t, g)
		})
	}
}

// TestNew_Valid checks dimensions, size and the shared backing slice.
func TestNew_Valid(t *testing.T) {
	values := []int{0, 1, 1, 0}
	g, err := grid.New(2, 2, values)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 2, g.Cols())
	require.Equal(t, 4, g.Size())
	require.Equal(t, []int{0, 1, 1, 0}, g.Values())

	// Values exposes the live slice, not a copy.
	require.Same(t, &values[0], &g.Values()[0])
}

// TestNew_RoundTrip reads back every coordinate and compares it with the
// row-major input for several shapes.
func TestNew_RoundTrip(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 4}, {5, 5}}
	for _, s := range shapes {
		rows, cols := s[0], s[1]
		values := make([]int, rows*cols)
		for i := range values {
			values[i] = i * 3
		}
		g, err := grid.New(rows, cols, values)
		require.NoError(t, err)

		var got []int
		for c := range g.Coordinates() {
			v, err := g.At(c)
			require.NoError(t, err)
			got = append(got, v)
		}
		if diff := cmp.Diff(values, got); diff != "" {
			t.Errorf("%dx%d round trip mismatch (-want +got):\n%s", rows, cols, diff)
		}
	}
}

// TestFromRows covers the happy path and ragged inputs.
func TestFromRows(t *testing.T) {
	g, err := grid.FromRows([][]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, g.Values())

	_, err = grid.FromRows([][]int{{0, 1}, {2}})
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = grid.FromRows([][]int{{0}, {1, 2}})
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = grid.FromRows[int](nil)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	_, err = grid.FromRows([][]int{{}})
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
}

// TestUniform fills every cell with the same value.
func TestUniform(t *testing.T) {
	g, err := grid.Uniform(2, 2, 33)
	require.NoError(t, err)
	require.Equal(t, []int{33, 33, 33, 33}, g.Values())

	big, err := grid.Uniform(10, 20, 1)
	require.NoError(t, err)
	require.Equal(t, 200, big.Size())

	_, err = grid.Uniform(0, 3, 1)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)

	// 2^32 × 2^32 wraps to 0 in 64-bit int and must not yield an empty grid.
	huge, err := grid.Uniform(1<<32, 1<<32, 1)
	require.ErrorIs(t, err, grid.ErrInvalidArgument)
	require.Nil(t, huge)
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

// TestAt checks valid lookups and out-of-bounds rejections.
func TestAt(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{33, 4},
		{25, 304},
		{10, 33},
	})
	require.NoError(t, err)

	v, err := g.At(grid.Coordinate{X: 1, Y: 1})
	require.NoError(t, err)
	require.Equal(t, 304, v)

	v, err = g.At(grid.Coordinate{X: 0, Y: 2})
	require.NoError(t, err)
	require.Equal(t, 10, v)

	invalid := []grid.Coordinate{{X: -1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: 2}}
	for _, c := range invalid {
		_, err := g.At(c)
		require.ErrorIs(t, err, grid.ErrInvalidArgument, "At(%v)", c)
	}
}

// TestIndexCoordinate verifies the row-major helpers are inverses.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.Uniform(3, 5, 0)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		require.True(t, g.InBounds(c))
		require.Equal(t, i, g.Index(c))
	}
	require.Equal(t, grid.Coordinate{X: 4, Y: 1}, g.Coordinate(9))
}

// TestRows2D returns an independent copy.
func TestRows2D(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	rows := g.Rows2D()
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, rows)

	rows[0][0] = 99
	v, _ := g.At(grid.Coordinate{})
	require.Equal(t, 1, v)
}

//----------------------------------------------------------------------------//
// Iteration
//----------------------------------------------------------------------------//

// TestCoordinates verifies row-major order, count and restartability.
func TestCoordinates(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{33, 4},
		{304, 206},
		{10, 33},
	})
	require.NoError(t, err)

	want := []grid.Coordinate{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}
	require.Equal(t, want, slices.Collect(g.Coordinates()))
	// A fresh call starts over.
	require.Equal(t, want, slices.Collect(g.Coordinates()))

	// Early break stops cleanly.
	n := 0
	for range g.Coordinates() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

// TestCoordinates_Unique checks R*C distinct coordinates on a larger grid.
func TestCoordinates_Unique(t *testing.T) {
	g, err := grid.Uniform(7, 9, 0)
	require.NoError(t, err)
	seen := make(map[grid.Coordinate]bool)
	prev := -1
	for c := range g.Coordinates() {
		require.False(t, seen[c], "repeat %v", c)
		seen[c] = true
		require.Equal(t, prev+1, g.Index(c))
		prev = g.Index(c)
	}
	require.Len(t, seen, 63)
}

// TestNeighbors covers interior, edge and corner cells.
func TestNeighbors(t *testing.T) {
	g, err := grid.Uniform(3, 3, 0)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   grid.Coordinate
		want []grid.Coordinate
	}{
		{"Interior", grid.Coordinate{X: 1, Y: 1}, []grid.Coordinate{{1, 0}, {2, 1}, {1, 2}, {0, 1}}},
		{"TopLeft", grid.Coordinate{X: 0, Y: 0}, []grid.Coordinate{{1, 0}, {0, 1}}},
		{"BottomRight", grid.Coordinate{X: 2, Y: 2}, []grid.Coordinate{{2, 1}, {1, 2}}},
		{"TopEdge", grid.Coordinate{X: 1, Y: 0}, []grid.Coordinate{{2, 0}, {1, 1}, {0, 0}}},
		{"LeftEdge", grid.Coordinate{X: 0, Y: 1}, []grid.Coordinate{{0, 0}, {1, 1}, {0, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, slices.Collect(g.Neighbors(tc.at)))
		})
	}
}

// TestNeighbors_NarrowGrid checks the left edge of a 2-column grid and a
// single cell.
func TestNeighbors_NarrowGrid(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{33, 4},
		{304, 206},
		{10, 33},
	})
	require.NoError(t, err)
	got := slices.Collect(g.Neighbors(grid.Coordinate{X: 0, Y: 1}))
	require.Equal(t, []grid.Coordinate{{0, 0}, {1, 1}, {0, 2}}, got)

	single, err := grid.Uniform(1, 1, 0)
	require.NoError(t, err)
	require.Empty(t, slices.Collect(single.Neighbors(grid.Coordinate{})))
}
