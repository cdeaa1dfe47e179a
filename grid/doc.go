// Package grid provides a generic, immutable 2D container with row-major
// flat storage, and a Bitmap specialization restricted to two colours.
//
// What:
//
//   - Grid[T] stores rows×cols values in a single slice (index = y*cols + x).
//   - At performs bounds-checked lookups by Coordinate{X, Y}.
//   - Coordinates and Neighbors expose lazy iter.Seq sequences in a fixed,
//     documented order (row-major; up, right, down, left).
//   - String renders a column-aligned, space-separated text block.
//   - Bitmap is a Grid[Color] whose every value is Low or High.
//
// Why:
//
//   - Distance transforms and flood fills walk neighbours far more often than
//     they index by row, so flat storage with precomputed offsets keeps the
//     inner loops branch-light.
//   - A single construction path (New) keeps the shape invariant in one place.
//
// Complexity:
//
//   - New, FromRows, Uniform: O(R×C) time and memory.
//   - At, InBounds, Index, Coordinate: O(1).
//   - Coordinates: O(R×C) total; Neighbors: O(1) total (at most 4 yields).
//   - String: O(R×C) time and memory.
//
// Errors:
//
//   - ErrInvalidArgument: non-positive dimensions, value-count mismatch,
//     ragged rows, out-of-bounds coordinate, or a colour outside {Low, High}.
//     Every returned error wraps it with context; match with errors.Is.
package grid
