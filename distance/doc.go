// Package distance computes the 4-connected distance transform of a bitmap:
// for every cell, the minimum number of orthogonal steps to the nearest
// High cell.
//
// Overview:
//
//   - Transform runs a multi-source label-correcting relaxation. Every High
//     cell starts at distance 0 and seeds the worklist; every other cell
//     starts at Infinity. Removing a cell relaxes its neighbours
//     (dist[n] > dist[c]+1 ⇒ dist[n] = dist[c]+1) and reinserts the improved
//     ones. The loop ends when the worklist is empty.
//   - Distances only decrease and are bounded below by zero, so the result is
//     exact for any removal order. WithOrder picks LIFO (default), FIFO or a
//     seeded random discipline; the output grid is identical for all three.
//   - Shortcuts: no High cell ⇒ a uniform Infinity grid; all High ⇒ a
//     uniform zero grid.
//
// Key features:
//
//   - WithContext: abort long transforms; Transform returns ctx.Err().
//   - WithOnRelax: observe each distance improvement (tests, tracing).
//   - Summarize: finite-distance statistics (max, mean, population stddev)
//     computed with gonum.
//
// Performance and complexity:
//
//   - FIFO behaves like breadth-first search: each cell settles on first
//     improvement, O(R×C) time.
//   - LIFO and Random may revise a cell several times; worst case is
//     O((R×C)²) relaxations, in practice close to linear on sparse targets.
//   - Space: O(R×C) for distances plus the worklist.
//
// Error handling (sentinel errors):
//
//   - ErrNilBitmap: Transform was given a nil bitmap.
//   - ErrOptionViolation: an Option was given a nonsensical value.
package distance
