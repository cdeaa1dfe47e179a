package distance

import (
	"github.com/katalvlaran/distgrid/grid"
)

// Transform returns a grid of the same shape as b where every cell holds its
// 4-connected step count to the nearest High cell, or Infinity when b has no
// High cell at all.
//
// Behavior:
//  1. Validate input and options.
//  2. Initialise: High ⇒ 0 and pushed onto the worklist; otherwise Infinity.
//  3. Shortcut the all-Low and all-High bitmaps with uniform grids.
//  4. Pop a cell, relax each in-bounds neighbour whose distance exceeds
//     dist[cell]+1, and push it back.
//  5. Build the result row-major once the worklist is empty.
//
// Returns ErrNilBitmap, ErrOptionViolation, or the context error if Ctx is
// cancelled mid-run.
func Transform(b *grid.Bitmap, opts ...Option) (*grid.Grid[Distance], error) {
	if b == nil {
		return nil, ErrNilBitmap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cells := b.Values()
	dist := make([]Distance, len(cells))
	wl := newWorklist(o.Order, o.Seed, len(cells))
	for i, c := range cells {
		if c == grid.High {
			dist[i] = 0
			wl.push(i)
			continue
		}
		dist[i] = Infinity
	}

	switch wl.len() {
	case 0:
		return grid.Uniform(b.Rows(), b.Cols(), Infinity)
	case len(cells):
		return grid.Uniform(b.Rows(), b.Cols(), Distance(0))
	}

	for wl.len() > 0 {
		// cancellation check (once per removal)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := wl.pop()
		next := dist[u] + 1
		for n := range b.Neighbors(b.Coordinate(u)) {
			v := b.Index(n)
			if dist[v] > next {
				dist[v] = next
				o.OnRelax(n, next)
				wl.push(v)
			}
		}
	}

	return grid.New(b.Rows(), b.Cols(), dist)
}
