// Package distance defines the Distance value, worklist orders, options and
// sentinel errors for the distance transform.
package distance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/distgrid/grid"
)

// Sentinel errors for Transform.
var (
	// ErrNilBitmap is returned when Transform receives a nil bitmap.
	ErrNilBitmap = errors.New("distance: bitmap is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Distance is a step count to the nearest High cell.
type Distance int

// Infinity marks a cell with no reachable High cell.
const Infinity Distance = math.MaxInt

// IsInf reports whether d is the Infinity sentinel.
func (d Distance) IsInf() bool { return d == Infinity }

// String renders Infinity as "Infinity" and finite distances in decimal.
func (d Distance) String() string {
	if d.IsInf() {
		return "Infinity"
	}
	return strconv.Itoa(int(d))
}

// Order selects the worklist removal discipline.
type Order int

const (
	// LIFO removes the most recently inserted cell (a stack).
	LIFO Order = iota
	// FIFO removes the oldest cell (a queue); this is plain multi-source BFS.
	FIFO
	// Random removes a uniformly chosen cell, seeded for reproducibility.
	Random
)

// String returns the lower-case order name.
func (o Order) String() string {
	switch o {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder maps "lifo", "fifo" or "random" to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "lifo", "":
		return LIFO, nil
	case "fifo":
		return FIFO, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
	}
}

// Option configures Transform via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Transform runs.
type Option func(*Options)

// Options holds parameters and callbacks for Transform.
type Options struct {
	// Ctx allows cancellation; checked once per worklist removal.
	Ctx context.Context

	// Order is the worklist removal discipline.
	Order Order

	// Seed feeds the Random discipline.
	Seed int64

	// OnRelax is called each time a cell's distance improves.
	OnRelax func(c grid.Coordinate, d Distance)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - LIFO order, seed 1
//   - a no-op OnRelax hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Order:   LIFO,
		Seed:    1,
		OnRelax: func(grid.Coordinate, Distance) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the worklist discipline. Unknown orders are rejected
// with ErrOptionViolation.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case LIFO, FIFO, Random:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
		}
	}
}

// WithSeed sets the Random discipline seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithOnRelax registers a callback run on every distance improvement.
func WithOnRelax(fn func(c grid.Coordinate, d Distance)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
