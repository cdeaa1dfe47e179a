package reader

import (
	"bufio"
	"context"
	"fmt"
)

// Option configures a Reader via functional arguments.
// If an Option is invalid (e.g. a non-positive line limit), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for a Reader.
type Options struct {
	// Ctx allows Run to stop between lines.
	Ctx context.Context

	// OnFault is called once per detected fault, in input order.
	OnFault func(f *Fault)

	// Strict rejects tokens that are not plain unsigned integers instead of
	// reading their leading integer.
	Strict bool

	// MaxLineBytes caps the length of a single input line in Run.
	MaxLineBytes int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnFault hook
//   - lenient tokens
//   - bufio.MaxScanTokenSize line limit.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnFault:      func(*Fault) {},
		MaxLineBytes: bufio.MaxScanTokenSize,
	}
}

// WithContext sets a custom context for Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFault registers the fault callback.
func WithOnFault(fn func(f *Fault)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFault = fn
		}
	}
}

// WithStrictTokens requires every token to be an unsigned decimal integer.
func WithStrictTokens() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithMaxLineBytes sets the longest line Run accepts.
//
//	n > 0: limit lines to n bytes
//	n ≤ 0: invalid option → ErrOptionViolation
func WithMaxLineBytes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxLineBytes must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLineBytes = n
	}
}
