package reader

import (
	"errors"
	"fmt"
)

// Sentinel errors. Faults wrap ErrParse or ErrFormat (or the factory's own
// error) so callers can match with errors.Is.
var (
	// ErrParse marks a token that is not an integer.
	ErrParse = errors.New("reader: parse error")

	// ErrFormat marks a grammar violation.
	ErrFormat = errors.New("reader: format error")

	// ErrNilFactory is returned by New when no factory is given.
	ErrNilFactory = errors.New("reader: factory is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reader: invalid option supplied")
)

// Kind classifies a Fault.
type Kind int

const (
	// ParseError is a token without digits.
	ParseError Kind = iota + 1
	// FormatError is any grammar violation.
	FormatError
	// InvalidArgument is a factory rejection (bad shape or colour).
	InvalidArgument
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case FormatError:
		return "FormatError"
	case InvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Fault is a single problem found while processing a line.
type Fault struct {
	Kind Kind
	Line int // 1-based input line number
	Case int // 1-based case index at the time of the fault
	Err  error
}

// Error implements error.
func (f *Fault) Error() string {
	return fmt.Sprintf("%s at line %d (case %d): %v", f.Kind, f.Line, f.Case, f.Err)
}

// Unwrap exposes the wrapped sentinel or factory error.
func (f *Fault) Unwrap() error { return f.Err }

// kindOf classifies an error returned by a Factory. Anything that is not a
// parse or format error (grid.ErrInvalidArgument included) is a construction
// failure.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrParse):
		return ParseError
	case errors.Is(err, ErrFormat):
		return FormatError
	default:
		return InvalidArgument
	}
}
