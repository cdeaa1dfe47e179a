package reader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/distgrid/grid"
)

// Factory builds a case value from its declared shape and row-major values.
// The values slice is handed over; the Reader does not touch it afterwards.
type Factory[T any] func(rows, cols int, values []int) (T, error)

// state is the position in the line grammar.
type state int

const (
	awaitingCount state = iota // first line: total case count
	awaitingDims               // "R C" line of the next case
	readingRows                // data rows or the separator
	finished                   // last declared case emitted
)

// Reader is the line-driven state machine. It is not safe for concurrent use;
// feed it from one goroutine.
type Reader[T any] struct {
	factory Factory[T]
	onGrid  func(T)
	opts    Options

	state      state
	totalCases int
	rows, cols int
	caseIndex  int   // 1-based
	rowIndex   int   // 1-based
	values     []int // accumulated values of the current case
	line       int   // lines processed so far
}

// New returns a Reader that builds each completed case with factory and
// passes it to onGrid (nil means discard).
// Returns ErrNilFactory or ErrOptionViolation for invalid arguments.
func New[T any](factory Factory[T], onGrid func(T), opts ...Option) (*Reader[T], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if onGrid == nil {
		onGrid = func(T) {}
	}

	return &Reader[T]{
		factory:   factory,
		onGrid:    onGrid,
		opts:      o,
		state:     awaitingCount,
		caseIndex: 1,
		rowIndex:  1,
	}, nil
}

// NewInt returns a Reader producing plain numeric grids.
func NewInt(onGrid func(*grid.Grid[int]), opts ...Option) (*Reader[*grid.Grid[int]], error) {
	return New(grid.IntFactory, onGrid, opts...)
}

// Done reports whether the last declared case has been emitted. Once true,
// ProcessLine ignores its input.
func (r *Reader[T]) Done() bool { return r.state == finished }

// ProcessLine advances the machine by one line. Faults go to OnFault; the
// method itself never fails.
func (r *Reader[T]) ProcessLine(line string) {
	if r.state == finished {
		return
	}
	r.line++

	tokens, err := ParseLine(line, r.opts.Strict)
	if err != nil {
		r.fault(ParseError, err)
		return
	}

	switch r.state {
	case awaitingCount:
		if len(tokens) != 1 {
			r.formatf("first line should have exactly one value, got %d", len(tokens))
			return
		}
		r.totalCases = tokens[0]
		r.state = awaitingDims

	case awaitingDims:
		if len(tokens) != 2 {
			r.formatf("test case should be initialised with two values, got %d", len(tokens))
			return
		}
		r.rows, r.cols = tokens[0], tokens[1]
		r.values = nil
		r.rowIndex = 1
		r.state = readingRows

	case readingRows:
		r.readRow(tokens)
	}
}

// readRow handles the separator and data rows of the current case.
func (r *Reader[T]) readRow(tokens []int) {
	if len(tokens) == 0 {
		if r.rowIndex-1 != r.rows {
			r.formatf("misplaced empty line")
			return
		}
		r.state = awaitingDims
		return
	}
	if r.caseIndex > r.totalCases {
		r.formatf("input exceeding %d test cases", r.totalCases)
		return
	}
	if r.rowIndex > r.rows {
		r.formatf("invalid test case: expecting %d rows", r.rows)
		return
	}
	if len(tokens) != r.cols {
		r.formatf("invalid test case: expecting %d values per row, got %d", r.cols, len(tokens))
		return
	}

	r.values = append(r.values, tokens...)
	if r.rowIndex == r.rows {
		if !r.emit() {
			// Degraded recovery: same dimensions, next line is row 1 again.
			r.values = nil
			r.rowIndex = 0
		} else if r.caseIndex == r.totalCases {
			r.state = finished
			return
		} else {
			r.caseIndex++
		}
	}
	r.rowIndex++
}

// emit builds the current case and hands it to onGrid. It reports false
// after delivering the factory error as a fault.
func (r *Reader[T]) emit() bool {
	v, err := r.factory(r.rows, r.cols, r.values)
	if err != nil {
		r.fault(kindOf(err), err)
		return false
	}
	r.values = nil
	r.onGrid(v)
	return true
}

// formatf reports a FormatError.
func (r *Reader[T]) formatf(format string, args ...any) {
	r.fault(FormatError, fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...)))
}

// fault delivers a Fault for the current line.
func (r *Reader[T]) fault(kind Kind, err error) {
	r.opts.OnFault(&Fault{Kind: kind, Line: r.line, Case: r.caseIndex, Err: err})
}

// Run frames in into lines and feeds them to ProcessLine until the reader is
// Done, the input ends, or Ctx is cancelled. Grammar faults go to OnFault;
// only scanner and context errors are returned.
//
// Cancellation is observed even while a read is blocked (an idle terminal or
// pipe). In that case Run returns Ctx.Err() at once and the scanning
// goroutine exits when the pending read returns. Lines are scanned one at a
// time on demand, so nothing after the last case is consumed.
func (r *Reader[T]) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(r.opts.MaxLineBytes, bufio.MaxScanTokenSize)), r.opts.MaxLineBytes)

	lines := make(chan string)
	next := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		defer close(lines)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-quit:
				return
			}
			select {
			case <-next:
			case <-quit:
				return
			}
		}
	}()

	ctx := r.opts.Ctx
	for !r.Done() {
		// cancellation check (once per line, ahead of the blocking receive)
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// lines is closed only after Scan returned false, so sc is idle.
				if err := sc.Err(); err != nil {
					return fmt.Errorf("reader: line %d: %w", r.line+1, err)
				}
				return nil
			}
			r.ProcessLine(line)
			if !r.Done() {
				next <- struct{}{}
			}
		}
	}

	return nil
}
