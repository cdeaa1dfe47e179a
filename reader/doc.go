// Package reader turns a line-oriented text stream into validated grids,
// one per completed test case.
//
// Input grammar (one statement per line):
//
//	T                      total case count, 1 integer
//	R C                    rows and cols of case 1
//	<C integers> × R       R data rows of exactly C integers
//	<blank line>           required iff more cases follow
//	R C                    next case's dimensions
//	...
//
// A Reader is a single-owner state machine. ProcessLine advances it by exactly
// one line; Run frames an io.Reader into lines and feeds ProcessLine until the
// declared last case has been emitted, after which no further input is read.
//
// Completed cases are turned into values through an injected Factory
// (grid.IntFactory by default, grid.BitmapFactory for the distance tool) and
// handed to the onGrid callback in input order.
//
// Faults never escape ProcessLine as return values. Each one is delivered to
// the OnFault hook as a *Fault carrying its Kind:
//
//   - ParseError: a whitespace-delimited token contains no digit (or, in
//     strict mode, is not a plain unsigned integer).
//   - FormatError: wrong arity on the count or dimension line, too many
//     cases or rows, a row of the wrong width, or a misplaced blank line.
//   - InvalidArgument: the factory rejected the completed case.
//
// Counters are not reset after a ParseError or FormatError, so one bad line
// can produce further faults on the lines that follow. After a factory
// failure the value buffer is cleared and the next line is read as row 1 of
// the same declared dimensions.
package reader
