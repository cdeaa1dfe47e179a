// Package monitoring holds the process-wide diagnostic logger and the ANSI
// styling used for terminal output.
package monitoring

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

const (
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Styler wraps text in ANSI escapes when Color is set.
type Styler struct {
	Color bool
}

// Bold returns s in bold.
func (st Styler) Bold(s string) string { return st.wrap(ansiBold, s) }

// Red returns s in red.
func (st Styler) Red(s string) string { return st.wrap(ansiRed, s) }

func (st Styler) wrap(code, s string) string {
	if !st.Color {
		return s
	}
	return code + s + ansiReset
}

// IsTerminal reports whether w is an *os.File attached to a terminal
// (a Cygwin/MSYS pty counts).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
