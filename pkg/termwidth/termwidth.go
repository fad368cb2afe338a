// Package termwidth reports how many columns are available for help output.
package termwidth

import (
	"io"

	"github.com/charmbracelet/x/term"
)

// Fallback is the width used when the writer is not attached to a terminal.
const Fallback = 100

type fder interface {
	Fd() uintptr
}

// Of returns the column count of the terminal behind w, or [Fallback] when w is not a terminal or
// its size cannot be determined.
func Of(w io.Writer) int {
	f, ok := w.(fder)
	if !ok || !term.IsTerminal(f.Fd()) {
		return Fallback
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return Fallback
	}
	return width
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(f.Fd())
}
