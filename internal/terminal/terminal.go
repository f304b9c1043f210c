// Package terminal queries the size of the controlling terminal.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// DefaultWidth is used when neither the terminal nor the environment
// reports a width.
const DefaultWidth = 80

// getSize is replaced in tests.
var getSize = term.GetSize

// Width returns the column count of the terminal on fd. It tries the
// terminal first, then $COLUMNS, then DefaultWidth.
func Width(fd int) int {
	if w, _, err := getSize(fd); err == nil && w > 0 {
		return w
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// StdoutWidth is Width for standard output.
func StdoutWidth() int {
	return Width(int(os.Stdout.Fd()))
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
