package terminal

import (
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// captionRows is the space under the board: a blank line and two info lines
const captionRows = 3

// IsTerminal reports whether fd is attached to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// FitSize returns the largest interior board that fits the terminal on fd
// together with its border and caption
func FitSize(fd int) (width, height int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, errors.Errorf("[FitSize] fd %d is not a terminal", fd)
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[FitSize] failed to read size of fd %d", fd)
	}
	width, height = FitDimensions(cols, rows)
	return width, height, nil
}

// FitDimensions converts a terminal size in cells to interior board
// dimensions, never below zero
func FitDimensions(cols, rows int) (width, height int) {
	return max(0, cols-2), max(0, rows-2-captionRows)
}
