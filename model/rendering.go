package model

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	clearScreen   = "\x1b[2J"
	cursorHome    = "\x1b[H"
	resetTerminal = "\x1bc"
)

// Frame is one rendered generation ready to be shown
type Frame struct {
	Number uint64
	Board  string   // output of Board.Render
	Info   []string // caption lines shown under the board
}

// Caption joins the info lines
func (f Frame) Caption() string {
	return strings.Join(f.Info, "\n")
}

// Renderer presents frames on some output
type Renderer interface {
	Present(f Frame) error
}

// TerminalRenderer writes frames as raw ANSI text. Each frame is a single
// write so the terminal never shows a half-drawn board.
type TerminalRenderer struct {
	out     io.Writer
	buf     bytes.Buffer
	started bool
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Present clears the screen, homes the cursor and writes the frame. The
// first frame is preceded by a full terminal reset.
func (r *TerminalRenderer) Present(f Frame) error {
	r.buf.Reset()
	if !r.started {
		r.buf.WriteString(resetTerminal)
	}
	r.buf.WriteString(clearScreen)
	r.buf.WriteString(cursorHome)
	r.buf.WriteString(f.Board)
	r.buf.WriteString("\n\n")
	// the caption ends without a newline; a frame spans Rows()+3 lines
	r.buf.WriteString(f.Caption())

	if _, err := r.out.Write(r.buf.Bytes()); err != nil {
		return errors.Wrapf(err, "[Present] failed to write frame %d", f.Number)
	}
	r.started = true
	return nil
}
