// Package terminal draws frames through a full-screen tcell UI and sizes
// boards to the terminal they run in.
package terminal

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/model"
)

var (
	styleDefault = tcell.StyleDefault
	styleAlive   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCaption = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// NewScreen creates and initializes a tcell screen. Callers must Fini it to
// restore the terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreen] failed to initialize screen")
	}
	screen.HideCursor()
	return screen, nil
}

// ScreenRenderer presents frames on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer returns a renderer drawing on screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Present redraws the whole screen with the frame. Cells beyond the screen
// edge are clipped by tcell.
func (r *ScreenRenderer) Present(f model.Frame) error {
	r.screen.Clear()

	lines := strings.Split(f.Board, "\n")
	for y, line := range lines {
		x := 0
		for _, ch := range line {
			r.screen.SetContent(x, y, ch, nil, glyphStyle(ch))
			x++
		}
	}

	y := len(lines) + 1
	for _, line := range f.Info {
		x := 0
		for _, ch := range line {
			r.screen.SetContent(x, y, ch, nil, styleCaption)
			x++
		}
		y++
	}

	r.screen.Show()
	return nil
}

func glyphStyle(ch rune) tcell.Style {
	switch ch {
	case model.Alive.Glyph():
		return styleAlive
	case model.Border.Glyph():
		return styleBorder
	default:
		return styleDefault
	}
}

// isQuitKey matches Esc, Ctrl+C and q. Ctrl+C arrives either as KeyCtrlC
// or as a rune with ModCtrl depending on the terminal.
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return ev.Rune() == 'c' || ev.Rune() == 'C'
		}
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// WatchQuit blocks until a quit key is pressed, the screen is finalized, or
// ctx is cancelled. It returns nil in every case; the caller cancels the
// rest of the run when it returns.
func WatchQuit(ctx context.Context, screen tcell.Screen) error {
	go func() {
		<-ctx.Done()
		// wake PollEvent so the loop below can observe the cancellation
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
