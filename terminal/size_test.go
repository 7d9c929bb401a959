package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-gol-term/model"
)

// TestFittedBoardFrameFitsTerminal writes a frame for a board sized by
// FitDimensions and checks that the cursor never moves past the last row
func TestFittedBoardFrameFitsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"Standard", 80, 24},
		{"Large", 200, 60},
		{"Minimal", 10, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := FitDimensions(tt.cols, tt.rows)
			board := model.NewBoard(width, height)
			board.Randomize(1)

			var out bytes.Buffer
			renderer := model.NewTerminalRenderer(&out)
			frame := model.Frame{
				Number: 1,
				Board:  board.Render(),
				Info:   []string{"Frame: 1", "Seed: 1 | Living: 0 | Status: Active"},
			}
			if err := renderer.Present(frame); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			written := out.String()
			home := strings.LastIndex(written, "\x1b[H")
			if home < 0 {
				t.Fatal("Expected cursor home sequence in frame")
			}
			if n := strings.Count(written[home:], "\n"); n > tt.rows-1 {
				t.Errorf("Expected at most %d newlines on a %dx%d terminal, got %d", tt.rows-1, tt.cols, tt.rows, n)
			}
		})
	}
}
