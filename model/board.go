package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sheikhrachel/go-gol-term/rules"
)

const (
	// pad is the width of the border ring on every edge
	pad = 1

	// DefaultLiveThreshold gives roughly 1 in 8 interior cells alive after Randomize
	DefaultLiveThreshold uint8 = 255 / 8

	// pcgStream decorrelates the second PCG word from the seed
	pcgStream uint64 = 0x9e3779b97f4a7c15
)

// Board is the game grid surrounded by a ring of Border cells. Interior
// cells always have eight real neighbors, so neighbor lookups never need
// bounds checks.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates a board with the given interior dimensions. A zero
// dimension yields a board with no interior that never changes.
func NewBoard(width, height int) *Board {
	width, height = max(0, width), max(0, height)

	rows := height + 2*pad
	cols := width + 2*pad

	cells := make([][]Cell, rows)
	for r := range cells {
		row := make([]Cell, cols)
		for c := range row {
			if r < pad || r >= rows-pad || c < pad || c >= cols-pad {
				row[c] = newCell(Border)
			} else {
				row[c] = newCell(Dead)
			}
		}
		cells[r] = row
	}

	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the interior width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the interior height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// Rows returns the number of grid rows including the border
func (b *Board) Rows() int {
	return len(b.cells)
}

// Cols returns the number of grid columns including the border
func (b *Board) Cols() int {
	return b.width + 2*pad
}

// Cell returns the cell at a grid position, border included
func (b *Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

// Set sets an interior cell to alive (true) or dead (false). Coordinates are
// zero-based interior positions; anything outside the interior is ignored.
func (b *Board) Set(x, y int, alive bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	state := Dead
	if alive {
		state = Alive
	}
	b.cells[y+pad][x+pad].setState(state)
}

// Get returns whether the interior cell at x, y is alive
func (b *Board) Get(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.cells[y+pad][x+pad].IsAlive()
}

// LiveNeighbors counts the alive cells among the eight neighbors of a grid
// position. Border and off-grid positions have no neighbors and report 0.
func (b *Board) LiveNeighbors(row, col int) int {
	if row < pad || row >= len(b.cells)-pad || col < pad || col >= b.Cols()-pad {
		return 0
	}
	return b.liveNeighbors(row, col)
}

// liveNeighbors indexes without bounds checks; row and col must be interior
func (b *Board) liveNeighbors(row, col int) int {
	above, here, below := b.cells[row-1], b.cells[row], b.cells[row+1]

	count := 0
	for _, c := range [...]*Cell{
		&above[col-1], &above[col], &above[col+1],
		&here[col-1], &here[col+1],
		&below[col-1], &below[col], &below[col+1],
	} {
		if c.state == Alive {
			count++
		}
	}
	return count
}

// DecideNext records every interior cell's next state in its pending flag,
// reading only the current generation.
func (b *Board) DecideNext() {
	for r := pad; r < len(b.cells)-pad; r++ {
		row := b.cells[r]
		for c := pad; c < len(row)-pad; c++ {
			row[c].pending = rules.ApplyConwayRules(b.liveNeighbors(r, c), row[c].state == Alive)
		}
	}
}

// CommitNext applies the pending flags set by DecideNext and clears them
func (b *Board) CommitNext() {
	for r := pad; r < len(b.cells)-pad; r++ {
		row := b.cells[r]
		for c := pad; c < len(row)-pad; c++ {
			cell := &row[c]
			if cell.pending {
				cell.setState(Alive)
			} else {
				cell.setState(Dead)
			}
			cell.pending = false
		}
	}
}

// Step advances the board by one generation
func (b *Board) Step() {
	b.DecideNext()
	b.CommitNext()
}

// Randomize fills the interior from seed using DefaultLiveThreshold
func (b *Board) Randomize(seed uint64) {
	b.RandomizeWithThreshold(seed, DefaultLiveThreshold)
}

// RandomizeWithThreshold draws one byte per interior cell, in row order,
// from a PRNG seeded with seed. A cell is alive when its byte is below
// threshold. The same seed, threshold and dimensions always produce the
// same board.
func (b *Board) RandomizeWithThreshold(seed uint64, threshold uint8) {
	rng := rand.New(rand.NewPCG(seed, seed^pcgStream))

	for r := pad; r < len(b.cells)-pad; r++ {
		row := b.cells[r]
		for c := pad; c < len(row)-pad; c++ {
			if uint8(rng.Uint32()>>24) < threshold {
				row[c].setState(Alive)
			} else {
				row[c].setState(Dead)
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for r := pad; r < len(b.cells)-pad; r++ {
		for _, cell := range b.cells[r] {
			if cell.state == Alive {
				count++
			}
		}
	}
	return
}

// GetBoardHash returns an MD5 hash of the current cell states
func (b *Board) GetBoardHash() string {
	h := md5.New()
	buf := make([]byte, 0, b.Cols())
	for _, row := range b.cells {
		buf = buf[:0]
		for _, cell := range row {
			buf = append(buf, byte(cell.state))
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Render returns the board as text: one line per grid row, border
// included, one glyph per cell, lines joined by '\n'.
func (b *Board) Render() string {
	var sb strings.Builder
	// glyphs are at most 3 bytes in UTF-8
	sb.Grow(len(b.cells) * (b.Cols()*3 + 1))

	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.glyph)
		}
	}
	return sb.String()
}

// String implements fmt.Stringer
func (b *Board) String() string {
	return b.Render()
}
