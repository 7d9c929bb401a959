package model

const (
	glyphAlive  = '█'
	glyphBorder = '▒'
	glyphDead   = ' '
)

// CellState is the lifecycle state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
	Border
)

func (s CellState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Border:
		return "border"
	default:
		return "dead"
	}
}

// Glyph returns the display rune for the state
func (s CellState) Glyph() rune {
	switch s {
	case Alive:
		return glyphAlive
	case Border:
		return glyphBorder
	default:
		return glyphDead
	}
}

// Cell is one position on the board. pending holds the next generation's
// verdict between DecideNext and CommitNext and is false otherwise.
type Cell struct {
	state   CellState
	pending bool
	glyph   rune
}

func newCell(state CellState) Cell {
	return Cell{state: state, glyph: state.Glyph()}
}

// State returns the current state of the cell
func (c Cell) State() CellState {
	return c.state
}

// Glyph returns the cached display rune
func (c Cell) Glyph() rune {
	return c.glyph
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.state == Alive
}

// setState changes a playable cell. Border cells are never reassigned.
func (c *Cell) setState(state CellState) {
	if c.state == Border || state == Border {
		return
	}
	c.state = state
	c.glyph = state.Glyph()
}
