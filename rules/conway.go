package rules

const (
	// MinNeighbors and MaxNeighbors bound the live-neighbor count of any cell
	MinNeighbors = 0
	MaxNeighbors = 8
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

An alive cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
Every other combination is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
