package board

// NurikabeBoard adds numbered clues to a Board: each clue gives the
// size of the (connected, unshaded) island rooted at that cell.
// Grounded on boards.py's NurikabeBoard.
type NurikabeBoard struct {
	*Board
	Clues map[Coord]int
}

// NewNurikabeBoard builds a NurikabeBoard from a givens grid (shaded /
// unshaded cells already known) and a clues grid (0 meaning "no clue
// here").
func NewNurikabeBoard(data [][]string, clueGrid [][]int, visibleStates []string) *NurikabeBoard {
	clues := make(map[Coord]int)
	for r, row := range clueGrid {
		for c, n := range row {
			if n > 0 {
				clues[Coord{Row: r, Col: c}] = n
			}
		}
	}
	return &NurikabeBoard{
		Board: New(data, visibleStates),
		Clues: clues,
	}
}

// FindShadedSeed returns the first cell already marked filledState, if
// any, used to preseed the shaded region's connectivity rule.
func (nb *NurikabeBoard) FindShadedSeed(filledState string) *Coord {
	for _, cell := range nb.Cells() {
		if nb.At(cell.Row, cell.Col) == filledState {
			c := cell
			return &c
		}
	}
	return nil
}
