package nurikabe

import (
	"context"
	"testing"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/solve"
)

func emptyGrid(h, w int) [][]string {
	data := make([][]string, h)
	for r := range data {
		data[r] = make([]string, w)
	}
	return data
}

func clueGrid(h, w int, clues map[board.Coord]int) [][]int {
	out := make([][]int, h)
	for r := range out {
		out[r] = make([]int, w)
	}
	for coord, n := range clues {
		out[coord.Row][coord.Col] = n
	}
	return out
}

// componentSizes returns the size of each 4-connected component of
// cells equal to want on solved.
func componentSizes(solved *board.Board, want string) []int {
	seen := make([][]bool, solved.Height)
	for r := range seen {
		seen[r] = make([]bool, solved.Width)
	}
	var sizes []int
	for _, cell := range solved.Cells() {
		if seen[cell.Row][cell.Col] || solved.At(cell.Row, cell.Col) != want {
			continue
		}
		size := 0
		stack := []board.Coord{cell}
		seen[cell.Row][cell.Col] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, adj := range solved.Adjacent(cur.Row, cur.Col) {
				if !seen[adj.Row][adj.Col] && solved.At(adj.Row, adj.Col) == want {
					seen[adj.Row][adj.Col] = true
					stack = append(stack, adj)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

func hasMonochrome2x2(solved *board.Board, state string) bool {
	for r := 0; r < solved.Height-1; r++ {
		for c := 0; c < solved.Width-1; c++ {
			if solved.At(r, c) == state && solved.At(r+1, c) == state &&
				solved.At(r, c+1) == state && solved.At(r+1, c+1) == state {
				return true
			}
		}
	}
	return false
}

// 4x4 Nurikabe, spec scenario 4: empty board, three clues.
func TestFourByFourNurikabe(t *testing.T) {
	clues := map[board.Coord]int{
		{Row: 0, Col: 3}: 2,
		{Row: 3, Col: 0}: 3,
		{Row: 3, Col: 2}: 2,
	}
	nb := board.NewNurikabeBoard(emptyGrid(4, 4), clueGrid(4, 4, clues), []string{EmptyState, FilledState})

	group, err := New(nb)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	solver, err := solve.New(nb.Board, group)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}

	n := 0
	var solved *board.Board
	for range solver.Solve(context.Background(), 1) {
		n++
		solved = solver.GenerateSolvedBoard()
	}
	if n == 0 {
		t.Fatal("expected at least one solution")
	}

	if hasMonochrome2x2(solved, FilledState) {
		t.Fatal("solved board has a monochrome 2x2 shaded square")
	}
	seaSizes := componentSizes(solved, FilledState)
	if len(seaSizes) != 1 {
		t.Fatalf("expected exactly one shaded component, got %d: %v", len(seaSizes), seaSizes)
	}
	wantSea := 16
	for _, n := range clues {
		wantSea -= n
	}
	if seaSizes[0] != wantSea {
		t.Fatalf("shaded component size = %d, want %d", seaSizes[0], wantSea)
	}
	for coord, size := range clues {
		found := false
		for _, s := range componentSizesContaining(solved, coord) {
			if s == size {
				found = true
			}
		}
		if !found {
			t.Fatalf("no component of size %d found containing clue at %v", size, coord)
		}
	}
}

func componentSizesContaining(solved *board.Board, coord board.Coord) []int {
	state := solved.At(coord.Row, coord.Col)
	if state == "" || state == FilledState {
		return nil
	}
	return componentSizes(solved, state)
}

// 7x7 Nurikabe with one pre-shaded cell, the source corpus's easy_1,
// spec scenario 5: at least one solution, and no second solution when
// enumerating with max_sols=2.
func TestSevenBySevenEasyOneUnique(t *testing.T) {
	data := emptyGrid(7, 7)
	data[2][5] = FilledState
	clues := map[board.Coord]int{
		{Row: 1, Col: 5}: 5,
		{Row: 2, Col: 0}: 1,
		{Row: 3, Col: 1}: 1,
		{Row: 3, Col: 5}: 3,
		{Row: 4, Col: 6}: 5,
		{Row: 5, Col: 1}: 1,
	}
	nb := board.NewNurikabeBoard(data, clueGrid(7, 7, clues), []string{EmptyState, FilledState})

	group, err := New(nb)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	solver, err := solve.New(nb.Board, group)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}

	n := 0
	for range solver.Solve(context.Background(), 2) {
		n++
	}
	if n != 1 {
		t.Fatalf("expected exactly one solution (max_sols=2 found %d)", n)
	}
}
