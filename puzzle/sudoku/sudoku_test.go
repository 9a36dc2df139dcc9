package sudoku

import (
	"context"
	"testing"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/rules"
	"github.com/ricbauer/gridsat/solve"
)

func statesN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('1' + i))
	}
	return out
}

// 1x4 Sudoku row: two "4"s in the same row must be unsatisfiable under
// exactly-one-per-row alone, matching spec scenario 2.
func TestOneByFourRowUnsatisfiable(t *testing.T) {
	data := [][]string{{"4", "", "", "4"}}
	states := statesN(4)
	b := board.New(data, states)

	row := rules.ExactlyOneInRegion(states, b.Cells())
	givens := rules.FromBoardGivens(b, states)

	roots := []rule.Node{row}
	for _, g := range givens {
		roots = append(roots, g)
	}

	solver, err := solve.New(b, roots...)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}
	n := 0
	for range solver.Solve(context.Background(), 1) {
		n++
	}
	if n != 0 {
		t.Fatalf("expected unsatisfiable, got %d solutions", n)
	}
}

// easy_1 from the source corpus's sudoku_test.py: a standard 9x9 with a
// unique completion.
func easyOneBoard() [][]string {
	return [][]string{
		{"9", "1", "", "7", "", "", "", "", ""},
		{"", "3", "2", "6", "", "9", "", "8", ""},
		{"", "", "7", "", "8", "", "9", "", ""},
		{"", "8", "6", "", "3", "", "1", "7", ""},
		{"3", "", "", "", "", "", "", "", "6"},
		{"", "5", "1", "", "2", "", "8", "4", ""},
		{"", "", "9", "", "5", "", "3", "", ""},
		{"", "2", "", "3", "", "1", "4", "9", ""},
		{"", "", "", "", "", "2", "", "6", "1"},
	}
}

func TestNineByNineEasyUniqueCompletion(t *testing.T) {
	states := statesN(9)
	b := board.New(easyOneBoard(), states)
	group := New(b, states, 3, 3)

	solver, err := solve.New(b, group)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}

	var solutions []int
	for range solver.Solve(context.Background(), 2) {
		solutions = append(solutions, 1)
	}
	if len(solutions) != 1 {
		t.Fatalf("expected exactly one solution for easy_1, got %d", len(solutions))
	}

	solved := solver.GenerateSolvedBoard()
	for r := 0; r < 9; r++ {
		seen := map[string]bool{}
		for c := 0; c < 9; c++ {
			v := solved.At(r, c)
			if v == "" {
				t.Fatalf("row %d col %d left empty in solved board", r, c)
			}
			if seen[v] {
				t.Fatalf("row %d has duplicate digit %s", r, v)
			}
			seen[v] = true
		}
	}
}

func TestEmptyNineByNineHasASolution(t *testing.T) {
	states := statesN(9)
	b := board.Empty(9, 9)
	group := New(b, states, 3, 3)

	solver, err := solve.New(b, group)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}
	n := 0
	for range solver.Solve(context.Background(), 1) {
		n++
	}
	if n == 0 {
		t.Fatal("expected at least one solution for a no-givens board")
	}
}
