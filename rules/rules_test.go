package rules

import (
	"context"
	"testing"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/solve"
)

// onOffExclusive builds an AtLeastOneStatePerCell over {on, off}
// wrapped so the two states are also declared mutually exclusive,
// giving every cell exactly one of the two in any solution.
func onOffExclusive() *rule.Group {
	g := rule.NewGroup(NewAtLeastOneStatePerCell([]string{"on", "off"}))
	g.States = []string{"on", "off"}
	g.AddExclusive = true
	return g
}

func countState(solved *board.Board, state string) int {
	n := 0
	for _, cell := range solved.Cells() {
		if solved.At(cell.Row, cell.Col) == state {
			n++
		}
	}
	return n
}

// AtMostKInBoard(target, k): across every solution, at most k cells
// hold target. Uses a 2x2 board with {on, off} exactly one per cell so
// every assignment is fully determined by which cells are "on".
func TestAtMostKInBoardRespectsBound(t *testing.T) {
	b := board.Empty(2, 2)
	b.VisibleStates = []string{"on", "off"}
	const k = 2
	onOff := onOffExclusive()
	noAdj := NewAtMostKInBoard("on", k)

	solver, err := solve.New(b, onOff, noAdj)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}

	n := 0
	for range solver.Solve(context.Background(), 50) {
		n++
		solved := solver.GenerateSolvedBoard()
		if got := countState(solved, "on"); got > k {
			t.Fatalf("solution has %d 'on' cells, want <= %d", got, k)
		}
	}
	if n == 0 {
		t.Fatal("expected at least one solution")
	}
}

// Boundary case from spec section 8: k = cellCount-1 still emits a
// correct sequential-counter encoding and permits any configuration up
// to that bound (here: everything except "all four on").
func TestAtMostKInBoardCellCountMinusOne(t *testing.T) {
	b := board.Empty(2, 2)
	b.VisibleStates = []string{"on", "off"}
	const k = 3 // cellCount(4) - 1
	onOff := onOffExclusive()
	bound := NewAtMostKInBoard("on", k)

	solver, err := solve.New(b, onOff, bound)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}

	sawThree := false
	n := 0
	for range solver.Solve(context.Background(), 50) {
		n++
		solved := solver.GenerateSolvedBoard()
		got := countState(solved, "on")
		if got > k {
			t.Fatalf("solution has %d 'on' cells, want <= %d", got, k)
		}
		if got == k {
			sawThree = true
		}
	}
	if n == 0 {
		t.Fatal("expected at least one solution")
	}
	if !sawThree {
		t.Fatal("expected at least one solution with exactly k cells on")
	}
}

// ConnectedRegion: a 3x3 board where "on" must form one connected
// region of at most 3 cells seeded at the center; every solution's
// "on" cells must include the seed and be 4-connected.
func TestConnectedRegionIsConnected(t *testing.T) {
	b := board.Empty(3, 3)
	b.VisibleStates = []string{"on", "off"}
	seed := board.Coord{Row: 1, Col: 1}
	region := ConnectedRegionOfSizeAtMost("on", 3, &seed)
	onOff := onOffExclusive()

	var roots []rule.Node
	roots = append(roots, region, onOff)

	solver, err := solve.New(b, roots...)
	if err != nil {
		t.Fatalf("solve.New: %v", err)
	}

	n := 0
	for range solver.Solve(context.Background(), 5) {
		n++
		solved := solver.GenerateSolvedBoard()
		if solved.At(1, 1) != "on" {
			t.Fatal("seed cell must be 'on'")
		}
		sizes := componentSizesOn(solved)
		if len(sizes) != 1 {
			t.Fatalf("expected a single connected 'on' region, got %d components: %v", len(sizes), sizes)
		}
		if sizes[0] > 3 {
			t.Fatalf("region size %d exceeds cap of 3", sizes[0])
		}
	}
	if n == 0 {
		t.Fatal("expected at least one solution")
	}
}

func componentSizesOn(solved *board.Board) []int {
	seen := make([][]bool, solved.Height)
	for r := range seen {
		seen[r] = make([]bool, solved.Width)
	}
	var sizes []int
	for _, cell := range solved.Cells() {
		if seen[cell.Row][cell.Col] || solved.At(cell.Row, cell.Col) != "on" {
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
				if !seen[adj.Row][adj.Col] && solved.At(adj.Row, adj.Col) == "on" {
					seen[adj.Row][adj.Col] = true
					stack = append(stack, adj)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

// NoAdjacencyBetweenStates: two distinct states may never sit on
// adjacent cells.
func TestNoAdjacencyBetweenStatesForbidsTouching(t *testing.T) {
	data := [][]string{{"a", "b"}}
	b := board.New(data, []string{"a", "b"})
	noAdj := NewNoAdjacencyBetweenStates([]string{"a", "b"})
	givens := FromBoardGivens(b, []string{"a", "b"})

	var roots []rule.Node
	roots = append(roots, noAdj)
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
		t.Fatalf("expected unsatisfiable (adjacent a,b forbidden), got %d solutions", n)
	}
}
