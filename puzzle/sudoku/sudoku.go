// Package sudoku wires the generic rule library into the classic
// Sudoku ruleset: every row, column, and box must hold each digit
// exactly once, plus the puzzle's givens. Grounded on sudoku.py.
package sudoku

import (
	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/rules"
)

// Regions partitions an h x w board into regHeight x regWidth
// rectangles in row-major order, grounded on
// ExactlyOneInRepeatingRect.gen_regions.
func Regions(h, w, regHeight, regWidth int) [][]board.Coord {
	vert := h / regHeight
	hori := w / regWidth
	out := make([][]board.Coord, vert*hori)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := (r/regHeight)*hori + c/regWidth
			out[idx] = append(out[idx], board.Coord{Row: r, Col: c})
		}
	}
	return out
}

// ExactlyOneInRepeatingRect requires each region of an h x w board
// tiled into regHeight x regWidth rectangles to hold every state in
// states exactly once.
func ExactlyOneInRepeatingRect(states []string, h, w, regHeight, regWidth int) *rule.Group {
	regions := Regions(h, w, regHeight, regWidth)
	nodes := make([]rule.Node, len(regions))
	for i, region := range regions {
		nodes[i] = rules.ExactlyOneInRegion(states, region)
	}
	return rule.NewGroup(nodes...)
}

// New builds the Sudoku ruleset for b: every row and column holds each
// of states exactly once, every regHeight x regWidth box holds each of
// states exactly once, and every given on b is forced to its value.
// states are declared mutually exclusive at each cell (a cell is
// exactly one digit), grounded on the Sudoku SuperRule.
func New(b *board.Board, states []string, regHeight, regWidth int) *rule.Group {
	row := ExactlyOneInRepeatingRect(states, b.Height, b.Width, 1, b.Width)
	col := ExactlyOneInRepeatingRect(states, b.Height, b.Width, b.Height, 1)
	box := ExactlyOneInRepeatingRect(states, b.Height, b.Width, regHeight, regWidth)

	group := rule.NewGroup(row, col, box)
	for _, leaf := range rules.FromBoardGivens(b, states) {
		group.Nodes = append(group.Nodes, leaf)
	}
	group.States = states
	group.AddExclusive = true
	return group
}
