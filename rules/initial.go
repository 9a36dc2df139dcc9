// Package rules is the concrete constraint library: atomic Leaf rules
// grounded directly on the reference Sudoku/Nurikabe implementation's
// rule classes, expressed over the sat/rule substrate.
package rules

import (
	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// InitialLiterals forces a set of (coord, state, value) givens, the
// equivalent of InitialConditions / InitialAuxiliaryConditions: each
// entry becomes a unit clause asserting that cell's state variable to
// the given polarity.
type InitialLiterals struct {
	rule.Base
	Coords   []board.Coord
	Literals []bool
	State    string
}

// NewInitialLiterals requires len(coords) == len(literals).
func NewInitialLiterals(coords []board.Coord, literals []bool, state string) *InitialLiterals {
	return &InitialLiterals{
		Base:     rule.NewBase([]string{state}, false),
		Coords:   coords,
		Literals: literals,
		State:    state,
	}
}

func (r *InitialLiterals) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *InitialLiterals) EmitClauses(c *rule.Compiler) error {
	for i, coord := range r.Coords {
		v, err := c.Var(coord.Row, coord.Col, r.State)
		if err != nil {
			return err
		}
		c.AddClause(sat.Literal{Var: v, Value: r.Literals[i]})
	}
	return nil
}

// FromBoardGivens builds an InitialLiterals rule from every cell on b
// that already carries one of states as a given, the equivalent of
// scanning board.data for cells already in board.visible_states.
func FromBoardGivens(b *board.Board, states []string) []rule.Leaf {
	out := make([]rule.Leaf, 0, len(states))
	for _, state := range states {
		var coords []board.Coord
		for _, cell := range b.Cells() {
			if b.At(cell.Row, cell.Col) == state {
				coords = append(coords, cell)
			}
		}
		if len(coords) == 0 {
			continue
		}
		literals := make([]bool, len(coords))
		for i := range literals {
			literals[i] = true
		}
		out = append(out, NewInitialLiterals(coords, literals, state))
	}
	return out
}
