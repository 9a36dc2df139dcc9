package rules

import (
	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// AtLeastOneStatePerCell requires every cell on the board to take at
// least one of states, grounded on AtLeastOneOfStateInCell.
type AtLeastOneStatePerCell struct {
	rule.Base
}

func NewAtLeastOneStatePerCell(states []string) *AtLeastOneStatePerCell {
	return &AtLeastOneStatePerCell{Base: rule.NewBase(states, false)}
}

func (r *AtLeastOneStatePerCell) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *AtLeastOneStatePerCell) EmitClauses(c *rule.Compiler) error {
	for _, cell := range c.Board.Cells() {
		entries := make([]sat.Literal, 0, len(r.States))
		for _, state := range r.States {
			v, err := c.Var(cell.Row, cell.Col, state)
			if err != nil {
				return err
			}
			entries = append(entries, sat.Literal{Var: v, Value: true})
		}
		c.AddClause(entries...)
	}
	return nil
}

// AtLeastOneInRegion requires every state in states to appear at least
// once among region, grounded on Sudoku's AtLeastOneInRegion.
type AtLeastOneInRegion struct {
	rule.Base
	Region []board.Coord
}

func NewAtLeastOneInRegion(states []string, region []board.Coord) *AtLeastOneInRegion {
	return &AtLeastOneInRegion{Base: rule.NewBase(states, false), Region: region}
}

func (r *AtLeastOneInRegion) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *AtLeastOneInRegion) EmitClauses(c *rule.Compiler) error {
	for _, state := range r.States {
		entries := make([]sat.Literal, 0, len(r.Region))
		for _, coord := range r.Region {
			v, err := c.Var(coord.Row, coord.Col, state)
			if err != nil {
				return err
			}
			entries = append(entries, sat.Literal{Var: v, Value: true})
		}
		c.AddClause(entries...)
	}
	return nil
}

// AtMostOneInRegion requires no two cells in region to share the same
// state, for each state in states, grounded on Sudoku's
// AtMostOneInRegion (pairwise exclusion rather than a sequential
// at-most-k, since region sizes in these puzzles are small).
type AtMostOneInRegion struct {
	rule.Base
	Region []board.Coord
}

func NewAtMostOneInRegion(states []string, region []board.Coord) *AtMostOneInRegion {
	return &AtMostOneInRegion{Base: rule.NewBase(states, false), Region: region}
}

func (r *AtMostOneInRegion) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *AtMostOneInRegion) EmitClauses(c *rule.Compiler) error {
	for _, state := range r.States {
		vars := make([]sat.Var, len(r.Region))
		for i, coord := range r.Region {
			v, err := c.Var(coord.Row, coord.Col, state)
			if err != nil {
				return err
			}
			vars[i] = v
		}
		for i := 0; i < len(vars); i++ {
			for j := i + 1; j < len(vars); j++ {
				c.AddClause(
					sat.Literal{Var: vars[i], Value: false},
					sat.Literal{Var: vars[j], Value: false},
				)
			}
		}
	}
	return nil
}

// ExactlyOneInRegion composes AtMostOneInRegion and AtLeastOneInRegion,
// grounded on ExactlyOneInRegion; len(states) must equal len(region)
// when used for a Sudoku-style row/column/box rule.
func ExactlyOneInRegion(states []string, region []board.Coord) *rule.Group {
	return rule.NewGroup(
		NewAtMostOneInRegion(states, region),
		NewAtLeastOneInRegion(states, region),
	)
}
