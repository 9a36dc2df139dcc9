package rules

import (
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// NoAdjacencyBetweenStates requires that no two orthogonally adjacent
// cells hold two different states out of states, grounded on
// NoAdjacenciesBetweenStates.
type NoAdjacencyBetweenStates struct {
	rule.Base
}

func NewNoAdjacencyBetweenStates(states []string) *NoAdjacencyBetweenStates {
	return &NoAdjacencyBetweenStates{Base: rule.NewBase(states, false)}
}

func (r *NoAdjacencyBetweenStates) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *NoAdjacencyBetweenStates) EmitClauses(c *rule.Compiler) error {
	statePairs := distinctPairs(r.States)
	for _, cell := range c.Board.Cells() {
		for _, adj := range c.Board.Adjacent(cell.Row, cell.Col) {
			for _, sp := range statePairs {
				v1, err := c.Var(cell.Row, cell.Col, sp[0])
				if err != nil {
					return err
				}
				v2, err := c.Var(adj.Row, adj.Col, sp[1])
				if err != nil {
					return err
				}
				c.AddClause(
					sat.Literal{Var: v1, Value: false},
					sat.Literal{Var: v2, Value: false},
				)
			}
		}
	}
	return nil
}

// NoTwoByTwoMonochromeSquare requires that no 2x2 square of cells all
// share the same state, for any state in states, grounded on
// NoTwoByTwoSquare.
type NoTwoByTwoMonochromeSquare struct {
	rule.Base
}

func NewNoTwoByTwoMonochromeSquare(states []string) *NoTwoByTwoMonochromeSquare {
	return &NoTwoByTwoMonochromeSquare{Base: rule.NewBase(states, false)}
}

func (r *NoTwoByTwoMonochromeSquare) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *NoTwoByTwoMonochromeSquare) EmitClauses(c *rule.Compiler) error {
	for row := 0; row < c.Height-1; row++ {
		for col := 0; col < c.Width-1; col++ {
			corners := [4][2]int{{row, col}, {row + 1, col}, {row, col + 1}, {row + 1, col + 1}}
			for _, state := range r.States {
				entries := make([]sat.Literal, 0, 4)
				for _, corner := range corners {
					v, err := c.Var(corner[0], corner[1], state)
					if err != nil {
						return err
					}
					entries = append(entries, sat.Literal{Var: v, Value: false})
				}
				c.AddClause(entries...)
			}
		}
	}
	return nil
}

// distinctPairs returns every unordered pair of distinct entries in
// items, grounded on Rule.construct_subsets(items, 2).
func distinctPairs(items []string) [][2]string {
	var out [][2]string
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			out = append(out, [2]string{items[i], items[j]})
		}
	}
	return out
}
