package rules

import (
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// AuxiliaryImpliesMainAndViceVersa links a set of auxiliary states to
// one main state at every cell: any auxiliary state being true forces
// the main state true, and the main state being true forces at least
// one auxiliary state true, grounded on LinkAuxiliaryWithMainState.
type AuxiliaryImpliesMainAndViceVersa struct {
	rule.Base
	Main       string
	Auxiliary  []string
}

func NewAuxiliaryImpliesMainAndViceVersa(main string, auxiliary []string) *AuxiliaryImpliesMainAndViceVersa {
	states := append([]string{main}, auxiliary...)
	return &AuxiliaryImpliesMainAndViceVersa{
		Base:      rule.NewBase(states, false),
		Main:      main,
		Auxiliary: auxiliary,
	}
}

func (r *AuxiliaryImpliesMainAndViceVersa) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *AuxiliaryImpliesMainAndViceVersa) EmitClauses(c *rule.Compiler) error {
	for _, cell := range c.Board.Cells() {
		mainV, err := c.Var(cell.Row, cell.Col, r.Main)
		if err != nil {
			return err
		}
		altEntries := []sat.Literal{{Var: mainV, Value: false}}
		for _, aux := range r.Auxiliary {
			auxV, err := c.Var(cell.Row, cell.Col, aux)
			if err != nil {
				return err
			}
			c.AddClause(
				sat.Literal{Var: auxV, Value: false},
				sat.Literal{Var: mainV, Value: true},
			)
			altEntries = append(altEntries, sat.Literal{Var: auxV, Value: true})
		}
		c.AddClause(altEntries...)
	}
	return nil
}
