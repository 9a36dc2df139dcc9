package rules

import (
	"fmt"

	"github.com/ricbauer/gridsat/core"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// AtMostKInBoard requires that at most k cells on the board hold
// target. It uses the sequential at-most-k encoding from Frisch &
// Giannoros (section 3.3): k auxiliary "register" states per cell,
// tracking a running count that may never exceed k, grounded on
// AtMostNInBoard.add_formulas_sequential.
type AtMostKInBoard struct {
	rule.Base
	Target    string
	K         int
	registers []string
}

func NewAtMostKInBoard(target string, k int) *AtMostKInBoard {
	registers := make([]string, k)
	for n := range registers {
		registers[n] = registerName(target, n)
	}
	states := append([]string{target}, registers...)
	return &AtMostKInBoard{
		Base:      rule.NewBase(states, false),
		Target:    target,
		K:         k,
		registers: registers,
	}
}

func registerName(target string, n int) string {
	return fmt.Sprintf("%sk%d", target, n)
}

func (r *AtMostKInBoard) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

func (r *AtMostKInBoard) EmitClauses(c *rule.Compiler) error {
	cells := c.Board.Cells()
	if r.K < 0 || r.K >= len(cells) {
		return core.NewStructuralError("rules", "AtMostKInBoard.EmitClauses", fmt.Sprintf("k=%d out of range for a board of %d cells", r.K, len(cells)))
	}
	if r.K == 0 {
		for _, cell := range cells {
			target, err := c.Var(cell.Row, cell.Col, r.Target)
			if err != nil {
				return err
			}
			c.AddClause(sat.Literal{Var: target, Value: false})
		}
		return nil
	}
	first := cells[0]
	firstReg := r.registers[0]
	lastReg := r.registers[len(r.registers)-1]

	// the first register must be set whenever the cell is set
	for _, cell := range cells {
		target, err := c.Var(cell.Row, cell.Col, r.Target)
		if err != nil {
			return err
		}
		firstV, err := c.Var(cell.Row, cell.Col, firstReg)
		if err != nil {
			return err
		}
		c.AddClause(
			sat.Literal{Var: target, Value: false},
			sat.Literal{Var: firstV, Value: true},
		)
	}

	// only the first cell's first register may start pre-set
	for j := 1; j < r.K; j++ {
		v, err := c.Var(first.Row, first.Col, r.registers[j])
		if err != nil {
			return err
		}
		c.AddClause(sat.Literal{Var: v, Value: false})
	}

	// every later cell's registers carry forward the previous cell's.
	// The source implementation stops this loop at len(cells)-1,
	// omitting the monotone carry/increment for the very last cell;
	// that is a known off-by-one, and this encoding deliberately
	// includes the last cell so the counter covers every cell.
	for i := 1; i < len(cells); i++ {
		cur, prev := cells[i], cells[i-1]
		for regNum, reg := range r.registers {
			prevV, err := c.Var(prev.Row, prev.Col, reg)
			if err != nil {
				return err
			}
			curV, err := c.Var(cur.Row, cur.Col, reg)
			if err != nil {
				return err
			}
			c.AddClause(
				sat.Literal{Var: prevV, Value: false},
				sat.Literal{Var: curV, Value: true},
			)
			if regNum > 0 {
				curTarget, err := c.Var(cur.Row, cur.Col, r.Target)
				if err != nil {
					return err
				}
				prevLower, err := c.Var(prev.Row, prev.Col, r.registers[regNum-1])
				if err != nil {
					return err
				}
				c.AddClause(
					sat.Literal{Var: curTarget, Value: false},
					sat.Literal{Var: prevLower, Value: false},
					sat.Literal{Var: curV, Value: true},
				)
			}
		}
	}

	// no register may overflow past k
	for i := 1; i < len(cells); i++ {
		cur, prev := cells[i], cells[i-1]
		curTarget, err := c.Var(cur.Row, cur.Col, r.Target)
		if err != nil {
			return err
		}
		prevLast, err := c.Var(prev.Row, prev.Col, lastReg)
		if err != nil {
			return err
		}
		c.AddClause(
			sat.Literal{Var: curTarget, Value: false},
			sat.Literal{Var: prevLast, Value: false},
		)
	}
	return nil
}

// RegisterStates returns the auxiliary register state names this rule
// introduced, in ascending order, for callers that need to seed or
// inspect them directly.
func (r *AtMostKInBoard) RegisterStates() []string {
	return r.registers
}
