// Package rule defines the Rule/Leaf abstraction that concrete
// constraint libraries implement, and the Compiler they build CNF
// against during a puzzle's four-phase initialization: link rules to
// the compiler, declare every state each rule needs, then emit each
// rule's clauses, finally declaring any exclusivity groups.
package rule

import (
	"fmt"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/core"
	"github.com/ricbauer/gridsat/sat"
)

// Compiler accumulates the registry, formula, and var index that a set
// of rules build up together before a Solver ever begins searching.
type Compiler struct {
	Board       *board.Board
	Height      int
	Width       int
	Registry    *sat.StateRegistry
	Formula     *sat.Formula
	Index       *sat.VarIndex
	Exclusivity *sat.ExclusivityTable

	// NumStates is frozen after the state-declaration phase finishes;
	// clause emission depends on it for the Var bijection, so emitting
	// a clause before every rule has declared its states would corrupt
	// the encoding.
	NumStates int
}

// NewCompiler creates a Compiler over an empty formula for b.
func NewCompiler(b *board.Board) *Compiler {
	return &Compiler{
		Board:       b,
		Height:      b.Height,
		Width:       b.Width,
		Registry:    sat.NewStateRegistry(),
		Formula:     sat.NewFormula(),
		Index:       sat.NewVarIndex(),
		Exclusivity: sat.NewExclusivityTable(),
	}
}

// DeclareStates registers each of names with the compiler's state
// registry, a no-op for names already registered.
func (c *Compiler) DeclareStates(names []string) {
	for _, n := range names {
		c.Registry.Declare(n)
	}
}

// FreezeStates locks in the state count once every rule has declared
// its states; it must run exactly once, after every DeclareStates call
// and before the first EmitClauses call.
func (c *Compiler) FreezeStates() {
	c.NumStates = c.Registry.Count()
}

// Var returns the sat.Var for (row, col) being in state, erroring if
// the cell is out of bounds or state was never declared.
func (c *Compiler) Var(row, col int, state string) (sat.Var, error) {
	if !c.Board.InBounds(row, col) {
		return 0, core.NewStructuralError("rule", "Compiler.Var", fmt.Sprintf("cell (%d,%d) out of bounds", row, col))
	}
	n, ok := c.Registry.Lookup(state)
	if !ok {
		return 0, core.NewStructuralError("rule", "Compiler.Var", fmt.Sprintf("state %q was never declared", state))
	}
	return sat.Encode(row, col, n, c.Width, c.NumStates), nil
}

// AddClause emits a clause asserting at least one of entries holds,
// recording it in both the formula and the reverse variable index.
func (c *Compiler) AddClause(entries ...sat.Literal) sat.ClauseID {
	clause := make(sat.Clause, len(entries))
	for _, e := range entries {
		clause[e.Var] = e.Value
	}
	id := c.Formula.Add(clause)
	for v, val := range clause {
		c.Index.Record(v, val, id)
	}
	return id
}

// DeclareExclusive registers states as a mutually exclusive group: at
// any cell, asserting one true forces the rest false.
func (c *Compiler) DeclareExclusive(states []string) error {
	nums := make([]int, len(states))
	for i, s := range states {
		n, ok := c.Registry.Lookup(s)
		if !ok {
			return core.NewStructuralError("rule", "Compiler.DeclareExclusive", fmt.Sprintf("state %q was never declared", s))
		}
		nums[i] = n
	}
	return c.Exclusivity.Declare(nums)
}
