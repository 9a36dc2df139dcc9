package sat

import (
	"fmt"

	"github.com/ricbauer/gridsat/core"
)

func errStateAlreadyExclusive(state int) error {
	return core.NewStructuralError("sat", "ExclusivityTable.Declare", fmt.Sprintf("state %d already belongs to an exclusivity group", state))
}

// ExclusivityTable records groups of state numbers that are mutually
// exclusive at any single cell: asserting one member true at a cell
// forces every other member of its group false at that same cell. A
// state number belongs to at most one group.
type ExclusivityTable struct {
	groups [][]int
	lookup map[int]int // state number -> index into groups
}

func NewExclusivityTable() *ExclusivityTable {
	return &ExclusivityTable{lookup: make(map[int]int)}
}

// Declare registers states as mutually exclusive. It returns a
// structural error, and registers nothing, if a state already belongs
// to another group, which signals a rule authoring bug rather than a
// normal runtime condition.
func (t *ExclusivityTable) Declare(states []int) error {
	idx := len(t.groups)
	for _, s := range states {
		if _, exists := t.lookup[s]; exists {
			return errStateAlreadyExclusive(s)
		}
	}
	for _, s := range states {
		t.lookup[s] = idx
	}
	t.groups = append(t.groups, states)
	return nil
}

// GroupOf returns the exclusivity group containing stateNum, or nil if
// stateNum belongs to no group.
func (t *ExclusivityTable) GroupOf(stateNum int) ([]int, bool) {
	idx, ok := t.lookup[stateNum]
	if !ok {
		return nil, false
	}
	return t.groups[idx], true
}

// Expand mirrors the source's find_exclusive_states: given a literal
// that is about to be forced, returns the full set of literals that
// must be forced alongside it once mutual exclusivity is accounted
// for. If lit.Value is false, or lit's state belongs to no exclusivity
// group, the result is just {lit} (filtered against alreadySubbed).
// alreadySubbed is the set of variables the caller has already
// committed to in this substitution step; any member already present
// there is dropped from the result since it needs no further action.
func (t *ExclusivityTable) Expand(lit Literal, width, numStates int, alreadySubbed map[Var]bool) []Literal {
	if !lit.Value {
		if _, already := alreadySubbed[lit.Var]; already {
			return nil
		}
		return []Literal{lit}
	}
	row, col, state := Decode(lit.Var, width, numStates)
	group, ok := t.GroupOf(state)
	if !ok {
		if _, already := alreadySubbed[lit.Var]; already {
			return nil
		}
		return []Literal{lit}
	}
	out := make([]Literal, 0, len(group))
	for _, sub := range group {
		newVar := Encode(row, col, sub, width, numStates)
		if _, already := alreadySubbed[newVar]; already {
			continue
		}
		value := lit.Value
		if newVar != lit.Var {
			value = !value
		}
		out = append(out, Literal{Var: newVar, Value: value})
	}
	return out
}
