package sat

// polarityIndex tracks, for one variable, which clauses contain it
// positively and which contain it negatively.
type polarityIndex struct {
	pos map[ClauseID]struct{}
	neg map[ClauseID]struct{}
}

func (p *polarityIndex) forPolarity(value bool) map[ClauseID]struct{} {
	if value {
		return p.pos
	}
	return p.neg
}

// VarIndex is the reverse map from variable to the set of clauses it
// appears in, split by the polarity it appears with. It mirrors the
// source's `var_map` and is what lets substitution touch only the
// clauses a forced variable actually participates in, instead of
// scanning the whole formula.
type VarIndex struct {
	entries map[Var]*polarityIndex
}

func NewVarIndex() *VarIndex {
	return &VarIndex{entries: make(map[Var]*polarityIndex)}
}

// Record notes that clause id contains var with the given polarity.
func (idx *VarIndex) Record(v Var, value bool, id ClauseID) {
	p, ok := idx.entries[v]
	if !ok {
		p = &polarityIndex{pos: map[ClauseID]struct{}{}, neg: map[ClauseID]struct{}{}}
		idx.entries[v] = p
	}
	p.forPolarity(value)[id] = struct{}{}
}

// Lookup returns the clause-id set for (var, value), and whether var
// is tracked at all.
func (idx *VarIndex) Lookup(v Var, value bool) (map[ClauseID]struct{}, bool) {
	p, ok := idx.entries[v]
	if !ok {
		return nil, false
	}
	return p.forPolarity(value), true
}

// Delete removes var from the index entirely (used when a variable is
// substituted away) and returns what was removed so it can be restored
// on undo.
func (idx *VarIndex) Delete(v Var) (*polarityIndex, bool) {
	p, ok := idx.entries[v]
	if !ok {
		return nil, false
	}
	delete(idx.entries, v)
	return p, true
}

// Restore reinserts a polarityIndex previously removed by Delete.
func (idx *VarIndex) Restore(v Var, p *polarityIndex) {
	idx.entries[v] = p
}
