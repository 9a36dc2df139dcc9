package sat

// Assignment maps every variable substituted away to the value it was
// forced to. During search it is the set of "already substituted"
// variables; once the formula empties out it *is* a satisfying
// assignment. There is no decision-level bookkeeping here — the
// search procedure backtracks by exact reversal of a single
// substitution step (see undoBatch in solver.go), not by truncating to
// a saved level.
type Assignment map[Var]bool

// Clone returns an independent copy, used to snapshot a solution
// before the search procedure backtracks past it to look for more.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Solution is a completed, snapshot-safe satisfying assignment.
type Solution = Assignment
