package sat

import (
	"context"
	"iter"

	"github.com/ricbauer/gridsat/core"
)

type substOutcome int

const (
	outcomePending substOutcome = iota
	outcomeSolved
	outcomeFailed
)

// undoBatch records everything a single substitution step changed, in
// the aggregate form needed to put it all back: the full clauses it
// removed outright (its variable satisfied them), the individual
// literal entries it stripped out of clauses that survived, the
// var-index entries it deleted, and the variables it added to the
// running assignment. Restoring a batch reverses the step exactly,
// regardless of which polarity of which variable triggered which
// change.
type undoBatch struct {
	addBackClauses map[ClauseID]Clause
	addBackEntries map[ClauseID][]Literal
	addBackIndex   map[Var]*polarityIndex
	committed      []Var
}

func newUndoBatch() *undoBatch {
	return &undoBatch{
		addBackClauses: map[ClauseID]Clause{},
		addBackEntries: map[ClauseID][]Literal{},
		addBackIndex:   map[Var]*polarityIndex{},
	}
}

// Engine is the CNF substrate a compiled puzzle solves against: a
// Formula, its reverse VarIndex, an ExclusivityTable, and the running
// Assignment built up (and unwound) by search. It knows nothing about
// boards, rules, or puzzle semantics — only clauses and variables.
type Engine struct {
	Width, NumStates int
	Formula          *Formula
	Index            *VarIndex
	Exclusivity      *ExclusivityTable
	Assignment       Assignment

	maxSols        int
	solutionsFound int
	stopped        bool
	err            error
}

// NewEngine assembles an Engine over an already-compiled formula.
func NewEngine(width, numStates int, formula *Formula, index *VarIndex, excl *ExclusivityTable) *Engine {
	return &Engine{
		Width:       width,
		NumStates:   numStates,
		Formula:     formula,
		Index:       index,
		Exclusivity: excl,
		Assignment:  Assignment{},
	}
}

// Err returns any internal invariant error raised during the most
// recent Solve, or nil. Unsatisfiability is not an error: it simply
// yields no solutions.
func (e *Engine) Err() error {
	return e.err
}

// Solve enumerates up to maxSols satisfying assignments as an
// iter.Seq, stopping early (restoring every pending substitution
// along the way) when ctx is cancelled, when the caller stops ranging
// over the sequence, or once maxSols solutions have been produced.
// maxSols <= 0 is treated as 1. A guess tries its other polarity only
// when the first one led to no solution, so the search ends at its
// first satisfying assignment and at most one Solution is yielded.
func (e *Engine) Solve(ctx context.Context, maxSols int) iter.Seq[Solution] {
	if maxSols <= 0 {
		maxSols = 1
	}
	return func(yield func(Solution) bool) {
		e.maxSols = maxSols
		e.solutionsFound = 0
		e.stopped = false
		e.err = nil

		if e.Formula.Empty() {
			yield(e.Assignment.Clone())
			return
		}
		e.search(ctx, yield)
	}
}

// search is the recursive substitution/backtracking procedure. It
// returns true if a solution was found somewhere along this path (used
// only to decide whether the caller — itself mid-substitution — may
// skip trying its own alternate polarity); it is not how solutions are
// reported, which happens as a side effect through yield.
func (e *Engine) search(ctx context.Context, yield func(Solution) bool) bool {
	if e.stopped {
		return false
	}
	select {
	case <-ctx.Done():
		e.stopped = true
		return false
	default:
	}

	literals, forcing, contradiction, ok := e.Formula.NextStep()
	if contradiction {
		return false
	}
	if !ok {
		return e.record(yield)
	}

	outcome, batch, err := e.substitute(literals)
	if err != nil {
		e.err = err
		e.stopped = true
		return false
	}

	if outcome == outcomeSolved {
		found := e.record(yield)
		e.undo(batch)
		return found
	}

	if outcome == outcomePending {
		sub := e.search(ctx, yield)
		e.undo(batch)
		if e.stopped {
			return false
		}
		if sub {
			return true
		}
	} else {
		e.undo(batch)
		if forcing {
			return false
		}
	}

	if forcing {
		return false
	}

	// literals held exactly one entry (a genuine guess) and that polarity
	// led to no solution: try its negation.
	alt := literals[0].Negate()
	outcomeAlt, batchAlt, err := e.substitute([]Literal{alt})
	if err != nil {
		e.err = err
		e.stopped = true
		return false
	}
	if outcomeAlt == outcomeSolved {
		found := e.record(yield)
		e.undo(batchAlt)
		return found
	}
	if outcomeAlt == outcomePending {
		sub := e.search(ctx, yield)
		e.undo(batchAlt)
		if e.stopped {
			return false
		}
		return sub
	}
	e.undo(batchAlt)
	return false
}

func (e *Engine) record(yield func(Solution) bool) bool {
	e.solutionsFound++
	cont := yield(e.Assignment.Clone())
	if !cont || e.solutionsFound >= e.maxSols {
		e.stopped = true
	}
	return true
}

// substitute forces every literal in entries (after exclusivity
// expansion) and propagates the consequences through the formula,
// returning enough information to reverse the step exactly via undo.
func (e *Engine) substitute(entries []Literal) (substOutcome, *undoBatch, error) {
	var expanded []Literal
	for _, entry := range entries {
		expanded = append(expanded, e.Exclusivity.Expand(entry, e.Width, e.NumStates, e.Assignment)...)
	}
	if len(expanded) == 0 {
		return outcomePending, nil, core.NewInvariantError("sat", "Engine.substitute", "no literals to substitute after exclusivity expansion")
	}

	batch := newUndoBatch()
	seen := map[Var]bool{}
	contradiction := false

	for _, lit := range expanded {
		subVar, subVal := lit.Var, lit.Value
		if _, already := e.Assignment[subVar]; already {
			continue
		}
		if prevVal, exists := seen[subVar]; exists {
			if prevVal != subVal {
				contradiction = true
			}
			continue
		}
		seen[subVar] = subVal
		batch.committed = append(batch.committed, subVar)

		if ids, tracked := e.Index.Lookup(subVar, subVal); tracked {
			for id := range ids {
				clause, exists := e.Formula.Get(id)
				if !exists {
					continue
				}
				batch.addBackClauses[id] = clause
				e.Formula.Remove(id)
			}
		}
		if ids, tracked := e.Index.Lookup(subVar, !subVal); tracked {
			for id := range ids {
				clause, exists := e.Formula.Get(id)
				if !exists {
					continue
				}
				batch.addBackEntries[id] = append(batch.addBackEntries[id], Literal{Var: subVar, Value: !subVal})
				delete(clause, subVar)
				if len(clause) == 0 {
					contradiction = true
				}
			}
		}
		if removed, tracked := e.Index.Delete(subVar); tracked {
			batch.addBackIndex[subVar] = removed
		}
	}

	for _, v := range batch.committed {
		e.Assignment[v] = seen[v]
	}

	outcome := outcomePending
	switch {
	case contradiction:
		outcome = outcomeFailed
	case e.Formula.Empty():
		outcome = outcomeSolved
	}
	return outcome, batch, nil
}

// undo reverses exactly one substitute call, restoring the assignment,
// var-index, and formula to their state beforehand.
func (e *Engine) undo(batch *undoBatch) {
	if batch == nil {
		return
	}
	for _, v := range batch.committed {
		delete(e.Assignment, v)
	}
	for v, p := range batch.addBackIndex {
		e.Index.Restore(v, p)
	}
	for id, clause := range batch.addBackClauses {
		e.Formula.Put(id, clause)
	}
	for id, entries := range batch.addBackEntries {
		clause, exists := e.Formula.Get(id)
		if !exists {
			clause = Clause{}
			e.Formula.Put(id, clause)
		}
		for _, lit := range entries {
			clause[lit.Var] = lit.Value
		}
	}
}
