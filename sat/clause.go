package sat

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// ClauseID identifies a clause within a Formula. IDs are assigned in
// emission order and never reused, so a smaller ID always means "added
// earlier" — the search procedure relies on this for deterministic
// tie-breaking.
type ClauseID int

// Clause is a disjunction of literals, stored as {var: polarity}. A
// rule emitting a clause asserts that at least one entry must hold;
// Clause assumes no variable appears twice (the source makes the same
// assumption).
type Clause map[Var]bool

// smallestLiteral returns the entry with the lowest Var, so that
// picking one literal out of a clause with several entries (a guess)
// is reproducible across runs.
func (c Clause) smallestLiteral() Literal {
	vars := make([]Var, 0, len(c))
	for v := range c {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	v := vars[0]
	return Literal{Var: v, Value: c[v]}
}

// Formula is an ordered collection of clauses, keyed by ClauseID and
// iterated in ascending ID order via a red-black tree. Ascending-ID
// iteration order is what makes "pick the first remaining clause"
// deterministic across runs, matching the insertion-ordered dict the
// source relies on.
type Formula struct {
	tree   *treemap.Map
	nextID ClauseID
}

func NewFormula() *Formula {
	return &Formula{tree: treemap.NewWith(utils.IntComparator)}
}

// Add appends clause to the formula and returns its assigned ID.
func (f *Formula) Add(clause Clause) ClauseID {
	id := f.nextID
	f.nextID++
	f.tree.Put(int(id), clause)
	return id
}

// Put reinserts clause under an existing id, used when undoing a
// substitution that deleted the clause outright.
func (f *Formula) Put(id ClauseID, clause Clause) {
	f.tree.Put(int(id), clause)
}

func (f *Formula) Get(id ClauseID) (Clause, bool) {
	v, found := f.tree.Get(int(id))
	if !found {
		return nil, false
	}
	return v.(Clause), true
}

func (f *Formula) Remove(id ClauseID) {
	f.tree.Remove(int(id))
}

func (f *Formula) Len() int {
	return f.tree.Size()
}

// Empty reports whether every clause has been satisfied away.
func (f *Formula) Empty() bool {
	return f.tree.Size() == 0
}

// NextStep scans the formula in ascending clause-ID order and decides
// what the search procedure should substitute next.
//
// If one or more clauses currently hold exactly one literal, every
// such literal is forced; NextStep returns them all (in ascending
// clause-ID order) with forcing=true, so a single substitution step
// propagates every pending unit clause at once. Otherwise it returns a
// single literal taken from the lowest-ID remaining clause, with
// forcing=false (a genuine guess whose alternate polarity the caller
// may need to try). contradiction reports an empty clause, which means
// the formula is already unsatisfiable.
func (f *Formula) NextStep() (literals []Literal, forcing bool, contradiction bool, ok bool) {
	it := f.tree.Iterator()
	var firstClause Clause
	haveFirst := false
	for it.Next() {
		clause := it.Value().(Clause)
		if len(clause) == 0 {
			return nil, false, true, false
		}
		if len(clause) == 1 {
			literals = append(literals, clause.smallestLiteral())
		} else if !haveFirst {
			firstClause = clause
			haveFirst = true
		}
	}
	if len(literals) > 0 {
		return literals, true, false, true
	}
	if !haveFirst {
		return nil, false, false, false
	}
	return []Literal{firstClause.smallestLiteral()}, false, false, true
}
