package sat

import (
	"context"
	"reflect"
	"testing"
)

func TestVariableBijection(t *testing.T) {
	const width, numStates = 9, 9
	for row := 0; row < width; row++ {
		for col := 0; col < width; col++ {
			for state := 0; state < numStates; state++ {
				v := Encode(row, col, state, width, numStates)
				gr, gc, gs := Decode(v, width, numStates)
				if gr != row || gc != col || gs != state {
					t.Fatalf("decode(encode(%d,%d,%d)) = (%d,%d,%d)", row, col, state, gr, gc, gs)
				}
			}
		}
	}
}

func TestTinySAT(t *testing.T) {
	// (a v b) ^ (!a v !b) -- exactly one of a, b is true.
	const width, numStates = 1, 2
	a := Encode(0, 0, 0, width, numStates)
	b := Encode(0, 0, 1, width, numStates)

	f := NewFormula()
	idx := NewVarIndex()

	c1 := Clause{a: true, b: true}
	id1 := f.Add(c1)
	for v, val := range c1 {
		idx.Record(v, val, id1)
	}
	c2 := Clause{a: false, b: false}
	id2 := f.Add(c2)
	for v, val := range c2 {
		idx.Record(v, val, id2)
	}

	engine := NewEngine(width, numStates, f, idx, NewExclusivityTable())

	var got Solution
	n := 0
	for sol := range engine.Solve(context.Background(), 10) {
		got = sol
		n++
	}
	if n == 0 {
		t.Fatal("expected at least one solution")
	}
	if got[a] == got[b] {
		t.Fatalf("expected exactly one of a,b true, got a=%v b=%v", got[a], got[b])
	}
}

func TestEmptyFormulaYieldsOneSolution(t *testing.T) {
	engine := NewEngine(1, 1, NewFormula(), NewVarIndex(), NewExclusivityTable())
	n := 0
	for sol := range engine.Solve(context.Background(), 5) {
		if len(sol) != 0 {
			t.Fatalf("expected empty assignment, got %v", sol)
		}
		n++
	}
	if n != 1 {
		t.Fatalf("expected exactly one solution, got %d", n)
	}
}

func TestEmptyClauseYieldsNoSolutions(t *testing.T) {
	f := NewFormula()
	f.Add(Clause{})
	engine := NewEngine(1, 1, f, NewVarIndex(), NewExclusivityTable())
	n := 0
	for range engine.Solve(context.Background(), 5) {
		n++
	}
	if n != 0 {
		t.Fatalf("expected no solutions, got %d", n)
	}
}

func TestExclusivityExpansion(t *testing.T) {
	const width, numStates = 1, 3
	table := NewExclusivityTable()
	if err := table.Declare([]int{0, 1, 2}); err != nil {
		t.Fatalf("Declare: %v", err)
	}

	a := Encode(0, 0, 0, width, numStates)
	b := Encode(0, 0, 1, width, numStates)
	c := Encode(0, 0, 2, width, numStates)

	out := table.Expand(Literal{Var: a, Value: true}, width, numStates, map[Var]bool{})
	want := map[Var]bool{a: true, b: false, c: false}
	got := map[Var]bool{}
	for _, lit := range out {
		got[lit.Var] = lit.Value
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expand(A=true) = %v, want %v", got, want)
	}
}

func TestBacktrackIdempotence(t *testing.T) {
	const width, numStates = 1, 2
	a := Encode(0, 0, 0, width, numStates)
	b := Encode(0, 0, 1, width, numStates)

	f := NewFormula()
	idx := NewVarIndex()
	cl := Clause{a: true, b: true}
	id := f.Add(cl)
	for v, val := range cl {
		idx.Record(v, val, id)
	}

	engine := NewEngine(width, numStates, f, idx, NewExclusivityTable())

	before := snapshotFormula(f)
	outcome, batch, err := engine.substitute([]Literal{{Var: a, Value: true}})
	if err != nil {
		t.Fatalf("substitute: %v", err)
	}
	if outcome != outcomeSolved {
		t.Fatalf("expected outcomeSolved, got %v", outcome)
	}
	engine.undo(batch)
	after := snapshotFormula(f)

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("formula not restored: before=%v after=%v", before, after)
	}
	if len(engine.Assignment) != 0 {
		t.Fatalf("expected empty assignment after undo, got %v", engine.Assignment)
	}
}

func snapshotFormula(f *Formula) map[ClauseID]Clause {
	out := map[ClauseID]Clause{}
	it := f.tree.Iterator()
	for it.Next() {
		id := ClauseID(it.Key().(int))
		clause := it.Value().(Clause)
		cp := make(Clause, len(clause))
		for k, v := range clause {
			cp[k] = v
		}
		out[id] = cp
	}
	return out
}
