// Package solve assembles a board and a tree of rules into a runnable
// CNF search: it drives the rule package's three-phase compilation
// protocol, then wraps the resulting sat.Engine with solution
// enumeration and projection back onto a Board.
package solve

import (
	"context"
	"iter"

	"github.com/rs/zerolog"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// Solver owns a compiled puzzle: its board, the CNF engine driving
// search, and the registry needed to translate a solution's variables
// back into board states.
type Solver struct {
	Board    *board.Board
	Compiler *rule.Compiler
	Engine   *sat.Engine
	Logger   zerolog.Logger

	lastSolution sat.Solution
}

// New compiles roots against b. Compilation runs in five steps,
// mirroring the source's CNFSolver constructor: link every root to the
// compiler, let each leaf declare the states it needs, freeze the
// state count, let each leaf emit its clauses, then let every root
// declare its exclusivity groups (which needs the frozen state
// numbers).
func New(b *board.Board, roots ...rule.Node) (*Solver, error) {
	c := rule.NewCompiler(b)

	var leaves []rule.Leaf
	for _, root := range roots {
		if err := root.Link(c); err != nil {
			return nil, err
		}
		leaves = append(leaves, root.Flatten()...)
	}
	for _, leaf := range leaves {
		leaf.DeclareStates(c)
	}
	c.FreezeStates()
	for _, leaf := range leaves {
		if err := leaf.EmitClauses(c); err != nil {
			return nil, err
		}
	}
	for _, root := range roots {
		if err := root.DeclareExclusivity(c); err != nil {
			return nil, err
		}
	}

	engine := sat.NewEngine(c.Width, c.NumStates, c.Formula, c.Index, c.Exclusivity)
	return &Solver{Board: b, Compiler: c, Engine: engine, Logger: zerolog.Nop()}, nil
}

// Solve enumerates up to maxSols satisfying assignments. Each yielded
// Solution is also cached so GenerateSolvedBoard can project the most
// recent one; ranging to completion (or breaking early) always leaves
// the engine's formula restored to its pre-search state.
func (s *Solver) Solve(ctx context.Context, maxSols int) iter.Seq[sat.Solution] {
	return func(yield func(sat.Solution) bool) {
		if s.Logger.GetLevel() != zerolog.Disabled {
			s.Logger.Debug().
				Int("height", s.Board.Height).
				Int("width", s.Board.Width).
				Int("states", s.Compiler.NumStates).
				Int("max_sols", maxSols).
				Msg("solve starting")
		}
		found := 0
		for sol := range s.Engine.Solve(ctx, maxSols) {
			s.lastSolution = sol
			found++
			if s.Logger.GetLevel() != zerolog.Disabled {
				s.Logger.Debug().Int("solution", found).Int("assigned", len(sol)).Msg("solution found")
			}
			if !yield(sol) {
				return
			}
		}
		if s.Logger.GetLevel() != zerolog.Disabled {
			s.Logger.Debug().Int("total", found).Msg("solve finished")
		}
	}
}

// Err surfaces any internal invariant error raised by the most recent
// Solve call. Unsatisfiability is not an error — it is reported by
// Solve simply yielding nothing.
func (s *Solver) Err() error {
	return s.Engine.Err()
}

// GenerateSolvedBoard projects the most recently yielded solution onto
// a fresh copy of the original board. If no solution has been found
// yet, it returns an unmodified clone.
func (s *Solver) GenerateSolvedBoard() *board.Board {
	out := s.Board.Clone()
	if s.lastSolution == nil {
		return out
	}
	return Project(out, s.lastSolution, s.Compiler)
}

// Project writes every true literal of sol onto dst as a board state,
// using c's registry and dimensions to decode each variable back into
// a (row, col, state) triple. Auxiliary states that never made it into
// dst.VisibleStates are silently dropped, matching Board.Set.
func Project(dst *board.Board, sol sat.Solution, c *rule.Compiler) *board.Board {
	for v, value := range sol {
		if !value {
			continue
		}
		row, col, stateNum := sat.Decode(v, c.Width, c.NumStates)
		dst.Set(row, col, c.Registry.Name(stateNum))
	}
	return dst
}
