package rules

import (
	"fmt"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/sat"
)

// ConnectedDecreasingTree requires every cell holding statePrefix to
// sit at some distance-to-seed, encoded as `size` auxiliary "distance"
// states, and requires distance d (d > 0) to imply some adjacent cell
// at distance d-1: a cell can only be "in the region at distance d" if
// a neighbor is "in the region at distance d-1", which forces the
// region into a tree rooted at whichever cell holds distance 0.
// Grounded on ConnectedDecreasingTree; it does not itself cap region
// size or link the distance states to statePrefix — pair it with
// AuxiliaryImpliesMainAndViceVersa and AtMostKInBoard as ConnectedRegion
// does.
type ConnectedDecreasingTree struct {
	rule.Base
	StatePrefix string
	Size        int
	distances   []string
}

func NewConnectedDecreasingTree(statePrefix string, size int) *ConnectedDecreasingTree {
	distances := make([]string, size)
	for d := range distances {
		distances[d] = distanceName(statePrefix, d)
	}
	return &ConnectedDecreasingTree{
		Base:        rule.NewBase(distances, true),
		StatePrefix: statePrefix,
		Size:        size,
		distances:   distances,
	}
}

func distanceName(prefix string, dist int) string {
	return fmt.Sprintf("%s_%d", prefix, dist)
}

func (r *ConnectedDecreasingTree) Flatten() []rule.Leaf { return rule.FlattenSelf(r) }

// DistanceStates returns the auxiliary distance-state names this rule
// introduced, in ascending distance order.
func (r *ConnectedDecreasingTree) DistanceStates() []string {
	return r.distances
}

func (r *ConnectedDecreasingTree) EmitClauses(c *rule.Compiler) error {
	cells := c.Board.Cells()
	for dist := 1; dist < r.Size; dist++ {
		for _, cell := range cells {
			centerV, err := c.Var(cell.Row, cell.Col, r.distances[dist])
			if err != nil {
				return err
			}
			entries := []sat.Literal{{Var: centerV, Value: false}}
			for _, adj := range c.Board.Adjacent(cell.Row, cell.Col) {
				adjV, err := c.Var(adj.Row, adj.Col, r.distances[dist-1])
				if err != nil {
					return err
				}
				entries = append(entries, sat.Literal{Var: adjV, Value: true})
			}
			c.AddClause(entries...)
		}
	}
	return nil
}

// ConnectedRegion requires every cell holding statePrefix to form a
// single 4-connected region, optionally anchored at seed (a coordinate
// known to hold statePrefix). size bounds the distance encoding but is
// not itself enforced as a cap — pair with AtMostKInBoard via
// ConnectedRegionOfSizeAtMost for that. Grounded on ConnectedRegion.
func ConnectedRegion(statePrefix string, size int, seed *board.Coord) *rule.Group {
	tree := NewConnectedDecreasingTree(statePrefix, size)
	zeroState := distanceName(statePrefix, 0)
	link := NewAuxiliaryImpliesMainAndViceVersa(statePrefix, tree.DistanceStates())
	oneSeed := NewAtMostKInBoard(zeroState, 1)

	nodes := []rule.Node{tree, oneSeed, link}
	if seed != nil {
		nodes = append(nodes, NewInitialLiterals([]board.Coord{*seed}, []bool{true}, zeroState))
	}
	return rule.NewGroup(nodes...)
}

// ConnectedRegionOfSizeAtMost composes ConnectedRegion with an
// AtMostKInBoard cap of size cells holding statePrefix, grounded on
// ConnectedRegionOfSizeAtMostN.
func ConnectedRegionOfSizeAtMost(statePrefix string, size int, seed *board.Coord) *rule.Group {
	return rule.NewGroup(
		ConnectedRegion(statePrefix, size, seed),
		NewAtMostKInBoard(statePrefix, size),
	)
}
