// Package nurikabe wires the generic rule library into the Nurikabe
// ruleset: numbered islands of given sizes, connected and separated
// from one another, surrounded by a single connected sea of shaded
// cells with no 2x2 shaded square. Grounded on nurikabe.py.
package nurikabe

import (
	"fmt"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/rule"
	"github.com/ricbauer/gridsat/rules"
)

// EmptyState and FilledState are the two visible states every
// Nurikabe board is built over: unshaded (island) cells and shaded
// (sea) cells.
const (
	EmptyState  = "."
	FilledState = "x"
)

func islandState(id int) string {
	return fmt.Sprintf("%s_r%d", EmptyState, id)
}

// New builds the Nurikabe ruleset for b. Each clue becomes its own
// named island state, constrained to a connected region of exactly its
// clue size and seeded at the clue's coordinate; the shaded cells form
// one connected region of whatever size remains, with no 2x2 shaded
// square; islands never touch each other; and the island states are
// layered under the visible empty/filled distinction via
// AuxiliaryImpliesMainAndViceVersa.
func New(b *board.NurikabeBoard) (*rule.Group, error) {
	remaining := b.Height * b.Width
	var islandStates []string
	var nodes []rule.Node

	id := 0
	for _, coord := range orderedClueCoords(b.Clues) {
		id++
		size := b.Clues[coord]
		state := islandState(id)
		islandStates = append(islandStates, state)
		seed := coord
		nodes = append(nodes, rules.ConnectedRegionOfSizeAtMost(state, size, &seed))
		remaining -= size
		if remaining < 0 {
			return nil, fmt.Errorf("nurikabe: clue sizes exceed board size")
		}
	}

	seaSeed := b.FindShadedSeed(FilledState)
	sea := rules.ConnectedRegionOfSizeAtMost(FilledState, remaining, seaSeed)
	noSquare := rules.NewNoTwoByTwoMonochromeSquare([]string{FilledState})
	link := rules.NewAuxiliaryImpliesMainAndViceVersa(EmptyState, islandStates)
	separated := rules.NewNoAdjacencyBetweenStates(islandStates)
	shadedOrNot := rules.NewAtLeastOneStatePerCell([]string{EmptyState, FilledState})

	nodes = append(nodes, sea, noSquare, link, separated, shadedOrNot)

	exclusiveIslands := rule.NewBase(islandStates, true)
	nodes = append(nodes, &exclusiveIslandsLeaf{exclusiveIslands})

	group := rule.NewGroup(nodes...)
	group.States = []string{EmptyState, FilledState}
	group.AddExclusive = true
	for _, leaf := range rules.FromBoardGivens(b.Board, []string{EmptyState, FilledState}) {
		group.Nodes = append(group.Nodes, leaf)
	}
	return group, nil
}

// exclusiveIslandsLeaf is a bare Leaf whose only job is declaring the
// island states mutually exclusive at each cell — at most one island
// claims any given cell — grounded on the bare `Rule(board,
// seed_states, add_exclusive=True)` at the end of Nurikabe.generate_rules.
type exclusiveIslandsLeaf struct {
	rule.Base
}

func (l *exclusiveIslandsLeaf) Flatten() []rule.Leaf           { return rule.FlattenSelf(l) }
func (l *exclusiveIslandsLeaf) EmitClauses(*rule.Compiler) error { return nil }

func orderedClueCoords(clues map[board.Coord]int) []board.Coord {
	coords := make([]board.Coord, 0, len(clues))
	for c := range clues {
		coords = append(coords, c)
	}
	// stable, deterministic order: row-major, matching the order the
	// reference implementation's dict of givens iterates in practice.
	for i := 0; i < len(coords); i++ {
		for j := i + 1; j < len(coords); j++ {
			if less(coords[j], coords[i]) {
				coords[i], coords[j] = coords[j], coords[i]
			}
		}
	}
	return coords
}

func less(a, b board.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
