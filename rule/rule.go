package rule

// Node is anything that can be linked to a Compiler and, once every
// leaf has declared its states, register its exclusivity groups. Both
// atomic rules (Leaf) and groupings of rules (Group) are Nodes.
type Node interface {
	Link(c *Compiler) error
	Flatten() []Leaf
	DeclareExclusivity(c *Compiler) error
}

// Leaf is an atomic rule: it declares the states it needs and, once
// every state in the puzzle has been declared, emits its clauses.
type Leaf interface {
	Node
	DeclareStates(c *Compiler)
	EmitClauses(c *Compiler) error
}

// Base implements the common boilerplate every leaf rule shares. A
// concrete leaf type embeds Base and only needs to implement Flatten
// (a one-liner, since Go embedding can't supply a self-reference) and
// EmitClauses.
type Base struct {
	States       []string
	AddExclusive bool
	Compiler     *Compiler
}

func NewBase(states []string, addExclusive bool) Base {
	return Base{States: states, AddExclusive: addExclusive}
}

func (b *Base) Link(c *Compiler) error {
	b.Compiler = c
	return nil
}

func (b *Base) DeclareStates(c *Compiler) {
	c.DeclareStates(b.States)
}

func (b *Base) DeclareExclusivity(c *Compiler) error {
	if !b.AddExclusive {
		return nil
	}
	return c.DeclareExclusive(b.States)
}

// FlattenSelf is the shared body for every leaf's Flatten method:
//
//	func (r *SomeRule) Flatten() []Leaf { return rule.FlattenSelf(r) }
func FlattenSelf(l Leaf) []Leaf {
	return []Leaf{l}
}

// Group composes several Nodes (Leaves or nested Groups) under one
// banner, the equivalent of the source's SuperRule. If AddExclusive is
// set, States names a group-level exclusivity group layered on top of
// whatever its children declare.
type Group struct {
	Nodes        []Node
	States       []string
	AddExclusive bool
}

func NewGroup(nodes ...Node) *Group {
	return &Group{Nodes: nodes}
}

func (g *Group) Link(c *Compiler) error {
	for _, n := range g.Nodes {
		if err := n.Link(c); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) Flatten() []Leaf {
	var out []Leaf
	for _, n := range g.Nodes {
		out = append(out, n.Flatten()...)
	}
	return out
}

func (g *Group) DeclareExclusivity(c *Compiler) error {
	if g.AddExclusive {
		if err := c.DeclareExclusive(g.States); err != nil {
			return err
		}
	}
	for _, n := range g.Nodes {
		if err := n.DeclareExclusivity(c); err != nil {
			return err
		}
	}
	return nil
}
