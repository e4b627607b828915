package tree

// Builder accumulates nodes into an arena before the tree is frozen by
// Finish. It is the only way to construct a Tree: there is no public way to
// mutate a finished Tree, which is what makes Tree safe to share read-only
// across concurrent queries (spec.md §5).
type Builder[ID any] struct {
	nodes []node[ID]
}

// NewBuilder returns an empty Builder.
func NewBuilder[ID any]() *Builder[ID] {
	return &Builder[ID]{}
}

func (b *Builder[ID]) check(ref NodeRef) {
	must(ref >= 0 && int(ref) < len(b.nodes), "tree: NodeRef %d out of range [0, %d)", ref, len(b.nodes))
}

// Leaf appends a childless node carrying id and returns its NodeRef.
func (b *Builder[ID]) Leaf(id ID) NodeRef {
	b.nodes = append(b.nodes, node[ID]{id: id})
	return NodeRef(len(b.nodes) - 1)
}

// Internal appends a node carrying id and the given ordered children, and
// returns its NodeRef. children is copied, never aliased, so the caller's
// slice remains theirs to reuse.
func (b *Builder[ID]) Internal(id ID, children []NodeRef) NodeRef {
	owned := append([]NodeRef(nil), children...)
	b.nodes = append(b.nodes, node[ID]{id: id, children: owned})
	return NodeRef(len(b.nodes) - 1)
}

// AddChild appends child to parent's child list, growing it incrementally.
// Used by construction algorithms (e.g. the Cartesian-tree stack algorithm
// in package opt) that don't know a node's full child list up front.
func (b *Builder[ID]) AddChild(parent, child NodeRef) {
	b.check(parent)
	b.check(child)
	b.nodes[parent].children = append(b.nodes[parent].children, child)
}

// PrependChild inserts child at the front of parent's child list (used to
// attach a popped left subtree while the node's rightmost child is still
// being grown).
func (b *Builder[ID]) PrependChild(parent, child NodeRef) {
	b.check(parent)
	b.check(child)
	b.nodes[parent].children = append([]NodeRef{child}, b.nodes[parent].children...)
}

// ID returns the id currently stored at ref.
func (b *Builder[ID]) ID(ref NodeRef) ID {
	b.check(ref)
	return b.nodes[ref].id
}

// Children returns ref's child list as built so far.
func (b *Builder[ID]) Children(ref NodeRef) []NodeRef {
	b.check(ref)
	return b.nodes[ref].children
}

// Len returns the number of nodes appended so far.
func (b *Builder[ID]) Len() int { return len(b.nodes) }

// Finish freezes the builder's arena into an immutable Tree rooted at
// root. The Builder must not be reused afterward.
func (b *Builder[ID]) Finish(root NodeRef) *Tree[ID] {
	must(root >= 0 && int(root) < len(b.nodes), "tree: Finish root %d out of range [0, %d)", root, len(b.nodes))
	return &Tree[ID]{nodes: b.nodes, root: root}
}
