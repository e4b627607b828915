// SPDX-License-Identifier: MIT

package tree

import "fmt"

// NodeRef addresses a node within a Tree's arena. It is a small value type
// (an int), safe to copy, compare, and use as a map key.
type NodeRef int

// NoNode is the zero-value-free sentinel for "no node"; valid NodeRefs are
// always >= 0.
const NoNode NodeRef = -1

// node is the arena-internal representation; children are ordered and, for
// an internal node, owned (never aliased with a sibling's list).
type node[ID any] struct {
	id       ID
	children []NodeRef
}

// Tree is an immutable, arena-backed rooted n-ary tree. Every node is
// identified by its NodeRef (its position in the arena), not by id
// equality — two nodes may carry equal ids.
type Tree[ID any] struct {
	nodes []node[ID]
	root  NodeRef
}

func must(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

func (t *Tree[ID]) check(ref NodeRef) {
	must(ref >= 0 && int(ref) < len(t.nodes), "tree: NodeRef %d out of range [0, %d)", ref, len(t.nodes))
}

// Root returns the tree's root node.
func (t *Tree[ID]) Root() NodeRef { return t.root }

// Len returns the number of nodes in the tree.
func (t *Tree[ID]) Len() int { return len(t.nodes) }

// ID returns the id carried by ref.
func (t *Tree[ID]) ID(ref NodeRef) ID {
	t.check(ref)
	return t.nodes[ref].id
}

// Children returns ref's ordered child list. The returned slice must not
// be mutated by the caller.
func (t *Tree[ID]) Children(ref NodeRef) []NodeRef {
	t.check(ref)
	return t.nodes[ref].children
}

// Clone returns a deep, independent copy of t: no NodeRef, slice, or id
// storage is shared between t and the result. Cloning is explicit and O(n)
// because implicit copies of a whole tree are rarely what a caller wants.
func (t *Tree[ID]) Clone() *Tree[ID] {
	out := make([]node[ID], len(t.nodes))
	for i, n := range t.nodes {
		out[i] = node[ID]{
			id:       n.id,
			children: append([]NodeRef(nil), n.children...),
		}
	}
	return &Tree[ID]{nodes: out, root: t.root}
}
