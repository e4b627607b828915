// SPDX-License-Identifier: MIT

package lca

import (
	"github.com/katalvlaran/rmqlca/pm"
	"github.com/katalvlaran/rmqlca/seq"
	"github.com/katalvlaran/rmqlca/tree"
)

// LCA answers Lowest Common Ancestor queries over a tree.Tree[ID] that was
// fixed at Build time. The tree is borrowed: it must outlive LCA and must
// not be mutated afterward (tree.Tree has no mutation API, so in practice
// this is automatic).
type LCA[ID any] struct {
	tr     *tree.Tree[ID]
	euler  []tree.NodeRef // E: node visited at each Euler-tour step
	levels []int          // L: depth at each Euler-tour step, same length as euler
	rep    []int          // rep[ref] = one index i with euler[i] == ref
	pmRMQ  *pm.RMQ
	built  bool
}

// frame tracks one node's progress through its children during the
// iterative Euler-tour walk.
type frame struct {
	ref      tree.NodeRef
	depth    int
	childIdx int
}

// Build preprocesses tr for O(1) LCA queries.
//
// Complexity: O(n) time and space, n = tr.Len().
func Build[ID any](tr *tree.Tree[ID]) *LCA[ID] {
	n := tr.Len()
	seq.Invariant(n > 0, "lca: Build called on empty tree")

	euler := make([]tree.NodeRef, 0, 2*n-1)
	levels := make([]int, 0, 2*n-1)
	rep := make([]int, n)

	root := tr.Root()
	euler = append(euler, root)
	levels = append(levels, 0)
	rep[root] = 0

	stack := []frame{{ref: root, depth: 0}}
	for len(stack) > 0 {
		top := len(stack) - 1
		ref := stack[top].ref
		depth := stack[top].depth
		children := tr.Children(ref)

		if stack[top].childIdx < len(children) {
			child := children[stack[top].childIdx]
			stack[top].childIdx++

			euler = append(euler, child)
			levels = append(levels, depth+1)
			rep[child] = len(euler) - 1

			stack = append(stack, frame{ref: child, depth: depth + 1})
			continue
		}

		// All children visited: pop and, if there is a parent frame left
		// on the stack, re-append it to record the return step.
		stack = stack[:top]
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			euler = append(euler, parent.ref)
			levels = append(levels, parent.depth)
		}
	}

	return &LCA[ID]{
		tr:     tr,
		euler:  euler,
		levels: levels,
		rep:    rep,
		pmRMQ:  pm.Build(levels),
		built:  true,
	}
}

// Query returns the deepest common ancestor of u and v. u == v returns u.
// u or v outside the preprocessed tree is a programmer error and panics.
//
// Complexity: O(1).
func (l *LCA[ID]) Query(u, v tree.NodeRef) tree.NodeRef {
	seq.Invariant(l.built, "lca: Query called before Build")
	seq.Invariant(int(u) >= 0 && int(u) < len(l.rep), "lca: Query node %d foreign to this tree", u)
	seq.Invariant(int(v) >= 0 && int(v) < len(l.rep), "lca: Query node %d foreign to this tree", v)

	iu, iv := l.rep[u], l.rep[v]
	lo, hi := iu, iv
	if lo > hi {
		lo, hi = hi, lo
	}

	k := l.pmRMQ.Query(lo, hi+1)

	return l.euler[k]
}

// Tree returns the tree this engine was built over.
func (l *LCA[ID]) Tree() *tree.Tree[ID] { return l.tr }
