// SPDX-License-Identifier: MIT

package opt

import (
	"github.com/katalvlaran/rmqlca/lca"
	"github.com/katalvlaran/rmqlca/seq"
	"github.com/katalvlaran/rmqlca/tree"
)

// RMQ is the general Range Minimum Query engine (spec component G): it
// owns the Cartesian tree, the lca.LCA engine built over it, and the
// position-to-node map, and answers every query as a single LCA lookup.
type RMQ[V any] struct {
	n      int
	tr     *tree.Tree[cartesianID]
	lcaEng *lca.LCA[cartesianID]
	posMap []tree.NodeRef
	built  bool
}

// Build preprocesses s for O(1) RMQ via its Cartesian tree. s is borrowed:
// it must outlive the returned engine and must not be mutated afterward.
// less must be a strict weak ordering over V.
//
// Complexity: O(n) time and space, n = s.Len().
func Build[V any](s seq.Sequence[V], less seq.Less[V]) *RMQ[V] {
	n := s.Len()
	seq.Invariant(n > 0, "opt: Build called on empty sequence")

	tr, posMap := buildCartesian(s, less)
	lcaEng := lca.Build(tr)

	return &RMQ[V]{n: n, tr: tr, lcaEng: lcaEng, posMap: posMap, built: true}
}

// Query returns a position i with u <= i < v and s[i] minimal over s[u, v),
// found by taking the LCA of position u's and position (v-1)'s Cartesian-
// tree nodes: the heap property (§4.7's I5) guarantees that ancestor's id
// names the minimum of the whole subrange. u >= v, v > n, or an un-built
// engine are contract violations and panic.
//
// Complexity: O(1).
func (r *RMQ[V]) Query(u, v int) int {
	seq.Invariant(r.built, "opt: Query called before Build")
	seq.Invariant(u >= 0 && u < v && v <= r.n, "opt: Query(%d, %d) out of range [0, %d]", u, v, r.n)

	nodeU := r.posMap[u]
	nodeV := r.posMap[v-1]
	ancestor := r.lcaEng.Query(nodeU, nodeV)

	return r.tr.ID(ancestor).pos
}

// QueryOffset is equivalent to Query; kept distinct so callers migrating
// from offset/cursor-style call sites don't need a wrapper.
func (r *RMQ[V]) QueryOffset(u, v int) int { return r.Query(u, v) }

// Len returns the length of the sequence this engine was built over.
func (r *RMQ[V]) Len() int { return r.n }
