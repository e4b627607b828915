// SPDX-License-Identifier: MIT

package naive

import "github.com/katalvlaran/rmqlca/seq"

// RMQ is the full-table Range Minimum Query engine (spec component B).
//
// table[l][i] holds the argmin index of A[i, i+l+1) for l in [0, n) and
// i in [0, n-l). Rows shrink as l grows (row l has n-l entries), matching
// the DP recurrence's actual access pattern instead of allocating the
// unused upper triangle of a square n*n table.
type RMQ[V any] struct {
	n     int
	table [][]int
	built bool
}

// Build preprocesses s into a naive RMQ table. s is borrowed: it must
// outlive the returned engine and must not be mutated after Build returns.
// less must be a strict weak ordering over V.
//
// Complexity: O(n^2) time and space, n = s.Len().
func Build[V any](s seq.Sequence[V], less seq.Less[V]) *RMQ[V] {
	n := s.Len()
	seq.Invariant(n > 0, "naive: Build called on empty sequence")

	// table[l] holds argmin for intervals of length l+1, one entry per
	// valid starting position i in [0, n-l).
	table := make([][]int, n)
	table[0] = make([]int, n)
	for i := 0; i < n; i++ {
		table[0][i] = i // M[0][i] = i: length-1 interval's minimum is itself
	}
	for l := 1; l < n; l++ {
		prev := table[l-1]
		row := make([]int, n-l)
		for i := 0; i < n-l; i++ {
			left := prev[i]    // argmin of A[i, i+l)
			right := prev[i+1] // argmin of A[i+1, i+l+1)
			if less(s.At(right), s.At(left)) {
				row[i] = right
			} else {
				row[i] = left // ties: leftmost
			}
		}
		table[l] = row
	}

	return &RMQ[V]{n: n, table: table, built: true}
}

// Query returns a position i with u <= i < v and s[i] minimal over s[u, v).
// Ties resolve to the leftmost minimal position. u >= v, v > n, or an
// un-built engine are contract violations and panic.
//
// Complexity: O(1).
func (r *RMQ[V]) Query(u, v int) int {
	seq.Invariant(r.built, "naive: Query called before Build")
	seq.Invariant(u >= 0 && u < v && v <= r.n, "naive: Query(%d, %d) out of range [0, %d]", u, v, r.n)

	return r.table[v-u-1][u]
}

// QueryOffset is equivalent to Query; kept distinct so callers migrating
// from offset/cursor-style call sites don't need a wrapper.
func (r *RMQ[V]) QueryOffset(u, v int) int { return r.Query(u, v) }

// Len returns the length of the sequence this engine was built over.
func (r *RMQ[V]) Len() int { return r.n }
