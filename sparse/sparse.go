// SPDX-License-Identifier: MIT

package sparse

import "github.com/katalvlaran/rmqlca/seq"

// RMQ is the sparse-table Range Minimum Query engine (spec component C).
//
// table[d][i] holds the argmin index of A[i, i+2^d) for d in [0, floor(lg n)]
// and i such that i+2^d <= n. floorLog2[l] precomputes floor(lg l) for every
// query length l so Query never computes a logarithm on the hot path.
//
// s and less are the borrowed sequence and comparator from Build; Query
// needs them to compare the two candidate argmin positions it samples.
type RMQ[V any] struct {
	n         int
	s         seq.Sequence[V]
	less      seq.Less[V]
	table     [][]int
	floorLog2 []int
	built     bool
}

// Build preprocesses s into a sparse table. s is borrowed: it must outlive
// the returned engine and must not be mutated afterward. less must be a
// strict weak ordering over V.
//
// Complexity: O(n log n) time and space, n = s.Len().
func Build[V any](s seq.Sequence[V], less seq.Less[V]) *RMQ[V] {
	n := s.Len()
	seq.Invariant(n > 0, "sparse: Build called on empty sequence")

	floorLog2 := make([]int, n+1)
	for l := 2; l <= n; l++ {
		floorLog2[l] = floorLog2[l/2] + 1
	}
	maxD := floorLog2[n]

	table := make([][]int, maxD+1)
	table[0] = make([]int, n)
	for i := 0; i < n; i++ {
		table[0][i] = i
	}
	for d := 1; d <= maxD; d++ {
		half := 1 << (d - 1)
		width := 1 << d
		prev := table[d-1]
		row := make([]int, n-width+1)
		for i := 0; i+width <= n; i++ {
			left := prev[i]
			right := prev[i+half]
			if less(s.At(right), s.At(left)) {
				row[i] = right
			} else {
				row[i] = left // ties: leftmost
			}
		}
		table[d] = row
	}

	return &RMQ[V]{n: n, s: s, less: less, table: table, floorLog2: floorLog2, built: true}
}

// Query returns a position i with u <= i < v and s[i] minimal over s[u, v),
// by comparing the two canonical overlapping power-of-two windows that
// cover [u, v). When v-u == 1 both windows coincide; still correct. Ties
// resolve to the leftmost minimal position.
//
// Complexity: O(1).
func (r *RMQ[V]) Query(u, v int) int {
	seq.Invariant(r.built, "sparse: Query called before Build")
	seq.Invariant(u >= 0 && u < v && v <= r.n, "sparse: Query(%d, %d) out of range [0, %d]", u, v, r.n)

	l := v - u
	d := r.floorLog2[l]
	left := r.table[d][u]
	right := r.table[d][v-(1<<d)]
	if r.less(r.s.At(right), r.s.At(left)) {
		return right
	}
	return left
}

// QueryOffset is equivalent to Query; kept distinct so callers migrating
// from offset/cursor-style call sites don't need a wrapper.
func (r *RMQ[V]) QueryOffset(u, v int) int { return r.Query(u, v) }

// Len returns the length of the sequence this engine was built over.
func (r *RMQ[V]) Len() int { return r.n }
