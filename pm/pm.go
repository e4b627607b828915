// SPDX-License-Identifier: MIT

package pm

import (
	"github.com/katalvlaran/rmqlca/naive"
	"github.com/katalvlaran/rmqlca/seq"
	"github.com/katalvlaran/rmqlca/sparse"
)

// RMQ is the +-1 Range Minimum Query engine (spec component D). It is
// deliberately not generic: see the package doc comment.
type RMQ struct {
	n           int
	levels      []int
	blockSize   int
	blockStarts []int // blockStarts[k] is the first global index of block k

	sVal   []int // sVal[k] = min value of block k
	sIdx   []int // sIdx[k] = global position of that min (leftmost tie)
	superS *sparse.RMQ[int]

	// shapeTables owns one naive RMQ per distinct block shape; perBlock
	// holds a non-owning reference into shapeTables for O(1) per-block
	// access (spec.md §5: "the per-block pointer array holds non-owning
	// references ... and may never outlive it" — satisfied trivially here
	// since Go's GC keeps shapeTables' entries alive exactly as long as
	// perBlock references them).
	shapeTables map[uint64]*naive.RMQ[int]
	perBlock    []*naive.RMQ[int]

	built bool
}

// Build preprocesses levels into a +-1 RMQ. levels must be non-empty and
// satisfy the +-1 property (|levels[i+1]-levels[i]| == 1 for all valid i);
// violating either is a programmer error and panics.
//
// levels is borrowed: it must outlive the returned engine and must not be
// mutated afterward.
//
// Complexity: O(n) time and space.
func Build(levels []int) *RMQ {
	n := len(levels)
	seq.Invariant(n > 0, "pm: Build called on empty sequence")
	for i := 1; i < n; i++ {
		d := levels[i] - levels[i-1]
		seq.Invariant(d == 1 || d == -1, "pm: +-1 property violated at index %d (diff=%d)", i, d)
	}

	blockSize := blockSizeFor(n)
	numBlocks := (n + blockSize - 1) / blockSize

	r := &RMQ{
		n:           n,
		levels:      levels,
		blockSize:   blockSize,
		blockStarts: make([]int, numBlocks),
		sVal:        make([]int, numBlocks),
		sIdx:        make([]int, numBlocks),
		shapeTables: make(map[uint64]*naive.RMQ[int]),
		perBlock:    make([]*naive.RMQ[int], numBlocks),
	}

	for k := 0; k < numBlocks; k++ {
		start := k * blockSize
		end := start + blockSize
		if end > n {
			end = n
		}
		r.blockStarts[k] = start

		// block minimum and its global position, leftmost on ties
		minVal, minPos := levels[start], start
		for j := start + 1; j < end; j++ {
			if levels[j] < minVal {
				minVal, minPos = levels[j], j
			}
		}
		r.sVal[k] = minVal
		r.sIdx[k] = minPos

		key := shapeKey(levels, start, end)
		table, ok := r.shapeTables[key]
		if !ok {
			shape := shapeValues(levels, start, end)
			table = naive.Build[int](seq.Slice[int](shape), seq.OrderedLess[int]())
			r.shapeTables[key] = table
		}
		r.perBlock[k] = table
	}

	r.superS = sparse.Build[int](seq.Slice[int](r.sVal), seq.OrderedLess[int]())
	r.built = true

	return r
}

// blockSizeFor returns B = max(1, floor(lg n)/2).
func blockSizeFor(n int) int {
	lg := 0
	for x := n; x > 1; x >>= 1 {
		lg++
	}
	b := lg / 2
	if b < 1 {
		b = 1
	}
	return b
}

func (r *RMQ) blockLen(k int) int {
	start := r.blockStarts[k]
	end := start + r.blockSize
	if end > r.n {
		end = r.n
	}
	return end - start
}

func (r *RMQ) blockOf(globalPos int) (block, offset int) {
	block = globalPos / r.blockSize
	offset = globalPos - r.blockStarts[block]
	return
}

// leftmostMin returns whichever of the given global positions has the
// smaller value in levels, breaking ties toward the earliest argument;
// callers pass positions in increasing order, so that is the leftmost.
func (r *RMQ) leftmostMin(positions ...int) int {
	best := positions[0]
	for _, p := range positions[1:] {
		if r.levels[p] < r.levels[best] {
			best = p
		}
	}
	return best
}

// Query returns a position i with u <= i < v and levels[i] minimal over
// levels[u, v). u >= v, v > n, or an un-built engine are contract
// violations and panic.
//
// Complexity: O(1).
func (r *RMQ) Query(u, v int) int {
	seq.Invariant(r.built, "pm: Query called before Build")
	seq.Invariant(u >= 0 && u < v && v <= r.n, "pm: Query(%d, %d) out of range [0, %d]", u, v, r.n)

	vInclusive := v - 1
	ub, uo := r.blockOf(u)
	vb, vo := r.blockOf(vInclusive)
	delta := vb - ub

	if delta == 0 {
		localOffset := r.perBlock[ub].Query(uo, vo+1)
		return r.blockStarts[ub] + localOffset
	}

	uOffset := r.perBlock[ub].Query(uo, r.blockLen(ub))
	uMin := r.blockStarts[ub] + uOffset
	vOffset := r.perBlock[vb].Query(0, vo+1)
	vMin := r.blockStarts[vb] + vOffset

	if delta == 1 {
		return r.leftmostMin(uMin, vMin)
	}

	// delta >= 2: also consult the super array for the fully-covered
	// blocks strictly between ub and vb.
	q := r.superS.Query(ub+1, vb)
	sMin := r.sIdx[q]

	return r.leftmostMin(uMin, sMin, vMin)
}

// QueryOffset is equivalent to Query; kept distinct so callers migrating
// from offset/cursor-style call sites don't need a wrapper.
func (r *RMQ) QueryOffset(u, v int) int { return r.Query(u, v) }

// Len returns the length of the sequence this engine was built over.
func (r *RMQ) Len() int { return r.n }
