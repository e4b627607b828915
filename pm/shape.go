package pm

// shapeKey packs a block's +-1 step pattern into a single uint64: the low
// bits encode one bit per step (1 = +1, 0 = -1), and the block's length
// occupies the high bits so blocks of different length never collide even
// if their low bits coincide. This replaces keying the shape table by the
// shape's own value slice (spec.md's fixed-width-integer design note),
// which would require slice-equality hashing; packing into an integer
// makes two blocks with the same step pattern compare equal in O(1) and
// never spuriously collide for any block length up to 41, where the step
// bits still stay below bit 40 (B = floor(lg n)/2 never exceeds 31).
func shapeKey(levels []int, start, end int) uint64 {
	length := end - start
	var bits uint64
	for j := start + 1; j < end; j++ {
		if levels[j]-levels[j-1] == 1 {
			bits |= 1 << uint(j-start-1)
		}
	}
	return uint64(length)<<40 | bits
}

// shapeValues returns the block's values normalized by subtracting the
// block's first element, so two blocks with the same step pattern produce
// byte-for-byte identical shape sequences (and so the same shapeKey).
func shapeValues(levels []int, start, end int) []int {
	base := levels[start]
	out := make([]int, end-start)
	for j := start; j < end; j++ {
		out[j-start] = levels[j] - base
	}
	return out
}
