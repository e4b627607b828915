// Package pm implements the Bender-Farach-Colton +-1 Range Minimum Query:
// O(n) preprocessing, O(1) query, specialized to sequences whose consecutive
// elements differ by exactly +1 or -1 (spec component D).
//
// Unlike naive and sparse, pm is not generic: its values are always the
// integer depths of an Euler tour (or any other caller-supplied +-1-shaped
// []int), so there is exactly one relevant instantiation and genericizing
// it would add a type parameter with no second caller.
//
// Preprocessing decomposes the input into blocks of size B = max(1,
// floor(lg n)/2), records each block's minimum in a super array, runs a
// sparse-table RMQ (component C) over that super array, and memoizes a
// naive RMQ (component B) per distinct block *shape* (the block's values
// normalized by subtracting its first element) so the O(sqrt(n)) distinct
// shapes carry the only O(B^2) tables in the whole structure.
//
// Complexity: Build is O(n) time and space; Query is O(1).
//
// Contract violations (empty input, an input failing the +-1 property,
// out-of-bounds query) panic via seq.Invariant.
package pm
