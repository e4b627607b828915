// Package naive implements the O(n^2)-space, O(1)-query Range Minimum Query
// table: a full dynamic-programming table over every interval [i, i+l+1).
//
// It exists primarily as the per-block-shape primitive the pm package keys
// its shape table by (blocks are small, so the quadratic space is cheap per
// block), but it is also exported directly for callers who want the
// simplest possible RMQ over a small sequence without the log-n factor of
// sparse or the bookkeeping of pm.
//
// Complexity: Build is O(n^2) time and space; Query is O(1).
//
// Contract violations (empty range, out-of-bounds position, a zero-value
// RMQ[V] that was never passed through Build) panic via seq.Invariant
// rather than returning an error: see seq.Invariant's doc comment for the
// programmer-error policy shared by every engine.
package naive
