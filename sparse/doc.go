// Package sparse implements the classic Sparse Table Range Minimum Query:
// O(n log n) preprocessing, O(1) query, no restriction on the input beyond
// the strict weak ordering needed to compare elements.
//
// It is used directly by callers who want O(1) query without the more
// intricate bookkeeping of pm, and internally by pm as the super-array
// engine over per-block minima (spec component C feeding component D).
//
// Complexity: Build is O(n log n) time and space; Query is O(1).
//
// Contract violations panic via seq.Invariant; see package naive's doc
// comment for the shared programmer-error policy.
package sparse
