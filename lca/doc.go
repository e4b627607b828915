// Package lca implements Lowest Common Ancestor queries over a rooted
// n-ary tree.Tree by reducing to a +-1 Range Minimum Query over the tree's
// Euler tour (spec component F).
//
// Preprocessing walks the tree once, iteratively (an explicit stack of
// (node, child-index) frames, never Go call-stack recursion — spec.md §9's
// recursion note), recording the Euler tour E and level array L, and a
// side-table mapping each tree.NodeRef to one representative index into E.
// The side-table is this module's realization of spec.md §9's redesign
// note: tree.Tree carries no mutable per-node annotation, so LCA owns the
// only write-once, read-many state in the whole pipeline.
//
// Complexity: Build is O(n) time and space, n = the tree's node count;
// Query is O(1).
//
// Errors:
//
//	(none) — querying with nodes foreign to the preprocessed tree is a
//	programmer error and panics via seq.Invariant.
package lca
