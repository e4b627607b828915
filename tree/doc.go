// Package tree implements the n-ary rooted tree container used as the
// common substrate for LCA queries and Cartesian-tree construction (spec
// component E).
//
// Unlike the source design this module supersedes, nodes carry no mutable
// representative-index slot: Tree is fully immutable once Builder.Finish
// returns it. The lca package instead owns a side-table keyed by NodeRef
// (see spec.md §9's redesign note and SPEC_FULL.md §3/§4.5).
//
// Nodes live in a single arena slice and are addressed by NodeRef, an
// integer index, never by pointer — so construction algorithms that grow a
// node's child list incrementally (the Cartesian-tree stack algorithm in
// package opt) never chase or invalidate pointers.
//
// Errors:
//
//	(none) — out-of-range NodeRef access is a programmer error and panics;
//	see the package's own Invariant-style checks.
package tree
