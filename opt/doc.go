// Package opt implements general Range Minimum Query over an arbitrary
// comparable sequence by reducing it to Lowest Common Ancestor on the
// sequence's Cartesian tree (spec component G).
//
// Build runs the linear-time rightmost-path stack algorithm to construct
// the Cartesian tree directly on a tree.Builder's arena (the stack holds
// tree.NodeRef values, never pointers — spec.md §9's redesign note,
// satisfied without a separate binary-arena type since tree.Tree's own
// arena is already pointer-free and move-free), then delegates queries to
// package lca over that tree.
//
// Complexity: Build is O(n) time and space; Query is O(1).
//
// Contract violations (empty input, out-of-bounds query) panic via
// seq.Invariant.
package opt
