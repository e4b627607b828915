// Package rmqlca is an O(1)-query Range Minimum Query and Lowest Common
// Ancestor library: four cooperating preprocessing engines that build up,
// each from the last, to the Bender-Farach-Colton <O(n), O(1)> result for
// arbitrary RMQ.
//
// What:
//
//   - naive:  full DP table, O(n^2) build, O(1) query — the per-block
//     primitive pm is built on.
//   - sparse: classic sparse table, O(n log n) build, O(1) query.
//   - pm:     +-1 RMQ (block decomposition + shape memoization), O(n)
//     build, O(1) query, specialized to +-1-shaped integer sequences.
//   - tree:   arena-backed n-ary rooted tree container.
//   - lca:    Lowest Common Ancestor via a +-1 RMQ over the tree's Euler
//     tour, O(n) build, O(1) query.
//   - opt:    general RMQ over any comparable sequence, via the Cartesian
//     tree + lca reduction, O(n) build, O(1) query.
//
// Why:
//
//   - RMQ/LCA underlie suffix-array longest-common-prefix queries, level-
//     ancestor queries, and tree-distance queries in O(1) after one linear
//     pass — the kind of preprocessing that pays for itself the moment a
//     query path runs more than once.
//
// Quick example (general RMQ over an arbitrary int sequence):
//
//	r := opt.Build[int](seq.Slice[int]{3, 1, 2, 1, 4, 5}, seq.OrderedLess[int]())
//	pos := r.Query(2, 6) // -> 3 (value 1)
//
// Every package is independently usable; opt is the only one that needs
// all the others wired together.
package rmqlca
