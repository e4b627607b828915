// Package seq defines the borrowed, random-access input contract shared by
// the generic RMQ engines in this module (naive, sparse, opt; pm takes a
// plain []int instead), plus the small set of helpers (comparator type,
// invariant check) that let those engines stay generic without runtime
// dispatch.
//
// Sequence[V] is a two-method view: Len() and At(i). Callers may wrap a
// plain slice with Slice[V], or implement Sequence[V] directly over their
// own backing storage (the engines never copy it and never retain a mutable
// alias beyond the lifetime of Build's caller-owned argument).
//
// Errors:
//
//	(none) — this package only panics on contract violations via Invariant;
//	see Invariant's doc comment for the programmer-error policy shared by
//	every engine package.
package seq
