package junctions

/*
ISC License

Copyright (c) 2017-25, Mark Stephen Laker

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/markuslaker/p6junctions/ordset"
)

// All is a junction that collapses to true when a comparison holds for
// every element. An empty All-junction is vacuously true under every
// comparison.
type All[T Element] struct {
	core[T]
}

// AllOf builds an All-junction over a copy of the given elements,
// deduplicated and sorted into an ordered backend.
func AllOf[T Element](elems ...T) All[T] {
	return All[T]{core[T]{store: newSortedStore(elems...)}}
}

// AllSeq builds an All-junction by draining an iterator range into an
// ordered backend. The sequence must be finite.
func AllSeq[T Element](seq iter.Seq[T]) All[T] {
	return All[T]{core[T]{store: sortedStore[T]{set: ordset.FromSeq(seq)}}}
}

// AllRef builds an All-junction that aliases the caller's slice without
// copying, sorting or deduplicating it. The caller must keep the
// backing array alive and unmutated for the junction's lifetime.
func AllRef[T Element](elems []T) All[T] {
	return All[T]{core[T]{store: viewStore[T]{view: elems}}}
}

// AllFromSet adopts a pre-sorted unique set directly as the ordered
// backend, skipping the sort. The set is owned by the junction
// afterwards and must not be mutated by the caller.
func AllFromSet[T Element](set *ordset.Set[T]) All[T] {
	assert(set != nil, "AllFromSet requires a non-nil set")
	return All[T]{core[T]{store: sortedStore[T]{set: set}}}
}

// Kind reports KindAll.
func (j All[T]) Kind() Kind {
	return KindAll
}

// Less reports whether every element is less than x.
func (j All[T]) Less(x T) bool {
	return j.collapse(func(e T) bool { return e < x }, lowBiased)
}

// LessEq reports whether every element is at most x.
func (j All[T]) LessEq(x T) bool {
	return j.collapse(func(e T) bool { return e <= x }, lowBiased)
}

// Eq reports whether every element equals x.
func (j All[T]) Eq(x T) bool {
	return j.collapse(func(e T) bool { return e == x }, fullScan)
}

// Ne reports whether every element differs from x. This is not the
// negation of Eq: for all(1, 2), both Eq(2) and Ne(2) are false.
func (j All[T]) Ne(x T) bool {
	return j.collapse(func(e T) bool { return e != x }, fullScan)
}

// GreaterEq reports whether every element is at least x. Not the
// negation of Less: for all(1, 2), both Less(2) and GreaterEq(2) are
// false.
func (j All[T]) GreaterEq(x T) bool {
	return j.collapse(func(e T) bool { return e >= x }, highBiased)
}

// Greater reports whether every element is greater than x.
func (j All[T]) Greater(x T) bool {
	return j.collapse(func(e T) bool { return e > x }, highBiased)
}

// collapse applies All's quantifier rule: true iff every element
// passes. With an ordered backend and a biased test, the least
// favourable element decides on its own: if the matches of a lowBiased
// test form a prefix, the whole junction passes exactly when the last
// element does. An empty junction is vacuously true.
func (j All[T]) collapse(pass func(T) bool, b bias) bool {
	if s, ok := sorted(j.store); ok && b != fullScan {
		if s.IsEmpty() {
			return true
		}
		if b == lowBiased {
			return pass(s.Last())
		}
		return pass(s.First())
	}
	return every(j.Elements(), pass)
}

// Apply returns a new All-junction whose elements are the images of
// this junction's elements under f, deduplicated into a fresh ordered
// backend regardless of this junction's storage strategy.
func (j All[T]) Apply(f func(T) T) All[T] {
	return All[T]{mapped(j.core, f)}
}

func (j All[T]) String() string {
	return junctionString(KindAll, j.Elements())
}
