package junctions

import (
	"iter"

	"github.com/markuslaker/p6junctions/ordset"
)

// One is a junction that collapses to true when a comparison holds for
// exactly one element. An empty One-junction is false under every
// comparison, and so is one with two or more matching elements:
// one(1, 2, 3, 4).Greater(2) is false, because both 3 and 4 qualify.
type One[T Element] struct {
	core[T]
}

// OneOf builds a One-junction over a copy of the given elements,
// deduplicated and sorted into an ordered backend. Deduplication
// happens before counting: OneOf(1, 1, 1).Eq(1) is true, because the
// duplicates collapse to a single logical element.
func OneOf[T Element](elems ...T) One[T] {
	return One[T]{core[T]{store: newSortedStore(elems...)}}
}

// OneSeq builds a One-junction by draining an iterator range into an
// ordered backend. The sequence must be finite.
func OneSeq[T Element](seq iter.Seq[T]) One[T] {
	return One[T]{core[T]{store: sortedStore[T]{set: ordset.FromSeq(seq)}}}
}

// OneRef builds a One-junction that aliases the caller's slice without
// copying, sorting or deduplicating it. The caller must keep the
// backing array alive and unmutated for the junction's lifetime. Note
// that without deduplication, duplicates count separately:
// OneRef([]int{1, 1}).Eq(1) is false.
func OneRef[T Element](elems []T) One[T] {
	return One[T]{core[T]{store: viewStore[T]{view: elems}}}
}

// OneFromSet adopts a pre-sorted unique set directly as the ordered
// backend, skipping the sort.
func OneFromSet[T Element](set *ordset.Set[T]) One[T] {
	assert(set != nil, "OneFromSet requires a non-nil set")
	return One[T]{core[T]{store: sortedStore[T]{set: set}}}
}

// Kind reports KindOne.
func (j One[T]) Kind() Kind {
	return KindOne
}

// Less reports whether exactly one element is less than x.
func (j One[T]) Less(x T) bool {
	return j.collapse(func(e T) bool { return e < x }, lowBiased)
}

// LessEq reports whether exactly one element is at most x.
func (j One[T]) LessEq(x T) bool {
	return j.collapse(func(e T) bool { return e <= x }, lowBiased)
}

// Eq reports whether exactly one element equals x.
func (j One[T]) Eq(x T) bool {
	return j.collapse(func(e T) bool { return e == x }, fullScan)
}

// Ne reports whether exactly one element differs from x.
func (j One[T]) Ne(x T) bool {
	return j.collapse(func(e T) bool { return e != x }, fullScan)
}

// GreaterEq reports whether exactly one element is at least x.
func (j One[T]) GreaterEq(x T) bool {
	return j.collapse(func(e T) bool { return e >= x }, highBiased)
}

// Greater reports whether exactly one element is greater than x.
func (j One[T]) Greater(x T) bool {
	return j.collapse(func(e T) bool { return e > x }, highBiased)
}

// collapse applies One's quantifier rule: true iff exactly one element
// passes. With an ordered backend and a biased test, the matching run
// clings to one end of the sorted order, so two probes decide: the
// extreme element must pass and its neighbour must not. For a
// lowBiased test that means the first element and the second; for a
// highBiased test, the last and the penultimate. A single-element
// junction has no neighbour to check, and an empty one is false.
func (j One[T]) collapse(pass func(T) bool, b bias) bool {
	if s, ok := sorted(j.store); ok && b != fullScan {
		if s.IsEmpty() {
			return false
		}
		if b == lowBiased {
			return pass(s.First()) && !(s.Len() >= 2 && pass(s.Second()))
		}
		return pass(s.Last()) && !(s.Len() >= 2 && pass(s.Penultimate()))
	}
	return exactlyOne(j.Elements(), pass)
}

// Apply returns a new One-junction whose elements are the images of
// this junction's elements under f, deduplicated into a fresh ordered
// backend regardless of this junction's storage strategy.
func (j One[T]) Apply(f func(T) T) One[T] {
	return One[T]{mapped(j.core, f)}
}

func (j One[T]) String() string {
	return junctionString(KindOne, j.Elements())
}
