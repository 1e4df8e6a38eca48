package junctions

import (
	"iter"

	"github.com/markuslaker/p6junctions/ordset"
)

// Any is a junction that collapses to true when a comparison holds for
// at least one element. An empty Any-junction is false under every
// comparison.
type Any[T Element] struct {
	core[T]
}

// None is a junction that collapses to true when a comparison holds
// for no element: the logical negation of Any over the same elements.
// An empty None-junction is vacuously true under every comparison.
type None[T Element] struct {
	core[T]
}

// AnyOf builds an Any-junction over a copy of the given elements,
// deduplicated and sorted into an ordered backend.
func AnyOf[T Element](elems ...T) Any[T] {
	return Any[T]{core[T]{store: newSortedStore(elems...)}}
}

// AnySeq builds an Any-junction by draining an iterator range into an
// ordered backend. The sequence must be finite.
func AnySeq[T Element](seq iter.Seq[T]) Any[T] {
	return Any[T]{core[T]{store: sortedStore[T]{set: ordset.FromSeq(seq)}}}
}

// AnyRef builds an Any-junction that aliases the caller's slice without
// copying, sorting or deduplicating it. The caller must keep the
// backing array alive and unmutated for the junction's lifetime.
func AnyRef[T Element](elems []T) Any[T] {
	return Any[T]{core[T]{store: viewStore[T]{view: elems}}}
}

// AnyFromSet adopts a pre-sorted unique set directly as the ordered
// backend, skipping the sort.
func AnyFromSet[T Element](set *ordset.Set[T]) Any[T] {
	assert(set != nil, "AnyFromSet requires a non-nil set")
	return Any[T]{core[T]{store: sortedStore[T]{set: set}}}
}

// NoneOf builds a None-junction over a copy of the given elements,
// deduplicated and sorted into an ordered backend.
func NoneOf[T Element](elems ...T) None[T] {
	return None[T]{core[T]{store: newSortedStore(elems...)}}
}

// NoneSeq builds a None-junction by draining an iterator range into an
// ordered backend. The sequence must be finite.
func NoneSeq[T Element](seq iter.Seq[T]) None[T] {
	return None[T]{core[T]{store: sortedStore[T]{set: ordset.FromSeq(seq)}}}
}

// NoneRef builds a None-junction that aliases the caller's slice
// without copying, sorting or deduplicating it. The caller must keep
// the backing array alive and unmutated for the junction's lifetime.
func NoneRef[T Element](elems []T) None[T] {
	return None[T]{core[T]{store: viewStore[T]{view: elems}}}
}

// NoneFromSet adopts a pre-sorted unique set directly as the ordered
// backend, skipping the sort.
func NoneFromSet[T Element](set *ordset.Set[T]) None[T] {
	assert(set != nil, "NoneFromSet requires a non-nil set")
	return None[T]{core[T]{store: sortedStore[T]{set: set}}}
}

// anyHolds is the quantifier rule shared by Any and None: true iff at
// least one element passes. With an ordered backend and a biased test,
// the most favourable element decides on its own: if the matches of a
// lowBiased test form a prefix, some element passes exactly when the
// first element does. An empty collection holds for no test.
//
// None inverts the result; everything else is identical, including the
// short-circuit. Taking the core rather than the raw storage keeps a
// zero-value junction, whose store is nil, on the empty-junction path.
func anyHolds[T Element](c core[T], pass func(T) bool, b bias) bool {
	if s, ok := sorted(c.store); ok && b != fullScan {
		if s.IsEmpty() {
			return false
		}
		if b == lowBiased {
			return pass(s.First())
		}
		return pass(s.Last())
	}
	return some(c.Elements(), pass)
}

// Kind reports KindAny.
func (j Any[T]) Kind() Kind {
	return KindAny
}

// Less reports whether at least one element is less than x.
func (j Any[T]) Less(x T) bool {
	return j.collapse(func(e T) bool { return e < x }, lowBiased)
}

// LessEq reports whether at least one element is at most x.
func (j Any[T]) LessEq(x T) bool {
	return j.collapse(func(e T) bool { return e <= x }, lowBiased)
}

// Eq reports whether at least one element equals x.
func (j Any[T]) Eq(x T) bool {
	return j.collapse(func(e T) bool { return e == x }, fullScan)
}

// Ne reports whether at least one element differs from x. This is not
// the negation of Eq: for any(1, 2), both Eq(2) and Ne(2) are true.
func (j Any[T]) Ne(x T) bool {
	return j.collapse(func(e T) bool { return e != x }, fullScan)
}

// GreaterEq reports whether at least one element is at least x. Not
// the negation of Less: for any(1, 2), both Less(2) and GreaterEq(2)
// are true.
func (j Any[T]) GreaterEq(x T) bool {
	return j.collapse(func(e T) bool { return e >= x }, highBiased)
}

// Greater reports whether at least one element is greater than x.
func (j Any[T]) Greater(x T) bool {
	return j.collapse(func(e T) bool { return e > x }, highBiased)
}

func (j Any[T]) collapse(pass func(T) bool, b bias) bool {
	return anyHolds(j.core, pass, b)
}

// Apply returns a new Any-junction whose elements are the images of
// this junction's elements under f, deduplicated into a fresh ordered
// backend regardless of this junction's storage strategy.
func (j Any[T]) Apply(f func(T) T) Any[T] {
	return Any[T]{mapped(j.core, f)}
}

func (j Any[T]) String() string {
	return junctionString(KindAny, j.Elements())
}

// Kind reports KindNone.
func (j None[T]) Kind() Kind {
	return KindNone
}

// Less reports whether no element is less than x.
func (j None[T]) Less(x T) bool {
	return j.collapse(func(e T) bool { return e < x }, lowBiased)
}

// LessEq reports whether no element is at most x.
func (j None[T]) LessEq(x T) bool {
	return j.collapse(func(e T) bool { return e <= x }, lowBiased)
}

// Eq reports whether no element equals x.
func (j None[T]) Eq(x T) bool {
	return j.collapse(func(e T) bool { return e == x }, fullScan)
}

// Ne reports whether no element differs from x.
func (j None[T]) Ne(x T) bool {
	return j.collapse(func(e T) bool { return e != x }, fullScan)
}

// GreaterEq reports whether no element is at least x.
func (j None[T]) GreaterEq(x T) bool {
	return j.collapse(func(e T) bool { return e >= x }, highBiased)
}

// Greater reports whether no element is greater than x.
func (j None[T]) Greater(x T) bool {
	return j.collapse(func(e T) bool { return e > x }, highBiased)
}

func (j None[T]) collapse(pass func(T) bool, b bias) bool {
	return !anyHolds(j.core, pass, b)
}

// Apply returns a new None-junction whose elements are the images of
// this junction's elements under f, deduplicated into a fresh ordered
// backend regardless of this junction's storage strategy.
func (j None[T]) Apply(f func(T) T) None[T] {
	return None[T]{mapped(j.core, f)}
}

func (j None[T]) String() string {
	return junctionString(KindNone, j.Elements())
}
