package ordset

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Set holds elements in strictly ascending order with no duplicates.
//
// The zero Set is not ready for use; create sets through New, FromSeq
// or FromSorted.
type Set[T cmp.Ordered] struct {
	elems []T
}

// New builds a set from the given elements, copying, sorting and
// deduplicating them in O(N log N) time and O(N) space.
func New[T cmp.Ordered](elems ...T) *Set[T] {
	s := make([]T, len(elems))
	copy(s, elems)
	slices.Sort(s)
	s = slices.Compact(s)
	return &Set[T]{elems: s}
}

// FromSeq builds a set by draining an iterator range. The sequence must
// be finite.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	var s []T
	for e := range seq {
		s = append(s, e)
	}
	slices.Sort(s)
	s = slices.Compact(s)
	return &Set[T]{elems: s}
}

// FromSorted adopts an already strictly-ascending slice as the set's
// storage, skipping the sort. The slice is owned by the set afterwards
// and must not be touched by the caller again.
//
// Passing a slice that is unsorted or contains duplicates is a
// programming error and panics.
func FromSorted[T cmp.Ordered](sorted []T) *Set[T] {
	assert(strictlyAscending(sorted), "FromSorted requires strictly ascending input")
	return &Set[T]{elems: sorted}
}

func strictlyAscending[T cmp.Ordered](elems []T) bool {
	for i := 1; i < len(elems); i++ {
		if elems[i-1] >= elems[i] {
			return false
		}
	}
	return true
}

// Insert adds an element, keeping the set sorted and unique. It reports
// whether the set grew; inserting a present element is a no-op.
func (s *Set[T]) Insert(x T) bool {
	i, found := slices.BinarySearch(s.elems, x)
	if found {
		return false
	}
	s.elems = slices.Insert(s.elems, i, x)
	return true
}

// Contains reports membership via binary search in O(log N).
func (s *Set[T]) Contains(x T) bool {
	_, found := slices.BinarySearch(s.elems, x)
	return found
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.elems)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

// Elements returns the ascending element view. The slice is the set's
// own storage and must not be mutated.
func (s *Set[T]) Elements() []T {
	return s.elems
}

// All yields the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// First returns the smallest element. The set must not be empty.
func (s *Set[T]) First() T {
	assert(!s.IsEmpty(), "First called on an empty set")
	return s.elems[0]
}

// Second returns the second-smallest element. The set must hold at
// least two elements.
func (s *Set[T]) Second() T {
	assert(s.Len() >= 2, "Second called on a set with fewer than two elements")
	return s.elems[1]
}

// Penultimate returns the second-largest element. The set must hold at
// least two elements.
func (s *Set[T]) Penultimate() T {
	assert(s.Len() >= 2, "Penultimate called on a set with fewer than two elements")
	return s.elems[len(s.elems)-2]
}

// Last returns the largest element. The set must not be empty.
func (s *Set[T]) Last() T {
	assert(!s.IsEmpty(), "Last called on an empty set")
	return s.elems[len(s.elems)-1]
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte('}')
	return sb.String()
}
