package junctions

import "github.com/markuslaker/p6junctions/ordset"

// storage is the backend holding a junction's elements. Two strategies
// exist: sortedStore owns a deduplicated ascending snapshot of the
// input, viewStore borrows a caller-owned slice as-is. The strategy is
// chosen once, at construction, and never changes.
type storage[T Element] interface {
	Elements() []T
	IsEmpty() bool
	Len() int
	Ordered() bool
}

// sortedStore owns its elements, deduplicated and sorted ascending at
// construction in O(N log N). The known order is what enables the
// extremal-element short-circuits in the variants' collapse rules.
type sortedStore[T Element] struct {
	set *ordset.Set[T]
}

func newSortedStore[T Element](elems ...T) sortedStore[T] {
	return sortedStore[T]{set: ordset.New(elems...)}
}

func (s sortedStore[T]) Elements() []T { return s.set.Elements() }
func (s sortedStore[T]) IsEmpty() bool { return s.set.IsEmpty() }
func (s sortedStore[T]) Len() int      { return s.set.Len() }
func (s sortedStore[T]) Ordered() bool { return true }

// Positional accessors, O(1) after construction. Preconditions are the
// set's: non-empty for First/Last, at least two elements for
// Second/Penultimate. Violations panic.

func (s sortedStore[T]) First() T       { return s.set.First() }
func (s sortedStore[T]) Second() T      { return s.set.Second() }
func (s sortedStore[T]) Penultimate() T { return s.set.Penultimate() }
func (s sortedStore[T]) Last() T        { return s.set.Last() }

// viewStore borrows a caller-owned slice without copying, sorting or
// deduplicating it. Construction is O(1) with no extra space.
//
// The slice header is copied but the backing array is shared. The
// caller must keep that array alive for as long as the junction is
// used, and must not mutate it while the junction is live: mutation
// changes the junction's behaviour, and there is no detection of
// either violation.
type viewStore[T Element] struct {
	view []T
}

func (s viewStore[T]) Elements() []T { return s.view }
func (s viewStore[T]) IsEmpty() bool { return len(s.view) == 0 }
func (s viewStore[T]) Len() int      { return len(s.view) }
func (s viewStore[T]) Ordered() bool { return false }

// sorted returns the ordered backend of a junction, if it has one.
// Collapse rules use this to decide whether short-circuiting is legal.
func sorted[T Element](st storage[T]) (sortedStore[T], bool) {
	s, ok := st.(sortedStore[T])
	return s, ok
}
