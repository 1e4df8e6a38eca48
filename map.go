package junctions

import "github.com/markuslaker/p6junctions/ordset"

// mapped applies f to every element and collects the images into a
// fresh ordered backend. The result is always sorted and deduplicated,
// whatever the source junction's storage strategy: images may collide
// even when the sources are distinct, and set semantics require the
// collisions to collapse.
func mapped[S, T Element](c core[S], f func(S) T) core[T] {
	set := ordset.New[T]()
	for _, e := range c.Elements() {
		set.Insert(f(e))
	}
	return core[T]{store: sortedStore[T]{set: set}}
}

// Map returns a new junction of the same variant as j whose elements
// are the images of j's elements under f. The result always carries a
// fresh ordered backend, independent of j's storage strategy.
//
// For a same-type transform the variants' Apply methods avoid the
// interface round-trip.
func Map[S, R Element](j Junction[S], f func(S) R) Junction[R] {
	T().Debugf("mapping %s junction of %d element(s)", j.Kind(), j.Len())
	set := ordset.New[R]()
	for _, e := range j.Elements() {
		set.Insert(f(e))
	}
	switch j.Kind() {
	case KindAll:
		return AllFromSet(set)
	case KindAny:
		return AnyFromSet(set)
	case KindNone:
		return NoneFromSet(set)
	case KindOne:
		return OneFromSet(set)
	}
	assert(false, "Map called on a junction of unknown kind")
	return nil
}

// ToAll rebuilds j's elements into an All-junction with a fresh
// ordered backend.
func ToAll[T Element](j Junction[T]) All[T] {
	return AllOf(j.Elements()...)
}

// ToAny rebuilds j's elements into an Any-junction with a fresh
// ordered backend.
func ToAny[T Element](j Junction[T]) Any[T] {
	return AnyOf(j.Elements()...)
}

// ToNone rebuilds j's elements into a None-junction with a fresh
// ordered backend.
func ToNone[T Element](j Junction[T]) None[T] {
	return NoneOf(j.Elements()...)
}

// ToOne rebuilds j's elements into a One-junction with a fresh ordered
// backend.
func ToOne[T Element](j Junction[T]) One[T] {
	return OneOf(j.Elements()...)
}
