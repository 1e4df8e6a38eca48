package junctions

/*
ISC License

Copyright (c) 2017-25, Mark Stephen Laker

Please refer to the License file in the repository root.

*/

import "cmp"

// Element constrains junction elements to types which support the six
// relational operators used by the collapse engine.
type Element interface {
	cmp.Ordered
}

// Kind tags the quantifier variant of a junction. Every junction reports
// its own kind, which callers can use for diagnostics and which the
// engine uses to pick junction-vs-junction comparison rules.
type Kind int8

const (
	KindNone Kind = iota
	KindOne
	KindAny
	KindAll
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindOne:
		return "one"
	case KindAny:
		return "any"
	case KindAll:
		return "all"
	}
	return "invalid"
}

// Junction is the common surface of the four variants All, Any, None and
// One over an element type T. The collapse hook is unexported, so the
// set of implementations is closed.
//
// All methods are read-only; a junction never changes after construction.
type Junction[T Element] interface {
	// Kind reports the quantifier variant.
	Kind() Kind
	// IsEmpty reports whether the junction has no elements.
	IsEmpty() bool
	// Len returns the number of stored elements. An ordered backend has
	// already deduplicated, so Len may be smaller than the input length.
	Len() int
	// Elements returns a view of the stored elements, in storage order:
	// ascending for the ordered backend, caller order for a view backend.
	// The slice must not be mutated.
	Elements() []T
	// Ordered reports whether the backend is sorted and deduplicated,
	// enabling short-circuit comparisons.
	Ordered() bool
	// AnyElement returns an arbitrary element. The junction must not be
	// empty.
	AnyElement() T

	// The six comparisons against a plain value on the right.
	Less(x T) bool
	LessEq(x T) bool
	Eq(x T) bool
	Ne(x T) bool
	GreaterEq(x T) bool
	Greater(x T) bool

	// collapse reduces a per-element test to a single boolean under the
	// variant's quantifier rule, short-circuiting where the bias allows.
	collapse(pass func(T) bool, b bias) bool
}

// bias records where a monotone per-element test finds its matches
// within an ascending element order. A test like (e < 7) passes for a
// prefix of the sorted elements; (e > 7) passes for a suffix. Knowing
// which end the matches cling to lets an ordered backend decide a
// comparison from one or two extremal elements.
//
// Equality tests have no positional structure, and neither does any
// test against a One-junction on the right: those always scan.
type bias int8

const (
	fullScan   bias = iota // no positional structure; test every element
	lowBiased              // matches form a prefix of the ascending order
	highBiased             // matches form a suffix of the ascending order
)

// flipped swaps the two biased directions. A None-junction on the right
// of a comparison inverts the per-element test's monotony: (e < none(R))
// holds when no element of R exceeds e, which favours large e.
func (b bias) flipped() bias {
	switch b {
	case lowBiased:
		return highBiased
	case highBiased:
		return lowBiased
	}
	return b
}

// core carries the state shared by all four variants: the storage
// strategy holding the elements.
//
// A zero core, as found in a zero-value junction like All[int]{},
// behaves like an empty junction.
type core[T Element] struct {
	store storage[T]
}

// Elements returns a read-only view of the stored elements.
func (c core[T]) Elements() []T {
	if c.store == nil {
		return nil
	}
	return c.store.Elements()
}

// IsEmpty reports whether the junction has no elements.
func (c core[T]) IsEmpty() bool {
	return c.store == nil || c.store.IsEmpty()
}

// Len returns the number of stored elements.
func (c core[T]) Len() int {
	if c.store == nil {
		return 0
	}
	return c.store.Len()
}

// Ordered reports whether the backend is sorted and deduplicated.
func (c core[T]) Ordered() bool {
	return c.store != nil && c.store.Ordered()
}

// AnyElement returns an arbitrary element of a non-empty junction.
func (c core[T]) AnyElement() T {
	assert(!c.IsEmpty(), "AnyElement called on an empty junction")
	return c.store.Elements()[0]
}

// The four variants are the only implementations of Junction.
var (
	_ Junction[int] = All[int]{}
	_ Junction[int] = Any[int]{}
	_ Junction[int] = None[int]{}
	_ Junction[int] = One[int]{}
)

// every reports whether all elements pass the test.
func every[T Element](elems []T, pass func(T) bool) bool {
	for _, e := range elems {
		if !pass(e) {
			return false
		}
	}
	return true
}

// some reports whether at least one element passes the test.
func some[T Element](elems []T, pass func(T) bool) bool {
	for _, e := range elems {
		if pass(e) {
			return true
		}
	}
	return false
}

// exactlyOne reports whether precisely one element passes the test,
// bailing out as soon as a second match appears.
func exactlyOne[T Element](elems []T, pass func(T) bool) bool {
	matches := 0
	for _, e := range elems {
		if pass(e) {
			if matches++; matches > 1 {
				return false
			}
		}
	}
	return matches == 1
}
