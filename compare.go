package junctions

// Junction-vs-junction comparisons.
//
// Comparing two junctions nests the quantifiers: the left variant's
// collapse rule is applied to the per-element test "does this element,
// compared against the right junction, collapse to true?" — which is
// itself a scalar-style comparison answered by the right junction with
// the operands swapped. So
//
//	Greater(AllOf(2, 3, 4), AnyOf(1, 5, 9))
//
// asks whether every left element exceeds at least one right element.
//
// Short-circuiting is the left junction's business and follows the same
// rules as for a plain value on the right, with two corrections derived
// from the right junction's kind. A None-junction on the right inverts
// the test's monotony — (e < none(R)) holds when no element of R
// exceeds e, which favours large e — so the biased direction flips. A
// One-junction on the right has no monotony at all: which elements
// match cannot be predicted from their position, so the comparison
// degrades to a full scan.

// Less reports whether lhs collapses to true when each element is
// compared, via <, against rhs.
func Less[T Element](lhs, rhs Junction[T]) bool {
	return lhs.collapse(func(e T) bool { return rhs.Greater(e) }, rhsBias(rhs, lowBiased))
}

// LessEq reports whether lhs collapses to true when each element is
// compared, via <=, against rhs.
func LessEq[T Element](lhs, rhs Junction[T]) bool {
	return lhs.collapse(func(e T) bool { return rhs.GreaterEq(e) }, rhsBias(rhs, lowBiased))
}

// Eq reports whether lhs collapses to true when each element is
// compared, via ==, against rhs. Equality never short-circuits.
func Eq[T Element](lhs, rhs Junction[T]) bool {
	return lhs.collapse(func(e T) bool { return rhs.Eq(e) }, fullScan)
}

// Ne reports whether lhs collapses to true when each element is
// compared, via !=, against rhs. Not the negation of Eq.
func Ne[T Element](lhs, rhs Junction[T]) bool {
	return lhs.collapse(func(e T) bool { return rhs.Ne(e) }, fullScan)
}

// GreaterEq reports whether lhs collapses to true when each element is
// compared, via >=, against rhs.
func GreaterEq[T Element](lhs, rhs Junction[T]) bool {
	return lhs.collapse(func(e T) bool { return rhs.LessEq(e) }, rhsBias(rhs, highBiased))
}

// Greater reports whether lhs collapses to true when each element is
// compared, via >, against rhs.
func Greater[T Element](lhs, rhs Junction[T]) bool {
	return lhs.collapse(func(e T) bool { return rhs.Less(e) }, rhsBias(rhs, highBiased))
}

// rhsBias corrects the natural bias of an operator for the kind of
// junction on the right-hand side.
func rhsBias[T Element](rhs Junction[T], natural bias) bias {
	switch rhs.Kind() {
	case KindOne:
		return fullScan
	case KindNone:
		return natural.flipped()
	}
	return natural
}
