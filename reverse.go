package junctions

// Reverse comparisons: a plain value on the left, a junction on the
// right. Each is rewritten into the canonical junction-on-left form
// with the operator mirrored (< and > swap, <= and >= swap, == and !=
// stay), then answered by the junction's own collapse rule. Nothing
// here assumes that, say, !(j.Less(v)) equals j.GreaterEq(v) — that
// equivalence does not hold for junctions.

// ValueLess reports v < j.
func ValueLess[T Element](v T, j Junction[T]) bool {
	return j.Greater(v)
}

// ValueLessEq reports v <= j.
func ValueLessEq[T Element](v T, j Junction[T]) bool {
	return j.GreaterEq(v)
}

// ValueEq reports v == j.
func ValueEq[T Element](v T, j Junction[T]) bool {
	return j.Eq(v)
}

// ValueNe reports v != j.
func ValueNe[T Element](v T, j Junction[T]) bool {
	return j.Ne(v)
}

// ValueGreaterEq reports v >= j.
func ValueGreaterEq[T Element](v T, j Junction[T]) bool {
	return j.LessEq(v)
}

// ValueGreater reports v > j.
func ValueGreater[T Element](v T, j Junction[T]) bool {
	return j.Less(v)
}
