/*
Package ordset provides a sorted, deduplicated element set: the engine
behind the ordered storage strategy for junctions.

The package is intentionally not a general-purpose container. It is
specialized for build-once, read-many snapshots: a set is populated at
construction (or incrementally while assembling a transform result) and
then queried. Queries rely on two invariants, established at
construction and never relaxed:

  - elements are in strictly ascending order,
  - no element appears twice.

Those invariants make the positional accessors First, Second,
Penultimate and Last O(1), which is what the junction collapse engine
needs for its extremal-element short-circuits.

Positional accessors have preconditions (non-empty, or at least two
elements); violating one is a programming error and panics.

# ISC License

Copyright (c) 2017-25, Mark Stephen Laker

Please refer to the License file in the repository root.
*/
package ordset

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
