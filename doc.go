/*
Package junctions brings Perl 6 style junctions to Go.

# Junctions

A junction is a single value which stands for a whole collection of
elements, and which collapses to a plain boolean as soon as it is
compared against something. Four variants exist, each with its own
quantifier semantics:

	all( 1, 2, 3)   true iff a comparison holds for every element
	any( 1, 2, 3)   true iff a comparison holds for at least one element
	none(1, 2, 3)   true iff a comparison holds for no element
	one( 1, 2, 3)   true iff a comparison holds for exactly one element

Junctions let callers test several values at once without spelling out
the loop:

	digits := []int{1, 4, 2, 8, 5, 7}
	junctions.AllOf(digits...).GreaterEq(1)     // every digit is >= 1
	junctions.AnyOf(digits...).Greater(5)       // some digit is > 5
	junctions.OneOf(digits...).Eq(4)            // exactly one digit is 4
	junctions.NoneOf(digits...).Eq(3)           // no digit is 3

An empty junction follows the usual vacuous-truth rules: every
comparison is true for All and None, false for Any and One.

# Storage strategies

Each junction is backed by one of two storage strategies, chosen at
construction and fixed for the junction's lifetime.

The copying constructors (AllOf, AllSeq and friends) deduplicate the
input and sort it ascending into storage owned by the junction. The
sorted order lets many comparisons inspect only an extremal element
instead of scanning: in

	junctions.AllOf(2, 3, 5, 9).Greater(n)

only the smallest element need be compared against n. Deduplication
gives set semantics: one(1, 1, 1) == 1 holds, because the duplicates
collapse to a single logical element.

The aliasing constructors (AllRef and friends) instead borrow the
caller's slice as-is, in caller order, with neither copying nor
deduplication. Construction is O(1), but every comparison scans.
The caller must keep the backing array alive and unmutated for as long
as the junction is used; the junction holds a view, not a copy, so
mutating the array changes the junction's behaviour.

Results are identical either way for duplicate-free input. The choice
of backend is purely a time/space trade-off.

# Comparisons

Junctions compare against plain values via the six methods Less,
LessEq, Eq, Ne, GreaterEq and Greater, and against other junctions via
the package-level functions of the same names. Note that Ne is not the
negation of Eq: both AllOf(1, 2).Eq(2) and AllOf(1, 2).Ne(2) are
false, since neither "every element equals 2" nor "every element
differs from 2" holds for {1, 2}.

Once constructed, a junction is an immutable value and safe for
concurrent readers, subject to the aliasing contract above.

_________________________________________________________________________

ISC License

Copyright (c) 2017-25, Mark Stephen Laker

Permission to use, copy, modify, and/or distribute this software for any
purpose with or without fee is hereby granted, provided that the above
copyright notice and this permission notice appear in all copies.

THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
*/
package junctions

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// assert flags a programming error. There are no recoverable errors in
// this package: a comparison of a well-formed junction always yields a
// boolean, and precondition violations panic.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
