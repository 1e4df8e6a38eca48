package junctions

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestApplyPreservesVariant(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	incremented := AllOf(1, 2, 3).Apply(func(n int) int { return n + 1 })
	if incremented.Kind() != KindAll {
		t.Errorf("Apply should preserve the All variant")
	}
	if !slices.Equal(incremented.Elements(), []int{2, 3, 4}) {
		t.Errorf("expected elements {2, 3, 4}, got %v", incremented.Elements())
	}
	if !incremented.GreaterEq(2) || incremented.GreaterEq(3) {
		t.Errorf("all{2, 3, 4} should be >= 2 but not >= 3")
	}
}

func TestApplyOnViewYieldsOrderedResult(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	src := OneRef([]int{3, 1, 2})
	doubled := src.Apply(func(n int) int { return 2 * n })
	if !doubled.Ordered() {
		t.Errorf("a transform result should always carry an ordered backend")
	}
	if !slices.Equal(doubled.Elements(), []int{2, 4, 6}) {
		t.Errorf("expected elements {2, 4, 6}, got %v", doubled.Elements())
	}
}

func TestApplyDeduplicatesCollidingImages(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	squared := OneOf(-2, 2, 3).Apply(func(n int) int { return n * n })
	if !slices.Equal(squared.Elements(), []int{4, 9}) {
		t.Errorf("expected colliding squares to collapse, got %v", squared.Elements())
	}
	if !squared.Eq(4) {
		t.Errorf("one{4, 9} == 4 should hold after the collision collapses")
	}
}

func TestMapChangesElementType(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	allNames := AllOf("Fred", "Jim", "Sheila")
	allLengths := Map(allNames, func(s string) int { return len(s) })
	if allLengths.Kind() != KindAll {
		t.Errorf("Map should preserve the variant, got %s", allLengths.Kind())
	}
	if !allLengths.Greater(2) {
		t.Errorf("every name is longer than 2 characters")
	}
	if allLengths.Greater(3) {
		t.Errorf("not every name is longer than 3 characters: Jim isn't")
	}
}

func TestMapPreservesDynamicVariant(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sources := []Junction[int]{
		AllOf(1, 2),
		AnyOf(1, 2),
		NoneOf(1, 2),
		OneOf(1, 2),
		AnyRef([]int{2, 1}),
	}
	for _, src := range sources {
		dst := Map(src, func(n int) int { return n * 10 })
		if dst.Kind() != src.Kind() {
			t.Errorf("Map turned a %s junction into a %s junction", src.Kind(), dst.Kind())
		}
		if !dst.Ordered() {
			t.Errorf("Map of a %s junction should yield an ordered backend", src.Kind())
		}
	}
}

func TestInnerDigitsSample(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	digits := []int{1, 4, 2, 8, 5, 7}
	allInner := AllOf(digits[1 : len(digits)-1]...)
	if !allInner.Greater(1) {
		t.Errorf("all inner digits should exceed 1")
	}
	decremented := allInner.Apply(func(n int) int { return n - 1 })
	if !decremented.GreaterEq(1) {
		t.Errorf("all decremented inner digits should be >= 1")
	}
	if decremented.GreaterEq(2) {
		t.Errorf("not all decremented inner digits are >= 2")
	}
}
