package ordset

import (
	"slices"
	"testing"
)

func TestNewSortsAndDeduplicates(t *testing.T) {
	s := New(3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5)
	want := []int{1, 2, 3, 4, 5, 6, 9}
	if !slices.Equal(s.Elements(), want) {
		t.Errorf("expected elements %v, got %v", want, s.Elements())
	}
	if s.Len() != len(want) {
		t.Errorf("expected Len() = %d, got %d", len(want), s.Len())
	}
}

func TestNewEmpty(t *testing.T) {
	s := New[int]()
	if !s.IsEmpty() {
		t.Errorf("expected empty set, got %v", s.Elements())
	}
}

func TestFromSeq(t *testing.T) {
	src := New(2, 7, 1, 8, 2, 8)
	s := FromSeq(src.All())
	if !slices.Equal(s.Elements(), []int{1, 2, 7, 8}) {
		t.Errorf("unexpected elements %v", s.Elements())
	}
}

func TestFromSortedAdoptsSlice(t *testing.T) {
	input := []int{1, 2, 3}
	s := FromSorted(input)
	if !slices.Equal(s.Elements(), input) {
		t.Errorf("unexpected elements %v", s.Elements())
	}
	if &s.Elements()[0] != &input[0] {
		t.Errorf("expected FromSorted to adopt the slice, but it copied")
	}
}

func TestFromSortedRejectsUnsortedInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for unsorted input")
		}
	}()
	FromSorted([]int{1, 3, 2})
}

func TestFromSortedRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for duplicated input")
		}
	}()
	FromSorted([]int{1, 2, 2, 3})
}

func TestInsertKeepsOrderAndUniqueness(t *testing.T) {
	s := New[int]()
	for _, n := range []int{5, 1, 3, 5, 1, 4} {
		s.Insert(n)
	}
	if !slices.Equal(s.Elements(), []int{1, 3, 4, 5}) {
		t.Errorf("unexpected elements %v", s.Elements())
	}
	if s.Insert(3) {
		t.Errorf("inserting a present element should report false")
	}
	if !s.Insert(2) {
		t.Errorf("inserting a new element should report true")
	}
	if !slices.Equal(s.Elements(), []int{1, 2, 3, 4, 5}) {
		t.Errorf("unexpected elements after insert: %v", s.Elements())
	}
}

func TestContains(t *testing.T) {
	s := New(10, 20, 30)
	for _, n := range []int{10, 20, 30} {
		if !s.Contains(n) {
			t.Errorf("expected set to contain %d", n)
		}
	}
	for _, n := range []int{5, 15, 35} {
		if s.Contains(n) {
			t.Errorf("expected set not to contain %d", n)
		}
	}
}

func TestPositionalAccessors(t *testing.T) {
	s := New(4, 2, 9, 7)
	if s.First() != 2 || s.Second() != 4 || s.Penultimate() != 7 || s.Last() != 9 {
		t.Errorf("positional accessors wrong for %v: %d %d %d %d",
			s.Elements(), s.First(), s.Second(), s.Penultimate(), s.Last())
	}
}

func TestPositionalPreconditionsPanic(t *testing.T) {
	cases := []struct {
		name string
		call func()
	}{
		{"First on empty", func() { New[int]().First() }},
		{"Last on empty", func() { New[int]().Last() }},
		{"Second on singleton", func() { New(1).Second() }},
		{"Penultimate on singleton", func() { New(1).Penultimate() }},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected a panic", c.name)
				}
			}()
			c.call()
		}()
	}
}

func TestAllStopsEarly(t *testing.T) {
	s := New(1, 2, 3, 4)
	var seen []int
	for e := range s.All() {
		seen = append(seen, e)
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("expected iteration to stop after {1, 2}, got %v", seen)
	}
}

func TestStringRendering(t *testing.T) {
	if got := New(3, 1, 2).String(); got != "{1, 2, 3}" {
		t.Errorf("unexpected rendering %q", got)
	}
	if got := New[int]().String(); got != "{}" {
		t.Errorf("unexpected empty rendering %q", got)
	}
}
