package sudoku

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestIndexBitSetInsertContains(t *testing.T) {
	var s IndexBitSet
	s.Insert(0)
	s.Insert(63)
	s.Insert(64)
	s.Insert(80)

	for _, idx := range []int{0, 63, 64, 80} {
		if !s.Contains(idx) {
			t.Errorf("expected set to contain %d", idx)
		}
	}
	if s.Contains(1) {
		t.Errorf("did not expect set to contain 1")
	}
	if s.Len() != 4 {
		t.Errorf("got Len()=%d, want 4", s.Len())
	}
}

func TestIndexBitSetRemove(t *testing.T) {
	s := NewIndexBitSet(1, 2, 3)
	s.Remove(2)
	if s.Contains(2) {
		t.Errorf("expected 2 to be removed")
	}
	if s.Len() != 2 {
		t.Errorf("got Len()=%d, want 2", s.Len())
	}

	// Removing an absent member is a no-op.
	s.Remove(2)
	if s.Len() != 2 {
		t.Errorf("got Len()=%d, want 2 after no-op remove", s.Len())
	}
}

func TestIndexBitSetUnionAndSlice(t *testing.T) {
	a := NewIndexBitSet(0, 5, 64)
	b := NewIndexBitSet(5, 10, 80)

	c := a.WithUnion(b)
	want := []int{0, 5, 10, 64, 80}
	if !slices.Equal(c.Slice(), want) {
		t.Errorf("got Slice()=%v, want %v", c.Slice(), want)
	}

	// WithUnion leaves both operands untouched.
	if a.Len() != 3 || b.Len() != 3 {
		t.Errorf("WithUnion mutated an operand: a.Len()=%d b.Len()=%d", a.Len(), b.Len())
	}
}

func TestIndexBitSetEmpty(t *testing.T) {
	var s IndexBitSet
	if !s.IsEmpty() {
		t.Errorf("zero-value IndexBitSet should be empty")
	}
	s.Insert(40)
	if s.IsEmpty() {
		t.Errorf("set with a member should not be empty")
	}
}

func TestIndexBitSetInsertOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Insert(81) to panic")
		}
	}()
	var s IndexBitSet
	s.Insert(81)
}

func TestValueBitSetBasics(t *testing.T) {
	s := NewValueBitSet(1, 5, 9)
	if !s.Contains(1) || !s.Contains(5) || !s.Contains(9) {
		t.Errorf("expected set to contain 1, 5, 9")
	}
	if s.Contains(2) {
		t.Errorf("did not expect set to contain 2")
	}
	if s.Len() != 3 {
		t.Errorf("got Len()=%d, want 3", s.Len())
	}

	s.Remove(5)
	want := []int{1, 9}
	if !slices.Equal(s.Slice(), want) {
		t.Errorf("got Slice()=%v, want %v", s.Slice(), want)
	}
}

func TestValueBitSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Insert(0) to panic")
		}
	}()
	var s ValueBitSet
	s.Insert(0)
}
