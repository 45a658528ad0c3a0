package sudoku

import "math/bits"

// CellCount is the number of cells on a 9x9 board.
const CellCount = 81

// DigitCount is the number of distinct digits a cell can hold.
const DigitCount = 9

// IndexBitSet is a compact set over cell indices 0..80. It is backed by two
// 64-bit words rather than a single 128-bit one (Go has no native int128),
// mirroring the teacher's preference for fixed-size value types over
// hash-keyed sets on the hot path.
type IndexBitSet struct {
	lo, hi uint64
}

// NewIndexBitSet builds an IndexBitSet from the given indices.
func NewIndexBitSet(indices ...int) IndexBitSet {
	var s IndexBitSet
	for _, i := range indices {
		s.Insert(i)
	}
	return s
}

// Insert adds index to the set. It panics if index is outside 0..80 -- an
// out-of-range index is always a programmer error, never user input.
func (s *IndexBitSet) Insert(index int) {
	if index < 0 || index >= CellCount {
		panic(newIndexOutOfBounds(index))
	}
	if index < 64 {
		s.lo |= 1 << uint(index)
	} else {
		s.hi |= 1 << uint(index-64)
	}
}

// Remove deletes index from the set. It is a no-op if index is absent, and
// panics if index is outside 0..80.
func (s *IndexBitSet) Remove(index int) {
	if index < 0 || index >= CellCount {
		panic(newIndexOutOfBounds(index))
	}
	if index < 64 {
		s.lo &^= 1 << uint(index)
	} else {
		s.hi &^= 1 << uint(index-64)
	}
}

// Union adds every member of other into s.
func (s *IndexBitSet) Union(other IndexBitSet) {
	s.lo |= other.lo
	s.hi |= other.hi
}

// WithUnion returns a new set holding the union of s and other, leaving both
// untouched.
func (s IndexBitSet) WithUnion(other IndexBitSet) IndexBitSet {
	s.Union(other)
	return s
}

// Contains reports whether index is a member. Out-of-range indices are
// simply not members.
func (s IndexBitSet) Contains(index int) bool {
	if index < 0 || index >= CellCount {
		return false
	}
	if index < 64 {
		return s.lo&(1<<uint(index)) != 0
	}
	return s.hi&(1<<uint(index-64)) != 0
}

// Len returns the population count of the set.
func (s IndexBitSet) Len() int {
	return bits.OnesCount64(s.lo) + bits.OnesCount64(s.hi)
}

// IsEmpty reports whether the set has no members.
func (s IndexBitSet) IsEmpty() bool {
	return s.lo == 0 && s.hi == 0
}

// Slice returns the set's members in ascending order.
func (s IndexBitSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for i := 0; i < 64; i++ {
		if s.lo&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	for i := 0; i < CellCount-64; i++ {
		if s.hi&(1<<uint(i)) != 0 {
			out = append(out, i+64)
		}
	}
	return out
}

// ValueBitSet is a compact set over digits 1..9, bit i-1 represents digit i.
type ValueBitSet struct {
	state uint16
}

// NewValueBitSet builds a ValueBitSet from the given digits.
func NewValueBitSet(digits ...int) ValueBitSet {
	var s ValueBitSet
	for _, d := range digits {
		s.Insert(d)
	}
	return s
}

// Insert adds digit to the set. It panics if digit is outside 1..9.
func (s *ValueBitSet) Insert(digit int) {
	if digit < 1 || digit > DigitCount {
		panic(newIndexOutOfBounds(digit))
	}
	s.state |= 1 << uint(digit-1)
}

// Remove deletes digit from the set. It is a no-op if digit is absent, and
// panics if digit is outside 1..9.
func (s *ValueBitSet) Remove(digit int) {
	if digit < 1 || digit > DigitCount {
		panic(newIndexOutOfBounds(digit))
	}
	s.state &^= 1 << uint(digit-1)
}

// Union adds every member of other into s.
func (s *ValueBitSet) Union(other ValueBitSet) {
	s.state |= other.state
}

// WithUnion returns a new set holding the union of s and other.
func (s ValueBitSet) WithUnion(other ValueBitSet) ValueBitSet {
	s.Union(other)
	return s
}

// Contains reports whether digit is a member. Digits outside 1..9 are
// simply not members.
func (s ValueBitSet) Contains(digit int) bool {
	if digit < 1 || digit > DigitCount {
		return false
	}
	return s.state&(1<<uint(digit-1)) != 0
}

// Len returns the population count of the set.
func (s ValueBitSet) Len() int {
	return bits.OnesCount16(s.state)
}

// IsEmpty reports whether the set has no members.
func (s ValueBitSet) IsEmpty() bool {
	return s.state == 0
}

// Slice returns the set's members in ascending order.
func (s ValueBitSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for d := 1; d <= DigitCount; d++ {
		if s.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}
