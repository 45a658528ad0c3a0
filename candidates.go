package sudoku

// MoveCandidates is a snapshot of the legal digits remaining at one cell.
type MoveCandidates struct {
	Index  int
	Values ValueBitSet
}

// Len returns the number of remaining candidate digits.
func (mc MoveCandidates) Len() int {
	return mc.Values.Len()
}

// IsTrivial reports whether exactly one candidate digit remains -- a lone
// single.
func (mc MoveCandidates) IsTrivial() bool {
	return mc.Values.Len() == 1
}

// ValueSet returns the set of candidate digits.
func (mc MoveCandidates) ValueSet() ValueBitSet {
	return mc.Values
}

// Placements returns one Placement per candidate digit, in ascending digit
// order.
func (mc MoveCandidates) Placements() []Placement {
	digits := mc.Values.Slice()
	out := make([]Placement, 0, len(digits))
	for _, d := range digits {
		out = append(out, NewPlacement(mc.Index, d))
	}
	return out
}

// SetOfMoveCandidates maps cell index to its non-empty MoveCandidates. A
// flat 81-entry array of ValueBitSet backs the store instead of a
// hash-keyed map, per spec.md's "candidate storage alternatives" note --
// no entry is ever empty: emptying a cell's set removes it from present so
// it no longer appears under Iter.
type SetOfMoveCandidates struct {
	values  [CellCount]ValueBitSet
	present IndexBitSet
}

// NewSetOfMoveCandidates returns an empty candidate store.
func NewSetOfMoveCandidates() *SetOfMoveCandidates {
	return &SetOfMoveCandidates{}
}

// Clone returns an independent copy of c.
func (c *SetOfMoveCandidates) Clone() *SetOfMoveCandidates {
	clone := *c
	return &clone
}

// Add inserts placement, creating the per-cell entry if absent.
func (c *SetOfMoveCandidates) Add(p Placement) {
	c.values[p.Index].Insert(p.Value)
	c.present.Insert(p.Index)
}

// ForgetCandidate removes a single placement. If the cell's set becomes
// empty, the entry is purged entirely so the index no longer appears under
// Iter. It is a no-op if the placement was already absent.
func (c *SetOfMoveCandidates) ForgetCandidate(p Placement) {
	if !c.present.Contains(p.Index) {
		return
	}
	c.values[p.Index].Remove(p.Value)
	if c.values[p.Index].IsEmpty() {
		c.present.Remove(p.Index)
	}
}

// RemoveIndex drops every candidate for index -- used once a cell has been
// placed.
func (c *SetOfMoveCandidates) RemoveIndex(index int) {
	c.values[index] = ValueBitSet{}
	c.present.Remove(index)
}

// Len returns the number of cells that currently have candidates.
func (c *SetOfMoveCandidates) Len() int {
	return c.present.Len()
}

// TotalLen returns the sum of per-cell candidate counts.
func (c *SetOfMoveCandidates) TotalLen() int {
	total := 0
	for _, i := range c.present.Slice() {
		total += c.values[i].Len()
	}
	return total
}

// IsEmpty reports whether no cell has any candidates.
func (c *SetOfMoveCandidates) IsEmpty() bool {
	return c.present.IsEmpty()
}

// Contains reports whether index currently has a (non-empty) candidate
// entry.
func (c *SetOfMoveCandidates) Contains(index int) bool {
	return c.present.Contains(index)
}

// CandidatesAt returns the candidate digits at index, or the empty set if
// index has none.
func (c *SetOfMoveCandidates) CandidatesAt(index int) ValueBitSet {
	return c.values[index]
}

// Iter returns a snapshot of every cell's MoveCandidates, in ascending
// index order. spec.md leaves iteration order unspecified; fixing it here
// makes the driver and its tests deterministic without relying on map
// iteration order.
func (c *SetOfMoveCandidates) Iter() []MoveCandidates {
	indices := c.present.Slice()
	out := make([]MoveCandidates, 0, len(indices))
	for _, i := range indices {
		out = append(out, MoveCandidates{Index: i, Values: c.values[i]})
	}
	return out
}
