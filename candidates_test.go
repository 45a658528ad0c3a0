package sudoku

import "testing"

func TestSetOfMoveCandidatesAddAndForget(t *testing.T) {
	c := NewSetOfMoveCandidates()
	c.Add(NewPlacement(4, 3))
	c.Add(NewPlacement(4, 7))

	if c.Len() != 1 {
		t.Errorf("got Len()=%d, want 1", c.Len())
	}
	if c.CandidatesAt(4).Len() != 2 {
		t.Errorf("got %d candidates at 4, want 2", c.CandidatesAt(4).Len())
	}

	c.ForgetCandidate(NewPlacement(4, 3))
	if !c.Contains(4) {
		t.Errorf("cell 4 should still have an entry after forgetting one of two digits")
	}

	c.ForgetCandidate(NewPlacement(4, 7))
	if c.Contains(4) {
		t.Errorf("cell 4's entry should be purged once its last candidate is forgotten")
	}
	if c.Len() != 0 {
		t.Errorf("got Len()=%d, want 0", c.Len())
	}
}

func TestSetOfMoveCandidatesForgetAbsentIsNoOp(t *testing.T) {
	c := NewSetOfMoveCandidates()
	c.ForgetCandidate(NewPlacement(0, 1)) // no entry for index 0 at all
	if c.Len() != 0 {
		t.Errorf("forgetting an absent placement should not create an entry")
	}
}

func TestSetOfMoveCandidatesRemoveIndex(t *testing.T) {
	c := NewSetOfMoveCandidates()
	c.Add(NewPlacement(10, 1))
	c.Add(NewPlacement(10, 2))
	c.Add(NewPlacement(10, 3))

	c.RemoveIndex(10)
	if c.Contains(10) {
		t.Errorf("RemoveIndex should purge every candidate at the index")
	}
}

func TestSetOfMoveCandidatesClone(t *testing.T) {
	c := NewSetOfMoveCandidates()
	c.Add(NewPlacement(0, 1))

	clone := c.Clone()
	clone.Add(NewPlacement(0, 2))

	if c.CandidatesAt(0).Len() != 1 {
		t.Errorf("mutating a clone leaked back into the original")
	}
	if clone.CandidatesAt(0).Len() != 2 {
		t.Errorf("got clone candidates len=%d, want 2", clone.CandidatesAt(0).Len())
	}
}

func TestMoveCandidatesIsTrivialAndPlacements(t *testing.T) {
	mc := MoveCandidates{Index: 5, Values: NewValueBitSet(9)}
	if !mc.IsTrivial() {
		t.Errorf("a single-digit candidate set should be trivial")
	}
	placements := mc.Placements()
	if len(placements) != 1 || placements[0] != NewPlacement(5, 9) {
		t.Errorf("got placements=%v, want [(5, 9)]", placements)
	}
}

func TestSetOfMoveCandidatesTotalLen(t *testing.T) {
	c := NewSetOfMoveCandidates()
	c.Add(NewPlacement(0, 1))
	c.Add(NewPlacement(0, 2))
	c.Add(NewPlacement(1, 5))

	if c.TotalLen() != 3 {
		t.Errorf("got TotalLen()=%d, want 3", c.TotalLen())
	}
}

func TestFindMoveCandidatesCompleteness(t *testing.T) {
	var cells [CellCount]int
	// Fill row 0 except the last cell with digits 1..8.
	for x := 0; x < 8; x++ {
		cells[Index(x, 0)] = x + 1
	}
	g, err := NewGame(cells)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gs := NewGameState(g)

	cands := FindMoveCandidates(gs)
	last := Index(8, 0)
	if !cands.Contains(last) {
		t.Fatalf("expected a candidate entry for the only empty cell in the row")
	}
	if cands.CandidatesAt(last) != NewValueBitSet(9) {
		t.Errorf("got candidates %v at last cell, want {9}", cands.CandidatesAt(last).Slice())
	}
}

func TestFindMoveCandidatesSoundness(t *testing.T) {
	cells, regions := classicMidPuzzleCells()
	g, err := NewGameWithRegions(cells, regions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gs := NewGameState(g)
	cands := FindMoveCandidates(gs)

	for _, mc := range cands.Iter() {
		for _, p := range gs.PeersByIndex(mc.Index, true) {
			if mc.Values.Contains(p.Value) {
				t.Errorf("cell %d candidate set %v wrongly includes peer digit %d", mc.Index, mc.Values.Slice(), p.Value)
			}
		}
	}
}

// classicMidPuzzleCells returns the classic easy puzzle's cells and the
// standard box regions, for tests that need a partially filled, solvable
// grid.
func classicMidPuzzleCells() ([CellCount]int, []Region) {
	cells := [CellCount]int{
		5, 3, 0, 0, 7, 0, 0, 0, 0,
		6, 0, 0, 1, 9, 5, 0, 0, 0,
		0, 9, 8, 0, 0, 0, 0, 6, 0,

		8, 0, 0, 0, 6, 0, 0, 0, 3,
		4, 0, 0, 8, 0, 3, 0, 0, 1,
		7, 0, 0, 0, 2, 0, 0, 0, 6,

		0, 6, 0, 0, 0, 0, 2, 8, 0,
		0, 0, 0, 4, 1, 9, 0, 0, 5,
		0, 0, 0, 0, 8, 0, 0, 7, 9,
	}
	return cells, ClassicBoxRegions()
}
