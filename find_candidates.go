package sudoku

// FindMoveCandidates computes the initial candidate store for gs: for each
// empty cell, the digits that don't appear among its peers (row, column,
// and every region containing it). This establishes the invariant that the
// returned SetOfMoveCandidates is exactly the per-cell domain under
// arc-consistency with respect to directly placed digits.
func FindMoveCandidates(gs *GameState) *SetOfMoveCandidates {
	candidates := NewSetOfMoveCandidates()
	validDigits := gs.game.ValidDigits()

	for _, index := range gs.EmptyCells().Slice() {
		missing := missingValues(gs, index, validDigits)
		for _, d := range missing.Slice() {
			candidates.Add(NewPlacement(index, d))
		}
	}

	return candidates
}

// missingValues returns the digits in validDigits that no filled peer of
// index currently holds.
func missingValues(gs *GameState, index int, validDigits ValueBitSet) ValueBitSet {
	var peerValues ValueBitSet
	for _, p := range gs.PeersByIndex(index, true) {
		peerValues.Insert(p.Value)
	}

	missing := validDigits
	for _, d := range peerValues.Slice() {
		missing.Remove(d)
	}
	return missing
}
