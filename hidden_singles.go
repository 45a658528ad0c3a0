package sudoku

// HiddenSingles scans every row, column, and region for a digit that
// fits only one still-empty cell in that unit, even though the cell
// itself may carry several other candidates. It places the first such
// digit it finds and returns immediately -- the driver re-invokes the
// strategy after eliminating the placed digit from its peers, so a
// second hidden single is found on a freshly propagated candidate store
// rather than risking a stale entry in some other unit that still
// thinks the just-filled cell is an open slot for a different digit.
func HiddenSingles(gs *GameState, candidates *SetOfMoveCandidates) (StrategyOutcome, error) {
	findInUnit := func(indices []int) (Placement, bool) {
		for d := 1; d <= DigitCount; d++ {
			count := 0
			onlyIndex := -1
			for _, idx := range indices {
				if !candidates.Contains(idx) {
					continue
				}
				if candidates.CandidatesAt(idx).Contains(d) {
					count++
					onlyIndex = idx
				}
			}
			if count == 1 {
				return NewPlacement(onlyIndex, d), true
			}
		}
		return Placement{}, false
	}

	for y := 0; y < BoardHeight; y++ {
		row := make([]int, BoardWidth)
		for x := 0; x < BoardWidth; x++ {
			row[x] = Index(x, y)
		}
		if p, ok := findInUnit(row); ok {
			gs.ApplyMove(p)
			return StrategyOutcome{Kind: StrategyApplied, Placements: []Placement{p}}, nil
		}
	}
	for x := 0; x < BoardWidth; x++ {
		col := make([]int, BoardHeight)
		for y := 0; y < BoardHeight; y++ {
			col[y] = Index(x, y)
		}
		if p, ok := findInUnit(col); ok {
			gs.ApplyMove(p)
			return StrategyOutcome{Kind: StrategyApplied, Placements: []Placement{p}}, nil
		}
	}
	for _, region := range gs.game.Groups {
		if p, ok := findInUnit(region.Slice()); ok {
			gs.ApplyMove(p)
			return StrategyOutcome{Kind: StrategyApplied, Placements: []Placement{p}}, nil
		}
	}

	return StrategyOutcome{Kind: StrategyNone}, nil
}
