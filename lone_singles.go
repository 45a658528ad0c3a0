package sudoku

// LoneSingles scans the candidate store for cells left with exactly one
// candidate digit and places it. Running it on an already fully propagated
// store returns StrategyNone -- it is idempotent.
func LoneSingles(gs *GameState, candidates *SetOfMoveCandidates) (StrategyOutcome, error) {
	var applied []Placement

	for _, mc := range candidates.Iter() {
		if !mc.IsTrivial() {
			continue
		}

		p := mc.Placements()[0]
		gs.ApplyMove(p)
		applied = append(applied, p)
	}

	if len(applied) == 0 {
		return StrategyOutcome{Kind: StrategyNone}, nil
	}
	return StrategyOutcome{Kind: StrategyApplied, Placements: applied}, nil
}
