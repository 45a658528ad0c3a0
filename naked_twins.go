package sudoku

// NakedTwins finds pairs of peer cells that each have the exact same two
// candidate digits {a, b}. Such a pair locks a and b to those two cells
// within every unit (row, column, region) they share, so every other peer
// in each shared unit must drop both digits. If a third cell in the same
// shared unit also carries exactly {a, b}, three cells would be competing
// for two slots -- the branch is impossible and NakedTwins reports
// ErrBoardInvalid.
func NakedTwins(gs *GameState, candidates *SetOfMoveCandidates) (StrategyOutcome, error) {
	var twoCand []MoveCandidates
	for _, mc := range candidates.Iter() {
		if mc.Len() == 2 {
			twoCand = append(twoCand, mc)
		}
	}

	type pairKey struct{ lo, hi int }
	seenPairs := make(map[pairKey]bool)
	seenElim := make(map[Placement]bool)
	var eliminations []Placement

	for i := 0; i < len(twoCand); i++ {
		for j := i + 1; j < len(twoCand); j++ {
			a, b := twoCand[i], twoCand[j]
			if a.Values != b.Values {
				continue
			}

			lo, hi := a.Index, b.Index
			if lo > hi {
				lo, hi = hi, lo
			}
			key := pairKey{lo, hi}
			if seenPairs[key] {
				continue
			}

			if !gs.PeerIndexes(lo, true, PeerAll).Contains(hi) {
				continue
			}
			seenPairs[key] = true

			for _, unit := range sharedUnits(gs, lo, hi) {
				for _, idx := range unit {
					if idx == lo || idx == hi || !candidates.Contains(idx) {
						continue
					}
					if candidates.CandidatesAt(idx) == a.Values {
						return StrategyOutcome{}, ErrBoardInvalid
					}
				}

				for _, idx := range unit {
					if idx == lo || idx == hi || !candidates.Contains(idx) {
						continue
					}
					cv := candidates.CandidatesAt(idx)
					for _, d := range a.Values.Slice() {
						if cv.Contains(d) {
							p := NewPlacement(idx, d)
							if !seenElim[p] {
								seenElim[p] = true
								eliminations = append(eliminations, p)
							}
						}
					}
				}
			}
		}
	}

	if len(eliminations) == 0 {
		return StrategyOutcome{Kind: StrategyNone}, nil
	}
	return StrategyOutcome{Kind: StrategyEliminateOnly, Placements: eliminations}, nil
}

// sharedUnits returns every unit (row, column, region) that contains both a
// and b, as index slices.
func sharedUnits(gs *GameState, a, b int) [][]int {
	var units [][]int

	ax, ay := Coord(a)
	bx, by := Coord(b)

	if ay == by {
		row := make([]int, BoardWidth)
		for x := 0; x < BoardWidth; x++ {
			row[x] = Index(x, ay)
		}
		units = append(units, row)
	}
	if ax == bx {
		col := make([]int, BoardHeight)
		for y := 0; y < BoardHeight; y++ {
			col[y] = Index(ax, y)
		}
		units = append(units, col)
	}

	aRegions := gs.game.RegionsContaining(a)
	bRegions := make(map[int]bool, len(gs.game.RegionsContaining(b)))
	for _, gid := range gs.game.RegionsContaining(b) {
		bRegions[gid] = true
	}
	for _, gid := range aRegions {
		if bRegions[gid] {
			units = append(units, gs.game.Groups[gid].Slice())
		}
	}

	return units
}
