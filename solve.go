package sudoku

import "sort"

// SearchStats counts search effort without changing Solve's contract --
// a diagnostic in the spirit of the teacher's package-level Stats counter
// (difficulty.go's EnableStats/Stats), toggled the same way.
type SearchStats struct {
	NumBranches   uint64
	NumBacktracks uint64
}

// Reset zeroes the counters.
func (s *SearchStats) Reset() {
	*s = SearchStats{}
}

// EnableStats turns search instrumentation on; Stats accumulates counts
// while it's true. Both are package-level, matching the teacher's
// EnableStats/Stats globals in difficulty.go.
var EnableStats bool

// Stats accumulates search effort counters when EnableStats is true.
var Stats SearchStats

// strategies is the ordered, pluggable list of deduction steps the driver
// runs to a local fixed point before it branches. New strategies slot in
// here without touching the loop below.
var strategies = []StrategyFunc{
	LoneSingles,
	HiddenSingles,
	NakedTwins,
}

type searchFrame struct {
	gs    *GameState
	cands *SetOfMoveCandidates
}

// Solve runs constraint propagation interleaved with depth-first
// backtracking search on game, returning the solved GameState. If the
// puzzle has no solution, it returns ErrNoSolution along with the best
// (most-filled) partial GameState it reached, as a diagnostic -- this
// does not change the solved/unsolved contract.
func Solve(game *Game) (*GameState, error) {
	root := NewGameState(game)
	rootCands := FindMoveCandidates(root)

	stack := []searchFrame{{gs: root, cands: rootCands}}

	var best *GameState
	considerBest := func(gs *GameState) {
		if best == nil || gs.EmptyCells().Len() < best.EmptyCells().Len() {
			best = gs
		}
	}

outer:
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		gs, cands := frame.gs, frame.cands

		if cands.IsEmpty() {
			return gs, nil
		}

		if !isSolvable(gs, cands) {
			if EnableStats {
				Stats.NumBacktracks++
			}
			considerBest(gs)
			continue
		}

		if gs.Validate(false) {
			return gs, nil
		}

		for {
			changed := false

		strategyLoop:
			for _, strategy := range strategies {
				for {
					outcome, err := strategy(gs, cands)
					if err != nil {
						if EnableStats {
							Stats.NumBacktracks++
						}
						considerBest(gs)
						continue outer
					}

					switch outcome.Kind {
					case StrategyNone:
						continue strategyLoop
					case StrategyApplied:
						for _, p := range outcome.Placements {
							eliminate(gs, cands, p)
						}
						changed = true
					case StrategyEliminateOnly:
						for _, p := range outcome.Placements {
							cands.ForgetCandidate(p)
						}
						changed = true
					}

					if !gs.Validate(true) {
						if EnableStats {
							Stats.NumBacktracks++
						}
						considerBest(gs)
						continue outer
					}
				}
			}

			if !changed {
				break
			}
		}

		if !isSolvable(gs, cands) {
			if EnableStats {
				Stats.NumBacktracks++
			}
			considerBest(gs)
			continue
		}

		if cands.IsEmpty() || gs.Validate(false) {
			return gs, nil
		}

		branches := cands.Iter()
		sort.SliceStable(branches, func(i, j int) bool {
			return branches[i].Len() < branches[j].Len()
		})

		chosen := branches[0]
		digit := chosen.Values.Slice()[0]
		candidate := NewPlacement(chosen.Index, digit)

		if EnableStats {
			Stats.NumBranches++
		}

		cands.ForgetCandidate(candidate)
		if !cands.IsEmpty() {
			stack = append(stack, searchFrame{gs: gs, cands: cands})
		}

		fork := gs.ApplyAndFork(candidate.Index, candidate.Value)
		forkCands := FindMoveCandidates(fork)
		stack = append(stack, searchFrame{gs: fork, cands: forkCands})
	}

	return best, ErrNoSolution
}

// isSolvable reports spec.md's solvability gate: the number of empty
// cells must equal the number of cells with live candidates. A mismatch
// means some empty, solvable cell lost its candidate entry -- a
// contradiction reached earlier in propagation.
func isSolvable(gs *GameState, cands *SetOfMoveCandidates) bool {
	return gs.EmptyCells().Len() == cands.Len()
}

// eliminate drops placement's own (now-stale) candidate entry -- the cell
// it names is filled, so spec.md's "no entry present for a filled cell"
// invariant requires purging it outright, not just the placed digit --
// and removes placement's digit from every peer's candidate entry.
func eliminate(gs *GameState, cands *SetOfMoveCandidates, placement Placement) {
	cands.RemoveIndex(placement.Index)
	for _, peer := range gs.PeerIndexes(placement.Index, true, PeerAll).Slice() {
		cands.ForgetCandidate(NewPlacement(peer, placement.Value))
	}
}
