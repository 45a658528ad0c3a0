package sudoku

// StrategyKind discriminates the variants of StrategyOutcome.
type StrategyKind int

const (
	// StrategyNone means the strategy found nothing; it made no change.
	StrategyNone StrategyKind = iota
	// StrategyApplied means the strategy placed digits into the state; the
	// driver must eliminate each placed digit from its peers' candidates.
	StrategyApplied
	// StrategyEliminateOnly means no digit was placed; the listed
	// placements are no longer legal and must be removed from the
	// candidate store.
	StrategyEliminateOnly
)

// StrategyOutcome is the uniform result every deduction strategy returns.
// Exactly one of Placements is meaningful, selected by Kind; BoardInvalid
// is reported separately via the strategy's error return so callers can
// use Go's usual err != nil check to detect a dead branch.
type StrategyOutcome struct {
	Kind       StrategyKind
	Placements []Placement
}

// StrategyFunc is a pluggable deduction step: given the current state and
// candidate store, it either does nothing, places digits, or flags
// eliminations -- or returns ErrBoardInvalid when the deduction proves the
// branch contradictory. New strategies (pointing pairs, box-line
// reduction, X-wing, ...) slot in by matching this signature; solve treats
// them as an ordered list and never special-cases any one of them.
type StrategyFunc func(gs *GameState, candidates *SetOfMoveCandidates) (StrategyOutcome, error)
