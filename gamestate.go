package sudoku

// PeerKind filters PeerIndexes output by cell occupancy.
type PeerKind int

const (
	// PeerAll selects every peer regardless of occupancy.
	PeerAll PeerKind = iota
	// PeerEmpty selects only currently empty peers.
	PeerEmpty
	// PeerFilled selects only currently filled peers.
	PeerFilled
)

// GameState is a search node: a mutable State plus the set of currently
// empty cells, sharing one immutable Game with every sibling branch.
type GameState struct {
	game       *Game
	state      State
	emptyCells IndexBitSet
}

// NewGameState builds the root search node for game: its initial state and
// the derived set of empty cells.
func NewGameState(game *Game) *GameState {
	state := game.ForkInitialState()
	return &GameState{
		game:       game,
		state:      state,
		emptyCells: state.EmptyCells(),
	}
}

// Fork returns an independent copy of gs. The Game is shared by reference
// (it's immutable); the State and empty-cell set are copied.
func (gs *GameState) Fork() *GameState {
	return &GameState{
		game:       gs.game,
		state:      gs.state.Clone(),
		emptyCells: gs.emptyCells,
	}
}

// ApplyAndFork returns a new GameState with digit placed at index, leaving
// gs unchanged.
func (gs *GameState) ApplyAndFork(index, digit int) *GameState {
	state := gs.state.ApplyAndFork(index, digit)
	empty := gs.emptyCells
	empty.Remove(index)
	return &GameState{
		game:       gs.game,
		state:      state,
		emptyCells: empty,
	}
}

// Apply places digit at index in place and drops index from the empty set.
func (gs *GameState) Apply(index, digit int) {
	gs.state.Apply(index, digit)
	gs.emptyCells.Remove(index)
}

// ApplyMove is Apply applied to a Placement.
func (gs *GameState) ApplyMove(p Placement) {
	gs.Apply(p.Index, p.Value)
}

// ID returns the StateID of the underlying State.
func (gs *GameState) ID() StateID {
	return gs.state.ID()
}

// Game returns the shared, immutable puzzle description.
func (gs *GameState) Game() *Game {
	return gs.game
}

// State returns the underlying board state.
func (gs *GameState) State() *State {
	return &gs.state
}

// EmptyCells returns the set of currently empty cell indices.
func (gs *GameState) EmptyCells() IndexBitSet {
	return gs.emptyCells
}

// Cell returns the digit at index, or 0 if empty.
func (gs *GameState) Cell(index int) int {
	return gs.state.CellAt(index)
}

// peerUnitIndexes returns every peer index of index (row, column, and every
// region containing it), excluding index itself.
func (gs *GameState) peerUnitIndexes(index int) IndexBitSet {
	x, y := Coord(index)

	var peers IndexBitSet
	for px := 0; px < BoardWidth; px++ {
		peers.Insert(Index(px, y))
	}
	for py := 0; py < BoardHeight; py++ {
		peers.Insert(Index(x, py))
	}
	for _, gid := range gs.game.RegionsContaining(index) {
		peers.Union(gs.game.Groups[gid])
	}
	peers.Remove(index)
	return peers
}

// PeerIndexes returns the peer indices of index, filtered by kind. When
// excludeSelf is false, index itself is folded back in if it matches kind.
func (gs *GameState) PeerIndexes(index int, excludeSelf bool, kind PeerKind) IndexBitSet {
	peers := gs.peerUnitIndexes(index)
	if !excludeSelf {
		peers.Insert(index)
	}

	if kind == PeerAll {
		return peers
	}

	var filtered IndexBitSet
	for _, i := range peers.Slice() {
		empty := gs.emptyCells.Contains(i)
		if (kind == PeerEmpty && empty) || (kind == PeerFilled && !empty) {
			filtered.Insert(i)
		}
	}
	return filtered
}

// PeersByIndex returns a Placement for every filled peer of index.
// excludeSelf controls whether index itself is considered (it can only
// contribute a Placement if it's filled).
func (gs *GameState) PeersByIndex(index int, excludeSelf bool) []Placement {
	indices := gs.PeerIndexes(index, excludeSelf, PeerFilled)
	placements := make([]Placement, 0, indices.Len())
	for _, i := range indices.Slice() {
		placements = append(placements, NewPlacement(i, gs.Cell(i)))
	}
	return placements
}

// Validate reports whether every row, column, and region holds distinct
// digits. With allowEmpty false, every unit must additionally be a full
// permutation of 1..9 (no empty cells anywhere).
func (gs *GameState) Validate(allowEmpty bool) bool {
	checkUnit := func(indices []int) bool {
		var seen ValueBitSet
		filled := 0
		for _, i := range indices {
			v := gs.Cell(i)
			if v == 0 {
				continue
			}
			if seen.Contains(v) {
				return false
			}
			seen.Insert(v)
			filled++
		}
		if !allowEmpty && filled != len(indices) {
			return false
		}
		return true
	}

	for y := 0; y < BoardHeight; y++ {
		row := make([]int, BoardWidth)
		for x := 0; x < BoardWidth; x++ {
			row[x] = Index(x, y)
		}
		if !checkUnit(row) {
			return false
		}
	}

	for x := 0; x < BoardWidth; x++ {
		col := make([]int, BoardHeight)
		for y := 0; y < BoardHeight; y++ {
			col[y] = Index(x, y)
		}
		if !checkUnit(col) {
			return false
		}
	}

	for _, region := range gs.game.Groups {
		if !checkUnit(region.Slice()) {
			return false
		}
	}

	return true
}
