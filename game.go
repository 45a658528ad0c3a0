package sudoku

// Game is an immutable puzzle description: the initial grid plus the
// region layout (classic boxes, nonomino shapes, or hypersudoku windows).
// It never changes after construction, so every search branch shares one
// Game by reference instead of cloning it.
type Game struct {
	Width, Height int
	validDigits   ValueBitSet
	initialState  State

	// Groups holds the box-like regions only -- rows and columns are
	// implicit (see GameState.PeerIndexes). The classic board has nine;
	// nonomino and hypersudoku boards may have a different count.
	Groups []Region

	// cellRegions[i] lists every region index containing cell i. A cell
	// can belong to more than one region on a hypersudoku board, where
	// boxes and windows overlap.
	cellRegions [CellCount][]int
}

// NewGame builds a Game with the standard nine 3x3 boxes as regions.
func NewGame(cells [CellCount]int) (*Game, error) {
	return NewGameWithRegions(cells, ClassicBoxRegions())
}

// NewGameWithRegions builds a Game from explicit regions. It rejects the
// puzzle with ErrInvalidPuzzle if the regions don't cover every cell
// exactly the way spec.md requires, or if the initial grid already
// contains a duplicate digit in some row, column, or region.
func NewGameWithRegions(cells [CellCount]int, regions []Region) (*Game, error) {
	if err := validateRegions(regions); err != nil {
		return nil, err
	}

	g := &Game{
		Width:        BoardWidth,
		Height:       BoardHeight,
		validDigits:  NewValueBitSet(1, 2, 3, 4, 5, 6, 7, 8, 9),
		initialState: NewState(cells),
		Groups:       regions,
	}
	for gid, region := range regions {
		for _, idx := range region.Slice() {
			g.cellRegions[idx] = append(g.cellRegions[idx], gid)
		}
	}

	if err := initialGridValid(g); err != nil {
		return nil, err
	}

	return g, nil
}

// NewEmptyGame builds a Game with no givens and the standard boxes.
func NewEmptyGame() *Game {
	g, err := NewGame([CellCount]int{})
	if err != nil {
		// Unreachable: an all-empty grid with the standard boxes is always valid.
		panic(err)
	}
	return g
}

// Cell returns the initial digit at (x, y), or 0 if empty.
func (g *Game) Cell(x, y int) int {
	return g.initialState.Cell(x, y)
}

// RegionID returns the index into Groups of the first region containing
// (x, y). On overlapping layouts (hypersudoku) a cell may belong to more
// than one region; RegionID/RegionAt surface only the first one found at
// construction time -- peer enumeration in GameState scans every region a
// cell belongs to, not just this one.
func (g *Game) RegionID(x, y int) int {
	ids := g.cellRegions[Index(x, y)]
	return ids[0]
}

// RegionAt returns the region returned by RegionID.
func (g *Game) RegionAt(x, y int) Region {
	return g.Groups[g.RegionID(x, y)]
}

// RegionsContaining returns every region index containing cell index.
func (g *Game) RegionsContaining(index int) []int {
	return g.cellRegions[index]
}

// ValidDigits returns the nine legal digits, 1..9.
func (g *Game) ValidDigits() ValueBitSet {
	return g.validDigits
}

// ForkInitialState returns a fresh copy of the puzzle's starting grid.
func (g *Game) ForkInitialState() State {
	return g.initialState.Clone()
}

// initialGridValid checks that the given initial grid has no duplicate
// digit within any row, column, or region -- empty cells are always fine.
func initialGridValid(g *Game) error {
	gs := NewGameState(g)
	if !gs.Validate(true) {
		return ErrInvalidPuzzle
	}
	return nil
}
