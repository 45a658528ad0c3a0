package sudoku

// Region is an exclusivity constraint: a set of exactly nine cell indices
// whose digits must form a permutation of 1..9. Rows and columns are
// implicit in the engine (see GameState.PeerIndexes); Region only
// represents the "box-like" constraints a Game carries explicitly --
// standard 3x3 boxes, nonomino shapes, or overlapping hypersudoku windows.
type Region = IndexBitSet

// ClassicBoxRegions builds the nine standard, non-overlapping 3x3 boxes.
func ClassicBoxRegions() []Region {
	regions := make([]Region, 0, 9)
	for by := 0; by < 3; by++ {
		for bx := 0; bx < 3; bx++ {
			regions = append(regions, boxAt(bx*3, by*3))
		}
	}
	return regions
}

func boxAt(xOffset, yOffset int) Region {
	var r Region
	for y := yOffset; y < yOffset+3; y++ {
		for x := xOffset; x < xOffset+3; x++ {
			r.Insert(Index(x, y))
		}
	}
	return r
}

// HyperWindowRegions builds the four extra, mutually non-overlapping 3x3
// windows a Hypersudoku/Windoku board adds on top of the standard boxes:
// one offset window in each quadrant formed by the box grid, at row/column
// starts {1, 5}.
func HyperWindowRegions() []Region {
	regions := make([]Region, 0, 4)
	for _, yOffset := range []int{1, 5} {
		for _, xOffset := range []int{1, 5} {
			regions = append(regions, boxAt(xOffset, yOffset))
		}
	}
	return regions
}

// HypersudokuRegions builds the thirteen overlapping regions of a
// Hypersudoku board: the nine standard boxes plus the four extra windows.
func HypersudokuRegions() []Region {
	regions := make([]Region, 0, 13)
	regions = append(regions, ClassicBoxRegions()...)
	regions = append(regions, HyperWindowRegions()...)
	return regions
}

// validateRegions checks the invariant spec.md requires of a Game's region
// list: every index 0..80 appears in at least one region, and every region
// has exactly nine members.
func validateRegions(regions []Region) error {
	var covered IndexBitSet
	for _, r := range regions {
		if r.Len() != 9 {
			return ErrInvalidPuzzle
		}
		covered.Union(r)
	}
	if covered.Len() != CellCount {
		return ErrInvalidPuzzle
	}
	return nil
}
