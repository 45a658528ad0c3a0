// Package puzzles holds the example puzzle constants the command-line
// front end selects between. None of this is part of the solver core --
// it's collaborator data, kept separate so the core package never embeds
// example boards.
package puzzles

import sudoku "github.com/sunsided/go-sudoku-solver"

// Classic returns the canonical "easy" puzzle used throughout the solver's
// own tests and examples: a standard board with the nine 3x3 boxes.
func Classic() [sudoku.CellCount]int {
	return [sudoku.CellCount]int{
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
}

// Nonomino returns a puzzle whose nine regions are irregular ("nonomino")
// shapes rather than 3x3 boxes, along with that region layout.
func Nonomino() ([sudoku.CellCount]int, []sudoku.Region) {
	cells := [sudoku.CellCount]int{
		3, 0, 0, 0, 0, 0, 0, 0, 4,
		0, 0, 2, 0, 6, 0, 1, 0, 0,
		0, 1, 0, 9, 0, 8, 0, 2, 0,
		0, 0, 5, 0, 0, 0, 6, 0, 0,
		0, 2, 0, 0, 0, 0, 0, 1, 0,
		0, 0, 9, 0, 0, 0, 8, 0, 0,
		0, 8, 0, 3, 0, 4, 0, 6, 0,
		0, 0, 4, 0, 1, 0, 9, 0, 0,
		5, 0, 0, 0, 0, 0, 0, 0, 7,
	}

	regions := []sudoku.Region{
		sudoku.NewIndexBitSet(0, 1, 2, 9, 10, 11, 18, 27, 28),
		sudoku.NewIndexBitSet(3, 12, 13, 14, 23, 24, 25, 34, 35),
		sudoku.NewIndexBitSet(4, 5, 6, 7, 8, 15, 16, 17, 26),
		sudoku.NewIndexBitSet(19, 20, 21, 22, 29, 36, 37, 38, 39),
		sudoku.NewIndexBitSet(30, 31, 32, 33, 40, 47, 48, 49, 50),
		sudoku.NewIndexBitSet(41, 42, 43, 44, 51, 58, 59, 60, 61),
		sudoku.NewIndexBitSet(45, 46, 55, 56, 57, 66, 67, 68, 77),
		sudoku.NewIndexBitSet(54, 63, 64, 65, 72, 73, 74, 75, 76),
		sudoku.NewIndexBitSet(52, 53, 62, 69, 70, 71, 78, 79, 80),
	}

	return cells, regions
}

// Hypersudoku returns an empty board paired with the thirteen overlapping
// regions (nine boxes plus four windows) a Hypersudoku board adds. The
// board carries no givens: hand-picking clues that satisfy all thirteen
// regions at once isn't practical without running the solver, and an
// empty grid still exercises the full region layout end to end.
func Hypersudoku() ([sudoku.CellCount]int, []sudoku.Region) {
	return [sudoku.CellCount]int{}, sudoku.HypersudokuRegions()
}
