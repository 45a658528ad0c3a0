package sudoku

import (
	"errors"
	"fmt"
)

// ErrInvalidPuzzle is returned from Game construction when the
// supplied region layout doesn't cover every cell, a region doesn't have
// exactly nine members, or the initial grid already has a duplicate digit
// in some row, column, or region.
var ErrInvalidPuzzle = errors.New("invalid puzzle")

// ErrBoardInvalid is the internal signal a strategy raises when it proves
// the current branch contradictory. It never escapes solve; the driver
// turns it into a dropped stack frame.
var ErrBoardInvalid = errors.New("board invalid")

// ErrNoSolution is returned by Solve when the search stack empties without
// ever reaching a fully and validly placed grid.
var ErrNoSolution = errors.New("no solution")

// OutOfBoundsError reports a programmer error: an index or (x, y)
// coordinate pair outside the board. It is always a bug in the caller, so
// the accessors that can produce it panic rather than return it.
type OutOfBoundsError struct {
	Index int
	X, Y  int
}

func (e *OutOfBoundsError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("sudoku: index %d out of bounds [0, %d)", e.Index, CellCount)
	}
	return fmt.Sprintf("sudoku: coordinate (%d, %d) out of bounds", e.X, e.Y)
}

func newIndexOutOfBounds(index int) error {
	return &OutOfBoundsError{Index: index, X: -1, Y: -1}
}

func newCoordOutOfBounds(x, y int) error {
	return &OutOfBoundsError{Index: -1, X: x, Y: y}
}
