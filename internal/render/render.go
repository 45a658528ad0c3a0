// Package render draws ASCII boards and region layouts for the example
// puzzles. It is a collaborator of the core solver, never imported by it:
// the core only ever hands back a GameState for a caller to inspect.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	sudoku "github.com/sunsided/go-sudoku-solver"
)

var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgHiWhite),
}

// Board returns a 2D ASCII representation of gs. Givens (cells already
// filled in game's initial state) print bold; cells the solver placed
// print in the solved color. A vertical separator is drawn between two
// horizontally adjacent cells whose RegionIDs differ; a full-width
// horizontal line is drawn between two rows whenever any column changes
// RegionID between them. Only the first region of each cell (RegionID) is
// considered, so overlapping hypersudoku windows draw no separators.
func Board(gs *sudoku.GameState) string {
	game := gs.Game()

	var sb strings.Builder
	for y := 0; y < sudoku.BoardHeight; y++ {
		for x := 0; x < sudoku.BoardWidth; x++ {
			index := sudoku.Index(x, y)
			digit := gs.Cell(index)

			cell := " ."
			if digit != 0 {
				cell = fmt.Sprintf(" %d", digit)
			}

			if game.Cell(x, y) != 0 {
				sb.WriteString(color.New(color.Bold).Sprint(cell))
			} else if digit != 0 {
				sb.WriteString(color.New(color.FgCyan).Sprint(cell))
			} else {
				sb.WriteString(cell)
			}

			if x+1 < sudoku.BoardWidth && game.RegionID(x, y) != game.RegionID(x+1, y) {
				sb.WriteString(" |")
			}
		}
		sb.WriteRune('\n')

		if y+1 < sudoku.BoardHeight && rowBoundary(game, y) {
			sb.WriteString(strings.Repeat("-", sudoku.BoardWidth*3))
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// rowBoundary reports whether any column changes region between row y and
// row y+1.
func rowBoundary(game *sudoku.Game, y int) bool {
	for x := 0; x < sudoku.BoardWidth; x++ {
		if game.RegionID(x, y) != game.RegionID(x, y+1) {
			return true
		}
	}
	return false
}

// Regions prints the region-id grid for game, one digit (cycling through
// the palette) per cell, so an irregular layout can be inspected visually
// without solving anything. Each cell shows only its first region
// (RegionID); on an overlapping layout the extra regions are not shown.
func Regions(game *sudoku.Game) string {
	var sb strings.Builder
	for y := 0; y < sudoku.BoardHeight; y++ {
		for x := 0; x < sudoku.BoardWidth; x++ {
			id := game.RegionID(x, y)
			c := palette[id%len(palette)]
			sb.WriteString(c.Sprintf(" %d", id))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
