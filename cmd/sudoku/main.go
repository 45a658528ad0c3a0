// Command sudoku solves one of three example puzzle variants and prints
// the result: classic Sudoku, Nonomino (irregular regions), or
// Hypersudoku (overlapping extra regions).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	sudoku "github.com/sunsided/go-sudoku-solver"
	"github.com/sunsided/go-sudoku-solver/internal/puzzles"
	"github.com/sunsided/go-sudoku-solver/internal/render"
)

func main() {
	classicFlag := flag.Bool("sudoku", false, "solve the classic example puzzle")
	nonominoFlag := flag.Bool("nonomino", false, "solve the nonomino example puzzle")
	hyperFlag := flag.Bool("hyper", false, "solve the hypersudoku example puzzle")
	statsFlag := flag.Bool("stats", false, "print search statistics")
	flag.Parse()

	chosen := 0
	for _, b := range []bool{*classicFlag, *nonominoFlag, *hyperFlag} {
		if b {
			chosen++
		}
	}
	if chosen != 1 {
		flag.Usage()
		log.Fatal("exactly one of -sudoku, -nonomino, -hyper must be given")
	}

	if *statsFlag {
		sudoku.EnableStats = true
	}

	game, err := selectGame(*classicFlag, *nonominoFlag, *hyperFlag)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("regions:")
	fmt.Print(render.Regions(game))

	start := time.Now()
	solved, err := sudoku.Solve(game)
	elapsed := time.Since(start)

	fmt.Println("\nresult:")
	fmt.Print(render.Board(solved))

	if *statsFlag {
		fmt.Printf("\nbranches=%d backtracks=%d duration=%v\n",
			sudoku.Stats.NumBranches, sudoku.Stats.NumBacktracks, elapsed)
	}

	if err != nil {
		fmt.Println()
		log.Fatal(err)
	}
	os.Exit(0)
}

func selectGame(classic, nonomino, hyper bool) (*sudoku.Game, error) {
	switch {
	case classic:
		return sudoku.NewGame(puzzles.Classic())
	case nonomino:
		cells, regions := puzzles.Nonomino()
		return sudoku.NewGameWithRegions(cells, regions)
	case hyper:
		cells, regions := puzzles.Hypersudoku()
		return sudoku.NewGameWithRegions(cells, regions)
	default:
		panic("unreachable: selectGame called without exactly one flag set")
	}
}
