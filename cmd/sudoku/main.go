package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mkarren/gridlock/sudoku"
)

var log = logrus.New()

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sudoku <file>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("bad file: %v", err)
	}
	defer f.Close()

	grids, err := sudoku.ReadAll(f)
	if err != nil {
		log.Fatalf("could not read grids: %v", err)
	}

	solved := 0
	unsolved := 0
	cumulative := 0

	for _, g := range grids {
		if g.Solve() || g.SolveByGuessing() {
			solved++
		} else {
			unsolved++
		}
		fmt.Println(g)
		cumulative += g.CornerValue(3)
	}

	fmt.Printf("solved: %d\n", solved)
	fmt.Printf("unsolved: %d\n", unsolved)
	fmt.Printf("number: %d\n", cumulative)
}
