package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mkarren/gridlock/nurikabe"
)

// runInteractive solves a puzzle one driver step at a time at a prompt.
// Useful for watching which rule cracks a position open.
func runInteractive() error {
	rl, err := readline.New("nurikabe> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	var g *nurikabe.Grid
	var current string

	help := func() {
		fmt.Println("commands:")
		fmt.Println("  list            show the built-in puzzles")
		fmt.Println("  load <name>     load a built-in puzzle")
		fmt.Println("  show            print the board")
		fmt.Println("  step            run one analysis pass")
		fmt.Println("  solve           run passes until a terminal state")
		fmt.Println("  exit")
	}
	help()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			for _, p := range puzzles {
				fmt.Printf("  %s (%dx%d)\n", p.name, p.width, p.height)
			}
		case "load":
			if len(fields) != 2 {
				fmt.Println("usage: load <name>")
				continue
			}
			found := false
			for _, p := range puzzles {
				if p.name == fields[1] {
					g, err = nurikabe.NewGrid(p.width, p.height, p.s)
					if err != nil {
						return err
					}
					current = p.name
					found = true
					fmt.Print(g)
				}
			}
			if !found {
				fmt.Printf("no such puzzle %q\n", fields[1])
			}
		case "show":
			if g == nil {
				fmt.Println("no puzzle loaded")
				continue
			}
			fmt.Print(g)
		case "step":
			if g == nil {
				fmt.Println("no puzzle loaded")
				continue
			}
			sr := g.Solve(true, true)
			fmt.Printf("%s: %s (%d/%d known)\n", current, sr, g.Known(), g.Width()*g.Height())
			fmt.Print(g)
		case "solve":
			if g == nil {
				fmt.Println("no puzzle loaded")
				continue
			}
			sr := nurikabe.KeepGoing
			for sr == nurikabe.KeepGoing {
				sr = g.Solve(true, true)
			}
			fmt.Printf("%s: %s (%d/%d known)\n", current, sr, g.Known(), g.Width()*g.Height())
			fmt.Print(g)
		case "help":
			help()
		case "exit", "quit":
			return nil
		default:
			fmt.Printf("unknown command %q\n", fields[0])
			help()
		}
	}
}
