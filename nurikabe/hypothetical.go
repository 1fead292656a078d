package nurikabe

import "sort"

// guessingOrder returns the unknown cells in the order hypothetical
// search should try them: pseudorandomly shuffled, then stable-sorted
// by Manhattan distance to the nearest white cell. Guesses near white
// cells are far more likely to produce quick contradictions, and the
// deterministic shuffle keeps runs reproducible while avoiding
// repeatedly hammering cells that won't get us anywhere.
func (g *Grid) guessingOrder() []Coord {
	type cellDist struct {
		c         Coord
		manhattan int
	}

	// The greatest possible Manhattan distance on the grid is
	// width-1 + height-1, so width+height works as "no white cell".
	var order []cellDist
	var whiteCells []Coord

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			switch g.cell(x, y) {
			case Unknown:
				order = append(order, cellDist{Coord{x, y}, g.width + g.height})
			case White:
				whiteCells = append(whiteCells, Coord{x, y})
			}
		}
	}

	g.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for i := range order {
		for _, w := range whiteCells {
			if d := order[i].c.ManhattanDistance(w); d < order[i].manhattan {
				order[i].manhattan = d
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].manhattan < order[j].manhattan
	})

	ret := make([]Coord, len(order))
	for i, cd := range order {
		ret[i] = cd.c
	}
	return ret
}

// analyzeHypotheticals is the court of last resort. Each unknown cell
// is tried as black, then as white, on a clone that runs the driver
// (without nested guessing) to a terminal state. A contradiction proves
// the real cell is the opposite color; a full solution lets us keep the
// guess. Guesses that merely stall are counted and reported.
func (g *Grid) analyzeHypotheticals(verbose bool) bool {
	Watch.Start("hypotheticals")
	defer Watch.Stop("hypotheticals")

	failedGuesses := 0
	failedCoords := EmptyCoordSet()

	for _, u := range g.guessingOrder() {
		for i := 0; i < 2; i++ {
			color := Black
			if i == 1 {
				color = White
			}

			other := g.Clone()
			other.mark(color, u.X, u.Y)

			sr := KeepGoing
			for sr == KeepGoing {
				sr = other.Solve(false, false)
			}

			if sr == ContradictionFound {
				markBlack := EmptyCoordSet()
				markWhite := EmptyCoordSet()
				if color == Black {
					markWhite.Add(u)
				} else {
					markBlack.Add(u)
				}
				return g.process(verbose, markBlack, markWhite,
					"Hypothetical contradiction found.", failedGuesses, failedCoords)
			}

			if sr == SolutionFound {
				markBlack := EmptyCoordSet()
				markWhite := EmptyCoordSet()
				if color == Black {
					markBlack.Add(u)
				} else {
					markWhite.Add(u)
				}
				return g.process(verbose, markBlack, markWhite,
					"Hypothetical solution found.", failedGuesses, failedCoords)
			}

			// sr == CannotProceed
			failedGuesses++
			failedCoords.Add(u)
		}
	}

	return false
}
