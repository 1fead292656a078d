package nurikabe

// analyzeCompleteIslands blackens the liberties of every island that
// already has its full complement of cells. Unreachability analysis
// subsumes this, but it's cheap and makes the report easier to follow.
func (g *Grid) analyzeCompleteIslands(verbose bool) bool {
	Watch.Start("complete islands")
	defer Watch.Stop("complete islands")

	markBlack := EmptyCoordSet()
	markWhite := EmptyCoordSet()

	for _, r := range g.regions {
		if r.Numbered() && r.Size() == r.Number() {
			markBlack.AddAll(r.unknowns)
		}
	}

	return g.process(verbose, markBlack, markWhite, "Complete islands found.", 0, nil)
}

// analyzeSingleLiberties expands partial regions that have exactly one
// cell left to grow into. They must take it.
func (g *Grid) analyzeSingleLiberties(verbose bool) bool {
	Watch.Start("single liberties")
	defer Watch.Stop("single liberties")

	markBlack := EmptyCoordSet()
	markWhite := EmptyCoordSet()

	for _, r := range g.regions {
		partial := (r.Black() && r.Size() < g.totalBlack) ||
			r.White() ||
			(r.Numbered() && r.Size() < r.Number())

		if partial && r.unknowns.Size() == 1 {
			u := r.unknowns.Sorted()[0]
			if r.Black() {
				markBlack.Add(u)
			} else {
				markWhite.Add(u)
			}
		}
	}

	return g.process(verbose, markBlack, markWhite,
		"Expanded partial regions with only one liberty.", 0, nil)
}

// analyzeDualLiberties looks for islands one cell short of complete
// with exactly two diagonally adjacent liberties. Whichever liberty the
// island takes, the far corner of their 2x2 square touches the island,
// so it must be black.
func (g *Grid) analyzeDualLiberties(verbose bool) bool {
	Watch.Start("dual liberties")
	defer Watch.Stop("dual liberties")

	markBlack := EmptyCoordSet()
	markWhite := EmptyCoordSet()

	for _, r := range g.regions {
		if !r.Numbered() || r.Size() != r.Number()-1 || r.unknowns.Size() != 2 {
			continue
		}

		unks := r.unknowns.Sorted()
		u1, u2 := unks[0], unks[1]

		dx := u1.X - u2.X
		dy := u1.Y - u2.Y
		if dx != 1 && dx != -1 || dy != 1 && dy != -1 {
			continue
		}

		var far Coord
		if r.Contains(Coord{u1.X, u2.Y}) {
			far = Coord{u2.X, u1.Y}
		} else {
			far = Coord{u1.X, u2.Y}
		}

		// The far corner might already be black: nothing to do. It
		// could even be white or numbered; if it belongs to another
		// island we'll detect the contradiction later.
		if g.cell(far.X, far.Y) == Unknown {
			markBlack.Add(far)
		}
	}

	return g.process(verbose, markBlack, markWhite,
		"N - 1 islands with exactly two diagonal liberties found.", 0, nil)
}

// analyzeUnreachableCells blackens every unknown cell that no island
// could ever absorb.
func (g *Grid) analyzeUnreachableCells(verbose bool) bool {
	Watch.Start("unreachable cells")
	defer Watch.Stop("unreachable cells")

	markBlack := EmptyCoordSet()
	markWhite := EmptyCoordSet()

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.unreachable(x, y, nil) {
				markBlack.Add(Coord{x, y})
			}
		}
	}

	return g.process(verbose, markBlack, markWhite, "Unreachable cells blackened.", 0, nil)
}

// analyzePotentialPools whitens cells that would otherwise complete a
// 2x2 pool of black. Three black cells force the fourth white; with two
// black and two unknown, if blackening one unknown would strand the
// other, the first must be white.
func (g *Grid) analyzePotentialPools(verbose bool) bool {
	Watch.Start("potential pools")
	defer Watch.Stop("potential pools")

	markBlack := EmptyCoordSet()
	markWhite := EmptyCoordSet()

	for x := 0; x < g.width-1; x++ {
		for y := 0; y < g.height-1; y++ {
			square := []Coord{
				{x, y},
				{x + 1, y},
				{x, y + 1},
				{x + 1, y + 1},
			}

			var unknown, black []Coord
			for _, c := range square {
				switch g.cell(c.X, c.Y) {
				case Unknown:
					unknown = append(unknown, c)
				case Black:
					black = append(black, c)
				}
			}

			if len(unknown) == 1 && len(black) == 3 {
				markWhite.Add(unknown[0])
			} else if len(unknown) == 2 && len(black) == 2 {
				for i := 0; i < 2; i++ {
					imagineBlack := SingleCoordSet(unknown[i])
					if g.unreachable(unknown[1-i].X, unknown[1-i].Y, imagineBlack) {
						markWhite.Add(unknown[i])
					}
				}
			}
		}
	}

	return g.process(verbose, markBlack, markWhite, "Whitened cells to prevent pools.", 0, nil)
}
