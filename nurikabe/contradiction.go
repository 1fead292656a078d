package nurikabe

// detectContradictions scans for states no solution could contain:
// 2x2 black pools, regions grown past any possible completion, confined
// regions, and cell-count overruns. Counting black cells is strictly
// stronger than looking for oversized black regions, so only white and
// numbered regions get the size check. The verboten-free confinement
// runs here populate the cache for analyzeConfinement.
func (g *Grid) detectContradictions(verbose bool, cache confinementCache) bool {
	Watch.Start("detect contradictions")
	defer Watch.Stop("detect contradictions")

	uhOh := func(msg string) bool {
		if verbose {
			g.report(msg, nil, 0, nil)
		}
		g.sitrep = ContradictionFound
		return true
	}

	for x := 0; x < g.width-1; x++ {
		for y := 0; y < g.height-1; y++ {
			if g.cell(x, y) == Black &&
				g.cell(x+1, y) == Black &&
				g.cell(x, y+1) == Black &&
				g.cell(x+1, y+1) == Black {
				return uhOh("Contradiction found! Pool detected.")
			}
		}
	}

	blackCells := 0
	whiteCells := 0

	for _, r := range g.regions {
		if (r.White() && g.impossiblyBigWhiteRegion(r.Size())) ||
			(r.Numbered() && r.Size() > r.Number()) {
			return uhOh("Contradiction found! Gigantic region detected.")
		}

		if r.Black() {
			blackCells += r.Size()
		} else {
			whiteCells += r.Size()
		}

		if g.confined(r, cache, nil) {
			return uhOh("Contradiction found! Confined region detected.")
		}
	}

	if blackCells > g.totalBlack {
		return uhOh("Contradiction found! Too many black cells detected.")
	}

	if whiteCells > g.width*g.height-g.totalBlack {
		return uhOh("Contradiction found! Too many white/numbered cells detected.")
	}

	return false
}
