package nurikabe

type confineFlag uint8

const (
	flagNone confineFlag = iota
	flagOpen
	flagClosed
	flagVerboten
)

// confinementCache records, per region, the unknown cells a
// verboten-free confinement run consumed. A later run with verboten
// cells can bail out immediately when none of them were ever consumed:
// cells the free expansion didn't need can't confine the region. Region
// identities change whenever a mark fuses regions, so each Solve pass
// builds a fresh cache.
type confinementCache map[*Region]CoordSet

// confined reports whether region r could not be completed if the
// verboten cells were off-limits. Black regions must be able to reach
// totalBlack cells, white regions must escape to a numbered region, and
// numbered regions must reach their clue. The test greedily expands r
// over a flag array: open cells are candidates, closed cells have been
// hypothetically consumed.
func (g *Grid) confined(r *Region, cache confinementCache, verboten CoordSet) bool {
	if !verboten.IsEmpty() {
		consumed, ok := cache[r]
		if !ok {
			return false // We never consumed any unknown cells.
		}
		if !consumed.ContainsAtLeastOne(verboten) {
			return false
		}
	}

	Watch.Start("confined")
	defer Watch.Stop("confined")

	flags := make([]confineFlag, g.width*g.height)

	for u := range r.unknowns {
		flags[u.X+u.Y*g.width] = flagOpen
	}
	for c := range r.coords {
		flags[c.X+c.Y*g.width] = flagClosed
	}
	closedSize := r.Size()

	// Verboten flags go last; they may overwrite open flags.
	for c := range verboten {
		flags[c.X+c.Y*g.width] = flagVerboten
	}

	needMore := func() bool {
		return (r.Black() && closedSize < g.totalBlack) ||
			r.White() ||
			(r.Numbered() && closedSize < r.Number())
	}

	for needMore() {
		idx := -1
		for i, f := range flags {
			if f == flagOpen {
				idx = i
				break
			}
		}
		if idx < 0 {
			break // Nothing left to consider.
		}

		flags[idx] = flagNone
		p := Coord{idx % g.width, idx / g.width}

		area := g.region(p.X, p.Y)

		switch {
		case r.Black():
			if area != nil && !area.Black() {
				continue // White or numbered; we can't consume this.
			}
		case r.White():
			if area != nil {
				if area.Black() {
					continue
				}
				if area.Numbered() {
					return false // Escaped to a numbered region.
				}
			}
		default: // r.Numbered()
			if area == nil {
				// A numbered region can't consume an unknown cell
				// that's adjacent to another numbered region.
				rejected := false
				g.forValidNeighbors(p.X, p.Y, func(a, b int) {
					other := g.region(a, b)
					if other != nil && other.Numbered() && other != r {
						rejected = true
					}
				})
				if rejected {
					continue
				}
			} else if area.Black() {
				continue
			} else if area.Numbered() {
				panic("nurikabe: confined: two numbered regions adjacent")
			}
		}

		if area == nil {
			// Consume an unknown cell.
			flags[p.X+p.Y*g.width] = flagClosed
			closedSize++

			g.forValidNeighbors(p.X, p.Y, func(a, b int) {
				if flags[a+b*g.width] == flagNone {
					flags[a+b*g.width] = flagOpen
				}
			})

			if verboten.IsEmpty() {
				if cache[r] == nil {
					cache[r] = EmptyCoordSet()
				}
				cache[r].Add(p)
			}
		} else {
			// Consume a whole region.
			for c := range area.coords {
				flags[c.X+c.Y*g.width] = flagClosed
			}
			closedSize += area.Size()

			for u := range area.unknowns {
				if flags[u.X+u.Y*g.width] == flagNone {
					flags[u.X+u.Y*g.width] = flagOpen
				}
			}
		}
	}

	return needMore()
}

// analyzeConfinement imagines each unknown cell off-limits in turn. If
// losing a cell would confine a black region, only whitening the cell
// could have caused that, so the cell must be black; confining a white
// or numbered region means the cell must be white. A second pass probes
// each liberty of a partial island along with the liberty's unknown
// neighbors: if claiming that neighborhood would confine some other
// island, the liberty belongs to this island's boundary and must be
// black.
func (g *Grid) analyzeConfinement(verbose bool, cache confinementCache) bool {
	Watch.Start("confinement analysis")
	defer Watch.Stop("confinement analysis")

	markBlack := EmptyCoordSet()
	markWhite := EmptyCoordSet()

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cell(x, y) != Unknown {
				continue
			}
			verboten := SingleCoordSet(Coord{x, y})

			for _, r := range g.regions {
				if g.confined(r, cache, verboten) {
					if r.Black() {
						markBlack.Add(Coord{x, y})
					} else {
						markWhite.Add(Coord{x, y})
					}
				}
			}
		}
	}

	for _, r := range g.regions {
		if !r.Numbered() || r.Size() >= r.Number() {
			continue
		}
		for u := range r.unknowns {
			verboten := SingleCoordSet(u)
			verboten.AddAll(g.validUnknownNeighbors(u.X, u.Y))

			for _, k := range g.regions {
				if k != r && k.Numbered() && g.confined(k, cache, verboten) {
					markBlack.Add(u)
				}
			}
		}
	}

	return g.process(verbose, markBlack, markWhite, "Confinement analysis succeeded.", 0, nil)
}
