package nurikabe

import "github.com/gammazero/deque"

// impossiblyBigWhiteRegion reports whether a white region of n cells
// could never be connected to any numbered region. One extra cell is
// added because a bridge would be needed to join them.
func (g *Grid) impossiblyBigWhiteRegion(n int) bool {
	for _, r := range g.regions {
		if r.Numbered() && r.Size()+n+1 <= r.Number() {
			return false
		}
	}
	return true
}

type bfsStep struct {
	x     int
	y     int
	depth int
}

// unreachable reports whether the unknown cell at (xRoot, yRoot) can
// never become part of a white or numbered region. It grows a
// hypothetical chain of white cells from the root by breadth-first
// search, counting the chain's length so a numbered region is only
// "reached" if it has room for the chain, and a white region only if
// joining wouldn't make it impossibly big. Steps that would join two
// numbered regions are refused. An unknown cell walled in by black is
// the obvious case, but the distance accounting makes this considerably
// stronger. discovered lists cells the search must not step on; the
// pool rule uses it to pretend a cell is black.
func (g *Grid) unreachable(xRoot, yRoot int, discovered CoordSet) bool {
	if g.cell(xRoot, yRoot) != Unknown {
		return false
	}

	if discovered == nil {
		discovered = EmptyCoordSet()
	} else {
		discovered = discovered.Copy()
	}

	var q deque.Deque[bfsStep]
	q.PushBack(bfsStep{xRoot, yRoot, 1})
	discovered.Add(Coord{xRoot, yRoot})

	for q.Len() > 0 {
		cur := q.PopFront()

		var whiteRegions, numberedRegions []*Region
		g.forValidNeighbors(cur.x, cur.y, func(a, b int) {
			r := g.region(a, b)
			if r == nil {
				return
			}
			if r.White() && !containsRegion(whiteRegions, r) {
				whiteRegions = append(whiteRegions, r)
			} else if r.Numbered() && !containsRegion(numberedRegions, r) {
				numberedRegions = append(numberedRegions, r)
			}
		})

		adjSize := 0
		for _, r := range whiteRegions {
			adjSize += r.Size()
		}
		for _, r := range numberedRegions {
			adjSize += r.Size()
		}

		if len(numberedRegions) > 1 {
			continue
		}

		if len(numberedRegions) == 1 {
			if cur.depth+adjSize <= numberedRegions[0].Number() {
				return false
			}
			continue
		}

		if len(whiteRegions) > 0 {
			if g.impossiblyBigWhiteRegion(cur.depth + adjSize) {
				continue
			}
			return false
		}

		g.forValidNeighbors(cur.x, cur.y, func(a, b int) {
			c := Coord{a, b}
			if g.cells[b][a] == Unknown && !discovered.Contains(c) {
				discovered.Add(c)
				q.PushBack(bfsStep{a, b, cur.depth + 1})
			}
		})
	}

	return true
}

func containsRegion(rs []*Region, r *Region) bool {
	for _, o := range rs {
		if o == r {
			return true
		}
	}
	return false
}
