package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wikipediaHard = "2        2\n" +
	"      2   \n" +
	" 2  7     \n" +
	"          \n" +
	"      3 3 \n" +
	"  2    3  \n" +
	"2  4      \n" +
	"          \n" +
	" 1    2 4 \n"

const wikipediaEasy = "1   4  4 2\n" +
	"          \n" +
	" 1   2    \n" +
	"  1   1  2\n" +
	"1    3    \n" +
	"  6      5\n" +
	"          \n" +
	"     1   2\n" +
	"    2  2  \n" +
	"          \n"

func solveToEnd(g *Grid, guessing bool) SitRep {
	sr := KeepGoing
	for sr == KeepGoing {
		sr = g.Solve(false, guessing)
	}
	return sr
}

// checkSolution verifies a finished grid: everything determined, no
// black pool, the right amount of black, and every island exactly at
// its clue.
func checkSolution(t *testing.T, g *Grid) {
	t.Helper()

	assert.Equal(t, g.width*g.height, g.Known())

	for x := 0; x < g.width-1; x++ {
		for y := 0; y < g.height-1; y++ {
			pool := g.cell(x, y) == Black &&
				g.cell(x+1, y) == Black &&
				g.cell(x, y+1) == Black &&
				g.cell(x+1, y+1) == Black
			assert.False(t, pool, "pool at (%d,%d)", x, y)
		}
	}

	black := 0
	for _, r := range g.regions {
		if r.Black() {
			black += r.Size()
			continue
		}
		require.True(t, r.Numbered(), "no free white region may survive: %v", r.coords)
		assert.Equal(t, r.Number(), r.Size(), "island %v", r.coords)
	}
	assert.Equal(t, g.totalBlack, black)

	checkInvariants(t, g)
}

func TestSolveWikipediaHard(t *testing.T) {
	g, err := NewGrid(10, 9, wikipediaHard)
	require.NoError(t, err)

	assert.Equal(t, SolutionFound, solveToEnd(g, true))
	checkSolution(t, g)
}

func TestSolveWikipediaEasy(t *testing.T) {
	g, err := NewGrid(10, 10, wikipediaEasy)
	require.NoError(t, err)

	assert.Equal(t, SolutionFound, solveToEnd(g, true))
	checkSolution(t, g)
}

func TestSolveWithoutGuessing(t *testing.T) {
	// Solvable by complete-island and single-liberty analysis alone.
	g, err := NewGrid(2, 2, "1   ")
	require.NoError(t, err)

	assert.Equal(t, SolutionFound, solveToEnd(g, false))
	checkSolution(t, g)
	assert.Equal(t, Black, g.cell(1, 0))
	assert.Equal(t, Black, g.cell(0, 1))
	assert.Equal(t, Black, g.cell(1, 1))
}

func TestSolveByConfinementWithoutGuessing(t *testing.T) {
	// totalBlack is zero, so every cell must join the island; only
	// confinement analysis sees that.
	g, err := NewGrid(3, 3, "9  \n   \n   ")
	require.NoError(t, err)

	assert.Equal(t, SolutionFound, solveToEnd(g, false))
	checkSolution(t, g)
}

func TestSolveContradictoryPuzzle(t *testing.T) {
	// Two 2-islands on a 2x2 board would have to touch.
	g, err := NewGrid(2, 2, "2 \n 2\n")
	require.NoError(t, err)

	assert.Equal(t, ContradictionFound, solveToEnd(g, true))
}

func TestSolveAmbiguousPuzzleFindsASolution(t *testing.T) {
	// An 8-island centered on a 3x3 board leaves eight choices for the
	// lone black cell. Hypothetical search takes the first guess whose
	// clone completes.
	g, err := NewGrid(3, 3, "   \n 8 \n   ")
	require.NoError(t, err)

	assert.Equal(t, SolutionFound, solveToEnd(g, true))
	checkSolution(t, g)
}

func TestSolveIdempotentOnSolvedGrid(t *testing.T) {
	g, err := NewGrid(2, 2, "1   ")
	require.NoError(t, err)
	require.Equal(t, SolutionFound, solveToEnd(g, false))

	before := g.String()
	assert.Equal(t, SolutionFound, g.Solve(false, true))
	assert.Equal(t, before, g.String())
}

func TestKnownIsMonotonic(t *testing.T) {
	g, err := NewGrid(10, 10, wikipediaEasy)
	require.NoError(t, err)

	last := g.Known()
	sr := KeepGoing
	for sr == KeepGoing {
		sr = g.Solve(false, true)
		k := g.Known()
		assert.GreaterOrEqual(t, k, last)
		last = k
	}
}

func TestGuessingOrderIsReproducible(t *testing.T) {
	a, err := NewGrid(10, 9, wikipediaHard)
	require.NoError(t, err)
	b, err := NewGrid(10, 9, wikipediaHard)
	require.NoError(t, err)

	assert.Equal(t, a.guessingOrder(), b.guessingOrder(),
		"seeded shuffle must not vary between runs")
}

func TestGuessingOrderPrioritizesWhiteNeighbors(t *testing.T) {
	g, err := NewGrid(4, 1, "3   ")
	require.NoError(t, err)
	g.mark(White, 1, 0)

	order := g.guessingOrder()
	require.Len(t, order, 2)
	assert.Equal(t, Coord{2, 0}, order[0], "the cell beside the white run goes first")
	assert.Equal(t, Coord{3, 0}, order[1])
}

func TestGuessingOrderCoversAllUnknowns(t *testing.T) {
	g, err := NewGrid(10, 10, wikipediaEasy)
	require.NoError(t, err)

	order := g.guessingOrder()
	assert.Len(t, order, 10*10-g.Known())

	seen := EmptyCoordSet()
	for _, c := range order {
		assert.Equal(t, Unknown, g.cell(c.X, c.Y))
		assert.False(t, seen.Contains(c), "duplicate %v", c)
		seen.Add(c)
	}
}

func TestSitRepStrings(t *testing.T) {
	assert.Equal(t, "contradiction found", ContradictionFound.String())
	assert.Equal(t, "solution found", SolutionFound.String())
	assert.Equal(t, "keep going", KeepGoing.String())
	assert.Equal(t, "cannot proceed", CannotProceed.String())
}
