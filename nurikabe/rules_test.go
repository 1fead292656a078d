package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCompleteIslands(t *testing.T) {
	g, err := NewGrid(3, 3, "   \n 1 \n   ")
	require.NoError(t, err)

	assert.True(t, g.analyzeCompleteIslands(false))
	for _, c := range []Coord{{0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		assert.Equal(t, Black, g.cell(c.X, c.Y), "liberty %v of a full island", c)
	}
	checkInvariants(t, g)

	assert.False(t, g.analyzeCompleteIslands(false), "rule must be idempotent")
}

func TestAnalyzeSingleLibertiesWhite(t *testing.T) {
	g, err := NewGrid(3, 1, "2  ")
	require.NoError(t, err)

	assert.True(t, g.analyzeSingleLiberties(false))
	assert.Equal(t, White, g.cell(1, 0), "a 2-island with one liberty must take it")
	checkInvariants(t, g)
}

func TestAnalyzeSingleLibertiesBlack(t *testing.T) {
	// totalBlack is 2; a lone black cell in the corner can only grow
	// through its single unknown neighbor.
	g, err := NewGrid(4, 1, "2   ")
	require.NoError(t, err)
	g.mark(Black, 3, 0)
	g.mark(White, 1, 0)

	assert.True(t, g.analyzeSingleLiberties(false))
	assert.Equal(t, Black, g.cell(2, 0))
	checkInvariants(t, g)
}

func TestAnalyzeSingleLibertiesSkipsCompleteRegions(t *testing.T) {
	g, err := NewGrid(3, 1, "1  ")
	require.NoError(t, err)

	assert.False(t, g.analyzeSingleLiberties(false),
		"a complete island must not expand")
	assert.Equal(t, Unknown, g.cell(1, 0))
}

func TestAnalyzeDualLiberties(t *testing.T) {
	// Island of 3 holding a vertical domino with exactly two diagonal
	// liberties; the far corner of their square must be black.
	//
	//   3 X _
	//   . a _
	//   b f _    a, b: liberties; f: far corner
	g, err := NewGrid(3, 3, "3  \n   \n   ")
	require.NoError(t, err)
	g.mark(Black, 1, 0)
	g.mark(White, 0, 1)

	r := g.region(0, 0)
	require.Equal(t, 2, r.Size())
	require.Equal(t, 2, r.unknowns.Size())

	assert.True(t, g.analyzeDualLiberties(false))
	assert.Equal(t, Black, g.cell(1, 2), "far corner must be blackened")
	assert.Equal(t, Unknown, g.cell(1, 1))
	assert.Equal(t, Unknown, g.cell(0, 2))
	checkInvariants(t, g)
}

func TestAnalyzeDualLibertiesIgnoresStraightPairs(t *testing.T) {
	// Two liberties in the same row are not a diagonal pair.
	g, err := NewGrid(3, 1, " 2 ")
	require.NoError(t, err)

	assert.False(t, g.analyzeDualLiberties(false))
}

func TestAnalyzeUnreachableCells(t *testing.T) {
	g, err := NewGrid(3, 3, "1  \n   \n   ")
	require.NoError(t, err)

	assert.True(t, g.analyzeUnreachableCells(false))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			assert.Equal(t, Black, g.cell(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestAnalyzePotentialPoolsThreeBlack(t *testing.T) {
	g, err := NewGrid(3, 3, "  4\n   \n   ")
	require.NoError(t, err)
	g.mark(Black, 0, 1)
	g.mark(Black, 1, 1)
	g.mark(Black, 0, 2)

	assert.True(t, g.analyzePotentialPools(false))
	assert.Equal(t, White, g.cell(1, 2), "fourth cell of a near-pool must be white")
	checkInvariants(t, g)
}

func TestAnalyzePotentialPoolsTwoAndTwo(t *testing.T) {
	// Blacks at (1,1) and (2,1): in the square below them, blackening
	// either unknown strands the other, so both must be white. The
	// square above behaves symmetrically.
	g, err := NewGrid(3, 3, "1  \n   \n   ")
	require.NoError(t, err)
	g.mark(Black, 1, 1)
	g.mark(Black, 2, 1)

	assert.True(t, g.analyzePotentialPools(false))
	assert.Equal(t, White, g.cell(1, 0))
	assert.Equal(t, White, g.cell(2, 0))
	assert.Equal(t, White, g.cell(1, 2))
	assert.Equal(t, White, g.cell(2, 2))
}
