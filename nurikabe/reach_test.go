package nurikabe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreachableKnownCell(t *testing.T) {
	g, err := NewGrid(2, 2, "1   ")
	require.NoError(t, err)

	assert.False(t, g.unreachable(0, 0, nil), "a known cell is never unreachable")
}

func TestUnreachableDistanceAccounting(t *testing.T) {
	// A 1-island can absorb nothing, so every other cell is beyond its
	// reach even before any black cell exists.
	g, err := NewGrid(3, 3, "1  \n   \n   ")
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			assert.True(t, g.unreachable(x, y, nil), "(%d,%d)", x, y)
		}
	}
}

func TestReachableWithinIslandBudget(t *testing.T) {
	g, err := NewGrid(4, 1, "3   ")
	require.NoError(t, err)

	// depth 1 + island size 1 <= 3 and depth 2 + 1 <= 3, but the far
	// cell would need a chain of three.
	assert.False(t, g.unreachable(1, 0, nil))
	assert.False(t, g.unreachable(2, 0, nil))
	assert.True(t, g.unreachable(3, 0, nil))
}

func TestUnreachableDiscoveredBlocksPath(t *testing.T) {
	g, err := NewGrid(3, 1, "2  ")
	require.NoError(t, err)

	assert.False(t, g.unreachable(1, 0, nil))
	// Pretending the middle cell black strands the far one.
	assert.True(t, g.unreachable(2, 0, SingleCoordSet(Coord{1, 0})))
}

func TestUnreachableDoesNotMutateDiscovered(t *testing.T) {
	g, err := NewGrid(3, 1, "2  ")
	require.NoError(t, err)

	discovered := SingleCoordSet(Coord{1, 0})
	g.unreachable(2, 0, discovered)
	assert.Equal(t, SingleCoordSet(Coord{1, 0}), discovered)
}

func TestUnreachableIsDeterministic(t *testing.T) {
	g, err := NewGrid(3, 3, "1  \n   \n   ")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, g.unreachable(2, 2, nil))
	}
}

func TestUnreachableRefusesToJoinTwoIslands(t *testing.T) {
	// The middle cell touches both islands; stepping there would fuse
	// them, so it can only be reached if some island absorbs it alone.
	g, err := NewGrid(3, 1, "2 2")
	require.NoError(t, err)

	// Both islands border (1,0), so the BFS skips it entirely.
	assert.True(t, g.unreachable(1, 0, nil))
}

func TestImpossiblyBigWhiteRegion(t *testing.T) {
	g, err := NewGrid(4, 1, "3   ")
	require.NoError(t, err)

	// island size 1 + white size n + bridge <= 3 requires n <= 1.
	assert.False(t, g.impossiblyBigWhiteRegion(1))
	assert.True(t, g.impossiblyBigWhiteRegion(2))
}
