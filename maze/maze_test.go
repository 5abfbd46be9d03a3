package maze

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := New(0, 4, rand.New(rand.NewSource(1)))
		assert.Error(t, err)

		_, err = New(4, maxMazeDimension+1, rand.New(rand.NewSource(1)))
		assert.Error(t, err)
	})

	t.Run("same seed, same maze", func(t *testing.T) {
		a, err := New(6, 5, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := New(6, 5, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("perfect maze has cells-1 passages", func(t *testing.T) {
		m, err := New(7, 4, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		passages := 0
		for row := range m.Grid {
			for col := range m.Grid[row] {
				if !m.Grid[row][col].SouthWall {
					passages++
				}
				if !m.Grid[row][col].EastWall {
					passages++
				}
			}
		}
		assert.Equal(t, 7*4-1, passages)
	})
}

func TestOccupancy(t *testing.T) {
	m, err := New(4, 3, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	codes := m.Occupancy()
	require.Len(t, codes, 5)
	for _, row := range codes {
		require.Len(t, row, 7)
	}
	assert.Equal(t, gridworld.CodeObject, codes[0][0])
	assert.Equal(t, gridworld.CodeObstacle, codes[1][1])
	assert.Equal(t, gridworld.CodeFree, codes[4][6])
}

func TestGeneratedMazesAreSolvable(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m, err := New(5, 5, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		world, err := gridworld.NewWorld(m.Occupancy())
		require.NoError(t, err)

		opts := gridworld.DefaultOptions()
		opts.Iterations = 200
		result, err := world.Solve(opts)
		require.NoError(t, err)

		require.Equal(t, gridworld.OutcomeReached, result.Route.Outcome, "seed %d\n%s", seed, m)
		assert.Equal(t, world.Grid.Goal, gridworld.Replay(world.Footprint.Pivot, result.Route.Moves))
		assert.False(t, strings.Contains(result.Route.String(), "-"))
	}
}
