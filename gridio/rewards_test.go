package gridio

import (
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-pathfinder/gridworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRewards(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		doc := `
rewards:
  - from: [0, 0]
    to: [0, 1]
    reward: 0.5
  - from: [1, 1]
    to: [2, 1]
    reward: -3
`
		table, err := LoadRewards(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, gridworld.RewardTable{
			{From: gridworld.Cell{Row: 0, Col: 0}, To: gridworld.Cell{Row: 0, Col: 1}}: 0.5,
			{From: gridworld.Cell{Row: 1, Col: 1}, To: gridworld.Cell{Row: 2, Col: 1}}: -3,
		}, table)
	})

	t.Run("empty document", func(t *testing.T) {
		table, err := LoadRewards(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, table)
	})

	t.Run("diagonal transition", func(t *testing.T) {
		_, err := LoadRewards(strings.NewReader("rewards:\n  - from: [0, 0]\n    to: [1, 1]\n    reward: 1\n"))
		assert.ErrorIs(t, err, ErrNotAdjacent)
	})

	t.Run("duplicate transition", func(t *testing.T) {
		doc := "rewards:\n  - from: [0, 0]\n    to: [0, 1]\n    reward: 1\n  - from: [0, 0]\n    to: [0, 1]\n    reward: 2\n"
		_, err := LoadRewards(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrDuplicateReward)
	})

	t.Run("reverse direction is a different transition", func(t *testing.T) {
		table, err := RewardTable([]RewardEntry{
			{From: [2]int{0, 0}, To: [2]int{0, 1}, Reward: 1},
			{From: [2]int{0, 1}, To: [2]int{0, 0}, Reward: 2},
		})
		require.NoError(t, err)
		assert.Len(t, table, 2)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadRewards(strings.NewReader("rewards: [from"))
		assert.Error(t, err)
	})
}
