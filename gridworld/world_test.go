package gridworld

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name  string
		codes [][]int
		want  string
	}{
		{
			name:  "object already on the goal",
			codes: [][]int{{2}},
			want:  "Object already in most lower-right position",
		},
		{
			name: "open grid prefers moving down first",
			codes: [][]int{
				{2, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: "D D R R ",
		},
		{
			name: "wall between object and goal",
			codes: [][]int{
				{2, 0, 0},
				{1, 1, 1},
				{0, 0, 0},
			},
			want: "No path",
		},
		{
			name: "vertical domino",
			codes: [][]int{
				{2, 0, 0},
				{2, 0, 0},
				{0, 0, 0},
			},
			want: "D R R ",
		},
		{
			name: "domino too wide for the gap",
			codes: [][]int{
				{2, 2, 0},
				{0, 1, 0},
				{0, 1, 0},
			},
			want: "No path",
		},
		{
			name: "obstacle forces a detour",
			codes: [][]int{
				{2, 1, 0},
				{0, 1, 0},
				{0, 0, 0},
			},
			want: "D D R R ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.codes, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveRewardOverrides(t *testing.T) {
	codes := [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}

	opts := DefaultOptions()
	opts.Rewards = RewardTable{
		{From: Cell{Row: 0, Col: 0}, To: Cell{Row: 0, Col: 1}}: 0,
	}

	got, err := Solve(codes, opts)
	require.NoError(t, err)
	assert.Equal(t, "R D D R ", got)

	// the override must not leak into a later solve with fresh options
	got, err = Solve(codes, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "D D R R ", got)
}

func TestSolveRoundTrip(t *testing.T) {
	world, err := NewWorld([][]int{
		{0, 2, 2, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 1, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	result, err := world.Solve(DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, OutcomeReached, result.Route.Outcome)

	route := result.Route
	assert.Equal(t, world.Grid.Goal, Replay(world.Footprint.Pivot, route.Moves))
	require.Len(t, route.Cells, len(route.Moves)+1)
	for i, m := range route.Moves {
		assert.Equal(t, route.Cells[i+1], route.Cells[i].Add(m.Offset()))
		assert.True(t, world.Footprint.Feasible(route.Cells[i+1], world.Grid))
	}

	labels := strings.Fields(route.String())
	assert.Len(t, labels, len(route.Moves))
	assert.True(t, strings.HasSuffix(route.String(), " "))
}

func TestSolveDeterminism(t *testing.T) {
	codes := [][]int{
		{2, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0},
	}

	first, err := Solve(codes, DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		got, err := Solve(codes, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestSolveErrors(t *testing.T) {
	t.Run("invalid options", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Gamma = 2
		_, err := Solve([][]int{{2, 0}}, opts)
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})

	t.Run("NaN gamma is not a silent no path", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Gamma = math.NaN()
		got, err := Solve([][]int{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}}, opts)
		assert.ErrorIs(t, err, ErrInvalidOptions)
		assert.Empty(t, got)
	})

	t.Run("NaN delta", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Delta = math.NaN()
		_, err := Solve([][]int{{2, 0, 0}, {0, 0, 0}, {0, 0, 0}}, opts)
		assert.ErrorIs(t, err, ErrInvalidOptions)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := Solve([][]int{{0, 0}}, DefaultOptions())
		assert.ErrorIs(t, err, ErrNoObject)
	})
}

func TestReconstruct(t *testing.T) {
	a, b, goal := Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 1}, Cell{Row: 1, Col: 1}

	t.Run("follows the policy to the goal", func(t *testing.T) {
		policy := Policy{
			a: {Next: b, Label: Right},
			b: {Next: goal, Label: Down},
		}
		route := Reconstruct(a, goal, policy)
		assert.Equal(t, OutcomeReached, route.Outcome)
		assert.Equal(t, []Direction{Right, Down}, route.Moves)
		assert.Equal(t, []Cell{a, b, goal}, route.Cells)
		assert.Equal(t, "R D ", route.String())
	})

	t.Run("cycle means no path", func(t *testing.T) {
		policy := Policy{
			a: {Next: b, Label: Right},
			b: {Next: a, Label: Left},
		}
		route := Reconstruct(a, goal, policy)
		assert.Equal(t, OutcomeNoPath, route.Outcome)
		assert.Equal(t, "No path", route.String())
	})

	t.Run("self-loop means no path", func(t *testing.T) {
		route := Reconstruct(a, goal, Policy{a: {Next: a, Label: NoMove}})
		assert.Equal(t, OutcomeNoPath, route.Outcome)
	})

	t.Run("start on goal", func(t *testing.T) {
		route := Reconstruct(goal, goal, Policy{})
		assert.Equal(t, OutcomeAlreadyAtGoal, route.Outcome)
		assert.Equal(t, "Object already in most lower-right position", route.String())
	})
}

func TestRender(t *testing.T) {
	world, err := NewWorld([][]int{
		{2, 1},
		{0, 0},
	})
	require.NoError(t, err)

	result, err := world.Solve(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "D#\nR-\n", RenderPolicy(world.Grid, result.Policy))

	values := RenderValues(world.Grid, result.Values)
	lines := strings.Split(strings.TrimSuffix(values, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, " 10.000", lines[1][len(lines[1])-7:])
}
