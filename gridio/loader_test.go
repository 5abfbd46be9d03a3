package gridio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid grid", func(t *testing.T) {
		grid, err := Load(strings.NewReader("2 0 0\n0 1 0\n\n0 0 0\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{2, 0, 0}, {0, 1, 0}, {0, 0, 0}}, grid)
	})

	t.Run("tabs and trailing spaces", func(t *testing.T) {
		grid, err := Load(strings.NewReader("2\t0  \n 0 0"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{2, 0}, {0, 0}}, grid)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Load(strings.NewReader("\n  \n"))
		assert.ErrorIs(t, err, ErrEmptyGrid)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := Load(strings.NewReader("2 0\n0\n"))
		assert.ErrorIs(t, err, ErrRaggedGrid)
	})

	t.Run("row wider than the default scanner buffer", func(t *testing.T) {
		width := 50000
		row := strings.TrimSpace(strings.Repeat("0 ", width))
		grid, err := Load(strings.NewReader("2" + row[1:] + "\n" + row + "\n"))
		require.NoError(t, err)
		require.Len(t, grid, 2)
		assert.Len(t, grid[0], width)
		assert.Equal(t, 2, grid[0][0])
	})

	t.Run("non-integer token", func(t *testing.T) {
		_, err := Load(strings.NewReader("2 0\n0 x\n"))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
		assert.Equal(t, 2, parseErr.Column)
		assert.Equal(t, "x", parseErr.Token)
	})
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	grid := [][]int{{2, 2, 0}, {0, 1, 0}}

	in := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(in, []byte(Format(grid)), 0o644))

	loaded, err := LoadFile(in)
	require.NoError(t, err)
	assert.Equal(t, grid, loaded)

	out := filepath.Join(dir, "answer.txt")
	require.NoError(t, WriteFile(out, "D R "))
	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "D R ", string(written))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
