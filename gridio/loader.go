// Package gridio reads planner inputs from disk and writes answers back.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single grid row; bufio's default of 64 KiB is too small for wide grids.
const maxLineBytes = 16 << 20

var (
	ErrEmptyGrid  = errors.New("file is empty")
	ErrRaggedGrid = errors.New("grid rows differ in length")
)

// ParseError reports a token that is not an integer cell code.
type ParseError struct {
	Line   int    // 1-based line number
	Column int    // 1-based token index within the line
	Token  string // Offending token
	Err    error  // Underlying conversion error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, token %d: invalid cell code %q: %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a whitespace-delimited grid of integer cell codes, one row per line.
// Blank lines are skipped.
func Load(r io.Reader) ([][]int, error) {
	var grid [][]int
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, 0, len(fields))
		for i, field := range fields {
			code, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Token: field, Err: err}
			}
			row = append(row, code)
		}

		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedGrid, line, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	return grid, nil
}

// LoadFile opens path and loads the grid it contains.
func LoadFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Format renders a grid of cell codes in the format Load reads.
func Format(grid [][]int) string {
	var sb strings.Builder
	for _, row := range grid {
		for i, code := range row {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(code))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
