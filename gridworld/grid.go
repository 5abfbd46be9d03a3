package gridworld

import (
	"errors"
	"fmt"
)

// Cell codes of the grid text format.
const (
	CodeFree     = 0
	CodeObstacle = 1
	CodeObject   = 2
)

var (
	ErrEmptyGrid   = errors.New("grid is empty")
	ErrRaggedGrid  = errors.New("grid rows differ in length")
	ErrUnknownCode = errors.New("unknown cell code")
)

// OccupancyGrid holds the static world: its dimensions, the obstacle cells and the goal cell.
type OccupancyGrid struct {
	Height    int               // Number of rows
	Width     int               // Number of columns
	Goal      Cell              // Always the bottom-right cell
	obstacles map[Cell]struct{} // Blocked cells
}

// NewOccupancyGrid creates a grid of the given dimensions with the given obstacles.
func NewOccupancyGrid(height, width int, obstacles []Cell) (*OccupancyGrid, error) {
	if min(height, width) <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, height, width)
	}

	g := &OccupancyGrid{
		Height:    height,
		Width:     width,
		Goal:      Cell{Row: height - 1, Col: width - 1},
		obstacles: make(map[Cell]struct{}, len(obstacles)),
	}
	for _, c := range obstacles {
		if g.InBounds(c) {
			g.obstacles[c] = struct{}{}
		}
	}
	return g, nil
}

// ParseCodes splits a grid of cell codes into the occupancy grid and the object's footprint.
func ParseCodes(codes [][]int) (*OccupancyGrid, *Footprint, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, nil, ErrEmptyGrid
	}

	width := len(codes[0])
	var obstacles, object []Cell
	for row, line := range codes {
		if len(line) != width {
			return nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, row, len(line), width)
		}
		for col, code := range line {
			switch code {
			case CodeFree:
			case CodeObstacle:
				obstacles = append(obstacles, Cell{Row: row, Col: col})
			case CodeObject:
				object = append(object, Cell{Row: row, Col: col})
			default:
				return nil, nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownCode, code, row, col)
			}
		}
	}

	grid, err := NewOccupancyGrid(len(codes), width, obstacles)
	if err != nil {
		return nil, nil, err
	}

	footprint, err := NewFootprint(object)
	if err != nil {
		return nil, nil, err
	}

	return grid, footprint, nil
}

// InBounds reports whether c lies inside the grid.
func (g *OccupancyGrid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// IsObstacle reports whether c is blocked.
func (g *OccupancyGrid) IsObstacle(c Cell) bool {
	_, blocked := g.obstacles[c]
	return blocked
}

// Cells lists every cell in row-major order.
func (g *OccupancyGrid) Cells() []Cell {
	cells := make([]Cell, 0, g.Height*g.Width)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}
