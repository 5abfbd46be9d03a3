/*
Package maze generates random perfect mazes with Wilson's algorithm and turns them into
obstacle grids for the planner.

A maze of w x h cells becomes a (2h-1) x (2w-1) occupancy grid: maze cells sit on even
coordinates, the slots between them are free where a passage was carved and blocked otherwise,
and the odd/odd corners are always blocked. Because the maze is a spanning tree, every free cell
of the grid, the goal corner included, is reachable from the object's start cell.
*/
package maze

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/gridworld"
)

const (
	maxMazeDimension = 50
)

var (
	directions = []struct {
		name  string
		delta CellPosition
	}{
		{"North", CellPosition{Row: -1, Col: 0}},
		{"South", CellPosition{Row: 1, Col: 0}},
		{"East", CellPosition{Row: 0, Col: 1}},
		{"West", CellPosition{Row: 0, Col: -1}},
	}
)

// WilsonMaze represents a rectangular maze of cells with walls.
type WilsonMaze struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Grid   [][]Cell // 2D grid of cells forming the maze
	rng    *rand.Rand
}

// New generates a maze of the given dimensions using rng for every random choice,
// so a fixed seed always yields the same maze.
func New(width, height int, rng *rand.Rand) (*WilsonMaze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}

	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
		for j := range grid[i] {
			grid[i][j] = Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
		}
	}

	m := &WilsonMaze{Width: width, Height: height, Grid: grid, rng: rng}
	m.generate()
	return m, nil
}

// randomCellPosition picks a random position within the maze.
func (m *WilsonMaze) randomCellPosition() CellPosition {
	return CellPosition{Row: m.rng.Intn(m.Height), Col: m.rng.Intn(m.Width)}
}

// randomUnvisitedCellPosition picks a random position that is not yet part of the maze.
func (m *WilsonMaze) randomUnvisitedCellPosition(visited map[CellPosition]struct{}) CellPosition {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists the moves from pos that stay inside the maze.
func (m *WilsonMaze) neighbors(pos CellPosition) []Move {
	var result []Move
	for _, dir := range directions {
		neighbor := CellPosition{Row: pos.Row + dir.delta.Row, Col: pos.Col + dir.delta.Col}
		if neighbor.Row >= 0 && neighbor.Row < m.Height && neighbor.Col >= 0 && neighbor.Col < m.Width {
			result = append(result, Move{From: pos, To: neighbor, Direction: dir.name})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells.
func (m *WilsonMaze) openWall(move Move) {
	from, to := &m.Grid[move.From.Row][move.From.Col], &m.Grid[move.To.Row][move.To.Col]
	switch move.Direction {
	case "North":
		from.NorthWall, to.SouthWall = false, false
	case "South":
		from.SouthWall, to.NorthWall = false, false
	case "East":
		from.EastWall, to.WestWall = false, false
	case "West":
		from.WestWall, to.EastWall = false, false
	}
}

// randomWalk performs a loop-erased random walk from an unvisited cell until it hits the maze.
// Recording only the last exit from each cell erases the loops.
func (m *WilsonMaze) randomWalk(visited map[CellPosition]struct{}) (CellPosition, map[CellPosition]Move) {
	start := m.randomUnvisitedCellPosition(visited)
	exits := make(map[CellPosition]Move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		next := neighbors[m.rng.Intn(len(neighbors))]
		exits[cell] = next
		if _, included := visited[next.To]; included {
			break
		}
		cell = next.To
	}

	return start, exits
}

// generate carves the maze with Wilson's algorithm.
func (m *WilsonMaze) generate() {
	visited := map[CellPosition]struct{}{m.randomCellPosition(): {}}

	for len(visited) < m.Width*m.Height {
		start, exits := m.randomWalk(visited)
		// following the last exits from start yields the loop-erased path
		cell := start
		for {
			move := exits[cell]
			m.openWall(move)
			visited[cell] = struct{}{}
			if _, done := visited[move.To]; done {
				break
			}
			cell = move.To
		}
	}
}

// Occupancy renders the maze as planner cell codes with a single-cell object in the
// top-left corner.
func (m *WilsonMaze) Occupancy() [][]int {
	rows, cols := 2*m.Height-1, 2*m.Width-1
	codes := make([][]int, rows)
	for r := range codes {
		codes[r] = make([]int, cols)
		for c := range codes[r] {
			if r%2 == 1 || c%2 == 1 {
				codes[r][c] = gridworld.CodeObstacle
			}
		}
	}

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			if !cell.SouthWall && row < m.Height-1 {
				codes[2*row+1][2*col] = gridworld.CodeFree
			}
			if !cell.EastWall && col < m.Width-1 {
				codes[2*row][2*col+1] = gridworld.CodeFree
			}
		}
	}

	codes[0][0] = gridworld.CodeObject
	return codes
}

// String provides a textual representation of the maze.
func (m *WilsonMaze) String() string {
	var sb strings.Builder

	sb.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")
	for row := 0; row < m.Height; row++ {
		sb.WriteString("|")
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].EastWall {
				sb.WriteString("   |")
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteString("\n+")
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col].SouthWall {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
