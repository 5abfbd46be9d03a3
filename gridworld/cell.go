/*
Package gridworld plans routes for a rigid object across an obstacle grid.

The object is described by a `Footprint` (a pivot cell plus offsets), the grid by an
`OccupancyGrid`. An `ActionGraph` enumerates the feasible one-step translations of the pivot,
a `Solver` runs discounted value iteration over the resulting deterministic MDP, and
`Reconstruct` follows the greedy policy from the object's pivot to the goal cell in the
bottom-right corner.
*/
package gridworld

import "fmt"

// Cell is a (row, col) position on the grid. It is comparable and used as a map key.
type Cell struct {
	Row int // Row index, growing downwards
	Col int // Column index, growing to the right
}

// Add returns the cell translated by offset.
func (c Cell) Add(offset Cell) Cell {
	return Cell{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
}

// Sub returns the displacement from other to c.
func (c Cell) Sub(other Cell) Cell {
	return Cell{Row: c.Row - other.Row, Col: c.Col - other.Col}
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
