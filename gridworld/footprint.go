package gridworld

import "errors"

var (
	ErrNoObject = errors.New("grid contains no object cells")
)

// Footprint describes the movable object independently of where it is placed.
//
// The pivot is the componentwise maximum of the occupied cells: the largest row and, separately,
// the largest column. For shapes that do not fill their bounding box's bottom-right corner the
// pivot is not itself occupied; placement checks only ever use the mask, so that is fine.
type Footprint struct {
	Pivot Cell   // Pivot of the initial placement
	Mask  []Cell // Offsets of every occupied cell relative to the pivot
}

// NewFootprint derives the pivot and mask from the cells the object occupies.
func NewFootprint(occupied []Cell) (*Footprint, error) {
	if len(occupied) == 0 {
		return nil, ErrNoObject
	}

	pivot := occupied[0]
	for _, c := range occupied[1:] {
		pivot.Row = max(pivot.Row, c.Row)
		pivot.Col = max(pivot.Col, c.Col)
	}

	mask := make([]Cell, 0, len(occupied))
	for _, c := range occupied {
		mask = append(mask, c.Sub(pivot))
	}

	return &Footprint{Pivot: pivot, Mask: mask}, nil
}

// Cells returns the cells the object covers when its pivot sits at pivot.
func (f *Footprint) Cells(pivot Cell) []Cell {
	cells := make([]Cell, 0, len(f.Mask))
	for _, offset := range f.Mask {
		cells = append(cells, pivot.Add(offset))
	}
	return cells
}

// Feasible reports whether the object can be placed with its pivot at pivot: every covered cell
// must be inside the grid and free of obstacles.
func (f *Footprint) Feasible(pivot Cell, grid *OccupancyGrid) bool {
	for _, offset := range f.Mask {
		c := pivot.Add(offset)
		if !grid.InBounds(c) || grid.IsObstacle(c) {
			return false
		}
	}
	return true
}
