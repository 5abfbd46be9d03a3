package gridworld

// ActionGraph maps every pivot cell to the pivot cells reachable in one move.
// It is built once and never modified afterwards.
type ActionGraph struct {
	actions map[Cell][]Cell
}

// NewActionGraph enumerates the feasible moves for every cell of grid.
//
// The goal cell and cells where the object cannot be placed get no actions. For the rest the
// four translations are tried down, up, right, left and the feasible ones kept in that order.
func NewActionGraph(grid *OccupancyGrid, footprint *Footprint) *ActionGraph {
	actions := make(map[Cell][]Cell, grid.Height*grid.Width)
	for _, c := range grid.Cells() {
		if c == grid.Goal || !footprint.Feasible(c, grid) {
			continue
		}

		for _, offset := range moveOrder {
			target := c.Add(offset)
			if footprint.Feasible(target, grid) {
				actions[c] = append(actions[c], target)
			}
		}
	}

	return &ActionGraph{actions: actions}
}

// Actions returns the cells reachable from c, in enumeration order.
// The returned slice must not be modified.
func (a *ActionGraph) Actions(c Cell) []Cell {
	return a.actions[c]
}

// HasActions reports whether any move leaves c.
func (a *ActionGraph) HasActions(c Cell) bool {
	return len(a.actions[c]) > 0
}
