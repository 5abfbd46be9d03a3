package maze

// Cell represents a single cell in a maze.
// A wall flag is cleared when a passage to that neighbour is carved.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
}

// CellPosition represents the position of a cell in the maze.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Move represents a step from one cell to a neighbouring one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}
