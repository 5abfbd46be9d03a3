package gridworld

// Direction labels a single move of the pivot.
type Direction byte

const (
	NoMove Direction = '-'
	Up     Direction = 'U'
	Down   Direction = 'D'
	Left   Direction = 'L'
	Right  Direction = 'R'
)

// moveOrder is the order in which translations are tried when building actions.
// Value ties are broken in favour of the earlier entry.
var moveOrder = []Cell{
	{Row: 1, Col: 0},  // down
	{Row: -1, Col: 0}, // up
	{Row: 0, Col: 1},  // right
	{Row: 0, Col: -1}, // left
}

// DirectionBetween labels the move from one pivot cell to another.
//
// Labels are assigned in the order D, R, U, L with later matches overwriting earlier ones. Only
// one component is non-zero for the single-step moves the planner makes, so the overwrite chain
// never has anything to resolve.
func DirectionBetween(from, to Cell) Direction {
	d := to.Sub(from)

	label := NoMove
	if d.Row > 0 {
		label = Down
	}
	if d.Col > 0 {
		label = Right
	}
	if d.Row < 0 {
		label = Up
	}
	if d.Col < 0 {
		label = Left
	}
	return label
}

// Offset returns the unit displacement the direction stands for.
func (d Direction) Offset() Cell {
	switch d {
	case Up:
		return Cell{Row: -1}
	case Down:
		return Cell{Row: 1}
	case Left:
		return Cell{Col: -1}
	case Right:
		return Cell{Col: 1}
	default:
		return Cell{}
	}
}

func (d Direction) String() string {
	return string(rune(d))
}
