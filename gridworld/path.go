package gridworld

import "strings"

// Outcome classifies a reconstructed route.
type Outcome int

const (
	OutcomeReached Outcome = iota
	OutcomeAlreadyAtGoal
	OutcomeNoPath
)

const (
	alreadyAtGoalMessage = "Object already in most lower-right position"
	noPathMessage        = "No path"
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReached:
		return "reached"
	case OutcomeAlreadyAtGoal:
		return "already_at_goal"
	case OutcomeNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Route is the result of following a policy from the object's pivot.
type Route struct {
	Outcome Outcome
	Moves   []Direction // Labels in travel order
	Cells   []Cell      // Pivot cells visited, starting cell first
}

// Reconstruct follows policy from start until it reaches goal or revisits a cell.
func Reconstruct(start, goal Cell, policy Policy) Route {
	if start == goal {
		return Route{Outcome: OutcomeAlreadyAtGoal, Cells: []Cell{start}}
	}

	route := Route{Outcome: OutcomeReached}
	visited := make(map[Cell]struct{})
	current := start
	for current != goal {
		if _, seen := visited[current]; seen {
			route.Outcome = OutcomeNoPath
			break
		}
		decision := policy[current]
		route.Cells = append(route.Cells, current)
		route.Moves = append(route.Moves, decision.Label)
		visited[current] = struct{}{}
		current = decision.Next
	}

	if route.Outcome == OutcomeReached {
		route.Cells = append(route.Cells, goal)
	}
	return route
}

// String renders the route the way the planner reports it: space-terminated labels on
// success, or a fixed message otherwise.
func (r Route) String() string {
	switch r.Outcome {
	case OutcomeAlreadyAtGoal:
		return alreadyAtGoalMessage
	case OutcomeNoPath:
		return noPathMessage
	}

	var sb strings.Builder
	for _, m := range r.Moves {
		sb.WriteByte(byte(m))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Replay applies moves to start and returns the final cell.
func Replay(start Cell, moves []Direction) Cell {
	for _, m := range moves {
		start = start.Add(m.Offset())
	}
	return start
}
