package gridworld

// World bundles everything built from one grid: the static grid, the object and its moves.
type World struct {
	Grid      *OccupancyGrid
	Footprint *Footprint
	Actions   *ActionGraph
}

// Result is the complete outcome of a solve.
type Result struct {
	Route     Route
	Values    ValueFunction
	Policy    Policy
	Sweeps    int
	Converged bool
}

// NewWorld builds the grid, footprint and action graph for a grid of cell codes.
func NewWorld(codes [][]int) (*World, error) {
	grid, footprint, err := ParseCodes(codes)
	if err != nil {
		return nil, err
	}

	return &World{
		Grid:      grid,
		Footprint: footprint,
		Actions:   NewActionGraph(grid, footprint),
	}, nil
}

// Solve runs value iteration and reconstructs the route from the object's pivot.
func (w *World) Solve(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	solver := NewSolver(w.Grid, w.Actions, opts)
	solver.Run()
	policy := solver.Policy()

	return &Result{
		Route:     Reconstruct(w.Footprint.Pivot, w.Grid.Goal, policy),
		Values:    solver.Values(),
		Policy:    policy,
		Sweeps:    solver.Sweeps(),
		Converged: solver.Converged(),
	}, nil
}

// Solve plans a route for the grid of cell codes and returns the rendered answer.
func Solve(codes [][]int, opts Options) (string, error) {
	world, err := NewWorld(codes)
	if err != nil {
		return "", err
	}

	result, err := world.Solve(opts)
	if err != nil {
		return "", err
	}
	return result.Route.String(), nil
}
