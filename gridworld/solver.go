package gridworld

import (
	"math"
	"maps"
)

// ValueFunction maps every cell to its estimated value.
type ValueFunction map[Cell]float64

// Decision is the greedy choice for one cell.
type Decision struct {
	Next  Cell      // Cell the pivot moves to; the cell itself when there is no move
	Label Direction // Label of the move, NoMove for a self-loop
}

// Policy maps every cell to its greedy decision.
type Policy map[Cell]Decision

// Solver runs synchronous value iteration over an action graph.
//
// Every sweep reads the value function produced by the previous sweep and writes a new one;
// the live values are never updated in place.
type Solver struct {
	grid      *OccupancyGrid
	graph     *ActionGraph
	opts      Options
	cells     []Cell
	values    ValueFunction
	policy    Policy
	sweeps    int
	converged bool
}

// NewSolver seeds the value function and policy for grid.
// All values start at zero except the goal, which is pinned to the finish value,
// and every cell starts as a self-loop.
func NewSolver(grid *OccupancyGrid, graph *ActionGraph, opts Options) *Solver {
	if opts.Rewards == nil {
		opts.Rewards = RewardTable{}
	}

	cells := grid.Cells()
	values := make(ValueFunction, len(cells))
	policy := make(Policy, len(cells))
	for _, c := range cells {
		values[c] = 0
		policy[c] = Decision{Next: c, Label: NoMove}
	}
	values[grid.Goal] = opts.FinishValue

	return &Solver{
		grid:   grid,
		graph:  graph,
		opts:   opts,
		cells:  cells,
		values: values,
		policy: policy,
	}
}

// Sweep performs one synchronous Bellman backup over every cell and returns the largest
// absolute change of any value.
func (s *Solver) Sweep() float64 {
	next := maps.Clone(s.values)
	maxChange := math.Inf(-1)

	for _, c := range s.cells {
		value, best := s.backup(c)
		next[c] = value
		s.policy[c] = Decision{Next: best, Label: DirectionBetween(c, best)}
		maxChange = math.Max(maxChange, math.Abs(value-s.values[c]))
	}

	s.values = next
	s.sweeps++
	return maxChange
}

// backup computes the value of c from the current snapshot together with the neighbour
// that achieves it. Cells without actions keep their value and point at themselves.
func (s *Solver) backup(c Cell) (float64, Cell) {
	actions := s.graph.Actions(c)
	if len(actions) == 0 {
		return s.values[c], c
	}

	best := c
	bestValue := math.Inf(-1)
	for _, n := range actions {
		// strict comparison keeps the earliest action on ties
		if v := s.opts.reward(c, n) + s.opts.Gamma*s.values[n]; v > bestValue {
			bestValue = v
			best = n
		}
	}
	return bestValue, best
}

// Run sweeps until no value moves by more than the configured precision or the
// iteration cap is hit. Hitting the cap is not an error; Converged reports which case applied.
func (s *Solver) Run() {
	for s.sweeps < s.opts.Iterations {
		if s.Sweep() <= s.opts.Delta {
			s.converged = true
			return
		}
	}
}

// Values returns a copy of the current value function.
func (s *Solver) Values() ValueFunction {
	return maps.Clone(s.values)
}

// Policy returns a copy of the current policy.
func (s *Solver) Policy() Policy {
	return maps.Clone(s.policy)
}

// Sweeps returns the number of sweeps performed so far.
func (s *Solver) Sweeps() int {
	return s.sweeps
}

// Converged reports whether the last Run stopped on the precision threshold.
func (s *Solver) Converged() bool {
	return s.converged
}
