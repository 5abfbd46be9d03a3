package gridworld

import (
	"errors"
	"fmt"
	"math"
)

const (
	defaultGamma       = 0.9
	defaultReward      = -1.0
	defaultFinishValue = 10.0
	defaultIterations  = 100
	defaultDelta       = 0.001
)

var (
	ErrInvalidOptions = errors.New("invalid solver options")
)

// Transition is a single move of the pivot, used to key reward overrides.
type Transition struct {
	From Cell
	To   Cell
}

// RewardTable overrides the reward of individual transitions.
// Transitions without an entry earn the default reward.
type RewardTable map[Transition]float64

// Options configures a solve.
type Options struct {
	Gamma         float64     // Discount factor in [0, 1]
	DefaultReward float64     // Reward of a move without an override
	FinishValue   float64     // Value the goal cell is pinned to
	Iterations    int         // Maximum number of sweeps
	Delta         float64     // Sweeps stop once no value changes by more than this
	Rewards       RewardTable // Per-transition overrides, may be nil
}

// DefaultOptions returns the planner's stock settings with an empty reward table.
func DefaultOptions() Options {
	return Options{
		Gamma:         defaultGamma,
		DefaultReward: defaultReward,
		FinishValue:   defaultFinishValue,
		Iterations:    defaultIterations,
		Delta:         defaultDelta,
		Rewards:       RewardTable{},
	}
}

// Validate checks the numeric settings. The comparisons are written so NaN fails them.
func (o Options) Validate() error {
	if !(o.Gamma >= 0 && o.Gamma <= 1) {
		return fmt.Errorf("%w: gamma %v outside [0, 1]", ErrInvalidOptions, o.Gamma)
	}
	if o.Iterations < 0 {
		return fmt.Errorf("%w: negative iteration cap %d", ErrInvalidOptions, o.Iterations)
	}
	if !(o.Delta >= 0) || math.IsInf(o.Delta, 1) {
		return fmt.Errorf("%w: precision %v must be a finite non-negative number", ErrInvalidOptions, o.Delta)
	}
	if !finite(o.DefaultReward) {
		return fmt.Errorf("%w: default reward %v is not finite", ErrInvalidOptions, o.DefaultReward)
	}
	if !finite(o.FinishValue) {
		return fmt.Errorf("%w: finish value %v is not finite", ErrInvalidOptions, o.FinishValue)
	}
	for t, r := range o.Rewards {
		if !finite(r) {
			return fmt.Errorf("%w: reward %v for %v -> %v is not finite", ErrInvalidOptions, r, t.From, t.To)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// reward returns the reward for moving from one cell to another.
func (o Options) reward(from, to Cell) float64 {
	if r, ok := o.Rewards[Transition{From: from, To: to}]; ok {
		return r
	}
	return o.DefaultReward
}
