package gridio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/gridworld"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotAdjacent     = errors.New("reward transition is not a single move")
	ErrDuplicateReward = errors.New("reward transition listed more than once")
)

// rewardFile is the on-disk layout of a reward table:
//
//	rewards:
//	  - from: [0, 0]
//	    to: [0, 1]
//	    reward: 0.5
type rewardFile struct {
	Rewards []RewardEntry `yaml:"rewards"`
}

// RewardEntry overrides the reward of moving the pivot from one cell to an adjacent one.
type RewardEntry struct {
	From   [2]int  `yaml:"from" json:"from"`
	To     [2]int  `yaml:"to" json:"to"`
	Reward float64 `yaml:"reward" json:"reward"`
}

// RewardTable converts entries into a gridworld reward table, rejecting transitions that are
// not single cardinal moves or that appear twice.
func RewardTable(entries []RewardEntry) (gridworld.RewardTable, error) {
	table := make(gridworld.RewardTable, len(entries))
	for i, e := range entries {
		from := gridworld.Cell{Row: e.From[0], Col: e.From[1]}
		to := gridworld.Cell{Row: e.To[0], Col: e.To[1]}
		if d := to.Sub(from); abs(d.Row)+abs(d.Col) != 1 {
			return nil, fmt.Errorf("%w: entry %d %v -> %v", ErrNotAdjacent, i, from, to)
		}
		key := gridworld.Transition{From: from, To: to}
		if _, seen := table[key]; seen {
			return nil, fmt.Errorf("%w: entry %d %v -> %v", ErrDuplicateReward, i, from, to)
		}
		table[key] = e.Reward
	}
	return table, nil
}

// LoadRewards decodes a YAML reward table.
func LoadRewards(r io.Reader) (gridworld.RewardTable, error) {
	var file rewardFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return gridworld.RewardTable{}, nil
		}
		return nil, fmt.Errorf("decoding rewards: %w", err)
	}
	return RewardTable(file.Rewards)
}

// LoadRewardsFile opens path and decodes the reward table it contains.
func LoadRewardsFile(path string) (gridworld.RewardTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadRewards(f)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
