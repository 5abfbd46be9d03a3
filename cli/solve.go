package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/gridio"
	"github.com/beka-birhanu/vinom-pathfinder/gridworld"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/spf13/cobra"
)

var (
	solveOpts    gridworld.Options
	solveRewards string
)

// solveCmd plans a route for a grid file and writes the answer.
var solveCmd = &cobra.Command{
	Use:     "solve <grid-file> <out-file>",
	Short:   "Plan a route for a grid file",
	GroupID: "planning",
	Long: `Plan a route for the object in a grid file and write the answer to out-file.

The grid file holds whitespace separated cell codes, one row per line:
0 is free, 1 is an obstacle and 2 is a cell of the object. The answer is the
route as space terminated moves (D, U, R, L), or a message when the object is
already in the corner or cannot reach it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New("SOLVER", config.ColorCyan, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		log.SetVerbose(verbose)

		codes, err := gridio.LoadFile(args[0])
		if err != nil {
			return err
		}

		opts := solveOpts
		if solveRewards != "" {
			opts.Rewards, err = gridio.LoadRewardsFile(solveRewards)
			if err != nil {
				return err
			}
			log.Debug(fmt.Sprintf("Loaded %d reward overrides from %s", len(opts.Rewards), solveRewards))
		}

		world, err := gridworld.NewWorld(codes)
		if err != nil {
			return err
		}

		result, err := world.Solve(opts)
		if err != nil {
			return err
		}
		log.Debug(fmt.Sprintf("Value iteration stopped after %d sweeps (converged=%t)", result.Sweeps, result.Converged))

		answer := result.Route.String()
		if err := gridio.WriteFile(args[1], answer); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if verbose {
			PrintSection(out, "Values")
			_, _ = fmt.Fprint(out, gridworld.RenderValues(world.Grid, result.Values))
			PrintSection(out, "Policy")
			_, _ = fmt.Fprint(out, gridworld.RenderPolicy(world.Grid, result.Policy))
			PrintSection(out, "Route")
			PrintLabelValue(out, "Outcome", result.Route.Outcome.String())
			PrintLabelValue(out, "Moves", strconv.Itoa(len(result.Route.Moves)))
			PrintLabelValue(out, "Sweeps", strconv.Itoa(result.Sweeps))
		}
		PrintSuccess(out, fmt.Sprintf("%s: %s", args[1], answer))
		return nil
	},
}

func init() {
	d := solverDefaults()

	solveCmd.Flags().Float64Var(&solveOpts.Gamma, "gamma", d.Gamma, "Discount factor in [0, 1]")
	solveCmd.Flags().Float64Var(&solveOpts.DefaultReward, "default-reward", d.DefaultReward, "Reward of a move without an override")
	solveCmd.Flags().Float64Var(&solveOpts.FinishValue, "finish-value", d.FinishValue, "Value of the goal placement")
	solveCmd.Flags().IntVar(&solveOpts.Iterations, "iterations", d.Iterations, "Maximum number of sweeps")
	solveCmd.Flags().Float64Var(&solveOpts.Delta, "delta", d.Delta, "Stop once no value changes by more than this")
	solveCmd.Flags().StringVar(&solveRewards, "rewards", "", "YAML file with reward overrides")

	rootCmd.AddCommand(solveCmd)
}

// solverDefaults returns the solver settings from the environment.
func solverDefaults() gridworld.Options {
	return gridworld.Options{
		Gamma:         config.Envs.Gamma,
		DefaultReward: config.Envs.DefaultReward,
		FinishValue:   config.Envs.FinishValue,
		Iterations:    config.Envs.Iterations,
		Delta:         config.Envs.Delta,
	}
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
