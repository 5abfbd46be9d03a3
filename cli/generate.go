package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/gridio"
	"github.com/beka-birhanu/vinom-pathfinder/logger"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/spf13/cobra"
)

var (
	generateWidth  int
	generateHeight int
	generateSeed   int64
	generateForce  bool
)

// generateCmd writes a random maze as a grid file.
var generateCmd = &cobra.Command{
	Use:     "generate <out-file>",
	Short:   "Write a random maze grid file",
	GroupID: "planning",
	Long: `Generate a perfect maze with Wilson's algorithm and write it as a grid file
with a single-cell object in the top-left corner. Every generated grid has a route
to the bottom-right corner. Use --seed to reproduce a maze.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New("MAZE", config.ColorYellow, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		log.SetVerbose(verbose)

		if exists(args[0]) && !generateForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", args[0])
		}

		seed := generateSeed
		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}

		m, err := maze.New(generateWidth, generateHeight, rand.New(rand.NewSource(seed)))
		if err != nil {
			return err
		}
		log.Debug(fmt.Sprintf("Generated %dx%d maze with seed %d", generateWidth, generateHeight, seed))

		if err := os.WriteFile(args[0], []byte(gridio.Format(m.Occupancy())), 0o644); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if verbose {
			_, _ = fmt.Fprint(out, m.String())
		}
		PrintSuccess(out, fmt.Sprintf("%s: %dx%d maze (seed %d)", args[0], generateWidth, generateHeight, seed))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateWidth, "width", 8, "Maze width in cells")
	generateCmd.Flags().IntVar(&generateHeight, "height", 8, "Maze height in cells")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed, defaults to the current time")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "Overwrite an existing file")

	rootCmd.AddCommand(generateCmd)
}
