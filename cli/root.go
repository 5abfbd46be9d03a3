package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd is the root command for pathfinder.
var rootCmd = &cobra.Command{
	Use:     "pathfinder",
	Version: "dev",
	Short:   "Plan routes for rigid objects on obstacle grids",
	Long: `pathfinder moves a rigid multi-cell object across an obstacle grid to the bottom-right
corner. Routes come from value iteration over the object's feasible placements.

Solve grid files locally, generate maze grids, or serve plans over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print solver diagnostics")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "planning",
		Title: "Planning:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "service",
		Title: "Service:",
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the pathfinder version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and exits non-zero when a command fails.
func Main() {
	if err := Execute(); err != nil {
		PrintError(rootCmd.ErrOrStderr(), err.Error())
		os.Exit(1)
	}
}
