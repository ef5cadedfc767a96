package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "pstviz",
	Short: "Program structure tree visualizer",
	Long: `pstviz computes the program structure tree of a few example
control-flow graphs and renders them as Graphviz dot source, optionally
shelling out to a local "dot" executable to produce SVGs.`,
}

// Execute runs the root command, exiting non-zero only when a subcommand
// reports failure (never merely because Graphviz is absent).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
