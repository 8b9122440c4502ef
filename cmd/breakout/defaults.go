package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default config",
	Long: `Prints the built-in YAML configuration. Save it to
~/.arcade/configs/breakout.yaml or ./configs/breakout.yaml and edit
it to change the grid, layout, physics or lives.`,
	Args: cobra.NoArgs,
	Run:  runDefaults,
}

func runDefaults(cmd *cobra.Command, args []string) {
	if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
