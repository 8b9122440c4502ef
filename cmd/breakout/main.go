// breakout is a terminal Breakout/Arkanoid game with an emoji ball.
//
// Usage:
//
//	breakout                  - Play (difficulty menu unless --difficulty is set)
//	breakout play             - Same as above
//	breakout presets          - Show what each difficulty preset changes
//	breakout defaults         - Print the default YAML config
//	breakout simulate         - Run the simulation headless and print a summary
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom YAML config
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write structured logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Emoji Breakout - break bricks in your terminal",
	Long: `Emoji Breakout is a Breakout/Arkanoid game for the terminal.
Bounce the ball off the paddle to clear a 7x5 wall of bricks
before your lives run out. The ball changes skin on every bounce.

Available commands:
  play      - Play the game (default)
  presets   - Show what each difficulty preset changes
  defaults  - Print the default config
  simulate  - Run the simulation headless

Examples:
  breakout
  breakout --difficulty hard
  breakout --config ./my-breakout.yaml --log-file /tmp/breakout.log
  breakout defaults > ~/.arcade/configs/breakout.yaml
  breakout simulate --frames 5000 --seed 42`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(simulateCmd)
}
