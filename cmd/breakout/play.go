package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagNoColor   bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Emoji Breakout.

Controls:
  Left/A, Right/D  - Move paddle (or move the mouse)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 7 lives, faster paddle
  normal - Bounce speed floor grows with the score
  hard   - 3 lives, bounce speed floor starts higher and grows with the score
  fixed  - No difficulty scaling

Without --difficulty a start menu asks for one.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags shared by the root and play commands.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Render without colors")
	cmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 8, "Ticks one key press keeps the paddle moving")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Get terminal size early for the difficulty menu
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if flagDifficulty == "" {
		chosen, ok, menuErr := tui.RunDifficultyMenu(cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		// User quit the menu
		if !ok {
			return
		}
		preset = chosen
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(preset)

	game, err := registry.Create("breakout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if cabinet, ok := game.(*breakout.Cabinet); ok {
		cabinet.SetListener(tui.EventLogger(logger))
		// Load the config before the alt screen so a broken file is visible
		cabinet.Reset(cfg)
		if cfgErr := cabinet.ConfigError(); cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", cfgErr)
			logger.Warn("config", "err", cfgErr)
		}
	}

	opts := tui.Options{
		Logger:    logger,
		HoldTicks: flagHoldTicks,
	}
	if flagNoColor {
		opts.Palette = tui.MonochromePalette()
	}

	logger.Info("starting", "difficulty", preset, "fps", flagFPS)
	if err := tui.Run(game, cfg, opts); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the structured logger. With no path, logs are discarded
// since the game owns the terminal.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
		Level:           lvl,
	})
	return logger, func() { _ = f.Close() }, nil
}
