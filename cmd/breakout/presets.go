package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show what each difficulty preset changes",
	Long: `Applies every difficulty preset to the loaded config (--config or the
usual search path) and prints lives, paddle speed, progression and the
paddle-bounce speed floor at the start and at full difficulty.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

// presetRow is one line of the presets table.
type presetRow struct {
	Name        string
	Lives       int
	PaddleSpeed float64
	Progression string
	FloorStart  float64
	FloorMax    float64
}

var presetOrder = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

func presetRows(base config.BreakoutConfig) []presetRow {
	rows := make([]presetRow, 0, len(presetOrder))
	for _, preset := range presetOrder {
		cfg := base
		config.ApplyBreakoutPreset(&cfg, preset)
		dm := config.NewDifficultyManager(cfg.Difficulty)

		name := string(preset)
		if name == "" {
			name = "(config)"
		}
		progression := cfg.Difficulty.Progression.Type
		if !cfg.Difficulty.Enabled {
			progression = "off"
		}
		maxAt := cfg.Difficulty.Progression.MaxAt

		rows = append(rows, presetRow{
			Name:        name,
			Lives:       cfg.Gameplay.Lives,
			PaddleSpeed: cfg.Physics.PaddleSpeed,
			Progression: progression,
			FloorStart:  dm.Floor(cfg.Physics.SpeedFloor, 0, 0),
			FloorMax:    dm.Floor(cfg.Physics.SpeedFloor, maxAt, maxAt),
		})
	}
	return rows
}

func writePresets(w io.Writer, rows []presetRow) {
	fmt.Fprintf(w, "  %-9s %5s %7s %-11s %s\n", "Preset", "Lives", "Paddle", "Progression", "Speed floor")
	fmt.Fprintf(w, "  %-9s %5s %7s %-11s %s\n", "------", "-----", "------", "-----------", "-----------")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-9s %5d %7.1f %-11s %.2f -> %.2f\n",
			r.Name, r.Lives, r.PaddleSpeed, r.Progression, r.FloorStart, r.FloorMax)
	}
}

func runPresets(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	writePresets(os.Stdout, presetRows(cfg))
}
