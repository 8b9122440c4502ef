// Package config provides YAML-based game configuration loading and
// difficulty management for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	Grid       BreakoutGrid     `yaml:"grid"`
	Layout     BreakoutLayout   `yaml:"layout"`
	Physics    BreakoutPhysics  `yaml:"physics"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Skin       BreakoutSkin     `yaml:"skin"`
	Display    BreakoutDisplay  `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutGrid defines the brick grid dimensions.
type BreakoutGrid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// BreakoutLayout defines how world dimensions derive from the viewport.
// Ratios are fractions of the viewport width; minimums are world units.
type BreakoutLayout struct {
	PaddleHeight     float64 `yaml:"paddle_height"`
	PaddleBottomGap  float64 `yaml:"paddle_bottom_gap"`
	PaddleMinWidth   float64 `yaml:"paddle_min_width"`
	PaddleWidthRatio float64 `yaml:"paddle_width_ratio"`
	BallMinRadius    float64 `yaml:"ball_min_radius"`
	BallRadiusRatio  float64 `yaml:"ball_radius_ratio"`
	BrickMinWidth    float64 `yaml:"brick_min_width"`
	BrickWidthRatio  float64 `yaml:"brick_width_ratio"`
	BrickHeight      float64 `yaml:"brick_height"`
	BrickPadding     float64 `yaml:"brick_padding"`
	BrickOffsetTop   float64 `yaml:"brick_offset_top"`
	BallStartOffset  float64 `yaml:"ball_start_offset"` // Distance of the serve point above the bottom
}

// BreakoutPhysics defines ball and paddle motion parameters (world units per frame).
type BreakoutPhysics struct {
	StartVX       float64 `yaml:"start_vx"`
	StartVY       float64 `yaml:"start_vy"`
	SpeedFloor    float64 `yaml:"speed_floor"`
	DeflectionFan float64 `yaml:"deflection_fan"` // Degrees swept edge to edge
	PaddleSpeed   float64 `yaml:"paddle_speed"`
}

// BreakoutGameplay defines session rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// BreakoutSkin describes the ball sprite sheet.
type BreakoutSkin struct {
	Columns int    `yaml:"columns"`
	Rows    int    `yaml:"rows"`
	Glyphs  string `yaml:"glyphs"` // Row-major cells, one rune per cell
}

// BreakoutDisplay maps world units to terminal cells.
type BreakoutDisplay struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed floor multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid breakout config")

// Validate checks the values the simulation relies on being positive.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Grid.Columns <= 0 || c.Grid.Rows <= 0:
		return fmt.Errorf("%w: grid must have at least one column and row, got %dx%d",
			ErrInvalidConfig, c.Grid.Columns, c.Grid.Rows)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Physics.SpeedFloor <= 0:
		return fmt.Errorf("%w: speed_floor must be positive, got %g", ErrInvalidConfig, c.Physics.SpeedFloor)
	case c.Layout.BallMinRadius <= 0:
		return fmt.Errorf("%w: ball_min_radius must be positive, got %g", ErrInvalidConfig, c.Layout.BallMinRadius)
	case c.Layout.PaddleMinWidth <= 0 || c.Layout.BrickMinWidth <= 0 || c.Layout.BrickHeight <= 0:
		return fmt.Errorf("%w: paddle and brick sizes must be positive", ErrInvalidConfig)
	case c.Skin.Columns <= 0 || c.Skin.Rows <= 0:
		return fmt.Errorf("%w: skin sheet must have at least one cell, got %dx%d",
			ErrInvalidConfig, c.Skin.Columns, c.Skin.Rows)
	case c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0:
		return fmt.Errorf("%w: display cell size must be positive", ErrInvalidConfig)
	}
	return nil
}
