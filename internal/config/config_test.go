package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(fromYAML, DefaultBreakoutConfig()) {
		t.Errorf("embedded YAML and DefaultBreakoutConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadBreakoutCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	doc := []byte("gameplay:\n  lives: 3\ngrid:\n  columns: 4\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Gameplay.Lives)
	}
	if cfg.Grid.Columns != 4 {
		t.Errorf("Columns = %d, expected 4", cfg.Grid.Columns)
	}
	// Untouched sections keep their defaults
	if cfg.Grid.Rows != 5 {
		t.Errorf("Rows = %d, expected default 5", cfg.Grid.Rows)
	}
	if cfg.Physics.SpeedFloor != 4 {
		t.Errorf("SpeedFloor = %g, expected default 4", cfg.Physics.SpeedFloor)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed yaml", "grid: [1, 2", false},
		{"zero lives", "gameplay:\n  lives: 0\n", true},
		{"empty grid", "grid:\n  columns: 0\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			cfg, err := LoadBreakout(path)
			if err == nil {
				t.Fatal("LoadBreakout() should fail")
			}
			if tc.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
				t.Error("failed load should return the defaults")
			}
		})
	}

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBreakout() on a missing custom path should fail")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
		level   float64
	}{
		{DifficultyEasy, 7, true, 0.0},
		{DifficultyNormal, 5, true, 0.0},
		{DifficultyHard, 3, true, 0.3},
		{DifficultyFixed, 5, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %g, expected %g", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Floor(4, 0, 0); got != 4 {
		t.Errorf("Floor at score 0 = %g, expected 4", got)
	}
	if got := dm.Floor(4, 5, 0); got != 6 {
		t.Errorf("Floor at score 5 = %g, expected 6", got)
	}
	if got := dm.Floor(4, 100, 0); got != 8 {
		t.Errorf("Floor past max_at = %g, expected 8", got)
	}

	defaults := NewDifficultyManager(DefaultBreakoutConfig().Difficulty)
	if got := defaults.Floor(4, 30, 1000); got != 4 {
		t.Errorf("default Floor = %g, expected the unscaled floor 4", got)
	}

	fixed := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.7})
	if got := fixed.Level(10, 10); got != 0 {
		t.Errorf("disabled Level = %g, expected 0", got)
	}

	flat := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: ProgressionNone, MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if got := flat.Floor(4, 10, 10); got != 4 {
		t.Errorf("Floor without progression = %g, expected 4", got)
	}
}

func TestPresetSpeedFloorAndServe(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		atStart float64
		atMax   float64
	}{
		{"", 4, 4},
		{DifficultyEasy, 4, 4},
		{DifficultyNormal, 4, 6},
		{DifficultyHard, 4.6, 6},
		{DifficultyFixed, 4, 4},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)
			dm := NewDifficultyManager(cfg.Difficulty)

			floor := cfg.Physics.SpeedFloor
			if got := dm.Floor(floor, 0, 0); math.Abs(got-tc.atStart) > 1e-9 {
				t.Errorf("floor at score 0 = %g, expected %g", got, tc.atStart)
			}
			if got := dm.Floor(floor, cfg.Difficulty.Progression.MaxAt, 0); math.Abs(got-tc.atMax) > 1e-9 {
				t.Errorf("floor at max_at = %g, expected %g", got, tc.atMax)
			}
			if cfg.Physics.StartVX != 3 || cfg.Physics.StartVY != -3 {
				t.Errorf("serve velocity = (%g,%g), expected (3,-3)", cfg.Physics.StartVX, cfg.Physics.StartVY)
			}
		})
	}
}
