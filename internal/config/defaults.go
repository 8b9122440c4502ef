package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultSkinGlyphs is the built-in 6x4 ball sprite sheet.
const DefaultSkinGlyphs = "●○◆◇■□▲△▼▽★☆♠♣♥♦☻☺◉◎◐◑◒◓"

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Grid: BreakoutGrid{
			Columns: 7,
			Rows:    5,
		},
		Layout: BreakoutLayout{
			PaddleHeight:     12,
			PaddleBottomGap:  10,
			PaddleMinWidth:   60,
			PaddleWidthRatio: 0.15,
			BallMinRadius:    10,
			BallRadiusRatio:  0.015,
			BrickMinWidth:    40,
			BrickWidthRatio:  0.1,
			BrickHeight:      20,
			BrickPadding:     10,
			BrickOffsetTop:   60,
			BallStartOffset:  40,
		},
		Physics: BreakoutPhysics{
			StartVX:       3,
			StartVY:       -3,
			SpeedFloor:    4,
			DeflectionFan: 60,
			PaddleSpeed:   7,
		},
		Gameplay: BreakoutGameplay{
			Lives: 5,
		},
		Skin: BreakoutSkin{
			Columns: 6,
			Rows:    4,
			Glyphs:  DefaultSkinGlyphs,
		},
		Display: BreakoutDisplay{
			CellWidth:  10,
			CellHeight: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionNone,
				MaxAt: 35,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
