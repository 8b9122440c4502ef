package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Cabinet adapts the simulation to the platform: terminal sizes, input
// frames, pause and restart. The physics itself lives in Game.
type Cabinet struct {
	game     *Game
	cfg      config.BreakoutConfig
	runtime  core.RuntimeConfig
	listener Listener
	paused   bool
	loadErr  error
}

// New creates an unstarted cabinet; call Reset before stepping.
func New() *Cabinet {
	return &Cabinet{}
}

// ID returns the unique identifier for this game.
func (c *Cabinet) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (c *Cabinet) Title() string {
	return "Emoji Breakout"
}

// Reset starts a new session sized to the terminal.
func (c *Cabinet) Reset(runtime core.RuntimeConfig) {
	c.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	c.loadErr = err
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	c.cfg = cfg

	c.game = Create(cfg, FieldBounds(runtime.ScreenW, runtime.ScreenH, cfg.Display), runtime.Seed)
	c.game.SetListener(c.listener)
	c.paused = false
}

// Resize re-lays the running session for a new terminal size.
func (c *Cabinet) Resize(runtime core.RuntimeConfig) {
	if c.game == nil {
		c.Reset(runtime)
		return
	}
	c.runtime.ScreenW = runtime.ScreenW
	c.runtime.ScreenH = runtime.ScreenH
	c.game.OnResize(FieldBounds(runtime.ScreenW, runtime.ScreenH, c.cfg.Display))
}

// SetListener registers the event sink for this and every later session.
func (c *Cabinet) SetListener(l Listener) {
	c.listener = l
	if c.game != nil {
		c.game.SetListener(l)
	}
}

// ConfigError returns the error from the last config load, if any.
// The cabinet falls back to defaults when loading fails.
func (c *Cabinet) ConfigError() error {
	return c.loadErr
}

// Game returns the running simulation.
func (c *Cabinet) Game() *Game {
	return c.game
}

// Step advances the game by one tick.
func (c *Cabinet) Step(in core.InputFrame) core.StepResult {
	if c.game == nil {
		return core.StepResult{State: c.State()}
	}

	if in.Has(core.ActionRestart) && c.game.Session().Terminal() {
		c.Reset(c.runtime)
		return core.StepResult{State: c.State()}
	}

	if in.Has(core.ActionPause) && !c.game.Session().Terminal() {
		c.paused = !c.paused
	}
	if c.paused {
		return core.StepResult{State: c.State()}
	}

	c.game.Update(c.Snapshot(in))
	return core.StepResult{State: c.State()}
}

// Snapshot converts a platform input frame into the simulation's input.
func (c *Cabinet) Snapshot(in core.InputFrame) InputSnapshot {
	snap := InputSnapshot{
		MovingLeft:  in.Has(core.ActionLeft),
		MovingRight: in.Has(core.ActionRight),
	}
	if in.HasPointer {
		x := WorldX(in.PointerX, c.cfg.Display)
		snap.PointerX = &x
	}
	return snap
}

// Render draws the current game state to the screen.
func (c *Cabinet) Render(dst *core.Screen) {
	dst.Clear()
	if c.game == nil {
		return
	}
	c.game.Render(dst)
	if c.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (c *Cabinet) State() core.GameState {
	if c.game == nil {
		return core.GameState{}
	}
	s := c.game.Session()
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		GameOver: s.Terminal(),
		Won:      s.Outcome == OutcomeWon,
		Paused:   c.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
