package breakout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func newTestCabinet(t *testing.T) *Cabinet {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	c := New()
	c.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return c
}

func TestFieldBounds(t *testing.T) {
	display := config.BreakoutDisplay{CellWidth: 10, CellHeight: 20}

	if got := FieldBounds(80, 24, display); got != (core.Bounds{Width: 800, Height: 460}) {
		t.Errorf("FieldBounds(80,24) = %+v, want {800 460}", got)
	}
	if got := FieldBounds(0, 0, display); got != (core.Bounds{}) {
		t.Errorf("FieldBounds(0,0) = %+v, want zero", got)
	}
	if got := WorldX(3, display); got != 35 {
		t.Errorf("WorldX(3) = %v, want 35", got)
	}
}

func TestCabinetReset(t *testing.T) {
	c := newTestCabinet(t)

	if c.ID() != "breakout" {
		t.Errorf("ID() = %q", c.ID())
	}
	state := c.State()
	if state.Score != 0 || state.Lives != c.Game().Config().Gameplay.Lives || state.GameOver {
		t.Errorf("fresh state = %+v", state)
	}
	if c.Game().Bounds() != (core.Bounds{Width: 800, Height: 460}) {
		t.Errorf("field = %+v, want {800 460}", c.Game().Bounds())
	}
}

func TestCabinetConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() { SetConfigPath("") })

	c := New()
	c.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if c.ConfigError() == nil {
		t.Fatal("ConfigError() should report the broken file")
	}
	if c.Game() == nil || c.Game().Session().Lives != config.DefaultBreakoutConfig().Gameplay.Lives {
		t.Error("a broken config should fall back to defaults")
	}

	SetConfigPath("")
	c.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if err := c.ConfigError(); err != nil {
		t.Errorf("ConfigError() after a clean load = %v", err)
	}
}

func TestCabinetPauseToggle(t *testing.T) {
	c := newTestCabinet(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	c.Step(pause)
	if !c.State().Paused {
		t.Fatal("pause should pause the game")
	}

	tick := c.Game().Tick()
	c.Step(core.NewInputFrame())
	if c.Game().Tick() != tick {
		t.Error("paused game should not advance")
	}

	c.Step(pause)
	if c.State().Paused {
		t.Error("second pause should resume")
	}
	if c.Game().Tick() != tick+1 {
		t.Errorf("resume frame should advance, tick = %d", c.Game().Tick())
	}
}

func TestCabinetRestartOnlyWhenOver(t *testing.T) {
	c := newTestCabinet(t)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)

	c.Game().Grid().Brick(0, 0).Kill()
	c.Step(restart)
	if c.Game().Grid().Brick(0, 0).Alive {
		t.Error("restart should be ignored while playing")
	}

	c.Game().Session().Lives = 1
	c.Game().Paddle().X = 500
	c.Game().Ball().Pos = core.Vec{X: 50, Y: 446}
	c.Game().Ball().Vel = core.Vec{X: 0, Y: 5}
	c.Step(core.NewInputFrame())
	if !c.State().GameOver || c.State().Won {
		t.Fatalf("expected lost game, got %+v", c.State())
	}

	c.Step(restart)
	if c.State().GameOver || c.Game().Grid().CountAlive() != 35 {
		t.Error("restart after game over should start a new session")
	}
}

func TestCabinetPointerInput(t *testing.T) {
	c := newTestCabinet(t)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.SetPointer(40)

	snap := c.Snapshot(in)
	if !snap.MovingLeft || snap.PointerX == nil || *snap.PointerX != 405 {
		t.Errorf("snapshot = %+v, want left with pointer at 405", snap)
	}

	c.Step(in)
	if c.Game().Paddle().X != 345 {
		t.Errorf("paddle x = %v, want 345", c.Game().Paddle().X)
	}
}

func TestCabinetResizeKeepsSession(t *testing.T) {
	c := newTestCabinet(t)
	c.Game().Grid().Brick(1, 1).Kill()
	c.Game().Session().Score = 1

	c.Resize(core.RuntimeConfig{ScreenW: 40, ScreenH: 16})

	if c.Game().Bounds() != (core.Bounds{Width: 400, Height: 300}) {
		t.Errorf("field = %+v, want {400 300}", c.Game().Bounds())
	}
	if c.State().Score != 1 || c.Game().Grid().Brick(1, 1).Alive {
		t.Error("resize should keep the session")
	}
}

func TestCabinetListener(t *testing.T) {
	c := newTestCabinet(t)

	var got []Event
	c.SetListener(func(ev Event) { got = append(got, ev) })

	b := c.Game().Grid().Brick(0, 0)
	c.Game().Ball().Pos = core.Vec{X: b.Pos.X + 40, Y: b.Pos.Y + 10}
	c.Step(core.NewInputFrame())

	if len(got) != 1 || got[0].Kind != EventScore {
		t.Fatalf("events = %+v, want one score event", got)
	}

	// Listener survives a restart
	c.Game().Session().Outcome = OutcomeLost
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	c.Step(restart)

	b = c.Game().Grid().Brick(0, 0)
	c.Game().Ball().Pos = core.Vec{X: b.Pos.X + 40, Y: b.Pos.Y + 10}
	c.Step(core.NewInputFrame())
	if len(got) != 2 {
		t.Errorf("listener lost after restart: %d events", len(got))
	}
}

func TestCabinetRender(t *testing.T) {
	c := newTestCabinet(t)
	screen := core.NewScreen(80, 24)

	c.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0 | Lives: 5") {
		t.Errorf("HUD row = %q", hud)
	}
	// First brick spans world x 90..170, columns 9..16, on row 1 + 60/20
	if r := screen.Get(9, 4); r != BrickChar {
		t.Errorf("brick cell = %q, want %q", r, BrickChar)
	}
	// Paddle spans world x 340..460 at y 438
	if r := screen.Get(34, 22); r != PaddleChar {
		t.Errorf("paddle cell = %q, want %q", r, PaddleChar)
	}
	glyph, _ := c.Game().skin.Glyph(c.Game().SkinIndex())
	if r := screen.Get(40, 22); r != glyph {
		t.Errorf("ball cell = %q, want %q", r, glyph)
	}
}

func TestRenderWithoutSkin(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Skin.Glyphs = ""
	g := Create(cfg, testField, 1)
	g.Ball().Pos = core.Vec{X: 100, Y: 300}
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if r := screen.Get(10, 16); r != ' ' {
		t.Errorf("ball drawn without a sprite sheet: %q", r)
	}
}

func TestRenderOverlays(t *testing.T) {
	c := newTestCabinet(t)
	screen := core.NewScreen(80, 24)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	c.Step(pause)
	c.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	c.Step(pause)
	c.Game().Session().Outcome = OutcomeLost
	c.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("breakout")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, ok := g.(*Cabinet); !ok {
		t.Errorf("registry returned %T, want *Cabinet", g)
	}
}
