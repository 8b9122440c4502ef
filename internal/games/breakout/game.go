package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// InputSnapshot is the player input sampled once per frame.
// A pointer position, when present, overrides the direction flags.
type InputSnapshot struct {
	MovingLeft  bool
	MovingRight bool
	PointerX    *float64 // Absolute x in world units; paddle center follows it
}

// Game is the simulation aggregate: grid, ball, paddle and session.
// All mutation happens inside Update, one frame at a time.
type Game struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	bounds  core.Bounds
	grid    *Grid
	ball    Ball
	paddle  Paddle
	session Session

	skin      SpriteSheet
	skinIndex int
	rng       *SimpleRNG

	tick     int
	listener Listener
}

// Create builds a fully initialized session for the given field size:
// every brick alive, paddle centered, ball on the serve point.
func Create(cfg config.BreakoutConfig, bounds core.Bounds, seed int64) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		bounds:     bounds,
		grid:       NewGrid(cfg.Grid.Columns, cfg.Grid.Rows),
		skin:       NewSpriteSheet(cfg.Skin.Columns, cfg.Skin.Rows, cfg.Skin.Glyphs),
		rng:        NewSimpleRNG(seed),
	}

	g.applyLayout()
	g.session = NewSession(g.grid.Total(), cfg.Gameplay.Lives)
	g.paddle.Center(bounds.Width)
	g.serveBall()
	g.skinIndex = g.rng.Intn(g.skin.Cells())

	return g
}

// OnResize recomputes every size derived from the field and re-lays the grid.
// Paddle and ball keep their positions, clamped into the new field.
func (g *Game) OnResize(bounds core.Bounds) {
	g.bounds = bounds
	g.applyLayout()
	g.paddle.Clamp(bounds.Width)
	g.ball.Pos.X = core.ClampF(g.ball.Pos.X, g.ball.Radius, bounds.Width-g.ball.Radius)
	g.ball.Pos.Y = core.ClampF(g.ball.Pos.Y, g.ball.Radius, bounds.Height-g.ball.Radius)
}

// applyLayout derives paddle, ball and brick sizes from the field width.
func (g *Game) applyLayout() {
	l := g.cfg.Layout
	w := g.bounds.Width

	g.paddle.Width = math.Max(l.PaddleMinWidth, w*l.PaddleWidthRatio)
	g.paddle.Height = l.PaddleHeight
	g.paddle.Y = g.bounds.Height - l.PaddleHeight - l.PaddleBottomGap

	g.ball.Radius = math.Max(l.BallMinRadius, w*l.BallRadiusRatio)

	g.grid.SetBrickSize(math.Max(l.BrickMinWidth, w*l.BrickWidthRatio), l.BrickHeight)
	g.grid.Layout(g.bounds, l.BrickPadding, l.BrickOffsetTop)
}

// serveBall puts the ball on the serve point with the starting velocity.
func (g *Game) serveBall() {
	g.ball.Pos = core.Vec{
		X: g.bounds.Width / 2,
		Y: g.bounds.Height - g.cfg.Layout.BallStartOffset,
	}
	g.ball.Vel = core.Vec{X: g.cfg.Physics.StartVX, Y: g.cfg.Physics.StartVY}
}

// SetListener registers the event sink. Nil disables events.
func (g *Game) SetListener(l Listener) {
	g.listener = l
}

func (g *Game) emit(ev Event) {
	if g.listener == nil {
		return
	}
	ev.Tick = g.tick
	g.listener(ev)
}

// Update advances the simulation by one frame. Collisions are resolved
// against the pre-move position, then the ball integrates, then the paddle
// follows the input. A terminal session ignores further updates.
func (g *Game) Update(in InputSnapshot) {
	if g.session.Terminal() {
		return
	}
	g.tick++

	if _, hit := ResolveBricks(g.grid, &g.ball, &g.session); hit {
		g.emit(Event{Kind: EventScore, Value: g.session.Score})
		if g.session.Terminal() {
			g.emit(Event{Kind: EventOutcome, Outcome: g.session.Outcome})
			return
		}
	}

	ReflectWalls(&g.ball, g.bounds)

	switch ResolvePaddle(&g.ball, &g.paddle, g.bounds, g.SpeedFloor(), g.cfg.Physics.DeflectionFan) {
	case PaddleBounce:
		g.reskin()
	case PaddleMiss:
		g.handleMiss()
		return
	}

	g.ball.Integrate()
	g.movePaddle(in)
}

// handleMiss takes a life and either soft resets the field or ends the session.
// After a soft reset the frame ends so the ball stays exactly on the serve point.
func (g *Game) handleMiss() {
	softReset := g.session.BallLost()
	g.emit(Event{Kind: EventLives, Value: g.session.Lives})

	if !softReset {
		g.emit(Event{Kind: EventOutcome, Outcome: g.session.Outcome})
		return
	}

	g.serveBall()
	g.paddle.Center(g.bounds.Width)
	g.reskin()
}

func (g *Game) reskin() {
	g.skinIndex = g.rng.Intn(g.skin.Cells())
	g.emit(Event{Kind: EventReskin, Value: g.skinIndex})
}

// movePaddle applies the frame's input and keeps the paddle inside the field.
func (g *Game) movePaddle(in InputSnapshot) {
	p := &g.paddle
	w := g.bounds.Width

	if in.PointerX != nil {
		p.X = *in.PointerX - p.Width/2
	} else {
		speed := g.cfg.Physics.PaddleSpeed
		if in.MovingRight && p.X < w-p.Width {
			p.X += speed
		}
		if in.MovingLeft && p.X > 0 {
			p.X -= speed
		}
	}
	p.Clamp(w)
}

// SpeedFloor returns the minimum speed after a paddle bounce, scaled by difficulty.
func (g *Game) SpeedFloor() float64 {
	return g.difficulty.Floor(g.cfg.Physics.SpeedFloor, g.session.Score, g.tick)
}

// Bounds returns the field size.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Ball returns the ball. Callers may adjust it to set up a scenario.
func (g *Game) Ball() *Ball {
	return &g.ball
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return &g.paddle
}

// Grid returns the brick grid.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Session returns the score, lives and outcome.
func (g *Game) Session() *Session {
	return &g.session
}

// SkinIndex returns the current ball sprite index.
func (g *Game) SkinIndex() int {
	return g.skinIndex
}

// Tick returns the number of frames simulated.
func (g *Game) Tick() int {
	return g.tick
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}
