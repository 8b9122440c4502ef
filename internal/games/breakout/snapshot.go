package breakout

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot contains the complete simulation state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick int `msgpack:"tick"`

	BoundsW float64 `msgpack:"bounds_w"`
	BoundsH float64 `msgpack:"bounds_h"`

	BallX  float64 `msgpack:"ball_x"`
	BallY  float64 `msgpack:"ball_y"`
	BallVX float64 `msgpack:"ball_vx"`
	BallVY float64 `msgpack:"ball_vy"`

	PaddleX float64 `msgpack:"paddle_x"`

	Score   int `msgpack:"score"`
	Lives   int `msgpack:"lives"`
	Outcome int `msgpack:"outcome"`

	// Brick liveness in scan order (column-major): 1 alive, 0 dead
	Bricks []uint8 `msgpack:"bricks"`

	SkinIndex int    `msgpack:"skin_index"`
	RNGState  uint64 `msgpack:"rng_state"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]uint8, 0, g.grid.Total())
	g.grid.Each(func(b *Brick) {
		if b.Alive {
			bricks = append(bricks, 1)
		} else {
			bricks = append(bricks, 0)
		}
	})

	return Snapshot{
		Tick:      g.tick,
		BoundsW:   g.bounds.Width,
		BoundsH:   g.bounds.Height,
		BallX:     g.ball.Pos.X,
		BallY:     g.ball.Pos.Y,
		BallVX:    g.ball.Vel.X,
		BallVY:    g.ball.Vel.Y,
		PaddleX:   g.paddle.X,
		Score:     g.session.Score,
		Lives:     g.session.Lives,
		Outcome:   int(g.session.Outcome),
		Bricks:    bricks,
		SkinIndex: g.skinIndex,
		RNGState:  g.rng.State(),
	}
}

// ErrInvalidSnapshot is wrapped by every snapshot that breaks a session invariant.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// checkSnapshot rejects snapshots that break a session invariant for this grid.
func (g *Game) checkSnapshot(snap Snapshot) error {
	if len(snap.Bricks) != g.grid.Total() {
		return fmt.Errorf("%w: %d bricks, grid has %d", ErrInvalidSnapshot, len(snap.Bricks), g.grid.Total())
	}

	dead := 0
	for _, b := range snap.Bricks {
		switch b {
		case 0:
			dead++
		case 1:
		default:
			return fmt.Errorf("%w: brick state %d", ErrInvalidSnapshot, b)
		}
	}

	total := g.grid.Total()
	switch {
	case !finite(snap.BoundsW, snap.BoundsH) || snap.BoundsW <= 0 || snap.BoundsH <= 0:
		return fmt.Errorf("%w: field %gx%g", ErrInvalidSnapshot, snap.BoundsW, snap.BoundsH)
	case !finite(snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX):
		return fmt.Errorf("%w: non-finite ball or paddle", ErrInvalidSnapshot)
	case snap.Tick < 0:
		return fmt.Errorf("%w: tick %d", ErrInvalidSnapshot, snap.Tick)
	case snap.Score < 0 || snap.Score > total:
		return fmt.Errorf("%w: score %d outside [0, %d]", ErrInvalidSnapshot, snap.Score, total)
	case snap.Score != dead:
		return fmt.Errorf("%w: score %d with %d dead bricks", ErrInvalidSnapshot, snap.Score, dead)
	case snap.Lives < 0 || snap.Lives > g.session.InitialLives:
		return fmt.Errorf("%w: lives %d outside [0, %d]", ErrInvalidSnapshot, snap.Lives, g.session.InitialLives)
	}

	want := OutcomePlaying
	switch {
	case snap.Score == total:
		want = OutcomeWon
	case snap.Lives == 0:
		want = OutcomeLost
	}
	if Outcome(snap.Outcome) != want {
		return fmt.Errorf("%w: outcome %s, expected %s", ErrInvalidSnapshot, Outcome(snap.Outcome), want)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ApplySnapshot restores game state from a snapshot. Nothing changes when the
// snapshot is invalid. The field size is applied first so derived sizes match
// the recorded frame; paddle and ball are then clamped into that field.
func (g *Game) ApplySnapshot(snap Snapshot) error {
	if err := g.checkSnapshot(snap); err != nil {
		return err
	}

	g.OnResize(core.Bounds{Width: snap.BoundsW, Height: snap.BoundsH})

	g.tick = snap.Tick
	g.ball.Pos = core.Vec{X: snap.BallX, Y: snap.BallY}
	g.ball.Vel = core.Vec{X: snap.BallVX, Y: snap.BallVY}
	g.paddle.X = snap.PaddleX
	g.session.Score = snap.Score
	g.session.Lives = snap.Lives
	g.session.Outcome = Outcome(snap.Outcome)

	i := 0
	g.grid.Each(func(b *Brick) {
		b.Alive = snap.Bricks[i] == 1
		i++
	})

	g.skinIndex = snap.SkinIndex
	g.rng.Restore(snap.RNGState)

	// Reuses the resize clamps for paddle and ball
	g.OnResize(g.bounds)
	return nil
}

// Encode serializes the snapshot with MessagePack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck // hash.Hash writes never fail
	return h.Sum64()
}
