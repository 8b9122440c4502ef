package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PaddleContact is the result of checking the ball against the paddle line.
type PaddleContact int

const (
	PaddleNone   PaddleContact = iota // Ball is above the paddle line, or falling past it
	PaddleBounce                      // Ball struck the paddle and was deflected
	PaddleMiss                        // Ball passed the paddle and reached the floor
)

// ResolveBricks destroys at most one brick per frame: the first alive brick,
// in column-then-row order, that strictly contains the ball's center.
// The ball's vertical velocity is reversed and the session is credited.
//
// The test is on the center point only, so a fast ball can pass through a
// thin brick without touching it.
func ResolveBricks(grid *Grid, ball *Ball, session *Session) (*Brick, bool) {
	brick, ok := grid.AliveBrickAt(ball.Pos)
	if !ok {
		return nil, false
	}

	ball.BounceY()
	brick.Kill()
	session.BrickDestroyed()
	return brick, true
}

// ResolvePaddle handles the floor zone. When the candidate position crosses
// the paddle line the ball is deflected if the paddle is under it; otherwise
// the ball falls, and reaching the bottom bound is a miss.
func ResolvePaddle(ball *Ball, paddle *Paddle, bounds core.Bounds, speedFloor, fan float64) PaddleContact {
	next := ball.Next()
	if next.Y <= paddle.Y-ball.Radius {
		return PaddleNone
	}

	if paddle.Spans(ball.Pos.X) {
		Deflect(ball, paddle, speedFloor, fan)
		return PaddleBounce
	}

	if next.Y > bounds.Height-ball.Radius {
		return PaddleMiss
	}
	return PaddleNone
}
