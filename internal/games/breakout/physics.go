package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball represents the ball state in world units.
type Ball struct {
	Pos    core.Vec // Center
	Vel    core.Vec // Velocity per frame
	Radius float64
}

// Next returns the candidate position one frame ahead.
func (b *Ball) Next() core.Vec {
	return b.Pos.Add(b.Vel)
}

// Speed returns the magnitude of the velocity.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// Integrate advances the position by the velocity. Called once per frame,
// after every collision response for that frame.
func (b *Ball) Integrate() {
	b.Pos = b.Next()
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Paddle represents the player's paddle.
type Paddle struct {
	X      float64 // Left edge
	Y      float64 // Top surface
	Width  float64
	Height float64
}

// Clamp keeps the paddle within [0, boundsWidth - Width].
func (p *Paddle) Clamp(boundsWidth float64) {
	p.X = core.ClampF(p.X, 0, boundsWidth-p.Width)
}

// Center places the paddle in the middle of the field.
func (p *Paddle) Center(boundsWidth float64) {
	p.X = (boundsWidth - p.Width) / 2
	p.Clamp(boundsWidth)
}

// Spans reports whether x lies within the paddle's horizontal extent, edges included.
func (p *Paddle) Spans(x float64) bool {
	return x >= p.X && x <= p.X+p.Width
}

// WallHit reports which boundaries reflected the ball this frame.
type WallHit struct {
	Side    bool // Left or right wall
	Ceiling bool
}

// ReflectWalls tests the candidate position against the side walls and the
// ceiling and negates the matching velocity component. Reflection is elastic.
func ReflectWalls(ball *Ball, bounds core.Bounds) WallHit {
	var hit WallHit
	next := ball.Next()

	if next.X > bounds.Width-ball.Radius || next.X < ball.Radius {
		ball.BounceX()
		hit.Side = true
	}
	if next.Y < ball.Radius {
		ball.BounceY()
		hit.Ceiling = true
	}
	return hit
}

// HitOffset returns the signed impact offset from the paddle center,
// in [-0.5, 0.5] for points on the paddle.
func HitOffset(x float64, paddle *Paddle) float64 {
	if paddle.Width <= 0 {
		return 0
	}
	return (x-paddle.X)/paddle.Width - 0.5
}

// DeflectionAngle maps a hit offset to an angle from vertical in radians.
// fan is the full opening in degrees swept from one paddle edge to the other,
// so an edge hit leaves at ±fan/2.
func DeflectionAngle(hit, fan float64) float64 {
	return hit * fan * math.Pi / 180
}

// Deflect sends the ball back up from the paddle. The outgoing direction depends
// only on where the ball struck; the speed is kept but never drops below speedFloor.
// The ball is moved just above the paddle so the bounce cannot retrigger.
func Deflect(ball *Ball, paddle *Paddle, speedFloor, fan float64) {
	angle := DeflectionAngle(HitOffset(ball.Pos.X, paddle), fan)
	speed := math.Max(speedFloor, ball.Speed())

	ball.Vel.X = speed * math.Sin(angle)
	ball.Vel.Y = -math.Abs(speed * math.Cos(angle))
	ball.Pos.Y = paddle.Y - ball.Radius - 1
}
