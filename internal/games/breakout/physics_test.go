package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

var testField = core.Bounds{Width: 800, Height: 460}

func TestReflectWalls(t *testing.T) {
	tests := []struct {
		name        string
		ball        Ball
		wantVel     core.Vec
		wantSide    bool
		wantCeiling bool
	}{
		{
			name:    "open field",
			ball:    Ball{Pos: core.Vec{X: 400, Y: 200}, Vel: core.Vec{X: 3, Y: -3}, Radius: 12},
			wantVel: core.Vec{X: 3, Y: -3},
		},
		{
			name:     "right wall",
			ball:     Ball{Pos: core.Vec{X: 785, Y: 200}, Vel: core.Vec{X: 5, Y: 3}, Radius: 12},
			wantVel:  core.Vec{X: -5, Y: 3},
			wantSide: true,
		},
		{
			name:     "left wall",
			ball:     Ball{Pos: core.Vec{X: 14, Y: 200}, Vel: core.Vec{X: -3, Y: 3}, Radius: 12},
			wantVel:  core.Vec{X: 3, Y: 3},
			wantSide: true,
		},
		{
			name:        "ceiling",
			ball:        Ball{Pos: core.Vec{X: 400, Y: 14}, Vel: core.Vec{X: 3, Y: -3}, Radius: 12},
			wantVel:     core.Vec{X: 3, Y: 3},
			wantCeiling: true,
		},
		{
			name:        "corner",
			ball:        Ball{Pos: core.Vec{X: 14, Y: 14}, Vel: core.Vec{X: -3, Y: -3}, Radius: 12},
			wantVel:     core.Vec{X: 3, Y: 3},
			wantSide:    true,
			wantCeiling: true,
		},
		{
			name:    "floor is not a wall",
			ball:    Ball{Pos: core.Vec{X: 400, Y: 455}, Vel: core.Vec{X: 0, Y: 5}, Radius: 12},
			wantVel: core.Vec{X: 0, Y: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := tt.ball
			before := ball.Speed()
			hit := ReflectWalls(&ball, testField)

			if ball.Vel != tt.wantVel {
				t.Errorf("velocity = %+v, want %+v", ball.Vel, tt.wantVel)
			}
			if hit.Side != tt.wantSide || hit.Ceiling != tt.wantCeiling {
				t.Errorf("hit = %+v, want side=%v ceiling=%v", hit, tt.wantSide, tt.wantCeiling)
			}
			if !approx(ball.Speed(), before) {
				t.Errorf("wall bounce changed speed from %v to %v", before, ball.Speed())
			}
		})
	}
}

func TestHitOffset(t *testing.T) {
	p := &Paddle{X: 340, Y: 438, Width: 120, Height: 12}

	tests := []struct {
		x    float64
		want float64
	}{
		{340, -0.5},
		{400, 0},
		{460, 0.5},
		{370, -0.25},
	}
	for _, tt := range tests {
		if got := HitOffset(tt.x, p); !approx(got, tt.want) {
			t.Errorf("HitOffset(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	if got := HitOffset(10, &Paddle{}); got != 0 {
		t.Errorf("zero width paddle offset = %v, want 0", got)
	}
}

func TestDeflectCenterGoesStraightUp(t *testing.T) {
	p := &Paddle{X: 340, Y: 438, Width: 120, Height: 12}
	ball := Ball{Pos: core.Vec{X: 400, Y: 420}, Vel: core.Vec{X: 0, Y: 10}, Radius: 12}

	Deflect(&ball, p, 4, 60)

	if ball.Vel.X != 0 || ball.Vel.Y != -10 {
		t.Errorf("center hit velocity = %+v, want {0 -10}", ball.Vel)
	}
	if ball.Pos.Y != 438-12-1 {
		t.Errorf("ball should be lifted above paddle, y = %v", ball.Pos.Y)
	}
}

func TestDeflectEdgeAngles(t *testing.T) {
	p := &Paddle{X: 340, Y: 438, Width: 120, Height: 12}

	tests := []struct {
		name      string
		x         float64
		wantAngle float64
	}{
		{"left edge", 340, -math.Pi / 6},
		{"right edge", 460, math.Pi / 6},
		{"quarter right", 430, math.Pi / 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{Pos: core.Vec{X: tt.x, Y: 430}, Vel: core.Vec{X: 2, Y: 5}, Radius: 12}
			speed := ball.Speed()

			Deflect(&ball, p, 4, 60)

			// Angle measured from straight up
			angle := math.Atan2(ball.Vel.X, -ball.Vel.Y)
			if !approx(angle, tt.wantAngle) {
				t.Errorf("angle = %v, want %v", angle, tt.wantAngle)
			}
			if !approx(ball.Speed(), speed) {
				t.Errorf("speed = %v, want %v", ball.Speed(), speed)
			}
			if ball.Vel.Y >= 0 {
				t.Errorf("ball must leave upward, vy = %v", ball.Vel.Y)
			}
		})
	}
}

func TestDeflectSpeedFloor(t *testing.T) {
	p := &Paddle{X: 340, Y: 438, Width: 120, Height: 12}
	ball := Ball{Pos: core.Vec{X: 400, Y: 430}, Vel: core.Vec{X: 0, Y: 1}, Radius: 12}

	Deflect(&ball, p, 4, 60)

	if !approx(ball.Speed(), 4) {
		t.Errorf("slow ball should leave at the floor speed, got %v", ball.Speed())
	}
}

func TestDeflectDirectionIgnoresIncoming(t *testing.T) {
	p := &Paddle{X: 340, Y: 438, Width: 120, Height: 12}
	a := Ball{Pos: core.Vec{X: 430, Y: 430}, Vel: core.Vec{X: 4, Y: 3}, Radius: 12}
	b := Ball{Pos: core.Vec{X: 430, Y: 430}, Vel: core.Vec{X: -4, Y: 3}, Radius: 12}

	Deflect(&a, p, 4, 60)
	Deflect(&b, p, 4, 60)

	if !approx(a.Vel.X, b.Vel.X) || !approx(a.Vel.Y, b.Vel.Y) {
		t.Errorf("same hit point should give same velocity: %+v vs %+v", a.Vel, b.Vel)
	}
}

func TestPaddleClampAndSpans(t *testing.T) {
	p := Paddle{X: -50, Width: 120}
	p.Clamp(800)
	if p.X != 0 {
		t.Errorf("Clamp left = %v, want 0", p.X)
	}

	p.X = 750
	p.Clamp(800)
	if p.X != 680 {
		t.Errorf("Clamp right = %v, want 680", p.X)
	}

	p.Center(800)
	if p.X != 340 {
		t.Errorf("Center = %v, want 340", p.X)
	}

	if !p.Spans(340) || !p.Spans(460) || !p.Spans(400) {
		t.Error("paddle edges and center should be spanned")
	}
	if p.Spans(339.9) || p.Spans(460.1) {
		t.Error("points past the edges should not be spanned")
	}
}

func TestBallIntegrate(t *testing.T) {
	ball := Ball{Pos: core.Vec{X: 10, Y: 20}, Vel: core.Vec{X: 3, Y: -4}}
	if ball.Speed() != 5 {
		t.Errorf("Speed() = %v, want 5", ball.Speed())
	}
	ball.Integrate()
	if ball.Pos != (core.Vec{X: 13, Y: 16}) {
		t.Errorf("Integrate() pos = %+v, want {13 16}", ball.Pos)
	}
}
