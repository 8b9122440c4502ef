// Package breakout implements a Breakout/Arkanoid-style brick breaker:
// a ball bouncing between a paddle and a grid of bricks.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Brick represents a single destructible cell in the grid.
type Brick struct {
	Column int
	Row    int
	Pos    core.Vec // Top-left corner, recomputed by Grid.Layout
	Alive  bool
}

// Grid owns a fixed Columns x Rows set of bricks, stored column-major.
type Grid struct {
	columns int
	rows    int
	bricks  [][]Brick // [column][row]

	brickW float64
	brickH float64

	// Last layout inputs, reused by Reset
	bounds    core.Bounds
	padding   float64
	offsetTop float64
}

// NewGrid creates a grid with every brick alive.
func NewGrid(columns, rows int) *Grid {
	g := &Grid{}
	g.Reset(columns, rows)
	return g
}

// Reset reallocates all bricks alive and recomputes their positions
// from the most recent layout.
func (g *Grid) Reset(columns, rows int) {
	g.columns = core.Max(columns, 0)
	g.rows = core.Max(rows, 0)
	g.bricks = make([][]Brick, g.columns)
	for c := range g.columns {
		g.bricks[c] = make([]Brick, g.rows)
		for r := range g.rows {
			g.bricks[c][r] = Brick{Column: c, Row: r, Alive: true}
		}
	}
	g.Layout(g.bounds, g.padding, g.offsetTop)
}

// SetBrickSize sets the hitbox size used by the next Layout call.
func (g *Grid) SetBrickSize(w, h float64) {
	g.brickW = w
	g.brickH = h
}

// BrickSize returns the current brick width and height.
func (g *Grid) BrickSize() (w, h float64) {
	return g.brickW, g.brickH
}

// Layout places every brick in a packed arrangement horizontally centered
// within bounds.Width. Dead bricks are positioned too.
func (g *Grid) Layout(bounds core.Bounds, padding, offsetTop float64) {
	g.bounds = bounds
	g.padding = padding
	g.offsetTop = offsetTop

	totalWidth := float64(g.columns)*(g.brickW+padding) - padding
	offsetLeft := (bounds.Width - totalWidth) / 2

	for c := range g.columns {
		for r := range g.rows {
			g.bricks[c][r].Pos = core.Vec{
				X: float64(c)*(g.brickW+padding) + offsetLeft,
				Y: float64(r)*(g.brickH+padding) + offsetTop,
			}
		}
	}
}

// Rect returns the hitbox of a brick.
func (g *Grid) Rect(b *Brick) core.RectF {
	return core.RectF{X: b.Pos.X, Y: b.Pos.Y, W: g.brickW, H: g.brickH}
}

// AliveBrickAt returns the first alive brick whose hitbox strictly contains p.
// Bricks are scanned column by column, rows ascending.
func (g *Grid) AliveBrickAt(p core.Vec) (*Brick, bool) {
	for c := range g.columns {
		for r := range g.rows {
			b := &g.bricks[c][r]
			if b.Alive && g.Rect(b).ContainsStrict(p) {
				return b, true
			}
		}
	}
	return nil, false
}

// Kill marks a brick dead. It reports false if the brick was already dead.
func (b *Brick) Kill() bool {
	if !b.Alive {
		return false
	}
	b.Alive = false
	return true
}

// Brick returns the brick at (column, row), or nil when out of range.
func (g *Grid) Brick(column, row int) *Brick {
	if column < 0 || column >= g.columns || row < 0 || row >= g.rows {
		return nil
	}
	return &g.bricks[column][row]
}

// Total returns the number of bricks in the grid, which is also the win threshold.
func (g *Grid) Total() int {
	return g.columns * g.rows
}

// CountAlive returns the number of remaining bricks.
func (g *Grid) CountAlive() int {
	count := 0
	for c := range g.columns {
		for r := range g.rows {
			if g.bricks[c][r].Alive {
				count++
			}
		}
	}
	return count
}

// Each calls fn for every brick in scan order.
func (g *Grid) Each(fn func(b *Brick)) {
	for c := range g.columns {
		for r := range g.rows {
			fn(&g.bricks[c][r])
		}
	}
}
