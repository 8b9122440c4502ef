package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BrickChar  = '█'
)

// HUDRows is the number of screen rows above the playing field.
const HUDRows = 1

// FieldBounds converts a terminal size into world units. The HUD rows are
// not part of the field.
func FieldBounds(screenW, screenH int, display config.BreakoutDisplay) core.Bounds {
	rows := core.Max(screenH-HUDRows, 0)
	return core.Bounds{
		Width:  float64(core.Max(screenW, 0)) * display.CellWidth,
		Height: float64(rows) * display.CellHeight,
	}
}

// WorldX converts a screen column to the world x at the column's center.
func WorldX(col int, display config.BreakoutDisplay) float64 {
	return (float64(col) + 0.5) * display.CellWidth
}

// cellOf maps a world point to a screen cell.
func cellOf(p core.Vec, display config.BreakoutDisplay) (x, y int) {
	return int(math.Floor(p.X / display.CellWidth)), HUDRows + int(math.Floor(p.Y/display.CellHeight))
}

// spanOf maps a horizontal world extent to a half-open range of columns.
func spanOf(x, w float64, display config.BreakoutDisplay) (from, to int) {
	from = int(math.Floor(x / display.CellWidth))
	to = int(math.Ceil((x + w) / display.CellWidth))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// Render draws the HUD, bricks, paddle and ball.
func (g *Game) Render(dst *core.Screen) {
	display := g.cfg.Display

	g.renderHUD(dst)
	g.renderBricks(dst, display)
	g.renderPaddle(dst, display)
	g.renderBall(dst, display)
	g.renderOutcome(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d | Lives: %d", g.session.Score, g.session.Lives)
	dst.DrawTextCentered(0, hud)
}

func (g *Game) renderBricks(dst *core.Screen, display config.BreakoutDisplay) {
	w, _ := g.grid.BrickSize()
	g.grid.Each(func(b *Brick) {
		if !b.Alive {
			return
		}
		_, row := cellOf(b.Pos, display)
		from, to := spanOf(b.Pos.X, w, display)
		dst.DrawHLine(from, row, to-from, BrickChar, core.ColorBrightGreen)
	})
}

func (g *Game) renderPaddle(dst *core.Screen, display config.BreakoutDisplay) {
	_, row := cellOf(core.Vec{X: g.paddle.X, Y: g.paddle.Y}, display)
	from, to := spanOf(g.paddle.X, g.paddle.Width, display)
	dst.DrawHLine(from, row, to-from, PaddleChar, core.ColorBrightGreen)
}

// renderBall draws the current skin. An unloaded sprite sheet draws nothing.
func (g *Game) renderBall(dst *core.Screen, display config.BreakoutDisplay) {
	glyph, ok := g.skin.Glyph(g.skinIndex)
	if !ok {
		return
	}
	x, y := cellOf(g.ball.Pos, display)
	dst.SetColored(x, y, glyph, core.ColorBrightYellow)
}

func (g *Game) renderOutcome(dst *core.Screen) {
	switch g.session.Outcome {
	case OutcomeWon:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	case OutcomeLost:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
