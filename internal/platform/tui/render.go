package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette returns the ANSI 256-color palette.
func DefaultPalette() Palette {
	return Palette{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromePalette renders every cell unstyled.
func MonochromePalette() Palette {
	return Palette{}
}

// style returns the style for a color, falling back to no styling.
func (p Palette) style(c core.Color) (lipgloss.Style, bool) {
	s, ok := p[c]
	return s, ok
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style, ok := p.style(startColor); ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
