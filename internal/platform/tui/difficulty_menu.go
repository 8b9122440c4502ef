package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// difficultyOption is one entry of the start menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{"", "Play (config defaults)"},
	{config.DifficultyEasy, "Easy: 7 lives, faster paddle"},
	{config.DifficultyNormal, "Normal: bounces speed up as bricks fall"},
	{config.DifficultyHard, "Hard: 3 lives, faster bounces from the start"},
	{config.DifficultyFixed, "Fixed: no difficulty scaling"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// DifficultyMenuModel lets users choose a difficulty preset before playing.
type DifficultyMenuModel struct {
	cursor   int
	width    int
	height   int
	choosing bool
	quitting bool
}

// NewDifficultyMenuModel creates a new difficulty selection model.
func NewDifficultyMenuModel(width, height int) DifficultyMenuModel {
	return DifficultyMenuModel{
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("E M O J I   B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		line := fmt.Sprintf("  %s", opt.label)
		if i == m.cursor {
			line = cursorStyle.Render("> " + opt.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc/Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, and false while still choosing or after quitting.
func (m DifficultyMenuModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return difficultyOptions[m.cursor].preset, true
}

// RunDifficultyMenu runs the start menu and returns the chosen preset.
// ok is false when the user quit instead of choosing.
func RunDifficultyMenu(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	model := NewDifficultyMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isMenu := finalModel.(DifficultyMenuModel)
	if !isMenu {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
