package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("177")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// LevelSelectModel lets the user pick the starting level before a run.
type LevelSelectModel struct {
	levels   []config.LevelConfig
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	chosen   bool
	quitting bool
}

// NewLevelSelectModel creates a selector over the configured levels.
func NewLevelSelectModel(levels []config.LevelConfig, width, height int) LevelSelectModel {
	return LevelSelectModel{
		levels: levels,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("I N V A D E R S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a starting level:", m.width))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		line := fmt.Sprintf("  %d. %-8s", i+1, l.Name)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %d. %-8s", i+1, l.Name))
		}
		detail := detailStyle.Render(fmt.Sprintf("  speed %.1f  fire %dms  shots %d  bunkers %d",
			l.EnemySpeed, l.ShootIntervalMS, l.MaxPlayerBullets, l.Bunkers))
		b.WriteString(centerText(line+detail, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen level and whether a choice was made.
func (m LevelSelectModel) Selected() (invaders.Level, bool) {
	if !m.chosen {
		return invaders.LevelEasy, false
	}
	return invaders.Level(m.cursor), true
}

// RunLevelSelector shows the level selector and returns the chosen level.
// ok is false when the user quit without choosing.
func RunLevelSelector(levels []config.LevelConfig, cfg core.RuntimeConfig) (level invaders.Level, ok bool, err error) {
	model := NewLevelSelectModel(levels, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return invaders.LevelEasy, false, fmt.Errorf("level selector: %w", err)
	}

	m, isSelector := finalModel.(LevelSelectModel)
	if !isSelector {
		return invaders.LevelEasy, false, nil
	}
	level, ok = m.Selected()
	return level, ok, nil
}
