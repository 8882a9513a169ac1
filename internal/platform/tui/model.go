package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// helpRows is the space reserved below the playfield for the key help.
const helpRows = 1

// Resizer is implemented by games that adapt to a new screen size without a reset.
type Resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Normalized()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		logger:     logger,
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.playConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// playConfig is the runtime config with the help rows taken off the height.
func (m Model) playConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies input immediately when the game supports it,
// otherwise queues it for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if h, ok := m.game.(registry.ActionHandler); ok {
		h.HandleAction(action)
		m.gameState = m.game.State()
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	play := m.playConfig()
	m.screen.Resize(play.ScreenW, play.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(play.ScreenW, play.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(play)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("run ended", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
