package invaders

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry identifier of the invaders game.
const GameID = "invaders"

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 30
	minScreenH = 14
)

// configPath stores the custom config path set via CLI
var configPath string

// startLevel stores the level chosen via CLI or the level selector
var startLevel Level

// logger receives match events; discarded unless the CLI sets one
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level new games start on.
func SetStartLevel(l Level) {
	startLevel = clampLevel(l)
}

// SetLogger sets the logger handed to every new match.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

// Game adapts a Match to the platform's fixed-step game loop.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	match   *Match
	scene   *Scene
	paused  bool

	screenTooSmall bool
}

// New creates a new invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset loads the configuration and starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultInvadersConfig()
	}
	g.cfg = cfg

	g.scene = NewScene(cfg.Field.Width, cfg.Field.Height)
	g.match, err = NewMatch(cfg,
		WithRenderer(g.scene),
		WithLogger(logger),
		WithSeed(runtime.Seed),
		WithStartLevel(startLevel),
	)
	if err != nil {
		// Loaded configs are validated already; only a broken default lands here.
		logger.Error("falling back to built-in config", "err", err)
		g.cfg = config.DefaultInvadersConfig()
		g.scene = NewScene(g.cfg.Field.Width, g.cfg.Field.Height)
		g.match, _ = NewMatch(g.cfg, WithRenderer(g.scene), WithLogger(logger), WithSeed(runtime.Seed))
	}
}

// Resize adapts the layout to a new screen size without restarting the match.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
}

// stepOrder fixes the order in which a frame's actions are applied.
var stepOrder = []core.Action{
	core.ActionPause,
	core.ActionSelectEasy,
	core.ActionSelectMedium,
	core.ActionSelectHard,
	core.ActionRestart,
	core.ActionLeft,
	core.ActionRight,
	core.ActionFire,
}

// Step applies the frame's actions and advances the match by one tick period.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range stepOrder {
		if in.Has(a) {
			g.HandleAction(a)
		}
	}

	if !g.paused {
		g.match.Advance(g.cfg.Timing.TickPeriod())
	}
	return core.StepResult{State: g.State()}
}

// HandleAction applies one action immediately.
// Reports whether the action changed anything.
func (g *Game) HandleAction(a core.Action) bool {
	if a == core.ActionPause {
		if g.match.Phase().Terminal() {
			return false
		}
		g.paused = !g.paused
		return true
	}
	if g.paused {
		return false
	}

	switch a {
	case core.ActionLeft:
		before := g.match.Player().X
		g.match.MoveLeft()
		return g.match.Player().X != before
	case core.ActionRight:
		before := g.match.Player().X
		g.match.MoveRight()
		return g.match.Player().X != before
	case core.ActionFire:
		return g.match.Fire()
	case core.ActionSelectEasy:
		return g.match.SelectLevelIndex(LevelEasy)
	case core.ActionSelectMedium:
		return g.match.SelectLevelIndex(LevelMedium)
	case core.ActionSelectHard:
		return g.match.SelectLevelIndex(LevelHard)
	case core.ActionRestart:
		return g.match.StartOrRestart()
	default:
		return false
	}
}

// Render draws the HUD, the playfield and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d terminal", minScreenW, minScreenH), core.ColorRed)
		return
	}

	hud := fmt.Sprintf(" Level: %s  Health: %d  Kills: %d", g.match.Level(), g.scene.Health(), g.match.Kills())
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	dst.DrawBox(frame, core.ColorGray)
	field := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	g.scene.Paint(dst, field)

	switch {
	case g.paused:
		dst.DrawTextCentered(field.Y+field.H/2, "PAUSED", core.ColorWhite)
	case g.match.Phase().Terminal():
		hint := fmt.Sprintf(" 1/2/3 pick level (%s)  r restart", g.match.SelectedLevel())
		dst.DrawTextColored(0, dst.Height()-1, hint, core.ColorGray)
	}
}

// State returns the platform view of the match.
func (g *Game) State() core.GameState {
	if g.match == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.match.Kills(),
		Level:    g.match.Level().String(),
		Health:   g.match.Health(),
		GameOver: g.match.Phase().Terminal(),
		Paused:   g.paused,
	}
}

// Match returns the running match.
func (g *Game) Match() *Match {
	return g.match
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return g.match.Snapshot()
}
