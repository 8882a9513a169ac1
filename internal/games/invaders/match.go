// Package invaders implements the invaders combat simulation.
//
// A Match owns the player, the enemy formation, the bunker field and the
// level state machine. It runs against a virtual clock: callers move time
// forward with Advance and observe the result through a Renderer.
package invaders

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Overlay messages.
const (
	MsgLevelClear = "LEVEL CLEAR!"
	MsgVictory    = "YOU BEAT THE GAME!"
	MsgGameOver   = "Game Over"
)

// Option configures a Match.
type Option func(*Match)

// WithRenderer sets the renderer that receives drawing commands.
func WithRenderer(r Renderer) Option {
	return func(m *Match) {
		if r != nil {
			m.out = r
		}
	}
}

// WithLogger sets the logger for match events.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.log = l
		}
	}
}

// WithSeed seeds the enemy fire RNG.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.seed = seed
	}
}

// WithStartLevel sets the level the match starts on.
func WithStartLevel(l Level) Option {
	return func(m *Match) {
		m.selected = clampLevel(l)
	}
}

// Match is one playthrough of the invaders levels.
type Match struct {
	cfg   config.InvadersConfig
	runID uuid.UUID
	log   *log.Logger
	out   Renderer
	seed  int64
	rng   *SimpleRNG
	sched *Scheduler
	arena handleArena

	player      *Player
	bunkers     *BunkerField
	formation   *Formation
	playerShots []*Projectile
	enemyShots  []*Projectile

	phase    Phase
	level    Level
	selected Level // Level the next restart enters
	params   Params
	kills    int
	lastShot time.Duration
	hasShot  bool

	fireTask  TaskID
	clearTask TaskID
}

// NewMatch creates a match in the Playing state of its start level.
func NewMatch(cfg config.InvadersConfig, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	m := &Match{
		cfg:   cfg,
		runID: uuid.New(),
		log:   log.New(io.Discard),
		out:   NopRenderer{},
		seed:  1,
		sched: NewScheduler(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("run", m.runID.String())
	m.rng = NewSimpleRNG(m.seed)
	m.bunkers = newBunkerField(cfg.Bunker, cfg.Field.Width, &m.arena, m.out)
	m.formation = newFormation(cfg.Formation, cfg.Field.Width, &m.arena, m.out)

	m.sched.Every(cfg.Timing.TickPeriod(), m.tick)
	m.enterPlaying(m.selected)
	return m, nil
}

// Advance moves the match clock forward, running every tick and timer that falls due.
func (m *Match) Advance(d time.Duration) {
	m.sched.Advance(d)
}

// tick is one frame: formation, then enemy shots, then player shots.
func (m *Match) tick() {
	if m.phase != PhasePlaying {
		return
	}
	m.formation.Advance()
	m.stepEnemyProjectiles()
	if m.phase != PhasePlaying {
		return
	}
	m.stepPlayerProjectiles()
}

// MoveLeft moves the player one step left, stopping at the field edge.
func (m *Match) MoveLeft() {
	m.movePlayer(-m.cfg.Player.Step)
}

// MoveRight moves the player one step right, stopping at the field edge.
func (m *Match) MoveRight() {
	m.movePlayer(m.cfg.Player.Step)
}

func (m *Match) movePlayer(dx float64) {
	if m.phase.Terminal() || m.player == nil || !m.player.Alive {
		return
	}
	maxX := m.cfg.Field.Width - m.player.W
	x := m.player.X + dx
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}
	if x == m.player.X {
		return
	}
	m.player.X = x
	m.out.UpdatePosition(m.player.Handle, m.player.X, m.player.Y)
}

// SelectLevel picks the level the next restart enters, by name.
// Only honored once the run has ended.
func (m *Match) SelectLevel(name string) bool {
	l, err := ParseLevel(name)
	if err != nil {
		m.log.Debug("level selection ignored", "err", err)
		return false
	}
	return m.SelectLevelIndex(l)
}

// SelectLevelIndex picks the level the next restart enters.
// Only honored once the run has ended.
func (m *Match) SelectLevelIndex(l Level) bool {
	if !m.phase.Terminal() {
		m.log.Debug("level selection ignored", "requested", l, "phase", m.phase, "level", m.level)
		return false
	}
	if l < LevelEasy || l >= LevelCount {
		m.log.Debug("level selection ignored", "requested", int(l))
		return false
	}
	m.selected = l
	return true
}

// StartOrRestart starts a fresh run on the selected level.
// Only honored once the previous run has ended.
func (m *Match) StartOrRestart() bool {
	if !m.phase.Terminal() {
		return false
	}
	m.kills = 0
	m.enterPlaying(m.selected)
	return true
}

// enterPlaying resets the field for level l and arms its enemy fire timer.
func (m *Match) enterPlaying(l Level) {
	l = clampLevel(l)
	m.sched.Cancel(m.fireTask)
	m.sched.Cancel(m.clearTask)
	m.clearProjectiles()
	m.out.ClearText()

	m.phase = PhasePlaying
	m.level = l
	m.selected = l
	m.params = paramsFromConfig(m.cfg.Levels[l])
	m.hasShot = false
	m.lastShot = 0

	m.resetPlayer()
	m.bunkers.Build(m.bunkers.Layout(m.params.Bunkers))
	m.formation.Spawn(m.params.EnemySpeed)
	m.fireTask = m.sched.Every(m.params.ShootInterval, m.enemyFire)

	m.log.Info("level started",
		"level", l,
		"enemy_speed", m.params.EnemySpeed,
		"shoot_interval", m.params.ShootInterval,
		"max_shots", m.params.MaxPlayerBullets,
		"bunkers", m.params.Bunkers,
	)
}

func (m *Match) resetPlayer() {
	if m.player != nil && m.player.Alive {
		m.out.RemoveBlock(m.player.Handle)
	}
	pc := m.cfg.Player
	m.player = &Player{
		Handle: m.arena.alloc(),
		X:      pc.X,
		Y:      pc.Y,
		W:      pc.Width,
		H:      pc.Height,
		Health: pc.Health,
		Alive:  true,
	}
	m.out.DrawBlock(m.player.Handle, BlockPlayer, m.player.Box())
	m.out.UpdateHealthDisplay(m.player.Health)
}

// enterLevelClear runs when the formation is emptied.
// The final level ends the run; earlier levels advance after a delay.
func (m *Match) enterLevelClear() {
	if m.phase != PhasePlaying {
		return
	}
	m.sched.Cancel(m.fireTask)
	m.clearProjectiles()

	if m.level.Last() {
		m.phase = PhaseVictory
		m.selected = LevelEasy
		m.out.DisplayText(MsgVictory, TextVictory)
		m.log.Info("victory", "level", m.level, "kills", m.kills)
		return
	}

	m.phase = PhaseLevelClear
	m.out.DisplayText(MsgLevelClear, TextLevelClear)
	next := m.level + 1
	m.clearTask = m.sched.After(m.cfg.Timing.LevelClearDelay(), func() {
		m.enterPlaying(next)
	})
	m.log.Info("level cleared", "level", m.level, "next", next, "kills", m.kills)
}

// enterGameOver ends the run after the player's health is exhausted.
func (m *Match) enterGameOver() {
	if m.phase.Terminal() {
		return
	}
	m.sched.Cancel(m.fireTask)
	m.sched.Cancel(m.clearTask)
	m.clearProjectiles()

	m.phase = PhaseGameOver
	m.selected = LevelEasy
	m.player.Alive = false
	m.out.RemoveBlock(m.player.Handle)
	m.out.DisplayText(MsgGameOver, TextGameOver)
	m.log.Info("game over", "level", m.level, "kills", m.kills)
}

// Phase returns the state machine position.
func (m *Match) Phase() Phase { return m.phase }

// Level returns the current level.
func (m *Match) Level() Level { return m.level }

// SelectedLevel returns the level the next restart enters.
func (m *Match) SelectedLevel() Level { return m.selected }

// Params returns the parameters of the current level.
func (m *Match) Params() Params { return m.params }

// Health returns the player's remaining health.
func (m *Match) Health() int { return m.player.Health }

// Player returns a copy of the player.
func (m *Match) Player() Player { return *m.player }

// Kills returns the enemies destroyed in this run.
func (m *Match) Kills() int { return m.kills }

// Now returns the match clock.
func (m *Match) Now() time.Duration { return m.sched.Now() }

// RunID identifies the run in logs.
func (m *Match) RunID() uuid.UUID { return m.runID }

// Config returns the configuration the match was built from.
func (m *Match) Config() config.InvadersConfig { return m.cfg }

// Formation returns the enemy formation.
func (m *Match) Formation() *Formation { return m.formation }

// Bunkers returns the bunker field.
func (m *Match) Bunkers() *BunkerField { return m.bunkers }

// PlayerProjectiles returns the number of player shots in flight.
func (m *Match) PlayerProjectiles() int { return len(m.playerShots) }

// EnemyProjectiles returns the number of enemy shots in flight.
func (m *Match) EnemyProjectiles() int { return len(m.enemyShots) }
