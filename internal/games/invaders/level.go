package invaders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the level table.
var ErrUnknownLevel = errors.New("unknown level")

// Level is a difficulty level index, 0 (Easy) through 2 (Hard).
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

// LevelCount is the number of levels in a playthrough.
const LevelCount = config.LevelCount

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Last reports whether l is the final level.
func (l Level) Last() bool {
	return l >= LevelCount-1
}

// ParseLevel resolves a level by name, ignoring case.
func ParseLevel(name string) (Level, error) {
	for l := LevelEasy; l < LevelCount; l++ {
		if strings.EqualFold(name, l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Params are the difficulty-derived parameters of a level.
type Params struct {
	EnemySpeed       float64       // Formation horizontal speed per tick
	EnemyBulletSpeed float64       // Enemy shot fall per tick
	ShootInterval    time.Duration // Enemy fire period
	MaxPlayerBullets int           // Simultaneous player shots allowed
	Bunkers          int           // Bunkers laid out on the field
}

// difficultyTable is indexed by Level.
var difficultyTable = [LevelCount]Params{
	{EnemySpeed: 0.5, EnemyBulletSpeed: 5, ShootInterval: 1100 * time.Millisecond, MaxPlayerBullets: 2, Bunkers: 3},
	{EnemySpeed: 1.0, EnemyBulletSpeed: 10, ShootInterval: 900 * time.Millisecond, MaxPlayerBullets: 3, Bunkers: 2},
	{EnemySpeed: 1.5, EnemyBulletSpeed: 12, ShootInterval: 100 * time.Millisecond, MaxPlayerBullets: 4, Bunkers: 1},
}

// DifficultyParams returns the built-in parameters for a level.
// Out-of-range levels are clamped to the nearest valid level.
func DifficultyParams(l Level) Params {
	return difficultyTable[clampLevel(l)]
}

// paramsFromConfig converts a configured level row into Params.
func paramsFromConfig(l config.LevelConfig) Params {
	return Params{
		EnemySpeed:       l.EnemySpeed,
		EnemyBulletSpeed: l.EnemyBulletSpeed,
		ShootInterval:    l.ShootInterval(),
		MaxPlayerBullets: l.MaxPlayerBullets,
		Bunkers:          l.Bunkers,
	}
}

func clampLevel(l Level) Level {
	if l < LevelEasy {
		return LevelEasy
	}
	if l >= LevelCount {
		return LevelCount - 1
	}
	return l
}

// Phase is the match state machine position.
type Phase int

const (
	PhasePlaying    Phase = iota // Formation alive, player alive
	PhaseLevelClear              // Formation destroyed, waiting to advance
	PhaseVictory                 // Final level cleared
	PhaseGameOver                // Health reached zero
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelClear:
		return "level_clear"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseGameOver
}
