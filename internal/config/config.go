// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"math"
	"time"
)

// InvadersConfig contains all configuration for the invaders game.
// Coordinates are playfield units; the renderer scales them to the terminal.
type InvadersConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Shots     ShotConfig      `yaml:"shots"`
	Bunker    BunkerConfig    `yaml:"bunker"`
	Formation FormationConfig `yaml:"formation"`
	Timing    TimingConfig    `yaml:"timing"`
	Levels    []LevelConfig   `yaml:"levels"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player cannon.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Step          float64 `yaml:"step"`   // Distance moved per key press
	Health        int     `yaml:"health"` // Hits the cannon survives
	MuzzleOffsetX float64 `yaml:"muzzle_offset_x"`
	MuzzleOffsetY float64 `yaml:"muzzle_offset_y"`
}

// ShotConfig defines projectile parameters shared by both sides.
type ShotConfig struct {
	Radius        float64 `yaml:"radius"`
	PlayerSpeed   float64 `yaml:"player_speed"`    // Upward distance per tick
	MinIntervalMS int     `yaml:"min_interval_ms"` // Player fire rate limit
}

// BunkerConfig defines the destructible cover.
// Mask rows are strings of '0' (hole) and '1' (block).
type BunkerConfig struct {
	Block float64  `yaml:"block"`
	Top   float64  `yaml:"top"`
	Mask  []string `yaml:"mask"`
}

// FormationConfig defines the enemy formation.
// Sprite rows are strings of '0' and '1', scaled by Cell.
type FormationConfig struct {
	Slots  []float64 `yaml:"slots"`
	Top    float64   `yaml:"top"`
	Cell   float64   `yaml:"cell"`
	Sprite []string  `yaml:"sprite"`
}

// TimingConfig defines the frame cadence and transition delays.
type TimingConfig struct {
	TickMS            float64 `yaml:"tick_ms"`
	LevelClearDelayMS int     `yaml:"level_clear_delay_ms"`
}

// TickPeriod returns the main simulation tick period.
func (t TimingConfig) TickPeriod() time.Duration {
	return time.Duration(math.Round(t.TickMS * float64(time.Millisecond)))
}

// LevelClearDelay returns how long the level clear banner stays up.
func (t TimingConfig) LevelClearDelay() time.Duration {
	return time.Duration(t.LevelClearDelayMS) * time.Millisecond
}

// MinShotInterval returns the player fire rate limit.
func (s ShotConfig) MinShotInterval() time.Duration {
	return time.Duration(s.MinIntervalMS) * time.Millisecond
}

// LevelConfig defines the per-level difficulty parameters.
type LevelConfig struct {
	Name             string  `yaml:"name"`
	EnemySpeed       float64 `yaml:"enemy_speed"`
	EnemyBulletSpeed float64 `yaml:"enemy_bullet_speed"`
	ShootIntervalMS  int     `yaml:"shoot_interval_ms"`
	MaxPlayerBullets int     `yaml:"max_player_bullets"`
	Bunkers          int     `yaml:"bunkers"`
}

// ShootInterval returns the enemy fire period for the level.
func (l LevelConfig) ShootInterval() time.Duration {
	return time.Duration(l.ShootIntervalMS) * time.Millisecond
}

// LevelCount is the fixed number of levels in a playthrough.
const LevelCount = 3

// DifficultyPreset represents a named starting level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the level index a preset starts on.
// Unknown or empty presets start on the first level.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}
