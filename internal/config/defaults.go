package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  500,
			Height: 500,
		},
		Player: PlayerConfig{
			X:             0,
			Y:             450,
			Width:         36,
			Height:        10,
			Step:          20,
			Health:        3,
			MuzzleOffsetX: 15,
			MuzzleOffsetY: 3,
		},
		Shots: ShotConfig{
			Radius:        5,
			PlayerSpeed:   5,
			MinIntervalMS: 200,
		},
		Bunker: BunkerConfig{
			Block: 6,
			Top:   360,
			Mask: []string{
				"011111111110",
				"111111111111",
				"111111111111",
				"111100001111",
				"111000000111",
				"110000000011",
			},
		},
		Formation: FormationConfig{
			Slots: []float64{0, 50, 100, 150, 200, 250},
			Top:   60,
			Cell:  3,
			Sprite: []string{
				"00100000100",
				"00010001000",
				"00111111100",
				"01101110110",
				"11111111111",
				"10111111101",
				"10100000101",
				"00011011000",
			},
		},
		Timing: TimingConfig{
			TickMS:            16.6,
			LevelClearDelayMS: 1200,
		},
		Levels: []LevelConfig{
			{Name: "Easy", EnemySpeed: 0.5, EnemyBulletSpeed: 5, ShootIntervalMS: 1100, MaxPlayerBullets: 2, Bunkers: 3},
			{Name: "Medium", EnemySpeed: 1.0, EnemyBulletSpeed: 10, ShootIntervalMS: 900, MaxPlayerBullets: 3, Bunkers: 2},
			{Name: "Hard", EnemySpeed: 1.5, EnemyBulletSpeed: 12, ShootIntervalMS: 100, MaxPlayerBullets: 4, Bunkers: 1},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
