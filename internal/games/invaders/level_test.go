package invaders

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestDifficultyParams(t *testing.T) {
	tests := []struct {
		level    Level
		expected Params
	}{
		{LevelEasy, Params{EnemySpeed: 0.5, EnemyBulletSpeed: 5, ShootInterval: 1100 * time.Millisecond, MaxPlayerBullets: 2, Bunkers: 3}},
		{LevelMedium, Params{EnemySpeed: 1.0, EnemyBulletSpeed: 10, ShootInterval: 900 * time.Millisecond, MaxPlayerBullets: 3, Bunkers: 2}},
		{LevelHard, Params{EnemySpeed: 1.5, EnemyBulletSpeed: 12, ShootInterval: 100 * time.Millisecond, MaxPlayerBullets: 4, Bunkers: 1}},
	}

	cfg := config.DefaultInvadersConfig()
	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			if got := DifficultyParams(tc.level); got != tc.expected {
				t.Errorf("DifficultyParams(%v) = %+v, expected %+v", tc.level, got, tc.expected)
			}
			// Calling twice must give the same answer
			if DifficultyParams(tc.level) != DifficultyParams(tc.level) {
				t.Errorf("DifficultyParams(%v) is not stable", tc.level)
			}
			if got := paramsFromConfig(cfg.Levels[tc.level]); got != tc.expected {
				t.Errorf("default config level %v = %+v, expected %+v", tc.level, got, tc.expected)
			}
		})
	}
}

func TestDifficultyParamsClamps(t *testing.T) {
	if DifficultyParams(-1) != DifficultyParams(LevelEasy) {
		t.Error("DifficultyParams(-1) should clamp to Easy")
	}
	if DifficultyParams(7) != DifficultyParams(LevelHard) {
		t.Error("DifficultyParams(7) should clamp to Hard")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
	}{
		{"Easy", LevelEasy},
		{"medium", LevelMedium},
		{"HARD", LevelHard},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseLevel("insane"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(insane) = %v, expected ErrUnknownLevel", err)
	}
}

func TestPhaseTerminal(t *testing.T) {
	tests := []struct {
		phase    Phase
		terminal bool
	}{
		{PhasePlaying, false},
		{PhaseLevelClear, false},
		{PhaseVictory, true},
		{PhaseGameOver, true},
	}
	for _, tc := range tests {
		if got := tc.phase.Terminal(); got != tc.terminal {
			t.Errorf("%v.Terminal() = %v, expected %v", tc.phase, got, tc.terminal)
		}
	}
}
