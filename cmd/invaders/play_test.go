package main

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func TestParseLevelFlag(t *testing.T) {
	tests := []struct {
		in       string
		expected invaders.Level
		wantErr  bool
	}{
		{"easy", invaders.LevelEasy, false},
		{"Medium", invaders.LevelMedium, false},
		{"HARD", invaders.LevelHard, false},
		{"1", invaders.LevelEasy, false},
		{"3", invaders.LevelHard, false},
		{"0", invaders.LevelEasy, true},
		{"4", invaders.LevelEasy, true},
		{"insane", invaders.LevelEasy, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseLevelFlag(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseLevelFlag(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("parseLevelFlag(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}
