package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Fields absent from the document keep their default values.
func Parse(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg InvadersConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable field.
func (c InvadersConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field must have a positive size", ErrInvalidConfig)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Width > c.Field.Width {
		return fmt.Errorf("%w: player size %vx%v does not fit the field", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	if c.Player.Step <= 0 {
		return fmt.Errorf("%w: player step must be positive", ErrInvalidConfig)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("%w: player health must be positive", ErrInvalidConfig)
	}
	if c.Shots.Radius <= 0 || c.Shots.PlayerSpeed <= 0 {
		return fmt.Errorf("%w: shot radius and speed must be positive", ErrInvalidConfig)
	}
	if c.Shots.MinIntervalMS < 0 {
		return fmt.Errorf("%w: min_interval_ms must not be negative", ErrInvalidConfig)
	}
	if c.Bunker.Block <= 0 {
		return fmt.Errorf("%w: bunker block size must be positive", ErrInvalidConfig)
	}
	if err := validateMask("bunker.mask", c.Bunker.Mask); err != nil {
		return err
	}
	if c.Formation.Cell <= 0 {
		return fmt.Errorf("%w: formation cell size must be positive", ErrInvalidConfig)
	}
	if len(c.Formation.Slots) == 0 {
		return fmt.Errorf("%w: formation needs at least one slot", ErrInvalidConfig)
	}
	if err := validateMask("formation.sprite", c.Formation.Sprite); err != nil {
		return err
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive", ErrInvalidConfig)
	}
	if c.Timing.LevelClearDelayMS < 0 {
		return fmt.Errorf("%w: level_clear_delay_ms must not be negative", ErrInvalidConfig)
	}
	if len(c.Levels) != LevelCount {
		return fmt.Errorf("%w: expected %d levels, got %d", ErrInvalidConfig, LevelCount, len(c.Levels))
	}
	for i, l := range c.Levels {
		if l.Name == "" {
			return fmt.Errorf("%w: level %d has no name", ErrInvalidConfig, i)
		}
		if l.EnemySpeed <= 0 || l.EnemyBulletSpeed <= 0 {
			return fmt.Errorf("%w: level %s speeds must be positive", ErrInvalidConfig, l.Name)
		}
		if l.ShootIntervalMS <= 0 {
			return fmt.Errorf("%w: level %s shoot_interval_ms must be positive", ErrInvalidConfig, l.Name)
		}
		if l.MaxPlayerBullets <= 0 {
			return fmt.Errorf("%w: level %s max_player_bullets must be positive", ErrInvalidConfig, l.Name)
		}
		if l.Bunkers < 0 {
			return fmt.Errorf("%w: level %s bunkers must not be negative", ErrInvalidConfig, l.Name)
		}
	}
	return nil
}

// validateMask checks that rows are non-empty, equally long and made of '0'/'1'.
func validateMask(field string, rows []string) error {
	if len(rows) == 0 || rows[0] == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, field)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: %s row %d has length %d, expected %d", ErrInvalidConfig, field, i, len(row), width)
		}
		if strings.Trim(row, "01") != "" {
			return fmt.Errorf("%w: %s row %d must contain only 0 and 1", ErrInvalidConfig, field, i)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// ParsePreset converts a CLI string into a preset.
// The empty string is accepted and means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}
