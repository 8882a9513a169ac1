package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var flagLevel string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run of Invaders. Without --level a selector asks for the
starting level.

Controls:
  Left/A, Right/D  - Move the cannon
  Space            - Fire
  P/Esc            - Pause
  1/2/3            - Pick the next starting level (after a run ends)
  R/Enter          - Start again (after a run ends)
  Q/Ctrl+C         - Quit

Levels:
  easy   (1) - Slow formation, 3 bunkers, 2 shots in flight
  medium (2) - Faster formation, 2 bunkers, 3 shots in flight
  hard   (3) - Rapid enemy fire, 1 bunker, 4 shots in flight

Examples:
  invaders play
  invaders play --level medium
  invaders play --level 3 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Starting level: easy, medium, hard or 1-3")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(invaders.GameID) {
		return fmt.Errorf("game %q is not registered", invaders.GameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	level := invaders.LevelEasy
	if flagLevel != "" {
		level, err = parseLevelFlag(flagLevel)
		if err != nil {
			return err
		}
	} else {
		gameCfg, loadErr := config.LoadInvaders(flagConfig)
		if loadErr != nil {
			return loadErr
		}
		chosen, ok, selErr := tui.RunLevelSelector(gameCfg.Levels, cfg)
		if selErr != nil {
			return selErr
		}
		// User quit the selector
		if !ok {
			return nil
		}
		level = chosen
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetStartLevel(level)
	invaders.SetLogger(logger)

	game, err := registry.Create(invaders.GameID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

// parseLevelFlag accepts a preset name or a 1-based level number.
func parseLevelFlag(s string) (invaders.Level, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > int(invaders.LevelCount) {
			return invaders.LevelEasy, fmt.Errorf("level %d out of range (1-%d)", n, invaders.LevelCount)
		}
		return invaders.Level(n - 1), nil
	}

	preset, err := config.ParsePreset(s)
	if err != nil {
		return invaders.LevelEasy, err
	}
	return invaders.Level(config.StartLevelForPreset(preset)), nil
}
