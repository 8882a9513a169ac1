package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table",
	Long:  `Shows the per-level difficulty parameters of the effective configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println(tui.LevelTable(cfg.Levels))
	fmt.Println()
	fmt.Println("Run 'invaders play --level <name>' to start on a level.")
	return nil
}
