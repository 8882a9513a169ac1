package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// LevelTable renders the difficulty table as a static bubbles table.
func LevelTable(levels []config.LevelConfig) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 8},
		{Title: "Speed", Width: 6},
		{Title: "Shot speed", Width: 10},
		{Title: "Fire every", Width: 10},
		{Title: "Max shots", Width: 9},
		{Title: "Bunkers", Width: 7},
	}

	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			l.Name,
			fmt.Sprintf("%.1f", l.EnemySpeed),
			fmt.Sprintf("%.1f", l.EnemyBulletSpeed),
			fmt.Sprintf("%dms", l.ShootIntervalMS),
			fmt.Sprintf("%d", l.MaxPlayerBullets),
			fmt.Sprintf("%d", l.Bunkers),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not focused: no row is highlighted
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}
