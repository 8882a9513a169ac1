package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// colorStyles maps the playfield palette to ANSI 256-color styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorLightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	core.ColorViolet:     lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorLightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the style of a palette color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
