package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps core.Color to bold lipgloss foreground styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok || startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
