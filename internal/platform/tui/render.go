package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-triplets/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorTeal:      lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorHighlight: lipgloss.NewStyle().Reverse(true),
	core.ColorWildcard:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run; the continuation
// cells of wide runes are skipped.
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
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
