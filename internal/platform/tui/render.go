package tui

import (
	"strings"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the
// current theme.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, theme)
}

// renderScreen groups adjacent cells with the same color so each run costs
// one pair of ANSI escape sequences.
func renderScreen(s *core.Screen, t Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	plain := t.Colors[core.ColorDefault]
	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := t.Colors[color]
			if !ok {
				style = plain
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
