package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Theme contains all configurable visual styles of the terminal UI.
type Theme struct {
	// Cell colors of the game screen
	Colors map[core.Color]lipgloss.Style

	// Menu styles
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style

	// Scoreboard styles
	Border      lipgloss.Color
	TableHeader lipgloss.Style
	TableActive lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultTheme returns the default ANSI theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},

		Title:       fg("229").Bold(true),
		Subtitle:    fg("245"),
		ItemNormal:  fg("252"),
		ItemActive:  fg("226").Bold(true),
		Description: fg("241").Italic(true),

		Border:      lipgloss.Color("240"),
		TableHeader: lipgloss.NewStyle().Bold(true),
		TableActive: fg("229").Background(lipgloss.Color("57")),
		Empty:       fg("241").Italic(true).Padding(2, 4),
		Help:        fg("241"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Colors {
		theme.Colors[c] = lipgloss.NewStyle()
	}
	theme.ItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	theme.TableActive = lipgloss.NewStyle().Reverse(true)
	return theme
}

// ThemeByName returns the theme registered under name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return Theme{}, false
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}
