package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Chip styles.
var (
	// ChipStyle is the base style for an inactive chip.
	ChipStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// ControlStyle is used for the show-more and clear-all controls.
	ControlStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)
)

// Content styles.
var (
	// HeaderStyle is used for section headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// DimStyle is used for placeholders and secondary text.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// ErrorStyle is used for the last rejected action.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	// CountStyle highlights record counts.
	CountStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	// ContentPaneStyle wraps the main content area.
	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// chipStyle builds the style for one chip, applying its own colors.
func chipStyle(active, disabled, cursor bool, color, background, border string) lipgloss.Style {
	s := ChipStyle
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	if background != "" {
		s = s.Background(lipgloss.Color(background))
	}
	if border != "" {
		s = s.BorderForeground(lipgloss.Color(border))
	}
	if active {
		s = s.Foreground(colorBase).
			Background(colorBlue).
			BorderForeground(colorBlue).
			Bold(true)
	}
	if disabled {
		s = s.Foreground(colorOverlay0).Strikethrough(true)
	}
	if cursor {
		s = s.BorderForeground(colorYellow)
	}
	return s
}
