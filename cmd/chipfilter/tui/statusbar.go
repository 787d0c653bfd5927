package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/chipfilter/internal/chips"
)

// Summary is the state the status bar reports.
type Summary struct {
	Active     int
	Shown      int
	Total      int
	Policy     chips.Policy
	Focus      FocusZone
	Searchable bool
}

// StatusBar renders the bottom row with selection counts and keyboard shortcuts.
type StatusBar struct {
	summary Summary
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{width: 80}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar.
func (s *StatusBar) Update(summary Summary) {
	s.summary = summary
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := fmt.Sprintf("%d active · %d/%d records · %s-select",
		s.summary.Active, s.summary.Shown, s.summary.Total, s.summary.Policy)

	var shortcuts []string
	switch s.summary.Focus {
	case FocusSearch:
		shortcuts = []string{
			StatusBarKeyStyle.Render("Enter") + ": done",
			StatusBarKeyStyle.Render("Tab") + ": records",
		}
	case FocusRecords:
		shortcuts = []string{
			StatusBarKeyStyle.Render("↑↓") + ": scroll",
			StatusBarKeyStyle.Render("Esc") + ": chips",
		}
	default:
		shortcuts = []string{
			StatusBarKeyStyle.Render("Space") + ": toggle",
			StatusBarKeyStyle.Render("c") + ": clear",
			StatusBarKeyStyle.Render("m") + ": more",
		}
		if s.summary.Searchable {
			shortcuts = append(shortcuts, StatusBarKeyStyle.Render("/")+": search")
		}
	}
	shortcuts = append(shortcuts, StatusBarKeyStyle.Render("q")+": quit")
	right := strings.Join(shortcuts, " · ")

	// Calculate padding between left and right.
	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right
	if ansi.StringWidth(content) > availableWidth && availableWidth > 0 {
		content = ansi.Truncate(content, availableWidth, "…")
	}
	return StatusBarStyle.Width(s.width).Render(content)
}
