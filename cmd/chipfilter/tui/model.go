package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/ruminaider/chipfilter/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// feed receives controller notifications. The Model holds it by pointer
// because bubbletea copies the Model on every Update.
type feed struct {
	chip     chips.Chip
	filtered []chips.Record
	count    int
}

func (f *feed) ChipClicked(chip chips.Chip, filtered []chips.Record) {
	f.chip = chip
	f.filtered = filtered
	f.count++
}

// Model is the interactive chip filter: a chip row with optional search, the
// filtered records below it, and a status bar.
type Model struct {
	ctrl  *chips.Controller
	feed  *feed
	title string

	focus  FocusZone
	cursor int // index into targets()

	search   textinput.Model
	records  viewport.Model
	filtered []chips.Record
	status   StatusBar
	err      error

	width    int
	height   int
	Quitting bool
}

// NewModel builds the model for cfg over records. Every notification is also
// forwarded to extra when it is non-nil.
func NewModel(title string, cfg config.Config, records []chips.Record, extra chips.Notifier) (Model, error) {
	f := &feed{}
	var n chips.Notifier = f
	if extra != nil {
		n = chips.Notifiers(f, extra)
	}
	ctrl, err := cfg.NewController(records, n)
	if err != nil {
		return Model{}, err
	}

	vs := ctrl.ViewState()
	ti := textinput.New()
	ti.Placeholder = vs.Text.SearchPlaceholder
	ti.CharLimit = 64
	ti.Width = 30

	m := Model{
		ctrl:     ctrl,
		feed:     f,
		title:    title,
		search:   ti,
		records:  viewport.New(80, 10),
		filtered: ctrl.Filtered(),
		status:   NewStatusBar(),
		width:    80,
		height:   24,
	}
	m.distributeSize()
	return m, nil
}

// Controller exposes the underlying chip controller.
func (m Model) Controller() *chips.Controller {
	return m.ctrl
}

// Filtered returns the records currently shown.
func (m Model) Filtered() []chips.Record {
	return m.filtered
}

// Focus returns the focused zone.
func (m Model) Focus() FocusZone {
	return m.focus
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.distributeSize()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.ctrl.Loading() {
			if msg.String() == "q" || msg.String() == "esc" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.focus {
		case FocusSearch:
			return m.updateSearch(msg)
		case FocusRecords:
			return m.updateRecords(msg)
		default:
			return m.updateChips(msg)
		}
	}
	return m, nil
}

func (m Model) updateChips(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	targets := m.targets()
	switch msg.String() {
	case "q", "esc":
		m.Quitting = true
		return m, tea.Quit
	case "left", "h", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < len(targets)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = max(len(targets)-1, 0)
	case " ", "enter":
		if m.cursor < len(targets) {
			m.activate(targets[m.cursor])
		}
	case "c":
		m.err = m.ctrl.ClearAll()
		m.afterChange()
	case "m":
		m.err = m.ctrl.ToggleShowAll()
		m.afterChange()
	case "/":
		if m.ctrl.ViewState().Searchable {
			m.focus = FocusSearch
			return m, m.search.Focus()
		}
	case "tab":
		m.focus = FocusRecords
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		m.focus = FocusChips
		return m, nil
	case "tab":
		m.search.Blur()
		m.focus = FocusRecords
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.ctrl.State().SearchTerm {
		m.err = m.ctrl.SetSearchTerm(m.search.Value())
		m.afterChange()
	}
	return m, cmd
}

func (m Model) updateRecords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.focus = FocusChips
		return m, nil
	case "tab":
		if m.ctrl.ViewState().Searchable {
			m.focus = FocusSearch
			return m, m.search.Focus()
		}
		m.focus = FocusChips
		return m, nil
	}
	var cmd tea.Cmd
	m.records, cmd = m.records.Update(msg)
	return m, cmd
}

// activate runs the action behind a chip-row target. Disabled chips are never
// passed to the controller.
func (m *Model) activate(t target) {
	switch t.kind {
	case targetChip:
		if t.disabled {
			m.err = fmt.Errorf("toggling %q: %w", t.chipID, chips.ErrChipDisabled)
			break
		}
		m.err = m.ctrl.Toggle(t.chipID)
	case targetShowMore:
		m.err = m.ctrl.ToggleShowAll()
	case targetClearAll:
		m.err = m.ctrl.ClearAll()
	}
	m.afterChange()
}

// afterChange pulls the latest notification, keeps the cursor in range and
// resizes the record pane to the new chip row.
func (m *Model) afterChange() {
	if m.feed.count > 0 {
		m.filtered = m.feed.filtered
	}
	if n := len(m.targets()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.distributeSize()
}

// targets lists the focusable entries of the chip row in display order.
func (m Model) targets() []target {
	vs := m.ctrl.ViewState()
	var ts []target
	for _, c := range vs.Chips {
		ts = append(ts, target{kind: targetChip, chipID: c.ID, disabled: c.Disabled})
	}
	if vs.ShowMore {
		ts = append(ts, target{kind: targetShowMore})
	}
	if vs.ClearAll {
		ts = append(ts, target{kind: targetClearAll})
	}
	return ts
}

func (m *Model) distributeSize() {
	contentWidth := max(m.width-2, 10)
	m.records.Width = contentWidth
	m.search.Width = max(contentWidth-4, 10)
	// Chip rows, record header and status bar, plus the optional title,
	// search box and error lines.
	used := lipgloss.Height(m.chipRowView()) + 2
	if m.title != "" {
		used++
	}
	if m.ctrl.ViewState().Searchable {
		used++
	}
	if m.err != nil {
		used++
	}
	m.records.Height = max(m.height-used, 3)
	m.status.SetWidth(m.width)
	m.syncRecords()
}

func (m *Model) syncRecords() {
	m.records.SetContent(renderRecords(m.filtered, m.ctrl.Key(), m.records.Width))
	m.records.GotoTop()
}

func (m Model) summary() Summary {
	return Summary{
		Active:     len(m.ctrl.State().ActiveChips),
		Shown:      len(m.filtered),
		Total:      len(m.ctrl.Records()),
		Policy:     m.ctrl.Policy(),
		Focus:      m.focus,
		Searchable: m.ctrl.ViewState().Searchable,
	}
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	vs := m.ctrl.ViewState()

	var b strings.Builder
	if m.title != "" {
		b.WriteString(HeaderStyle.Render(m.title) + "\n")
	}
	if vs.Loading {
		b.WriteString(DimStyle.Render(vs.Text.Loading) + "\n")
		return ContentPaneStyle.Render(b.String())
	}

	if vs.Searchable {
		b.WriteString(m.search.View() + "\n")
	}
	b.WriteString(m.chipRowView() + "\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(errorText(m.err)) + "\n")
	}

	header := fmt.Sprintf("%s of %d records",
		CountStyle.Render(fmt.Sprint(len(m.filtered))), len(m.ctrl.Records()))
	b.WriteString(header + "\n")
	b.WriteString(m.records.View())

	m.status.Update(m.summary())
	return ContentPaneStyle.Render(b.String()) + "\n" + m.status.View()
}

// chipRowView renders the visible chips and controls, wrapping to the width.
func (m Model) chipRowView() string {
	vs := m.ctrl.ViewState()
	if vs.NoResults {
		return DimStyle.Render(vs.Text.NoResults)
	}

	focused := m.focus == FocusChips
	var blocks []string
	i := 0
	for _, c := range vs.Chips {
		cursor := focused && i == m.cursor
		s := chipStyle(c.IsActive, c.Disabled, cursor, c.Color, c.BackgroundColor, c.BorderColor)
		blocks = append(blocks, s.Render(c.Label))
		i++
	}
	if vs.ShowMore {
		s := ControlStyle
		if focused && i == m.cursor {
			s = s.BorderForeground(colorYellow)
		}
		blocks = append(blocks, s.Render(vs.ShowMoreLabel))
		i++
	}
	if vs.ClearAll {
		s := ControlStyle
		if focused && i == m.cursor {
			s = s.BorderForeground(colorYellow)
		}
		blocks = append(blocks, s.Render(vs.Text.ClearAll))
	}
	return wrapBlocks(blocks, max(m.width-2, 10))
}

// wrapBlocks lays blocks out left to right, starting a new row when the next
// block would exceed width.
func wrapBlocks(blocks []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, blk := range blocks {
		w := lipgloss.Width(blk)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, blk)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func errorText(err error) string {
	switch {
	case errors.Is(err, chips.ErrChipDisabled):
		return "That chip is disabled."
	case errors.Is(err, chips.ErrLoading):
		return "Chips are still loading."
	default:
		return err.Error()
	}
}
