package tui

// FocusZone identifies which component currently has keyboard focus.
type FocusZone int

const (
	FocusChips   FocusZone = iota
	FocusSearch            // Chip search box
	FocusRecords           // Filtered record list, read-only scroll
)

// String returns the display name for a focus zone.
func (f FocusZone) String() string {
	switch f {
	case FocusChips:
		return "chips"
	case FocusSearch:
		return "search"
	case FocusRecords:
		return "records"
	default:
		return "unknown"
	}
}

// targetKind identifies what a cursor position in the chip row activates.
type targetKind int

const (
	targetChip     targetKind = iota
	targetShowMore            // show more / show less control
	targetClearAll            // clear-all control
)

// target is one focusable entry in the chip row.
type target struct {
	kind     targetKind
	chipID   string
	disabled bool
}
