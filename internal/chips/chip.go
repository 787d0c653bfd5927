package chips

import (
	"errors"
	"strings"
)

var (
	// ErrNotInitialized is the panic value for a Controller that was not built by New.
	ErrNotInitialized = errors.New("chips: controller used before initialization")
	ErrUnknownChip    = errors.New("unknown chip")
	ErrChipDisabled   = errors.New("chip is disabled")
	ErrLoading        = errors.New("chips are loading")
)

// Chip is a selectable filter option. The engine never mutates chips; which
// chips are active lives in a Selection.
type Chip struct {
	ID       string
	Label    string
	Value    any  // compared against record fields, or a membership target for sequence fields
	Active   bool // initially active
	Disabled bool

	// Presentation only.
	Color           string
	BackgroundColor string
	BorderColor     string
}

// NoChip is passed to a Notifier by ClearAll in place of a clicked chip.
var NoChip = Chip{}

// IsZero reports whether c is the NoChip marker.
func (c Chip) IsZero() bool {
	return c.ID == "" && c.Label == "" && c.Value == nil
}

// Record is a single entry of the caller's data collection.
type Record = map[string]any

// FilterKey names the record fields a chip value is compared against. A record
// matches when any of the fields matches.
type FilterKey []string

// Key returns a single-field FilterKey.
func Key(field string) FilterKey {
	return FilterKey{field}
}

// Keys returns a FilterKey over several fields, OR-ed in the given order.
func Keys(fields ...string) FilterKey {
	return FilterKey(fields)
}

func (k FilterKey) String() string {
	if len(k) == 1 {
		return k[0]
	}
	return "[" + strings.Join(k, ", ") + "]"
}

// chipIndex maps chip ids to their definitions.
type chipIndex map[string]Chip

func indexChips(chips []Chip) chipIndex {
	idx := make(chipIndex, len(chips))
	for _, c := range chips {
		idx[c.ID] = c
	}
	return idx
}

// InitiallyActive returns the ids of chips flagged Active, in chip order.
func InitiallyActive(chips []Chip) []string {
	var ids []string
	for _, c := range chips {
		if c.Active {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
