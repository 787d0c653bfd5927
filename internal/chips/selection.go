package chips

import (
	"fmt"
	"slices"
)

// Policy decides how a toggle affects the other active chips.
type Policy int

const (
	SingleSelect Policy = iota // at most one active chip
	MultiSelect                // any number of active chips, AND-ed together
)

func (p Policy) String() string {
	switch p {
	case SingleSelect:
		return "single"
	case MultiSelect:
		return "multi"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Selection tracks the active chip ids under a fixed Policy.
type Selection struct {
	policy Policy
	active []string
	chips  chipIndex
}

// NewSelection builds a selection over chips, starting from the chips flagged
// Active. Under SingleSelect only the last flagged chip is kept.
func NewSelection(policy Policy, chips []Chip) *Selection {
	s := &Selection{policy: policy}
	s.setChips(chips)
	initial := InitiallyActive(chips)
	if policy == SingleSelect && len(initial) > 1 {
		initial = initial[len(initial)-1:]
	}
	s.active = initial
	return s
}

func (s *Selection) setChips(chips []Chip) {
	s.chips = indexChips(chips)
}

// Policy returns the selection policy.
func (s *Selection) Policy() Policy {
	return s.policy
}

// Toggle applies one toggle of id. Unknown and disabled ids leave the
// selection untouched and return ErrUnknownChip or ErrChipDisabled.
func (s *Selection) Toggle(id string) error {
	c, ok := s.chips[id]
	if !ok {
		return fmt.Errorf("toggling %q: %w", id, ErrUnknownChip)
	}
	if c.Disabled {
		return fmt.Errorf("toggling %q: %w", id, ErrChipDisabled)
	}
	s.active = s.next(id)
	return nil
}

// next returns the active set that toggling id would produce.
func (s *Selection) next(id string) []string {
	present := slices.Contains(s.active, id)
	if s.policy == MultiSelect {
		if present {
			return slices.DeleteFunc(slices.Clone(s.active), func(a string) bool { return a == id })
		}
		return append(slices.Clone(s.active), id)
	}
	if present {
		return nil
	}
	return []string{id}
}

// Clear deactivates every chip.
func (s *Selection) Clear() {
	s.active = nil
}

// IsActive reports whether id is active.
func (s *Selection) IsActive(id string) bool {
	return slices.Contains(s.active, id)
}

// Active returns a copy of the active ids in activation order.
func (s *Selection) Active() []string {
	return slices.Clone(s.active)
}

// Len returns the number of active ids.
func (s *Selection) Len() int {
	return len(s.active)
}
