package chips

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchMode selects how the search term narrows chip labels.
type SearchMode int

const (
	SearchSubstring SearchMode = iota // case-insensitive substring
	SearchFuzzy                       // case-insensitive subsequence
)

func (m SearchMode) String() string {
	if m == SearchFuzzy {
		return "fuzzy"
	}
	return "substring"
}

// ViewQuery holds the inputs of the visible-chip derivation.
type ViewQuery struct {
	Searchable bool
	SearchTerm string
	SearchMode SearchMode
	MaxChips   int // 0 means unlimited
	ShowAll    bool
}

// VisibleChips narrows chips by the search term, then truncates to MaxChips
// unless ShowAll is set. Chip order is always preserved and the result never
// shares memory with chips.
func VisibleChips(chips []Chip, q ViewQuery) []Chip {
	visible := chips
	if q.Searchable && q.SearchTerm != "" {
		visible = searchChips(chips, q.SearchTerm, q.SearchMode)
	}
	if q.MaxChips > 0 && !q.ShowAll && len(visible) > q.MaxChips {
		visible = visible[:q.MaxChips]
	}
	return slices.Clone(visible)
}

func searchChips(chips []Chip, term string, mode SearchMode) []Chip {
	if mode == SearchFuzzy {
		labels := make([]string, len(chips))
		for i, c := range chips {
			labels[i] = c.Label
		}
		matches := fuzzy.Find(term, labels)
		idx := make([]int, 0, len(matches))
		for _, m := range matches {
			idx = append(idx, m.Index)
		}
		// fuzzy ranks by score; chips keep caller order.
		slices.Sort(idx)
		out := make([]Chip, 0, len(idx))
		for _, i := range idx {
			out = append(out, chips[i])
		}
		return out
	}

	needle := strings.ToLower(term)
	var out []Chip
	for _, c := range chips {
		if strings.Contains(strings.ToLower(c.Label), needle) {
			out = append(out, c)
		}
	}
	return out
}

// View memoizes VisibleChips. The result is recomputed only when the chip list
// generation or any query field changes.
type View struct {
	valid   bool
	gen     uint64
	query   ViewQuery
	visible []Chip
}

// Visible returns the visible chips for chips at generation gen. Callers get
// their own copy; the cached result is never handed out.
func (v *View) Visible(chips []Chip, gen uint64, q ViewQuery) []Chip {
	if !v.valid || v.gen != gen || v.query != q {
		v.visible = VisibleChips(chips, q)
		v.gen = gen
		v.query = q
		v.valid = true
	}
	return slices.Clone(v.visible)
}

// Invalidate forces the next Visible call to recompute.
func (v *View) Invalidate() {
	v.valid = false
}
