package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/chipfilter/internal/chips"
)

// renderRecords renders one line per record. Filter key fields come first,
// the remaining fields follow in name order. Lines are cut to width.
func renderRecords(records []chips.Record, key chips.FilterKey, width int) string {
	if len(records) == 0 {
		return DimStyle.Render("(no records)")
	}
	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := formatRecord(r, key)
		if width > 0 && ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatRecord(r chips.Record, key chips.FilterKey) string {
	rest := make([]string, 0, len(r))
	for k := range r {
		if !slices.Contains(key, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)

	var parts []string
	for _, k := range key {
		if v, ok := r[k]; ok {
			parts = append(parts, HeaderStyle.Render(k)+"="+formatValue(v))
		}
	}
	for _, k := range rest {
		parts = append(parts, k+"="+formatValue(r[k]))
	}
	return strings.Join(parts, "  ")
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		if strings.ContainsAny(x, " \t") {
			return fmt.Sprintf("%q", x)
		}
		return x
	case []any:
		elems := make([]string, len(x))
		for i, e := range x {
			elems[i] = formatValue(e)
		}
		return "[" + strings.Join(elems, ",") + "]"
	default:
		return fmt.Sprint(v)
	}
}
