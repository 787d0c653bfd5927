package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/stretchr/testify/assert"
)

func TestRenderRecords(t *testing.T) {
	out := renderRecords(products()[:2], chips.Keys("category", "tags"), 0)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "category=Electronics  tags=[wireless,bluetooth]"))
	assert.Contains(t, lines[0], `name="Wireless Headphones"`)
	assert.True(t, strings.Index(lines[0], "id=1") < strings.Index(lines[0], "name="))
}

func TestRenderRecords_Empty(t *testing.T) {
	assert.Contains(t, renderRecords(nil, chips.Key("category"), 80), "no records")
}

func TestRenderRecords_Truncates(t *testing.T) {
	out := renderRecords(products()[:1], chips.Key("category"), 20)
	assert.LessOrEqual(t, ansi.StringWidth(out), 20)
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestStatusBar(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(100)
	s.Update(Summary{Active: 2, Shown: 3, Total: 5, Policy: chips.MultiSelect, Searchable: true})

	view := s.View()
	assert.Contains(t, view, "2 active · 3/5 records · multi-select")
	assert.Contains(t, view, "/: search")

	s.Update(Summary{Focus: FocusRecords})
	assert.Contains(t, s.View(), "scroll")
}
