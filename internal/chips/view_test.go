package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chipIDs(chips []Chip) []string {
	out := make([]string, 0, len(chips))
	for _, c := range chips {
		out = append(out, c.ID)
	}
	return out
}

func brandChips() []Chip {
	return []Chip{
		{ID: "techsound", Label: "TechSound"},
		{ID: "gamepro", Label: "GamePro"},
		{ID: "keymaster", Label: "KeyMaster"},
		{ID: "ergodesk", Label: "ErgoDesk"},
		{ID: "connectpro", Label: "ConnectPro"},
	}
}

func TestVisibleChips_NoQuery(t *testing.T) {
	chips := brandChips()
	assert.Equal(t, chipIDs(chips), chipIDs(VisibleChips(chips, ViewQuery{})))
}

func TestVisibleChips_SearchCaseInsensitive(t *testing.T) {
	got := VisibleChips(brandChips(), ViewQuery{Searchable: true, SearchTerm: "PRO"})
	assert.Equal(t, []string{"gamepro", "connectpro"}, chipIDs(got))
}

func TestVisibleChips_SearchIgnoredWhenNotSearchable(t *testing.T) {
	got := VisibleChips(brandChips(), ViewQuery{SearchTerm: "pro"})
	assert.Len(t, got, 5)
}

func TestVisibleChips_SearchNoResults(t *testing.T) {
	got := VisibleChips(brandChips(), ViewQuery{Searchable: true, SearchTerm: "zzz"})
	assert.Empty(t, got)
}

func TestVisibleChips_SearchIsOrderedSubsequence(t *testing.T) {
	chips := brandChips()
	for _, term := range []string{"e", "o", "k", "ster", "s"} {
		got := VisibleChips(chips, ViewQuery{Searchable: true, SearchTerm: term})
		pos := -1
		for _, c := range got {
			i := indexOf(chips, c.ID)
			assert.Greater(t, i, pos, "term %q reordered chips", term)
			pos = i
		}
	}
}

func indexOf(chips []Chip, id string) int {
	for i, c := range chips {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func TestVisibleChips_Truncation(t *testing.T) {
	chips := brandChips()

	got := VisibleChips(chips, ViewQuery{MaxChips: 2})
	assert.Equal(t, []string{"techsound", "gamepro"}, chipIDs(got))

	got = VisibleChips(chips, ViewQuery{MaxChips: 2, ShowAll: true})
	assert.Len(t, got, 5)

	got = VisibleChips(chips, ViewQuery{MaxChips: 10})
	assert.Len(t, got, 5)
}

func TestVisibleChips_SearchThenTruncate(t *testing.T) {
	chips := brandChips()
	q := ViewQuery{Searchable: true, SearchTerm: "s", MaxChips: 2}

	got := VisibleChips(chips, q)
	assert.Equal(t, []string{"techsound", "keymaster"}, chipIDs(got))

	q.ShowAll = true
	got = VisibleChips(chips, q)
	assert.Equal(t, []string{"techsound", "keymaster", "ergodesk"}, chipIDs(got))
}

func TestVisibleChips_ResultDoesNotAliasInput(t *testing.T) {
	chips := brandChips()
	got := VisibleChips(chips, ViewQuery{MaxChips: 2})
	_ = append(got, Chip{ID: "extra"})
	assert.Equal(t, "keymaster", chips[2].ID)
}

func TestView_ResultDoesNotAliasCache(t *testing.T) {
	chips := brandChips()
	var v View
	q := ViewQuery{MaxChips: 3}

	got := v.Visible(chips, 0, q)
	got[0].Label = "edited"
	assert.Equal(t, "TechSound", v.Visible(chips, 0, q)[0].Label)
}

func TestController_VisibleReturnsCopy(t *testing.T) {
	c, _ := newController(t, brandChips(), nil, Key("brand"), WithMaxChips(3))

	got := c.Visible()
	got[0].Label = "edited"
	got[1] = Chip{ID: "injected"}

	again := c.Visible()
	assert.Equal(t, "TechSound", again[0].Label)
	assert.Equal(t, "TechSound", c.Chips()[0].Label)
	assert.Equal(t, chipIDs(brandChips()[:3]), chipIDs(again))
	assert.Equal(t, "TechSound", c.ViewState().Chips[0].Label)
}

func TestVisibleChips_Fuzzy(t *testing.T) {
	q := ViewQuery{Searchable: true, SearchTerm: "kmr", SearchMode: SearchFuzzy}
	got := VisibleChips(brandChips(), q)
	assert.Equal(t, []string{"keymaster"}, chipIDs(got))

	// Several fuzzy hits keep the caller's order, not the score order.
	q.SearchTerm = "pro"
	got = VisibleChips(brandChips(), q)
	assert.Equal(t, []string{"gamepro", "connectpro"}, chipIDs(got))
}

func TestView_Memoizes(t *testing.T) {
	chips := brandChips()
	var v View
	q := ViewQuery{MaxChips: 3}

	first := v.Visible(chips, 0, q)
	// Same generation and query: the cached slice is returned even though
	// the backing list changed underneath.
	chips[0].Label = "changed"
	second := v.Visible(chips, 0, q)
	assert.Equal(t, "TechSound", second[0].Label)
	assert.Equal(t, first, second)

	third := v.Visible(chips, 1, q)
	assert.Equal(t, "changed", third[0].Label)

	q.ShowAll = true
	assert.Len(t, v.Visible(chips, 1, q), 5)

	v.Invalidate()
	chips[1].Label = "again"
	assert.Equal(t, "again", v.Visible(chips, 1, q)[1].Label)
}
