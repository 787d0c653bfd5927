package chips

import (
	"errors"
	"fmt"
	"slices"
)

// Text holds the presentation strings a renderer shows for the widget's
// built-in controls. The engine only passes them through.
type Text struct {
	ClearAll          string
	ShowMore          string
	ShowLess          string
	SearchPlaceholder string
	NoResults         string
	Loading           string
}

// DefaultText returns the built-in English strings.
func DefaultText() Text {
	return Text{
		ClearAll:          "Clear All",
		ShowMore:          "Show More",
		ShowLess:          "Show Less",
		SearchPlaceholder: "Search chips...",
		NoResults:         "No chips found",
		Loading:           "Loading...",
	}
}

// merge fills empty fields of t from def.
func (t Text) merge(def Text) Text {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Text{
		ClearAll:          pick(t.ClearAll, def.ClearAll),
		ShowMore:          pick(t.ShowMore, def.ShowMore),
		ShowLess:          pick(t.ShowLess, def.ShowLess),
		SearchPlaceholder: pick(t.SearchPlaceholder, def.SearchPlaceholder),
		NoResults:         pick(t.NoResults, def.NoResults),
		Loading:           pick(t.Loading, def.Loading),
	}
}

type options struct {
	policy       Policy
	maxChips     int
	searchable   bool
	searchMode   SearchMode
	loading      bool
	showClearAll bool
	filter       FilterFunc
	text         Text
}

// Option configures a Controller.
type Option func(*options)

// WithPolicy sets the selection policy. The default is SingleSelect.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithMultiSelect is shorthand for WithPolicy(MultiSelect).
func WithMultiSelect() Option {
	return WithPolicy(MultiSelect)
}

// WithMaxChips truncates the visible chips to n until show-all is toggled.
// Zero means unlimited.
func WithMaxChips(n int) Option {
	return func(o *options) { o.maxChips = n }
}

// Searchable enables narrowing the visible chips by label.
func Searchable(mode SearchMode) Option {
	return func(o *options) {
		o.searchable = true
		o.searchMode = mode
	}
}

// WithLoading starts the controller in the loading state.
func WithLoading(loading bool) Option {
	return func(o *options) { o.loading = loading }
}

// WithShowClearAll controls whether a clear-all control is offered.
func WithShowClearAll(show bool) Option {
	return func(o *options) { o.showClearAll = show }
}

// WithFilterFunc replaces Match as the per-chip filter.
func WithFilterFunc(f FilterFunc) Option {
	return func(o *options) { o.filter = f }
}

// WithText overrides presentation strings. Empty fields keep their defaults.
func WithText(t Text) Option {
	return func(o *options) { o.text = t }
}

// State is a snapshot of the controller's selection state.
type State struct {
	ActiveChips []string
	SearchTerm  string
	ShowAll     bool
}

// Controller ties a chip list and a record collection to a Selection and
// reports every change to a Notifier. One Controller serves one widget; it is
// not safe for concurrent use.
type Controller struct {
	chips    []Chip
	gen      uint64
	records  []Record
	key      FilterKey
	notifier Notifier
	opts     options

	sel     *Selection
	search  string
	showAll bool
	view    View
}

// New builds a Controller. The chips flagged Active start out selected.
func New(chips []Chip, records []Record, key FilterKey, notifier Notifier, opts ...Option) (*Controller, error) {
	o := options{showClearAll: true, filter: Match}
	for _, opt := range opts {
		opt(&o)
	}
	o.text = o.text.merge(DefaultText())

	if notifier == nil {
		return nil, errors.New("creating chip controller: notifier is required")
	}
	if len(key) == 0 {
		return nil, errors.New("creating chip controller: filter key is empty")
	}
	for _, field := range key {
		if field == "" {
			return nil, fmt.Errorf("creating chip controller: filter key %s has an empty field", key)
		}
	}
	if o.maxChips < 0 {
		return nil, fmt.Errorf("creating chip controller: max chips must not be negative, got %d", o.maxChips)
	}
	if o.filter == nil {
		o.filter = Match
	}
	if err := checkChipIDs(chips); err != nil {
		return nil, fmt.Errorf("creating chip controller: %w", err)
	}

	return &Controller{
		chips:    chips,
		records:  records,
		key:      slices.Clone(key),
		notifier: notifier,
		opts:     o,
		sel:      NewSelection(o.policy, chips),
	}, nil
}

func checkChipIDs(chips []Chip) error {
	seen := make(map[string]bool, len(chips))
	for _, c := range chips {
		if c.ID == "" {
			return fmt.Errorf("chip %q has no id", c.Label)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate chip id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

func (c *Controller) mustInit() {
	if c == nil || c.sel == nil {
		panic(ErrNotInitialized)
	}
}

// Toggle flips chipID under the selection policy, recomputes the filtered
// records from the original collection and notifies with the clicked chip.
func (c *Controller) Toggle(chipID string) error {
	c.mustInit()
	if c.opts.loading {
		return ErrLoading
	}
	if err := c.sel.Toggle(chipID); err != nil {
		return err
	}
	c.notifier.ChipClicked(c.sel.chips[chipID], c.filter(c.sel.active))
	return nil
}

// ClearAll deactivates every chip and notifies with NoChip and the full
// record collection.
func (c *Controller) ClearAll() error {
	c.mustInit()
	if c.opts.loading {
		return ErrLoading
	}
	c.sel.Clear()
	c.notifier.ChipClicked(NoChip, slices.Clone(c.records))
	return nil
}

// filter computes the records selected by the active ids. Active chips are
// visited in chip-list order; ids no longer in the chip list are skipped.
func (c *Controller) filter(active []string) []Record {
	var objs []Chip
	for _, ch := range c.chips {
		if slices.Contains(active, ch.ID) {
			objs = append(objs, ch)
		}
	}
	if len(objs) == 0 {
		return slices.Clone(c.records)
	}
	if c.sel.Policy() == MultiSelect {
		acc := c.records
		for _, ch := range objs {
			acc = c.opts.filter(acc, c.key, ch.Value)
		}
		return acc
	}
	return c.opts.filter(c.records, c.key, objs[len(objs)-1].Value)
}

// Filtered returns the records selected by the current active chips.
func (c *Controller) Filtered() []Record {
	c.mustInit()
	return c.filter(c.sel.active)
}

// IsActive reports whether chipID is active.
func (c *Controller) IsActive(chipID string) bool {
	c.mustInit()
	return c.sel.IsActive(chipID)
}

// SetSearchTerm sets the text used to narrow visible chips.
func (c *Controller) SetSearchTerm(term string) error {
	c.mustInit()
	if c.opts.loading {
		return ErrLoading
	}
	c.search = term
	return nil
}

// ToggleShowAll flips between the truncated and the full chip list.
func (c *Controller) ToggleShowAll() error {
	c.mustInit()
	if c.opts.loading {
		return ErrLoading
	}
	c.showAll = !c.showAll
	return nil
}

// SetLoading enters or leaves the loading state. While loading every mutating
// operation returns ErrLoading.
func (c *Controller) SetLoading(loading bool) {
	c.mustInit()
	c.opts.loading = loading
}

// Loading reports whether the controller is in the loading state.
func (c *Controller) Loading() bool {
	c.mustInit()
	return c.opts.loading
}

// SetChips replaces the chip list. Active ids are kept; ids missing from the
// new list stop contributing to the filter.
func (c *Controller) SetChips(chips []Chip) error {
	c.mustInit()
	if err := checkChipIDs(chips); err != nil {
		return fmt.Errorf("replacing chips: %w", err)
	}
	c.chips = chips
	c.gen++
	c.sel.setChips(chips)
	return nil
}

// SetRecords replaces the record collection used by the next computation.
func (c *Controller) SetRecords(records []Record) {
	c.mustInit()
	c.records = records
}

// Chips returns the full chip list.
func (c *Controller) Chips() []Chip {
	c.mustInit()
	return c.chips
}

// Records returns the original record collection.
func (c *Controller) Records() []Record {
	c.mustInit()
	return c.records
}

// Key returns the filter key.
func (c *Controller) Key() FilterKey {
	c.mustInit()
	return c.key
}

// Policy returns the selection policy.
func (c *Controller) Policy() Policy {
	c.mustInit()
	return c.sel.Policy()
}

// State returns a snapshot of the selection state.
func (c *Controller) State() State {
	c.mustInit()
	return State{
		ActiveChips: c.sel.Active(),
		SearchTerm:  c.search,
		ShowAll:     c.showAll,
	}
}

func (c *Controller) query() ViewQuery {
	return ViewQuery{
		Searchable: c.opts.searchable,
		SearchTerm: c.search,
		SearchMode: c.opts.searchMode,
		MaxChips:   c.opts.maxChips,
		ShowAll:    c.showAll,
	}
}

// Visible returns the chips a renderer should show.
func (c *Controller) Visible() []Chip {
	c.mustInit()
	return c.view.Visible(c.chips, c.gen, c.query())
}

// ChipView is a visible chip with its activity resolved.
type ChipView struct {
	Chip
	IsActive bool
}

// ViewState is everything a renderer needs for one frame.
type ViewState struct {
	Loading    bool
	Searchable bool
	SearchTerm string
	Chips      []ChipView
	NoResults  bool

	// ShowMore is true when a show-more/less control applies; ShowMoreLabel
	// is its current text.
	ShowMore      bool
	ShowMoreLabel string
	ClearAll      bool

	Text Text
}

// ViewState derives the current frame.
func (c *Controller) ViewState() ViewState {
	c.mustInit()
	vs := ViewState{
		Loading:    c.opts.loading,
		Searchable: c.opts.searchable,
		SearchTerm: c.search,
		Text:       c.opts.text,
	}
	if vs.Loading {
		return vs
	}
	visible := c.Visible()
	for _, ch := range visible {
		vs.Chips = append(vs.Chips, ChipView{Chip: ch, IsActive: c.sel.IsActive(ch.ID)})
	}
	vs.NoResults = len(visible) == 0
	vs.ShowMore = !vs.NoResults && c.opts.maxChips > 0 && len(c.chips) > c.opts.maxChips
	if vs.ShowMore {
		vs.ShowMoreLabel = c.opts.text.ShowMore
		if c.showAll {
			vs.ShowMoreLabel = c.opts.text.ShowLess
		}
	}
	vs.ClearAll = c.opts.showClearAll && c.sel.Len() > 0
	return vs
}
