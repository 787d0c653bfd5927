package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/ruminaider/chipfilter/internal/dataset"
	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written by Marshal when the version is unset.
const CurrentVersion = "1"

// Config represents a chip widget definition (config.yaml).
type Config struct {
	Version      string    `yaml:"version"`
	FilterKey    FilterKey `yaml:"filter_key"`
	MultiSelect  bool      `yaml:"multi_select,omitempty"`
	MaxChips     int       `yaml:"max_chips,omitempty"`
	Searchable   bool      `yaml:"searchable,omitempty"`
	SearchMode   string    `yaml:"search_mode,omitempty"`
	Loading      bool      `yaml:"loading,omitempty"`
	ShowClearAll *bool     `yaml:"show_clear_all,omitempty"`
	Text         Text      `yaml:"text,omitempty"`
	Data         string    `yaml:"data,omitempty"` // record file, relative to the config file
	Chips        []Chip    `yaml:"chips"`
}

// Chip is one chip entry in config.yaml.
type Chip struct {
	ID              string `yaml:"id"`
	Label           string `yaml:"label"`
	Value           any    `yaml:"value"`
	Active          bool   `yaml:"active,omitempty"`
	Disabled        bool   `yaml:"disabled,omitempty"`
	Color           string `yaml:"color,omitempty"`
	BackgroundColor string `yaml:"background_color,omitempty"`
	BorderColor     string `yaml:"border_color,omitempty"`
}

// Text overrides the built-in control strings.
type Text struct {
	ClearAll          string `yaml:"clear_all,omitempty"`
	ShowMore          string `yaml:"show_more,omitempty"`
	ShowLess          string `yaml:"show_less,omitempty"`
	SearchPlaceholder string `yaml:"search_placeholder,omitempty"`
	NoResults         string `yaml:"no_results,omitempty"`
	Loading           string `yaml:"loading,omitempty"`
}

// FilterKey accepts either a single field name or a list of field names.
type FilterKey []string

func (k *FilterKey) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var field string
		if err := node.Decode(&field); err != nil {
			return err
		}
		*k = FilterKey{field}
		return nil
	case yaml.SequenceNode:
		var fields []string
		if err := node.Decode(&fields); err != nil {
			return err
		}
		*k = fields
		return nil
	default:
		return fmt.Errorf("line %d: filter_key must be a field name or a list of field names", node.Line)
	}
}

func (k FilterKey) MarshalYAML() (any, error) {
	if len(k) == 1 {
		return k[0], nil
	}
	return []string(k), nil
}

// Parse parses config.yaml bytes into a Config and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	return yaml.Marshal(cfg)
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parts of a config the chip controller cannot.
func (c Config) Validate() error {
	if len(c.FilterKey) == 0 {
		return fmt.Errorf("filter_key is required")
	}
	if _, err := c.searchMode(); err != nil {
		return err
	}
	if c.MaxChips < 0 {
		return fmt.Errorf("max_chips must not be negative")
	}
	seen := make(map[string]bool, len(c.Chips))
	for i, ch := range c.Chips {
		if ch.ID == "" {
			return fmt.Errorf("chip %d: id is required", i)
		}
		if seen[ch.ID] {
			return fmt.Errorf("chip %q: duplicate id", ch.ID)
		}
		seen[ch.ID] = true
	}
	return nil
}

func (c Config) searchMode() (chips.SearchMode, error) {
	switch c.SearchMode {
	case "", "substring":
		return chips.SearchSubstring, nil
	case "fuzzy":
		return chips.SearchFuzzy, nil
	default:
		return 0, fmt.Errorf("search_mode %q: want substring or fuzzy", c.SearchMode)
	}
}

// ChipList converts the configured chips. Values go through the same number
// normalization as record files so they compare equal to loaded records.
func (c Config) ChipList() []chips.Chip {
	out := make([]chips.Chip, 0, len(c.Chips))
	for _, ch := range c.Chips {
		label := ch.Label
		if label == "" {
			label = ch.ID
		}
		out = append(out, chips.Chip{
			ID:              ch.ID,
			Label:           label,
			Value:           dataset.Normalize(ch.Value),
			Active:          ch.Active,
			Disabled:        ch.Disabled,
			Color:           ch.Color,
			BackgroundColor: ch.BackgroundColor,
			BorderColor:     ch.BorderColor,
		})
	}
	return out
}

// Key returns the filter key.
func (c Config) Key() chips.FilterKey {
	return chips.Keys(c.FilterKey...)
}

// Options translates the config into controller options.
func (c Config) Options() []chips.Option {
	opts := []chips.Option{
		chips.WithMaxChips(c.MaxChips),
		chips.WithLoading(c.Loading),
		chips.WithText(chips.Text(c.Text)),
	}
	if c.MultiSelect {
		opts = append(opts, chips.WithMultiSelect())
	}
	if c.Searchable {
		mode, _ := c.searchMode()
		opts = append(opts, chips.Searchable(mode))
	}
	if c.ShowClearAll != nil {
		opts = append(opts, chips.WithShowClearAll(*c.ShowClearAll))
	}
	return opts
}

// DataPath resolves the configured record file relative to the directory of
// configPath. It returns "" when no data file is configured.
func (c Config) DataPath(configPath string) string {
	if c.Data == "" {
		return ""
	}
	if filepath.IsAbs(c.Data) {
		return c.Data
	}
	return filepath.Join(filepath.Dir(configPath), c.Data)
}

// NewController builds a controller for cfg over records.
func (c Config) NewController(records []chips.Record, notifier chips.Notifier) (*chips.Controller, error) {
	return chips.New(c.ChipList(), records, c.Key(), notifier, c.Options()...)
}

// Starter returns the config written by "chipfilter init".
func Starter() Config {
	return Config{
		Version:     CurrentVersion,
		FilterKey:   FilterKey{"category", "tags"},
		MultiSelect: true,
		MaxChips:    4,
		Searchable:  true,
		Data:        "records.json",
		Chips: []Chip{
			{ID: "electronics", Label: "Electronics", Value: "Electronics", Color: "#89b4fa"},
			{ID: "accessories", Label: "Accessories", Value: "Accessories", Color: "#a6e3a1"},
			{ID: "wireless", Label: "Wireless", Value: "wireless"},
			{ID: "gaming", Label: "Gaming", Value: "gaming"},
			{ID: "rgb", Label: "RGB", Value: "rgb"},
		},
	}
}
