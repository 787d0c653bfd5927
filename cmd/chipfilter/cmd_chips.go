package main

import (
	"fmt"
	"io"

	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/ruminaider/chipfilter/internal/config"
	"github.com/spf13/cobra"
)

var (
	chipsSearch string
	chipsAll    bool
)

var chipsCmd = &cobra.Command{
	Use:   "chips",
	Short: "List the chips that would be shown",
	Long:  "List the configured chips after search and max_chips truncation. Active chips are marked with *, disabled chips with -.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return printChips(cmd.OutOrStdout(), cfg, chipsSearch, chipsAll)
	},
}

func init() {
	chipsCmd.Flags().StringVarP(&chipsSearch, "search", "s", "", "Only list chips whose label contains this text")
	chipsCmd.Flags().BoolVarP(&chipsAll, "all", "a", false, "Ignore max_chips")
}

func printChips(w io.Writer, cfg config.Config, search string, all bool) error {
	// Search is honored even when the config does not enable it.
	cfg.Searchable = true
	ctrl, err := cfg.NewController(nil, chips.NotifierFunc(func(chips.Chip, []chips.Record) {}))
	if err != nil {
		return err
	}
	ctrl.SetLoading(false)
	if err := ctrl.SetSearchTerm(search); err != nil {
		return err
	}
	if err := ctrl.ToggleShowAll(); err != nil {
		return err
	}
	matched := len(ctrl.Visible())
	if !all {
		if err := ctrl.ToggleShowAll(); err != nil {
			return err
		}
	}

	vs := ctrl.ViewState()
	if vs.NoResults {
		fmt.Fprintln(w, vs.Text.NoResults)
		return nil
	}
	for _, c := range vs.Chips {
		mark := " "
		switch {
		case c.IsActive:
			mark = "*"
		case c.Disabled:
			mark = "-"
		}
		fmt.Fprintf(w, "%s %-16s %s\n", mark, c.ID, c.Label)
	}
	if hidden := matched - len(vs.Chips); hidden > 0 {
		fmt.Fprintf(w, "(%d more, use --all)\n", hidden)
	}
	return nil
}
