package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/ruminaider/chipfilter/internal/config"
	"github.com/ruminaider/chipfilter/internal/dataset"
	"github.com/spf13/cobra"
)

var pickFormat string

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose chips from a prompt and print the filtered records",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := dataset.ParseFormat(pickFormat)
		if err != nil {
			return err
		}
		ws, err := loadWorkspace(configPath, dataPath)
		if err != nil {
			return err
		}

		picked, err := promptChips(ws.cfg)
		if err != nil {
			return err
		}
		ws.cfg = withActive(ws.cfg, picked)

		filtered, err := applyChips(ws, nil, logger)
		if err != nil {
			return err
		}
		logger.Info("picked chips", "chips", picked, "shown", len(filtered))
		return dataset.Write(cmd.OutOrStdout(), filtered, format)
	},
}

func init() {
	pickCmd.Flags().StringVarP(&pickFormat, "format", "f", "json", "Output format: json or yaml")
}

// pickOptions lists the enabled chips as prompt options, preselecting the
// initially active ones.
func pickOptions(cfg config.Config) []huh.Option[string] {
	var options []huh.Option[string]
	for _, c := range cfg.ChipList() {
		if c.Disabled {
			continue
		}
		options = append(options, huh.NewOption(c.Label, c.ID).Selected(c.Active))
	}
	return options
}

// promptChips asks for one chip, or any number when the config is
// multi-select.
func promptChips(cfg config.Config) ([]string, error) {
	options := pickOptions(cfg)
	if len(options) == 0 {
		return nil, fmt.Errorf("no enabled chips to pick from")
	}

	if cfg.MultiSelect {
		var picked []string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Filter by").
					Description("Records must match every selected chip.").
					Options(options...).
					Value(&picked),
			),
		).Run()
		if err != nil {
			return nil, err
		}
		return picked, nil
	}

	options = append([]huh.Option[string]{huh.NewOption("(no filter)", "")}, options...)
	var picked string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Filter by").
				Options(options...).
				Value(&picked),
		),
	).Run()
	if err != nil {
		return nil, err
	}
	if picked == "" {
		return nil, nil
	}
	return []string{picked}, nil
}

// withActive returns a copy of cfg whose initially active chips are exactly
// ids.
func withActive(cfg config.Config, ids []string) config.Config {
	cfg.Chips = slices.Clone(cfg.Chips)
	for i := range cfg.Chips {
		cfg.Chips[i].Active = slices.Contains(ids, cfg.Chips[i].ID)
	}
	return cfg
}
