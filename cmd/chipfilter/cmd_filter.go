package main

import (
	"github.com/ruminaider/chipfilter/internal/dataset"
	"github.com/spf13/cobra"
)

var (
	filterChips  []string
	filterFormat string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the records left after toggling chips",
	Long: `Toggle each --chip in order, starting from the config's initial
selection, and print the filtered records.

With multi_select the chips narrow the records together; otherwise the
last chip toggled wins. With no --chip the initial selection is printed.`,
	Example: `  chipfilter filter --chip electronics --chip gaming
  chipfilter filter -k accessories --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := dataset.ParseFormat(filterFormat)
		if err != nil {
			return err
		}
		ws, err := loadWorkspace(configPath, dataPath)
		if err != nil {
			return err
		}
		filtered, err := applyChips(ws, filterChips, logger)
		if err != nil {
			return err
		}
		logger.Info("filtered records", "chips", filterChips, "shown", len(filtered), "total", len(ws.records))
		return dataset.Write(cmd.OutOrStdout(), filtered, format)
	},
}

func init() {
	filterCmd.Flags().StringArrayVarP(&filterChips, "chip", "k", nil, "Chip id to toggle (repeatable)")
	filterCmd.Flags().StringVarP(&filterFormat, "format", "f", "json", "Output format: json or yaml")
}
