package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/chipfilter/cmd/chipfilter/tui"
	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/ruminaider/chipfilter/internal/dataset"
	"github.com/ruminaider/chipfilter/internal/paths"
	"github.com/spf13/cobra"
)

var runPrint bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Filter records interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		// TTY guard: fall back to the headless filter when stdin is not a
		// terminal (piping, CI, scripts, etc.)
		if !term.IsTerminal(os.Stdin.Fd()) {
			filterChips = nil
			return filterCmd.RunE(cmd, args)
		}

		// The TUI owns the terminal, so --verbose logs go to the log file.
		if verbose && logFilePath == "" {
			if err := os.MkdirAll(paths.Dir(), 0755); err != nil {
				return err
			}
			closeLogging()
			if err := setupLogging(false, paths.LogFile()); err != nil {
				return err
			}
		}

		ws, err := loadWorkspace(configPath, dataPath)
		if err != nil {
			return err
		}
		model, err := tui.NewModel(filepath.Base(ws.dataFile), ws.cfg, ws.records, chips.LogNotifier(logger))
		if err != nil {
			return err
		}
		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		final := finalModel.(tui.Model)
		logger.Info("session ended", "active", final.Controller().State().ActiveChips, "shown", len(final.Filtered()))
		if runPrint {
			return dataset.Write(cmd.OutOrStdout(), final.Filtered(), dataset.FormatJSON)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false, "Print the filtered records as JSON on exit")
}
