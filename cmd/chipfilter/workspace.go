package main

import (
	"fmt"
	"log/slog"

	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/ruminaider/chipfilter/internal/config"
	"github.com/ruminaider/chipfilter/internal/dataset"
)

// workspace is a loaded config together with the records it filters.
type workspace struct {
	cfg      config.Config
	records  []chips.Record
	dataFile string
}

// loadWorkspace reads the config at cfgPath and the record file it names.
// A non-empty dataOverride replaces the config's data entry.
func loadWorkspace(cfgPath, dataOverride string) (workspace, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return workspace{}, fmt.Errorf("%w\nRun 'chipfilter init' to create a starter config", err)
	}

	file := dataOverride
	if file == "" {
		file = cfg.DataPath(cfgPath)
	}
	if file == "" {
		return workspace{}, fmt.Errorf("no record file: set data in %s or pass --data", cfgPath)
	}
	records, err := dataset.Load(file)
	if err != nil {
		return workspace{}, err
	}
	return workspace{cfg: cfg, records: records, dataFile: file}, nil
}

// applyChips builds a controller and toggles the chips in order, returning
// the records after the last toggle. Every notification is logged.
func applyChips(ws workspace, ids []string, log *slog.Logger) ([]chips.Record, error) {
	var last []chips.Record
	record := chips.NotifierFunc(func(_ chips.Chip, filtered []chips.Record) {
		last = filtered
	})
	ctrl, err := ws.cfg.NewController(ws.records, chips.Notifiers(record, chips.LogNotifier(log)))
	if err != nil {
		return nil, err
	}
	// Loading is a display state; headless runs always filter.
	ctrl.SetLoading(false)

	if len(ids) == 0 {
		return ctrl.Filtered(), nil
	}
	for _, id := range ids {
		if err := ctrl.Toggle(id); err != nil {
			return nil, err
		}
	}
	return last, nil
}
