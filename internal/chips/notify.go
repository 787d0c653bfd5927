package chips

import (
	"context"
	"log/slog"
)

// Notifier receives the clicked chip and the resulting filtered records after
// every Toggle and ClearAll. ClearAll passes NoChip.
type Notifier interface {
	ChipClicked(chip Chip, filtered []Record)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(chip Chip, filtered []Record)

func (f NotifierFunc) ChipClicked(chip Chip, filtered []Record) {
	f(chip, filtered)
}

type multiNotifier []Notifier

func (m multiNotifier) ChipClicked(chip Chip, filtered []Record) {
	for _, n := range m {
		n.ChipClicked(chip, filtered)
	}
}

// Notifiers fans a notification out to each non-nil notifier in order.
func Notifiers(ns ...Notifier) Notifier {
	var m multiNotifier
	for _, n := range ns {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

// LogNotifier logs every notification at debug level.
func LogNotifier(logger *slog.Logger) Notifier {
	return NotifierFunc(func(chip Chip, filtered []Record) {
		if chip.IsZero() {
			logger.LogAttrs(context.Background(), slog.LevelDebug, "filters cleared",
				slog.Int("records", len(filtered)))
			return
		}
		logger.LogAttrs(context.Background(), slog.LevelDebug, "chip clicked",
			slog.String("chip", chip.ID),
			slog.String("label", chip.Label),
			slog.Int("records", len(filtered)))
	})
}
