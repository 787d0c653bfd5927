package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// logger is set up by the root command before any subcommand runs. It
// discards everything unless --verbose or --log-file is given.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var logFile *os.File

func setupLogging(verbose bool, path string) error {
	var w io.Writer
	level := slog.LevelInfo
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		w = f
		level = slog.LevelDebug
	case verbose:
		w = os.Stderr
		level = slog.LevelDebug
	default:
		return nil
	}
	logger = newLogger(w, level)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// closeLogging closes the log file, if any, and discards further logs.
func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
