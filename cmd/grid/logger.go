package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger creates a structured logger for command progress.
// When stderr is a terminal, uses slog.TextHandler for human-readable
// output; when it is piped or redirected, uses slog.JSONHandler.
// Verbose raises the level to debug.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
