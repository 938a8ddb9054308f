package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel is shared by every logger created in this module.
// Default is Info; SetVerbose(true) lowers it to Debug.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose toggles debug logging for gui and the packages built on it.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// NewLogger returns a stderr text logger tagged with component and gated by
// the shared level.
func NewLogger(component string) *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel})
	return slog.New(h).With("component", component)
}

var guiLogger = NewLogger("gui")
