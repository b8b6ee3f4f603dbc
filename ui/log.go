package ui

import (
	"fmt"
	"log/slog"
	"os"
)

// logLevel controls the level of the package's default logger.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for controllers that use
// the default logger. Call this from main() after reading flags or config.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// defaultLogger writes text records to stderr, gated by logLevel.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// describe is a short identification of a component for log records.
func describe(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}
