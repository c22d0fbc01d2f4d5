// Package logging provides the shared, structured logger for the portfolio
// application.
//
// It wraps the standard library's [log/slog] package and provides a single
// initialization point so all components share the same output handler and
// log level. The level can be set at startup via the PORTFOLIO_LOG_LEVEL
// environment variable (debug, info, warn, error). If unset, the default
// level is INFO.
//
// Usage:
//
//	log := logging.New("overlay")      // creates a logger tagged with component="overlay"
//	log.Debug("overlay opened", "owner", id)
//	log.Error("failed to save", "error", err)
//
// Output goes to stderr until Configure redirects it. The terminal UI owns
// the screen while it runs, so the CLI points logs at a file (or discards
// them) before starting it. Loggers created before Configure follow the
// redirect because they all share one handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	// initLogger ensures the base logger is created exactly once across all
	// goroutines, even if multiple components call New concurrently.
	initLogger sync.Once

	// baseLogger is the singleton logger instance shared by all components.
	// Component-specific loggers are derived from this via With().
	baseLogger *slog.Logger

	level  = new(slog.LevelVar)
	output = &switchWriter{w: os.Stderr}
)

// switchWriter lets the destination change after loggers were handed out.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// New returns a structured logger scoped to the given component name.
//
// The component name is added as a "component" attribute to every log entry
// produced by the returned logger. If component is empty, the base logger is
// returned without any additional attributes.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		level.Set(parseLevel(os.Getenv("PORTFOLIO_LOG_LEVEL")))
		baseLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
			Level: level,
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// Configure redirects all log output to w. A non-empty levelName overrides
// the level taken from the environment. A nil writer discards output.
func Configure(w io.Writer, levelName string) {
	New("")
	if w == nil {
		w = io.Discard
	}
	output.set(w)
	if strings.TrimSpace(levelName) != "" {
		level.Set(parseLevel(levelName))
	}
}

// Level returns the active log level.
func Level() slog.Level {
	New("")
	return level.Level()
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
