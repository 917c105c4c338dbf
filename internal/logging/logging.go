// Package logging builds the structured logger used by the cascade CLI.
//
// Library packages never log; they return errors. Only cmd/cascade logs,
// through a *slog.Logger configured here:
//
//	logger, err := logging.New(logging.Config{Level: "debug", JSON: true}, os.Stderr)
//	logger.Info("aggregated seeds", "seeds", 2, "edges", 14)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config configures the logger. A zero Config logs Info and above as text.
type Config struct {
	// Level is one of "debug", "info", "warn", "error" (case-insensitive).
	// Empty means "info".
	Level string

	// JSON switches from the text handler to the JSON handler.
	JSON bool

	// Service, when set, is attached to every record as the "service" attribute.
	Service string
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New returns a logger writing to w according to cfg.
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger, nil
}
