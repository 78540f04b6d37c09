package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseLevel converts a level name (debug, info, warn, error) into a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level %q", name)
	}
	return level, nil
}

// NewLogger creates a text logger writing to w at the named level.
// The MCP stdio transport owns stdout, so callers should pass stderr.
func NewLogger(w io.Writer, levelName string) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}
