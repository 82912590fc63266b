// Package logging builds the application slog logger on top of a HAL line sink.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"armsim/hal"
)

// New creates the application logger writing text records through sink.
// It standardizes common keys (e.g., "error" -> "err").
func New(sink hal.Logger, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(lineWriter{sink: sink}, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a flag value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// lineWriter adapts a line sink to io.Writer. The text handler emits one
// newline-terminated record per Write.
type lineWriter struct {
	sink hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte{'\n'}) {
		w.sink.WriteLineBytes(line)
	}
	return len(p), nil
}
