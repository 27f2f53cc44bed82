package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// openLogger returns a text logger writing to path. The terminal belongs to
// the TUI, so nothing is written to stderr. An empty path discards logs.
func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "shopflow")), func() { _ = file.Close() }, nil
}
