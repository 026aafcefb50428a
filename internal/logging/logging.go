// Package logging builds the file-backed logger used across portal. The TUI
// owns the terminal, so log output never goes to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const timeFormat = "2006/01/02 15:04:05"

// ParseLevel maps a config string to a level. Blank means info.
func ParseLevel(level string) (log.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(trimmed)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
}

// Open appends to the log file at path, creating parent directories. The
// returned close function must be called on shutdown.
func Open(path, level string) (*log.Logger, func() error, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(file, lvl)
	logger.Info("log opened", "level", lvl.String(), "at", time.Now().Format(time.RFC3339))
	return logger, file.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
