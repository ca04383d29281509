// Package util provides common utilities including logging helpers,
// file system paths and key derivation.
package util

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// NewLogger opens (or creates) the log file at path and returns a JSON
// logger writing to it. The returned closer releases the file.
func NewLogger(path string) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, nil)), f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		slog.Error(context, slog.Any("err", err))
	}
}
