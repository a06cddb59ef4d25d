package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DetachLogger moves logger off the terminal for as long as a program
// holds the alt screen. At debug level it appends to path; at any other
// level it is silenced. The returned func closes the file.
func DetachLogger(logger *log.Logger, path string) (func() error, error) {
	if logger.GetLevel() > log.DebugLevel || path == "" {
		logger.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("tui: create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("tui: open log file: %w", err)
	}
	logger.SetOutput(f)
	return f.Close, nil
}
