// Package logging routes the standard logger to stderr and an optional file.
// Stdout is left to command output, so `query --json` and `entries` stay
// machine-readable.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logPath string
)

// Init sends log output to stderr and, when path is set, appends it to that file.
// Calling Init again replaces the previous file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()

	writers := []io.Writer{os.Stderr}
	if path = strings.TrimSpace(path); path != "" {
		file, err := openLogFile(path)
		if err != nil {
			return err
		}
		logFile = file
		logPath = path
		writers = append(writers, file)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G304 -- operator-provided path
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}

// Writer returns the writer the standard logger currently uses. serve hands it
// to gin so request logs land next to the matcher's own lines.
func Writer() io.Writer {
	return log.Writer()
}

// Path returns the active log file, or "" when logging only to stderr.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close restores plain stderr output and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	log.SetOutput(os.Stderr)
	return closeFileLocked()
}

func closeFileLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logPath = ""
	return err
}
