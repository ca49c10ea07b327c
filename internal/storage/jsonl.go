// Package storage persists the entry collection as a JSON Lines snapshot
// file. Every mutation rewrites the whole snapshot; there is no append-only
// log. Writes go through a temp file and an atomic rename so a crash
// mid-write leaves either the old or the new snapshot, never a torn one.
package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rohit-Gupta-Web3/Sharp-Reports-AllTime/internal/entry"
)

const (
	// AppName is the application name used for the config directory
	AppName = "sharptime"
	// EntriesFile is the name of the JSON Lines snapshot file
	EntriesFile = "timesheet.jsonl"
)

// PersistenceError reports an I/O failure while reading or rewriting the
// snapshot. The in-flight operation commits nothing; callers may retry the
// whole operation.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ParseWarning represents a warning about a corrupted or malformed line
// in the snapshot file.
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the corrupted line
	Error      string // Description of the parsing error
}

// ReadResult contains both successfully parsed entries and warnings about
// corrupted or malformed snapshot lines.
type ReadResult struct {
	Entries  []entry.Entry
	Warnings []ParseWarning
}

// GetStoragePath returns the path to the snapshot file.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant config
// directory and creates the directory if it doesn't exist.
func GetStoragePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, EntriesFile), nil
}

// ReadSnapshot reads all entries from the snapshot file and returns both
// the parsed entries and warnings about any corrupted lines.
// Returns an empty ReadResult if the file doesn't exist.
func ReadSnapshot(path string) (ReadResult, error) {
	result := ReadResult{
		Entries:  []entry.Entry{},
		Warnings: []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, &PersistenceError{Op: "read", Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()

		var e entry.Entry
		if err := json.Unmarshal([]byte(lineContent), &e); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      err.Error(),
			})
			continue
		}
		result.Entries = append(result.Entries, e)
	}

	if err := scanner.Err(); err != nil {
		return result, &PersistenceError{Op: "read", Path: path, Err: err}
	}

	return result, nil
}

// ReadEntries reads all entries from the snapshot file, silently skipping
// malformed lines. Returns an empty slice if the file doesn't exist.
func ReadEntries(path string) ([]entry.Entry, error) {
	result, err := ReadSnapshot(path)
	return result.Entries, err
}

// WriteSnapshot rewrites the whole snapshot file with the given entries.
// The write goes to a temp file first and is renamed into place.
func WriteSnapshot(path string, entries []entry.Entry) error {
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}

	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
			return &PersistenceError{Op: "write", Path: path, Err: err}
		}
		if _, err := file.WriteString(string(line) + "\n"); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpPath)
			return &PersistenceError{Op: "write", Path: path, Err: err}
		}
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// IsPersistenceError reports whether err is (or wraps) a PersistenceError.
func IsPersistenceError(err error) bool {
	var perr *PersistenceError
	return errors.As(err, &perr)
}

// StorageHealth contains health metrics for the snapshot file.
type StorageHealth struct {
	TotalLines       int            // Total number of lines in the snapshot file
	ValidEntries     int            // Number of successfully parsed entries
	CorruptedEntries int            // Number of corrupted/malformed lines
	Warnings         []ParseWarning // Details about each corrupted line
}

// ValidateStorage analyzes the snapshot file and returns health status
// information. Returns empty health status if the file doesn't exist.
func ValidateStorage(path string) (StorageHealth, error) {
	health := StorageHealth{Warnings: []ParseWarning{}}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return health, nil
		}
		return health, &PersistenceError{Op: "read", Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		health.TotalLines++
	}
	if err := scanner.Err(); err != nil {
		return health, &PersistenceError{Op: "read", Path: path, Err: err}
	}

	result, err := ReadSnapshot(path)
	if err != nil {
		return health, err
	}

	health.ValidEntries = len(result.Entries)
	health.CorruptedEntries = len(result.Warnings)
	health.Warnings = result.Warnings

	return health, nil
}
