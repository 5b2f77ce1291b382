// Package store defines the persistence contract for task records.
//
// It is a separate package from the backends so that code that only
// consumes the store API does not depend on a concrete implementation.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultNamespace is the record namespace used when none is configured.
const DefaultNamespace = "tasks"

// Record is the persisted field set of a task.
type Record struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

// Store is durable key-value storage for task records, keyed by id
// within a namespace fixed at open time.
//
// FetchAll skips records it cannot decode and returns the rest; a
// non-nil error means the store itself could not be read.
type Store interface {
	FetchAll() ([]Record, error)
	Put(Record) error
	Delete(id string) error
	Close() error
}

// DataDir returns the directory holding persistent state:
// $DOIT_DATA_DIR if set, else the configured override if non-empty,
// else ~/.doit.
func DataDir(configured string) (string, error) {
	if env := strings.TrimSpace(os.Getenv("DOIT_DATA_DIR")); env != "" {
		return env, nil
	}
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".doit"), nil
}

// EnsureDataDir resolves DataDir and creates it (owner-only) if missing.
func EnsureDataDir(configured string) (string, error) {
	dir, err := DataDir(configured)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return dir, nil
}
