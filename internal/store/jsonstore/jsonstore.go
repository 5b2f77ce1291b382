// Package jsonstore implements the task store as a single JSON file.
// Human-readable and portable; the file is rewritten on every change,
// which is fine for a local single-user list.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/idilsaglam/doit/internal/store"
)

// DefaultFileName is the store file name under the data dir.
const DefaultFileName = "tasks.json"

type Store struct {
	path string
}

// Open returns a store backed by the file at path. The file is not
// created until the first Put.
func Open(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() ([]store.Record, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var recs []store.Record
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return recs, nil
}

func (s *Store) save(recs []store.Record) error {
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) FetchAll() ([]store.Record, error) {
	return s.load()
}

func (s *Store) Put(r store.Record) error {
	recs, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range recs {
		if recs[i].ID == r.ID {
			recs[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		recs = append(recs, r)
	}
	return s.save(recs)
}

func (s *Store) Delete(id string) error {
	recs, err := s.load()
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].ID == id {
			recs = append(recs[:i], recs[i+1:]...)
			return s.save(recs)
		}
	}
	return nil
}

func (s *Store) Close() error { return nil }
