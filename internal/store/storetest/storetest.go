// Package storetest provides store.Store implementations for tests.
package storetest

import (
	"errors"

	"github.com/idilsaglam/doit/internal/store"
)

// ErrBroken is returned by every operation of a Broken store.
var ErrBroken = errors.New("store is broken")

// Mem is an in-memory Store that remembers records in arrival order.
type Mem struct {
	recs []store.Record
}

// NewMem returns an empty in-memory store, optionally pre-seeded.
func NewMem(seed ...store.Record) *Mem {
	return &Mem{recs: append([]store.Record(nil), seed...)}
}

func (m *Mem) FetchAll() ([]store.Record, error) {
	return append([]store.Record(nil), m.recs...), nil
}

func (m *Mem) Put(r store.Record) error {
	for i := range m.recs {
		if m.recs[i].ID == r.ID {
			m.recs[i] = r
			return nil
		}
	}
	m.recs = append(m.recs, r)
	return nil
}

func (m *Mem) Delete(id string) error {
	for i := range m.recs {
		if m.recs[i].ID == id {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *Mem) Close() error { return nil }

// Has reports whether a record with the given id is stored.
func (m *Mem) Has(id string) bool {
	for _, r := range m.recs {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of stored records.
func (m *Mem) Len() int { return len(m.recs) }

// Broken is a Store whose every operation fails with ErrBroken.
// FetchAll still succeeds with no records so lists can start empty.
type Broken struct{}

func (Broken) FetchAll() ([]store.Record, error) { return nil, nil }
func (Broken) Put(store.Record) error            { return ErrBroken }
func (Broken) Delete(string) error               { return ErrBroken }
func (Broken) Close() error                      { return nil }
