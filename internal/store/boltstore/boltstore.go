// Package boltstore implements the task store on top of a bbolt
// database: one bucket per namespace, key = item id, value = the JSON
// record. Single file, no server, safe across processes.
package boltstore

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/idilsaglam/doit/internal/store"
)

// DefaultFileName is the database file name under the data dir.
const DefaultFileName = "tasks.db"

type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open opens (creating if needed) the database at path and ensures the
// bucket for the given namespace exists. An empty namespace means
// store.DefaultNamespace.
func Open(path, namespace string) (*Store, error) {
	if namespace == "" {
		namespace = store.DefaultNamespace
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	bucket := []byte(namespace)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket %s: %w", namespace, err)
	}
	return &Store{db: db, bucket: bucket}, nil
}

// FetchAll returns every decodable record in the namespace. Values
// that do not decode are skipped so one bad record cannot block the
// rest of the load.
func (s *Store) FetchAll() ([]store.Record, error) {
	var recs []store.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		return b.ForEach(func(k, v []byte) error {
			var r store.Record
			if err := json.Unmarshal(v, &r); err != nil {
				return nil // skip malformed record
			}
			if r.ID == "" {
				r.ID = string(k)
			}
			recs = append(recs, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store) Put(r store.Record) error {
	v, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.ID, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(r.ID), v)
	})
}

func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(id))
	})
}

func (s *Store) Close() error { return s.db.Close() }
