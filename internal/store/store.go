// Package store implements the file-backed record store behind the mock API.
// All named collections live in a single JSON document; every mutation
// flushes the full document before returning, so reads always reflect the
// latest committed write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Collections enumerates the record sets served by the store.
var Collections = []string{"users", "posts", "products", "comments", "categories"}

// Record is a flat, schema-free record. Records are replaced wholesale and
// never mutated in place, so sharing the underlying maps across the store
// lock is safe.
type Record = map[string]any

var (
	// ErrUnknownCollection is returned for collection names the store does not hold.
	ErrUnknownCollection = errors.New("collection not found")
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("record not found")
)

// Store holds the collections in memory behind a single mutex and mirrors
// them to a JSON file on every mutation.
type Store struct {
	mu          sync.RWMutex
	path        string
	collections map[string][]Record
	lastID      int64
}

// Open loads the backing file, or starts with empty collections when the
// file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:        path,
		collections: make(map[string][]Record, len(Collections)),
	}
	for _, name := range Collections {
		s.collections[name] = []Record{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("open store: %w", err)
	}

	var doc map[string][]Record
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	for name, records := range doc {
		if records == nil {
			records = []Record{}
		}
		s.collections[name] = records
		for _, rec := range records {
			if id, ok := RecordID(rec); ok && id > s.lastID {
				s.lastID = id
			}
		}
	}
	return s, nil
}

// List returns the collection in insertion order.
func (s *Store) List(collection string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

// Find returns the record with the given id.
func (s *Store) Find(collection string, id int64) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}
	for _, rec := range records {
		if rid, ok := RecordID(rec); ok && rid == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Insert appends the record with a freshly assigned id and flushes. Ids are
// derived from the creation timestamp in milliseconds; under the store's
// single-writer lock a monotonic bump keeps them unique even when two
// inserts land within the same millisecond.
func (s *Store) Insert(collection string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	stored := cloneRecord(rec)
	stored["id"] = id
	s.collections[collection] = append(records, stored)
	if err := s.flushLocked(); err != nil {
		s.collections[collection] = records
		return nil, err
	}
	return stored, nil
}

// Replace swaps the record with the given id wholesale and flushes. The path
// id wins: any id carried in the body is overwritten.
func (s *Store) Replace(collection string, id int64, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}
	for i, existing := range records {
		if rid, ok := RecordID(existing); ok && rid == id {
			stored := cloneRecord(rec)
			stored["id"] = id
			records[i] = stored
			if err := s.flushLocked(); err != nil {
				records[i] = existing
				return nil, err
			}
			return stored, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the record with the given id and flushes.
func (s *Store) Delete(collection string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.collections[collection]
	if !ok {
		return ErrUnknownCollection
	}
	for i, rec := range records {
		if rid, ok := RecordID(rec); ok && rid == id {
			s.collections[collection] = append(records[:i:i], records[i+1:]...)
			if err := s.flushLocked(); err != nil {
				s.collections[collection] = records
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}

// FilterByRef returns the records whose numeric field equals id, in
// insertion order. A zero-match result is an empty slice, not an error.
func (s *Store) FilterByRef(collection, field string, id int64) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}
	out := []Record{}
	for _, rec := range records {
		if v, ok := toInt64(rec[field]); ok && v == id {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FilterByValue returns the records whose string field matches value
// exactly, case sensitive, in insertion order.
func (s *Store) FilterByValue(collection, field, value string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, ErrUnknownCollection
	}
	out := []Record{}
	for _, rec := range records {
		if v, _ := rec[field].(string); v == value {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FindUserByEmail returns the first user with the given email. Email is the
// unique key for the simulated auth flow.
func (s *Store) FindUserByEmail(email string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.collections["users"] {
		if v, _ := rec["email"].(string); v == email {
			return rec, true
		}
	}
	return nil, false
}

// Search performs a case-insensitive substring match of q against user
// name/email, post title/content and product name/description. Each result
// slice preserves insertion order and is empty when nothing matches.
func (s *Store) Search(q string) (users, posts, products []Record) {
	q = strings.ToLower(q)
	match := func(rec Record, fields ...string) bool {
		for _, f := range fields {
			if v, _ := rec[f].(string); strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	users, posts, products = []Record{}, []Record{}, []Record{}
	for _, rec := range s.collections["users"] {
		if match(rec, "name", "email") {
			users = append(users, rec)
		}
	}
	for _, rec := range s.collections["posts"] {
		if match(rec, "title", "content") {
			posts = append(posts, rec)
		}
	}
	for _, rec := range s.collections["products"] {
		if match(rec, "name", "description") {
			products = append(products, rec)
		}
	}
	return users, posts, products
}

// flushLocked writes the full document to the backing file. Callers must
// hold the write lock. The write goes through a temp file and rename so a
// crash mid-write never leaves a truncated document.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.collections, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("flush store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("flush store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("flush store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("flush store: %w", err)
	}
	return nil
}

// RecordID extracts the numeric id of a record.
func RecordID(rec Record) (int64, bool) {
	return toInt64(rec["id"])
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}

func cloneRecord(rec Record) Record {
	out := make(Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	return out
}
