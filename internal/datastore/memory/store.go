// Package memory provides the volatile in-memory implementation of the
// generic datastore contract. Contents do not survive process restart; any
// durable backend would implement the same ports.Datastore interface.
package memory

import (
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/moazna/moazna/internal/core/ports"
)

// Store holds named collections of records. All mutation paths are serialized
// behind one mutex because the HTTP surface serves requests concurrently.
// Reads hand out shallow clones so callers never hold a reference into the
// backing slice.
type Store struct {
	mu   sync.RWMutex
	data map[string][]ports.Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string][]ports.Record)}
}

var _ ports.Datastore = (*Store)(nil)

// AddEntity declares a collection. No-op if it already exists.
func (s *Store) AddEntity(entity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addEntity(entity)
}

func (s *Store) addEntity(entity string) {
	if _, ok := s.data[entity]; !ok {
		s.data[entity] = []ports.Record{}
	}
}

// Create appends record to the entity's collection, declaring it on demand.
// Identifier uniqueness is not checked here; that is the caller's contract.
func (s *Store) Create(entity string, record ports.Record) ports.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addEntity(entity)
	stored := maps.Clone(record)
	s.data[entity] = append(s.data[entity], stored)
	return maps.Clone(stored)
}

// Retrieve returns the first record where record[key] == value.
func (s *Store) Retrieve(entity, key string, value any) (ports.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, _, ok := s.find(entity, key, value)
	if !ok {
		return nil, false
	}
	return maps.Clone(rec), true
}

// Filter returns all records of the collection when key is empty or no values
// are given, otherwise the records whose key attribute is one of values. A
// collection that was never declared yields nil.
func (s *Store) Filter(entity, key string, values ...any) []ports.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.data[entity]
	if !ok {
		return nil
	}
	out := make([]ports.Record, 0, len(records))
	for _, rec := range records {
		if key == "" || len(values) == 0 || slices.ContainsFunc(values, func(v any) bool { return match(rec[key], v) }) {
			out = append(out, maps.Clone(rec))
		}
	}
	return out
}

// Update merges record's attributes into the existing record matching
// record[idAttr], in place at its current position. Insertion order is
// preserved across updates. Returns false without writing when no record
// matches.
func (s *Store) Update(entity string, record ports.Record, idAttr string) (ports.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, _, ok := s.find(entity, idAttr, record[idAttr])
	if !ok {
		return nil, false
	}
	maps.Copy(existing, record)
	return maps.Clone(existing), true
}

// Delete removes the one record matching idAttr == value. No-op if absent.
func (s *Store) Delete(entity, idAttr string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, i, ok := s.find(entity, idAttr, value)
	if !ok {
		return
	}
	s.data[entity] = slices.Delete(s.data[entity], i, i+1)
}

// Count reports the number of records in the collection.
func (s *Store) Count(entity string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data[entity])
}

// find is the shared linear scan. Callers hold the lock.
func (s *Store) find(entity, key string, value any) (ports.Record, int, bool) {
	for i, rec := range s.data[entity] {
		if match(rec[key], value) {
			return rec, i, true
		}
	}
	return nil, 0, false
}

// match compares attribute values. Records are schema-less, so values may be
// types that are not directly comparable (slices, decimals holding pointers).
func match(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
