// Package store holds the ordered in-memory collection of animals.
package store

import (
	"slices"
	"sync"

	"github.com/graph-gophers/animals/animal"
)

// Store is an ordered collection of animals keyed by species. Lookups return
// the first match in insertion order; Insert does not check for an existing
// species, so a later duplicate stays hidden behind the earlier one until that
// one is deleted.
//
// Stored records are never modified in place. Callers that want to change a
// record build a new one and call ReplaceBySpecies.
type Store struct {
	mu      sync.RWMutex
	animals []animal.Animal
}

// New returns a store holding seed, in order.
func New(seed ...animal.Animal) *Store {
	return &Store{animals: slices.Clone(seed)}
}

// All returns every animal in insertion order. The returned slice is a copy.
func (s *Store) All() []animal.Animal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.animals)
}

// Len returns the number of stored animals, duplicates included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.animals)
}

// FindBySpecies returns the first animal whose species equals key.
func (s *Store) FindBySpecies(key string) (animal.Animal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(key); i >= 0 {
		return s.animals[i], true
	}
	return nil, false
}

// Insert appends a.
func (s *Store) Insert(a animal.Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = append(s.animals, a)
}

// ReplaceBySpecies swaps the first animal whose species equals key for a,
// keeping its position. It does nothing if key is not stored.
func (s *Store) ReplaceBySpecies(key string, a animal.Animal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(key); i >= 0 {
		s.animals[i] = a
	}
}

// DeleteBySpecies removes every animal whose species equals key.
func (s *Store) DeleteBySpecies(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = slices.DeleteFunc(s.animals, func(a animal.Animal) bool {
		return a.Traits().Species == key
	})
}

func (s *Store) index(key string) int {
	return slices.IndexFunc(s.animals, func(a animal.Animal) bool {
		return a.Traits().Species == key
	})
}
