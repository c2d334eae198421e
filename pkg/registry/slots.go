package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/lifetime/pkg/errors"
)

// Slots is a generic, thread-safe store of single-occupancy named slots.
// Putting an item into an occupied slot displaces the previous occupant and
// hands it back to the caller, which owns releasing it.
type Slots[T any] interface {
	// Put stores item under name, returning the displaced occupant if any
	Put(name string, item T) (old T, replaced bool, err error)

	// Get retrieves the occupant of name
	Get(name string) (T, bool)

	// Take removes and returns the occupant of name
	Take(name string) (T, bool)

	// Names returns all occupied slot names in sorted order
	Names() []string

	// Len returns the number of occupied slots
	Len() int

	// Clear vacates all slots
	Clear()
}

// slots is the internal implementation of Slots
type slots[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewSlots creates an empty Slots instance
func NewSlots[T any]() Slots[T] {
	return &slots[T]{
		items: make(map[string]T),
	}
}

// Put stores item under name, returning the displaced occupant if any
func (s *slots[T]) Put(name string, item T) (T, bool, error) {
	var zero T
	if name == "" {
		return zero, false, errors.New(errors.ErrInvalidKey, "slot name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, replaced := s.items[name]
	s.items[name] = item
	if !replaced {
		return zero, false, nil
	}
	return old, true, nil
}

// Get retrieves the occupant of name
func (s *slots[T]) Get(name string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[name]
	return item, exists
}

// Take removes and returns the occupant of name
func (s *slots[T]) Take(name string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[name]
	if exists {
		delete(s.items, name)
	}
	return item, exists
}

// Names returns all occupied slot names in sorted order
func (s *slots[T]) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.items))
	for name := range s.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Len returns the number of occupied slots
func (s *slots[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Clear vacates all slots
func (s *slots[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]T)
}
