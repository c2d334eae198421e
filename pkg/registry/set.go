package registry

import "sync"

// Set is a thread-safe, insertion-ordered set. Adding an existing member is
// a no-op, so every member is released at most once during a teardown sweep.
type Set[T comparable] struct {
	mu      sync.RWMutex
	members map[T]struct{}
	order   []T
}

// NewSet creates an empty Set
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		members: make(map[T]struct{}),
	}
}

// Add inserts item into the set. It reports whether the item was newly added.
func (s *Set[T]) Add(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.members[item]; exists {
		return false
	}

	s.members[item] = struct{}{}
	s.order = append(s.order, item)
	return true
}

// Has checks if an item is a member of the set
func (s *Set[T]) Has(item T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.members[item]
	return exists
}

// Items returns the members in insertion order
func (s *Set[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, len(s.order))
	copy(items, s.order)
	return items
}

// Len returns the number of members
func (s *Set[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.members)
}

// Clear removes all members from the set
func (s *Set[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members = make(map[T]struct{})
	s.order = nil
}
