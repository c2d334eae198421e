package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/lifetime/pkg/errors"
)

func TestSetAdd(t *testing.T) {
	s := NewSet[string]()

	t.Run("add new member", func(t *testing.T) {
		if !s.Add("alpha") {
			t.Error("Add() of a new member should return true")
		}

		if s.Len() != 1 {
			t.Errorf("Len() = %d, want 1", s.Len())
		}
	})

	t.Run("add duplicate member", func(t *testing.T) {
		if s.Add("alpha") {
			t.Error("Add() of an existing member should return false")
		}

		if s.Len() != 1 {
			t.Errorf("Len() after duplicate Add() = %d, want 1", s.Len())
		}
	})
}

func TestSetHas(t *testing.T) {
	s := NewSet[int]()
	s.Add(42)

	if !s.Has(42) {
		t.Error("Has() should find an added member")
	}

	if s.Has(7) {
		t.Error("Has() should not find a missing member")
	}
}

func TestSetItemsOrder(t *testing.T) {
	s := NewSet[string]()

	// Insertion order, not lexicographic order
	input := []string{"charlie", "alpha", "bravo", "alpha"}
	for _, item := range input {
		s.Add(item)
	}

	items := s.Items()
	expected := []string{"charlie", "alpha", "bravo"}

	if len(items) != len(expected) {
		t.Fatalf("Items() returned %d members, want %d", len(items), len(expected))
	}

	for i, item := range items {
		if item != expected[i] {
			t.Errorf("Items()[%d] = %s, want %s", i, item, expected[i])
		}
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet[int]()
	for i := 0; i < 5; i++ {
		s.Add(i)
	}

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", s.Len())
	}

	if len(s.Items()) != 0 {
		t.Error("Items() after Clear() should be empty")
	}
}

func TestSetConcurrency(t *testing.T) {
	s := NewSet[string]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				s.Add(fmt.Sprintf("g%d_item%d", goroutineID, i))
			}
		}(g)
	}

	wg.Wait()

	expectedCount := goroutines * itemsPerGoroutine
	if s.Len() != expectedCount {
		t.Errorf("Len() after concurrent adds = %d, want %d", s.Len(), expectedCount)
	}
}

func TestSlotsPut(t *testing.T) {
	sl := NewSlots[string]()

	t.Run("put into vacant slot", func(t *testing.T) {
		old, replaced, err := sl.Put("conn", "first")

		if err != nil {
			t.Fatalf("Put() error = %v, want nil", err)
		}

		if replaced {
			t.Errorf("Put() into vacant slot reported replacement of %q", old)
		}

		if sl.Len() != 1 {
			t.Errorf("Len() = %d, want 1", sl.Len())
		}
	})

	t.Run("put into occupied slot", func(t *testing.T) {
		old, replaced, err := sl.Put("conn", "second")

		if err != nil {
			t.Fatalf("Put() error = %v, want nil", err)
		}

		if !replaced || old != "first" {
			t.Errorf("Put() = (%q, %v), want (first, true)", old, replaced)
		}

		got, _ := sl.Get("conn")
		if got != "second" {
			t.Errorf("Get() after replacement = %q, want second", got)
		}
	})

	t.Run("put with empty name", func(t *testing.T) {
		_, _, err := sl.Put("", "anything")

		if !errors.IsErrorCode(err, errors.ErrInvalidKey) {
			t.Errorf("Put() with empty name should return ErrInvalidKey, got %v", err)
		}
	})
}

func TestSlotsTake(t *testing.T) {
	sl := NewSlots[string]()
	_, _, _ = sl.Put("conn", "occupant")

	t.Run("take occupied slot", func(t *testing.T) {
		item, ok := sl.Take("conn")

		if !ok || item != "occupant" {
			t.Errorf("Take() = (%q, %v), want (occupant, true)", item, ok)
		}

		if sl.Len() != 0 {
			t.Errorf("Len() after Take() = %d, want 0", sl.Len())
		}
	})

	t.Run("take vacant slot", func(t *testing.T) {
		_, ok := sl.Take("conn")

		if ok {
			t.Error("Take() of a vacant slot should report false")
		}
	})
}

func TestSlotsNames(t *testing.T) {
	sl := NewSlots[int]()

	// Occupied in non-alphabetical order
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		_, _, _ = sl.Put(name, i)
	}

	names := sl.Names()
	expected := []string{"alpha", "bravo", "charlie"}

	if len(names) != len(expected) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(expected))
	}

	for i, name := range names {
		if name != expected[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, name, expected[i])
		}
	}
}

func TestSlotsClear(t *testing.T) {
	sl := NewSlots[int]()
	for i := 0; i < 3; i++ {
		_, _, _ = sl.Put(fmt.Sprintf("slot%d", i), i)
	}

	sl.Clear()

	if sl.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", sl.Len())
	}
}
