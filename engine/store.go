package engine

import (
	"github.com/duskvale/nightswarm/core"
)

// Store is a typed container for components of kind T, using the sparse set
// pattern: a dense record slice for cache-friendly iteration plus an
// entity-to-slot map for O(1) lookup. Records carry no behavior, only state.
//
// Structural changes (first Set, Remove) are reported to the owning World so
// registered queries stay current; overwriting an existing record is not a
// structural change.
type Store[T any] struct {
	world    *World
	kind     KindID
	name     string
	records  []T
	entities []core.Entity // parallel to records
	index    map[core.Entity]int
}

// RegisterStore creates and registers a store for component kind T under the
// given name, assigning the next free KindID. Registration happens once
// during world wiring; duplicate names and kind overflow are programmer
// errors and panic.
func RegisterStore[T any](w *World, name string) *Store[T] {
	s := &Store[T]{
		world:    w,
		name:     name,
		records:  make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
		index:    make(map[core.Entity]int, 64),
	}
	s.kind = w.registerStore(s, name)
	return s
}

// Kind returns the store's component kind ID.
func (s *Store[T]) Kind() KindID { return s.kind }

// KindName returns the store's registered component kind name.
func (s *Store[T]) KindName() string { return s.name }

// Set inserts or overwrites the entity's component. Overwriting is
// last-write-wins, not an error: systems reset components in place rather
// than removing and re-adding them. Setting a component on a dead entity is
// a no-op.
func (s *Store[T]) Set(e core.Entity, record T) {
	if !s.world.Alive(e) {
		return
	}
	if slot, ok := s.index[e]; ok {
		s.records[slot] = record
		return
	}
	s.index[e] = len(s.records)
	s.records = append(s.records, record)
	s.entities = append(s.entities, e)
	s.world.componentAdded(e, s.kind)
}

// Get retrieves the entity's component. The second return value is false
// when the component is absent; no default record is fabricated.
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if slot, ok := s.index[e]; ok {
		return s.records[slot], true
	}
	var zero T
	return zero, false
}

// Remove deletes the entity's component. Removing an absent component is a
// no-op.
func (s *Store[T]) Remove(e core.Entity) {
	if !s.discard(e) {
		return
	}
	s.world.componentRemoved(e, s.kind)
}

// Has reports whether the entity has this component.
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Entities returns a snapshot of all entities holding this component.
// The returned slice is a copy; mutating the store mid-iteration does not
// affect it.
func (s *Store[T]) Entities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities holding this component.
func (s *Store[T]) Count() int { return len(s.records) }

// Clear removes all components from the store.
func (s *Store[T]) Clear() {
	s.records = s.records[:0]
	s.entities = s.entities[:0]
	s.index = make(map[core.Entity]int, 64)
}

// Discard implements AnyStore. It drops the record without query index
// notification; only the World calls this, during destroy commits.
func (s *Store[T]) Discard(e core.Entity) {
	s.discard(e)
}

// discard performs the swap-remove against the dense slices. Returns false
// when the entity had no record.
func (s *Store[T]) discard(e core.Entity) bool {
	slot, ok := s.index[e]
	if !ok {
		return false
	}
	last := len(s.records) - 1
	if slot != last {
		s.records[slot] = s.records[last]
		s.entities[slot] = s.entities[last]
		s.index[s.entities[slot]] = slot
	}
	var zero T
	s.records[last] = zero
	s.records = s.records[:last]
	s.entities = s.entities[:last]
	delete(s.index, e)
	return true
}
