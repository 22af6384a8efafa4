package engine

import (
	"github.com/DanBellman/Wandern-to-kill-a-Box/core"
)

// Store is a generic container for a specific component type T
// Sparse set: dense value slice for iteration, index map for lookup
// Owned by the simulation tick; not safe for concurrent mutation
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// RemoveEntity deletes an entity's component, swapping the last element into its slot
func (s *Store[T]) RemoveEntity(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a copy of all entities with this component type
// Safe to mutate the store while iterating the result
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.index = make(map[core.Entity]int)
	s.entities = s.entities[:0]
	clear(s.values)
	s.values = s.values[:0]
}
