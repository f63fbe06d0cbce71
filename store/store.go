// Package store provides the keyed in-memory stores backing every
// domain: a copy-on-write map per entity kind plus derived secondary
// indexes. Mutations are synchronous and single-writer; the mutex only
// protects readers that observe the map pointer while a mutation is in
// flight.
package store

import "sync"

// Store holds one entity map. Every mutation swaps in a freshly built
// map so subscribers can diff snapshots by reference. The maps handed
// out by Get must be treated as read-only.
type Store[T any] struct {
	mu        sync.RWMutex
	items     map[string]T
	listeners map[int]func(map[string]T)
	nextID    int
}

func New[T any]() *Store[T] {
	return &Store[T]{
		items:     map[string]T{},
		listeners: map[int]func(map[string]T){},
	}
}

// Get returns the current snapshot map.
func (s *Store[T]) Get() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Lookup returns the record for id and whether it exists.
func (s *Store[T]) Lookup(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Set stores record under id, replacing the whole map.
func (s *Store[T]) Set(id string, record T) {
	s.mu.Lock()
	next := make(map[string]T, len(s.items)+1)
	for k, v := range s.items {
		next[k] = v
	}
	next[id] = record
	s.items = next
	s.mu.Unlock()

	s.notify(next)
}

// Delete removes id. Deleting an unknown id is a no-op at this layer;
// existence checks belong to the workflows.
func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	next := make(map[string]T, len(s.items))
	for k, v := range s.items {
		if k != id {
			next[k] = v
		}
	}
	s.items = next
	s.mu.Unlock()

	s.notify(next)
}

// Replace swaps in an entire snapshot. Used by persistence load; the
// input map is copied so the caller keeps ownership of its own map.
func (s *Store[T]) Replace(items map[string]T) {
	next := make(map[string]T, len(items))
	for k, v := range items {
		next[k] = v
	}

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()

	s.notify(next)
}

// Subscribe registers a listener invoked synchronously after every
// mutation with the new snapshot. The returned function unsubscribes.
func (s *Store[T]) Subscribe(listener func(map[string]T)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) notify(snapshot map[string]T) {
	s.mu.RLock()
	listeners := make([]func(map[string]T), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
