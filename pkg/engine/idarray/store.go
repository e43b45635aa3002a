// Package idarray implements the id-stable slot map described in spec.md
// §4.G: a dense, capacity-bounded container where external ids survive
// forever (never reused while live, never renumbered), while their backing
// index is free to shift on removal. Generalized from the source's
// id_array<T, capacity> template (original_source/src/id_array.h).
package idarray

import "github.com/zyedidia/generic/mapset"

// IndexInvalid is returned by IndexOf when an id is not (or no longer) live.
const IndexInvalid uint32 = 0xFFFFFFFF

// Store is a generic id-stable container: O(1) id->index lookup, O(1)
// id->value access, and stable iteration order (insertion order, modulo
// removals shifting later entries down by one index).
type Store[T any] struct {
	capacity uint16

	data []T
	ids  []uint16

	idToIndex map[uint16]uint32
	available []uint16 // free-id FIFO, mirrors std::queue<entity_id>
	live      mapset.Set[uint16]
}

// New creates a Store that can hold up to capacity live entries, with ids
// drawn from [0, capacity).
func New[T any](capacity uint16) *Store[T] {
	s := &Store[T]{
		capacity:  capacity,
		idToIndex: make(map[uint16]uint32, capacity),
		available: make([]uint16, capacity),
		live:      mapset.New[uint16](),
	}
	for id := uint16(0); id < capacity; id++ {
		s.available[id] = id
	}
	return s
}

// Len returns the number of live entries.
func (s *Store[T]) Len() int {
	return len(s.data)
}

// IndexOf returns the current backing index for id, or IndexInvalid if id
// does not refer to a live entry.
func (s *Store[T]) IndexOf(id uint16) uint32 {
	idx, ok := s.idToIndex[id]
	if !ok {
		return IndexInvalid
	}
	return idx
}

// IDAt returns the id currently stored at index. Caller must ensure index
// is in range.
func (s *Store[T]) IDAt(index uint32) uint16 {
	return s.ids[index]
}

// At returns a pointer to the value at index, letting callers mutate
// entries in place without a separate Set call. Caller must ensure index
// is in range.
func (s *Store[T]) At(index uint32) *T {
	return &s.data[index]
}

// Get returns a pointer to the value for id, or nil if id is not live.
func (s *Store[T]) Get(id uint16) *T {
	idx := s.IndexOf(id)
	if idx == IndexInvalid {
		return nil
	}
	return &s.data[idx]
}

// IsLive reports whether id currently refers to a live entry.
func (s *Store[T]) IsLive(id uint16) bool {
	return s.live.Has(id)
}

// Insert adds value, returning its freshly-assigned id. Panics if the store
// is at capacity (mirroring the source's GOLD_ASSERT(!available_ids.empty())
// and GOLD_ASSERT(data.size() < capacity), which are both programmer-error
// assertions rather than recoverable conditions).
func (s *Store[T]) Insert(value T) uint16 {
	if len(s.available) == 0 || uint16(len(s.data)) >= s.capacity {
		panic("idarray: Store at capacity")
	}

	id := s.available[0]
	s.available = s.available[1:]

	s.idToIndex[id] = uint32(len(s.data))
	s.ids = append(s.ids, id)
	s.data = append(s.data, value)
	s.live.Put(id)

	return id
}

// Remove deletes the entry with the given id, shifting every later entry's
// backing index down by one. A no-op if id is not live.
func (s *Store[T]) Remove(id uint16) {
	index, ok := s.idToIndex[id]
	if !ok {
		return
	}

	delete(s.idToIndex, id)
	for otherIndex := index + 1; otherIndex < uint32(len(s.data)); otherIndex++ {
		s.idToIndex[s.ids[otherIndex]] = otherIndex - 1
	}

	s.data = append(s.data[:index], s.data[index+1:]...)
	s.ids = append(s.ids[:index], s.ids[index+1:]...)

	s.live.Remove(id)
	s.available = append(s.available, id)
}

// Each calls fn once per live entry, in current index order (index 0
// first). fn must not insert or remove entries from s.
func (s *Store[T]) Each(fn func(id uint16, value *T)) {
	for i := range s.data {
		fn(s.ids[i], &s.data[i])
	}
}
