package probemap

import "iter"

// Map is a key-value container built on open addressing with linear
// probing, instrumented to count every probing collision. Capacity is
// always a power of two; when an insert pushes the load factor over the
// threshold (0.7 unless overridden), the table doubles and rehashes. It's
// a teaching structure: the point is to watch collisions vary with load
// factor, not to outrun the built-in map.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns a map with the given initial capacity, normalized up to a
// power of two (minimum 4).
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return m.emptyV, ErrKeyNotFound
	}

	return v, nil
}

// Lookup is the comma-ok form of Get, for callers that treat absence as a
// normal outcome.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.get(key)
}

// Set stores value under key, overwriting any previous value. The only
// error is ErrTableFull, and only when auto-resizing is disabled.
func (m *Map[K, V]) Set(key K, value V) error {
	return m.set(key, value)
}

// Delete removes the entry under key, or returns ErrKeyNotFound.
func (m *Map[K, V]) Delete(key K) error {
	if !m.delete(key) {
		return ErrKeyNotFound
	}

	return nil
}

// Contains reports whether key has a live entry.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.get(key)

	return ok
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Capacity returns the current number of slots.
func (m *Map[K, V]) Capacity() int {
	return len(m.slots)
}

// LoadFactor returns Len divided by Capacity.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor()
}

// Keys iterates over live keys in slot order, which is not insertion order
// and changes across rehashes. Mutating the map during iteration is
// undefined behavior.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.slots {
			if m.slots[i].state != slotOccupied {
				continue
			}

			if !yield(m.slots[i].key) {
				return
			}
		}
	}
}

// Items iterates over live key-value pairs. Same ordering and mutation
// caveats as Keys.
func (m *Map[K, V]) Items() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			if m.slots[i].state != slotOccupied {
				continue
			}

			if !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Resize rehashes into a table of at least the given capacity (normalized
// up to a power of two). Returns ErrCapacityTooSmall if the current entries
// would not fit within the load factor bound. Works with auto-resizing
// disabled too, which is how a pinned table gets unstuck.
func (m *Map[K, V]) Resize(capacity int) error {
	return m.resize(capacity)
}

// Reset drops every entry and tombstone, keeping capacity and collision
// statistics.
func (m *Map[K, V]) Reset() {
	m.reset()
}

// Stats returns a snapshot of the container state and collision counters.
func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}

// CollisionLog returns one record per probing operation since creation or
// the last ResetStats. The slice is the live backing store; callers must
// not modify it.
func (m *Map[K, V]) CollisionLog() []CollisionRecord {
	return m.collisionLog
}

// ResetStats zeroes the collision counters and truncates the log.
func (m *Map[K, V]) ResetStats() {
	m.resetStats()
}
