package probemap

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	minCapacity = 4

	defaultMaxLoadFactor = 0.7
)

type table[K comparable, V any] struct {
	slots []slot[K, V]

	count      int
	tombstones int

	maxLoadFactor float64
	autoResize    bool

	hashFunc HashFunc[K]
	logger   *zap.Logger

	totalCollisions  uint64
	lastOpCollisions int
	collisionLog     []CollisionRecord

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithMaxLoadFactor overrides the resize threshold. Must be in (0, 1);
// anything else is a programmer error and panics.
func WithMaxLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		if f <= 0 || f >= 1 {
			panic(fmt.Sprintf("probemap: max load factor must be in (0, 1), got %v", f))
		}

		t.maxLoadFactor = f
	}
}

// WithoutAutoResize pins the table at its initial capacity. Inserting a new
// key once every slot is taken returns ErrTableFull instead of growing.
func WithoutAutoResize[K comparable, V any]() Option[K, V] {
	return func(t *table[K, V]) {
		t.autoResize = false
	}
}

// WithLogger enables per-operation debug logging and resize info logging.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	t.slots = make([]slot[K, V], normalizeCapacity(capacity))
	t.maxLoadFactor = defaultMaxLoadFactor
	t.autoResize = true

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}
}

// Capacities are powers of two, four slots minimum.
func normalizeCapacity(capacity int) int {
	if capacity < minCapacity {
		capacity = minCapacity
	}

	return int(NextPowerOf2(uint32(capacity)))
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.count) / float64(len(t.slots))
}

func (t *table[K, V]) get(key K) (V, bool) {
	start := bin(t.hashFunc(key), len(t.slots))
	collisions := 0

	for idx := range probeSeq(start, len(t.slots)) {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			// Terminator: the key cannot live past an empty slot.
			t.record(collisions)
			t.logger.Debug("get: miss", zap.Int("slot", idx), zap.Int("collisions", collisions))

			return t.emptyV, false

		case slotOccupied:
			if s.key == key {
				t.record(collisions)
				t.logger.Debug("get: hit", zap.Int("slot", idx), zap.Int("collisions", collisions))

				return s.value, true
			}

			collisions++

		case slotDeleted:
			// Tombstones don't terminate the walk.
		}
	}

	// Every slot is occupied or tombstoned, so the key is definitely
	// absent. Only reachable with auto-resizing disabled.
	t.record(collisions)

	return t.emptyV, false
}

// set upserts. The walk either overwrites the key in place or claims the
// first reusable slot, then hands off to the resize check.
func (t *table[K, V]) set(key K, value V) error {
	start := bin(t.hashFunc(key), len(t.slots))
	collisions := 0

	// First tombstone seen en route. Preferred insertion point, so deleted
	// slots get recycled instead of piling up.
	reuse := -1

	for idx := range probeSeq(start, len(t.slots)) {
		s := &t.slots[idx]

		switch s.state {
		case slotOccupied:
			if s.key == key {
				s.value = value
				t.record(collisions)
				t.logger.Debug("set: overwrite", zap.Int("slot", idx), zap.Int("collisions", collisions))

				return nil
			}

			collisions++
			continue

		case slotDeleted:
			if reuse < 0 {
				reuse = idx
			}

			continue
		}

		// Empty slot: the key is not in the table, insert it.
		if reuse >= 0 {
			idx = reuse
			t.tombstones--
		}

		t.insertAt(idx, key, value)
		t.record(collisions)
		t.logger.Debug("set: insert", zap.Int("slot", idx), zap.Int("collisions", collisions))
		t.maybeGrow()

		return nil
	}

	// No empty slot anywhere. A remembered tombstone still makes the
	// insert legal.
	if reuse >= 0 {
		t.tombstones--
		t.insertAt(reuse, key, value)
		t.record(collisions)
		t.maybeGrow()

		return nil
	}

	if t.autoResize {
		// count == capacity cannot happen while the resize controller runs
		// after every insert.
		panic("probemap: probe sequence exhausted, load factor invariant violated")
	}

	t.record(collisions)

	return ErrTableFull
}

func (t *table[K, V]) insertAt(idx int, key K, value V) {
	t.slots[idx] = slot[K, V]{state: slotOccupied, key: key, value: value}
	t.count++
}

func (t *table[K, V]) delete(key K) bool {
	start := bin(t.hashFunc(key), len(t.slots))
	collisions := 0

	for idx := range probeSeq(start, len(t.slots)) {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			t.record(collisions)

			return false

		case slotOccupied:
			if s.key == key {
				// Tombstone instead of emptying to preserve probe chains
				// running through this slot.
				s.state = slotDeleted
				t.count--
				t.tombstones++
				t.record(collisions)
				t.logger.Debug("delete", zap.Int("slot", idx), zap.Int("collisions", collisions))

				return true
			}

			collisions++

		case slotDeleted:
		}
	}

	t.record(collisions)

	return false
}

// record feeds the instrumentation sink: running total, last-op count and
// the per-operation log. Observational only.
func (t *table[K, V]) record(collisions int) {
	t.lastOpCollisions = collisions
	t.totalCollisions += uint64(collisions)
	t.collisionLog = append(t.collisionLog, CollisionRecord{
		Capacity:   len(t.slots),
		Size:       t.count,
		Collisions: collisions,
	})
}

// maybeGrow is the post-insert resize check. Doubles until the new load
// factor is back under the threshold, so a single rehash always suffices.
func (t *table[K, V]) maybeGrow() {
	if !t.autoResize || t.loadFactor() <= t.maxLoadFactor {
		return
	}

	newCapacity := len(t.slots) * 2
	for float64(t.count)/float64(newCapacity) > t.maxLoadFactor {
		newCapacity *= 2
	}

	t.rehash(newCapacity)
}

// rehash replays every live entry into a freshly allocated slot array and
// swaps it in, dropping all tombstones. Entry order doesn't matter: replay
// only ever fills empty slots, so any order produces the same contents.
// Replay bypasses the collision counters, which describe caller operations,
// not internal bookkeeping.
func (t *table[K, V]) rehash(newCapacity int) {
	old := t.slots

	t.slots = make([]slot[K, V], newCapacity)
	t.count = 0
	t.tombstones = 0

	for i := range old {
		if old[i].state != slotOccupied {
			continue
		}

		placed := false
		for idx := range probeSeq(bin(t.hashFunc(old[i].key), newCapacity), newCapacity) {
			if t.slots[idx].state == slotEmpty {
				t.insertAt(idx, old[i].key, old[i].value)
				placed = true

				break
			}
		}

		if !placed {
			panic("probemap: rehash ran out of slots")
		}
	}

	t.logger.Info("rehash",
		zap.Int("old_capacity", len(old)),
		zap.Int("capacity", newCapacity),
		zap.Int("size", t.count),
	)
}

func (t *table[K, V]) resize(capacity int) error {
	normalized := normalizeCapacity(capacity)
	if float64(t.count)/float64(normalized) > t.maxLoadFactor {
		return fmt.Errorf("%w: %d entries do not fit in %d slots at load factor %v",
			ErrCapacityTooSmall, t.count, normalized, t.maxLoadFactor)
	}

	t.rehash(normalized)

	return nil
}

func (t *table[K, V]) reset() {
	clear(t.slots)
	t.count = 0
	t.tombstones = 0
}

func (t *table[K, V]) stats() Stats {
	return Stats{
		Size:             t.count,
		Capacity:         len(t.slots),
		Tombstones:       t.tombstones,
		LoadFactor:       t.loadFactor(),
		TotalCollisions:  t.totalCollisions,
		LastOpCollisions: t.lastOpCollisions,
	}
}

func (t *table[K, V]) resetStats() {
	t.totalCollisions = 0
	t.lastOpCollisions = 0
	t.collisionLog = t.collisionLog[:0]
}
