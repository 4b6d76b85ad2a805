/*
Package probemap provides an instrumented hash map built on open addressing
with linear probing.

Map stores entries directly in a flat slot array. A lookup hashes the key,
bins the hash to a starting slot, then walks slots one by one (wrapping at
the end of the array) until it finds the key or an empty slot. Every probing
operation records how many occupied non-matching slots it had to step over,
so callers can watch collision behavior change with load factor - the reason
this package exists. When the load factor crosses a threshold after an
insert, the table rehashes into a larger slot array.

Basic usage:

	import "github.com/probekit/probemap"

	m := probemap.New[string, int](16)

	if err := m.Set("answer", 42); err != nil {
		log.Fatal(err)
	}

	v, err := m.Get("answer")
	if err != nil {
		log.Fatal(err) // probemap.ErrKeyNotFound
	}
	fmt.Println(v)

	stats := m.Stats()
	fmt.Println(stats.TotalCollisions, stats.LoadFactor)

Features:

  - Open addressing with linear (+1, wrapping) probing
  - Tombstone deletes that preserve probe chains, recycled on insert
  - Automatic doubling rehash above a configurable load factor (default 0.7)
  - Per-operation and cumulative collision counters plus a full record log
  - Pluggable hash functions, with deterministic xxhash helpers for
    reproducible measurements

Map is not safe for concurrent use.
*/
package probemap
