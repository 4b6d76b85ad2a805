package probemap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns the default hash function, maphash with a
// fresh random seed. Good distribution, but collision statistics differ
// between runs; use a deterministic HashFunc when comparing measurements.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHash is a deterministic HashFunc for string keys (xxhash64).
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Uint64Hash is a deterministic HashFunc for uint64 keys.
func Uint64Hash(k uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], k)

	return xxhash.Sum64(b[:])
}
