package probemap

import "errors"

var (
	// ErrKeyNotFound is returned by Get and Delete when the key has no live
	// entry.
	ErrKeyNotFound = errors.New("probemap: key not found")

	// ErrTableFull is returned by Set when auto-resizing is disabled and no
	// slot is left for a new key.
	ErrTableFull = errors.New("probemap: table is full")

	// ErrCapacityTooSmall is returned by Resize when the requested capacity
	// cannot hold the current entries within the load factor bound.
	ErrCapacityTooSmall = errors.New("probemap: capacity too small")
)
