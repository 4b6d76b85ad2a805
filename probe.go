package probemap

import "iter"

// bin maps a hash code to a slot index in [0, capacity).
func bin(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}

// probeSeq yields the linear probe sequence for a walk starting at start:
// start, start+1, ..., capacity-1, 0, 1, ..., start-1. Exactly capacity
// indices, each visited once. A walk that consumes the whole sequence has
// looked at every slot in the table.
func probeSeq(start, capacity int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < capacity; i++ {
			idx := start + i
			if idx >= capacity {
				idx -= capacity
			}

			if !yield(idx) {
				return
			}
		}
	}
}
