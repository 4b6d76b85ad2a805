package probemap

// Stats is a point-in-time snapshot of the container and its collision
// counters.
type Stats struct {
	Size             int
	Capacity         int
	Tombstones       int
	LoadFactor       float64
	TotalCollisions  uint64
	LastOpCollisions int
}

// CollisionRecord describes a single probing operation: the table geometry
// at the time of the call and the number of occupied non-matching slots the
// walk stepped over.
type CollisionRecord struct {
	Capacity   int
	Size       int
	Collisions int
}
