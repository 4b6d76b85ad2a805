package probemap

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

// A slot holds one entry plus its state tag. Empty and Deleted slots keep
// whatever key/value was last written there; only the state decides
// liveness.
type slot[K comparable, V any] struct {
	state slotState
	key   K
	value V
}
