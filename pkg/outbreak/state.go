package outbreak

import (
	"sort"

	"github.com/google/uuid"
)

// NodeState describes whether a device has been compromised.
type NodeState uint8

const (
	// StateSecure marks a node that has not been infected.
	StateSecure NodeState = iota
	// StateInfected marks a compromised node.
	StateInfected
)

// String returns the lowercase name of the state.
func (s NodeState) String() string {
	switch s {
	case StateSecure:
		return "secure"
	case StateInfected:
		return "infected"
	default:
		return "unknown"
	}
}

// WorldState holds the per-node infection state of a single run.
// State is owned by the engine; callers get copies via Snapshot.
type WorldState struct {
	RunID string
	Tick  uint64

	states map[uint64]NodeState
	order  []uint64 // node IDs sorted ascending, for deterministic iteration
}

func newWorldState(ids []uint64) *WorldState {
	states := make(map[uint64]NodeState, len(ids))
	order := make([]uint64, len(ids))
	copy(order, ids)
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, id := range order {
		states[id] = StateSecure
	}
	return &WorldState{
		RunID:  uuid.New().String(),
		states: states,
		order:  order,
	}
}

// State returns the state of a node and whether the node exists.
func (w *WorldState) State(id uint64) (NodeState, bool) {
	s, ok := w.states[id]
	return s, ok
}

// NodeCount returns the total number of tracked nodes.
func (w *WorldState) NodeCount() int {
	return len(w.states)
}

// InfectedCount returns the number of compromised nodes.
func (w *WorldState) InfectedCount() int {
	count := 0
	for _, s := range w.states {
		if s == StateInfected {
			count++
		}
	}
	return count
}

// SecureCount returns the number of uncompromised nodes.
func (w *WorldState) SecureCount() int {
	return len(w.states) - w.InfectedCount()
}

// Snapshot returns a copy of the per-node states.
func (w *WorldState) Snapshot() map[uint64]NodeState {
	out := make(map[uint64]NodeState, len(w.states))
	for id, s := range w.states {
		out[id] = s
	}
	return out
}

// infectedInOrder returns infected node IDs in ascending ID order.
func (w *WorldState) infectedInOrder() []uint64 {
	var out []uint64
	for _, id := range w.order {
		if w.states[id] == StateInfected {
			out = append(out, id)
		}
	}
	return out
}

// pack serializes per-node states as one byte per node in ID order.
func (w *WorldState) pack() []byte {
	out := make([]byte, len(w.order))
	for i, id := range w.order {
		out[i] = byte(w.states[id])
	}
	return out
}
