package outbreak

import (
	"errors"
	"math"
	"testing"
)

func TestIntegrity(t *testing.T) {
	ids := make([]uint64, 10)
	for i := range ids {
		ids[i] = uint64(i + 1)
	}
	state := newWorldState(ids)

	score, err := Integrity(state)
	if err != nil {
		t.Fatalf("Integrity: %v", err)
	}
	if score != 100 {
		t.Errorf("untouched integrity = %v, want 100", score)
	}

	state.states[1] = StateInfected
	state.states[2] = StateInfected
	state.states[3] = StateInfected

	score, err = Integrity(state)
	if err != nil {
		t.Fatalf("Integrity: %v", err)
	}
	if math.Abs(score-70) > 1e-9 {
		t.Errorf("3 of 10 infected: integrity = %v, want 70", score)
	}

	for _, id := range ids {
		state.states[id] = StateInfected
	}
	score, err = Integrity(state)
	if err != nil {
		t.Fatalf("Integrity: %v", err)
	}
	if score != 0 {
		t.Errorf("fully compromised integrity = %v, want 0", score)
	}
}

func TestIntegrity_EmptyState(t *testing.T) {
	state := newWorldState(nil)
	if _, err := Integrity(state); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("expected ErrEmptyGraph, got %v", err)
	}
}
