package outbreak

import (
	"errors"
	"testing"
)

func TestRecorder_CaptureAndReplay(t *testing.T) {
	state := newWorldState([]uint64{1, 2, 3, 4})
	rec := NewRecorder()

	if err := rec.Capture(state); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	state.states[2] = StateInfected
	state.Tick = 1
	if err := rec.Capture(state); err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if got := rec.FrameCount(); got != 2 {
		t.Fatalf("frame count = %d, want 2", got)
	}

	frame, err := rec.Frame(0)
	if err != nil {
		t.Fatalf("Frame(0): %v", err)
	}
	for id, s := range frame {
		if s != StateSecure {
			t.Errorf("frame 0 node %d = %v, want secure", id, s)
		}
	}

	frame, err = rec.Frame(1)
	if err != nil {
		t.Fatalf("Frame(1): %v", err)
	}
	if frame[2] != StateInfected {
		t.Errorf("frame 1 node 2 = %v, want infected", frame[2])
	}
	if frame[1] != StateSecure || frame[3] != StateSecure {
		t.Errorf("frame 1 infected untouched nodes")
	}
}

func TestRecorder_FrameOutOfRange(t *testing.T) {
	rec := NewRecorder()
	if _, err := rec.Frame(0); err == nil {
		t.Errorf("expected error for empty recorder")
	}
}

func TestRecorder_RejectsMismatchedNodeSet(t *testing.T) {
	rec := NewRecorder()
	if err := rec.Capture(newWorldState([]uint64{1, 2, 3})); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	err := rec.Capture(newWorldState([]uint64{1, 2}))
	if !errors.Is(err, ErrFrameMismatch) {
		t.Errorf("expected ErrFrameMismatch, got %v", err)
	}
}

func TestRecorder_Compresses(t *testing.T) {
	ids := make([]uint64, 5000)
	for i := range ids {
		ids[i] = uint64(i + 1)
	}
	state := newWorldState(ids)
	rec := NewRecorder()
	for i := 0; i < 10; i++ {
		if err := rec.Capture(state); err != nil {
			t.Fatalf("Capture: %v", err)
		}
	}

	// All-secure frames are maximally repetitive; snappy should shrink
	// them well below the raw size.
	if rec.CompressedBytes() >= rec.RawBytes()/10 {
		t.Errorf("compressed %d bytes of %d raw", rec.CompressedBytes(), rec.RawBytes())
	}
}

func TestRecorder_AttachedToEngine(t *testing.T) {
	rec := NewRecorder()
	e := newTestEngine(t, lineGraph(t, 4, 0.9), DeterministicRule{Threshold: 0}, WithRecorder(rec))

	if err := e.Seed(1); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	// One frame at seed time plus one per tick.
	if got := rec.FrameCount(); got != 4 {
		t.Fatalf("frame count = %d, want 4", got)
	}
	last, err := rec.Frame(3)
	if err != nil {
		t.Fatalf("Frame(3): %v", err)
	}
	infected := 0
	for _, s := range last {
		if s == StateInfected {
			infected++
		}
	}
	if infected != e.InfectedCount() {
		t.Errorf("last frame infected = %d, engine reports %d", infected, e.InfectedCount())
	}
}
