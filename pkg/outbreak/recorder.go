package outbreak

import (
	"errors"
	"fmt"

	"github.com/golang/snappy"
)

// ErrFrameMismatch indicates a captured frame does not match the
// recorder's node set.
var ErrFrameMismatch = errors.New("frame size does not match node set")

// Recorder keeps a compressed per-tick history of node states, so a full
// run can be replayed or rendered after the fact without holding every
// snapshot uncompressed in memory.
type Recorder struct {
	ids    []uint64 // node IDs in frame byte order
	frames [][]byte // snappy-compressed state bytes, one per capture
	raw    int      // uncompressed bytes captured so far
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Capture appends the current state as a compressed frame. The first
// capture fixes the node set; later captures must match it.
func (r *Recorder) Capture(state *WorldState) error {
	packed := state.pack()
	if r.ids == nil {
		r.ids = make([]uint64, len(state.order))
		copy(r.ids, state.order)
	} else if len(packed) != len(r.ids) {
		return fmt.Errorf("capture tick %d: %w", state.Tick, ErrFrameMismatch)
	}
	r.frames = append(r.frames, snappy.Encode(nil, packed))
	r.raw += len(packed)
	return nil
}

// FrameCount returns the number of captured frames.
func (r *Recorder) FrameCount() int {
	return len(r.frames)
}

// Frame decompresses frame i back into a per-node state map.
func (r *Recorder) Frame(i int) (map[uint64]NodeState, error) {
	if i < 0 || i >= len(r.frames) {
		return nil, fmt.Errorf("frame %d: out of range [0,%d)", i, len(r.frames))
	}
	packed, err := snappy.Decode(nil, r.frames[i])
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", i, err)
	}
	if len(packed) != len(r.ids) {
		return nil, fmt.Errorf("frame %d: %w", i, ErrFrameMismatch)
	}
	out := make(map[uint64]NodeState, len(r.ids))
	for j, id := range r.ids {
		out[id] = NodeState(packed[j])
	}
	return out, nil
}

// CompressedBytes returns the total size of all stored frames.
func (r *Recorder) CompressedBytes() int {
	total := 0
	for _, f := range r.frames {
		total += len(f)
	}
	return total
}

// RawBytes returns the total uncompressed size of all captured frames.
func (r *Recorder) RawBytes() int {
	return r.raw
}
