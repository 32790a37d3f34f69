package simgraph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrPlacementExhausted means no land coordinate could be found within
	// the retry budget and no hub-center fallback was available. Fatal to
	// world generation.
	ErrPlacementExhausted = errors.New("placement exhausted: no land coordinate found")

	ErrUnknownNode   = errors.New("unknown node")
	ErrSelfLink      = errors.New("link endpoints are the same node")
	ErrDuplicateLink = errors.New("duplicate link between node pair")
	ErrNoNodes       = errors.New("no nodes supplied")
)

// GraphError provides structured error information for graph construction.
type GraphError struct {
	Op    string // Operation that failed (e.g., "GenerateNodes", "NewGraph")
	A     uint64 // First node ID involved (if applicable)
	B     uint64 // Second node ID involved (if applicable)
	Cause error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.B != 0 {
		return fmt.Sprintf("%s nodes %d-%d: %v", e.Op, e.A, e.B, e.Cause)
	}
	if e.A != 0 {
		return fmt.Sprintf("%s node %d: %v", e.Op, e.A, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

func newGraphError(op string, a, b uint64, cause error) error {
	return &GraphError{Op: op, A: a, B: b, Cause: cause}
}
