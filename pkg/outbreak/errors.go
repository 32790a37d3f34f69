package outbreak

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrAlreadySeeded = errors.New("outbreak already seeded")
	ErrNotSeeded     = errors.New("outbreak not seeded")
	ErrEmptyGraph    = errors.New("graph has no nodes")
)

// OutbreakError provides structured error information for engine operations.
type OutbreakError struct {
	Op     string // Operation that failed (e.g., "Seed", "Tick")
	NodeID uint64 // Node ID involved (if applicable)
	Cause  error
}

// Error implements the error interface.
func (e *OutbreakError) Error() string {
	if e.NodeID != 0 {
		return fmt.Sprintf("%s node %d: %v", e.Op, e.NodeID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *OutbreakError) Unwrap() error {
	return e.Cause
}

// UnknownNodeError creates an unknown node error for the given operation.
func UnknownNodeError(op string, nodeID uint64) error {
	return &OutbreakError{Op: op, NodeID: nodeID, Cause: ErrUnknownNode}
}
