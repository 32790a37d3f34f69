package worldmap

import "errors"

// Common sentinel errors
var (
	// ErrSamplingUnavailable means neither a raster map nor polygon data is
	// loaded. Callers must treat this as fatal, never as "assume land".
	ErrSamplingUnavailable = errors.New("no land sampling source available")

	// ErrOutOfBounds means the coordinate falls outside the map bounds.
	ErrOutOfBounds = errors.New("coordinate outside map bounds")
)
