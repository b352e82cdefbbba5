package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a grid was requested with a non-positive width or height.
	ErrInvalidDimensions = errors.New("maze: width and height must be positive")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrInvalidDirection indicates a value that is not exactly one of North, South, East or West.
	ErrInvalidDirection = errors.New("maze: invalid direction")
)

// SaveError is returned by Saveable implementations when persisting fails.
type SaveError struct {
	Path string // Destination that could not be written
	Err  error  // Underlying cause
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("maze: saving to %q: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
