package grid

import "errors"

// Errors returned by grid operations.
var (
	// ErrInvalidDimension indicates a width or height that cannot describe a grid.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrMalformedColor indicates a color payload that is not exactly three channels.
	ErrMalformedColor = errors.New("malformed color")
)
