package engine

import (
	"errors"

	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// Errors returned by session operations.
var (
	// ErrInvalidDimension indicates a canvas size that cannot be represented.
	ErrInvalidDimension = grid.ErrInvalidDimension

	// ErrOutOfBounds indicates edit coordinates outside the canvas.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrMalformedColor indicates a color payload that is not exactly r,g,b.
	ErrMalformedColor = grid.ErrMalformedColor

	// ErrNothingToUndo indicates the cursor is already at the oldest snapshot.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the cursor is already at the newest snapshot.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrReadOnly indicates an edit was attempted on a read-only session.
	ErrReadOnly = errors.New("session is read-only")
)
