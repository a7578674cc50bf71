package engine

import (
	"log/slog"

	"github.com/dshills/pixelstorm/internal/engine/grid"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Option configures a Session during creation.
type Option func(*Session)

// WithFill sets the color every cell of the new canvas starts with.
func WithFill(c grid.Color) Option {
	return func(s *Session) {
		s.fill = c
	}
}

// WithMaxUndoEntries sets the maximum number of undo steps.
func WithMaxUndoEntries(max int) Option {
	return func(s *Session) {
		if max > 0 {
			s.maxUndoEntries = max
		}
	}
}

// WithLogger sets the logger used for edit and history events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReadOnly creates a read-only session.
// Edits and history moves will return ErrReadOnly.
func WithReadOnly() Option {
	return func(s *Session) {
		s.readOnly = true
	}
}
