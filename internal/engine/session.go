package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/pixelstorm/internal/engine/grid"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Grid is an immutable canvas snapshot.
	Grid = grid.Grid

	// Color is an RGB cell color.
	Color = grid.Color

	// EntryInfo describes one recorded history entry.
	EntryInfo = history.EntryInfo
)

// DefaultFill is the color of every cell on a new canvas.
var DefaultFill = grid.DefaultFill

// Session is the editing state of one open image.
// It pairs a history of canvas snapshots with the single write path that
// records new snapshots into it.
//
// All operations are thread-safe. Grids returned by a Session are immutable,
// so callers may keep and read them after further edits.
type Session struct {
	mu sync.RWMutex

	id      string
	width   int
	height  int
	history *history.History[grid.Grid]
	logger  *slog.Logger

	// Configuration
	fill           grid.Color
	maxUndoEntries int
	readOnly       bool
}

// Open creates a session for a new width x height canvas.
func Open(width, height int, opts ...Option) (*Session, error) {
	s := &Session{
		id:             uuid.New().String(),
		fill:           grid.DefaultFill,
		maxUndoEntries: DefaultMaxUndoEntries,
		logger:         slog.Default(),
	}

	// Apply options to get configuration
	for _, opt := range opts {
		opt(s)
	}

	canvas, err := grid.New(width, height, grid.WithFill(s.fill))
	if err != nil {
		return nil, fmt.Errorf("open %dx%d canvas: %w", width, height, err)
	}

	s.width = width
	s.height = height
	s.history = history.New(canvas, history.WithMaxEntries(s.maxUndoEntries))
	s.logger = s.logger.With("session", s.id)

	s.logger.Debug("session opened", "width", width, "height", height)
	return s, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Width returns the canvas width.
func (s *Session) Width() int {
	return s.width
}

// Height returns the canvas height.
func (s *Session) Height() int {
	return s.height
}

// IsReadOnly returns true if edits are rejected.
func (s *Session) IsReadOnly() bool {
	return s.readOnly
}

// CurrentImage returns the canvas at the history cursor.
func (s *Session) CurrentImage() grid.Grid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Current()
}

// ApplyEdit paints the cell at (x, y) with a raw r,g,b color, records the
// result in history, and returns it.
// On error, history is unchanged.
func (s *Session) ApplyEdit(x, y int, rgb []byte) (grid.Grid, error) {
	c, err := grid.ColorFromBytes(rgb)
	if err != nil {
		s.logger.Warn("edit rejected", "x", x, "y", y, "error", err)
		return grid.Grid{}, err
	}
	return s.Paint(x, y, c)
}

// Paint paints the cell at (x, y) with c, records the result in history,
// and returns it.
// On error, history is unchanged.
func (s *Session) Paint(x, y int, c grid.Color) (grid.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return grid.Grid{}, ErrReadOnly
	}

	next, err := s.history.Current().Set(x, y, c)
	if err != nil {
		s.logger.Warn("edit rejected", "x", x, "y", y, "error", err)
		return grid.Grid{}, err
	}

	s.history.Push(next, fmt.Sprintf("Paint %d,%d", x, y))
	s.logger.Debug("cell painted", "x", x, "y", y, "color", c.Hex())
	return next, nil
}

// Clear paints every cell with c as a single undoable edit.
func (s *Session) Clear(c grid.Color) (grid.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return grid.Grid{}, ErrReadOnly
	}

	next := s.history.Current().Fill(c)
	s.history.Push(next, "Clear")
	s.logger.Debug("canvas cleared", "color", c.Hex())
	return next, nil
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo moves back to the previous canvas.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return ErrReadOnly
	}

	if !s.history.Undo() {
		return ErrNothingToUndo
	}
	s.logger.Debug("undo", "cursor", s.history.Cursor())
	return nil
}

// Redo moves forward to the next canvas.
func (s *Session) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return ErrReadOnly
	}

	if !s.history.Redo() {
		return ErrNothingToRedo
	}
	s.logger.Debug("redo", "cursor", s.history.Cursor())
	return nil
}

// CanUndo returns true if undo is available.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// UndoCount returns the number of undo steps available.
func (s *Session) UndoCount() int {
	return s.history.UndoCount()
}

// RedoCount returns the number of redo steps available.
func (s *Session) RedoCount() int {
	return s.history.RedoCount()
}

// BeginStroke starts grouping edits into one undo step.
// Every edit until EndStroke replaces the stroke's pending snapshot.
func (s *Session) BeginStroke(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.BeginGroup(name)
}

// EndStroke records the stroke's edits as one undo step.
func (s *Session) EndStroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.EndGroup()
}

// CancelStroke discards the stroke's edits.
func (s *Session) CancelStroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.CancelGroup()
}

// InStroke returns true while a stroke is in progress.
func (s *Session) InStroke() bool {
	return s.history.IsGrouping()
}

// History returns info about every recorded entry, oldest first.
func (s *Session) History() []EntryInfo {
	return s.history.Entries()
}
