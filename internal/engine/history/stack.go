package history

import (
	"sync"
	"time"
)

// DefaultMaxEntries is the default number of undo steps retained.
const DefaultMaxEntries = 1000

// entry wraps a snapshot with metadata.
type entry[T any] struct {
	value       T
	description string
	timestamp   time.Time
}

// EntryInfo provides read-only info about a history entry.
// Used for displaying undo/redo history to users.
type EntryInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the snapshot was recorded
	Current     bool      // Whether the cursor is on this entry
}

// Option configures a History during creation.
type Option func(*settings)

type settings struct {
	maxEntries int
}

// WithMaxEntries bounds the number of undo steps retained.
// Values below 1 select DefaultMaxEntries.
func WithMaxEntries(max int) Option {
	return func(s *settings) {
		s.maxEntries = max
	}
}

// History is a linear log of snapshots with a cursor.
// The log is never empty and the cursor always names a valid entry.
type History[T any] struct {
	mu sync.Mutex

	entries []entry[T]
	cursor  int

	// Grouping state
	grouping  bool
	groupName string
	pending   *entry[T]

	// Configuration
	maxEntries int
}

// New creates a history holding only seed, with the cursor on it.
func New[T any](seed T, opts ...Option) *History[T] {
	s := settings{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(&s)
	}
	if s.maxEntries <= 0 {
		s.maxEntries = DefaultMaxEntries
	}

	return &History[T]{
		entries:    []entry[T]{{value: seed, description: "Open", timestamp: time.Now()}},
		maxEntries: s.maxEntries,
	}
}

// Current returns the snapshot at the cursor.
// While grouping, the most recent pending snapshot is returned.
func (h *History[T]) Current() T {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending != nil {
		return h.pending.value
	}
	return h.entries[h.cursor].value
}

// Push records snapshot as the new current entry.
// Entries after the cursor are discarded first.
func (h *History[T]) Push(snapshot T, description string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := entry[T]{
		value:       snapshot,
		description: description,
		timestamp:   time.Now(),
	}

	if h.grouping {
		h.pending = &e
		return
	}

	h.pushLocked(e)
}

// pushLocked truncates the redo branch and appends without acquiring the lock.
func (h *History[T]) pushLocked(e entry[T]) {
	// Drop the redo branch so its snapshots can be collected
	clear(h.entries[h.cursor+1:])
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor = len(h.entries) - 1

	h.trimLocked()
}

// trimLocked enforces maxEntries, dropping the oldest entries first and
// then redo entries. The cursor keeps referring to the same snapshot.
func (h *History[T]) trimLocked() {
	excess := len(h.entries) - (h.maxEntries + 1)
	if excess <= 0 {
		return
	}

	front := min(excess, h.cursor)
	if front > 0 {
		clear(h.entries[:front])
		h.entries = h.entries[front:]
		h.cursor -= front
		excess -= front
	}

	if excess > 0 {
		keep := len(h.entries) - excess
		clear(h.entries[keep:])
		h.entries = h.entries[:keep]
	}
}

// Undo moves the cursor back one entry.
// A group in progress is committed first. Returns whether the cursor moved.
func (h *History[T]) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.endGroupLocked()
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo moves the cursor forward one entry.
// A group in progress is committed first. Returns whether the cursor moved.
func (h *History[T]) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.endGroupLocked()
	if h.cursor >= len(h.entries)-1 {
		return false
	}
	h.cursor++
	return true
}

// CanUndo returns true if undo is available.
func (h *History[T]) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0 || h.pending != nil
}

// CanRedo returns true if redo is available.
func (h *History[T]) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending == nil && h.cursor < len(h.entries)-1
}

// UndoCount returns the number of undo steps available.
func (h *History[T]) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// RedoCount returns the number of redo steps available.
func (h *History[T]) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries) - 1 - h.cursor
}

// Len returns the number of recorded entries, including the seed.
func (h *History[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Cursor returns the index of the current entry.
func (h *History[T]) Cursor() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// Entries returns info about every recorded entry, oldest first.
func (h *History[T]) Entries() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]EntryInfo, len(h.entries))
	for i, e := range h.entries {
		result[i] = EntryInfo{
			Description: e.description,
			Timestamp:   e.timestamp,
			Current:     i == h.cursor,
		}
	}
	return result
}

// Reset discards all entries and starts over from seed.
func (h *History[T]) Reset(seed T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = []entry[T]{{value: seed, description: "Open", timestamp: time.Now()}}
	h.cursor = 0
	h.grouping = false
	h.groupName = ""
	h.pending = nil
}

// SetMaxEntries changes the maximum number of undo steps.
// If the log is larger, oldest entries are removed.
func (h *History[T]) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the maximum number of undo steps.
func (h *History[T]) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
