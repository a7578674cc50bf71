package history

// BeginGroup starts a snapshot group.
// Pushes while grouping replace a single pending snapshot; EndGroup
// records it as one entry.
func (h *History[T]) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.groupName = name
	h.pending = nil
}

// EndGroup finishes a snapshot group.
// The last snapshot pushed since BeginGroup becomes one entry.
func (h *History[T]) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.endGroupLocked()
}

func (h *History[T]) endGroupLocked() {
	if !h.grouping {
		return
	}

	h.grouping = false
	pending := h.pending
	h.pending = nil

	if pending == nil {
		return
	}
	if h.groupName != "" {
		pending.description = h.groupName
	}
	h.pushLocked(*pending)
}

// CancelGroup cancels a snapshot group without adding to history.
// Current returns the entry at the cursor again.
func (h *History[T]) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.pending = nil
}

// IsGrouping returns true if currently in a snapshot group.
func (h *History[T]) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// GroupScope provides a convenient way to group pushes using defer.
// Usage:
//
//	func stroke(h *History[grid.Grid]) {
//	    defer h.GroupScope("Stroke").End()
//	    // ... multiple pushes ...
//	}
type GroupScope[T any] struct {
	history *History[T]
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History[T]) GroupScope(name string) *GroupScope[T] {
	h.BeginGroup(name)
	return &GroupScope[T]{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope[T]) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without recording an entry.
func (g *GroupScope[T]) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction runs fn within a group.
// If fn returns an error, the group is cancelled.
// Otherwise, the group is ended normally.
func (h *History[T]) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)

	err := fn()
	if err != nil {
		h.CancelGroup()
		return err
	}

	h.EndGroup()
	return nil
}
