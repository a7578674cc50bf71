package history

import (
	"errors"
	"math/rand"
	"testing"
)

// checkInvariant verifies the cursor names a valid entry.
func checkInvariant[T any](t *testing.T, h *History[T]) {
	t.Helper()
	n, c := h.Len(), h.Cursor()
	if n < 1 {
		t.Fatalf("history is empty")
	}
	if c < 0 || c >= n {
		t.Fatalf("cursor %d outside [0, %d)", c, n)
	}
}

func TestNew(t *testing.T) {
	h := New("seed")

	if h.Current() != "seed" {
		t.Errorf("Current() = %q, want seed", h.Current())
	}
	if h.Len() != 1 || h.Cursor() != 0 {
		t.Errorf("Len() = %d, Cursor() = %d; want 1, 0", h.Len(), h.Cursor())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history should not undo or redo")
	}
	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("MaxEntries() = %d, want %d", h.MaxEntries(), DefaultMaxEntries)
	}
}

func TestPush(t *testing.T) {
	h := New(0)
	h.Push(1, "one")
	h.Push(2, "two")

	if h.Current() != 2 {
		t.Errorf("Current() = %d, want 2", h.Current())
	}
	if h.Len() != 3 || h.Cursor() != 2 {
		t.Errorf("Len() = %d, Cursor() = %d; want 3, 2", h.Len(), h.Cursor())
	}
	if h.UndoCount() != 2 || h.RedoCount() != 0 {
		t.Errorf("UndoCount() = %d, RedoCount() = %d; want 2, 0", h.UndoCount(), h.RedoCount())
	}
}

func TestUndoRedo(t *testing.T) {
	h := New(0)
	h.Push(1, "one")
	h.Push(2, "two")

	if !h.Undo() || h.Current() != 1 {
		t.Fatalf("after Undo Current() = %d, want 1", h.Current())
	}
	if !h.Undo() || h.Current() != 0 {
		t.Fatalf("after second Undo Current() = %d, want 0", h.Current())
	}
	if h.Undo() {
		t.Error("Undo at seed should not move")
	}
	if h.Current() != 0 {
		t.Errorf("Current() = %d after failed Undo, want 0", h.Current())
	}

	if !h.Redo() || h.Current() != 1 {
		t.Fatalf("after Redo Current() = %d, want 1", h.Current())
	}
	if !h.Redo() || h.Current() != 2 {
		t.Fatalf("after second Redo Current() = %d, want 2", h.Current())
	}
	if h.Redo() {
		t.Error("Redo at tail should not move")
	}
	if h.Len() != 3 {
		t.Errorf("undo/redo changed Len() to %d", h.Len())
	}
}

func TestUndoThenRedoRestoresCurrent(t *testing.T) {
	h := New("a")
	h.Push("b", "")
	h.Push("c", "")
	h.Undo()

	before := h.Current()
	if !h.Undo() {
		t.Fatal("Undo failed")
	}
	if !h.Redo() {
		t.Fatal("Redo failed")
	}
	if h.Current() != before {
		t.Errorf("Current() = %q, want %q", h.Current(), before)
	}
}

func TestPushDiscardsRedoBranch(t *testing.T) {
	h := New(0)
	h.Push(1, "")
	h.Push(2, "")
	h.Push(3, "")
	h.Undo()
	h.Undo()

	h.Push(10, "branch")

	if h.Current() != 10 {
		t.Errorf("Current() = %d, want 10", h.Current())
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (0, 1, 10)", h.Len())
	}
	if h.CanRedo() {
		t.Error("redo branch should be discarded")
	}

	h.Undo()
	if h.Current() != 1 {
		t.Errorf("Current() after Undo = %d, want 1", h.Current())
	}
}

func TestMaxEntries(t *testing.T) {
	h := New(0, WithMaxEntries(3))
	for i := 1; i <= 10; i++ {
		h.Push(i, "")
		checkInvariant(t, h)
	}

	if h.Len() != 4 {
		t.Errorf("Len() = %d, want 4", h.Len())
	}
	if h.Current() != 10 {
		t.Errorf("Current() = %d, want 10", h.Current())
	}

	undone := 0
	for h.Undo() {
		undone++
	}
	if undone != 3 {
		t.Errorf("undid %d steps, want 3", undone)
	}
	if h.Current() != 7 {
		t.Errorf("oldest retained = %d, want 7", h.Current())
	}
}

func TestWithMaxEntriesInvalid(t *testing.T) {
	h := New(0, WithMaxEntries(-1))
	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("MaxEntries() = %d, want default", h.MaxEntries())
	}
}

func TestSetMaxEntries(t *testing.T) {
	h := New(0)
	for i := 1; i <= 5; i++ {
		h.Push(i, "")
	}
	h.Undo() // cursor on 4

	h.SetMaxEntries(2)
	checkInvariant(t, h)

	if h.Current() != 4 {
		t.Errorf("Current() = %d, want 4", h.Current())
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if h.RedoCount() != 1 {
		t.Errorf("RedoCount() = %d, want 1", h.RedoCount())
	}
}

func TestSetMaxEntriesKeepsCurrent(t *testing.T) {
	h := New(0)
	for i := 1; i <= 5; i++ {
		h.Push(i, "")
	}
	for h.Undo() {
	}

	h.SetMaxEntries(1)
	checkInvariant(t, h)

	if h.Current() != 0 {
		t.Errorf("Current() = %d, want 0", h.Current())
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestGroup(t *testing.T) {
	h := New(0)
	h.BeginGroup("stroke")

	if !h.IsGrouping() {
		t.Error("should be grouping")
	}

	h.Push(1, "")
	h.Push(2, "")
	h.Push(3, "")

	if h.Current() != 3 {
		t.Errorf("Current() during group = %d, want 3", h.Current())
	}
	if h.Len() != 1 {
		t.Errorf("Len() during group = %d, want 1", h.Len())
	}

	h.EndGroup()

	if h.IsGrouping() {
		t.Error("should not be grouping")
	}
	if h.Len() != 2 || h.Current() != 3 {
		t.Errorf("Len() = %d, Current() = %d; want 2, 3", h.Len(), h.Current())
	}

	entries := h.Entries()
	if entries[1].Description != "stroke" {
		t.Errorf("group description = %q, want stroke", entries[1].Description)
	}

	h.Undo()
	if h.Current() != 0 {
		t.Errorf("Undo of group: Current() = %d, want 0", h.Current())
	}
}

func TestGroupEmpty(t *testing.T) {
	h := New(0)
	h.BeginGroup("nothing")
	h.EndGroup()

	if h.Len() != 1 {
		t.Errorf("empty group added an entry, Len() = %d", h.Len())
	}
}

func TestGroupNested(t *testing.T) {
	h := New(0)
	h.BeginGroup("outer")
	h.Push(1, "")
	h.BeginGroup("inner")
	h.Push(2, "")
	h.EndGroup()

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	if got := h.Entries()[1].Description; got != "outer" {
		t.Errorf("description = %q, want outer", got)
	}
}

func TestCancelGroup(t *testing.T) {
	h := New(0)
	h.BeginGroup("stroke")
	h.Push(1, "")
	h.CancelGroup()

	if h.Current() != 0 {
		t.Errorf("Current() = %d, want 0", h.Current())
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestUndoCommitsGroup(t *testing.T) {
	h := New(0)
	h.BeginGroup("stroke")
	h.Push(1, "")

	if !h.CanUndo() || h.CanRedo() {
		t.Error("pending group should be undoable and not redoable")
	}
	if !h.Undo() {
		t.Fatal("Undo failed")
	}
	if h.IsGrouping() {
		t.Error("Undo should end the group")
	}
	if h.Current() != 0 {
		t.Errorf("Current() = %d, want 0", h.Current())
	}
	if !h.Redo() || h.Current() != 1 {
		t.Errorf("Redo should restore the committed group, got %d", h.Current())
	}
}

func TestGroupScope(t *testing.T) {
	h := New(0)
	func() {
		defer h.GroupScope("scoped").End()
		h.Push(1, "")
		h.Push(2, "")
	}()

	if h.IsGrouping() {
		t.Error("scope did not end group")
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	scope := h.GroupScope("cancelled")
	h.Push(3, "")
	scope.Cancel()
	scope.End()

	if h.Current() != 2 || h.Len() != 2 {
		t.Errorf("cancelled scope recorded an entry: Current() = %d, Len() = %d", h.Current(), h.Len())
	}
}

func TestTransaction(t *testing.T) {
	h := New(0)
	err := h.Transaction("ok", func() error {
		h.Push(1, "")
		h.Push(2, "")
		return nil
	})
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}
	if h.Len() != 2 || h.Current() != 2 {
		t.Errorf("Len() = %d, Current() = %d; want 2, 2", h.Len(), h.Current())
	}

	boom := errors.New("boom")
	err = h.Transaction("fail", func() error {
		h.Push(3, "")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Transaction error = %v, want boom", err)
	}
	if h.Current() != 2 || h.Len() != 2 {
		t.Errorf("failed transaction recorded: Current() = %d, Len() = %d", h.Current(), h.Len())
	}
}

func TestEntries(t *testing.T) {
	h := New(0)
	h.Push(1, "first")
	h.Push(2, "second")
	h.Undo()

	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}

	wantDesc := []string{"Open", "first", "second"}
	for i, e := range entries {
		if e.Description != wantDesc[i] {
			t.Errorf("entry %d description = %q, want %q", i, e.Description, wantDesc[i])
		}
		if e.Timestamp.IsZero() {
			t.Errorf("entry %d timestamp not set", i)
		}
		if e.Current != (i == 1) {
			t.Errorf("entry %d Current = %v", i, e.Current)
		}
	}
}

func TestReset(t *testing.T) {
	h := New(0)
	h.Push(1, "")
	h.BeginGroup("g")
	h.Push(2, "")

	h.Reset(100)

	if h.Current() != 100 || h.Len() != 1 || h.Cursor() != 0 {
		t.Errorf("Reset: Current() = %d, Len() = %d, Cursor() = %d", h.Current(), h.Len(), h.Cursor())
	}
	if h.IsGrouping() {
		t.Error("Reset should end grouping")
	}
}

func TestRandomOperationsKeepInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := New(0, WithMaxEntries(16))

	// Shadow model of the log
	log := []int{0}
	cursor := 0

	for i := 0; i < 5000; i++ {
		switch rng.Intn(3) {
		case 0:
			log = append(log[:cursor+1], i+1)
			cursor = len(log) - 1
			if len(log) > 17 {
				drop := len(log) - 17
				log = log[drop:]
				cursor -= drop
			}
			h.Push(i+1, "")
		case 1:
			moved := h.Undo()
			if moved != (cursor > 0) {
				t.Fatalf("step %d: Undo() = %v with cursor %d", i, moved, cursor)
			}
			if moved {
				cursor--
			}
		case 2:
			moved := h.Redo()
			if moved != (cursor < len(log)-1) {
				t.Fatalf("step %d: Redo() = %v with cursor %d of %d", i, moved, cursor, len(log))
			}
			if moved {
				cursor++
			}
		}

		checkInvariant(t, h)
		if h.Current() != log[cursor] {
			t.Fatalf("step %d: Current() = %d, want %d", i, h.Current(), log[cursor])
		}
	}
}
