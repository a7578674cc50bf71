// Package history provides undo/redo over immutable snapshots.
//
// A History holds an ordered log of snapshots and a cursor naming the
// current one. Because snapshots are immutable values (for example
// grid.Grid), undo and redo only move the cursor; nothing is recomputed.
//
// # History Log
//
// The log always holds at least the seed snapshot:
//
//	h := history.New(seed, history.WithMaxEntries(1000))
//
//	h.Push(next, "Paint") // cursor moves to the new tail
//	h.Undo()              // cursor back to seed
//	h.Redo()              // cursor forward to next
//
// Pushing while the cursor is not at the tail discards the entries after
// the cursor (the redo branch) before appending.
//
// # Grouping
//
// Multiple pushes can be grouped as a single undo unit:
//
//	h.BeginGroup("Brush stroke")
//	// ... several pushes, each replacing the pending snapshot ...
//	h.EndGroup()
//
// Now the whole stroke undoes with one step.
package history
