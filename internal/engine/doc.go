// Package engine provides the editing session for a persistent pixel image.
//
// The engine package serves as the main facade, combining the persistent
// canvas and its undo/redo history into a single, thread-safe API that a
// host (a terminal view, a GUI, a test) drives with coordinates and colors.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - vector: B+ tree vector with structural sharing (O(log n) updates)
//   - grid: immutable width x height canvas of RGB cells
//   - history: snapshot log with a cursor, grouping, and bounded size
//
// # Basic Usage
//
// Open a session and paint:
//
//	s, err := engine.Open(2, 2)
//	if err != nil {
//	    return err
//	}
//
//	img, err := s.ApplyEdit(1, 0, []byte{10, 20, 30})
//	data := img.Channels() // r,g,b per pixel, row-major
//
//	s.Undo() // back to the blank canvas
//	s.Redo() // the edit again
//
// ApplyEdit is the only way to change a session's canvas from the outside;
// Paint and Clear are typed variants that share the same write path.
//
// # Strokes
//
// Group several edits into one undo step:
//
//	s.BeginStroke("brush")
//	s.Paint(0, 0, c)
//	s.Paint(1, 0, c)
//	s.EndStroke()
//
//	s.Undo() // Undoes the whole stroke
//
// # Snapshots
//
// Every Grid a session returns is an immutable snapshot. Keeping one is
// cheap (snapshots share storage) and later edits never change it:
//
//	before := s.CurrentImage()
//	s.ApplyEdit(0, 0, []byte{0, 0, 0})
//	// before still shows the old pixel
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrInvalidDimension: canvas size cannot be represented
//   - ErrOutOfBounds: edit coordinates outside the canvas
//   - ErrMalformedColor: color payload is not exactly three bytes
//   - ErrNothingToUndo: cursor already at the oldest snapshot
//   - ErrNothingToRedo: cursor already at the newest snapshot
//   - ErrReadOnly: edit attempted on a read-only session
package engine
