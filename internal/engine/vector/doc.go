// Package vector provides an immutable, structurally-shared vector.
//
// A Vector is a B+ tree whose leaves hold runs of elements and whose
// internal nodes cache the element count of each child. Updates copy only
// the nodes on the path from the root to the affected leaf; every other
// node is shared between the old and the new vector.
//
// Key features:
//   - O(log n) indexed reads and single-element updates
//   - Immutable operations return new vectors; originals are never modified
//   - Bulk construction shares identical subtrees (see Repeat)
//   - Thread-safe for concurrent read access
//
// Basic usage:
//
//	v := vector.Repeat(0, 1024)
//	w, _ := v.Set(10, 42) // v is unchanged
//	x, _ := w.Get(10)     // 42
//
// The vector has a fixed length once built. It is the backing store for
// image grids, where every edit replaces exactly one element.
package vector
