// Package grid provides a persistent, fixed-size image of RGB cells.
//
// A Grid is a value: editing a cell returns a new Grid and leaves the
// original untouched, so any holder of an older Grid keeps seeing the
// pre-edit pixels. Cells are stored row-major (index = y*width + x) in a
// structurally-shared vector, so an edit costs O(log n) allocation instead
// of a full copy of the image.
//
// Basic usage:
//
//	g, _ := grid.New(2, 2)                        // all cells DefaultFill
//	g2, _ := g.Set(1, 0, grid.Color{R: 10, G: 20, B: 30})
//	data := g2.Channels()                         // r,g,b per pixel, row-major
//
// # Errors
//
//   - ErrInvalidDimension: negative size or an unrepresentable cell count
//   - ErrOutOfBounds: coordinates outside [0,width)x[0,height)
//   - ErrMalformedColor: a raw color payload that is not exactly three bytes
package grid
