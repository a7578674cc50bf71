package grid

import (
	"fmt"
	"math"

	"github.com/dshills/pixelstorm/internal/engine/vector"
)

// MaxCells is the largest cell count a grid may hold.
// It keeps the flattened channel data addressable.
const MaxCells = math.MaxInt / 3

// Grid is an immutable width x height image.
// Operations return new Grid values; the original is never modified.
// The zero Grid is a valid 0x0 image.
type Grid struct {
	width  int
	height int
	cells  vector.Vector[Color]
}

// New creates a width x height grid with every cell set to the fill color.
func New(width, height int, opts ...Option) (Grid, error) {
	o := options{fill: DefaultFill}
	for _, opt := range opts {
		opt(&o)
	}

	if width < 0 || height < 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width != 0 && height > MaxCells/width {
		return Grid{}, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimension, width, height, MaxCells)
	}

	return Grid{
		width:  width,
		height: height,
		cells:  vector.Repeat(o.fill, width*height),
	}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Cells returns the number of cells (width * height).
func (g Grid) Cells() int {
	return g.cells.Len()
}

// InBounds reports whether (x, y) addresses a cell.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g Grid) index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// At returns the color of the cell at (x, y).
func (g Grid) At(x, y int) (Color, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return Color{}, err
	}
	c, _ := g.cells.Get(idx)
	return c, nil
}

// Set returns a new grid with the cell at (x, y) replaced by c.
// The receiver is unchanged. Out-of-range coordinates return ErrOutOfBounds
// and the zero Grid.
func (g Grid) Set(x, y int, c Color) (Grid, error) {
	idx, err := g.index(x, y)
	if err != nil {
		return Grid{}, err
	}

	cells, _ := g.cells.Set(idx, c)
	return Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}, nil
}

// SetRGB is Set for a raw r,g,b payload.
// The payload must hold exactly three channel values.
func (g Grid) SetRGB(x, y int, rgb []byte) (Grid, error) {
	c, err := ColorFromBytes(rgb)
	if err != nil {
		return Grid{}, err
	}
	return g.Set(x, y, c)
}

// Fill returns a grid of the same size with every cell set to c.
func (g Grid) Fill(c Color) Grid {
	return Grid{
		width:  g.width,
		height: g.height,
		cells:  vector.Repeat(c, g.width*g.height),
	}
}

// Channels returns the r,g,b bytes of every cell in row-major order.
// The result has length 3*width*height, with no padding and no alpha.
func (g Grid) Channels() []byte {
	out := make([]byte, 0, 3*g.cells.Len())
	g.cells.Each(func(_ int, c Color) bool {
		out = append(out, c.R, c.G, c.B)
		return true
	})
	return out
}

// Row returns the colors of row y.
func (g Grid) Row(y int) ([]Color, error) {
	if y < 0 || y >= g.height {
		return nil, fmt.Errorf("%w: row %d in %dx%d", ErrOutOfBounds, y, g.width, g.height)
	}

	row := make([]Color, g.width)
	start := y * g.width
	for x := range row {
		row[x], _ = g.cells.Get(start + x)
	}
	return row, nil
}

// Equal returns true if both grids have the same size and pixels.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	return g.cells.Equals(other.cells, func(a, b Color) bool { return a == b })
}
