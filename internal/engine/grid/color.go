package grid

import "fmt"

// Color is an RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// DefaultFill is the color of every cell in a new grid.
var DefaultFill = Color{R: 200, G: 200, B: 255}

// ColorFromBytes builds a Color from a raw r,g,b triple.
func ColorFromBytes(rgb []byte) (Color, error) {
	if len(rgb) != 3 {
		return Color{}, fmt.Errorf("%w: want 3 channels, got %d", ErrMalformedColor, len(rgb))
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Bytes returns the color as an r,g,b triple.
func (c Color) Bytes() []byte {
	return []byte{c.R, c.G, c.B}
}

// Hex returns the color in #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
