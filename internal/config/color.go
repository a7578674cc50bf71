package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// ParseColor parses a #rgb or #rrggbb hex string.
// The leading '#' is optional.
func ParseColor(s string) (grid.Color, error) {
	s = strings.TrimSpace(s)
	if s != "" && s[0] != '#' {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return grid.Color{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}

	r, g, b := c.Clamped().RGB255()
	return grid.Color{R: r, G: g, B: b}, nil
}
