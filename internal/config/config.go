package config

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dshills/pixelstorm/internal/engine/grid"
	"github.com/dshills/pixelstorm/internal/engine/history"
)

// Config holds all pixelstorm settings.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas" yaml:"canvas"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Palette []string      `toml:"palette" yaml:"palette"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// CanvasConfig describes the image opened at startup.
type CanvasConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Fill   string `toml:"fill" yaml:"fill"`
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// LoggingConfig configures the application log.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// DefaultPalette is the brush palette used when none is configured.
var DefaultPalette = []string{
	"#000000", "#ffffff", "#ff0000",
	"#00ff00", "#0000ff", "#ffff00",
	"#ff00ff", "#00ffff", "#c8c8ff",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  32,
			Height: 32,
			Fill:   grid.DefaultFill.Hex(),
		},
		History: HistoryConfig{
			MaxEntries: history.DefaultMaxEntries,
		},
		Palette: slices.Clone(DefaultPalette),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: history.max_entries %d must be positive", ErrInvalidConfig, c.History.MaxEntries)
	}
	if _, err := c.FillColor(); err != nil {
		return err
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// FillColor returns the parsed canvas fill color.
func (c *Config) FillColor() (grid.Color, error) {
	col, err := ParseColor(c.Canvas.Fill)
	if err != nil {
		return grid.Color{}, fmt.Errorf("canvas.fill: %w", err)
	}
	return col, nil
}

// PaletteColors returns the parsed palette.
// An empty palette yields DefaultPalette.
func (c *Config) PaletteColors() ([]grid.Color, error) {
	src := c.Palette
	if len(src) == 0 {
		src = DefaultPalette
	}

	colors := make([]grid.Color, 0, len(src))
	for i, s := range src {
		col, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return level, nil
}
