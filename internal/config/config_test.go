package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/pixelstorm/internal/engine/grid"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	fill, err := cfg.FillColor()
	if err != nil {
		t.Fatalf("FillColor failed: %v", err)
	}
	if fill != grid.DefaultFill {
		t.Errorf("FillColor() = %v, want %v", fill, grid.DefaultFill)
	}

	palette, _ := cfg.PaletteColors()
	if len(palette) != len(DefaultPalette) {
		t.Errorf("palette has %d colors, want %d", len(palette), len(DefaultPalette))
	}

	// Defaults are independent copies
	cfg.Palette[0] = "#123456"
	if DefaultPalette[0] == "#123456" {
		t.Error("Default() shares the DefaultPalette slice")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"negative height", func(c *Config) { c.Canvas.Height = -4 }},
		{"zero history", func(c *Config) { c.History.MaxEntries = 0 }},
		{"bad fill", func(c *Config) { c.Canvas.Fill = "blue-ish" }},
		{"bad palette", func(c *Config) { c.Palette = []string{"#000000", "nope"} }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    grid.Color
		wantErr bool
	}{
		{"#000000", grid.Color{}, false},
		{"#ffffff", grid.Color{R: 255, G: 255, B: 255}, false},
		{"#c8c8ff", grid.Color{R: 200, G: 200, B: 255}, false},
		{"C8C8FF", grid.Color{R: 200, G: 200, B: 255}, false},
		{"#f00", grid.Color{R: 255}, false},
		{"  #0a0b0c ", grid.Color{R: 10, G: 11, B: 12}, false},
		{"", grid.Color{}, true},
		{"#12345", grid.Color{}, true},
		{"red", grid.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidConfig", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "pixelstorm.toml", `
palette = ["#000000", "#ff0000"]

[canvas]
width = 64
fill = "#102030"

[history]
max_entries = 50

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Canvas.Width != 64 {
		t.Errorf("Width = %d, want 64", cfg.Canvas.Width)
	}
	if cfg.Canvas.Height != 32 {
		t.Errorf("Height = %d, want default 32", cfg.Canvas.Height)
	}
	if cfg.History.MaxEntries != 50 {
		t.Errorf("MaxEntries = %d, want 50", cfg.History.MaxEntries)
	}
	if fill, _ := cfg.FillColor(); fill != (grid.Color{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("FillColor() = %v, want #102030", fill)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("Palette = %v, want 2 colors", cfg.Palette)
	}
	if level, _ := cfg.LogLevel(); level != slog.LevelDebug {
		t.Errorf("LogLevel() = %v, want debug", level)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeFile(t, "pixelstorm"+ext, `
canvas:
  height: 10
palette:
  - "#00ff00"
history:
  max_entries: 7
logging:
  level: warn
  file: /tmp/pixelstorm.log
`)

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Canvas.Width != 32 || cfg.Canvas.Height != 10 {
				t.Errorf("canvas = %dx%d, want 32x10", cfg.Canvas.Width, cfg.Canvas.Height)
			}
			if cfg.History.MaxEntries != 7 {
				t.Errorf("MaxEntries = %d, want 7", cfg.History.MaxEntries)
			}
			palette, err := cfg.PaletteColors()
			if err != nil || len(palette) != 1 || palette[0] != (grid.Color{G: 255}) {
				t.Errorf("PaletteColors() = %v, %v", palette, err)
			}
			if cfg.Logging.File != "/tmp/pixelstorm.log" {
				t.Errorf("Logging.File = %q", cfg.Logging.File)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.Canvas.Width != Default().Canvas.Width {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Load(\"\") = %v, %v", cfg, err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "pixelstorm.ini", "width=3")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.ini) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadParseError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad.toml", "[canvas\nwidth = "},
		{"bad.yaml", "canvas: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.content)
			_, err := Load(path)

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Load error = %v, want *ParseError", err)
			}
			if perr.Path != path {
				t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
			}
			if perr.Unwrap() == nil {
				t.Error("ParseError should wrap the decoder error")
			}
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("[canvas]\nheight = 5\n"), FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if cfg.Canvas.Height != 5 {
		t.Errorf("Height = %d, want 5", cfg.Canvas.Height)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", FormatTOML, false},
		{"a.TOML", FormatTOML, false},
		{"dir/a.yaml", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.json", 0, true},
		{"noext", 0, true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v", tt.path, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PIXELSTORM_WIDTH", "12")
	t.Setenv("PIXELSTORM_HEIGHT", "8")
	t.Setenv("PIXELSTORM_FILL", "#010203")
	t.Setenv("PIXELSTORM_MAX_UNDO", "20")
	t.Setenv("PIXELSTORM_LOG_LEVEL", "error")

	cfg := Default()
	if err := ApplyEnv(cfg, EnvPrefix); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Canvas.Width != 12 || cfg.Canvas.Height != 8 {
		t.Errorf("canvas = %dx%d, want 12x8", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Fill != "#010203" {
		t.Errorf("Fill = %q", cfg.Canvas.Fill)
	}
	if cfg.History.MaxEntries != 20 {
		t.Errorf("MaxEntries = %d, want 20", cfg.History.MaxEntries)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %q, want error", cfg.Logging.Level)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Setenv("PIXELSTORM_WIDTH", "wide")

	cfg := Default()
	if err := ApplyEnv(cfg, EnvPrefix); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ApplyEnv error = %v, want ErrInvalidConfig", err)
	}
}
