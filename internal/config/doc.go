// Package config loads pixelstorm settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML (.toml) or YAML (.yaml, .yml) file (Load)
//  3. PIXELSTORM_* environment variables (ApplyEnv)
//
// Example TOML:
//
//	palette = ["#000000", "#ffffff", "#ff0000"]
//
//	[canvas]
//	width = 64
//	height = 48
//	fill = "#c8c8ff"
//
//	[history]
//	max_entries = 500
//
//	[logging]
//	level = "debug"
//
// Colors are hex strings (#rgb or #rrggbb). A Watcher reloads the file when
// it changes on disk.
package config
