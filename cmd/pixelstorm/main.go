// Package main is the entry point for the pixelstorm pixel editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pixelstorm/internal/config"
	"github.com/dshills/pixelstorm/internal/engine"
	"github.com/dshills/pixelstorm/internal/renderer/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds command-line settings. Zero values mean "not given".
type options struct {
	ConfigPath string
	Width      int
	Height     int
	LogLevel   string
	LogFile    string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	fill, _ := cfg.FillColor()
	palette, _ := cfg.PaletteColors()

	session, err := engine.Open(cfg.Canvas.Width, cfg.Canvas.Height,
		engine.WithFill(fill),
		engine.WithMaxUndoEntries(cfg.History.MaxEntries),
		engine.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	host := terminal.NewHost(screen, session,
		terminal.WithPalette(palette),
		terminal.WithLogger(logger),
	)
	if err := host.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	// Ensure the terminal is restored on all exit paths
	defer host.Shutdown()

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, config.WithWatcherLogger(logger))
		if err != nil {
			logger.Warn("config watching disabled", "path", opts.ConfigPath, "error", err)
		} else {
			defer watcher.Close()
			go forwardPalette(watcher, host, logger)
		}
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		_ = screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}()

	logger.Info("session started", "session", session.ID(),
		"width", session.Width(), "height", session.Height())

	if err := host.Run(); err != nil {
		logger.Error("event loop failed", "error", err)
		return 1
	}
	return 0
}

// forwardPalette applies palette changes from config reloads until the
// watcher is closed.
func forwardPalette(w *config.Watcher, host *terminal.Host, logger *slog.Logger) {
	for {
		select {
		case cfg, ok := <-w.Updates():
			if !ok {
				return
			}
			palette, err := cfg.PaletteColors()
			if err != nil {
				logger.Warn("ignoring reloaded palette", "error", err)
				continue
			}
			host.SetPalette(palette)
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			logger.Warn("config watcher", "error", err)
		}
	}
}

// loadConfig layers the config file, environment, then flags.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, config.EnvPrefix); err != nil {
		return nil, err
	}

	if opts.Width != 0 {
		cfg.Canvas.Width = opts.Width
	}
	if opts.Height != 0 {
		cfg.Canvas.Height = opts.Height
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Logging.File = opts.LogFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the application logger. The terminal owns the screen,
// so logs are discarded unless a log file is configured.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = io.Discard
	closeFn := func() {}

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.Width, "width", 0, "Canvas width in pixels")
	flag.IntVar(&opts.Height, "height", 0, "Canvas height in pixels")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pixelstorm - terminal pixel editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: pixelstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pixelstorm                          Open a 32x32 canvas\n")
		fmt.Fprintf(os.Stderr, "  pixelstorm -width 64 -height 16     Open a 64x16 canvas\n")
		fmt.Fprintf(os.Stderr, "  pixelstorm -c pixelstorm.toml       Use a config file\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  %sWIDTH, %sHEIGHT, %sFILL, %sMAX_UNDO, %sLOG_LEVEL, %sLOG_FILE\n",
			config.EnvPrefix, config.EnvPrefix, config.EnvPrefix,
			config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Pixelstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
