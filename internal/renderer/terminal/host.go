package terminal

import (
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pixelstorm/internal/engine"
	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// strokeName labels undo entries created by a mouse drag.
const strokeName = "Stroke"

// HostOption configures a Host.
type HostOption func(*Host)

// WithPalette sets the brush colors. An empty palette is ignored.
func WithPalette(colors []grid.Color) HostOption {
	return func(h *Host) {
		if len(colors) > 0 {
			h.palette = slices.Clone(colors)
		}
	}
}

// WithLogger sets the host logger.
func WithLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Host runs the interactive event loop for one session.
type Host struct {
	mu sync.Mutex

	screen  tcell.Screen
	session *engine.Session
	view    *View
	logger  *slog.Logger

	palette  []grid.Color
	selected int
	painting bool
}

// NewHost creates a host for session on screen.
// The screen is not initialized until Init.
func NewHost(screen tcell.Screen, session *engine.Session, opts ...HostOption) *Host {
	h := &Host{
		screen:  screen,
		session: session,
		view:    NewView(screen),
		logger:  slog.Default(),
		palette: []grid.Color{{}, {R: 255, G: 255, B: 255}},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init prepares the screen and draws the first frame.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return err
	}
	h.screen.EnableMouse()
	h.screen.HideCursor()
	h.Draw()
	return nil
}

// Shutdown restores the terminal.
func (h *Host) Shutdown() {
	h.screen.Fini()
}

// Run processes events until the user quits or the screen is finalized.
func (h *Host) Run() error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !h.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one event and redraws.
// It returns false when the event asks the host to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if !h.handleKey(e) {
			return false
		}
	case *tcell.EventMouse:
		h.handleMouse(e)
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventInterrupt:
		// Posted by SetPalette to trigger a redraw
	default:
		return true
	}

	h.Draw()
	return true
}

func (h *Host) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlR:
		h.redo()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := e.Rune(); {
	case r == 'q':
		return false
	case r == 'u':
		h.undo()
	case r == 'r':
		h.redo()
	case r >= '1' && r <= '9':
		h.selectColor(int(r - '1'))
	}
	return true
}

func (h *Host) handleMouse(e *tcell.EventMouse) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if e.Buttons()&tcell.Button1 == 0 {
		if h.painting {
			h.painting = false
			h.session.EndStroke()
		}
		return
	}

	if !h.painting {
		h.painting = true
		h.session.BeginStroke(strokeName)
	}

	x, y := h.view.PixelAt(e.Position())
	if _, err := h.session.Paint(x, y, h.palette[h.selected]); err != nil {
		if errors.Is(err, engine.ErrOutOfBounds) || errors.Is(err, engine.ErrReadOnly) {
			h.logger.Debug("paint ignored", "x", x, "y", y, "error", err)
			return
		}
		h.logger.Warn("paint failed", "x", x, "y", y, "error", err)
	}
}

func (h *Host) undo() {
	h.mu.Lock()
	h.painting = false
	h.mu.Unlock()

	if err := h.session.Undo(); err != nil {
		h.logger.Debug("undo ignored", "error", err)
	}
}

func (h *Host) redo() {
	h.mu.Lock()
	h.painting = false
	h.mu.Unlock()

	if err := h.session.Redo(); err != nil {
		h.logger.Debug("redo ignored", "error", err)
	}
}

func (h *Host) selectColor(i int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if i < len(h.palette) {
		h.selected = i
	}
}

// SetPalette replaces the brush colors, keeping the selection when it
// is still in range. Safe to call from another goroutine.
func (h *Host) SetPalette(colors []grid.Color) {
	if len(colors) == 0 {
		return
	}

	h.mu.Lock()
	h.palette = slices.Clone(colors)
	if h.selected >= len(h.palette) {
		h.selected = 0
	}
	h.mu.Unlock()

	h.logger.Info("palette updated", "colors", len(colors))
	_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort redraw
}

// Selected returns the current brush color.
func (h *Host) Selected() grid.Color {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.palette[h.selected]
}

// Draw renders the current snapshot and status line.
func (h *Host) Draw() {
	img := h.session.CurrentImage()

	h.mu.Lock()
	selected := h.selected
	swatch := h.palette[selected]
	h.mu.Unlock()

	h.view.DrawGrid(img)
	h.view.DrawStatus(img.Height(), StatusLine(img.Width(), img.Height(), selected,
		h.session.UndoCount(), h.session.RedoCount()), swatch)
	h.screen.Show()
}
