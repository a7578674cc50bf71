// Package terminal hosts a pixelstorm session on a tcell screen.
//
// The host is a consumer of the engine's public contract: it draws
// Grid.Channels() and turns mouse and key events into Session calls.
// It owns no image semantics of its own.
//
// Layout:
//
//	┌──────────────────────────┐
//	│ canvas: 2 columns/pixel  │
//	│ ...                      │
//	├──────────────────────────┤
//	│ status line              │
//	└──────────────────────────┘
//
// Controls:
//
//	left button   paint (a drag is one undo step)
//	u             undo
//	r, Ctrl-R     redo
//	1..9          select palette color
//	q, Esc        quit
//
// Usage:
//
//	screen, _ := tcell.NewScreen()
//	host := terminal.NewHost(screen, session, terminal.WithPalette(colors))
//	if err := host.Init(); err != nil { ... }
//	defer host.Shutdown()
//	err := host.Run()
package terminal
