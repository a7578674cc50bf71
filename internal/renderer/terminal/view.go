package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/pixelstorm/internal/engine/grid"
)

// PixelWidth is the number of terminal columns used per pixel.
// Two columns keep pixels roughly square in most fonts.
const PixelWidth = 2

// View draws canvas snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
	status tcell.Style
}

// NewView creates a view drawing onto screen.
func NewView(screen tcell.Screen) *View {
	return &View{
		screen: screen,
		status: tcell.StyleDefault.Reverse(true),
	}
}

// DrawGrid paints img at the top-left corner of the screen.
// Pixels are read from the row-major r,g,b channel export.
func (v *View) DrawGrid(img grid.Grid) {
	channels := img.Channels()
	screenW, screenH := v.screen.Size()

	for y := 0; y < img.Height() && y < screenH; y++ {
		for x := 0; x < img.Width(); x++ {
			sx := x * PixelWidth
			if sx >= screenW {
				break
			}
			i := 3 * (y*img.Width() + x)
			style := tcell.StyleDefault.Background(rgb(channels[i], channels[i+1], channels[i+2]))
			for dx := 0; dx < PixelWidth && sx+dx < screenW; dx++ {
				v.screen.SetContent(sx+dx, y, ' ', nil, style)
			}
		}
	}
}

// DrawStatus writes line on the row below a canvas of the given height,
// followed by a swatch of the selected color.
func (v *View) DrawStatus(row int, line string, swatch grid.Color) {
	screenW, screenH := v.screen.Size()
	if row < 0 || row >= screenH {
		return
	}

	x := 0
	for _, r := range line {
		if x >= screenW {
			return
		}
		v.screen.SetContent(x, row, r, nil, v.status)
		x++
	}

	x++
	swatchStyle := tcell.StyleDefault.Background(toTcell(swatch))
	for dx := 0; dx < PixelWidth && x+dx < screenW; dx++ {
		v.screen.SetContent(x+dx, row, ' ', nil, swatchStyle)
	}
	x += PixelWidth

	// Clear leftovers from a longer previous status
	for ; x < screenW; x++ {
		v.screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
	}
}

// PixelAt maps a screen cell to canvas coordinates.
// The result may lie outside the canvas; the session validates it.
func (v *View) PixelAt(sx, sy int) (x, y int) {
	if sx < 0 {
		return -1, sy
	}
	return sx / PixelWidth, sy
}

// StatusLine formats the status text for a session.
func StatusLine(width, height, selected, undo, redo int) string {
	return fmt.Sprintf(" %dx%d  color %d  undo %d  redo %d ", width, height, selected+1, undo, redo)
}

func toTcell(c grid.Color) tcell.Color {
	return rgb(c.R, c.G, c.B)
}

func rgb(r, g, b byte) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
