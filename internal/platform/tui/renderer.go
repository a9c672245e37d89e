package tui

import (
	"math"
	"sync"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

const blockRune = '█'

// ScreenRenderer draws the playfield into a character Screen, scaling
// playfield pixels to cells. Present publishes the rendered frame to a
// single-slot mailbox; a frame nobody picked up is replaced by the next.
//
// Drawing happens on the loop goroutine. Resize may be called from any
// goroutine and takes effect at the next Clear.
type ScreenRenderer struct {
	screen *core.Screen
	frames chan string

	mu       sync.Mutex
	pendingW int
	pendingH int
}

// NewScreenRenderer creates a renderer for a width x height cell area.
func NewScreenRenderer(width, height int) *ScreenRenderer {
	width, height = core.Max(width, 1), core.Max(height, 1)
	return &ScreenRenderer{
		screen:   core.NewScreen(width, height),
		frames:   make(chan string, 1),
		pendingW: width,
		pendingH: height,
	}
}

// Frames returns the mailbox that receives presented frames. It is closed
// by Close.
func (r *ScreenRenderer) Frames() <-chan string {
	return r.frames
}

// Close closes the frame mailbox. No drawing may follow.
func (r *ScreenRenderer) Close() {
	close(r.frames)
}

// Resize sets the cell area used from the next frame on.
func (r *ScreenRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pendingW, r.pendingH = core.Max(width, 1), core.Max(height, 1)
}

// Screen returns the buffer being drawn. Tests only read it between frames.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

func (r *ScreenRenderer) scale() (sx, sy float64) {
	return float64(r.screen.Width()) / pong.Width, float64(r.screen.Height()) / pong.Height
}

// Clear implements core.Renderer. The terminal background stands in for
// the fill color.
func (r *ScreenRenderer) Clear(core.Color) {
	r.mu.Lock()
	w, h := r.pendingW, r.pendingH
	r.mu.Unlock()

	r.screen.Resize(w, h)
	r.screen.Clear()
}

// DrawRect implements core.Renderer. Every touched cell is filled, so
// thin shapes keep at least one cell.
func (r *ScreenRenderer) DrawRect(rect core.RectF, c core.Color) {
	sx, sy := r.scale()
	x0, x1 := cellSpan(rect.X*sx, rect.Right()*sx)
	y0, y1 := cellSpan(rect.Y*sy, rect.Bottom()*sy)
	r.screen.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Rune: blockRune, Color: c})
}

// DrawCircle implements core.Renderer.
func (r *ScreenRenderer) DrawCircle(x, y, radius float64, c core.Color) {
	sx, sy := r.scale()
	cell := core.Cell{Rune: blockRune, Color: c}

	cx, cy := x*sx, y*sy
	rx, ry := radius*sx, radius*sy
	x0, x1 := cellSpan(cx-rx, cx+rx)
	y0, y1 := cellSpan(cy-ry, cy+ry)

	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			dx := (float64(col) + 0.5 - cx) / rx
			dy := (float64(row) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				r.screen.SetCell(col, row, cell)
			}
		}
	}
	// Small balls still get a cell
	r.screen.SetCell(int(math.Floor(cx)), int(math.Floor(cy)), cell)
}

// DrawText implements core.Renderer. Text keeps its character size and
// only its anchor point is scaled.
func (r *ScreenRenderer) DrawText(text string, x, y float64, anchor core.Anchor, c core.Color) {
	sx, sy := r.scale()
	n := len([]rune(text))

	col := int(math.Floor(x * sx))
	row := int(math.Floor(y * sy))
	if anchor == core.AnchorTopCenter || anchor == core.AnchorCenter {
		col = int(math.Round(x*sx)) - n/2
	}
	r.screen.DrawTextColor(core.Max(col, 0), row, text, c)
}

// Present implements core.Renderer.
func (r *ScreenRenderer) Present() {
	frame := RenderScreen(r.screen)

	select {
	case r.frames <- frame:
		return
	default:
	}
	// Drop the stale frame, then retry
	select {
	case <-r.frames:
	default:
	}
	select {
	case r.frames <- frame:
	default:
	}
}

// cellSpan converts a scaled [lo, hi) range to whole cells, never empty.
func cellSpan(lo, hi float64) (int, int) {
	start := int(math.Floor(lo))
	end := int(math.Ceil(hi))
	if end <= start {
		end = start + 1
	}
	return start, end
}
