// Package window provides the desktop frontend built on Ebitengine.
//
// The game loop runs on its own goroutine and records each frame into a
// DisplayList; Ebitengine's Draw replays the last presented frame at the
// display's refresh rate.
package window

import (
	"sync"

	"github.com/vovakirdan/pong/internal/core"
)

type opKind int

const (
	opClear opKind = iota
	opRect
	opCircle
	opText
)

// op is one recorded draw call.
type op struct {
	kind   opKind
	rect   core.RectF
	x, y   float64
	radius float64
	text   string
	anchor core.Anchor
	color  core.Color
}

// DisplayList is a core.Renderer that records draw calls. Present swaps
// the recorded frame in for readers; drawing happens on one goroutine and
// Frame may be called from another.
type DisplayList struct {
	building []op

	mu        sync.Mutex
	presented []op
	frames    int
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// Clear implements core.Renderer.
func (d *DisplayList) Clear(c core.Color) {
	d.building = append(d.building[:0], op{kind: opClear, color: c})
}

// DrawRect implements core.Renderer.
func (d *DisplayList) DrawRect(r core.RectF, c core.Color) {
	d.building = append(d.building, op{kind: opRect, rect: r, color: c})
}

// DrawCircle implements core.Renderer.
func (d *DisplayList) DrawCircle(x, y, radius float64, c core.Color) {
	d.building = append(d.building, op{kind: opCircle, x: x, y: y, radius: radius, color: c})
}

// DrawText implements core.Renderer.
func (d *DisplayList) DrawText(text string, x, y float64, anchor core.Anchor, c core.Color) {
	d.building = append(d.building, op{kind: opText, text: text, x: x, y: y, anchor: anchor, color: c})
}

// Present implements core.Renderer.
func (d *DisplayList) Present() {
	d.mu.Lock()
	defer d.mu.Unlock()

	// The old presented slice becomes the next build buffer
	d.presented, d.building = d.building, d.presented[:0]
	d.frames++
}

// Frame returns a copy of the last presented frame and how many frames
// have been presented so far.
func (d *DisplayList) Frame() ([]op, int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]op, len(d.presented))
	copy(out, d.presented)
	return out, d.frames
}
