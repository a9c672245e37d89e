package core

import (
	"context"
	"time"
)

// Anchor says which point of a text block the DrawText position refers to.
type Anchor int

const (
	AnchorTopLeft   Anchor = iota
	AnchorTopCenter        // x is the horizontal middle, y the top
	AnchorCenter           // x and y are the middle of the block
)

// Renderer draws one frame of playfield geometry. Coordinates are playfield
// pixels; frontends scale them to their own surface.
type Renderer interface {
	Clear(c Color)
	DrawRect(r RectF, c Color)
	DrawCircle(x, y, radius float64, c Color)
	DrawText(text string, x, y float64, anchor Anchor, c Color)
	// Present publishes the frame drawn since the last Clear.
	Present()
}

// InputSource is read once per frame by the game loop.
type InputSource interface {
	PollEvents() Events
	KeyState() KeyState
}

// Clock paces the game loop.
type Clock interface {
	// Tick blocks for the rest of the frame budget at fps frames per second
	// and returns the time since the previous Tick.
	Tick(fps int) time.Duration
	// Delay blocks for d or until ctx is done.
	Delay(ctx context.Context, d time.Duration) error
}
