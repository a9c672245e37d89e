package pong

import "github.com/vovakirdan/pong/internal/core"

// Direction is a vertical paddle move.
type Direction int

const (
	Up Direction = iota
	Down
)

// Paddle is a player's bat. X, Y is the top-left corner.
type Paddle struct {
	X, Y   float64
	Width  float64
	Height float64
	Vel    float64

	originX, originY float64
}

// NewPaddle creates a paddle at (x, y) that Reset returns to.
func NewPaddle(x, y, width, height float64) *Paddle {
	return &Paddle{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Vel:     PaddleVel,
		originX: x,
		originY: y,
	}
}

// Move shifts the paddle by its velocity. Bounds are the caller's job.
func (p *Paddle) Move(dir Direction) {
	if dir == Up {
		p.Y -= p.Vel
	} else {
		p.Y += p.Vel
	}
}

// Reset puts the paddle back where it was created.
func (p *Paddle) Reset() {
	p.X = p.originX
	p.Y = p.originY
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}
