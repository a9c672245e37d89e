package pong

// Ball is the ball. X, Y is the center.
type Ball struct {
	X, Y   float64
	Radius float64
	XVel   float64
	YVel   float64
	MaxVel float64

	originX, originY float64
}

// NewBall creates a ball serving to the right at full speed.
func NewBall(x, y, radius float64) *Ball {
	return &Ball{
		X:       x,
		Y:       y,
		Radius:  radius,
		XVel:    BallMaxVel,
		MaxVel:  BallMaxVel,
		originX: x,
		originY: y,
	}
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.X += b.XVel
	b.Y += b.YVel
}

// Reset recenters the ball, stops vertical motion and flips the serve.
func (b *Ball) Reset() {
	b.X = b.originX
	b.Y = b.originY
	b.YVel = 0
	b.XVel = -b.XVel
}
