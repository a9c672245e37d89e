package pong

// Contact reports what the ball touched during one collision pass.
type Contact uint8

const (
	ContactWall Contact = 1 << iota
	ContactLeftPaddle
	ContactRightPaddle

	ContactNone Contact = 0
)

// Has returns true if c includes all bits of other.
func (c Contact) Has(other Contact) bool {
	return other != 0 && c&other == other
}

// Resolve applies wall and paddle collisions to the ball after it moved.
// Only the paddle the ball is travelling towards is tested, and only its
// front face: no position correction is made.
func Resolve(b *Ball, left, right *Paddle, height float64) Contact {
	var contact Contact

	if b.Y+b.Radius >= height || b.Y-b.Radius <= 0 {
		b.YVel = -b.YVel
		contact |= ContactWall
	}

	if b.XVel < 0 {
		if spans(left, b.Y) && b.X-b.Radius <= left.X+left.Width {
			deflect(b, left)
			contact |= ContactLeftPaddle
		}
	} else {
		if spans(right, b.Y) && b.X+b.Radius >= right.X {
			deflect(b, right)
			contact |= ContactRightPaddle
		}
	}

	return contact
}

// spans reports whether y lies within the paddle's vertical extent.
func spans(p *Paddle, y float64) bool {
	return y >= p.Y && y <= p.Y+p.Height
}

// deflect reverses the ball and maps the hit offset from the paddle middle
// linearly onto vertical speed, reaching MaxVel at the paddle ends.
func deflect(b *Ball, p *Paddle) {
	b.XVel = -b.XVel

	diff := p.Rect().MidY() - b.Y
	reduction := (p.Height / 2) / b.MaxVel
	b.YVel = -(diff / reduction)
}
