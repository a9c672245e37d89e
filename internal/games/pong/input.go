package pong

import "github.com/vovakirdan/pong/internal/core"

// MovePaddles applies held keys to both paddles. A move is taken only when
// it keeps the paddle inside [0, height]. Up and down are checked one after
// the other, so holding both moves up and then back down.
func MovePaddles(keys core.KeyState, left, right *Paddle, height float64) {
	movePaddle(left, keys.Held(core.KeyLeftUp), keys.Held(core.KeyLeftDown), height)
	movePaddle(right, keys.Held(core.KeyRightUp), keys.Held(core.KeyRightDown), height)
}

func movePaddle(p *Paddle, up, down bool, height float64) {
	if up && p.Y-p.Vel >= 0 {
		p.Move(Up)
	}
	if down && p.Y+p.Vel+p.Height <= height {
		p.Move(Down)
	}
}
