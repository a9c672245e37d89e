package pong

import (
	"strconv"

	"github.com/vovakirdan/pong/internal/core"
)

// Divider dash layout
const (
	dashWidth = 10
	dashStart = 10
)

// Draw renders the current frame: background, scores, paddles, the dashed
// center line and the ball. It does not Present.
func (rc *RoundController) Draw(r core.Renderer) {
	r.Clear(core.ColorBlack)

	r.DrawText(strconv.Itoa(rc.score.Left), rc.width/4, 20, core.AnchorTopCenter, core.ColorWhite)
	r.DrawText(strconv.Itoa(rc.score.Right), rc.width*3/4, 20, core.AnchorTopCenter, core.ColorWhite)

	r.DrawRect(rc.left.Rect(), core.ColorWhite)
	r.DrawRect(rc.right.Rect(), core.ColorWhite)

	for _, dash := range dividerDashes(rc.width, rc.height) {
		r.DrawRect(dash, core.ColorWhite)
	}

	r.DrawCircle(rc.ball.X, rc.ball.Y, rc.ball.Radius, core.ColorWhite)
}

// DrawBanner renders the win message over the current frame.
func (rc *RoundController) DrawBanner(r core.Renderer) {
	if rc.state != StateMatchWon {
		return
	}
	r.DrawText(rc.Banner(), rc.width/2, rc.height/2, core.AnchorCenter, core.ColorWhite)
}

// dividerDashes returns the center line segments, one every tenth of the
// height starting at y=10, skipping odd rows.
func dividerDashes(width, height float64) []core.RectF {
	h := int(height)
	step := h / 10
	if step <= 0 {
		return nil
	}
	dashes := make([]core.RectF, 0, 10)
	for y := dashStart; y < h; y += step {
		if y%2 == 1 {
			continue
		}
		dashes = append(dashes, core.NewRectF(width/2-dashWidth/2, float64(y), dashWidth, float64(h/20)))
	}
	return dashes
}
