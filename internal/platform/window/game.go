package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// Game adapts the display list and input source to ebiten.Game.
type Game struct {
	list    *DisplayList
	input   *Input
	sampler sampler
	face    font.Face
	done    <-chan struct{}
	// stop wakes a loop that is waiting out the win banner.
	stop func()
}

// Update samples input and ends the program once the loop has finished.
func (g *Game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	keys, quit := g.sampler.sample()
	g.input.Store(keys)
	if quit || ebiten.IsWindowBeingClosed() {
		g.input.RequestQuit()
		if g.stop != nil {
			g.stop()
		}
	}
	return nil
}

// Draw replays the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	ops, _ := g.list.Frame()
	for _, o := range ops {
		clr := o.color.RGBA()
		switch o.kind {
		case opClear:
			screen.Fill(clr)
		case opRect:
			vector.FillRect(screen,
				float32(o.rect.X), float32(o.rect.Y),
				float32(o.rect.W), float32(o.rect.H),
				clr, false)
		case opCircle:
			vector.DrawFilledCircle(screen, float32(o.x), float32(o.y), float32(o.radius), clr, true)
		case opText:
			if g.face == nil {
				continue
			}
			centreX := o.anchor == core.AnchorTopCenter || o.anchor == core.AnchorCenter
			x, y := textOrigin(g.face, o.text, o.x, o.y, centreX, o.anchor == core.AnchorCenter)
			text.Draw(screen, o.text, g.face, x, y, clr)
		}
	}
}

// Layout keeps the playfield at its native size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return pong.Width, pong.Height
}
