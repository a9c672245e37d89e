package window

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// fontSize matches the size of scores and the win banner.
const fontSize = 50

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

// loadFace parses the bundled Go Regular font once.
func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		parsed, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("window: parse font: %w", err)
			return
		}
		face = truetype.NewFace(parsed, &truetype.Options{Size: fontSize})
	})
	return face, faceErr
}

// textOrigin returns the baseline origin for drawing s so that (x, y)
// lands on the requested anchor.
func textOrigin(f font.Face, s string, x, y float64, anchorCentre, verticalCentre bool) (int, int) {
	width := font.MeasureString(f, s)
	m := f.Metrics()

	left := fixed.I(int(x))
	if anchorCentre {
		left -= width / 2
	}
	top := fixed.I(int(y))
	if verticalCentre {
		top -= (m.Ascent + m.Descent) / 2
	}
	return left.Round(), (top + m.Ascent).Round()
}
