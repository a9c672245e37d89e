package core

import "image/color"

// Color is a logical drawing color. Frontends translate it into terminal
// styles or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
)

// RGBA returns the color as an RGBA value for pixel frontends.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorBlack:
		return color.RGBA{0, 0, 0, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}
