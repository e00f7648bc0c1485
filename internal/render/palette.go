package render

import (
	"image/color"

	"torus-life/internal/view"
)

// Colours of the board view.
var (
	AliveColor = color.RGBA{R: 119, G: 136, B: 153, A: 255}
	DeadColor  = color.RGBA{R: 47, G: 79, B: 79, A: 255}
	FrameColor = color.RGBA{R: 64, G: 224, B: 208, A: 255}
	SideColor  = Darker(FrameColor)
	Background = color.RGBA{A: 255}
)

// Darker halves the brightness of c, keeping alpha.
func Darker(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// FaceColor picks the fill for a board face.
func FaceColor(k view.FaceKind) color.RGBA {
	switch k {
	case view.FaceAlive:
		return AliveColor
	case view.FaceSide:
		return SideColor
	default:
		return DeadColor
	}
}
