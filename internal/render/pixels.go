package render

import (
	"image/color"

	"torus-life/pkg/core"
)

// fillBinaryRGBA converts live/dead cells into RGBA pixels in buf, one pixel
// per cell in row-major order.
func fillBinaryRGBA(buf []byte, cells core.Cells, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	s := cells.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			base := (y*s.W + x) * 4
			if cells.Alive(y, x) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
