package render

import (
	"bufio"
	"io"

	"torus-life/pkg/core"
)

// Glyphs used by the text printer.
const (
	AliveGlyph = '▓'
	DeadGlyph  = '░'
)

// Fprint writes one line per row of cells, alive as AliveGlyph and dead as
// DeadGlyph.
func Fprint(w io.Writer, cells core.Cells) error {
	bw := bufio.NewWriter(w)
	s := cells.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if cells.Alive(y, x) {
				bw.WriteRune(AliveGlyph)
			} else {
				bw.WriteRune(DeadGlyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
