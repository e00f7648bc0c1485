package render

import (
	"bytes"
	"image/color"
	"testing"

	"torus-life/internal/view"
	"torus-life/pkg/core"
)

type grid [][]bool

func (g grid) Size() core.Size { return core.Size{W: len(g[0]), H: len(g)} }

func (g grid) Alive(r, c int) bool {
	return r >= 0 && r < len(g) && c >= 0 && c < len(g[0]) && g[r][c]
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	g := grid{
		{true, false, false},
		{false, true, true},
	}
	if err := Fprint(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := "▓░░\n░▓▓\n"
	if got := buf.String(); got != want {
		t.Fatalf("Fprint = %q, want %q", got, want)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	g := grid{
		{true, false},
		{false, true},
	}
	buf := make([]byte, 4*4)
	fillBinaryRGBA(buf, g, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	on := []byte{255, 255, 255, 255}
	off := []byte{10, 20, 30, 255}
	want := [][]byte{on, off, off, on}
	for i, px := range want {
		if !bytes.Equal(buf[i*4:i*4+4], px) {
			t.Fatalf("pixel %d = %v, want %v", i, buf[i*4:i*4+4], px)
		}
	}
}

func TestFaceColor(t *testing.T) {
	if FaceColor(view.FaceAlive) != AliveColor || FaceColor(view.FaceDead) != DeadColor {
		t.Fatal("cell faces use the alive/dead colours")
	}
	if got := FaceColor(view.FaceSide); got != (color.RGBA{R: 32, G: 112, B: 104, A: 255}) {
		t.Fatalf("side colour = %v", got)
	}
}
