//go:build ebiten

package render

import (
	"image"
	"image/color"

	"torus-life/internal/view"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxQuadsPerBatch keeps vertex indices within uint16.
const maxQuadsPerBatch = 65535 / 4

// BoardRenderer draws the cells as a projected slab seen through a camera.
type BoardRenderer struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewBoardRenderer allocates the solid source image used for filled quads.
func NewBoardRenderer() *BoardRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &BoardRenderer{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw paints cells onto dst from the camera's current pose.
func (br *BoardRenderer) Draw(dst *ebiten.Image, cells core.Cells, cam *view.Camera) {
	b := dst.Bounds()
	proj := cam.Projector(b.Dx(), b.Dy())
	faces := proj.ProjectFaces(view.Board(cells))

	for start := 0; start < len(faces); start += maxQuadsPerBatch {
		end := min(start+maxQuadsPerBatch, len(faces))
		br.fill(dst, faces[start:end])
	}

	for _, e := range view.Frame(cells.Size()) {
		a, c := proj.Project(e.A), proj.Project(e.B)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(c.X), float32(c.Y), 1, FrameColor, true)
	}
}

func (br *BoardRenderer) fill(dst *ebiten.Image, faces []view.ProjectedFace) {
	br.vertices = br.vertices[:0]
	br.indices = br.indices[:0]
	for i, f := range faces {
		clr := FaceColor(f.Kind)
		r := float32(clr.R) / 255
		g := float32(clr.G) / 255
		bl := float32(clr.B) / 255
		for _, p := range f.Corners {
			br.vertices = append(br.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: bl, ColorA: 1,
			})
		}
		base := uint16(i * 4)
		br.indices = append(br.indices, base, base+1, base+2, base, base+2, base+3)
	}
	dst.DrawTriangles(br.vertices, br.indices, br.white, nil)
}
