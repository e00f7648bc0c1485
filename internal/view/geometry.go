package view

import (
	"math"
	"sort"

	"torus-life/pkg/core"
)

// Board depth range; cells are slabs between the two planes.
const (
	FrontDepth = -0.8
	BackDepth  = -1.0

	eyeDistance = 10.0
	orthoExtent = 2.0
)

// Vec3 is a point in board space. The board occupies [-1, 1] on X and Y.
type Vec3 struct{ X, Y, Z float64 }

// FaceKind tells a renderer how to colour a face.
type FaceKind int

const (
	FaceDead FaceKind = iota
	FaceAlive
	FaceSide
)

// Face is a planar quad with corners in winding order.
type Face struct {
	Corners [4]Vec3
	Kind    FaceKind
}

// Edge is a line segment of the board frame or cell grid.
type Edge struct{ A, B Vec3 }

// Board builds the faces for every cell of c plus the four side walls of the
// slab. Rows advance along X and columns along Y.
func Board(c core.Cells) []Face {
	s := c.Size()
	if s.W <= 0 || s.H <= 0 {
		return nil
	}
	xs := 2.0 / float64(s.H)
	ys := 2.0 / float64(s.W)
	faces := make([]Face, 0, 2*s.W*s.H+4)
	faces = append(faces, sides(Vec3{-1, -1, FrontDepth}, Vec3{1, 1, BackDepth})...)
	for r := 0; r < s.H; r++ {
		for col := 0; col < s.W; col++ {
			kind := FaceDead
			if c.Alive(r, col) {
				kind = FaceAlive
			}
			x0 := float64(r)*xs - 1
			y0 := float64(col)*ys - 1
			x1, y1 := x0+xs, y0+ys
			for _, z := range [2]float64{FrontDepth, BackDepth} {
				faces = append(faces, Face{Kind: kind, Corners: [4]Vec3{
					{x0, y0, z}, {x0, y1, z}, {x1, y1, z}, {x1, y0, z},
				}})
			}
		}
	}
	return faces
}

func sides(lo, hi Vec3) []Face {
	return []Face{
		{Kind: FaceSide, Corners: [4]Vec3{{lo.X, lo.Y, hi.Z}, {lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {hi.X, lo.Y, hi.Z}}},
		{Kind: FaceSide, Corners: [4]Vec3{{lo.X, hi.Y, hi.Z}, {hi.X, hi.Y, hi.Z}, {hi.X, hi.Y, lo.Z}, {lo.X, hi.Y, lo.Z}}},
		{Kind: FaceSide, Corners: [4]Vec3{{hi.X, lo.Y, lo.Z}, {hi.X, lo.Y, hi.Z}, {hi.X, hi.Y, hi.Z}, {hi.X, hi.Y, lo.Z}}},
		{Kind: FaceSide, Corners: [4]Vec3{{lo.X, lo.Y, lo.Z}, {lo.X, lo.Y, hi.Z}, {lo.X, hi.Y, hi.Z}, {lo.X, hi.Y, lo.Z}}},
	}
}

// Frame returns the twelve edges of the board slab and the grid lines on its
// front face.
func Frame(s core.Size) []Edge {
	lo := Vec3{-1, -1, FrontDepth}
	hi := Vec3{1, 1, BackDepth}
	edges := []Edge{
		{Vec3{lo.X, lo.Y, lo.Z}, Vec3{hi.X, lo.Y, lo.Z}},
		{Vec3{lo.X, lo.Y, lo.Z}, Vec3{lo.X, hi.Y, lo.Z}},
		{Vec3{lo.X, lo.Y, lo.Z}, Vec3{lo.X, lo.Y, hi.Z}},
		{Vec3{hi.X, hi.Y, hi.Z}, Vec3{lo.X, hi.Y, hi.Z}},
		{Vec3{hi.X, hi.Y, hi.Z}, Vec3{hi.X, lo.Y, hi.Z}},
		{Vec3{hi.X, hi.Y, hi.Z}, Vec3{hi.X, hi.Y, lo.Z}},
		{Vec3{hi.X, lo.Y, lo.Z}, Vec3{hi.X, hi.Y, lo.Z}},
		{Vec3{hi.X, lo.Y, lo.Z}, Vec3{hi.X, lo.Y, hi.Z}},
		{Vec3{lo.X, hi.Y, lo.Z}, Vec3{hi.X, hi.Y, lo.Z}},
		{Vec3{lo.X, hi.Y, lo.Z}, Vec3{lo.X, hi.Y, hi.Z}},
		{Vec3{lo.X, lo.Y, hi.Z}, Vec3{hi.X, lo.Y, hi.Z}},
		{Vec3{lo.X, lo.Y, hi.Z}, Vec3{lo.X, hi.Y, hi.Z}},
	}
	if s.W <= 0 || s.H <= 0 {
		return edges
	}
	for r := 1; r < s.H; r++ {
		x := float64(r)*2/float64(s.H) - 1
		edges = append(edges, Edge{Vec3{x, -1, FrontDepth}, Vec3{x, 1, FrontDepth}})
	}
	for c := 1; c < s.W; c++ {
		y := float64(c)*2/float64(s.W) - 1
		edges = append(edges, Edge{Vec3{-1, y, FrontDepth}, Vec3{1, y, FrontDepth}})
	}
	return edges
}

// Point is a projected vertex. Depth grows away from the viewer.
type Point struct{ X, Y, Depth float64 }

// Projector maps board space onto a screen using a fixed camera pose.
type Projector struct {
	sin, cos [3]float64
	zoom     float64
	cx, cy   float64
	scale    float64
}

// Projector snapshots the camera for a screen of w×h pixels.
func (c *Camera) Projector(w, h int) Projector {
	p := Projector{zoom: c.zoom}
	for i := range c.rot {
		rad := float64(c.rot[i]) / AngleUnits * math.Pi / 180
		p.sin[i], p.cos[i] = math.Sincos(rad)
	}
	p.cx = float64(w) / 2
	p.cy = float64(h) / 2
	p.scale = math.Min(float64(w), float64(h)) / 2
	return p
}

// Project rotates v about Z, then Y, then X, places it in front of the eye,
// and applies an orthographic box of ±2·zoom.
func (p Projector) Project(v Vec3) Point {
	x, y, z := v.X, v.Y, v.Z

	s, c := p.sin[AxisZ], p.cos[AxisZ]
	x, y = x*c-y*s, x*s+y*c

	s, c = p.sin[AxisY], p.cos[AxisY]
	x, z = x*c+z*s, -x*s+z*c

	s, c = p.sin[AxisX], p.cos[AxisX]
	y, z = y*c-z*s, y*s+z*c

	z -= eyeDistance
	extent := orthoExtent * p.zoom
	return Point{
		X:     p.cx + x/extent*p.scale,
		Y:     p.cy - y/extent*p.scale,
		Depth: -z,
	}
}

// ProjectedFace is a face after projection.
type ProjectedFace struct {
	Corners [4]Point
	Kind    FaceKind
}

// Depth is the mean depth of the corners.
func (f ProjectedFace) Depth() float64 {
	return (f.Corners[0].Depth + f.Corners[1].Depth + f.Corners[2].Depth + f.Corners[3].Depth) / 4
}

// ProjectFaces projects faces and orders them back to front.
func (p Projector) ProjectFaces(faces []Face) []ProjectedFace {
	out := make([]ProjectedFace, len(faces))
	for i, f := range faces {
		out[i].Kind = f.Kind
		for j, v := range f.Corners {
			out[i].Corners[j] = p.Project(v)
		}
	}
	DepthSort(out)
	return out
}

// DepthSort orders faces so the farthest is first.
func DepthSort(faces []ProjectedFace) {
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].Depth() > faces[j].Depth() })
}
