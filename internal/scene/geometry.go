package scene

import "math"

type GeometryKind int

const (
	GeometryBox GeometryKind = iota
	GeometryPlane
	GeometryPlaneEdges
)

// VertexStride is the number of floats per vertex produced by Vertices:
// position (3), normal (3), uv (2).
const VertexStride = 8

// Geometry is a shared shape description. Many nodes reference the same
// *Geometry; renderers cache GPU buffers keyed by the pointer.
type Geometry struct {
	Kind                 GeometryKind
	Width, Height, Depth float64
}

// NewBox returns a box centred on the origin.
func NewBox(w, h, d float64) *Geometry {
	return &Geometry{Kind: GeometryBox, Width: w, Height: h, Depth: d}
}

// NewPlane returns a plane in the XY plane facing +Z.
func NewPlane(w, h float64) *Geometry {
	return &Geometry{Kind: GeometryPlane, Width: w, Height: h}
}

// NewEdges returns the outline of a plane geometry as line segments.
func NewEdges(plane *Geometry) *Geometry {
	return &Geometry{Kind: GeometryPlaneEdges, Width: plane.Width, Height: plane.Height}
}

// Lines reports whether the geometry is drawn as line segments.
func (g *Geometry) Lines() bool { return g.Kind == GeometryPlaneEdges }

// Radius is the bounding sphere radius around the local origin.
func (g *Geometry) Radius() float64 {
	return 0.5 * math.Sqrt(g.Width*g.Width+g.Height*g.Height+g.Depth*g.Depth)
}

// VertexCount returns the number of vertices Vertices will produce.
func (g *Geometry) VertexCount() int {
	switch g.Kind {
	case GeometryBox:
		return 36
	case GeometryPlane:
		return 6
	case GeometryPlaneEdges:
		return 8
	}
	return 0
}

// Vertices expands the geometry into a flat, non-indexed vertex list.
// Triangles for boxes and planes, line pairs for edges. Texture v runs
// top-down so image rows map onto the plane without flipping.
func (g *Geometry) Vertices() []float32 {
	hw := float32(g.Width * 0.5)
	hh := float32(g.Height * 0.5)
	hd := float32(g.Depth * 0.5)

	switch g.Kind {
	case GeometryPlane:
		buf := make([]float32, 0, 6*VertexStride)
		return appendQuad(buf,
			[3]float32{-hw, hh, 0}, [3]float32{hw, hh, 0},
			[3]float32{hw, -hh, 0}, [3]float32{-hw, -hh, 0},
			[3]float32{0, 0, 1})
	case GeometryPlaneEdges:
		corners := [4][3]float32{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
		buf := make([]float32, 0, 8*VertexStride)
		for i := 0; i < 4; i++ {
			a := corners[i]
			b := corners[(i+1)%4]
			buf = append(buf, a[0], a[1], a[2], 0, 0, 1, 0, 0)
			buf = append(buf, b[0], b[1], b[2], 0, 0, 1, 0, 0)
		}
		return buf
	case GeometryBox:
		buf := make([]float32, 0, 36*VertexStride)
		// +X
		buf = appendQuad(buf, [3]float32{hw, hh, hd}, [3]float32{hw, hh, -hd}, [3]float32{hw, -hh, -hd}, [3]float32{hw, -hh, hd}, [3]float32{1, 0, 0})
		// -X
		buf = appendQuad(buf, [3]float32{-hw, hh, -hd}, [3]float32{-hw, hh, hd}, [3]float32{-hw, -hh, hd}, [3]float32{-hw, -hh, -hd}, [3]float32{-1, 0, 0})
		// +Y
		buf = appendQuad(buf, [3]float32{-hw, hh, -hd}, [3]float32{hw, hh, -hd}, [3]float32{hw, hh, hd}, [3]float32{-hw, hh, hd}, [3]float32{0, 1, 0})
		// -Y
		buf = appendQuad(buf, [3]float32{-hw, -hh, hd}, [3]float32{hw, -hh, hd}, [3]float32{hw, -hh, -hd}, [3]float32{-hw, -hh, -hd}, [3]float32{0, -1, 0})
		// +Z
		buf = appendQuad(buf, [3]float32{-hw, hh, hd}, [3]float32{hw, hh, hd}, [3]float32{hw, -hh, hd}, [3]float32{-hw, -hh, hd}, [3]float32{0, 0, 1})
		// -Z
		buf = appendQuad(buf, [3]float32{hw, hh, -hd}, [3]float32{-hw, hh, -hd}, [3]float32{-hw, -hh, -hd}, [3]float32{hw, -hh, -hd}, [3]float32{0, 0, -1})
		return buf
	}
	return nil
}

// appendQuad emits two counter-clockwise triangles for corners given as
// top-left, top-right, bottom-right, bottom-left seen from the normal side.
func appendQuad(buf []float32, tl, tr, br, bl, n [3]float32) []float32 {
	v := func(p [3]float32, u, w float32) {
		buf = append(buf, p[0], p[1], p[2], n[0], n[1], n[2], u, w)
	}
	v(tl, 0, 0)
	v(bl, 0, 1)
	v(br, 1, 1)
	v(tl, 0, 0)
	v(br, 1, 1)
	v(tr, 1, 0)
	return buf
}
