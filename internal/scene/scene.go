// Package scene is a small retained scene graph: group and mesh nodes with
// position and rotation, shared geometry and material handles, and the
// lights a renderer needs to draw them.
package scene

import "github.com/go-gl/mathgl/mgl32"

// PointLight emits from Position with linear distance cutoff at Range.
type PointLight struct {
	Position  Vec3
	Color     Color
	Intensity float64
	Range     float64
}

type Scene struct {
	Root       *Node
	Background Color
	Ambient    Color
	Light      PointLight
}

// New returns an empty scene with no lighting set.
func New() *Scene {
	return &Scene{Root: NewGroup("root")}
}

// Add attaches nodes under the root.
func (s *Scene) Add(nodes ...*Node) { s.Root.Add(nodes...) }

// Walk visits every visible node with its world matrix.
func (s *Scene) Walk(fn func(n *Node, world mgl32.Mat4)) {
	s.Root.Walk(mgl32.Ident4(), fn)
}
