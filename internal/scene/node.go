package scene

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is a position or Euler rotation in world units / radians.
type Vec3 struct {
	X, Y, Z float64
}

// Mesh pairs a shared geometry with a shared material.
type Mesh struct {
	Geometry *Geometry
	Material *Material
}

// Node is a scene graph element. A node without a Mesh is a group.
type Node struct {
	Name     string
	Position Vec3
	Rotation Vec3 // XYZ Euler order
	Mesh     *Mesh
	Hidden   bool

	// FrustumCulled lets renderers skip the node when its bounds fall
	// outside the view. Nodes that move far from where their bounds were
	// computed must clear it.
	FrustumCulled bool

	parent   *Node
	children []*Node
}

// NewGroup returns an empty group node.
func NewGroup(name string) *Node {
	return &Node{Name: name, FrustumCulled: true}
}

// NewMesh returns a mesh node with culling enabled.
func NewMesh(name string, g *Geometry, m *Material) *Node {
	return &Node{Name: name, Mesh: &Mesh{Geometry: g, Material: m}, FrustumCulled: true}
}

// Add attaches children, detaching them from any previous parent.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches c if it is a direct child.
func (n *Node) Remove(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// SetPosition is a convenience for the common three-component assignment.
func (n *Node) SetPosition(x, y, z float64) {
	n.Position = Vec3{X: x, Y: y, Z: z}
}

// LocalMatrix returns translate * Rx * Ry * Rz.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(float32(n.Position.X), float32(n.Position.Y), float32(n.Position.Z))
	if n.Rotation.X != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(float32(n.Rotation.X)))
	}
	if n.Rotation.Y != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(float32(n.Rotation.Y)))
	}
	if n.Rotation.Z != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(float32(n.Rotation.Z)))
	}
	return m
}

// WorldMatrix composes local matrices up to the root.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// Walk visits n and its visible descendants depth-first with their world
// matrices. Hidden nodes prune their subtree.
func (n *Node) Walk(parent mgl32.Mat4, fn func(n *Node, world mgl32.Mat4)) {
	if n.Hidden {
		return
	}
	world := parent.Mul4(n.LocalMatrix())
	fn(n, world)
	for _, c := range n.children {
		c.Walk(world, fn)
	}
}

// Descendants counts every node below n.
func (n *Node) Descendants() int {
	total := 0
	for _, c := range n.children {
		total += 1 + c.Descendants()
	}
	return total
}

// Find returns the first descendant with the given name, or nil.
func (n *Node) Find(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}
