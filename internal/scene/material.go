package scene

import "image"

// Material is shared across every node drawn with the same look.
type Material struct {
	Name       string
	Color      Color
	Opacity    float64 // 1 = opaque
	DoubleSide bool
	Unlit      bool // ignore lighting (sign faces)
	Texture    *Texture
}

// NewMaterial returns an opaque lit material.
func NewMaterial(name string, c Color) *Material {
	return &Material{Name: name, Color: c, Opacity: 1}
}

// Transparent reports whether the material needs blending.
func (m *Material) Transparent() bool {
	return m.Opacity < 1 || (m.Texture != nil && m.Texture.HasAlpha)
}

// Texture holds CPU-side pixels. Renderers upload it once and key the GPU
// copy by pointer.
type Texture struct {
	Image    *image.RGBA
	HasAlpha bool
}
