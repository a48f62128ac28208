package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"corridor/internal/scene"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type meshBuffers struct {
	vao, vbo uint32
	count    int32
	mode     uint32
}

type drawItem struct {
	mesh  *scene.Mesh
	model mgl32.Mat4
}

// Renderer draws a scene graph. GPU buffers are created lazily per shared
// geometry and texture pointer, so the hallway's thousands of tiles cost a
// handful of VAOs.
type Renderer struct {
	prog uint32

	uMVP            int32
	uModel          int32
	uColor          int32
	uUnlit          int32
	uUseTex         int32
	uDoubleSide     int32
	uTex            int32
	uAmbient        int32
	uLightPos       int32
	uLightColor     int32
	uLightIntensity int32
	uLightRange     int32
	uEye            int32

	meshes   map[*scene.Geometry]meshBuffers
	textures map[*scene.Texture]uint32

	// Reusable per-frame draw lists.
	opaque      []drawItem
	translucent []drawItem
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r := &Renderer{
		prog:     prog,
		meshes:   make(map[*scene.Geometry]meshBuffers),
		textures: make(map[*scene.Texture]uint32),
	}

	gl.UseProgram(prog)
	loc := func(name string) int32 { return gl.GetUniformLocation(prog, gl.Str(name+"\x00")) }
	r.uMVP = loc("uMVP")
	r.uModel = loc("uModel")
	r.uColor = loc("uColor")
	r.uUnlit = loc("uUnlit")
	r.uUseTex = loc("uUseTex")
	r.uDoubleSide = loc("uDoubleSide")
	r.uTex = loc("uTex")
	r.uAmbient = loc("uAmbient")
	r.uLightPos = loc("uLightPos")
	r.uLightColor = loc("uLightColor")
	r.uLightIntensity = loc("uLightIntensity")
	r.uLightRange = loc("uLightRange")
	r.uEye = loc("uEye")
	gl.Uniform1i(r.uTex, 0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, mb := range r.meshes {
		gl.DeleteBuffers(1, &mb.vbo)
		gl.DeleteVertexArrays(1, &mb.vao)
	}
	for _, id := range r.textures {
		gl.DeleteTextures(1, &id)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) ensureMesh(g *scene.Geometry) meshBuffers {
	if mb, ok := r.meshes[g]; ok {
		return mb
	}
	verts := g.Vertices()
	var mb meshBuffers
	gl.GenVertexArrays(1, &mb.vao)
	gl.GenBuffers(1, &mb.vbo)
	gl.BindVertexArray(mb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(scene.VertexStride * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2) // aUV
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(6*4))
	gl.BindVertexArray(0)

	mb.count = int32(len(verts) / scene.VertexStride)
	mb.mode = gl.TRIANGLES
	if g.Lines() {
		mb.mode = gl.LINES
	}
	r.meshes[g] = mb
	return mb
}

func (r *Renderer) ensureTexture(t *scene.Texture) uint32 {
	if id, ok := r.textures[t]; ok {
		return id
	}
	b := t.Image.Bounds()
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.Image.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	r.textures[t] = id
	return id
}

// culled reports whether a cullable node's bounding sphere is entirely
// behind the camera or past the far plane.
func culled(viewModel mgl32.Mat4, radius, far float32) bool {
	z := viewModel.Col(3).Z() // view-space depth of the node origin, negative ahead
	return z-radius > 0 || -z-radius > far
}

// Render draws sc from cam into a fbW x fbH framebuffer.
func (r *Renderer) Render(sc *scene.Scene, cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	br, bg, bb, _ := sc.Background.Floats()
	gl.ClearColor(br, bg, bb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.View()
	proj := cam.Projection()
	viewProj := proj.Mul4(view)

	r.opaque = r.opaque[:0]
	r.translucent = r.translucent[:0]
	sc.Walk(func(n *scene.Node, world mgl32.Mat4) {
		if n.Mesh == nil {
			return
		}
		if n.FrustumCulled && culled(view.Mul4(world), float32(n.Mesh.Geometry.Radius()), cam.Far) {
			return
		}
		item := drawItem{mesh: n.Mesh, model: world}
		if n.Mesh.Material.Transparent() {
			r.translucent = append(r.translucent, item)
		} else {
			r.opaque = append(r.opaque, item)
		}
	})

	gl.UseProgram(r.prog)
	ar, ag, ab, _ := sc.Ambient.Floats()
	gl.Uniform3f(r.uAmbient, ar, ag, ab)
	lp := sc.Light.Position
	gl.Uniform3f(r.uLightPos, float32(lp.X), float32(lp.Y), float32(lp.Z))
	lr, lg, lb, _ := sc.Light.Color.Floats()
	gl.Uniform3f(r.uLightColor, lr, lg, lb)
	gl.Uniform1f(r.uLightIntensity, float32(sc.Light.Intensity))
	gl.Uniform1f(r.uLightRange, float32(sc.Light.Range))
	gl.Uniform3f(r.uEye, cam.Eye.X(), cam.Eye.Y(), cam.Eye.Z())
	gl.ActiveTexture(gl.TEXTURE0)

	for i := range r.opaque {
		r.draw(&r.opaque[i], viewProj)
	}

	if len(r.translucent) > 0 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
		for i := range r.translucent {
			r.draw(&r.translucent[i], viewProj)
		}
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) draw(it *drawItem, viewProj mgl32.Mat4) {
	mb := r.ensureMesh(it.mesh.Geometry)
	mat := it.mesh.Material

	mvp := viewProj.Mul4(it.model)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.uModel, 1, false, &it.model[0])

	cr, cg, cb, _ := mat.Color.Floats()
	gl.Uniform4f(r.uColor, cr, cg, cb, float32(mat.Opacity))
	gl.Uniform1i(r.uUnlit, boolInt(mat.Unlit))
	gl.Uniform1i(r.uDoubleSide, boolInt(mat.DoubleSide))
	if mat.Texture != nil {
		gl.BindTexture(gl.TEXTURE_2D, r.ensureTexture(mat.Texture))
		gl.Uniform1i(r.uUseTex, 1)
	} else {
		gl.Uniform1i(r.uUseTex, 0)
	}

	gl.BindVertexArray(mb.vao)
	gl.DrawArrays(mb.mode, 0, mb.count)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
