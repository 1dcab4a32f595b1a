package scene

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/heightwalk/internal/engine/model"
	"github.com/Faultbox/heightwalk/internal/engine/shader"
	"github.com/Faultbox/heightwalk/internal/engine/texture"
	"github.com/Faultbox/heightwalk/pkg/math"
)

// Mesh is a GPU-resident, non-indexed triangle list with one texture and a
// world placement.
type Mesh struct {
	VAO         uint32
	VBOs        [3]uint32 // positions, normals, texcoords
	Texture     uint32
	NumVertices int32

	X, Y, Z float32
	RX, RY  float32 // degrees
	Scale   float32 // horizontal; heights are never scaled
}

// Attribs holds the vertex attribute locations meshes are bound to.
// A negative location means the program does not use that attribute.
type Attribs struct {
	Position int32
	Normal   int32
	TexCoord int32
}

// AttribsOf looks up the standard attribute names in p.
func AttribsOf(p *shader.Program) Attribs {
	return Attribs{
		Position: p.Attrib("position"),
		Normal:   p.Attrib("normal"),
		TexCoord: p.Attrib("vertexUV"),
	}
}

// NewMesh uploads geometry into a new VAO. The geometry is not retained.
func NewMesh(geom *model.Geometry, attribs Attribs) *Mesh {
	m := &Mesh{
		NumVertices: int32(geom.VertexCount()),
		Scale:       1,
	}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)
	gl.GenBuffers(3, &m.VBOs[0])

	uploadAttrib(m.VBOs[0], geom.Positions, attribs.Position, 3)
	uploadAttrib(m.VBOs[1], geom.Normals, attribs.Normal, 3)
	uploadAttrib(m.VBOs[2], geom.TexCoords, attribs.TexCoord, 2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func uploadAttrib(vbo uint32, data []float32, loc int32, components int32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	}
	if loc < 0 {
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(loc), components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(uint32(loc))
}

// SetTexture uploads img as the mesh's RGB texture, replacing any previous one.
func (m *Mesh) SetTexture(img image.Image) {
	pix, w, h := texture.RGB(img)
	if len(pix) == 0 {
		return
	}
	if m.Texture != 0 {
		gl.DeleteTextures(1, &m.Texture)
	}

	gl.GenTextures(1, &m.Texture)
	gl.BindTexture(gl.TEXTURE_2D, m.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(w), int32(h), 0, gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ModelMatrix returns Translation × Scale × RotationY × RotationX.
func (m *Mesh) ModelMatrix() math.Mat4 {
	return ModelMatrix(m.X, m.Y, m.Z, m.RX, m.RY, m.Scale)
}

// ModelMatrix builds a model matrix from a placement. scale applies to X and
// Z only, matching how terrain cells are spaced.
func ModelMatrix(x, y, z, rx, ry, scale float32) math.Mat4 {
	model := math.Translation(x, y, z)
	math.MulInPlace(&model, math.Scale(scale, 1, scale))
	math.MulInPlace(&model, math.RotationY(ry))
	math.MulInPlace(&model, math.RotationX(rx))
	return model
}

// Shift moves the mesh by an offset, making it a world.Follower.
func (m *Mesh) Shift(dx, dy, dz float32) {
	m.X += dx
	m.Y += dy
	m.Z += dz
}

// Draw sets the model uniforms on p and draws the mesh. p must be current.
func (m *Mesh) Draw(p *shader.Program) {
	if m.VAO == 0 || m.NumVertices == 0 {
		return
	}

	p.SetMat4("modelXRotationMatrix", math.RotationX(m.RX), true)
	p.SetMat4("modelYRotationMatrix", math.RotationY(m.RY), true)
	p.SetMat4("modelMatrix", m.ModelMatrix(), true)

	gl.BindVertexArray(m.VAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, m.Texture)
	gl.DrawArrays(gl.TRIANGLES, 0, m.NumVertices)
	gl.BindVertexArray(0)
}

// Release frees the buffers and texture. Calling it twice is a no-op.
func (m *Mesh) Release() {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
		gl.DeleteBuffers(3, &m.VBOs[0])
		m.VAO = 0
		m.VBOs = [3]uint32{}
	}
	if m.Texture != 0 {
		gl.DeleteTextures(1, &m.Texture)
		m.Texture = 0
	}
}
