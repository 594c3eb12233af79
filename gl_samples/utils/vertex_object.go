package utils

import (
	"github.com/cockroachdb/errors"
	"github.com/glwrapper/examples/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexObject owns a static vertex buffer and the vertex array describing
// its layout.
type VertexObject struct {
	VAO uint32
	VBO uint32

	// Stride is the size of one vertex in floats.
	Stride int
}

func (v *VertexObject) Initialized() bool {
	return v.VAO != 0 || v.VBO != 0
}

// InitVertexObject uploads vertices, stride floats per vertex, into a new
// buffer.
func (v *VertexObject) InitVertexObject(vertices []float32, stride int) error {
	if stride <= 0 || len(vertices) == 0 || len(vertices)%stride != 0 {
		return errors.Newf("%d floats do not form whole vertices of %d floats", len(vertices), stride)
	}
	v.Stride = stride

	gl.GenBuffers(1, &v.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*FloatSize, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenVertexArrays(1, &v.VAO)
	return nil
}

// BindAttribute feeds size floats, starting offset floats into each vertex,
// to the attribute at loc. Attributes missing from the program are skipped.
func (v *VertexObject) BindAttribute(loc shader.Location, size, offset int) {
	if !loc.Valid() {
		return
	}

	gl.BindVertexArray(v.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.VBO)

	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), int32(size), gl.FLOAT, false, int32(v.Stride*FloatSize), gl.PtrOffset(offset*FloatSize))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (v *VertexObject) Draw(first, count int) {
	gl.BindVertexArray(v.VAO)
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	gl.BindVertexArray(0)
}

// Destroy releases the buffer and vertex array. Only the first call has any
// effect.
func (v *VertexObject) Destroy() {
	if v.VAO != 0 {
		gl.DeleteVertexArrays(1, &v.VAO)
		v.VAO = 0
	}

	if v.VBO != 0 {
		gl.DeleteBuffers(1, &v.VBO)
		v.VBO = 0
	}
}
