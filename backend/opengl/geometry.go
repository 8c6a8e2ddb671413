package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// quadVertices spans the whole render target in normalized device
// coordinates: top-left, bottom-left, top-right, bottom-right.
var quadVertices = []float32{
	-1.0, 1.0,
	-1.0, -1.0,
	1.0, 1.0,
	1.0, -1.0,
}

// quadIndices describes the two triangles {0,1,2} and {2,1,3}.
var quadIndices = []uint32{0, 1, 2, 2, 1, 3}

// quad is the fixed fullscreen geometry: vertex buffer, index buffer and
// the VAO binding the 2-float position records to the program's position
// attribute. Immutable once created.
type quad struct {
	vao uint32
	vbo uint32
	ibo uint32
}

func newQuad(positionAttrib uint32) *quad {
	q := &quad{}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	// Index buffer binding is recorded in the VAO.
	gl.GenBuffers(1, &q.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(positionAttrib, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(positionAttrib)

	gl.BindVertexArray(0)

	return q
}

// release deletes the buffers, then the vertex array. Safe to call more
// than once.
func (q *quad) release() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.ibo != 0 {
		gl.DeleteBuffers(1, &q.ibo)
		q.ibo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
}
