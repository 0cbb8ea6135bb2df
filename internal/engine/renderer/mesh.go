package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/twinview/internal/engine/mesh"
	"github.com/Faultbox/twinview/internal/logger"
)

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	VAO, VBO, EBO uint32
	IndexCount    int32
}

// Upload copies m into GPU buffers. Attribute 0 is the position, attribute 1
// the normal, matching mesh.Vertex.
func Upload(m *mesh.Mesh) (*GPUMesh, error) {
	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return nil, errors.New("mesh has no triangles")
	}

	g := &GPUMesh{IndexCount: m.IndexCount()}
	indices := m.Indices()
	stride := int32(unsafe.Sizeof(mesh.Vertex{}))

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", g.VAO),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Faces)),
	)
	return g, nil
}

// Draw issues the indexed draw call.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (g *GPUMesh) Delete() {
	gl.DeleteBuffers(1, &g.EBO)
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteVertexArrays(1, &g.VAO)
}
