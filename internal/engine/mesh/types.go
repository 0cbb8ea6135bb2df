// Package mesh loads triangle meshes from OFF files.
package mesh

import "github.com/Faultbox/twinview/pkg/math"

// Vertex is a mesh vertex with position and normal, laid out for GPU upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Face is a triangle given by three vertex indices.
type Face [3]uint32

// Mesh holds vertex and triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Indices returns the faces flattened into an index buffer.
func (m *Mesh) Indices() []uint32 {
	idx := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		idx = append(idx, f[0], f[1], f[2])
	}
	return idx
}

// IndexCount returns the number of indices needed to draw every face.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Faces) * 3)
}
