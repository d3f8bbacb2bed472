// Package mesh implements deterministic mirroring of indexed triangle
// meshes. A reflection is applied to the vertex buffer, face winding is
// reversed when and only when the transform's determinant is negative,
// normals are recomputed from the corrected winding, and a diagnostic
// report describes any topological oddities. Orientation is never
// inferred from the geometry itself.
package mesh

import (
	"github.com/philipparndt/gomirror/pkg/geometry"
)

// Face is a triangle described by three vertex indices.
// The order of the triple encodes the winding.
type Face [3]int

// Mesh is an indexed triangle mesh. FaceNormals and VertexNormals are
// derived data: nil until recomputed, and discarded whenever vertex
// positions or winding change.
type Mesh struct {
	Vertices      []geometry.Vector3
	Faces         []Face
	FaceNormals   []geometry.Vector3
	VertexNormals []geometry.Vector3
}

// NewMesh creates a mesh from a vertex and face buffer.
// The slices are used directly, not copied.
func NewMesh(vertices []geometry.Vector3, faces []Face) *Mesh {
	return &Mesh{
		Vertices: vertices,
		Faces:    faces,
	}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices: make([]geometry.Vector3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	if m.FaceNormals != nil {
		c.FaceNormals = make([]geometry.Vector3, len(m.FaceNormals))
		copy(c.FaceNormals, m.FaceNormals)
	}
	if m.VertexNormals != nil {
		c.VertexNormals = make([]geometry.Vector3, len(m.VertexNormals))
		copy(c.VertexNormals, m.VertexNormals)
	}
	return c
}

// ValidateStructure checks that every face references only valid vertex
// indices. It returns an *InvalidMeshError for the first violation found.
func (m *Mesh) ValidateStructure() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return &InvalidMeshError{Face: i, Index: idx, VertexCount: n}
			}
		}
	}
	return nil
}

// invalidateNormals discards derived normal data.
func (m *Mesh) invalidateNormals() {
	m.FaceNormals = nil
	m.VertexNormals = nil
}

// Centroid returns the average of all vertex positions.
func (m *Mesh) Centroid() geometry.Vector3 {
	var sum geometry.Vector3
	if len(m.Vertices) == 0 {
		return sum
	}
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(m.Vertices)))
}

// FaceCentroid returns the centroid of face i.
func (m *Mesh) FaceCentroid(i int) geometry.Vector3 {
	f := m.Faces[i]
	sum := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]])
	return sum.Mul(1.0 / 3.0)
}

// Triangle materializes face i as a geometry.Triangle. The normal is the
// cached face normal when present, zero otherwise.
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	var normal geometry.Vector3
	if m.FaceNormals != nil {
		normal = m.FaceNormals[i]
	}
	return geometry.NewTriangle(normal, m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// SurfaceArea returns the summed area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Faces {
		total += m.Triangle(i).Area()
	}
	return total
}

// BoundingBox returns the axis-aligned bounding box of all vertices.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
