package stl

import (
	"github.com/philipparndt/gomirror/pkg/geometry"
	"github.com/philipparndt/gomirror/pkg/mesh"
)

// ToMesh welds the exactly-equal vertices of the triangle soup into an
// indexed mesh. Triangle order and winding are preserved; vertex indices
// are assigned in order of first appearance.
func ToMesh(model *Model) *mesh.Mesh {
	index := make(map[geometry.Vector3]int)
	var vertices []geometry.Vector3
	faces := make([]mesh.Face, 0, len(model.Triangles))

	lookup := func(v geometry.Vector3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(vertices)
		index[v] = i
		vertices = append(vertices, v)
		return i
	}

	for _, triangle := range model.Triangles {
		faces = append(faces, mesh.Face{
			lookup(triangle.V1),
			lookup(triangle.V2),
			lookup(triangle.V3),
		})
	}

	return mesh.NewMesh(vertices, faces)
}

// FromMesh expands an indexed mesh back into a triangle soup. Cached face
// normals are carried over when present; otherwise each triangle gets a
// zero normal and consumers must derive their own.
func FromMesh(m *mesh.Mesh, name string) *Model {
	model := NewModel(name)
	for i, f := range m.Faces {
		var normal geometry.Vector3
		if m.FaceNormals != nil {
			normal = m.FaceNormals[i]
		}
		model.AddTriangle(geometry.NewTriangle(
			normal,
			m.Vertices[f[0]],
			m.Vertices[f[1]],
			m.Vertices[f[2]],
		))
	}
	return model
}
