package mesh

// ReverseWinding rewrites every face (a, b, c) to (a, c, b). Swapping two
// of the three indices reverses the winding while preserving the face's
// vertex set. Cached normals are discarded; they must be recomputed from
// the new winding rather than patched in place.
func (m *Mesh) ReverseWinding() {
	for i, f := range m.Faces {
		m.Faces[i] = Face{f[0], f[2], f[1]}
	}
	m.invalidateNormals()
}

// correctWinding reverses the mesh winding when the transform that was
// applied to its vertices had a negative determinant. The decision is
// purely algebraic; mesh topology is never consulted. A determinant sign
// of zero cannot reach this stage, ReflectionTransform.Validate rejects
// singular matrices first.
func correctWinding(m *Mesh, determinantSign int) {
	if determinantSign < 0 {
		m.ReverseWinding()
	}
}
