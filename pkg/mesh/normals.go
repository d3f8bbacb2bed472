package mesh

import (
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gomirror/pkg/geometry"
)

// DefaultEpsilon is the relative threshold below which a face's cross
// product is considered zero and the face degenerate.
const DefaultEpsilon = 1e-12

// Faces below this count are not worth spreading across goroutines.
const minParallelFaces = 4096

// RecomputeFaceNormals recomputes every face normal as
// normalize((b-a) x (c-a)) in winding order. Faces whose cross product is
// near zero relative to their edge lengths get a zero normal and are
// returned as DegenerateFaceErrors; they never abort the computation.
//
// With parallelism > 1 the face buffer is split into chunks processed
// concurrently; every chunk writes only its own slots of the output.
func (m *Mesh) RecomputeFaceNormals(epsilon float64, parallelism int) []*DegenerateFaceError {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	normals := make([]geometry.Vector3, len(m.Faces))
	degenerate := make([]bool, len(m.Faces))

	if parallelism <= 1 || len(m.Faces) < minParallelFaces {
		m.computeFaceNormals(normals, degenerate, epsilon, 0, len(m.Faces))
	} else {
		var g errgroup.Group
		chunk := (len(m.Faces) + parallelism - 1) / parallelism
		for lo := 0; lo < len(m.Faces); lo += chunk {
			lo, hi := lo, min(lo+chunk, len(m.Faces))
			g.Go(func() error {
				m.computeFaceNormals(normals, degenerate, epsilon, lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}

	m.FaceNormals = normals
	m.VertexNormals = nil

	var errs []*DegenerateFaceError
	for i, d := range degenerate {
		if d {
			errs = append(errs, &DegenerateFaceError{Face: i})
		}
	}
	return errs
}

func (m *Mesh) computeFaceNormals(normals []geometry.Vector3, degenerate []bool, epsilon float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		f := m.Faces[i]
		a := m.Vertices[f[0]]
		b := m.Vertices[f[1]]
		c := m.Vertices[f[2]]

		edge1 := b.Sub(a)
		edge2 := c.Sub(a)
		cross := edge1.Cross(edge2)

		// |e1 x e2| = |e1||e2|sin(angle); the threshold scales with the
		// edge lengths so the test is independent of mesh units.
		if cross.Length() <= epsilon*edge1.Length()*edge2.Length() {
			degenerate[i] = true
			continue
		}
		normals[i] = cross.Normalize()
	}
}

// RecomputeVertexNormals derives per-vertex normals as the area-weighted
// average of adjacent face normals: the unnormalized cross product of each
// face is accumulated on its three vertices, then normalized. Degenerate
// faces (zero cached normal) contribute nothing. Vertices with no
// non-degenerate adjacent face keep a zero normal.
//
// Face normals must be current; call RecomputeFaceNormals first.
func (m *Mesh) RecomputeVertexNormals() {
	sums := make([]geometry.Vector3, len(m.Vertices))
	for i, f := range m.Faces {
		if m.FaceNormals[i] == (geometry.Vector3{}) {
			continue
		}
		a := m.Vertices[f[0]]
		weight := m.Vertices[f[1]].Sub(a).Cross(m.Vertices[f[2]].Sub(a))
		for _, vi := range f {
			sums[vi] = sums[vi].Add(weight)
		}
	}

	normals := make([]geometry.Vector3, len(m.Vertices))
	for i, s := range sums {
		normals[i] = s.Normalize()
	}
	m.VertexNormals = normals
}
