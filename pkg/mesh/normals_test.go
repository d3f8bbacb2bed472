package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomirror/pkg/geometry"
	"github.com/philipparndt/gomirror/pkg/mesh"
)

func TestRecomputeFaceNormalsCube(t *testing.T) {
	m := unitCube()
	degenerate := m.RecomputeFaceNormals(0, 1)
	require.Empty(t, degenerate)
	require.Len(t, m.FaceNormals, 12)

	expected := []geometry.Vector3{
		{Z: -1}, {Z: -1},
		{Z: 1}, {Z: 1},
		{Y: -1}, {Y: -1},
		{Y: 1}, {Y: 1},
		{X: -1}, {X: -1},
		{X: 1}, {X: 1},
	}
	for i, want := range expected {
		assert.InDelta(t, want.X, m.FaceNormals[i].X, 1e-12, "face %d", i)
		assert.InDelta(t, want.Y, m.FaceNormals[i].Y, 1e-12, "face %d", i)
		assert.InDelta(t, want.Z, m.FaceNormals[i].Z, 1e-12, "face %d", i)
	}
}

func TestRecomputeFaceNormalsDegenerate(t *testing.T) {
	m := mesh.NewMesh(
		[]geometry.Vector3{
			// Collinear.
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
			// Well-formed.
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		[]mesh.Face{{0, 1, 2}, {3, 4, 5}},
	)

	degenerate := m.RecomputeFaceNormals(0, 1)
	require.Len(t, degenerate, 1)
	assert.Equal(t, 0, degenerate[0].Face)
	assert.Equal(t, geometry.Vector3{}, m.FaceNormals[0])
	assert.InDelta(t, 1.0, m.FaceNormals[1].Z, 1e-12)
}

func TestRecomputeVertexNormalsCubeCorner(t *testing.T) {
	m := unitCube()
	m.RecomputeFaceNormals(0, 1)
	m.RecomputeVertexNormals()
	require.Len(t, m.VertexNormals, 8)

	// Corner 0 touches the -x, -y and -z sides with equal total area, so
	// its smoothed normal is the unit diagonal (-1,-1,-1)/sqrt(3).
	want := 1.0 / math.Sqrt(3)
	n := m.VertexNormals[0]
	assert.InDelta(t, -want, n.X, 1e-12)
	assert.InDelta(t, -want, n.Y, 1e-12)
	assert.InDelta(t, -want, n.Z, 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestRecomputeVertexNormalsSkipsDegenerate(t *testing.T) {
	m := mesh.NewMesh(
		[]geometry.Vector3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 2, Y: 0, Z: 0},
		},
		// Second face reuses vertex 0 and 1 but is collinear.
		[]mesh.Face{{0, 1, 2}, {0, 1, 3}},
	)
	m.RecomputeFaceNormals(0, 1)
	m.RecomputeVertexNormals()

	// Only the well-formed face contributes to vertex 0.
	assert.InDelta(t, 1.0, m.VertexNormals[0].Z, 1e-12)
	// Vertex 3 is used only by the degenerate face.
	assert.Equal(t, geometry.Vector3{}, m.VertexNormals[3])
}

func TestRecomputeFaceNormalsParallelMatchesSerial(t *testing.T) {
	// Enough faces to cross the parallel threshold.
	const rows, cols = 80, 40
	var vertices []geometry.Vector3
	var faces []mesh.Face
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			z := math.Sin(float64(r)*0.1) * math.Cos(float64(c)*0.2)
			vertices = append(vertices, geometry.NewVector3(float64(c), float64(r), z))
		}
	}
	idx := func(r, c int) int { return r*(cols+1) + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			faces = append(faces,
				mesh.Face{idx(r, c), idx(r, c+1), idx(r+1, c+1)},
				mesh.Face{idx(r, c), idx(r+1, c+1), idx(r+1, c)},
			)
		}
	}
	require.GreaterOrEqual(t, len(faces), 4096)

	serial := mesh.NewMesh(vertices, faces)
	serialDegenerate := serial.RecomputeFaceNormals(0, 1)

	parallel := mesh.NewMesh(vertices, faces)
	parallelDegenerate := parallel.RecomputeFaceNormals(0, 8)

	assert.Equal(t, serial.FaceNormals, parallel.FaceNormals)
	assert.Equal(t, serialDegenerate, parallelDegenerate)
}
