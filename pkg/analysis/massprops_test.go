package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomirror/pkg/geometry"
	"github.com/philipparndt/gomirror/pkg/mesh"
)

// unitCube is a closed unit cube with outward-consistent winding.
func unitCube() *mesh.Mesh {
	vertices := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	faces := []mesh.Face{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4},
		{2, 7, 6}, {2, 3, 7},
		{0, 4, 7}, {0, 7, 3},
		{1, 2, 6}, {1, 6, 5},
	}
	return mesh.NewMesh(vertices, faces)
}

func TestComputeUnitCube(t *testing.T) {
	props := Compute(unitCube(), 1.0)

	assert.InDelta(t, 1.0, props.Volume, 1e-9)
	assert.InDelta(t, 1.0, props.Mass, 1e-9)
	assert.InDelta(t, 0.5, props.CenterOfMass.X, 1e-9)
	assert.InDelta(t, 0.5, props.CenterOfMass.Y, 1e-9)
	assert.InDelta(t, 0.5, props.CenterOfMass.Z, 1e-9)

	// Solid unit cube about its center: I = m*s^2/6 on each axis.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0/6.0, props.Inertia[i][i], 1e-9, "axis %d", i)
		for j := 0; j < 3; j++ {
			if i != j {
				assert.InDelta(t, 0.0, props.Inertia[i][j], 1e-9)
			}
		}
	}
}

func TestComputeScalesWithDensity(t *testing.T) {
	props := Compute(unitCube(), 2.5)
	assert.InDelta(t, 1.0, props.Volume, 1e-9)
	assert.InDelta(t, 2.5, props.Mass, 1e-9)
	assert.InDelta(t, 2.5/6.0, props.Inertia[0][0], 1e-9)
}

func TestComputeMirroredCubeKeepsVolume(t *testing.T) {
	cube := unitCube()
	mirrored, _, err := mesh.Mirror(cube, mesh.MirrorY(), mesh.DefaultOptions())
	require.NoError(t, err)

	props := Compute(mirrored, 1.0)

	// Winding correction keeps the orientation outward, so the signed
	// volume stays positive and equal.
	assert.InDelta(t, 1.0, props.Volume, 1e-9)
	assert.InDelta(t, 0.5, props.CenterOfMass.X, 1e-9)
	assert.InDelta(t, -0.5, props.CenterOfMass.Y, 1e-9)
	assert.InDelta(t, 0.5, props.CenterOfMass.Z, 1e-9)
}

func TestComputeInwardWindingYieldsNegativeVolume(t *testing.T) {
	cube := unitCube()
	cube.ReverseWinding()

	props := Compute(cube, 1.0)
	assert.InDelta(t, -1.0, props.Volume, 1e-9)
}
