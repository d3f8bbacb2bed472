package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gomirror/pkg/geometry"
	"github.com/philipparndt/gomirror/pkg/mesh"
)

func TestDeterminantSign(t *testing.T) {
	cases := []struct {
		name      string
		transform mesh.ReflectionTransform
		sign      int
	}{
		{"Identity", mesh.AxisReflection(1, 1, 1), 1},
		{"MirrorX", mesh.MirrorX(), -1},
		{"MirrorY", mesh.MirrorY(), -1},
		{"MirrorZ", mesh.MirrorZ(), -1},
		{"TwoFlips", mesh.AxisReflection(-1, -1, 1), 1},
		{"ThreeFlips", mesh.AxisReflection(-1, -1, -1), -1},
		{"Singular", mesh.AxisReflection(1, 0, 1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.sign, tc.transform.DeterminantSign())
		})
	}
}

func TestDeterminantSignArbitraryMatrix(t *testing.T) {
	// Reflection across the plane x = y: swaps the x and y axes.
	swap := mesh.NewReflection(mgl64.Mat3{
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	assert.Equal(t, -1, swap.DeterminantSign())

	p := swap.Apply(geometry.NewVector3(1, 2, 3))
	assert.InDelta(t, 2, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, 3, p.Z, 1e-12)
}

func TestValidateRejectsSingular(t *testing.T) {
	err := mesh.AxisReflection(0, 1, 1).Validate()

	var invalid *mesh.InvalidTransformError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0.0, invalid.Det)

	assert.NoError(t, mesh.MirrorY().Validate())
}

func TestApplyMirrorsCoordinates(t *testing.T) {
	p := mesh.MirrorY().Apply(geometry.NewVector3(1, 2, 3))
	assert.Equal(t, geometry.NewVector3(1, -2, 3), p)
}
