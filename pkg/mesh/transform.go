package mesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/gomirror/pkg/geometry"
)

// ReflectionTransform is a 3x3 linear map applied to vertex positions.
// Its determinant sign is the single source of truth for whether the
// winding of a transformed mesh must be reversed.
type ReflectionTransform struct {
	mat mgl64.Mat3
}

// NewReflection wraps an arbitrary 3x3 matrix as a reflection transform.
func NewReflection(m mgl64.Mat3) ReflectionTransform {
	return ReflectionTransform{mat: m}
}

// AxisReflection builds a transform that scales each axis by the given
// sign. Signs of {+1,-1} mirror across the corresponding origin plane.
func AxisReflection(sx, sy, sz float64) ReflectionTransform {
	return ReflectionTransform{mat: mgl64.Diag3(mgl64.Vec3{sx, sy, sz})}
}

// MirrorX mirrors across the plane x = 0.
func MirrorX() ReflectionTransform { return AxisReflection(-1, 1, 1) }

// MirrorY mirrors across the plane y = 0.
func MirrorY() ReflectionTransform { return AxisReflection(1, -1, 1) }

// MirrorZ mirrors across the plane z = 0.
func MirrorZ() ReflectionTransform { return AxisReflection(1, 1, -1) }

// Matrix returns the underlying 3x3 matrix.
func (t ReflectionTransform) Matrix() mgl64.Mat3 {
	return t.mat
}

// Determinant returns the algebraic determinant of the matrix.
func (t ReflectionTransform) Determinant() float64 {
	return t.mat.Det()
}

// DeterminantSign returns +1 for orientation-preserving transforms,
// -1 for orientation-reversing ones and 0 for singular matrices.
func (t ReflectionTransform) DeterminantSign() int {
	switch d := t.mat.Det(); {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Validate rejects singular matrices with an *InvalidTransformError.
func (t ReflectionTransform) Validate() error {
	if d := t.mat.Det(); d == 0 {
		return &InvalidTransformError{Matrix: t.mat, Det: d}
	}
	return nil
}

// Apply transforms a single point.
func (t ReflectionTransform) Apply(v geometry.Vector3) geometry.Vector3 {
	out := t.mat.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return geometry.NewVector3(out.X(), out.Y(), out.Z())
}
