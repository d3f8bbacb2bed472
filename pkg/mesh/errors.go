package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// InvalidTransformError reports a singular reflection matrix. A transform
// with determinant zero collapses the mesh and defines no winding
// correction, so the pipeline rejects it before touching any vertex.
type InvalidTransformError struct {
	Matrix mgl64.Mat3
	Det    float64
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("mesh: singular transform, det=%g: %v", e.Det, e.Matrix)
}

// InvalidMeshError reports a face that references a vertex index outside
// the vertex buffer.
type InvalidMeshError struct {
	Face        int
	Index       int
	VertexCount int
}

func (e *InvalidMeshError) Error() string {
	return fmt.Sprintf("mesh: face %d references vertex %d, mesh has %d vertices",
		e.Face, e.Index, e.VertexCount)
}

// DegenerateFaceError reports a face whose vertices are collinear or
// coincident. Such a face has no defined normal; it is recorded and
// assigned a zero normal instead of aborting the pipeline.
type DegenerateFaceError struct {
	Face int
}

func (e *DegenerateFaceError) Error() string {
	return fmt.Sprintf("mesh: face %d is degenerate, zero or near-zero area", e.Face)
}
