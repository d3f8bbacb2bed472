// Package analysis computes integral properties of triangle meshes by
// decomposing them into signed tetrahedra against the origin. Results are
// meaningful only for closed meshes with outward-oriented winding, which
// is exactly what the mirror pipeline produces.
package analysis

import (
	"math"

	"github.com/philipparndt/gomirror/pkg/geometry"
	"github.com/philipparndt/gomirror/pkg/mesh"
)

// Values this close to zero in the inertia tensor are numerical noise.
const inertiaNoiseThreshold = 1e-10

// MassProperties holds the volume integrals of a closed mesh.
type MassProperties struct {
	Volume       float64
	Mass         float64
	CenterOfMass geometry.Vector3
	// Inertia is the 3x3 inertia tensor about the center of mass,
	// row-major, symmetric.
	Inertia [3][3]float64
}

// Compute integrates volume, center of mass and the inertia tensor for
// the given density. Faces wound inward contribute negative volume, so a
// mesh with inconsistent orientation yields meaningless results.
func Compute(m *mesh.Mesh, density float64) *MassProperties {
	props := &MassProperties{}

	var volume6 float64
	var moment geometry.Vector3
	for _, f := range m.Faces {
		a := m.Vertices[f[0]]
		b := m.Vertices[f[1]]
		c := m.Vertices[f[2]]

		// Six times the signed volume of tetrahedron (origin, a, b, c).
		det := a.Dot(b.Cross(c))
		volume6 += det
		// Tetrahedron centroid is (a+b+c+origin)/4.
		moment = moment.Add(a.Add(b).Add(c).Mul(det / 4.0))
	}

	props.Volume = volume6 / 6.0
	props.Mass = props.Volume * density
	if volume6 != 0 {
		props.CenterOfMass = moment.Mul(1.0 / volume6)
	}

	props.Inertia = inertiaAbout(m, props.CenterOfMass, density)
	return props
}

// inertiaAbout integrates the covariance of each tetrahedron relative to
// the given origin and converts it to an inertia tensor.
func inertiaAbout(m *mesh.Mesh, origin geometry.Vector3, density float64) [3][3]float64 {
	var cov [3][3]float64

	for _, f := range m.Faces {
		pts := [3][3]float64{
			components(m.Vertices[f[0]].Sub(origin)),
			components(m.Vertices[f[1]].Sub(origin)),
			components(m.Vertices[f[2]].Sub(origin)),
		}

		det := m.Vertices[f[0]].Sub(origin).
			Dot(m.Vertices[f[1]].Sub(origin).Cross(m.Vertices[f[2]].Sub(origin)))

		// For tetrahedron (0, p0, p1, p2):
		// integral(x_a x_b) dV = det/120 * sum_{j,k} (1+delta_jk) p_j[a] p_k[b]
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {
				val := 0.0
				for j := 0; j < 3; j++ {
					for k := 0; k < 3; k++ {
						factor := 1.0
						if j == k {
							factor = 2.0
						}
						val += factor * pts[j][a] * pts[k][b]
					}
				}
				term := det / 120.0 * val
				cov[a][b] += term
				if a != b {
					cov[b][a] += term
				}
			}
		}
	}

	var inertia [3][3]float64
	inertia[0][0] = cov[1][1] + cov[2][2]
	inertia[1][1] = cov[0][0] + cov[2][2]
	inertia[2][2] = cov[0][0] + cov[1][1]
	inertia[0][1], inertia[1][0] = -cov[0][1], -cov[0][1]
	inertia[0][2], inertia[2][0] = -cov[0][2], -cov[0][2]
	inertia[1][2], inertia[2][1] = -cov[1][2], -cov[1][2]

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inertia[i][j] *= density
			if math.Abs(inertia[i][j]) < inertiaNoiseThreshold {
				inertia[i][j] = 0
			}
		}
	}

	// Force exact symmetry and positive diagonals against float drift.
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			avg := (inertia[i][j] + inertia[j][i]) / 2.0
			inertia[i][j], inertia[j][i] = avg, avg
		}
		inertia[i][i] = math.Abs(inertia[i][i])
	}

	return inertia
}

func components(v geometry.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
