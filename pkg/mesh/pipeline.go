package mesh

// Options control normal recomputation in the mirror pipeline.
type Options struct {
	// Epsilon is the relative degeneracy threshold for face normals.
	// Values <= 0 fall back to DefaultEpsilon.
	Epsilon float64
	// VertexNormals enables the smoothed per-vertex normal pass.
	VertexNormals bool
	// Parallelism is the number of goroutines used for per-face work.
	// Values <= 1 keep the computation serial.
	Parallelism int
}

// DefaultOptions returns the options used by the CLI unless overridden.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		VertexNormals: true,
		Parallelism:   1,
	}
}

// Mirror runs the full pipeline: structural validation, reflection of all
// vertex positions, determinant-based winding correction, normal
// recomputation and a consistency pass. The input mesh is never mutated;
// the returned mesh is a corrected private copy.
//
// Fatal conditions, an out-of-range face index (*InvalidMeshError) or a
// singular transform (*InvalidTransformError), abort before any mesh
// mutation. Degenerate faces and topology findings accumulate in the
// returned Report instead.
func Mirror(m *Mesh, t ReflectionTransform, opts Options) (*Mesh, *Report, error) {
	if err := m.ValidateStructure(); err != nil {
		return nil, nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, nil, err
	}

	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = t.Apply(v)
	}
	// Positions changed; any cached normals are stale now.
	out.invalidateNormals()

	correctWinding(out, t.DeterminantSign())

	degenerate := out.RecomputeFaceNormals(opts.Epsilon, opts.Parallelism)
	if opts.VertexNormals {
		out.RecomputeVertexNormals()
	}

	report := ValidateConsistency(out)
	report.Degenerate = degenerate

	return out, report, nil
}
