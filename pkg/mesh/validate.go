package mesh

import "sort"

// Edge is an undirected edge between two vertex indices, A < B.
type Edge struct {
	A, B int
}

// Report collects the non-fatal diagnostics of a pipeline run. None of
// its findings block completion; they exist for callers (exporters,
// repair tools) that want to act on them.
type Report struct {
	// BoundaryEdges are edges used by exactly one face, indicating an
	// open mesh.
	BoundaryEdges []Edge
	// NonManifoldEdges are edges used by more than two faces.
	NonManifoldEdges []Edge
	// DuplicateFaces are pairs (first, duplicate) of faces sharing the
	// same vertex set, regardless of winding.
	DuplicateFaces [][2]int
	// Degenerate lists faces with zero or near-zero area, as reported by
	// normal recomputation.
	Degenerate []*DegenerateFaceError
}

// Clean reports whether no diagnostic of any kind was recorded.
func (r *Report) Clean() bool {
	return len(r.BoundaryEdges) == 0 &&
		len(r.NonManifoldEdges) == 0 &&
		len(r.DuplicateFaces) == 0 &&
		len(r.Degenerate) == 0
}

// ValidateConsistency inspects edge topology and duplicate faces. It is a
// read-only pass: the mesh is never mutated and no finding is fatal.
// Findings are ordered deterministically.
func ValidateConsistency(m *Mesh) *Report {
	report := &Report{}

	edgeUses := make(map[Edge]int)
	for _, f := range m.Faces {
		for e := 0; e < 3; e++ {
			a, b := f[e], f[(e+1)%3]
			if a > b {
				a, b = b, a
			}
			edgeUses[Edge{A: a, B: b}]++
		}
	}
	for edge, uses := range edgeUses {
		switch {
		case uses == 1:
			report.BoundaryEdges = append(report.BoundaryEdges, edge)
		case uses > 2:
			report.NonManifoldEdges = append(report.NonManifoldEdges, edge)
		}
	}
	sortEdges(report.BoundaryEdges)
	sortEdges(report.NonManifoldEdges)

	seen := make(map[[3]int]int, len(m.Faces))
	for i, f := range m.Faces {
		key := sortedIndices(f)
		if first, ok := seen[key]; ok {
			report.DuplicateFaces = append(report.DuplicateFaces, [2]int{first, i})
		} else {
			seen[key] = i
		}
	}

	return report
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
}

// sortedIndices returns the face's vertex set as an ordered triple, so
// faces compare equal independent of winding.
func sortedIndices(f Face) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
