package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomirror/pkg/mesh"
	"github.com/philipparndt/gomirror/pkg/stl"
)

// Listing every edge of a broken scan is useless; cap the detail output.
const maxListedFindings = 20

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report consistency diagnostics for an STL file",
	Long: `Check an STL model for open boundaries, non-manifold edges, duplicate
faces and degenerate faces. Findings are advisory; the command always
completes on structurally valid input.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("parsing STL file: %w", err)
	}

	m := stl.ToMesh(model)
	if err := m.ValidateStructure(); err != nil {
		return err
	}

	degenerate := m.RecomputeFaceNormals(cfg.Mirror.Epsilon, cfg.Mirror.Jobs)
	report := mesh.ValidateConsistency(m)
	report.Degenerate = degenerate

	fmt.Println("Mesh Consistency Report")
	fmt.Println("=======================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Faces: %d, unique vertices: %d\n\n", len(m.Faces), len(m.Vertices))

	if report.Clean() {
		fmt.Println("No findings: mesh is closed, manifold and non-degenerate.")
		return nil
	}

	if n := len(report.BoundaryEdges); n > 0 {
		fmt.Printf("Boundary edges (open mesh): %d\n", n)
		for i, e := range report.BoundaryEdges {
			if i == maxListedFindings {
				fmt.Printf("  ... and %d more\n", n-maxListedFindings)
				break
			}
			fmt.Printf("  edge %d-%d\n", e.A, e.B)
		}
	}
	if n := len(report.NonManifoldEdges); n > 0 {
		fmt.Printf("Non-manifold edges: %d\n", n)
		for i, e := range report.NonManifoldEdges {
			if i == maxListedFindings {
				fmt.Printf("  ... and %d more\n", n-maxListedFindings)
				break
			}
			fmt.Printf("  edge %d-%d\n", e.A, e.B)
		}
	}
	if n := len(report.DuplicateFaces); n > 0 {
		fmt.Printf("Duplicate faces: %d\n", n)
		for i, pair := range report.DuplicateFaces {
			if i == maxListedFindings {
				fmt.Printf("  ... and %d more\n", n-maxListedFindings)
				break
			}
			fmt.Printf("  face %d duplicates face %d\n", pair[1], pair[0])
		}
	}
	if n := len(report.Degenerate); n > 0 {
		fmt.Printf("Degenerate faces: %d\n", n)
		for i, d := range report.Degenerate {
			if i == maxListedFindings {
				fmt.Printf("  ... and %d more\n", n-maxListedFindings)
				break
			}
			fmt.Printf("  face %d has zero or near-zero area\n", d.Face)
		}
	}

	return nil
}
