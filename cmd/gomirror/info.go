package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomirror/pkg/analysis"
	"github.com/philipparndt/gomirror/pkg/geometry"
	"github.com/philipparndt/gomirror/pkg/stl"
)

var infoDensity float64

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show dimensions, triangle count, surface area and mass properties (volume, center of mass, inertia).",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoDensity, "density", 1.0, "Material density for mass properties")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("parsing STL file: %w", err)
	}

	m := stl.ToMesh(model)
	props := analysis.Compute(m, infoDensity)
	bbox := model.BoundingBox()
	size := bbox.Size()

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", model.TriangleCount())
	fmt.Printf("  Unique vertices: %d\n", len(m.Vertices))
	fmt.Printf("  Surface Area: %.6f square units\n\n", model.SurfaceArea())

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", formatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", formatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", formatVector(bbox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", size.X)
	fmt.Printf("  Depth (Y): %.6f units\n", size.Y)
	fmt.Printf("  Height (Z): %.6f units\n", size.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", bbox.Diagonal())

	fmt.Println("Mass Properties (closed meshes only):")
	fmt.Printf("  Volume: %.6f cubic units\n", props.Volume)
	fmt.Printf("  Mass: %.6f (density %.3f)\n", props.Mass, infoDensity)
	fmt.Printf("  Center of Mass: %s\n", formatVector(props.CenterOfMass))
	fmt.Printf("  Inertia diagonal: (%.8f, %.8f, %.8f)\n",
		props.Inertia[0][0], props.Inertia[1][1], props.Inertia[2][2])

	return nil
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
