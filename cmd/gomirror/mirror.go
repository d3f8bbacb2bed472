package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomirror/internal/logger"
	"github.com/philipparndt/gomirror/pkg/mesh"
	"github.com/philipparndt/gomirror/pkg/stl"
)

var (
	mirrorAxis          string
	mirrorOut           string
	mirrorASCII         bool
	mirrorEpsilon       float64
	mirrorVertexNormals bool
	mirrorJobs          int
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror [file]",
	Short: "Mirror an STL file across an axis plane",
	Long: `Mirror an STL model across the x=0, y=0 or z=0 plane. Face winding is
reversed to keep normals pointing outward, and all normals are recomputed
from the corrected winding.`,
	Args: cobra.ExactArgs(1),
	RunE: runMirror,
}

func init() {
	rootCmd.AddCommand(mirrorCmd)

	mirrorCmd.Flags().StringVarP(&mirrorAxis, "axis", "a", "y", "Mirror axis (x, y or z)")
	mirrorCmd.Flags().StringVarP(&mirrorOut, "out", "o", "", "Output file (default mirrored_<name> next to the input)")
	mirrorCmd.Flags().BoolVar(&mirrorASCII, "ascii", false, "Write ASCII STL instead of binary")
	mirrorCmd.Flags().Float64Var(&mirrorEpsilon, "epsilon", 0, "Relative degenerate-face threshold")
	mirrorCmd.Flags().BoolVar(&mirrorVertexNormals, "vertex-normals", true, "Compute smoothed per-vertex normals")
	mirrorCmd.Flags().IntVarP(&mirrorJobs, "jobs", "j", 0, "Parallel workers for normal recomputation")
}

func runMirror(cmd *cobra.Command, args []string) error {
	filename := args[0]

	transform, err := axisTransform(mirrorAxis)
	if err != nil {
		return err
	}

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("parsing STL file: %w", err)
	}

	m := stl.ToMesh(model)
	logger.Sugar.Infow("loaded model",
		"file", filename,
		"triangles", model.TriangleCount(),
		"vertices", len(m.Vertices))

	opts := cfg.Options()
	if cmd.Flags().Changed("epsilon") {
		opts.Epsilon = mirrorEpsilon
	}
	if cmd.Flags().Changed("vertex-normals") {
		opts.VertexNormals = mirrorVertexNormals
	}
	if cmd.Flags().Changed("jobs") {
		opts.Parallelism = mirrorJobs
	}
	ascii := cfg.Mirror.ASCII
	if cmd.Flags().Changed("ascii") {
		ascii = mirrorASCII
	}

	mirrored, report, err := mesh.Mirror(m, transform, opts)
	if err != nil {
		return err
	}
	logger.Sugar.Infow("mirrored mesh",
		"axis", strings.ToLower(mirrorAxis),
		"determinant_sign", transform.DeterminantSign())
	logReport(report)

	outPath := mirrorOut
	if outPath == "" {
		outPath = mirroredFilename(filename)
	}

	result := stl.FromMesh(mirrored, model.Name)
	if err := stl.WriteFile(outPath, result, ascii); err != nil {
		return fmt.Errorf("writing STL file: %w", err)
	}
	logger.Sugar.Infow("wrote mirrored STL", "file", outPath, "ascii", ascii)

	return nil
}

// axisTransform maps an axis name to the reflection across its plane.
func axisTransform(axis string) (mesh.ReflectionTransform, error) {
	switch strings.ToLower(axis) {
	case "x":
		return mesh.MirrorX(), nil
	case "y":
		return mesh.MirrorY(), nil
	case "z":
		return mesh.MirrorZ(), nil
	}
	return mesh.ReflectionTransform{}, fmt.Errorf("unknown axis %q, expected x, y or z", axis)
}

// mirroredFilename places the output next to the input with the
// mirrored_ prefix.
func mirroredFilename(path string) string {
	dir, file := filepath.Split(path)
	return filepath.Join(dir, "mirrored_"+file)
}

func logReport(r *mesh.Report) {
	if r.Clean() {
		logger.Sugar.Info("mesh is closed and manifold, no findings")
		return
	}
	if n := len(r.BoundaryEdges); n > 0 {
		logger.Sugar.Warnw("mesh is open", "boundary_edges", n)
	}
	if n := len(r.NonManifoldEdges); n > 0 {
		logger.Sugar.Warnw("mesh has non-manifold edges", "edges", n)
	}
	if n := len(r.DuplicateFaces); n > 0 {
		logger.Sugar.Warnw("mesh has duplicate faces", "pairs", n)
	}
	for _, d := range r.Degenerate {
		logger.Sugar.Warnw("degenerate face, zero normal assigned", "face", d.Face)
	}
}
