package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Write encodes the model in binary STL format
func Write(w io.Writer, model *Model) error {
	if len(model.Triangles) > math.MaxUint32 {
		return fmt.Errorf("model has %d triangles, STL supports at most %d",
			len(model.Triangles), uint32(math.MaxUint32))
	}

	// 80-byte header carrying the model name
	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		record := [12]float32{
			float32(triangle.Normal.X), float32(triangle.Normal.Y), float32(triangle.Normal.Z),
			float32(triangle.V1.X), float32(triangle.V1.Y), float32(triangle.V1.Z),
			float32(triangle.V2.X), float32(triangle.V2.Y), float32(triangle.V2.Z),
			float32(triangle.V3.X), float32(triangle.V3.Y), float32(triangle.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		// Attribute byte count, always zero
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}

	return nil
}

// WriteASCII encodes the model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)

	name := model.Name
	if name == "" {
		name = "model"
	}

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, triangle := range model.Triangles {
		fmt.Fprintf(bw, "  facet normal %g %g %g\n",
			triangle.Normal.X, triangle.Normal.Y, triangle.Normal.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		fmt.Fprintf(bw, "      vertex %g %g %g\n", triangle.V1.X, triangle.V1.Y, triangle.V1.Z)
		fmt.Fprintf(bw, "      vertex %g %g %g\n", triangle.V2.X, triangle.V2.Y, triangle.V2.Z)
		fmt.Fprintf(bw, "      vertex %g %g %g\n", triangle.V3.X, triangle.V3.Y, triangle.V3.Z)
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

// WriteFile writes the model to a file, binary by default
func WriteFile(filename string, model *Model, ascii bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if ascii {
		return WriteASCII(file, model)
	}
	return Write(file, model)
}
