package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/qrstl/pkg/geometry"
)

const (
	headerSize = 80

	// 12 little-endian float32 values plus the 2 attribute bytes
	triangleSize = 50
)

// binaryTriangle is the wire layout of one triangle record
type binaryTriangle struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

// Write serializes the model in binary STL format: the 80-byte header,
// a little-endian uint32 triangle count, then one 50-byte record per
// triangle. The total output is exactly 84 + 50*TriangleCount bytes.
func Write(w io.Writer, m *Model) error {
	if _, err := w.Write(binaryHeader(m.Name)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range m.Triangles {
		record := binaryTriangle{
			Normal: vec32(triangle.Normal),
			V1:     vec32(triangle.V1),
			V2:     vec32(triangle.V2),
			V3:     vec32(triangle.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	return nil
}

// WriteASCII serializes the model in ASCII STL format
func WriteASCII(w io.Writer, m *Model) error {
	writer := bufio.NewWriter(w)

	name := m.Name
	if name == "" {
		name = DefaultName
	}

	fmt.Fprintf(writer, "solid %s\n", name)
	for _, t := range m.Triangles {
		fmt.Fprintf(writer, "  facet normal %g %g %g\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(writer, "    outer loop\n")
		fmt.Fprintf(writer, "      vertex %g %g %g\n", t.V1.X, t.V1.Y, t.V1.Z)
		fmt.Fprintf(writer, "      vertex %g %g %g\n", t.V2.X, t.V2.Y, t.V2.Z)
		fmt.Fprintf(writer, "      vertex %g %g %g\n", t.V3.X, t.V3.Y, t.V3.Z)
		fmt.Fprintf(writer, "    endloop\n")
		fmt.Fprintf(writer, "  endfacet\n")
	}
	fmt.Fprintf(writer, "endsolid %s\n", name)

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// Bytes serializes the model into an in-memory binary STL buffer
func (m *Model) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize + 4 + triangleSize*len(m.Triangles))

	if err := Write(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the model to a binary STL file
func WriteFile(filename string, m *Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, m); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// binaryHeader renders the model name into the fixed 80-byte header.
// Names that would collide with the ASCII magic get a marker byte in
// front so readers keep detecting the file as binary.
func binaryHeader(name string) []byte {
	header := make([]byte, headerSize)

	if name == "" {
		name = DefaultName
	}
	if strings.HasPrefix(name, asciiMagic) {
		name = "#" + name
	}

	copy(header, name)
	return header
}

func vec32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
