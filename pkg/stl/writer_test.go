package stl

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/qrstl/pkg/geometry"
)

// testModel builds a small closed mesh from float32 exact coordinates,
// so binary round trips can be compared without tolerance.
func testModel(name string) *Model {
	model := NewModel(name)
	box := geometry.NewBox(
		geometry.NewVector3(0.5, -1.25, 2),
		geometry.NewVector3(1, 2.5, 0.5),
		geometry.MaterialModule,
	)
	model.AddTriangles(box.Triangulate()...)
	return model
}

func TestWriteEmptyModelLength(t *testing.T) {
	data, err := NewModel("empty").Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	if len(data) != 84 {
		t.Errorf("empty model length failed: expected 84, got %d", len(data))
	}
	if count := binary.LittleEndian.Uint32(data[80:84]); count != 0 {
		t.Errorf("triangle count failed: expected 0, got %d", count)
	}
}

func TestWriteLengthFormula(t *testing.T) {
	model := testModel("badge")

	data, err := model.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	expected := 84 + 50*model.TriangleCount()
	if len(data) != expected {
		t.Errorf("length failed: expected %d, got %d", expected, len(data))
	}
	if count := binary.LittleEndian.Uint32(data[80:84]); count != 12 {
		t.Errorf("triangle count failed: expected 12, got %d", count)
	}
}

func TestWriteAttributeBytesAreZero(t *testing.T) {
	data, err := testModel("badge").Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	// The last two bytes of every 50-byte record are the attribute count
	for i := 0; i < 12; i++ {
		offset := 84 + i*50 + 48
		if data[offset] != 0 || data[offset+1] != 0 {
			t.Errorf("attribute bytes of triangle %d are not zero", i)
		}
	}
}

func TestWriteHeaderNeverStartsWithSolid(t *testing.T) {
	for _, name := range []string{"", "badge", "solid", "solidpart"} {
		model := NewModel(name)
		data, err := model.Bytes()
		if err != nil {
			t.Fatalf("Bytes failed for %q: %v", name, err)
		}
		if strings.HasPrefix(string(data[:5]), "solid") {
			t.Errorf("header for name %q starts with the ASCII magic", name)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	model := testModel("badge")

	data, err := model.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	parsed, err := ParseReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if parsed.Name != "badge" {
		t.Errorf("name failed: expected badge, got %s", parsed.Name)
	}
	if parsed.TriangleCount() != model.TriangleCount() {
		t.Fatalf("triangle count failed: expected %d, got %d",
			model.TriangleCount(), parsed.TriangleCount())
	}
	for i, original := range model.Triangles {
		got := parsed.Triangles[i]
		if got.Normal != original.Normal || got.V1 != original.V1 ||
			got.V2 != original.V2 || got.V3 != original.V3 {
			t.Errorf("triangle %d failed: expected %+v, got %+v", i, original, got)
		}
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	model := testModel("badge")

	var buf bytes.Buffer
	if err := WriteASCII(&buf, model); err != nil {
		t.Fatalf("WriteASCII failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "solid badge\n") {
		t.Errorf("ASCII output should start with the solid line, got %q",
			buf.String()[:20])
	}

	parsed, err := ParseReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if parsed.Name != "badge" {
		t.Errorf("name failed: expected badge, got %s", parsed.Name)
	}
	if parsed.TriangleCount() != model.TriangleCount() {
		t.Fatalf("triangle count failed: expected %d, got %d",
			model.TriangleCount(), parsed.TriangleCount())
	}
	for i, original := range model.Triangles {
		got := parsed.Triangles[i]
		if got.V1 != original.V1 || got.V2 != original.V2 || got.V3 != original.V3 {
			t.Errorf("triangle %d failed: expected %+v, got %+v", i, original, got)
		}
	}
}

func TestWriteFileAndParse(t *testing.T) {
	model := testModel("badge")
	path := filepath.Join(t.TempDir(), "badge.stl")

	if err := WriteFile(path, model); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	parsed, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.TriangleCount() != 12 {
		t.Errorf("triangle count failed: expected 12, got %d", parsed.TriangleCount())
	}
}

func TestParseReaderRejectsShortInput(t *testing.T) {
	_, err := ParseReader(bytes.NewReader([]byte{0x42}))
	if err == nil {
		t.Error("ParseReader should fail for a truncated stream")
	}
}

func TestParseBinaryTruncatedRecord(t *testing.T) {
	data, err := testModel("badge").Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	_, err = ParseReader(bytes.NewReader(data[:len(data)-10]))
	if err == nil {
		t.Error("ParseReader should fail when a triangle record is cut off")
	}
}
