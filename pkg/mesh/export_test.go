package mesh

import (
	"bytes"
	"testing"

	"github.com/philipparndt/qrstl/pkg/scene"
	"github.com/philipparndt/qrstl/pkg/stl"
)

func TestExportEmptyScene(t *testing.T) {
	model := Export(scene.New(), "empty")

	if model.TriangleCount() != 0 {
		t.Errorf("triangle count failed: expected 0, got %d", model.TriangleCount())
	}

	data, err := model.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) != 84 {
		t.Errorf("empty export length failed: expected 84, got %d", len(data))
	}
}

func TestExportTriangleCount(t *testing.T) {
	boxes, err := Build(gridOf(t, "##", ".#"), DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	sc := scene.New()
	sc.Replace(boxes)

	model := Export(sc, "tag")
	if want := 12 * len(boxes); model.TriangleCount() != want {
		t.Errorf("triangle count failed: expected %d, got %d", want, model.TriangleCount())
	}
	if model.Name != "tag" {
		t.Errorf("model name failed: expected tag, got %s", model.Name)
	}
}

func TestExportLightGridByteLength(t *testing.T) {
	// A grid without dark modules builds just the plate: 12 triangles,
	// 84 + 12*50 = 684 bytes.
	boxes, err := Build(lightGrid(t, 10), DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	sc := scene.New()
	sc.Replace(boxes)

	data, err := Export(sc, "plate").Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) != 684 {
		t.Errorf("byte length failed: expected 684, got %d", len(data))
	}
}

func TestExportRoundTripsThroughParser(t *testing.T) {
	boxes, err := Build(gridOf(t, "#.", ".#"), DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	sc := scene.New()
	sc.Replace(boxes)
	model := Export(sc, "tag")

	data, err := model.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	parsed, err := stl.ParseReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if parsed.TriangleCount() != model.TriangleCount() {
		t.Errorf("round trip count failed: expected %d, got %d",
			model.TriangleCount(), parsed.TriangleCount())
	}
}

func TestExportKeepsSceneOrder(t *testing.T) {
	boxes, err := Build(gridOf(t, "#.", ".."), DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	sc := scene.New()
	sc.Replace(boxes)
	model := Export(sc, "tag")

	// First 12 triangles come from the module above the plate, the last
	// 12 from the plate below it.
	for _, tri := range model.Triangles[:12] {
		if tri.V1.Z < 0 || tri.V2.Z < 0 || tri.V3.Z < 0 {
			t.Fatal("module triangles must not reach below z 0")
		}
	}
	for _, tri := range model.Triangles[12:] {
		if tri.V1.Z > 0 || tri.V2.Z > 0 || tri.V3.Z > 0 {
			t.Fatal("plate triangles must not reach above z 0")
		}
	}
}
