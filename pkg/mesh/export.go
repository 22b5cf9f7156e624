package mesh

import (
	"github.com/philipparndt/qrstl/pkg/scene"
	"github.com/philipparndt/qrstl/pkg/stl"
)

// Export snapshots the scene once and triangulates every solid, in
// scene order, into an STL model. An empty scene exports a valid model
// with zero triangles.
func Export(sc *scene.Scene, name string) *stl.Model {
	model := stl.NewModel(name)
	for _, box := range sc.Current() {
		model.AddTriangles(box.Triangulate()...)
	}
	return model
}
