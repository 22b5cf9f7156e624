// Package scene holds the solid geometry shared between the builder,
// the exporter and the viewer.
package scene

import (
	"sync/atomic"

	"github.com/philipparndt/qrstl/pkg/geometry"
)

// Scene is a concurrency-safe container for a set of boxes. Writers
// publish a complete new set with Replace; readers always observe one
// consistent generation, never a mix of two.
type Scene struct {
	boxes atomic.Pointer[[]geometry.Box]
}

// New returns an empty scene.
func New() *Scene {
	s := &Scene{}
	empty := make([]geometry.Box, 0)
	s.boxes.Store(&empty)
	return s
}

// Replace swaps the scene content in a single atomic step. The input
// slice is copied, so the caller may keep mutating it afterwards.
func (s *Scene) Replace(boxes []geometry.Box) {
	snapshot := make([]geometry.Box, len(boxes))
	copy(snapshot, boxes)
	s.boxes.Store(&snapshot)
}

// Current returns the boxes of the latest published generation. The
// returned slice is shared between all readers and must not be
// modified.
func (s *Scene) Current() []geometry.Box {
	return *s.boxes.Load()
}

// Len reports how many boxes the latest generation holds.
func (s *Scene) Len() int {
	return len(s.Current())
}

// Bounds computes the bounding box enclosing the latest generation.
// The second return value is false for an empty scene.
func (s *Scene) Bounds() (geometry.BoundingBox, bool) {
	boxes := s.Current()
	if len(boxes) == 0 {
		return geometry.BoundingBox{}, false
	}

	bounds := geometry.NewBoundingBox()
	for _, b := range boxes {
		bounds.Extend(b.Min())
		bounds.Extend(b.Max())
	}
	return bounds, true
}
