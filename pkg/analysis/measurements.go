// Package analysis computes printable statistics for STL models
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/qrstl/pkg/geometry"
	"github.com/philipparndt/qrstl/pkg/stl"
)

// Summary contains the measurements of an STL model
type Summary struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Summarize measures an STL model. Volume is the enclosed mesh volume,
// which assumes a closed mesh with outward facing normals.
func Summarize(model *stl.Model) *Summary {
	summary := &Summary{
		BoundingBox:   model.BoundingBox(),
		Volume:        model.Volume(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}
	summary.Dimensions = summary.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	summary.EdgeCount = 3 * summary.TriangleCount
	if summary.EdgeCount > 0 {
		summary.MinEdgeLength = minLength
		summary.MaxEdgeLength = maxLength
		summary.AvgEdgeLength = totalLength / float64(summary.EdgeCount)
	}

	return summary
}

// FormatMeasurement formats a measurement with its unit
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
