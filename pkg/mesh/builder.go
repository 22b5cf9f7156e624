// Package mesh turns a QR module grid into printable solid geometry
// and assembles scenes into serializable STL models.
package mesh

import (
	"errors"
	"fmt"

	"github.com/philipparndt/qrstl/pkg/geometry"
	"github.com/philipparndt/qrstl/pkg/qr"
)

// ErrInvalidParameter rejects build options that cannot describe a
// printable solid
var ErrInvalidParameter = errors.New("invalid parameter")

// Options holds the physical dimensions of the printed tag, in
// millimeters
type Options struct {
	// FootprintMM is the edge length of the square QR area, border
	// excluded
	FootprintMM float64

	// BorderMM is the extra base plate margin around the QR area. It
	// must be positive; scanners need a quiet zone around the modules.
	BorderMM float64

	// ModuleThicknessMM is how far dark modules rise above the plate
	ModuleThicknessMM float64

	// BaseThicknessMM is the height of the base plate
	BaseThicknessMM float64
}

// DefaultOptions returns the stock tag dimensions
func DefaultOptions() Options {
	return Options{
		FootprintMM:       80,
		BorderMM:          5,
		ModuleThicknessMM: 2,
		BaseThicknessMM:   5,
	}
}

func (o Options) validate() error {
	if o.FootprintMM <= 0 {
		return fmt.Errorf("%w: footprint must be positive, got %v", ErrInvalidParameter, o.FootprintMM)
	}
	if o.BorderMM <= 0 {
		return fmt.Errorf("%w: border must be positive, got %v", ErrInvalidParameter, o.BorderMM)
	}
	if o.ModuleThicknessMM <= 0 {
		return fmt.Errorf("%w: module thickness must be positive, got %v", ErrInvalidParameter, o.ModuleThicknessMM)
	}
	if o.BaseThicknessMM <= 0 {
		return fmt.Errorf("%w: base thickness must be positive, got %v", ErrInvalidParameter, o.BaseThicknessMM)
	}
	return nil
}

// Build places one box per dark module plus the base plate underneath.
// The grid is centered on the origin with the plate top face on z = 0;
// grid rows grow towards negative y so the tag reads correctly from
// above. Build is pure: the same grid and options always produce the
// same boxes in the same order, dark modules row by row and the plate
// last.
func Build(grid *qr.Grid, opts Options) ([]geometry.Box, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if grid == nil || grid.Size() == 0 {
		return nil, fmt.Errorf("%w: empty module grid", ErrInvalidParameter)
	}
	size := grid.Size()

	scale := opts.FootprintMM / float64(size)
	half := opts.FootprintMM / 2
	moduleExtents := geometry.NewVector3(scale, scale, opts.ModuleThicknessMM)

	boxes := make([]geometry.Box, 0, grid.DarkCount()+1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !grid.At(x, y) {
				continue
			}
			center := geometry.NewVector3(
				float64(x)*scale-half+scale/2,
				-(float64(y)*scale - half + scale/2),
				opts.ModuleThicknessMM/2,
			)
			boxes = append(boxes, geometry.NewBox(center, moduleExtents, geometry.MaterialModule))
		}
	}

	plateEdge := opts.FootprintMM + 2*opts.BorderMM
	boxes = append(boxes, geometry.NewBox(
		geometry.NewVector3(0, 0, -opts.BaseThicknessMM/2),
		geometry.NewVector3(plateEdge, plateEdge, opts.BaseThicknessMM),
		geometry.MaterialBasePlate,
	))

	return boxes, nil
}
