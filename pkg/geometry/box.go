package geometry

// Material tags a solid with the role it plays in the printed model
type Material uint8

const (
	// MaterialModule is a raised block for one dark barcode module
	MaterialModule Material = iota
	// MaterialBasePlate is the light plate the module blocks sit on
	MaterialBasePlate
)

// String returns a human-readable material name
func (m Material) String() string {
	switch m {
	case MaterialModule:
		return "module"
	case MaterialBasePlate:
		return "base-plate"
	default:
		return "unknown"
	}
}

// Box is an axis-aligned rectangular solid, the atomic unit of the
// printable model. Extents are width (X), depth (Y) and height (Z) and
// must be strictly positive.
type Box struct {
	Center   Vector3
	Extents  Vector3
	Material Material
}

// NewBox creates a new box solid
func NewBox(center, extents Vector3, material Material) Box {
	return Box{Center: center, Extents: extents, Material: material}
}

// Min returns the corner with the smallest coordinates
func (b Box) Min() Vector3 {
	return b.Center.Sub(b.Extents.Mul(0.5))
}

// Max returns the corner with the largest coordinates
func (b Box) Max() Vector3 {
	return b.Center.Add(b.Extents.Mul(0.5))
}

// Bounds returns the bounding box of the solid
func (b Box) Bounds() BoundingBox {
	bbox := NewBoundingBox()
	bbox.Extend(b.Min())
	bbox.Extend(b.Max())
	return bbox
}

// Corners returns the eight corners of the box. Corner i takes the
// maximum bound on axis k when bit k of i is set (x is bit 0, y is
// bit 1, z is bit 2); corners differing in exactly one bit share an
// edge.
func (b Box) Corners() [8]Vector3 {
	min, max := b.Min(), b.Max()

	var corners [8]Vector3
	for i := range corners {
		corner := min
		if i&1 != 0 {
			corner.X = max.X
		}
		if i&2 != 0 {
			corner.Y = max.Y
		}
		if i&4 != 0 {
			corner.Z = max.Z
		}
		corners[i] = corner
	}
	return corners
}

// footprint comparisons tolerate float noise from the scale division
const footprintEpsilon = 1e-9

// FootprintOverlaps reports whether the X/Y footprints of two boxes
// overlap with positive area. Boxes that only share an edge do not
// overlap.
func (b Box) FootprintOverlaps(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	return bMin.X < oMax.X-footprintEpsilon && oMin.X < bMax.X-footprintEpsilon &&
		bMin.Y < oMax.Y-footprintEpsilon && oMin.Y < bMax.Y-footprintEpsilon
}

// FootprintContains reports whether the X/Y footprint of other lies
// entirely within the footprint of b. Matching edges count as inside.
func (b Box) FootprintContains(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	return oMin.X >= bMin.X-footprintEpsilon && oMax.X <= bMax.X+footprintEpsilon &&
		oMin.Y >= bMin.Y-footprintEpsilon && oMax.Y <= bMax.Y+footprintEpsilon
}

// Triangulate tessellates the box surface into exactly 12 triangles.
// Faces are emitted in a fixed canonical order (-X, +X, -Y, +Y, -Z, +Z),
// two triangles per face, wound counter-clockwise when viewed from
// outside the box so every normal points outward.
func (b Box) Triangulate() []Triangle {
	min, max := b.Min(), b.Max()

	// the eight corners, named by which bound each axis takes (xyz)
	p000 := NewVector3(min.X, min.Y, min.Z)
	p001 := NewVector3(min.X, min.Y, max.Z)
	p010 := NewVector3(min.X, max.Y, min.Z)
	p011 := NewVector3(min.X, max.Y, max.Z)
	p100 := NewVector3(max.X, min.Y, min.Z)
	p101 := NewVector3(max.X, min.Y, max.Z)
	p110 := NewVector3(max.X, max.Y, min.Z)
	p111 := NewVector3(max.X, max.Y, max.Z)

	faces := [6]struct {
		normal     Vector3
		a, b, c, d Vector3
	}{
		{NewVector3(-1, 0, 0), p000, p001, p011, p010}, // -X
		{NewVector3(1, 0, 0), p100, p110, p111, p101},  // +X
		{NewVector3(0, -1, 0), p000, p100, p101, p001}, // -Y
		{NewVector3(0, 1, 0), p010, p011, p111, p110},  // +Y
		{NewVector3(0, 0, -1), p000, p010, p110, p100}, // -Z
		{NewVector3(0, 0, 1), p001, p101, p111, p011},  // +Z
	}

	triangles := make([]Triangle, 0, 12)
	for _, face := range faces {
		triangles = append(triangles,
			NewTriangle(face.normal, face.a, face.b, face.c),
			NewTriangle(face.normal, face.a, face.c, face.d),
		)
	}
	return triangles
}
