package voxel

import (
	"github.com/gekko3d/overhang/spatial"
)

// FieldAccessor is a logical read/write view over a cube's field values
// including one grid-point-deep "feathered" slabs on each of the six faces.
// A density source whose influence straddles the cube boundary writes into
// the slab instead of aliasing the neighbor cube; a later synchronization
// step propagates slab edits to the neighbor.
type FieldAccessor struct {
	desc   *CubeDescriptor
	values []FieldStrength
	slabs  [spatial.CountOrthogonalNeighbors][]FieldStrength
	// Writes that overreach diagonally (edge or corner of the feathered
	// boundary) land here and are discarded.
	dummy FieldStrength
}

// NewFieldAccessor wraps the main value array with freshly zeroed slabs.
func NewFieldAccessor(desc *CubeDescriptor, values []FieldStrength) *FieldAccessor {
	fa := &FieldAccessor{desc: desc, values: values}
	for s := range fa.slabs {
		fa.slabs[s] = make([]FieldStrength, desc.SidePointCount)
	}
	return fa
}

// Clear zeroes the field and every slab.
func (fa *FieldAccessor) Clear() {
	for i := range fa.values {
		fa.values[i] = 0
	}
	for s := range fa.slabs {
		for i := range fa.slabs[s] {
			fa.slabs[s][i] = 0
		}
	}
}

// Slab exposes the feathered plane of one face.
func (fa *FieldAccessor) Slab(side spatial.OrthogonalNeighbor) []FieldStrength {
	return fa.slabs[side]
}

// sideOf classifies a feathered coordinate triple: which orthogonal face
// the out-of-range axis points at, or OrthoNaN when all axes are interior,
// or a diagonal overreach.
func (fa *FieldAccessor) sideOf(x, y, z int) (spatial.OrthogonalNeighbor, bool) {
	max := int(fa.desc.Dimensions) + 1
	t3ds := spatial.GetTouch3DSide(
		spatial.GetTouchStatus(x, -1, max),
		spatial.GetTouchStatus(y, -1, max),
		spatial.GetTouchStatus(z, -1, max),
	)
	if t3ds == spatial.Touch3DNone {
		return spatial.OrthoNaN, false
	}
	m3n := spatial.Moore3DNeighborOf(t3ds)
	if m3n < 0 || int(m3n) >= spatial.CountOrthogonalNeighbors {
		return spatial.OrthoNaN, true // diagonal: discard
	}
	return spatial.OrthogonalNeighbor(m3n), false
}

// slabIndex flattens the two in-plane coordinates of a face position.
func (fa *FieldAccessor) slabIndex(side spatial.OrthogonalNeighbor, x, y, z int) int {
	side1 := int(fa.desc.Dimensions) + 1
	var u, v int
	switch side {
	case spatial.OrthoNorth, spatial.OrthoSouth:
		u, v = x, y
	case spatial.OrthoEast, spatial.OrthoWest:
		u, v = z, y
	default: // above, below
		u, v = x, z
	}
	return v*side1 + u
}

// cellRef resolves a feathered coordinate to its storage cell.
func (fa *FieldAccessor) cellRef(x, y, z int) *FieldStrength {
	side, diagonal := fa.sideOf(x, y, z)
	if diagonal {
		return &fa.dummy
	}
	if side == spatial.OrthoNaN {
		return &fa.values[fa.desc.GridPointIndex(x, y, z)]
	}
	return &fa.slabs[side][fa.slabIndex(side, x, y, z)]
}

// At reads the field at feathered coordinates in [-1 .. side+1].
func (fa *FieldAccessor) At(x, y, z int) FieldStrength {
	return *fa.cellRef(x, y, z)
}

// Set writes the field at feathered coordinates in [-1 .. side+1]. Diagonal
// overreach is silently discarded.
func (fa *FieldAccessor) Set(x, y, z int, v FieldStrength) {
	*fa.cellRef(x, y, z) = v
}

// FieldCell is one position visited by a field iteration.
type FieldCell struct {
	X, Y, Z int
	Value   *FieldStrength
}

// FieldIterator is a lazy single-pass traversal of a feathered box: the six
// face slabs first in orthogonal-neighbor order, then the interior with z
// as the outermost axis. It is not restartable.
type FieldIterator struct {
	fa       *FieldAccessor
	min, max [3]int

	phase int // 0..5 slab per orthogonal neighbor, 6 interior, 7 done
	x, y, z  int
	started  bool

	Cur FieldCell
}

// Iterate visits every field cell inside the inclusive bounding box,
// feathered positions included.
func (fa *FieldAccessor) Iterate(x0, y0, z0, xN, yN, zN int) *FieldIterator {
	return &FieldIterator{
		fa:  fa,
		min: [3]int{x0, y0, z0},
		max: [3]int{xN, yN, zN},
	}
}

func clampInt(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// slabRange yields the in-slab 3D coordinate bounds of the phase's face
// clipped against the iteration box, and whether the face intersects it.
func (it *FieldIterator) slabRange(side spatial.OrthogonalNeighbor) (fixed [3]int, a0, a1, b0, b1, axA, axB int, ok bool) {
	dim := int(it.fa.desc.Dimensions)
	var faceAxis, faceCoord int
	switch side {
	case spatial.OrthoNorth:
		faceAxis, faceCoord = 2, -1
	case spatial.OrthoSouth:
		faceAxis, faceCoord = 2, dim+1
	case spatial.OrthoWest:
		faceAxis, faceCoord = 0, -1
	case spatial.OrthoEast:
		faceAxis, faceCoord = 0, dim+1
	case spatial.OrthoBelow:
		faceAxis, faceCoord = 1, -1
	default:
		faceAxis, faceCoord = 1, dim+1
	}
	if it.min[faceAxis] > faceCoord || it.max[faceAxis] < faceCoord {
		return fixed, 0, 0, 0, 0, 0, 0, false
	}
	fixed[faceAxis] = faceCoord
	axA, axB = (faceAxis+1)%3, (faceAxis+2)%3
	a0 = clampInt(0, dim, it.min[axA])
	a1 = clampInt(0, dim, it.max[axA])
	b0 = clampInt(0, dim, it.min[axB])
	b1 = clampInt(0, dim, it.max[axB])
	return fixed, a0, a1, b0, b1, axA, axB, true
}

// Next advances to the following cell, reporting false when exhausted.
func (it *FieldIterator) Next() bool {
	dim := int(it.fa.desc.Dimensions)
	for it.phase < spatial.CountOrthogonalNeighbors {
		side := spatial.OrthogonalNeighbor(it.phase)
		fixed, a0, a1, b0, b1, axA, axB, ok := it.slabRange(side)
		if !ok || a0 > a1 || b0 > b1 {
			it.phase++
			it.started = false
			continue
		}
		if !it.started {
			it.x, it.y = a0, b0 // x:=axA cursor, y:=axB cursor
			it.started = true
		} else {
			it.x++
			if it.x > a1 {
				it.x = a0
				it.y++
			}
			if it.y > b1 {
				it.phase++
				it.started = false
				continue
			}
		}
		var c [3]int
		c = fixed
		c[axA] = it.x
		c[axB] = it.y
		it.Cur = FieldCell{X: c[0], Y: c[1], Z: c[2], Value: it.fa.cellRef(c[0], c[1], c[2])}
		return true
	}

	if it.phase == spatial.CountOrthogonalNeighbors {
		x0 := clampInt(0, dim, it.min[0])
		y0 := clampInt(0, dim, it.min[1])
		z0 := clampInt(0, dim, it.min[2])
		xN := clampInt(0, dim, it.max[0])
		yN := clampInt(0, dim, it.max[1])
		zN := clampInt(0, dim, it.max[2])
		if it.min[0] > dim || it.max[0] < 0 ||
			it.min[1] > dim || it.max[1] < 0 ||
			it.min[2] > dim || it.max[2] < 0 {
			it.phase++
			return false
		}
		if !it.started {
			it.x, it.y, it.z = x0, y0, z0
			it.started = true
		} else {
			it.x++
			if it.x > xN {
				it.x = x0
				it.y++
			}
			if it.y > yN {
				it.y = y0
				it.z++
			}
			if it.z > zN {
				it.phase++
				return false
			}
		}
		it.Cur = FieldCell{
			X: it.x, Y: it.y, Z: it.z,
			Value: &it.fa.values[it.fa.desc.GridPointIndex(it.x, it.y, it.z)],
		}
		return true
	}
	return false
}

// GradientSample is the pair of field samples bracketing one voxel along a
// single axis.
type GradientSample struct {
	X, Y, Z     int
	Index       VoxelIndex
	Left, Right FieldStrength
}

// GradientIterator walks the interior of a box yielding left/right samples
// along one component, pulling from the slabs where the voxel is flush with
// a face.
type GradientIterator struct {
	fa        *FieldAccessor
	component int
	min, max  [3]int
	x, y, z   int
	started   bool

	Cur GradientSample
}

// IterateGradient visits every interior voxel of the clamped box.
func (fa *FieldAccessor) IterateGradient(component int, x0, y0, z0, xN, yN, zN int) *GradientIterator {
	dim := int(fa.desc.Dimensions)
	return &GradientIterator{
		fa:        fa,
		component: component,
		min:       [3]int{clampInt(0, dim, x0), clampInt(0, dim, y0), clampInt(0, dim, z0)},
		max:       [3]int{clampInt(0, dim, xN), clampInt(0, dim, yN), clampInt(0, dim, zN)},
	}
}

// IterateGradientFull visits every interior voxel of the cube.
func (fa *FieldAccessor) IterateGradientFull(component int) *GradientIterator {
	dim := int(fa.desc.Dimensions)
	return fa.IterateGradient(component, 0, 0, 0, dim, dim, dim)
}

// Next advances to the following voxel, reporting false when exhausted.
func (it *GradientIterator) Next() bool {
	if !it.started {
		it.x, it.y, it.z = it.min[0], it.min[1], it.min[2]
		it.started = true
	} else {
		it.x++
		if it.x > it.max[0] {
			it.x = it.min[0]
			it.y++
		}
		if it.y > it.max[1] {
			it.y = it.min[1]
			it.z++
		}
		if it.z > it.max[2] {
			return false
		}
	}

	var dx, dy, dz int
	switch it.component {
	case 0:
		dx = 1
	case 1:
		dy = 1
	default:
		dz = 1
	}
	it.Cur = GradientSample{
		X: it.x, Y: it.y, Z: it.z,
		Index: it.fa.desc.GridPointIndex(it.x, it.y, it.z),
		Left:  it.fa.At(it.x-dx, it.y-dy, it.z-dz),
		Right: it.fa.At(it.x+dx, it.y+dy, it.z+dz),
	}
	return true
}
