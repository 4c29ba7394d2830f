package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is an origin and a direction in world units. Direction need not be
// normalized; distances reported by the walker are in world units along the
// normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the normalized direction.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Normalize().Mul(t))
}

// DiscreteRayIterator walks a ray through a uniform 3D grid cell by cell.
// Each step yields the cell entered, the face it was entered through, the
// linear distance traversed so far, and the intersection point with the
// entry face. The walker starts inside the cell containing the ray origin
// with no entry face.
type DiscreteRayIterator struct {
	ray    Ray
	offset mgl32.Vec3
	dir    mgl32.Vec3

	span float32  // current cell size in world units
	cell [3]int64 // current cell coordinates at the current span

	// Fractional position within the current cell per axis, in [0,1).
	walker [3]float64
	// Per-axis distance along the ray to cross one cell, +Inf for zero
	// direction components.
	incr [3]float64
	// Step sign per axis, -1, 0 or +1.
	step [3]int64

	dist  float64     // linear distance traversed, in cells of the current span
	entry Touch3DSide // side of the current cell crossed to enter it
}

// NewDiscreteRayIterator positions a walker over a grid of the given cell
// size. The offset shifts the grid origin in world units.
func NewDiscreteRayIterator(ray Ray, cellSize float32, offset mgl32.Vec3) *DiscreteRayIterator {
	it := &DiscreteRayIterator{
		ray:    ray,
		offset: offset,
		dir:    ray.Direction.Normalize(),
		span:   cellSize,
	}
	p := ray.Origin.Sub(offset)
	for a := 0; a < 3; a++ {
		fp := float64(p[a]) / float64(cellSize)
		c := math.Floor(fp)
		it.cell[a] = int64(c)
		frac := fp - c

		d := float64(it.dir[a])
		switch {
		case d > 0:
			it.step[a] = 1
			it.incr[a] = 1 / d
			it.walker[a] = frac
		case d < 0:
			it.step[a] = -1
			it.incr[a] = -1 / d
			it.walker[a] = 1 - frac
		default:
			it.step[a] = 0
			it.incr[a] = math.Inf(1)
			it.walker[a] = 0
		}
	}
	return it
}

// Cell returns the coordinates of the current cell.
func (it *DiscreteRayIterator) Cell() (x, y, z int64) {
	return it.cell[0], it.cell[1], it.cell[2]
}

// Distance returns the linear distance from the ray origin to the entry
// point of the current cell, in world units.
func (it *DiscreteRayIterator) Distance() float32 {
	return float32(it.dist) * it.span
}

// EntrySide identifies the face of the current cell crossed to enter it,
// Touch3DNone for the starting cell.
func (it *DiscreteRayIterator) EntrySide() Touch3DSide {
	return it.entry
}

// Neighbor identifies the neighbor direction traversal came from, as seen
// from the current cell.
func (it *DiscreteRayIterator) Neighbor() Moore3DNeighbor {
	return Moore3DNeighborOf(it.entry)
}

// Intersection returns the point where the ray crossed into the current
// cell. For the starting cell it is the ray origin.
func (it *DiscreteRayIterator) Intersection() mgl32.Vec3 {
	return it.ray.Origin.Add(it.dir.Mul(it.Distance()))
}

// Next advances the walker into the adjacent cell whose shared boundary the
// ray crosses first.
func (it *DiscreteRayIterator) Next() {
	axis := 0
	best := (1 - it.walker[0]) * it.incr[0]
	for a := 1; a < 3; a++ {
		t := (1 - it.walker[a]) * it.incr[a]
		if t < best {
			best = t
			axis = a
		}
	}

	for a := 0; a < 3; a++ {
		if it.incr[a] != math.Inf(1) {
			it.walker[a] += best / it.incr[a]
		}
	}
	it.walker[axis] = 0
	it.cell[axis] += it.step[axis]
	it.dist += best

	// Entry face of the new cell is the face opposing the step direction.
	var ts TouchStatus
	if it.step[axis] > 0 {
		ts = TouchLow
	} else {
		ts = TouchHigh
	}
	switch axis {
	case 0:
		it.entry = GetTouch3DSide(ts, TouchNone, TouchNone)
	case 1:
		it.entry = GetTouch3DSide(TouchNone, ts, TouchNone)
	default:
		it.entry = GetTouch3DSide(TouchNone, TouchNone, ts)
	}
}

// UpgradeLOD coarsens the walker by one level: cell size doubles and the
// walker realigns to the coarser cell containing the current position.
func (it *DiscreteRayIterator) UpgradeLOD() {
	pos := it.ray.Origin.Add(it.dir.Mul(it.Distance())).Sub(it.offset)
	prev := it.dist * float64(it.span)
	it.span *= 2
	it.dist = prev / float64(it.span)
	for a := 0; a < 3; a++ {
		fp := float64(pos[a]) / float64(it.span)
		c := math.Floor(fp)
		it.cell[a] = int64(c)
		frac := fp - c
		switch {
		case it.step[a] > 0:
			it.walker[a] = frac
		case it.step[a] < 0:
			it.walker[a] = 1 - frac
		}
	}
}
