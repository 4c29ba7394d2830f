package surface

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/voxel"
)

// RayHit is the result of a ray query: the cell holding the hit triangle,
// the world-space hit point, and the distance along the ray.
type RayHit struct {
	Cell     [3]int
	Position mgl32.Vec3
	Distance float32
}

// mollerTrumbore intersects a ray with a triangle, returning the ray
// parameter and whether the barycentric coordinates land inside.
func mollerTrumbore(orig, dir, v0, v1, v2 mgl32.Vec3) (float32, bool) {
	const eps = 1e-7
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det
	tv := orig.Sub(v0)
	u := tv.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := tv.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// clipRayToBox intersects a ray with an AABB, returning the entry and exit
// parameters.
func clipRayToBox(orig, dir, min, max mgl32.Vec3) (float32, float32, bool) {
	t0, t1 := float32(0), float32(math.MaxFloat32)
	for a := 0; a < 3; a++ {
		if dir[a] == 0 {
			if orig[a] < min[a] || orig[a] > max[a] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / dir[a]
		near := (min[a] - orig[a]) * inv
		far := (max[a] - orig[a]) * inv
		if near > far {
			near, far = far, near
		}
		if near > t0 {
			t0 = near
		}
		if far < t1 {
			t1 = far
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// scanDenseCases fills the dense case caches straight from voxel data,
// used when the shadow has not been populated for this configuration.
func (b *IsoSurfaceBuilder) scanDenseCases(values []voxel.FieldStrength, lod int, stitches spatial.Touch3DFlags) {
	dim := int(b.desc.Dimensions)
	span := 1 << uint(lod)
	for i := range b.regCase {
		b.regCase[i] = 0
	}
	for k := 0; k < dim; k += span {
		for j := 0; j < dim; j += span {
			for i := 0; i < dim; i += span {
				var code uint16
				for c := 0; c < 8; c++ {
					x, y, z := regularCornerOffset(c)
					code |= uint16(values[b.desc.GridPointIndex(i+x*span, j+y*span, k+z*span)].SignBit()) << uint(c)
				}
				if code != 0 && code != 0xFF {
					b.regCase[b.desc.GridCellIndex(i, j, k)] = code
				}
			}
		}
	}
	for s := range b.trCase {
		for i := range b.trCase[s] {
			b.trCase[s][i] = 0
		}
		side := spatial.OrthogonalNeighbor(s)
		if stitches&spatial.SideOf(side) == 0 {
			continue
		}
		for v := 0; v < dim; v += span {
			for u := 0; u < dim; u += span {
				var code uint16
				for c := 0; c < 9; c++ {
					x, y, z := b.transitionSamplePoint(side, u, v, span, c)
					code |= uint16(values[b.desc.GridPointIndex(x, y, z)].SignBit()) << uint(c)
				}
				if code != 0 && code != 0x1FF {
					b.trCase[s][b.transitionCellIndex(side, u, v, span)] = code
				}
			}
		}
	}
}

// RayQuery walks the ray through the cube at the LOD's cell size, emitting
// each entered cell's triangles on demand and testing them. Transition
// cells on stitched faces take priority over the regular cell at the same
// coordinate. The first triangle hit within distanceLimit wins.
func (b *IsoSurfaceBuilder) RayQuery(
	region *voxel.CubeDataRegion,
	shadow *HardwareShadow,
	lod int,
	stitches spatial.Touch3DFlags,
	ray spatial.Ray,
	distanceLimit float32,
) (RayHit, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if lod < 0 || lod >= shadow.LODCount() {
		return RayHit{}, false, fmt.Errorf("%w: lod %d of shadow with %d", voxel.ErrOutOfRange, lod, shadow.LODCount())
	}

	data, err := region.LeaseShared()
	if err != nil {
		return RayHit{}, false, err
	}
	defer data.Close()

	if data.EmptyStatus() != voxel.EmptyNone {
		return RayHit{}, false, nil
	}

	shadow.ReadLock()
	res := shadow.Resolution(lod)
	shadowed := res.Shadowed
	if shadowed {
		b.restoreCaseCache(res, stitches)
	}
	shadow.ReadUnlock()
	if !shadowed {
		b.scanDenseCases(data.Data().Values, lod, stitches)
	}

	b.clearScratch()

	dim := int(b.desc.Dimensions)
	span := 1 << uint(lod)
	scale := b.desc.Scale
	bbox := region.BoundingBox()
	half := float32(dim) / 2

	// Work in centered cell units, where triangle positions live.
	dir := ray.Direction.Normalize()
	orig := ray.Origin.Sub(bbox.Min).Mul(1 / scale).Sub(mgl32.Vec3{half, half, half})

	lo := mgl32.Vec3{-half, -half, -half}
	hi := mgl32.Vec3{half, half, half}
	tEnter, _, ok := clipRayToBox(orig, dir, lo, hi)
	if !ok {
		return RayHit{}, false, nil
	}
	limit := distanceLimit / scale

	// Nudge inside the entry face so the walker starts in a real cell.
	start := orig.Add(dir.Mul(tEnter + 1e-4))
	walker := spatial.NewDiscreteRayIterator(
		spatial.Ray{Origin: start, Direction: dir},
		float32(span),
		mgl32.Vec3{-half, -half, -half},
	)

	db := data.Data()
	var tris []IsoVertexIndex
	for steps := 0; steps < 4*dim; steps++ {
		cx, cy, cz := walker.Cell()
		i, j, k := int(cx)*span, int(cy)*span, int(cz)*span
		if i < 0 || j < 0 || k < 0 || i >= dim || j >= dim || k >= dim {
			if steps > 0 {
				break
			}
			walker.Next()
			continue
		}
		if tEnter+walker.Distance() > limit {
			break
		}
		cell := b.desc.GridCellIndex(i, j, k)

		tris = tris[:0]
		touch := b.desc.CellTouchSide(i, j, k, lod) & stitches
		if touch != 0 {
			for s := spatial.OrthogonalNeighbor(0); s < spatial.CountOrthogonalNeighbors; s++ {
				if touch&spatial.SideOf(s) == 0 {
					continue
				}
				code := b.trCase[s][cell]
				if code == 0 {
					continue
				}
				caze := NonTrivialCase{Cell: cell, Code: code}
				b.collectTransitionVertices(db, caze, s, lod, 0)
				tris = b.appendTransitionTriangles(tris, caze, s, lod)
			}
		}
		if code := b.regCase[cell]; code != 0 {
			caze := NonTrivialCase{Cell: cell, Code: code}
			b.collectRegularVertices(db, caze, lod, stitches, 0)
			tris = b.appendRegularTriangles(tris, caze, lod, stitches)
		}

		bestT := float32(math.MaxFloat32)
		hit := false
		for t := 0; t+3 <= len(tris); t += 3 {
			a, c, d := tris[t], tris[t+1], tris[t+2]
			if a == c || c == d || a == d {
				continue
			}
			p0 := fixToVec(b.verts[a].pos)
			p1 := fixToVec(b.verts[c].pos)
			p2 := fixToVec(b.verts[d].pos)
			if tt, ok := mollerTrumbore(orig, dir, p0, p1, p2); ok && tt < bestT && tt <= limit {
				bestT = tt
				hit = true
			}
		}
		if hit {
			pc := orig.Add(dir.Mul(bestT))
			world := pc.Add(mgl32.Vec3{half, half, half}).Mul(scale).Add(bbox.Min)
			return RayHit{
				Cell:     [3]int{i, j, k},
				Position: world,
				Distance: bestT * scale,
			}, true, nil
		}

		walker.Next()
	}
	return RayHit{}, false, nil
}
