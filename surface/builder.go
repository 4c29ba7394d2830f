package surface

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/voxel"
)

// Parameters configure triangulation for a scene channel.
type Parameters struct {
	// MaxLOD bounds the level-of-detail ordinals accepted by builds.
	MaxLOD int
	// NormalsType selects normal derivation.
	NormalsType NormalsType
	// FlipNormals reverses the gradient direction and triangle winding.
	FlipNormals bool
	// TransitionCellWidthRatio, in [0,1], is the transition cell depth as
	// a fraction of a full cell.
	TransitionCellWidthRatio float32
}

// DefaultParameters mirror the scene option defaults.
func DefaultParameters() Parameters {
	return Parameters{
		MaxLOD:                   2,
		NormalsType:              NormalsGradient,
		TransitionCellWidthRatio: 0.5,
	}
}

// faceBasis orients a transition face: u and v span the face, w points
// into the cube. All six bases are right-handed, so table winding carries
// over unchanged; the parity bit stays for completeness.
type faceBasis struct {
	uAxis, vAxis, wAxis int
	wNeg                bool // fixed coordinate sits at Dimensions, w points -axis
	reversed            bool // mapping parity: flip triangle winding
}

var faceBases = [spatial.CountOrthogonalNeighbors]faceBasis{
	spatial.OrthoNorth: {uAxis: 0, vAxis: 1, wAxis: 2, wNeg: false},
	spatial.OrthoEast:  {uAxis: 2, vAxis: 1, wAxis: 0, wNeg: true},
	spatial.OrthoWest:  {uAxis: 1, vAxis: 2, wAxis: 0, wNeg: false},
	spatial.OrthoSouth: {uAxis: 1, vAxis: 0, wAxis: 2, wNeg: true},
	spatial.OrthoAbove: {uAxis: 0, vAxis: 2, wAxis: 1, wNeg: true},
	spatial.OrthoBelow: {uAxis: 2, vAxis: 0, wAxis: 1, wNeg: false},
}

func init() {
	for s := range faceBases {
		b := &faceBases[s]
		var u, v, w [3]int
		u[b.uAxis], v[b.vAxis] = 1, 1
		if b.wNeg {
			w[b.wAxis] = -1
		} else {
			w[b.wAxis] = 1
		}
		det := u[0]*(v[1]*w[2]-v[2]*w[1]) - u[1]*(v[0]*w[2]-v[2]*w[0]) + u[2]*(v[0]*w[1]-v[1]*w[0])
		b.reversed = det < 0
	}
}

// Iso-vertex key layout: kind bit 60, face bits 44+, axis bits 40+, and
// the finest-resolution voxel index of the edge's lower corner in the low
// bits. Keys are stable across rebuilds, which is what lets the shadow's
// revmap survive stitch configuration changes.
const (
	keyKindHalf = uint64(1) << 60
)

func regularVertexKey(axis int, minIndex voxel.VoxelIndex) IsoVertexIndex {
	return uint64(axis)<<40 | uint64(uint32(minIndex))
}

func halfVertexKey(side spatial.OrthogonalNeighbor, axis int, minIndex voxel.VoxelIndex) IsoVertexIndex {
	return keyKindHalf | uint64(side)<<44 | uint64(axis)<<40 | uint64(uint32(minIndex))
}

// isoVertex is the builder's scratch state for one logical vertex.
type isoVertex struct {
	pos      spatial.FixVec3
	normal   mgl32.Vec3
	colour   uint32
	texcoord mgl32.Vec2
}

// IsoSurfaceBuilder triangulates cube regions: Marching Cubes for regular
// cells, Transvoxel transition cells for stitched faces. One long-lived
// builder serves a whole scene; a mutex serializes calls and the scratch
// maps are recycled so a typical build allocates little.
type IsoSurfaceBuilder struct {
	mu     sync.Mutex
	desc   *voxel.CubeDescriptor
	params Parameters

	// Dense case caches restored from the shadow per call.
	regCase []uint16
	trCase  [spatial.CountOrthogonalNeighbors][]uint16

	verts       map[IsoVertexIndex]*isoVertex
	refinements map[uint64][2]voxel.VoxelIndex
	hwmap       map[IsoVertexIndex]HWVertexIndex

	border, middle []BorderVertexProperties
}

// NewIsoSurfaceBuilder creates the scene's builder.
func NewIsoSurfaceBuilder(desc *voxel.CubeDescriptor, params Parameters) *IsoSurfaceBuilder {
	b := &IsoSurfaceBuilder{
		desc:        desc,
		params:      params,
		regCase:     make([]uint16, desc.CellCount),
		verts:       make(map[IsoVertexIndex]*isoVertex),
		refinements: make(map[uint64][2]voxel.VoxelIndex),
		hwmap:       make(map[IsoVertexIndex]HWVertexIndex),
	}
	for s := range b.trCase {
		b.trCase[s] = make([]uint16, desc.CellCount)
	}
	return b
}

// Parameters returns the channel parameters in effect.
func (b *IsoSurfaceBuilder) Parameters() Parameters { return b.params }

// EnqueueBuild triangulates on the calling (background) task and leaves
// the result in the shadow's builder queue for the main thread to drain.
func (b *IsoSurfaceBuilder) EnqueueBuild(
	region *voxel.CubeDataRegion,
	shadow *HardwareShadow,
	lod int,
	stitches spatial.Touch3DFlags,
	flags SurfaceFlags,
	vertexBufferCapacity int,
) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if lod < 0 || lod >= shadow.LODCount() {
		return fmt.Errorf("%w: lod %d of shadow with %d", voxel.ErrOutOfRange, lod, shadow.LODCount())
	}
	pq := shadow.RequestProducerQueue(lod, stitches)
	defer pq.Close()
	return b.buildImpl(region, pq.Resolution(), stitches, flags, vertexBufferCapacity,
		pq.Queue(), pq.ResetVertexBuffer, pq.ResetIndexBuffer)
}

// Build triangulates synchronously and populates the renderable's GPU
// buffers directly. Main-thread only; used by ray queries and first-frame
// paths.
func (b *IsoSurfaceBuilder) Build(
	region *voxel.CubeDataRegion,
	renderable *MeshRenderable,
	lod int,
	stitches spatial.Touch3DFlags,
	flags SurfaceFlags,
) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	shadow := renderable.Shadow()
	if lod < 0 || lod >= shadow.LODCount() {
		return fmt.Errorf("%w: lod %d of shadow with %d", voxel.ErrOutOfRange, lod, shadow.LODCount())
	}
	pq := shadow.RequestProducerQueue(lod, stitches)
	defer pq.Close()
	if err := b.buildImpl(region, pq.Resolution(), stitches, flags,
		renderable.VertexCapacity(), pq.Queue(), pq.ResetVertexBuffer, pq.ResetIndexBuffer); err != nil {
		return err
	}
	return renderable.DirectlyPopulateBuffers(pq)
}

func (b *IsoSurfaceBuilder) clearScratch() {
	for k := range b.verts {
		delete(b.verts, k)
	}
	for k := range b.refinements {
		delete(b.refinements, k)
	}
	for k := range b.hwmap {
		delete(b.hwmap, k)
	}
	b.border = b.border[:0]
	b.middle = b.middle[:0]
}

func (b *IsoSurfaceBuilder) buildImpl(
	region *voxel.CubeDataRegion,
	res *ResolutionState,
	stitches spatial.Touch3DFlags,
	flags SurfaceFlags,
	vertexBufferCapacity int,
	q *BuilderQueue,
	setResetVertex, setResetIndex SetFlag,
) error {
	lod := res.LOD
	if lod < 0 || lod >= b.params.MaxLOD {
		return fmt.Errorf("%w: lod %d of %d", voxel.ErrOutOfRange, lod, b.params.MaxLOD)
	}
	if stitches != 0 && lod == 0 {
		return fmt.Errorf("%w: stitching requires a coarser level of detail", voxel.ErrOutOfRange)
	}

	data, err := region.LeaseShared()
	if err != nil {
		return err
	}
	defer data.Close()

	// Solid and empty cubes short-circuit with empty caches.
	if data.EmptyStatus() != voxel.EmptyNone {
		res.Shadowed = true
		for s, st := range res.Stitches {
			if stitches&spatial.SideOf(spatial.OrthogonalNeighbor(s)) != 0 {
				st.Shadowed = true
			}
		}
		setResetIndex.Set()
		return nil
	}

	values := data.Data().Values

	if !res.Shadowed {
		b.attainRegularCases(values, res)
	}
	for s, st := range res.Stitches {
		side := spatial.OrthogonalNeighbor(s)
		if stitches&spatial.SideOf(side) != 0 && !st.Shadowed {
			b.attainTransitionCases(values, res, side)
		}
	}
	b.restoreCaseCache(res, stitches)

	b.clearScratch()

	// Vertex refinement and emission state for every vertex the config's
	// triangles will reference.
	for s := range res.Stitches {
		side := spatial.OrthogonalNeighbor(s)
		if stitches&spatial.SideOf(side) == 0 {
			continue
		}
		for _, caze := range res.Stitches[s].TransitionCases {
			b.collectTransitionVertices(data.Data(), caze, side, lod, flags)
		}
	}
	for _, caze := range res.RegularCases {
		b.collectRegularVertices(data.Data(), caze, lod, stitches, flags)
	}

	// Triangulation: regular cases first, then per-face transition cases
	// in orthogonal-neighbor order.
	var triangles []IsoVertexIndex
	for _, caze := range res.RegularCases {
		triangles = b.appendRegularTriangles(triangles, caze, lod, stitches)
	}
	for s := range res.Stitches {
		side := spatial.OrthogonalNeighbor(s)
		if stitches&spatial.SideOf(side) == 0 {
			continue
		}
		for _, caze := range res.Stitches[s].TransitionCases {
			triangles = b.appendTransitionTriangles(triangles, caze, side, lod)
		}
	}

	if flags&GenerateNormals != 0 &&
		(b.params.NormalsType == NormalsAverage || b.params.NormalsType == NormalsWeightedAverage) {
		b.accumulateTriangleNormals(triangles)
	}

	// Marshal vertices in first-reference order against the hardware map
	// restored from previous uploads.
	res.RestoreHardwareIndices(b.hwmap)
	tail := res.HardwareVertexTail()

	marshal := func() error {
		q.VertexQueue = q.VertexQueue[:0]
		q.IndexQueue = q.IndexQueue[:0]
		q.Revmap = q.Revmap[:0]
		for _, ivi := range triangles {
			hw, ok := b.hwmap[ivi]
			if !ok {
				next := tail + len(q.VertexQueue)
				if next > 0xFFFF {
					return ErrVertexCapacity
				}
				hw = HWVertexIndex(next)
				b.hwmap[ivi] = hw
				q.VertexQueue = append(q.VertexQueue, b.finishVertex(b.verts[ivi], flags))
				q.Revmap = append(q.Revmap, ivi)
			}
			q.IndexQueue = append(q.IndexQueue, hw)
		}
		return nil
	}
	if err := marshal(); err != nil {
		return err
	}

	// The triangle list for a configuration replaces the index buffer
	// wholesale.
	setResetIndex.Set()

	if tail+len(q.VertexQueue) > vertexBufferCapacity {
		// Roll back and re-emit everything from offset zero; the uploader
		// will allocate a larger buffer.
		res.clearHardwareState()
		for k := range b.hwmap {
			delete(b.hwmap, k)
		}
		tail = 0
		setResetVertex.Set()
		if err := marshal(); err != nil {
			return err
		}
	}

	res.BorderIsoVertexProperties = append(res.BorderIsoVertexProperties[:0], b.border...)
	res.MiddleIsoVertexProperties = append(res.MiddleIsoVertexProperties[:0], b.middle...)

	res.Shadowed = true
	for s, st := range res.Stitches {
		if stitches&spatial.SideOf(spatial.OrthogonalNeighbor(s)) != 0 {
			st.Shadowed = true
		}
	}
	return nil
}

// attainRegularCases scans every regular cell at the resolution's LOD and
// records the non-trivial case codes in cell-index order.
func (b *IsoSurfaceBuilder) attainRegularCases(values []voxel.FieldStrength, res *ResolutionState) {
	dim := int(b.desc.Dimensions)
	span := 1 << uint(res.LOD)
	res.RegularCases = res.RegularCases[:0]
	for k := 0; k < dim; k += span {
		for j := 0; j < dim; j += span {
			for i := 0; i < dim; i += span {
				var code uint16
				for c := 0; c < 8; c++ {
					x, y, z := regularCornerOffset(c)
					idx := b.desc.GridPointIndex(i+x*span, j+y*span, k+z*span)
					code |= uint16(values[idx].SignBit()) << uint(c)
				}
				if code != 0 && code != 0xFF {
					res.RegularCases = append(res.RegularCases, NonTrivialCase{
						Cell: b.desc.GridCellIndex(i, j, k),
						Code: code,
					})
				}
			}
		}
	}
}

// transitionSamplePoint maps a transition cell corner to grid coordinates.
// (u, v) is the face cell origin; half-resolution corners land on the same
// face plane, their inward translation being applied at emission time.
func (b *IsoSurfaceBuilder) transitionSamplePoint(side spatial.OrthogonalNeighbor, u, v, span, corner int) (x, y, z int) {
	fb := faceBases[side]
	cu, cv, _ := transitionCornerUV(corner)
	h := span / 2

	var p [3]int
	if fb.wNeg {
		p[fb.wAxis] = int(b.desc.Dimensions)
	}
	p[fb.uAxis] = u + cu*h
	p[fb.vAxis] = v + cv*h
	return p[0], p[1], p[2]
}

// attainTransitionCases scans every transition cell on one face and
// records the non-trivial 9-bit case codes in face scan order.
func (b *IsoSurfaceBuilder) attainTransitionCases(values []voxel.FieldStrength, res *ResolutionState, side spatial.OrthogonalNeighbor) {
	dim := int(b.desc.Dimensions)
	span := 1 << uint(res.LOD)
	st := res.Stitches[side]
	st.TransitionCases = st.TransitionCases[:0]
	for v := 0; v < dim; v += span {
		for u := 0; u < dim; u += span {
			var code uint16
			for c := 0; c < 9; c++ {
				x, y, z := b.transitionSamplePoint(side, u, v, span, c)
				code |= uint16(values[b.desc.GridPointIndex(x, y, z)].SignBit()) << uint(c)
			}
			if code != 0 && code != 0x1FF {
				st.TransitionCases = append(st.TransitionCases, NonTrivialCase{
					Cell: b.transitionCellIndex(side, u, v, span),
					Code: code,
				})
			}
		}
	}
}

// transitionCellIndex is the interior cell a transition cell fronts.
func (b *IsoSurfaceBuilder) transitionCellIndex(side spatial.OrthogonalNeighbor, u, v, span int) voxel.CellIndex {
	fb := faceBases[side]
	var p [3]int
	if fb.wNeg {
		p[fb.wAxis] = int(b.desc.Dimensions) - span
	}
	p[fb.uAxis] = u
	p[fb.vAxis] = v
	return b.desc.GridCellIndex(p[0], p[1], p[2])
}

// restoreCaseCache rebuilds the dense per-cell lookup used by ray queries
// and triangulation from the shadow's case lists.
func (b *IsoSurfaceBuilder) restoreCaseCache(res *ResolutionState, stitches spatial.Touch3DFlags) {
	for i := range b.regCase {
		b.regCase[i] = 0
	}
	for _, c := range res.RegularCases {
		b.regCase[c.Cell] = c.Code
	}
	for s := range res.Stitches {
		for i := range b.trCase[s] {
			b.trCase[s][i] = 0
		}
		if stitches&spatial.SideOf(spatial.OrthogonalNeighbor(s)) != 0 {
			for _, c := range res.Stitches[s].TransitionCases {
				b.trCase[s][c.Cell] = c.Code
			}
		}
	}
}

// refineEdge bisects the voxel interval between two grid points with
// opposite classification until the two adjacent finest-resolution voxels
// straddling the crossing remain, descending into whichever half keeps the
// sign change.
func (b *IsoSurfaceBuilder) refineEdge(values []voxel.FieldStrength, p0, p1 [3]int) ([3]int, [3]int) {
	axis := 0
	for a := 0; a < 3; a++ {
		if p0[a] != p1[a] {
			axis = a
		}
	}
	for abs(p1[axis]-p0[axis]) > 1 {
		mid := p0
		mid[axis] = (p0[axis] + p1[axis]) / 2
		midSolid := values[b.desc.GridPointIndex(mid[0], mid[1], mid[2])].Solid()
		p0Solid := values[b.desc.GridPointIndex(p0[0], p0[1], p0[2])].Solid()
		if midSolid == p0Solid {
			p0 = mid
		} else {
			p1 = mid
		}
	}
	return p0, p1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// refineCached memoizes refinement per coarse edge so edges shared by
// adjacent cells bisect once.
func (b *IsoSurfaceBuilder) refineCached(values []voxel.FieldStrength, p0, p1 [3]int) (voxel.VoxelIndex, voxel.VoxelIndex) {
	i0 := b.desc.GridPointIndex(p0[0], p0[1], p0[2])
	i1 := b.desc.GridPointIndex(p1[0], p1[1], p1[2])
	ck := uint64(uint32(i0))<<32 | uint64(uint32(i1))
	if r, ok := b.refinements[ck]; ok {
		return r[0], r[1]
	}
	r0, r1 := b.refineEdge(values, p0, p1)
	a := b.desc.GridPointIndex(r0[0], r0[1], r0[2])
	c := b.desc.GridPointIndex(r1[0], r1[1], r1[2])
	b.refinements[ck] = [2]voxel.VoxelIndex{a, c}
	return a, c
}

// edgeAxisAndMin canonicalizes a refined voxel pair to (axis, lower index).
func (b *IsoSurfaceBuilder) edgeAxisAndMin(i0, i1 voxel.VoxelIndex) (int, voxel.VoxelIndex) {
	if i1 < i0 {
		i0, i1 = i1, i0
	}
	d := int32(i1 - i0)
	axis := 0
	switch d {
	case b.desc.PointTx.My:
		axis = 1
	case b.desc.PointTx.Mz:
		axis = 2
	}
	return axis, i0
}

// collectRegularVertices refines and stages every iso-vertex of one
// regular case. Vertices whose edge lies in a stitched face are remapped
// to the transition cell's half-resolution vertex there, picking up the
// inward translation so the coarse surface meets the transition slab.
func (b *IsoSurfaceBuilder) collectRegularVertices(
	db *voxel.DataBase,
	caze NonTrivialCase,
	lod int,
	stitches spatial.Touch3DFlags,
	flags SurfaceFlags,
) {
	ci, cj, ck := b.desc.GridCell(caze.Cell)
	span := 1 << uint(lod)

	for _, vcode := range regularVertexData[caze.Code] {
		c0, c1 := vertexCodeCorners(vcode)
		x0, y0, z0 := regularCornerOffset(c0)
		x1, y1, z1 := regularCornerOffset(c1)
		p0 := [3]int{ci + x0*span, cj + y0*span, ck + z0*span}
		p1 := [3]int{ci + x1*span, cj + y1*span, ck + z1*span}
		r0, r1 := b.refineCached(db.Values, p0, p1)
		b.stageVertex(db, r0, r1, lod, stitches, flags, caze.Cell, vcode)
	}
}

// collectTransitionVertices refines and stages every iso-vertex of one
// transition case: full-resolution face vertices stay on the face plane,
// half-resolution face vertices carry the inward translation.
func (b *IsoSurfaceBuilder) collectTransitionVertices(
	db *voxel.DataBase,
	caze NonTrivialCase,
	side spatial.OrthogonalNeighbor,
	lod int,
	flags SurfaceFlags,
) {
	u, v, span := b.transitionCellFaceCoords(caze.Cell, side, lod)

	for _, vcode := range transitionVertexData[caze.Code] {
		c0, c1 := vertexCodeCorners(vcode)
		x0, y0, z0 := b.transitionSamplePoint(side, u, v, span, c0)
		x1, y1, z1 := b.transitionSamplePoint(side, u, v, span, c1)
		r0, r1 := b.refineCached(db.Values, [3]int{x0, y0, z0}, [3]int{x1, y1, z1})

		if vertexCodeGroup(vcode) >= groupHalfU {
			ivi := b.stageHalfVertex(db, r0, r1, side, lod, flags)
			b.middle = append(b.middle, BorderVertexProperties{
				Index: ivi, Cell: caze.Cell, Side: side, EdgeCode: vcode,
				Touch: spatial.SideOf(side),
			})
		} else {
			ivi := b.stageFullVertex(db, r0, r1, flags)
			b.border = append(b.border, BorderVertexProperties{
				Index: ivi, Cell: caze.Cell, Side: side, EdgeCode: vcode,
				Touch: spatial.SideOf(side),
			})
		}
	}
}

// transitionCellFaceCoords recovers (u, v) face coordinates from the
// interior cell index.
func (b *IsoSurfaceBuilder) transitionCellFaceCoords(cell voxel.CellIndex, side spatial.OrthogonalNeighbor, lod int) (u, v, span int) {
	fb := faceBases[side]
	i, j, k := b.desc.GridCell(cell)
	p := [3]int{i, j, k}
	return p[fb.uAxis], p[fb.vAxis], 1 << uint(lod)
}

// stageVertex stages a regular-cell vertex, remapping it to the stitched
// face's half-resolution vertex when its refined edge lies in one.
func (b *IsoSurfaceBuilder) stageVertex(
	db *voxel.DataBase,
	r0, r1 voxel.VoxelIndex,
	lod int,
	stitches spatial.Touch3DFlags,
	flags SurfaceFlags,
	cell voxel.CellIndex,
	vcode uint16,
) IsoVertexIndex {
	if stitches != 0 {
		if side, ok := b.stitchedFaceOf(r0, r1, stitches); ok {
			ivi := b.stageHalfVertex(db, r0, r1, side, lod, flags)
			b.middle = append(b.middle, BorderVertexProperties{
				Index: ivi, Cell: cell, Side: side, EdgeCode: vcode,
				Touch: spatial.SideOf(side),
			})
			return ivi
		}
	}
	return b.stageFullVertex(db, r0, r1, flags)
}

// stitchedFaceOf reports the stitched face both refined corners lie in,
// preferring the lowest side ordinal when an edge sits in two.
func (b *IsoSurfaceBuilder) stitchedFaceOf(r0, r1 voxel.VoxelIndex, stitches spatial.Touch3DFlags) (spatial.OrthogonalNeighbor, bool) {
	x0, y0, z0 := b.desc.GridPoint(r0)
	x1, y1, z1 := b.desc.GridPoint(r1)
	shared := b.desc.TouchSide(x0, y0, z0) & b.desc.TouchSide(x1, y1, z1) & stitches
	if shared == 0 {
		return spatial.OrthoNaN, false
	}
	for s := spatial.OrthogonalNeighbor(0); s < spatial.CountOrthogonalNeighbors; s++ {
		if shared&spatial.SideOf(s) != 0 {
			return s, true
		}
	}
	return spatial.OrthoNaN, false
}

// stageFullVertex stages a vertex on the regular lattice, untranslated.
func (b *IsoSurfaceBuilder) stageFullVertex(db *voxel.DataBase, r0, r1 voxel.VoxelIndex, flags SurfaceFlags) IsoVertexIndex {
	axis, min := b.edgeAxisAndMin(r0, r1)
	key := regularVertexKey(axis, min)
	if _, ok := b.verts[key]; !ok {
		b.verts[key] = b.emitVertex(db, r0, r1, spatial.FixVec3{}, flags)
	}
	return key
}

// stageHalfVertex stages a half-resolution face vertex carrying the
// transition cell's inward translation.
func (b *IsoSurfaceBuilder) stageHalfVertex(db *voxel.DataBase, r0, r1 voxel.VoxelIndex, side spatial.OrthogonalNeighbor, lod int, flags SurfaceFlags) IsoVertexIndex {
	axis, min := b.edgeAxisAndMin(r0, r1)
	key := halfVertexKey(side, axis, min)
	if _, ok := b.verts[key]; !ok {
		b.verts[key] = b.emitVertex(db, r0, r1, b.halfFaceTranslation(side, lod), flags)
	}
	return key
}

// halfFaceTranslation is the per-side, per-LOD inward offset applied to
// half-resolution face vertices.
func (b *IsoSurfaceBuilder) halfFaceTranslation(side spatial.OrthogonalNeighbor, lod int) spatial.FixVec3 {
	fb := faceBases[side]
	depth := spatial.FixedFromFloat(b.params.TransitionCellWidthRatio * float32(int(1)<<uint(lod)))
	if fb.wNeg {
		depth = -depth
	}
	var dv spatial.FixVec3
	switch fb.wAxis {
	case 0:
		dv.X = depth
	case 1:
		dv.Y = depth
	default:
		dv.Z = depth
	}
	return dv
}

// emitVertex interpolates position and the requested channels across the
// refined corner pair.
func (b *IsoSurfaceBuilder) emitVertex(db *voxel.DataBase, r0, r1 voxel.VoxelIndex, translate spatial.FixVec3, flags SurfaceFlags) *isoVertex {
	v0 := int(db.Values[r0])
	v1 := int(db.Values[r1])
	den := v0 - v1
	if den == 0 {
		// A corner sampled exactly zero collapses the pair; force the
		// denominator so the vertex lands on the grid point.
		den = 1
	}
	t := spatial.FixedFromInt(v0).DivInt(den)

	p0 := b.desc.Position(r0)
	p1 := b.desc.Position(r1)
	vert := &isoVertex{
		pos: p0.Lerp(p1, t).Add(translate),
	}

	tf := t.Float()
	if flags&GenerateNormals != 0 && b.params.NormalsType == NormalsGradient {
		vert.normal = b.gradientNormal(db, r0, r1, tf)
	}
	if flags&GenerateVertexColours != 0 && db.R != nil {
		r := lerp8(db.R[r0], db.R[r1], tf)
		g := lerp8(db.G[r0], db.G[r1], tf)
		bl := lerp8(db.B[r0], db.B[r1], tf)
		a := lerp8(db.A[r0], db.A[r1], tf)
		vert.colour = uint32(r) | uint32(g)<<8 | uint32(bl)<<16 | uint32(a)<<24
	}
	if flags&GenerateTexCoords != 0 && db.TX != nil {
		vert.texcoord = mgl32.Vec2{
			lerpf(float32(db.TX[r0]), float32(db.TX[r1]), tf) / 255,
			lerpf(float32(db.TY[r0]), float32(db.TY[r1]), tf) / 255,
		}
	}
	return vert
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}

func lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}

// gradientNormal interpolates the stored gradient channels, falling back
// to central differences of the field when the region stores none.
func (b *IsoSurfaceBuilder) gradientNormal(db *voxel.DataBase, r0, r1 voxel.VoxelIndex, t float32) mgl32.Vec3 {
	var g0, g1 mgl32.Vec3
	if db.DX != nil {
		g0 = mgl32.Vec3{float32(db.DX[r0]), float32(db.DY[r0]), float32(db.DZ[r0])}
		g1 = mgl32.Vec3{float32(db.DX[r1]), float32(db.DY[r1]), float32(db.DZ[r1])}
	} else {
		g0 = b.centralDifference(db.Values, r0)
		g1 = b.centralDifference(db.Values, r1)
	}
	// The stored gradient is (left - right)/2, pointing into the solid;
	// surface normals face the empty side.
	n := g0.Add(g1.Sub(g0).Mul(t)).Mul(-1)
	if b.params.FlipNormals {
		n = n.Mul(-1)
	}
	if l := n.Len(); l > 1e-6 {
		n = n.Mul(1 / l)
	}
	return n
}

func (b *IsoSurfaceBuilder) centralDifference(values []voxel.FieldStrength, idx voxel.VoxelIndex) mgl32.Vec3 {
	x, y, z := b.desc.GridPoint(idx)
	dim := int(b.desc.Dimensions)
	sample := func(i, j, k int) float32 {
		i = clampi(i, 0, dim)
		j = clampi(j, 0, dim)
		k = clampi(k, 0, dim)
		return float32(values[b.desc.GridPointIndex(i, j, k)])
	}
	return mgl32.Vec3{
		(sample(x-1, y, z) - sample(x+1, y, z)) / 2,
		(sample(x, y-1, z) - sample(x, y+1, z)) / 2,
		(sample(x, y, z-1) - sample(x, y, z+1)) / 2,
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// appendRegularTriangles emits one regular case's triangles as iso-vertex
// key triples, honoring the class winding and the flip toggle.
func (b *IsoSurfaceBuilder) appendRegularTriangles(out []IsoVertexIndex, caze NonTrivialCase, lod int, stitches spatial.Touch3DFlags) []IsoVertexIndex {
	class := regularCellClass[caze.Code]
	cd := regularCellData[class]
	keys := b.regularCaseKeys(caze, lod, stitches)

	idx := cd.VertexIndex
	for t := 0; t < len(idx); t += 3 {
		a, c, d := keys[idx[t]], keys[idx[t+1]], keys[idx[t+2]]
		if b.params.FlipNormals {
			a, d = d, a
		}
		out = append(out, a, c, d)
	}
	return out
}

// regularCaseKeys resolves a case's vertex slots to staged iso-vertex
// keys; vertices were staged by collectRegularVertices, so refinement is
// served from the memo.
func (b *IsoSurfaceBuilder) regularCaseKeys(caze NonTrivialCase, lod int, stitches spatial.Touch3DFlags) []IsoVertexIndex {
	ci, cj, ck := b.desc.GridCell(caze.Cell)
	span := 1 << uint(lod)
	codes := regularVertexData[caze.Code]
	keys := make([]IsoVertexIndex, len(codes))
	for i, vcode := range codes {
		c0, c1 := vertexCodeCorners(vcode)
		x0, y0, z0 := regularCornerOffset(c0)
		x1, y1, z1 := regularCornerOffset(c1)
		i0 := b.desc.GridPointIndex(ci+x0*span, cj+y0*span, ck+z0*span)
		i1 := b.desc.GridPointIndex(ci+x1*span, cj+y1*span, ck+z1*span)
		ck64 := uint64(uint32(i0))<<32 | uint64(uint32(i1))
		r := b.refinements[ck64]
		axis, min := b.edgeAxisAndMin(r[0], r[1])
		key := regularVertexKey(axis, min)
		if stitches != 0 {
			if side, ok := b.stitchedFaceOf(r[0], r[1], stitches); ok {
				key = halfVertexKey(side, axis, min)
			}
		}
		keys[i] = key
	}
	return keys
}

// appendTransitionTriangles emits one transition case's triangles,
// applying the class winding bit XOR the face basis parity.
func (b *IsoSurfaceBuilder) appendTransitionTriangles(out []IsoVertexIndex, caze NonTrivialCase, side spatial.OrthogonalNeighbor, lod int) []IsoVertexIndex {
	class := transitionCellClass[caze.Code]
	cd := transitionCellData[class&transitionClassMask]
	keys := b.transitionCaseKeys(caze, side, lod)

	reversed := class&transitionWindingBit != 0
	if faceBases[side].reversed {
		reversed = !reversed
	}
	if b.params.FlipNormals {
		reversed = !reversed
	}

	idx := cd.VertexIndex
	for t := 0; t < len(idx); t += 3 {
		a, c, d := keys[idx[t]], keys[idx[t+1]], keys[idx[t+2]]
		if reversed {
			a, d = d, a
		}
		out = append(out, a, c, d)
	}
	return out
}

func (b *IsoSurfaceBuilder) transitionCaseKeys(caze NonTrivialCase, side spatial.OrthogonalNeighbor, lod int) []IsoVertexIndex {
	u, v, span := b.transitionCellFaceCoords(caze.Cell, side, lod)
	codes := transitionVertexData[caze.Code]
	keys := make([]IsoVertexIndex, len(codes))
	for i, vcode := range codes {
		c0, c1 := vertexCodeCorners(vcode)
		x0, y0, z0 := b.transitionSamplePoint(side, u, v, span, c0)
		x1, y1, z1 := b.transitionSamplePoint(side, u, v, span, c1)
		i0 := b.desc.GridPointIndex(x0, y0, z0)
		i1 := b.desc.GridPointIndex(x1, y1, z1)
		ck64 := uint64(uint32(i0))<<32 | uint64(uint32(i1))
		r := b.refinements[ck64]
		axis, min := b.edgeAxisAndMin(r[0], r[1])
		if vertexCodeGroup(vcode) >= groupHalfU {
			keys[i] = halfVertexKey(side, axis, min)
		} else {
			keys[i] = regularVertexKey(axis, min)
		}
	}
	return keys
}

// accumulateTriangleNormals sums adjacent face normals into each staged
// vertex, unit-length for Average and area-weighted otherwise.
func (b *IsoSurfaceBuilder) accumulateTriangleNormals(triangles []IsoVertexIndex) {
	for t := 0; t+2 < len(triangles); t += 3 {
		va := b.verts[triangles[t]]
		vb := b.verts[triangles[t+1]]
		vc := b.verts[triangles[t+2]]
		pa := fixToVec(va.pos)
		pb := fixToVec(vb.pos)
		pc := fixToVec(vc.pos)
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		if b.params.NormalsType == NormalsAverage {
			if l := n.Len(); l > 1e-9 {
				n = n.Mul(1 / l)
			}
		}
		va.normal = va.normal.Add(n)
		vb.normal = vb.normal.Add(n)
		vc.normal = vc.normal.Add(n)
	}
}

func fixToVec(v spatial.FixVec3) mgl32.Vec3 {
	x, y, z := v.Floats()
	return mgl32.Vec3{x, y, z}
}

// finishVertex converts scratch state into the hardware vertex element,
// scaling cell units to world units.
func (b *IsoSurfaceBuilder) finishVertex(v *isoVertex, flags SurfaceFlags) VertexElement {
	n := v.normal
	if flags&GenerateNormals != 0 {
		if l := n.Len(); l > 1e-6 {
			n = n.Mul(1 / l)
		}
	} else {
		n = mgl32.Vec3{}
	}
	return VertexElement{
		Position: fixToVec(v.pos).Mul(b.desc.Scale),
		Normal:   n,
		Colour:   v.colour,
		TexCoord: v.texcoord,
	}
}
