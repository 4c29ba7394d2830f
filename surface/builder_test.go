package surface

import (
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/voxel"
)

func testCube(t *testing.T, bboxMin mgl32.Vec3, fill func(i, j, k int) voxel.FieldStrength) (*voxel.CubeDescriptor, *voxel.CubeDataRegion) {
	t.Helper()
	desc, err := voxel.NewCubeDescriptor(17, 1.0, 0)
	require.NoError(t, err)
	pool := voxel.NewPool(desc.GridPointCount, desc.Flags, 2, 1)
	region := voxel.NewCubeDataRegion(desc, pool, voxel.BoundingBox{
		Min: bboxMin,
		Max: bboxMin.Add(mgl32.Vec3{16, 16, 16}),
	})

	ma, err := region.Lease()
	require.NoError(t, err)
	for k := 0; k <= 16; k++ {
		for j := 0; j <= 16; j++ {
			for i := 0; i <= 16; i++ {
				ma.Data().Values[desc.GridPointIndex(i, j, k)] = fill(i, j, k)
			}
		}
	}
	require.NoError(t, ma.Close())
	return desc, region
}

type buildResult struct {
	vertices []VertexElement
	indices  []HWVertexIndex
	revmap   []IsoVertexIndex
	resetV   bool
}

func runBuild(t *testing.T, b *IsoSurfaceBuilder, region *voxel.CubeDataRegion, shadow *HardwareShadow, lod int, stitches spatial.Touch3DFlags, capacity int, consume bool) buildResult {
	t.Helper()
	require.NoError(t, b.EnqueueBuild(region, shadow, lod, stitches, GenerateNormals, capacity))

	qa, err := shadow.RequestConsumerLock(lod, stitches)
	require.NoError(t, err)
	defer qa.Close()

	out := buildResult{
		vertices: append([]VertexElement(nil), qa.Queue().VertexQueue...),
		indices:  append([]HWVertexIndex(nil), qa.Queue().IndexQueue...),
		revmap:   append([]IsoVertexIndex(nil), qa.Queue().Revmap...),
		resetV:   qa.ResetVertexBuffer.IsSet(),
	}
	if consume {
		qa.ResetVertexBuffer.Clear()
		qa.ResetIndexBuffer.Clear()
		qa.Consume()
	}
	return out
}

func planeFill(i, j, k int) voxel.FieldStrength {
	if k < 8 {
		return -1
	}
	return 1
}

// solidSeedFill is a single solid cell with min corner (8,8,8) in empty
// space.
func solidSeedFill(i, j, k int) voxel.FieldStrength {
	if i >= 8 && i <= 9 && j >= 8 && j <= 9 && k >= 8 && k <= 9 {
		return -1
	}
	return 1
}

func TestFlatPlaneScenario(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)

	out := runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	// One quad per (i,j) column.
	assert.Equal(t, 16*16*2*3, len(out.indices))
	// Vertices lattice: one per column grid point, all at the crossing
	// plane half a cell below the cube center.
	assert.Equal(t, 17*17, len(out.vertices))
	for _, v := range out.vertices {
		assert.InDelta(t, -0.5, v.Position.Z(), 1e-6)
		// Solid half-space below: normals point up.
		assert.Greater(t, v.Normal.Z(), float32(0.9))
	}

	// Face winding: geometric normals agree with the shading normals.
	for tri := 0; tri+3 <= len(out.indices); tri += 3 {
		p0 := out.vertices[out.indices[tri]].Position
		p1 := out.vertices[out.indices[tri+1]].Position
		p2 := out.vertices[out.indices[tri+2]].Position
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		assert.Greater(t, n.Z(), float32(0), "triangle %d winds downward", tri/3)
	}
}

func TestSolidSeedScenario(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{-8, -8, -8}, solidSeedFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)

	out := runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	// Marching cubes produces the six box faces plus the edge and corner
	// chamfers around the seed cell.
	assert.Equal(t, 44*3, len(out.indices))

	// Every vertex sits on a mid-edge of the lattice around the seed
	// cell: one coordinate half-integral, the rest integral.
	for _, v := range out.vertices {
		fractional := 0
		for a := 0; a < 3; a++ {
			c := v.Position[a]
			if c == float32(int(c)) {
				continue
			}
			assert.InDelta(t, 0.5, absf(c-floorf(c)), 1e-6)
			fractional++
		}
		assert.Equal(t, 1, fractional, "vertex %v off mid-edge", v.Position)
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func floorf(f float32) float32 {
	i := float32(int(f))
	if f < i {
		return i - 1
	}
	return i
}

func TestCaseCodeSymmetry(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, func(i, j, k int) voxel.FieldStrength {
		// Deterministic pseudo-random mix of solid and empty.
		if (i*73+j*179+k*283)%7 < 3 {
			return -1
		}
		return 1
	})
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)
	runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	ra, err := region.LeaseShared()
	require.NoError(t, err)
	defer ra.Close()

	want := make(map[voxel.CellIndex]uint16)
	for k := 0; k < 16; k++ {
		for j := 0; j < 16; j++ {
			for i := 0; i < 16; i++ {
				var code uint16
				for c := 0; c < 8; c++ {
					x, y, z := c&1, c>>1&1, c>>2&1
					code |= uint16(ra.Data().Values[desc.GridPointIndex(i+x, j+y, k+z)].SignBit()) << uint(c)
				}
				if code != 0 && code != 0xFF {
					want[desc.GridCellIndex(i, j, k)] = code
				}
			}
		}
	}

	rs := shadow.Resolution(0)
	require.True(t, rs.Shadowed)
	got := make(map[voxel.CellIndex]uint16)
	for _, c := range rs.RegularCases {
		got[c.Cell] = c.Code
	}
	assert.Equal(t, want, got)
}

func TestRefinementIdempotence(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, func(i, j, k int) voxel.FieldStrength {
		return voxel.FieldStrength((i*31+j*57+k*91)%17 - 8)
	})
	b := NewIsoSurfaceBuilder(desc, Parameters{
		MaxLOD:                   2,
		NormalsType:              NormalsGradient,
		TransitionCellWidthRatio: 0.5,
	})

	first := runBuild(t, b, region, NewHardwareShadow(2), 1, 0, 1<<16, false)
	second := runBuild(t, b, region, NewHardwareShadow(2), 1, 0, 1<<16, false)

	require.Equal(t, len(first.vertices), len(second.vertices))
	assert.Equal(t, first.vertices, second.vertices)
	assert.Equal(t, first.indices, second.indices)
	assert.Equal(t, first.revmap, second.revmap)
}

func TestEmptyCubeShortCircuit(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, func(i, j, k int) voxel.FieldStrength { return -1 })
	b := NewIsoSurfaceBuilder(desc, Parameters{MaxLOD: 2, TransitionCellWidthRatio: 0.5})
	shadow := NewHardwareShadow(2)

	out := runBuild(t, b, region, shadow, 1, spatial.Touch3DEast, 1<<16, false)
	assert.Empty(t, out.vertices)
	assert.Empty(t, out.indices)

	rs := shadow.Resolution(1)
	assert.True(t, rs.Shadowed)
	assert.Empty(t, rs.RegularCases)
	for _, st := range rs.Stitches {
		assert.Empty(t, st.TransitionCases)
	}
}

func TestVertexCapacityRollback(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)

	// 289 vertices cannot fit a 10-vertex buffer: the builder re-emits
	// from offset zero with the reset flag raised.
	out := runBuild(t, b, region, shadow, 0, 0, 10, false)
	assert.True(t, out.resetV)
	assert.Equal(t, 17*17, len(out.vertices))
}

func TestIncrementalRebuildReusesUploadedVertices(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)

	first := runBuild(t, b, region, shadow, 0, 0, 1<<16, true)
	require.Equal(t, 17*17, len(first.vertices))

	second := runBuild(t, b, region, shadow, 0, 0, 1<<16, false)
	assert.Empty(t, second.vertices, "uploaded vertices must not be re-marshaled")
	assert.Equal(t, first.indices, second.indices)
}

func TestStitchSymmetryAcrossLODBoundary(t *testing.T) {
	// Two adjacent cubes share the x=16 face: the left built at lod 1
	// with an East stitch, the right at lod 0 unstitched. Their vertices
	// on the shared face must coincide in world space.
	descL, left := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	_, right := testCube(t, mgl32.Vec3{16, 0, 0}, planeFill)

	params := Parameters{MaxLOD: 2, NormalsType: NormalsAverage, TransitionCellWidthRatio: 0.5}
	b := NewIsoSurfaceBuilder(descL, params)

	outL := runBuild(t, b, left, NewHardwareShadow(2), 1, spatial.Touch3DEast, 1<<16, false)
	outR := runBuild(t, b, right, NewHardwareShadow(2), 0, 0, 1<<16, false)

	faceVerts := func(out buildResult, center mgl32.Vec3) [][2]float32 {
		var verts [][2]float32
		for _, v := range out.vertices {
			world := v.Position.Add(center)
			if absf(world.X()-16) < 1e-6 {
				verts = append(verts, [2]float32{world.Y(), world.Z()})
			}
		}
		sort.Slice(verts, func(i, j int) bool {
			if verts[i][0] != verts[j][0] {
				return verts[i][0] < verts[j][0]
			}
			return verts[i][1] < verts[j][1]
		})
		return verts
	}

	lv := faceVerts(outL, mgl32.Vec3{8, 8, 8})
	rv := faceVerts(outR, mgl32.Vec3{24, 8, 8})

	require.NotEmpty(t, lv, "left cube emitted no shared-face vertices")
	assert.Equal(t, lv, rv)
}

func TestStitchedBuildKeepsCoarseSurfaceOffTheFace(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, planeFill)
	params := Parameters{MaxLOD: 2, NormalsType: NormalsAverage, TransitionCellWidthRatio: 0.5}
	b := NewIsoSurfaceBuilder(desc, params)
	shadow := NewHardwareShadow(2)

	out := runBuild(t, b, region, shadow, 1, spatial.Touch3DEast, 1<<16, false)

	rs := shadow.Resolution(1)
	assert.True(t, rs.Stitches[spatial.OrthoEast].Shadowed)
	assert.NotEmpty(t, rs.Stitches[spatial.OrthoEast].TransitionCases)
	assert.NotEmpty(t, rs.MiddleIsoVertexProperties)
	assert.NotEmpty(t, rs.BorderIsoVertexProperties)

	// Half-resolution vertices moved inward by ratio * 2^lod.
	sawTranslated := false
	for _, v := range out.vertices {
		x := v.Position.X() + 8
		if absf(x-15) < 1e-6 {
			sawTranslated = true
		}
	}
	assert.True(t, sawTranslated, "no half-resolution vertex carries the inward translation")
}
