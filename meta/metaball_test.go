package meta

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/overhang/surface"
	"github.com/gekko3d/overhang/voxel"
)

func testRegion(t *testing.T) (*voxel.CubeDescriptor, *voxel.CubeDataRegion) {
	t.Helper()
	desc, err := voxel.NewCubeDescriptor(17, 1.0, 0)
	require.NoError(t, err)
	pool := voxel.NewPool(desc.GridPointCount, desc.Flags, 1, 1)
	region := voxel.NewCubeDataRegion(desc, pool, voxel.BoundingBox{
		Min: mgl32.Vec3{0, 0, 0},
		Max: mgl32.Vec3{16, 16, 16},
	})
	return desc, region
}

func TestExcavatingToggle(t *testing.T) {
	ball := NewBall(mgl32.Vec3{}, 5, true)
	assert.True(t, ball.Excavating())
	ball.SetExcavating(false)
	assert.False(t, ball.Excavating())
	ball.SetExcavating(true)
	assert.True(t, ball.Excavating())
}

func TestFillingBallSolidifiesSphere(t *testing.T) {
	_, region := testRegion(t)
	center := mgl32.Vec3{8, 8, 8}
	ball := NewBall(center, 5, false)

	ma, err := region.Lease()
	require.NoError(t, err)
	ball.UpdateDataGrid(region, ma)

	inside := ma.Voxels.At(8, 8, 8)
	nearEdge := ma.Voxels.At(8, 8, 12)
	outside := ma.Voxels.At(8, 8, 15)
	require.NoError(t, ma.Close())

	assert.Less(t, int(inside), 0, "center must turn solid")
	assert.Less(t, int(nearEdge), 0, "interior near the boundary must be solid")
	assert.GreaterOrEqual(t, int(outside), 0, "outside the sphere stays empty")
}

func TestExcavatingBallCarvesSolid(t *testing.T) {
	_, region := testRegion(t)

	ma, err := region.Lease()
	require.NoError(t, err)
	for i := range ma.Data().Values {
		ma.Data().Values[i] = -100
	}
	ball := NewBall(mgl32.Vec3{8, 8, 8}, 5, true)
	ball.UpdateDataGrid(region, ma)
	carved := ma.Voxels.At(8, 8, 8)
	wall := ma.Voxels.At(0, 0, 0)
	require.NoError(t, ma.Close())

	assert.GreaterOrEqual(t, int(carved), 0, "center must be carved open")
	assert.Less(t, int(wall), 0, "distant voxels stay solid")
}

func TestBallOutsideRegionIsNoOp(t *testing.T) {
	_, region := testRegion(t)
	ball := NewBall(mgl32.Vec3{200, 200, 200}, 5, false)

	ma, err := region.Lease()
	require.NoError(t, err)
	ball.UpdateDataGrid(region, ma)
	for _, v := range ma.Data().Values {
		if v != 0 {
			t.Fatal("distant ball dirtied the region")
		}
	}
	require.NoError(t, ma.Close())
}

func TestMetaballEditThenRebuild(t *testing.T) {
	desc, region := testRegion(t)
	center := mgl32.Vec3{8, 8, 8}
	ball := NewBall(center, 5, false)

	ma, err := region.Lease()
	require.NoError(t, err)
	ball.UpdateDataGrid(region, ma)
	require.NoError(t, ma.Close())

	b := surface.NewIsoSurfaceBuilder(desc, surface.DefaultParameters())
	shadow := surface.NewHardwareShadow(1)
	require.NoError(t, b.EnqueueBuild(region, shadow, 0, 0, surface.GenerateNormals, 1<<16))

	qa, err := shadow.RequestConsumerLock(0, 0)
	require.NoError(t, err)
	defer qa.Close()

	require.NotEmpty(t, qa.Queue().VertexQueue)
	// Extracted vertices hug the sphere within a voxel of slack.
	for _, v := range qa.Queue().VertexQueue {
		world := v.Position.Add(center)
		d := world.Sub(center).Len()
		assert.InDelta(t, 5.0, d, 1.0, "vertex %v strays from the sphere", world)
	}
}

func TestHeightmapContribution(t *testing.T) {
	_, region := testRegion(t)
	hm := NewHeightmap(func(x, z float32) float32 { return 8 })

	ma, err := region.Lease()
	require.NoError(t, err)
	hm.UpdateDataGrid(region, ma)
	below := ma.Voxels.At(8, 2, 8)
	above := ma.Voxels.At(8, 14, 8)
	require.NoError(t, ma.Close())

	assert.Less(t, int(below), 0, "below the surface is solid")
	assert.Greater(t, int(above), 0, "above the surface is empty")
}
