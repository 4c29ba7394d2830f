package surface

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/voxel"
)

func TestRayHitsSolidSeedBox(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{-8, -8, -8}, solidSeedFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)
	runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	hit, ok, err := b.RayQuery(region, shadow, 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{-10, 0.5, 0.5},
		Direction: mgl32.Vec3{1, 0, 0},
	}, 100)
	require.NoError(t, err)
	require.True(t, ok, "ray must hit the seed box")

	assert.InDelta(t, -0.5, hit.Position.X(), 1e-4)
	assert.InDelta(t, 0.5, hit.Position.Y(), 1e-4)
	assert.InDelta(t, 0.5, hit.Position.Z(), 1e-4)
	assert.InDelta(t, 9.5, hit.Distance, 1e-4)
}

func TestRayMissesOffAxis(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{-8, -8, -8}, solidSeedFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)
	runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	// Far away from the seed cell.
	_, ok, err := b.RayQuery(region, shadow, 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{-10, 6, 6},
		Direction: mgl32.Vec3{1, 0, 0},
	}, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRayRespectsDistanceLimit(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{-8, -8, -8}, solidSeedFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)
	runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	_, ok, err := b.RayQuery(region, shadow, 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{-10, 0.5, 0.5},
		Direction: mgl32.Vec3{1, 0, 0},
	}, 5)
	require.NoError(t, err)
	assert.False(t, ok, "hit beyond the distance limit must be discarded")
}

func TestRayAgainstPlaneMatchesBuildOutput(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)
	runBuild(t, b, region, shadow, 0, 0, 1<<16, false)

	hit, ok, err := b.RayQuery(region, shadow, 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{5.25, 5.25, 16},
		Direction: mgl32.Vec3{0, 0, -1},
	}, 100)
	require.NoError(t, err)
	require.True(t, ok)
	// The surface plane sits at z = 7.5 in world space.
	assert.InDelta(t, 7.5, hit.Position.Z(), 1e-4)
	assert.InDelta(t, 8.5, hit.Distance, 1e-4)
}

func TestRayQueryWithoutPriorBuild(t *testing.T) {
	// An unshadowed cube scans its cases on the fly.
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)

	hit, ok, err := b.RayQuery(region, shadow, 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{3.5, 3.5, 16},
		Direction: mgl32.Vec3{0, 0, -1},
	}, 100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 7.5, hit.Position.Z(), 1e-4)
}

func TestRayEmptyCube(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{}, func(i, j, k int) voxel.FieldStrength { return 1 })
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	shadow := NewHardwareShadow(1)

	_, ok, err := b.RayQuery(region, shadow, 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{-5, 8, 8},
		Direction: mgl32.Vec3{1, 0, 0},
	}, 100)
	require.NoError(t, err)
	assert.False(t, ok)
}
