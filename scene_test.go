package overhang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/overhang/meta"
	"github.com/gekko3d/overhang/spatial"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOptionsValidation(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())

	bad := opts
	bad.SideVoxelCount = 16
	assert.Error(t, bad.Validate())

	bad = opts
	bad.TransitionCellWidthRatio = 1.5
	assert.Error(t, bad.Validate())

	bad = opts
	bad.CellScale = 0
	assert.Error(t, bad.Validate())
}

func TestTileNeighborLinks(t *testing.T) {
	s, err := NewScene(DefaultOptions(), nil, nil)
	require.NoError(t, err)
	defer s.Close()

	a, err := s.AddTile([3]int{0, 0, 0})
	require.NoError(t, err)
	bTile, err := s.AddTile([3]int{1, 0, 0}) // east of a
	require.NoError(t, err)
	c, err := s.AddTile([3]int{1, 1, 0}) // above b
	require.NoError(t, err)

	assert.Equal(t, bTile, s.Neighbor(a.ID, spatial.Moore3East))
	assert.Equal(t, a, s.Neighbor(bTile.ID, spatial.Moore3West))
	assert.Equal(t, c, s.Neighbor(bTile.ID, spatial.Moore3Above))
	assert.Equal(t, c, s.Neighbor(a.ID, spatial.Moore3AboveEast))
	assert.Nil(t, s.Neighbor(a.ID, spatial.Moore3North))

	s.RemoveTile(bTile.ID)
	assert.Nil(t, s.Neighbor(a.ID, spatial.Moore3East))
	assert.Nil(t, s.Tile(bTile.ID))

	// Re-adding restores the links.
	again, err := s.AddTile([3]int{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, again, s.Neighbor(a.ID, spatial.Moore3East))

	_, err = s.AddTile([3]int{0, 0, 0})
	assert.Error(t, err, "duplicate coordinates must be rejected")
}

func TestSceneBuildRoundTrip(t *testing.T) {
	s, err := NewScene(DefaultOptions(), nil, nil)
	require.NoError(t, err)

	tile, err := s.AddTile([3]int{0, 0, 0})
	require.NoError(t, err)

	// Solidify the lower half of the tile.
	bbox := tile.Region.BoundingBox()
	hm := meta.NewHeightmap(func(x, z float32) float32 {
		return bbox.Min[1] + 8
	})
	ma, err := tile.Region.Lease()
	require.NoError(t, err)
	hm.UpdateDataGrid(tile.Region, ma)
	ma.UpdateGradient()
	require.NoError(t, ma.Close())

	buildErr := make(chan error, 1)
	s.EnqueueBuild(tile.ID, 0, 0, func(err error) { buildErr <- err })

	deadline := time.After(5 * time.Second)
	for {
		if s.Queue().PumpResponses(4) > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("build never completed")
		case <-time.After(time.Millisecond):
		}
	}
	require.NoError(t, <-buildErr)

	require.NoError(t, tile.Renderable.PopulateBuffers(0, 0))
	assert.True(t, tile.Renderable.Shadow().Resolution(0).GPUed)
	assert.Greater(t, tile.Renderable.Shadow().Resolution(0).HardwareVertexTail(), 0)

	require.NoError(t, s.Close())
}

func TestSceneRayThroughTile(t *testing.T) {
	s, err := NewScene(DefaultOptions(), nil, nil)
	require.NoError(t, err)
	defer s.Close()

	tile, err := s.AddTile([3]int{0, 0, 0})
	require.NoError(t, err)

	ma, err := tile.Region.Lease()
	require.NoError(t, err)
	desc := s.Descriptor()
	for k := 0; k <= 16; k++ {
		for j := 0; j <= 16; j++ {
			for i := 0; i <= 16; i++ {
				if j < 8 {
					ma.Data().Values[desc.GridPointIndex(i, j, k)] = -1
				} else {
					ma.Data().Values[desc.GridPointIndex(i, j, k)] = 1
				}
			}
		}
	}
	require.NoError(t, ma.Close())

	hit, ok, err := s.Builder().RayQuery(tile.Region, tile.Renderable.Shadow(), 0, 0, spatial.Ray{
		Origin:    mgl32.Vec3{8, 20, 8},
		Direction: mgl32.Vec3{0, -1, 0},
	}, 100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 7.5, hit.Position.Y(), 1e-4)
}
