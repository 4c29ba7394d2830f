package surface

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/overhang/gpu"
)

func TestPopulateBuffersDrainsQueue(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	m := NewMeshRenderable(region, 1, 1024, MemoryStoreFactory)

	require.NoError(t, b.EnqueueBuild(region, m.Shadow(), 0, 0, GenerateNormals, m.VertexCapacity()))

	// Wrong configuration cannot drain the queue.
	err := m.PopulateBuffers(0, 0x3F)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))

	require.NoError(t, m.PopulateBuffers(0, 0))

	store := m.IndexStore(0, 0).(*gpu.MemoryStore)
	assert.Equal(t, 16*16*2*3*IndexStride, store.Size())
	assert.True(t, m.Shadow().Resolution(0).GPUed)
	assert.Equal(t, 17*17, m.Shadow().Resolution(0).HardwareVertexTail())

	// Nothing left to drain.
	err = m.PopulateBuffers(0, 0)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))
}

func TestPopulateResizesOnReset(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	m := NewMeshRenderable(region, 1, 10, MemoryStoreFactory)

	// Capacity 10 forces the builder to raise the vertex reset flag; the
	// uploader replaces the store with one large enough.
	require.NoError(t, b.EnqueueBuild(region, m.Shadow(), 0, 0, GenerateNormals, m.VertexCapacity()))
	require.NoError(t, m.PopulateBuffers(0, 0))

	assert.Equal(t, 17*17, m.VertexCapacity())
}

func TestDirectBuildPopulates(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	m := NewMeshRenderable(region, 1, 1024, MemoryStoreFactory)

	require.NoError(t, b.Build(region, m, 0, 0, GenerateNormals))
	assert.True(t, m.Shadow().Resolution(0).GPUed)
	assert.Equal(t, 17*17, m.Shadow().Resolution(0).HardwareVertexTail())
	assert.NotNil(t, m.IndexStore(0, 0))
}

func TestDeleteGeometry(t *testing.T) {
	desc, region := testCube(t, mgl32.Vec3{0, 0, 0}, planeFill)
	b := NewIsoSurfaceBuilder(desc, DefaultParameters())
	m := NewMeshRenderable(region, 1, 1024, MemoryStoreFactory)
	require.NoError(t, b.Build(region, m, 0, 0, GenerateNormals))

	m.DeleteGeometry()
	assert.Equal(t, 0, m.VertexCapacity())
	assert.Nil(t, m.IndexStore(0, 0))
	rs := m.Shadow().Resolution(0)
	assert.False(t, rs.Shadowed)
	assert.Empty(t, rs.RegularCases)
}

func TestMemoryStoreBounds(t *testing.T) {
	s := gpu.NewMemoryStore(8)
	assert.NoError(t, s.Write(0, []byte{1, 2, 3, 4}))
	assert.Error(t, s.Write(6, []byte{1, 2, 3}))
	require.NoError(t, s.Resize(16))
	assert.NoError(t, s.Write(12, []byte{1, 2, 3, 4}))
}
