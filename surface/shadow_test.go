package surface

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/overhang/spatial"
)

func TestConsumerRequiresMatchingQueue(t *testing.T) {
	h := NewHardwareShadow(3)

	// No queue pending at all.
	_, err := h.RequestConsumerLock(0, 0)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))

	pq := h.RequestProducerQueue(1, spatial.Touch3DEast)
	pq.Queue().VertexQueue = append(pq.Queue().VertexQueue, VertexElement{})
	pq.Queue().Revmap = append(pq.Queue().Revmap, 42)
	pq.Close()

	// Wrong LOD and wrong stitch flags are both rejected.
	_, err = h.RequestConsumerLock(0, spatial.Touch3DEast)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))
	_, err = h.RequestConsumerLock(1, 0)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))

	qa, err := h.RequestConsumerLock(1, spatial.Touch3DEast)
	require.NoError(t, err)
	defer qa.Close()
	assert.Equal(t, 1, len(qa.Queue().VertexQueue))
}

func TestConsumerUnavailableWhileProducerHoldsLock(t *testing.T) {
	h := NewHardwareShadow(1)
	pq := h.RequestProducerQueue(0, 0)
	_, err := h.RequestConsumerLock(0, 0)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))
	pq.Close()
}

func TestRoleSecureResetFlags(t *testing.T) {
	h := NewHardwareShadow(1)
	pq := h.RequestProducerQueue(0, 0)

	// Raising the vertex reset implies the index reset.
	pq.ResetVertexBuffer.Set()
	assert.True(t, pq.ResetVertexBuffer.IsSet())
	assert.True(t, pq.ResetIndexBuffer.IsSet())
	pq.Close()

	qa, err := h.RequestConsumerLock(0, 0)
	require.NoError(t, err)
	assert.True(t, qa.ResetVertexBuffer.IsSet())
	qa.ResetVertexBuffer.Clear()
	qa.ResetIndexBuffer.Clear()
	assert.False(t, qa.ResetVertexBuffer.IsSet())
	assert.False(t, qa.ResetIndexBuffer.IsSet())
	qa.Close()
}

func TestVertexCounting(t *testing.T) {
	h := NewHardwareShadow(1)
	rs := h.Resolution(0)
	rs.revmap = append(rs.revmap, 1, 2, 3) // three vertices already uploaded

	pq := h.RequestProducerQueue(0, 0)
	pq.Queue().VertexQueue = make([]VertexElement, 5)
	pq.Close()

	qa, err := h.RequestConsumerLock(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, qa.RequiredVertexCount())
	assert.Equal(t, 8, qa.ActualVertexCount())
	assert.Equal(t, 3, qa.VertexBufferOffset())
	qa.Close()

	// With the reset raised, upload starts from offset zero.
	pq = h.RequestProducerQueue(0, 0)
	pq.Queue().VertexQueue = make([]VertexElement, 5)
	pq.ResetVertexBuffer.Set()
	pq.Close()

	qa, err = h.RequestConsumerLock(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, qa.RequiredVertexCount())
	assert.Equal(t, 5, qa.ActualVertexCount())
	assert.Equal(t, 0, qa.VertexBufferOffset())
	qa.Close()
}

func TestConsumeCommitsAppendList(t *testing.T) {
	h := NewHardwareShadow(1)
	pq := h.RequestProducerQueue(0, spatial.Touch3DWest)
	pq.Queue().Revmap = append(pq.Queue().Revmap, 7, 9)
	pq.Close()

	qa, err := h.RequestConsumerLock(0, spatial.Touch3DWest)
	require.NoError(t, err)
	qa.Consume()
	qa.Close()

	rs := h.Resolution(0)
	assert.Equal(t, []IsoVertexIndex{7, 9}, rs.revmap)
	assert.True(t, rs.GPUed)
	assert.True(t, rs.Stitches[spatial.OrthoWest].GPUed)
	assert.False(t, rs.Stitches[spatial.OrthoEast].GPUed)

	// The queue was retired with the batch.
	_, err = h.RequestConsumerLock(0, spatial.Touch3DWest)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))
}

func TestSecondProducerOverwritesPendingQueue(t *testing.T) {
	h := NewHardwareShadow(1)
	pq := h.RequestProducerQueue(0, 0)
	pq.Queue().Revmap = append(pq.Queue().Revmap, 1)
	pq.Close()

	pq = h.RequestProducerQueue(0, spatial.Touch3DNorth)
	pq.Close()

	_, err := h.RequestConsumerLock(0, 0)
	assert.True(t, errors.Is(err, ErrConsumerUnavailable))
	qa, err := h.RequestConsumerLock(0, spatial.Touch3DNorth)
	require.NoError(t, err)
	assert.Empty(t, qa.Queue().Revmap)
	qa.Close()
}

func TestClearDepths(t *testing.T) {
	h := NewHardwareShadow(1)
	rs := h.Resolution(0)
	rs.RegularCases = append(rs.RegularCases, NonTrivialCase{Cell: 1, Code: 2})
	rs.revmap = append(rs.revmap, 5)
	rs.Shadowed = true
	rs.GPUed = true

	h.ClearVertices(DepthGPUOnly)
	assert.True(t, rs.Shadowed)
	assert.NotEmpty(t, rs.RegularCases)
	assert.False(t, rs.GPUed)
	assert.Empty(t, rs.revmap)

	h.ClearVertices(DepthShadow)
	assert.False(t, rs.Shadowed)
	assert.Empty(t, rs.RegularCases)
}
