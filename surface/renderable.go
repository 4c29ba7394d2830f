package surface

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gekko3d/overhang/gpu"
	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/voxel"
)

// VertexStride is the byte size of one hardware vertex: position and
// normal as three float32 each, packed RGBA colour, and a float32 texture
// coordinate pair.
const VertexStride = 3*4 + 3*4 + 4 + 2*4

// IndexStride is the byte size of one hardware index.
const IndexStride = 2

// meshKey identifies one index buffer configuration.
type meshKey struct {
	lod      int
	stitches spatial.Touch3DFlags
}

// StoreFactory allocates a byte store of n bytes for the labeled buffer.
type StoreFactory func(label string, n int) gpu.ByteStore

// MemoryStoreFactory backs buffers with plain memory.
func MemoryStoreFactory(label string, n int) gpu.ByteStore { return gpu.NewMemoryStore(n) }

// MeshRenderable is the renderable surface of one cube region: the opaque
// GPU vertex store shared by every configuration and one index store per
// (lod, stitch) configuration. Buffer mutation happens on the main thread
// by draining the shadow's builder queue.
type MeshRenderable struct {
	region   *voxel.CubeDataRegion
	shadow   *HardwareShadow
	newStore StoreFactory

	vertices gpu.ByteStore
	indices  map[meshKey]gpu.ByteStore
}

// NewMeshRenderable creates the renderable with an initial vertex capacity
// in vertices.
func NewMeshRenderable(region *voxel.CubeDataRegion, lodCount, initialVertexCapacity int, factory StoreFactory) *MeshRenderable {
	return &MeshRenderable{
		region:   region,
		shadow:   NewHardwareShadow(lodCount),
		newStore: factory,
		vertices: factory("iso-vertices", initialVertexCapacity*VertexStride),
		indices:  make(map[meshKey]gpu.ByteStore),
	}
}

// Region is the cube this surface renders.
func (m *MeshRenderable) Region() *voxel.CubeDataRegion { return m.region }

// Shadow is the renderable's hardware shadow.
func (m *MeshRenderable) Shadow() *HardwareShadow { return m.shadow }

// VertexCapacity is the vertex store's capacity in vertices.
func (m *MeshRenderable) VertexCapacity() int { return m.vertices.Size() / VertexStride }

// VertexStore exposes the vertex byte store (for draw binding).
func (m *MeshRenderable) VertexStore() gpu.ByteStore { return m.vertices }

// IndexStore exposes the index byte store of one configuration, nil when
// never populated.
func (m *MeshRenderable) IndexStore(lod int, stitches spatial.Touch3DFlags) gpu.ByteStore {
	return m.indices[meshKey{lod, stitches}]
}

func packVertices(elems []VertexElement) []byte {
	buf := make([]byte, len(elems)*VertexStride)
	off := 0
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, e := range elems {
		put(e.Position[0])
		put(e.Position[1])
		put(e.Position[2])
		put(e.Normal[0])
		put(e.Normal[1])
		put(e.Normal[2])
		binary.LittleEndian.PutUint32(buf[off:], e.Colour)
		off += 4
		put(e.TexCoord[0])
		put(e.TexCoord[1])
	}
	return buf
}

func packIndices(indices []HWVertexIndex) []byte {
	buf := make([]byte, len(indices)*IndexStride)
	for i, ix := range indices {
		binary.LittleEndian.PutUint16(buf[i*IndexStride:], ix)
	}
	return buf
}

// flush writes one batch into the stores, resizing where the reset flags
// demand it, and updates the shared index space.
func (m *MeshRenderable) flush(
	q *BuilderQueue,
	key meshKey,
	resetVertex, resetIndex bool,
	vertexOffset, indexOffset int,
	actualVertexCount, actualIndexCount int,
) error {
	if resetVertex || actualVertexCount*VertexStride > m.vertices.Size() {
		if err := m.vertices.Resize(actualVertexCount * VertexStride); err != nil {
			return fmt.Errorf("resizing vertex store: %w", err)
		}
	}
	if len(q.VertexQueue) > 0 {
		if err := m.vertices.Write(vertexOffset*VertexStride, packVertices(q.VertexQueue)); err != nil {
			return fmt.Errorf("writing vertex store: %w", err)
		}
	}

	store, ok := m.indices[key]
	if !ok {
		store = m.newStore(fmt.Sprintf("iso-indices-%d-%s", key.lod, key.stitches), actualIndexCount*IndexStride)
		m.indices[key] = store
	}
	if resetIndex || actualIndexCount*IndexStride > store.Size() {
		if err := store.Resize(actualIndexCount * IndexStride); err != nil {
			return fmt.Errorf("resizing index store: %w", err)
		}
	}
	if len(q.IndexQueue) > 0 {
		if err := store.Write(indexOffset*IndexStride, packIndices(q.IndexQueue)); err != nil {
			return fmt.Errorf("writing index store: %w", err)
		}
	}

	m.shadow.indices.Allocated = indexOffset + len(q.IndexQueue)
	if units := store.Size() / IndexStride; units > m.shadow.indices.Capacity {
		m.shadow.indices.Capacity = units
	}
	return nil
}

// PopulateBuffers drains a matching pending builder queue onto the GPU.
// Main-thread only. Returns ErrConsumerUnavailable when there is nothing
// to drain for this configuration or the lock is contended.
func (m *MeshRenderable) PopulateBuffers(lod int, stitches spatial.Touch3DFlags) error {
	qa, err := m.shadow.RequestConsumerLock(lod, stitches)
	if err != nil {
		return err
	}
	defer qa.Close()

	err = m.flush(
		qa.Queue(),
		meshKey{lod, stitches},
		qa.ResetVertexBuffer.IsSet(),
		qa.ResetIndexBuffer.IsSet(),
		qa.VertexBufferOffset(),
		qa.IndexBufferOffset(),
		qa.ActualVertexCount(),
		qa.ActualIndexCount(),
	)
	if err != nil {
		return err
	}
	qa.ResetVertexBuffer.Clear()
	qa.ResetIndexBuffer.Clear()
	qa.Consume()
	return nil
}

// DirectlyPopulateBuffers is the synchronous counterpart used by
// main-thread builds: the producer's own queue is flushed and committed
// without a consumer hand-off.
func (m *MeshRenderable) DirectlyPopulateBuffers(pq *ProducerQueue) error {
	q := pq.Queue()
	rs := pq.Resolution()

	resetVertex := pq.ResetVertexBuffer.IsSet()
	resetIndex := pq.ResetIndexBuffer.IsSet()
	vertexOffset := rs.HardwareVertexTail()
	if resetVertex {
		vertexOffset = 0
	}
	indexOffset := 0
	if !resetIndex {
		indexOffset = m.shadow.indices.Allocated
	}

	err := m.flush(
		q,
		meshKey{rs.LOD, pq.Stitches()},
		resetVertex, resetIndex,
		vertexOffset, indexOffset,
		vertexOffset+len(q.VertexQueue),
		indexOffset+len(q.IndexQueue),
	)
	if err != nil {
		return err
	}

	rs.revmap = append(rs.revmap, q.Revmap...)
	rs.GPUed = true
	for s, st := range rs.Stitches {
		if pq.Stitches()&spatial.SideOf(spatial.OrthogonalNeighbor(s)) != 0 {
			st.GPUed = true
		}
	}
	m.shadow.queue = nil
	return nil
}

// DeleteGeometry clears every GPU buffer and invalidates all case caches.
func (m *MeshRenderable) DeleteGeometry() {
	m.shadow.Clear()
	m.vertices.Resize(0)
	for _, store := range m.indices {
		store.Release()
	}
	m.indices = make(map[meshKey]gpu.ByteStore)
}
