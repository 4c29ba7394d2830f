package surface

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/voxel"
)

// NonTrivialCase is one cell whose triangulation produces geometry: its
// cell index and the marching-cubes (8-bit) or transition (9-bit) case
// code.
type NonTrivialCase struct {
	Cell voxel.CellIndex
	Code uint16
}

// StitchState caches the transition triangulation cases of one face of the
// cube, used when the neighbor on that side renders at higher resolution.
type StitchState struct {
	Side spatial.OrthogonalNeighbor

	// TransitionCases lists the non-trivial transition cells on this face
	// in face-cell scan order.
	TransitionCases []NonTrivialCase

	// Shadowed is set once the case list is populated; GPUed once the
	// face's triangles are batched.
	Shadowed, GPUed bool
}

// BorderVertexProperties is cached metadata about an iso-vertex sitting on
// a cube face, kept so later builds can re-derive stitching remaps without
// re-refining.
type BorderVertexProperties struct {
	Index    IsoVertexIndex
	Cell     voxel.CellIndex
	Side     spatial.OrthogonalNeighbor
	EdgeCode uint16
	Touch    spatial.Touch3DSide
}

// ResolutionState is the per-LOD shadow: case caches, face stitch states,
// border vertex properties, and the order vertices entered the hardware
// buffer.
type ResolutionState struct {
	LOD int

	RegularCases []NonTrivialCase
	Stitches     [spatial.CountOrthogonalNeighbors]*StitchState

	BorderIsoVertexProperties []BorderVertexProperties
	MiddleIsoVertexProperties []BorderVertexProperties

	// revmap records iso-vertex keys in the order their vertices entered
	// the hardware vertex buffer; it doubles as the ivi -> hwvi map and
	// the repopulation source after a resize.
	revmap []IsoVertexIndex

	Shadowed, GPUed bool
}

func newResolutionState(lod int) *ResolutionState {
	rs := &ResolutionState{LOD: lod}
	for s := range rs.Stitches {
		rs.Stitches[s] = &StitchState{Side: spatial.OrthogonalNeighbor(s)}
	}
	return rs
}

// HardwareVertexTail is the next free hardware vertex index.
func (rs *ResolutionState) HardwareVertexTail() int { return len(rs.revmap) }

// RestoreHardwareIndices rebuilds the ivi -> hwvi mapping in upload order.
func (rs *ResolutionState) RestoreHardwareIndices(into map[IsoVertexIndex]HWVertexIndex) {
	for hw, ivi := range rs.revmap {
		into[ivi] = HWVertexIndex(hw)
	}
}

// clearHardwareState wipes the GPU-facing half of the shadow; case caches
// survive.
func (rs *ResolutionState) clearHardwareState() {
	rs.GPUed = false
	rs.revmap = rs.revmap[:0]
	for _, st := range rs.Stitches {
		st.GPUed = false
	}
}

// clearAll wipes case caches and GPU state both.
func (rs *ResolutionState) clearAll() {
	rs.RegularCases = rs.RegularCases[:0]
	rs.BorderIsoVertexProperties = rs.BorderIsoVertexProperties[:0]
	rs.MiddleIsoVertexProperties = rs.MiddleIsoVertexProperties[:0]
	rs.revmap = rs.revmap[:0]
	rs.Shadowed = false
	rs.GPUed = false
	for _, st := range rs.Stitches {
		st.Shadowed = false
		st.GPUed = false
		st.TransitionCases = st.TransitionCases[:0]
	}
}

// IndexSpace tracks the hardware index buffer occupancy shared by every
// LOD configuration.
type IndexSpace struct {
	Allocated, Capacity int
}

// Free is the unoccupied unit count.
func (ix IndexSpace) Free() int { return ix.Capacity - ix.Allocated }

// BufferDepth selects how deep a clear reaches.
type BufferDepth int

const (
	// DepthShadow clears both the GPU state and the shadow caches.
	DepthShadow BufferDepth = iota
	// DepthGPUOnly clears GPU counters and flags; the shadow caches stay.
	DepthGPUOnly
)

// roleFlag is a boolean cell whose set and clear capabilities are handed
// to different actors.
type roleFlag struct{ v bool }

// SetFlag is the producer-side capability: it can raise the flag, never
// lower it. Raising a flag with an implication raises both.
type SetFlag struct {
	flag    *roleFlag
	implies *roleFlag
}

// Set raises the flag (and its implied flag, if any).
func (s SetFlag) Set() {
	s.flag.v = true
	if s.implies != nil {
		s.implies.v = true
	}
}

// IsSet reports the flag state.
func (s SetFlag) IsSet() bool { return s.flag.v }

// ClearFlag is the consumer-side capability: it can lower the flag, never
// raise it.
type ClearFlag struct{ flag *roleFlag }

// Clear lowers the flag.
func (c ClearFlag) Clear() { c.flag.v = false }

// IsSet reports the flag state.
func (c ClearFlag) IsSet() bool { return c.flag.v }

// VertexElement is one hardware vertex pending upload.
type VertexElement struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Colour   uint32
	TexCoord mgl32.Vec2
}

// BuilderQueue holds one in-flight mesh update: the vertices and triangle
// indices produced by the builder for a single (lod, stitch) configuration,
// plus the append-list of iso-vertex keys and the role-secure buffer reset
// flags.
type BuilderQueue struct {
	resolution *ResolutionState
	stitches   spatial.Touch3DFlags

	resetVertex, resetIndex roleFlag

	VertexQueue []VertexElement
	IndexQueue  []HWVertexIndex
	Revmap      []IsoVertexIndex
}

// HardwareShadow is the cached host-side projection of a cube's
// triangulation state: per-LOD case caches, the ivi -> hwvi maps, the
// shared index space, and the single producer/consumer queue guarding GPU
// buffer mutation.
type HardwareShadow struct {
	mu          sync.RWMutex
	resolutions []*ResolutionState
	indices     IndexSpace
	queue       *BuilderQueue
}

// NewHardwareShadow builds a shadow covering lodCount resolutions.
func NewHardwareShadow(lodCount int) *HardwareShadow {
	h := &HardwareShadow{resolutions: make([]*ResolutionState, lodCount)}
	for i := range h.resolutions {
		h.resolutions[i] = newResolutionState(i)
	}
	return h
}

// LODCount is the number of resolutions shadowed.
func (h *HardwareShadow) LODCount() int { return len(h.resolutions) }

// Resolution grants direct access to one LOD's state. Callers must hold a
// producer queue or otherwise be the only accessor.
func (h *HardwareShadow) Resolution(lod int) *ResolutionState {
	return h.resolutions[lod]
}

// Indices exposes the shared index space counts.
func (h *HardwareShadow) Indices() *IndexSpace { return &h.indices }

// Reset discards the pending queue and every LOD's hardware state; case
// caches survive.
func (h *HardwareShadow) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = nil
	for _, rs := range h.resolutions {
		rs.clearHardwareState()
	}
}

// Clear discards everything: queue, case caches, and hardware state.
func (h *HardwareShadow) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = nil
	h.indices = IndexSpace{}
	for _, rs := range h.resolutions {
		rs.clearAll()
	}
}

// ClearVertices wipes vertex state to the requested depth.
func (h *HardwareShadow) ClearVertices(depth BufferDepth) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, rs := range h.resolutions {
		if depth == DepthShadow {
			rs.clearAll()
		} else {
			rs.clearHardwareState()
		}
	}
}

// ClearIndices wipes index state to the requested depth.
func (h *HardwareShadow) ClearIndices(depth BufferDepth) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.indices = IndexSpace{}
	if depth == DepthShadow {
		for _, rs := range h.resolutions {
			for _, st := range rs.Stitches {
				st.Shadowed = false
				st.TransitionCases = st.TransitionCases[:0]
			}
		}
	}
}

// ProducerQueue is exclusive access for the builder: a freshly allocated
// BuilderQueue plus set-only reset capabilities. Close releases the lock.
type ProducerQueue struct {
	shadow *HardwareShadow
	queue  *BuilderQueue

	// ResetVertexBuffer implies ResetIndexBuffer when raised.
	ResetVertexBuffer SetFlag
	ResetIndexBuffer  SetFlag

	closed bool
}

// RequestProducerQueue takes the exclusive lock and replaces any pending
// queue with a fresh one for the given configuration. A queue overwritten
// before consumption is dropped; by contract its work was superseded.
func (h *HardwareShadow) RequestProducerQueue(lod int, stitches spatial.Touch3DFlags) *ProducerQueue {
	h.mu.Lock()
	q := &BuilderQueue{
		resolution: h.resolutions[lod],
		stitches:   stitches,
	}
	h.queue = q
	return &ProducerQueue{
		shadow:            h,
		queue:             q,
		ResetVertexBuffer: SetFlag{flag: &q.resetVertex, implies: &q.resetIndex},
		ResetIndexBuffer:  SetFlag{flag: &q.resetIndex},
	}
}

// Queue exposes the queue being filled.
func (p *ProducerQueue) Queue() *BuilderQueue { return p.queue }

// Resolution is the LOD state this queue targets.
func (p *ProducerQueue) Resolution() *ResolutionState { return p.queue.resolution }

// Stitches is the stitch configuration this queue targets.
func (p *ProducerQueue) Stitches() spatial.Touch3DFlags { return p.queue.stitches }

// Close releases the exclusive lock.
func (p *ProducerQueue) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.shadow.mu.Unlock()
}

// ConsumerAccess is the main-thread view of a matching pending queue,
// held under a shared lock. Close releases the lock; Consume commits the
// batch into the shadow.
type ConsumerAccess struct {
	shadow *HardwareShadow
	queue  *BuilderQueue

	// ResetVertexBuffer and ResetIndexBuffer are clear-only handles to the
	// role-secure reset flags.
	ResetVertexBuffer ClearFlag
	ResetIndexBuffer  ClearFlag

	closed bool
}

// RequestConsumerLock try-acquires the shared lock and validates that the
// pending queue matches the requested configuration. It reports
// ErrConsumerUnavailable instead of blocking so the main thread can skip a
// frame rather than stall.
func (h *HardwareShadow) RequestConsumerLock(lod int, stitches spatial.Touch3DFlags) (*ConsumerAccess, error) {
	if !h.mu.TryRLock() {
		return nil, ErrConsumerUnavailable
	}
	q := h.queue
	if q == nil || q.resolution != h.resolutions[lod] || q.stitches != stitches {
		h.mu.RUnlock()
		return nil, ErrConsumerUnavailable
	}
	return &ConsumerAccess{
		shadow:            h,
		queue:             q,
		ResetVertexBuffer: ClearFlag{flag: &q.resetVertex},
		ResetIndexBuffer:  ClearFlag{flag: &q.resetIndex},
	}, nil
}

// Queue exposes the pending batch.
func (c *ConsumerAccess) Queue() *BuilderQueue { return c.queue }

// Resolution is the LOD state the batch targets.
func (c *ConsumerAccess) Resolution() *ResolutionState { return c.queue.resolution }

// Stitches is the stitch configuration of the batch.
func (c *ConsumerAccess) Stitches() spatial.Touch3DFlags { return c.queue.stitches }

// RequiredVertexCount counts hardware vertices needed including those
// already present.
func (c *ConsumerAccess) RequiredVertexCount() int {
	return c.queue.resolution.HardwareVertexTail() + len(c.queue.VertexQueue)
}

// ActualVertexCount accounts for a pending buffer reset.
func (c *ConsumerAccess) ActualVertexCount() int {
	base := c.queue.resolution.HardwareVertexTail()
	if c.ResetVertexBuffer.IsSet() {
		base = 0
	}
	return base + len(c.queue.VertexQueue)
}

// VertexBufferOffset is where new vertex data lands; zero after a resize.
func (c *ConsumerAccess) VertexBufferOffset() int {
	if c.ResetVertexBuffer.IsSet() {
		return 0
	}
	return c.queue.resolution.HardwareVertexTail()
}

// RequiredIndexCount counts index units needed including those already
// present.
func (c *ConsumerAccess) RequiredIndexCount() int {
	return c.shadow.indices.Allocated + len(c.queue.IndexQueue)
}

// ActualIndexCount accounts for a pending buffer reset.
func (c *ConsumerAccess) ActualIndexCount() int {
	base := c.shadow.indices.Allocated
	if c.ResetIndexBuffer.IsSet() {
		base = 0
	}
	return base + len(c.queue.IndexQueue)
}

// IndexBufferOffset is where new index data lands; zero after a resize.
func (c *ConsumerAccess) IndexBufferOffset() int {
	if c.ResetIndexBuffer.IsSet() {
		return 0
	}
	return c.shadow.indices.Allocated
}

// Consume commits the batch: the append-list moves into the resolution
// state, the stitched faces are marked batched, and the queue is retired.
func (c *ConsumerAccess) Consume() {
	rs := c.queue.resolution
	rs.revmap = append(rs.revmap, c.queue.Revmap...)
	rs.GPUed = true
	for s, st := range rs.Stitches {
		if c.queue.stitches&spatial.SideOf(spatial.OrthogonalNeighbor(s)) != 0 {
			st.GPUed = true
		}
	}
	c.shadow.queue = nil
}

// Close releases the shared lock.
func (c *ConsumerAccess) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.shadow.mu.RUnlock()
}

// ReadLock takes the shared lock for case-cache reads (ray queries).
func (h *HardwareShadow) ReadLock() { h.mu.RLock() }

// ReadUnlock releases the shared lock.
func (h *HardwareShadow) ReadUnlock() { h.mu.RUnlock() }
