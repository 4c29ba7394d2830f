package voxel

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// EmptySet classifies a cube's contents.
type EmptySet int

const (
	// EmptyNone means the cube is mixed and produces geometry.
	EmptyNone EmptySet = iota
	// EmptySolid means every voxel is solid.
	EmptySolid
	// EmptyClear means every voxel is empty space.
	EmptyClear
)

// BoundingBox is a world-space axis-aligned box.
type BoundingBox struct {
	Min, Max mgl32.Vec3
}

// VoxelRange is a clipped integer coordinate range in feathered cube
// coordinates, inclusive on both ends.
type VoxelRange struct {
	X0, Y0, Z0 int
	XN, YN, ZN int
}

// CubeDataRegion is one cube worth of voxels in space. The compressed
// image is the authoritative state; accessors decompress it into a pooled
// DataBase on lease and mutable accessors write it back on Close.
type CubeDataRegion struct {
	desc *CubeDescriptor
	pool *Pool

	mu          sync.RWMutex
	bbox        BoundingBox
	compression *CompressedData
}

// NewCubeDataRegion creates a region over the given world bounding box.
func NewCubeDataRegion(desc *CubeDescriptor, pool *Pool, bbox BoundingBox) *CubeDataRegion {
	return &CubeDataRegion{
		desc:        desc,
		pool:        pool,
		bbox:        bbox,
		compression: NewCompressedData(desc.GridPointCount, desc.Flags),
	}
}

// Descriptor returns the shared scene descriptor.
func (r *CubeDataRegion) Descriptor() *CubeDescriptor { return r.desc }

// BoundingBox returns the cube's world bounds.
func (r *CubeDataRegion) BoundingBox() BoundingBox {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bbox
}

// MapRegion clips a world-space box to feathered grid coordinates in
// [-1 .. side+1] along each axis. The second return is false when the box
// and the feathered cube are disjoint.
func (r *CubeDataRegion) MapRegion(box BoundingBox) (VoxelRange, bool) {
	r.mu.RLock()
	bbox := r.bbox
	r.mu.RUnlock()

	scale := r.desc.Scale
	var vr VoxelRange
	lo := [3]*int{&vr.X0, &vr.Y0, &vr.Z0}
	hi := [3]*int{&vr.XN, &vr.YN, &vr.ZN}
	side1 := int(r.desc.Dimensions) + 1

	for a := 0; a < 3; a++ {
		v0 := bbox.Min[a] - scale
		vN := bbox.Max[a] + scale

		switch {
		case box.Min[a] <= v0:
			*lo[a] = -1
		case box.Min[a] > vN:
			return VoxelRange{}, false
		default:
			*lo[a] = int(ceil32((box.Min[a] - bbox.Min[a]) / scale))
		}

		switch {
		case box.Max[a] < v0:
			return VoxelRange{}, false
		case box.Max[a] >= vN:
			*hi[a] = side1
		default:
			*hi[a] = int(floor32((box.Max[a] - bbox.Min[a]) / scale))
		}
	}
	return vr, true
}

func ceil32(f float32) float32 {
	i := float32(int32(f))
	if f > i {
		return i + 1
	}
	return i
}

func floor32(f float32) float32 {
	i := float32(int32(f))
	if f < i {
		return i - 1
	}
	return i
}

// Accessor is an immutable snapshot of a cube's decompressed voxels. Any
// number may be live at once; all of them exclude mutators until closed.
// Close returns the DataBase to the pool.
type Accessor struct {
	region *CubeDataRegion
	db     *DataBase
	unlock func()
	closed bool
}

// MutableAccessor is an exclusive read/write view. Close recompresses the
// DataBase into the region before returning it to the pool.
type MutableAccessor struct {
	Accessor
	// Voxels is the feathered field view over the leased values.
	Voxels *FieldAccessor
}

// LeaseShared takes an immutable snapshot; concurrent readers interleave.
func (r *CubeDataRegion) LeaseShared() (*Accessor, error) {
	db := r.pool.Lease()
	r.mu.RLock()
	if err := r.compression.Unpack(db); err != nil {
		r.mu.RUnlock()
		r.pool.Retire(db)
		return nil, err
	}
	return &Accessor{region: r, db: db, unlock: r.mu.RUnlock}, nil
}

// Lease takes the exclusive mutable view, blocking other mutators until the
// accessor closes.
func (r *CubeDataRegion) Lease() (*MutableAccessor, error) {
	db := r.pool.Lease()
	r.mu.Lock()
	if err := r.compression.Unpack(db); err != nil {
		r.mu.Unlock()
		r.pool.Retire(db)
		return nil, err
	}
	ma := &MutableAccessor{
		Accessor: Accessor{region: r, db: db, unlock: r.mu.Unlock},
		Voxels:   NewFieldAccessor(r.desc, db.Values),
	}
	return ma, nil
}

// Data exposes the leased channel arrays.
func (a *Accessor) Data() *DataBase { return a.db }

// EmptyStatus classifies the cube by OR-reducing pairwise XORs of all
// values: any difference outside the mantissa means a mixed cube, else the
// sign of values[0] decides.
func (a *Accessor) EmptyStatus() EmptySet {
	var acc FieldStrength
	values := a.db.Values
	for i := 1; i < len(values); i++ {
		acc |= values[i-1] ^ values[i]
	}
	if uint8(acc)&0x80 == 0 {
		if values[0] < 0 {
			return EmptySolid
		}
		return EmptyClear
	}
	return EmptyNone
}

// Close releases the snapshot back to the pool.
func (a *Accessor) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.unlock()
	return a.region.pool.Retire(a.db)
}

// UpdateGradient recomputes the gradient channels from the current field,
// pulling boundary samples from the feathered slabs.
func (a *MutableAccessor) UpdateGradient() {
	db := a.db
	if db.DX == nil {
		return
	}
	for c, dst := range [][]int8{db.DX, db.DY, db.DZ} {
		it := a.Voxels.IterateGradientFull(c)
		for it.Next() {
			dst[it.Cur.Index] = int8(clampInt(-128, 127, (int(it.Cur.Left)-int(it.Cur.Right))/2))
		}
	}
}

// Close writes the DataBase back into the compressed image, then returns it
// to the pool and releases the region for the next mutator.
func (a *MutableAccessor) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.region.compression.Pack(a.db)
	a.unlock()
	return a.region.pool.Retire(a.db)
}
