package voxel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/overhang/spatial"
)

// IndexTx is a translation vector for converting coordinates to a linear
// index: index = k*Mz + j*My + i*Mx.
type IndexTx struct {
	Mx, My, Mz int32
}

// CubeDescriptor is immutable per-scene metadata shared by every cube
// region: side lengths, world scale, the precomputed grid-point position
// table, and the coordinate/index transforms.
type CubeDescriptor struct {
	// Dimensions is the number of cells per side (voxels per side minus
	// one); a power of two no greater than 32.
	Dimensions DimensionType
	// Scale is world units per cell.
	Scale float32

	// GridPointCount is (Dimensions+1)^3, CellCount is Dimensions^3;
	// the Side* variants count one face worth.
	GridPointCount, CellCount   int
	SidePointCount, SideCellCount int

	// PointTx and CellTx translate (i,j,k) into linear indices.
	PointTx, CellTx IndexTx

	Flags RegionFlags

	dimOrder uint // log2(Dimensions)
	// positions holds a fixed-point vector per grid point, centered on the
	// origin.
	positions []spatial.FixVec3
}

// NewCubeDescriptor builds the shared descriptor. sideVoxelCount must be a
// power of two plus one, at most 33.
func NewCubeDescriptor(sideVoxelCount int, scale float32, flags RegionFlags) (*CubeDescriptor, error) {
	dim := sideVoxelCount - 1
	if dim <= 0 || dim&(dim-1) != 0 {
		return nil, fmt.Errorf("%w: side voxel count %d is not a power of two plus one", ErrOutOfRange, sideVoxelCount)
	}
	if dim > 32 {
		return nil, fmt.Errorf("%w: dimensions %d exceed 32", ErrOutOfRange, dim)
	}

	order := uint(0)
	for 1<<(order+1) <= dim {
		order++
	}

	d := &CubeDescriptor{
		Dimensions:     DimensionType(dim),
		Scale:          scale,
		GridPointCount: sideVoxelCount * sideVoxelCount * sideVoxelCount,
		CellCount:      dim * dim * dim,
		SidePointCount: sideVoxelCount * sideVoxelCount,
		SideCellCount:  dim * dim,
		PointTx:        IndexTx{Mx: 1, My: int32(sideVoxelCount), Mz: int32(sideVoxelCount * sideVoxelCount)},
		CellTx:         IndexTx{Mx: 1, My: int32(dim), Mz: int32(dim * dim)},
		Flags:          flags,
		dimOrder:       order,
	}

	d.positions = make([]spatial.FixVec3, 0, d.GridPointCount)
	half := dim / 2
	for k := 0; k <= dim; k++ {
		for j := 0; j <= dim; j++ {
			for i := 0; i <= dim; i++ {
				d.positions = append(d.positions, spatial.FixVec3FromInts(i-half, j-half, k-half))
			}
		}
	}
	return d, nil
}

// HasGradient reports whether regions carry gradient channels.
func (d *CubeDescriptor) HasGradient() bool { return d.Flags&RegionHasGradient != 0 }

// HasColours reports whether regions carry colour channels.
func (d *CubeDescriptor) HasColours() bool { return d.Flags&RegionHasColours != 0 }

// HasTexCoords reports whether regions carry texture coordinate channels.
func (d *CubeDescriptor) HasTexCoords() bool { return d.Flags&RegionHasTexCoords != 0 }

// GridPointIndex converts grid-point coordinates in [0..Dimensions] into a
// linear index. Panics on out-of-range input.
func (d *CubeDescriptor) GridPointIndex(i, j, k int) VoxelIndex {
	dim := int(d.Dimensions)
	if uint(i) > uint(dim) || uint(j) > uint(dim) || uint(k) > uint(dim) {
		panic(fmt.Sprintf("voxel: grid point (%d,%d,%d) out of bounds for side %d", i, j, k, dim))
	}
	return VoxelIndex(int32(k)*d.PointTx.Mz + int32(j)*d.PointTx.My + int32(i)*d.PointTx.Mx)
}

// GridCellIndex converts cell coordinates in [0..Dimensions) into a linear
// index. Panics on out-of-range input.
func (d *CubeDescriptor) GridCellIndex(i, j, k int) CellIndex {
	dim := int(d.Dimensions)
	if uint(i) >= uint(dim) || uint(j) >= uint(dim) || uint(k) >= uint(dim) {
		panic(fmt.Sprintf("voxel: grid cell (%d,%d,%d) out of bounds for side %d", i, j, k, dim))
	}
	return CellIndex(int32(k)*d.CellTx.Mz + int32(j)*d.CellTx.My + int32(i)*d.CellTx.Mx)
}

// GridPoint inverts GridPointIndex.
func (d *CubeDescriptor) GridPoint(idx VoxelIndex) (i, j, k int) {
	my, mz := int(d.PointTx.My), int(d.PointTx.Mz)
	i = (int(idx) % my)
	j = (int(idx) % mz) / my
	k = int(idx) / mz
	return
}

// GridCell inverts GridCellIndex.
func (d *CubeDescriptor) GridCell(idx CellIndex) (i, j, k int) {
	my, mz := int(d.CellTx.My), int(d.CellTx.Mz)
	i = (int(idx) % my)
	j = (int(idx) % mz) / my
	k = int(idx) / mz
	return
}

// TouchStatus classifies v against [0, Dimensions] without branching:
// m = (dim-1)&v is zero only when v is 0 or dim, and v>>dimOrder
// distinguishes which.
func (d *CubeDescriptor) TouchStatus(v DimensionType) spatial.TouchStatus {
	m := uint32((d.Dimensions - 1) & v)
	nz := (m - 1) & ^m & 0x80000000
	return spatial.TouchStatus(nz >> (30 + (1 ^ (uint(v) >> d.dimOrder))))
}

// TouchSide computes which faces the grid point (i,j,k) is flush with.
func (d *CubeDescriptor) TouchSide(i, j, k int) spatial.Touch3DSide {
	return spatial.GetTouch3DSide(
		d.TouchStatus(DimensionType(i)),
		d.TouchStatus(DimensionType(j)),
		d.TouchStatus(DimensionType(k)),
	)
}

// CellTouchSide computes the union of touch sides of the cell's two extreme
// corners; a coarse cell can be flush with two opposite faces at once.
func (d *CubeDescriptor) CellTouchSide(i, j, k, lod int) spatial.Touch3DFlags {
	span := 1 << uint(lod)
	return d.TouchSide(i, j, k) | d.TouchSide(i+span, j+span, k+span)
}

// Position returns the precomputed fixed-point position of a grid point,
// centered on the cube's origin and expressed in cell units.
func (d *CubeDescriptor) Position(idx VoxelIndex) spatial.FixVec3 {
	return d.positions[idx]
}

// HalfExtent is half the cube's world size on each axis.
func (d *CubeDescriptor) HalfExtent() mgl32.Vec3 {
	h := float32(d.Dimensions) * d.Scale / 2
	return mgl32.Vec3{h, h, h}
}
