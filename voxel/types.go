package voxel

// FieldStrength is one scalar field sample. Negative means solid, zero or
// positive means empty; the sign bit is the classification bit consumed by
// case-code construction.
type FieldStrength int8

// Solid reports whether the sample is inside the surface.
func (f FieldStrength) Solid() bool { return f < 0 }

// SignBit extracts the classification bit.
func (f FieldStrength) SignBit() int { return int(uint8(f) >> 7) }

const (
	// MaxFieldStrength and MinFieldStrength bound the representable field.
	MaxFieldStrength FieldStrength = 127
	MinFieldStrength FieldStrength = -128
)

// VoxelIndex is the linear index of a grid point within a cube.
type VoxelIndex int32

// CellIndex is the linear index of a grid cell within a cube.
type CellIndex int32

// DimensionType is a cube side length in voxels.
type DimensionType uint16

// YLevel tags the vertical slab a cube occupies within a terrain column.
type YLevel int16

// RegionFlags select which optional voxel channels a cube region stores.
type RegionFlags int

const (
	// RegionHasGradient stores per-voxel gradient vectors.
	RegionHasGradient RegionFlags = 1 << iota
	// RegionHasColours stores per-voxel RGBA colours.
	RegionHasColours
	// RegionHasTexCoords stores per-voxel texture coordinates.
	RegionHasTexCoords
)
