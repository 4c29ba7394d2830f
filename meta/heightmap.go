package meta

import (
	"github.com/gekko3d/overhang/voxel"
)

// HeightFunc samples terrain height in world units at a world (x, z)
// position.
type HeightFunc func(x, z float32) float32

// Heightmap contributes density from a height function: samples below the
// surface become solid, samples above empty, with a linear ramp through
// the crossing so the extracted surface lands on the height exactly.
type Heightmap struct {
	Height HeightFunc
	// Strength scales the contribution per world unit of depth.
	Strength float32
}

// NewHeightmap wraps a height function with unit strength per cell.
func NewHeightmap(h HeightFunc) *Heightmap {
	return &Heightmap{Height: h, Strength: 1}
}

// UpdateDataGrid writes the heightmap's contribution across the whole
// feathered region.
func (hm *Heightmap) UpdateDataGrid(region *voxel.CubeDataRegion, access *voxel.MutableAccessor) {
	desc := region.Descriptor()
	bbox := region.BoundingBox()
	scale := desc.Scale
	side := int(desc.Dimensions)

	it := access.Voxels.Iterate(-1, -1, -1, side+1, side+1, side+1)
	for it.Next() {
		c := it.Cur
		wx := bbox.Min[0] + float32(c.X)*scale
		wy := bbox.Min[1] + float32(c.Y)*scale
		wz := bbox.Min[2] + float32(c.Z)*scale

		depth := (hm.Height(wx, wz) - wy) * hm.Strength / scale
		v := float32(*c.Value) - depth*float32(voxel.MaxFieldStrength)
		if v > float32(voxel.MaxFieldStrength) {
			v = float32(voxel.MaxFieldStrength)
		}
		if v < float32(voxel.MinFieldStrength) {
			v = float32(voxel.MinFieldStrength)
		}
		*c.Value = voxel.FieldStrength(v)
	}
}
