// Package meta provides density sources that write into cube regions
// through the feathered field accessor: metaballs and heightmaps.
package meta

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/overhang/voxel"
)

// Ball is a spherical density source. An excavating ball carves open
// space out of solid terrain; a filling ball deposits solid matter.
type Ball struct {
	Position mgl32.Vec3
	Radius   float32

	// excavating holds the contribution sign: positive carves (adds
	// emptiness), negative fills (adds solidity).
	excavating float32
}

// NewBall creates a metaball. Excavating balls carve; others fill.
func NewBall(position mgl32.Vec3, radius float32, excavating bool) *Ball {
	b := &Ball{Position: position, Radius: radius}
	b.SetExcavating(excavating)
	return b
}

// Excavating reports whether the ball carves open space.
func (b *Ball) Excavating() bool { return b.excavating > 0 }

// SetExcavating flips the sign used by the field contribution.
func (b *Ball) SetExcavating(e bool) {
	if e {
		b.excavating = 1
	} else {
		b.excavating = -1
	}
}

// AABB is the ball's world bounding box.
func (b *Ball) AABB() voxel.BoundingBox {
	r := mgl32.Vec3{b.Radius, b.Radius, b.Radius}
	return voxel.BoundingBox{Min: b.Position.Sub(r), Max: b.Position.Add(r)}
}

// UpdateDataGrid adds the ball's contribution to every field sample within
// its sphere of influence, writing overreach into the feathered slabs.
func (b *Ball) UpdateDataGrid(region *voxel.CubeDataRegion, access *voxel.MutableAccessor) {
	vr, ok := region.MapRegion(b.AABB())
	if !ok {
		return
	}
	desc := region.Descriptor()
	bbox := region.BoundingBox()
	scale := desc.Scale
	r2 := b.Radius * b.Radius

	it := access.Voxels.Iterate(vr.X0, vr.Y0, vr.Z0, vr.XN, vr.YN, vr.ZN)
	for it.Next() {
		c := it.Cur
		world := mgl32.Vec3{
			bbox.Min[0] + float32(c.X)*scale,
			bbox.Min[1] + float32(c.Y)*scale,
			bbox.Min[2] + float32(c.Z)*scale,
		}
		d2 := world.Sub(b.Position).LenSqr()
		if d2 >= r2 {
			continue
		}
		// Parabolic falloff, full strength at the center.
		falloff := 1 - d2/r2
		contribution := b.excavating * falloff * float32(voxel.MaxFieldStrength)
		v := float32(*c.Value) + contribution
		if v > float32(voxel.MaxFieldStrength) {
			v = float32(voxel.MaxFieldStrength)
		}
		if v < float32(voxel.MinFieldStrength) {
			v = float32(voxel.MinFieldStrength)
		}
		*c.Value = voxel.FieldStrength(v)
	}
}
