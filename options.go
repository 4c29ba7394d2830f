// Package overhang is a paged voxel terrain system extracting polygonal
// isosurfaces from scalar fields sampled on cube regions, with Transvoxel
// transition cells stitching neighboring resolutions without cracks.
package overhang

import (
	"fmt"

	"github.com/gekko3d/overhang/surface"
	"github.com/gekko3d/overhang/voxel"
)

// Options configure one terrain scene.
type Options struct {
	// SideVoxelCount is the cube side in voxel points; a power of two
	// plus one, at most 33.
	SideVoxelCount int
	// CellScale is world units per cell.
	CellScale float32
	// MaxLOD is the number of detail levels per renderable.
	MaxLOD int
	// MaxPixelError is the LOD switch threshold in screen pixels.
	MaxPixelError float32
	// NormalsType selects normal derivation for extracted surfaces.
	NormalsType surface.NormalsType
	// FlipNormals reverses the gradient direction.
	FlipNormals bool
	// TransitionCellWidthRatio, in [0,1], is the Transvoxel cell depth as
	// a fraction of a full cell.
	TransitionCellWidthRatio float32
	// ChannelFlags select the optional voxel channels regions store.
	ChannelFlags voxel.RegionFlags

	// Workers sizes the background request pool.
	Workers int
	// InitialVertexCapacity sizes fresh renderable vertex stores.
	InitialVertexCapacity int
}

// DefaultOptions are a reasonable starting scene configuration.
func DefaultOptions() Options {
	return Options{
		SideVoxelCount:           17,
		CellScale:                1,
		MaxLOD:                   2,
		MaxPixelError:            8,
		NormalsType:              surface.NormalsGradient,
		TransitionCellWidthRatio: 0.5,
		ChannelFlags:             voxel.RegionHasGradient,
		Workers:                  2,
		InitialVertexCapacity:    1024,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	dim := o.SideVoxelCount - 1
	if dim <= 0 || dim&(dim-1) != 0 || dim > 32 {
		return fmt.Errorf("overhang: side voxel count %d must be a power of two plus one, at most 33", o.SideVoxelCount)
	}
	if o.CellScale <= 0 {
		return fmt.Errorf("overhang: cell scale %g must be positive", o.CellScale)
	}
	if o.MaxLOD < 1 {
		return fmt.Errorf("overhang: max LOD %d must be at least 1", o.MaxLOD)
	}
	if o.TransitionCellWidthRatio < 0 || o.TransitionCellWidthRatio > 1 {
		return fmt.Errorf("overhang: transition cell width ratio %g out of [0,1]", o.TransitionCellWidthRatio)
	}
	if o.Workers < 1 {
		return fmt.Errorf("overhang: worker count %d must be at least 1", o.Workers)
	}
	return nil
}

// SurfaceFlags derives the channel toggles builds request.
func (o Options) SurfaceFlags() surface.SurfaceFlags {
	var f surface.SurfaceFlags
	if o.NormalsType != surface.NormalsNone {
		f |= surface.GenerateNormals
	}
	if o.ChannelFlags&voxel.RegionHasColours != 0 {
		f |= surface.GenerateVertexColours
	}
	if o.ChannelFlags&voxel.RegionHasTexCoords != 0 {
		f |= surface.GenerateTexCoords
	}
	return f
}
