package surface

import "errors"

// SurfaceFlags toggle which vertex channels a build produces.
type SurfaceFlags int

const (
	// GenerateNormals emits per-vertex normals.
	GenerateNormals SurfaceFlags = 1 << iota
	// GenerateVertexColours emits packed RGBA vertex colours.
	GenerateVertexColours
	// GenerateTexCoords emits texture coordinates.
	GenerateTexCoords
)

// NormalsType selects how normals are derived.
type NormalsType int

const (
	// NormalsNone produces zero normals.
	NormalsNone NormalsType = iota
	// NormalsGradient interpolates the voxel gradient channels.
	NormalsGradient
	// NormalsAverage sums unit face normals of adjacent triangles.
	NormalsAverage
	// NormalsWeightedAverage sums area-weighted face normals.
	NormalsWeightedAverage
)

// HWVertexIndex indexes the GPU vertex buffer.
type HWVertexIndex = uint16

// IsoVertexIndex identifies a logical iso-vertex of one cube. It is a
// stable packed key (edge kind, face, axis, refined voxel index), wider
// than a hardware index so it survives buffer resizes and rebuilds.
type IsoVertexIndex = uint64

var (
	// ErrConsumerUnavailable is reported when the consumer lock is
	// contended or the pending queue does not match the requested
	// configuration. Not fatal; the caller skips the frame.
	ErrConsumerUnavailable = errors.New("surface: consumer unavailable")

	// ErrVertexCapacity reports a triangulation too large for the
	// 16-bit hardware index space.
	ErrVertexCapacity = errors.New("surface: vertex count exceeds hardware index range")
)
