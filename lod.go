package overhang

import "math"

// LODForDistance picks the level of detail for a tile at the given view
// distance: the coarsest level whose geometric error, projected to the
// screen, stays within MaxPixelError.
//
// A level's worst-case geometric error is one cell span at that level,
// CellScale * 2^lod. Projected size in pixels for a perspective camera is
// error * viewportHeight / (2 * distance * tan(fovY/2)).
func (o Options) LODForDistance(distance, viewportHeight, fovYRadians float32) int {
	if distance <= 0 {
		return 0
	}
	screenFactor := viewportHeight / (2 * distance * float32(math.Tan(float64(fovYRadians)/2)))
	lod := 0
	for lod+1 < o.MaxLOD {
		coarserError := o.CellScale * float32(int(1)<<uint(lod+1))
		if coarserError*screenFactor > o.MaxPixelError {
			break
		}
		lod++
	}
	return lod
}
