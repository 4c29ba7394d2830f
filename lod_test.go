package overhang

import (
	"math"
	"testing"
)

func TestLODForDistance(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLOD = 4
	opts.MaxPixelError = 4
	fov := float32(math.Pi / 2)

	near := opts.LODForDistance(1, 1080, fov)
	far := opts.LODForDistance(10000, 1080, fov)

	if near != 0 {
		t.Errorf("near tile picked lod %d, want 0", near)
	}
	if far != opts.MaxLOD-1 {
		t.Errorf("distant tile picked lod %d, want %d", far, opts.MaxLOD-1)
	}

	// LOD grows monotonically with distance.
	prev := 0
	for d := float32(1); d < 20000; d *= 2 {
		lod := opts.LODForDistance(d, 1080, fov)
		if lod < prev {
			t.Fatalf("lod regressed from %d to %d at distance %f", prev, lod, d)
		}
		if lod >= opts.MaxLOD {
			t.Fatalf("lod %d out of range at distance %f", lod, d)
		}
		prev = lod
	}

	if opts.LODForDistance(0, 1080, fov) != 0 {
		t.Error("degenerate distance must pick the finest level")
	}
}
