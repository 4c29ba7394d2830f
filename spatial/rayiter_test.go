package spatial

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWalkAlongAxis(t *testing.T) {
	it := NewDiscreteRayIterator(Ray{
		Origin:    mgl32.Vec3{0.5, 0.5, 0.5},
		Direction: mgl32.Vec3{1, 0, 0},
	}, 1, mgl32.Vec3{})

	x, y, z := it.Cell()
	if x != 0 || y != 0 || z != 0 {
		t.Fatalf("start cell = (%d,%d,%d)", x, y, z)
	}
	if it.EntrySide() != Touch3DNone {
		t.Errorf("start cell has no entry side, got %s", it.EntrySide())
	}

	for step := 1; step <= 5; step++ {
		it.Next()
		x, y, z = it.Cell()
		if x != int64(step) || y != 0 || z != 0 {
			t.Fatalf("step %d cell = (%d,%d,%d)", step, x, y, z)
		}
		if it.EntrySide() != Touch3DWest {
			t.Errorf("step %d entered through %s, want W", step, it.EntrySide())
		}
		wantDist := float32(step) - 0.5
		if diff := it.Distance() - wantDist; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("step %d distance = %f, want %f", step, it.Distance(), wantDist)
		}
	}
}

func TestWalkNegativeDirection(t *testing.T) {
	it := NewDiscreteRayIterator(Ray{
		Origin:    mgl32.Vec3{0.5, 2.5, 0.5},
		Direction: mgl32.Vec3{0, -1, 0},
	}, 1, mgl32.Vec3{})

	it.Next()
	_, y, _ := it.Cell()
	if y != 1 {
		t.Fatalf("cell y = %d, want 1", y)
	}
	if it.EntrySide() != Touch3DAether {
		t.Errorf("entered through %s, want A", it.EntrySide())
	}
}

func TestWalkDiagonalVisitsAdjacentCells(t *testing.T) {
	it := NewDiscreteRayIterator(Ray{
		Origin:    mgl32.Vec3{0.1, 0.2, 0.3},
		Direction: mgl32.Vec3{1, 1, 1},
	}, 1, mgl32.Vec3{})

	prev := [3]int64{0, 0, 0}
	for step := 0; step < 12; step++ {
		it.Next()
		x, y, z := it.Cell()
		moved := 0
		cur := [3]int64{x, y, z}
		for a := 0; a < 3; a++ {
			d := cur[a] - prev[a]
			if d < 0 || d > 1 {
				t.Fatalf("step %d axis %d jumped by %d", step, a, d)
			}
			moved += int(d)
		}
		if moved != 1 {
			t.Fatalf("step %d moved %d axes at once", step, moved)
		}
		prev = cur
	}
	// After 12 single steps along a diagonal the cell sums to 12.
	if prev[0]+prev[1]+prev[2] != 12 {
		t.Errorf("diagonal walk ended at %v", prev)
	}
}

func TestWalkDistanceMatchesGeometry(t *testing.T) {
	dir := mgl32.Vec3{3, 4, 0}.Normalize()
	it := NewDiscreteRayIterator(Ray{
		Origin:    mgl32.Vec3{0.5, 0.5, 0.5},
		Direction: dir,
	}, 2, mgl32.Vec3{})

	it.Next()
	p := it.Intersection()
	want := it.ray.Origin.Add(dir.Mul(it.Distance()))
	if p.Sub(want).Len() > 1e-5 {
		t.Errorf("intersection %v does not sit at distance %f", p, it.Distance())
	}
}

func TestUpgradeLODRealignsCell(t *testing.T) {
	it := NewDiscreteRayIterator(Ray{
		Origin:    mgl32.Vec3{5.5, 0.5, 0.5},
		Direction: mgl32.Vec3{1, 0, 0},
	}, 1, mgl32.Vec3{})

	it.Next()
	it.UpgradeLOD()
	x, y, z := it.Cell()
	pos := it.Intersection()
	if gx := int64(math.Floor(float64(pos.X() / 2))); x != gx {
		t.Errorf("coarse cell x = %d, want %d", x, gx)
	}
	if y != 0 || z != 0 {
		t.Errorf("coarse cell = (%d,%d,%d)", x, y, z)
	}

	it.Next()
	nx, _, _ := it.Cell()
	if nx != x+1 {
		t.Errorf("next coarse cell x = %d, want %d", nx, x+1)
	}
}
