package voxel

import (
	"testing"

	"github.com/gekko3d/overhang/spatial"
)

func testField(t *testing.T) (*CubeDescriptor, *FieldAccessor) {
	t.Helper()
	d, err := NewCubeDescriptor(17, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	return d, NewFieldAccessor(d, make([]FieldStrength, d.GridPointCount))
}

func TestFeatheredWritesLandInSlabs(t *testing.T) {
	_, fa := testField(t)

	fa.Set(-1, 4, 5, -9)
	if got := fa.At(-1, 4, 5); got != -9 {
		t.Fatalf("west slab readback = %d", got)
	}
	// The interior is untouched.
	for i, v := range fa.values {
		if v != 0 {
			t.Fatalf("interior value %d dirtied to %d", i, v)
		}
	}
	// The write landed in the west slab, not any other.
	found := 0
	for s := 0; s < spatial.CountOrthogonalNeighbors; s++ {
		for _, v := range fa.Slab(spatial.OrthogonalNeighbor(s)) {
			if v != 0 {
				found++
				if spatial.OrthogonalNeighbor(s) != spatial.OrthoWest {
					t.Fatalf("write landed in slab %s", spatial.OrthogonalNeighbor(s).Name())
				}
			}
		}
	}
	if found != 1 {
		t.Fatalf("found %d dirty slab cells", found)
	}

	fa.Set(17, 0, 0, 3)
	if fa.At(17, 0, 0) != 3 {
		t.Error("east slab readback failed")
	}

	// Diagonal overreach is discarded, not aliased.
	fa.Set(-1, -1, 5, 5)
	if fa.At(8, 8, 8) != 0 {
		t.Error("diagonal write aliased the interior")
	}
}

func TestIterateVisitsSlabsFirstThenInterior(t *testing.T) {
	_, fa := testField(t)

	it := fa.Iterate(-1, -1, -1, 17, 17, 17)
	var cells []FieldCell
	for it.Next() {
		cells = append(cells, it.Cur)
	}

	side1 := 17
	wantSlab := 6 * side1 * side1
	wantTotal := wantSlab + side1*side1*side1
	if len(cells) != wantTotal {
		t.Fatalf("visited %d cells, want %d", len(cells), wantTotal)
	}

	feathered := func(c FieldCell) bool {
		return c.X < 0 || c.Y < 0 || c.Z < 0 || c.X > 16 || c.Y > 16 || c.Z > 16
	}
	for i, c := range cells[:wantSlab] {
		if !feathered(c) {
			t.Fatalf("cell %d (%d,%d,%d) interior before slabs done", i, c.X, c.Y, c.Z)
		}
	}
	for i, c := range cells[wantSlab:] {
		if feathered(c) {
			t.Fatalf("interior cell %d (%d,%d,%d) is feathered", i, c.X, c.Y, c.Z)
		}
	}

	// Interior order: x fastest, then y, then z.
	first, second := cells[wantSlab], cells[wantSlab+1]
	if first.X != 0 || first.Y != 0 || first.Z != 0 || second.X != 1 {
		t.Errorf("interior scan starts (%d,%d,%d),(%d,...)", first.X, first.Y, first.Z, second.X)
	}
}

func TestIterateClipsToBox(t *testing.T) {
	_, fa := testField(t)
	it := fa.Iterate(3, 4, 5, 6, 7, 8)
	count := 0
	for it.Next() {
		c := it.Cur
		if c.X < 3 || c.X > 6 || c.Y < 4 || c.Y > 7 || c.Z < 5 || c.Z > 8 {
			t.Fatalf("cell (%d,%d,%d) outside box", c.X, c.Y, c.Z)
		}
		count++
	}
	if count != 4*4*4 {
		t.Errorf("visited %d cells, want 64", count)
	}
}

func TestGradientPullsFromSlabs(t *testing.T) {
	_, fa := testField(t)

	fa.Set(-1, 8, 8, -50) // west slab
	fa.Set(1, 8, 8, 10)

	it := fa.IterateGradient(0, 0, 8, 8, 0, 8, 8)
	if !it.Next() {
		t.Fatal("no gradient sample")
	}
	g := it.Cur
	if g.X != 0 || g.Y != 8 || g.Z != 8 {
		t.Fatalf("sample at (%d,%d,%d)", g.X, g.Y, g.Z)
	}
	if g.Left != -50 {
		t.Errorf("left sample = %d, want slab value -50", g.Left)
	}
	if g.Right != 10 {
		t.Errorf("right sample = %d, want 10", g.Right)
	}
}

func TestUpdateGradient(t *testing.T) {
	d, err := NewCubeDescriptor(17, 1.0, RegionHasGradient)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(d.GridPointCount, d.Flags, 1, 1)
	region := NewCubeDataRegion(d, pool, BoundingBox{})

	ma, err := region.Lease()
	if err != nil {
		t.Fatal(err)
	}
	defer ma.Close()

	// A field increasing along +z yields a negative dz channel.
	for k := 0; k <= 16; k++ {
		for j := 0; j <= 16; j++ {
			for i := 0; i <= 16; i++ {
				ma.Data().Values[d.GridPointIndex(i, j, k)] = FieldStrength(k - 8)
			}
		}
	}
	ma.UpdateGradient()

	idx := d.GridPointIndex(8, 8, 8)
	if ma.Data().DZ[idx] != -1 {
		t.Errorf("dz = %d, want -1", ma.Data().DZ[idx])
	}
	if ma.Data().DX[idx] != 0 || ma.Data().DY[idx] != 0 {
		t.Error("flat axes must have zero gradient")
	}
}
