package voxel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testRegion(t *testing.T) (*CubeDataRegion, *Pool) {
	t.Helper()
	d, err := NewCubeDescriptor(17, 1.0, RegionHasGradient)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewPool(d.GridPointCount, d.Flags, 2, 1)
	region := NewCubeDataRegion(d, pool, BoundingBox{
		Min: mgl32.Vec3{0, 0, 0},
		Max: mgl32.Vec3{16, 16, 16},
	})
	return region, pool
}

func TestPoolLeaseRetire(t *testing.T) {
	pool := NewPool(8, 0, 1, 2)
	a := pool.Lease()
	b := pool.Lease()
	if a == b {
		t.Fatal("two leases returned the same instance")
	}
	if pool.Outstanding() != 2 {
		t.Fatalf("outstanding = %d", pool.Outstanding())
	}
	if err := pool.Retire(a); err != nil {
		t.Fatal(err)
	}
	if err := pool.Retire(a); !errors.Is(err, ErrUnmatchedLease) {
		t.Fatalf("double retire = %v", err)
	}
	if err := pool.Retire(NewDataBase(8, 0)); !errors.Is(err, ErrUnmatchedLease) {
		t.Fatalf("foreign retire = %v", err)
	}
	if err := pool.Close(); !errors.Is(err, ErrLeasedResourcesOutstanding) {
		t.Fatalf("close with lease = %v", err)
	}
}

func TestMutationsPersistThroughCompression(t *testing.T) {
	region, pool := testRegion(t)

	ma, err := region.Lease()
	if err != nil {
		t.Fatal(err)
	}
	ma.Data().Values[123] = -5
	ma.Data().Values[456] = 7
	if err := ma.Close(); err != nil {
		t.Fatal(err)
	}

	ra, err := region.LeaseShared()
	if err != nil {
		t.Fatal(err)
	}
	if ra.Data().Values[123] != -5 || ra.Data().Values[456] != 7 {
		t.Error("mutations were not committed by Close")
	}
	ra.Close()

	if pool.Outstanding() != 0 {
		t.Errorf("outstanding leases = %d", pool.Outstanding())
	}
}

func TestEmptyStatus(t *testing.T) {
	region, _ := testRegion(t)

	ra, _ := region.LeaseShared()
	if got := ra.EmptyStatus(); got != EmptyClear {
		t.Errorf("fresh cube = %v, want clear", got)
	}
	ra.Close()

	ma, _ := region.Lease()
	for i := range ma.Data().Values {
		ma.Data().Values[i] = -1
	}
	ma.Close()
	ra, _ = region.LeaseShared()
	if got := ra.EmptyStatus(); got != EmptySolid {
		t.Errorf("all-solid cube = %v, want solid", got)
	}
	ra.Close()

	ma, _ = region.Lease()
	ma.Data().Values[0] = 1
	ma.Close()
	ra, _ = region.LeaseShared()
	if got := ra.EmptyStatus(); got != EmptyNone {
		t.Errorf("mixed cube = %v, want mixed", got)
	}
	ra.Close()
}

func TestMapRegion(t *testing.T) {
	region, _ := testRegion(t)

	vr, ok := region.MapRegion(BoundingBox{Min: mgl32.Vec3{3.2, 4.1, 5.9}, Max: mgl32.Vec3{7.5, 8.5, 9.5}})
	if !ok {
		t.Fatal("interior box reported disjoint")
	}
	if vr.X0 != 4 || vr.Y0 != 5 || vr.Z0 != 6 {
		t.Errorf("low corner = (%d,%d,%d)", vr.X0, vr.Y0, vr.Z0)
	}
	if vr.XN != 7 || vr.YN != 8 || vr.ZN != 9 {
		t.Errorf("high corner = (%d,%d,%d)", vr.XN, vr.YN, vr.ZN)
	}

	// A box swallowing the cube clips to the feathered bounds.
	vr, ok = region.MapRegion(BoundingBox{Min: mgl32.Vec3{-100, -100, -100}, Max: mgl32.Vec3{100, 100, 100}})
	if !ok || vr.X0 != -1 || vr.XN != 17 {
		t.Errorf("swallowing box = %+v, ok=%v", vr, ok)
	}

	if _, ok = region.MapRegion(BoundingBox{Min: mgl32.Vec3{40, 0, 0}, Max: mgl32.Vec3{50, 1, 1}}); ok {
		t.Error("disjoint box must report Empty")
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	region, _ := testRegion(t)

	ma, _ := region.Lease()
	for i := range ma.Data().Values {
		ma.Data().Values[i] = FieldStrength(i % 11)
	}
	ma.Data().DX[100] = -3
	ma.Close()

	var buf bytes.Buffer
	if _, err := region.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	clone, _ := testRegion(t)
	if _, err := clone.ReadFrom(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatal(err)
	}

	a, _ := region.LeaseShared()
	b, _ := clone.LeaseShared()
	defer a.Close()
	defer b.Close()
	for i := range a.Data().Values {
		if a.Data().Values[i] != b.Data().Values[i] {
			t.Fatalf("values differ at %d", i)
		}
	}
	if b.Data().DX[100] != -3 {
		t.Error("gradient channel not restored")
	}
	if clone.BoundingBox() != region.BoundingBox() {
		t.Error("bounding box not restored")
	}
}

func TestSerializationRejectsGarbage(t *testing.T) {
	region, _ := testRegion(t)
	if _, err := region.ReadFrom(bytes.NewReader([]byte{1, 2, 3})); !errors.Is(err, ErrStreamFormat) {
		t.Fatalf("garbage stream = %v", err)
	}
}
