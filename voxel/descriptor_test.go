package voxel

import (
	"testing"

	"github.com/gekko3d/overhang/spatial"
)

func testDescriptor(t *testing.T) *CubeDescriptor {
	t.Helper()
	d, err := NewCubeDescriptor(17, 1.0, RegionHasGradient)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDescriptorValidation(t *testing.T) {
	for _, bad := range []int{0, 2, 16, 18, 65} {
		if _, err := NewCubeDescriptor(bad, 1.0, 0); err == nil {
			t.Errorf("side %d must be rejected", bad)
		}
	}
	for _, good := range []int{3, 5, 9, 17, 33} {
		if _, err := NewCubeDescriptor(good, 1.0, 0); err != nil {
			t.Errorf("side %d rejected: %v", good, err)
		}
	}
}

func TestIndexTransformsRoundTrip(t *testing.T) {
	d := testDescriptor(t)
	for k := 0; k <= 16; k += 4 {
		for j := 0; j <= 16; j += 4 {
			for i := 0; i <= 16; i += 4 {
				idx := d.GridPointIndex(i, j, k)
				ri, rj, rk := d.GridPoint(idx)
				if ri != i || rj != j || rk != k {
					t.Fatalf("grid point (%d,%d,%d) -> %d -> (%d,%d,%d)", i, j, k, idx, ri, rj, rk)
				}
			}
		}
	}
	if d.GridPointIndex(1, 2, 3) != VoxelIndex(3*17*17+2*17+1) {
		t.Error("point index transform mismatch")
	}
	if d.GridCellIndex(1, 2, 3) != CellIndex(3*16*16+2*16+1) {
		t.Error("cell index transform mismatch")
	}
}

func TestTouchStatus(t *testing.T) {
	d := testDescriptor(t)
	if d.TouchStatus(0) != spatial.TouchLow {
		t.Error("0 must touch the low edge")
	}
	if d.TouchStatus(16) != spatial.TouchHigh {
		t.Error("16 must touch the high edge")
	}
	for v := DimensionType(1); v < 16; v++ {
		if d.TouchStatus(v) != spatial.TouchNone {
			t.Errorf("%d must touch nothing", v)
		}
	}
}

func TestTouchSide(t *testing.T) {
	d := testDescriptor(t)
	if got := d.TouchSide(0, 5, 5); got != spatial.Touch3DWest {
		t.Errorf("(0,5,5) = %s", got)
	}
	if got := d.TouchSide(16, 0, 16); got != spatial.Touch3DEast|spatial.Touch3DNether|spatial.Touch3DSouth {
		t.Errorf("(16,0,16) = %s", got)
	}
	if got := d.TouchSide(8, 8, 8); got != spatial.Touch3DNone {
		t.Errorf("(8,8,8) = %s", got)
	}
}

func TestCellTouchSideSpansBothFaces(t *testing.T) {
	d := testDescriptor(t)
	// A lod-4 cell covers the whole cube and touches every face.
	if got := d.CellTouchSide(0, 0, 0, 4); got != spatial.Touch3DAll {
		t.Errorf("full-size cell touch = %s", got)
	}
	// A lod-1 cell at the origin touches only the three low faces.
	want := spatial.Touch3DWest | spatial.Touch3DNether | spatial.Touch3DNorth
	if got := d.CellTouchSide(0, 0, 0, 1); got != want {
		t.Errorf("origin cell touch = %s, want %s", got, want)
	}
}

func TestPositionTableCentered(t *testing.T) {
	d := testDescriptor(t)
	p := d.Position(d.GridPointIndex(8, 8, 8))
	if p != (spatial.FixVec3{}) {
		t.Errorf("center point position = %+v", p)
	}
	lo := d.Position(d.GridPointIndex(0, 0, 0))
	if lo != spatial.FixVec3FromInts(-8, -8, -8) {
		t.Errorf("corner position = %+v", lo)
	}
}
