package spatial

import "testing"

func TestOrthogonalOpposite(t *testing.T) {
	pairs := map[OrthogonalNeighbor]OrthogonalNeighbor{
		OrthoNorth: OrthoSouth,
		OrthoEast:  OrthoWest,
		OrthoAbove: OrthoBelow,
	}
	for a, b := range pairs {
		if a.Opposite() != b {
			t.Errorf("Opposite(%s) = %s, want %s", a.Name(), a.Opposite().Name(), b.Name())
		}
		if b.Opposite() != a {
			t.Errorf("Opposite(%s) = %s, want %s", b.Name(), b.Opposite().Name(), a.Name())
		}
	}
}

func TestMooreOppositeInvolution(t *testing.T) {
	for n := Moore3DNeighbor(0); n < CountMoore3DNeighbors; n++ {
		if n.Opposite().Opposite() != n {
			t.Errorf("Opposite is not an involution at %s", n.Name())
		}
	}
	// Faces map onto faces, edges onto edges, corners onto corners.
	for n := Moore3DNeighbor(0); n < CountMoore3DNeighbors; n++ {
		o := n.Opposite()
		band := func(m Moore3DNeighbor) int {
			switch {
			case int(m) < BeginMoore3DEdges:
				return 0
			case int(m) < BeginMoore3DCorners:
				return 1
			default:
				return 2
			}
		}
		if band(n) != band(o) {
			t.Errorf("Opposite(%s) = %s crosses bands", n.Name(), o.Name())
		}
	}
}

func TestOrthoPathReachesEdges(t *testing.T) {
	for n := Moore3DNeighbor(BeginMoore3DEdges); n < BeginMoore3DCorners; n++ {
		a, b := OrthoPath(n, 0), OrthoPath(n, 1)
		if a == OrthoNaN || b == OrthoNaN {
			t.Fatalf("edge %s has no orthogonal path", n.Name())
		}
		if a == b || a == b.Opposite() {
			t.Errorf("edge %s path %s/%s is degenerate", n.Name(), a.Name(), b.Name())
		}
	}
	if OrthoPath(Moore3North, 0) != OrthoNaN {
		t.Error("faces must have no two-step path")
	}
	if OrthoPath(Moore3AboveNorthWest, 0) != OrthoNaN {
		t.Error("corners must have no two-step path")
	}
}

func TestNeighborFlagsFormat(t *testing.T) {
	got := FormatNeighborFlags(1<<Moore3North|1<<Moore3Above, "/")
	if got != "N/K" {
		t.Errorf("FormatNeighborFlags = %q, want N/K", got)
	}
}

func TestTouchSideToMoore(t *testing.T) {
	cases := map[Touch3DSide]Moore3DNeighbor{
		Touch3DWest:                 Moore3West,
		Touch3DEast:                 Moore3East,
		Touch3DNorth:                Moore3North,
		Touch3DSouth:                Moore3South,
		Touch3DAether:               Moore3Above,
		Touch3DNether:               Moore3Below,
		Touch3DNorth | Touch3DWest:  Moore3NorthWest,
		Touch3DSouth | Touch3DEast:  Moore3SouthEast,
		Touch3DAether | Touch3DEast: Moore3AboveEast,
	}
	for side, want := range cases {
		if got := Moore3DNeighborOf(side); got != want {
			t.Errorf("Moore3DNeighborOf(%s) = %s, want %s", side, got.Name(), want.Name())
		}
	}
}

func TestGetTouchStatus(t *testing.T) {
	if GetTouchStatus(-1, -1, 17) != TouchLow {
		t.Error("minimum must report TouchLow")
	}
	if GetTouchStatus(17, -1, 17) != TouchHigh {
		t.Error("maximum must report TouchHigh")
	}
	if GetTouchStatus(5, -1, 17) != TouchNone {
		t.Error("interior must report TouchNone")
	}
}
