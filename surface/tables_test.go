package surface

import "testing"

func TestRegularTablesConsistent(t *testing.T) {
	for code := 0; code < 256; code++ {
		cd := regularCellData[regularCellClass[code]]
		verts := regularVertexData[code]
		if cd.VertexCount() != len(verts) {
			t.Fatalf("case %#x: class vertex count %d, vertex data %d", code, cd.VertexCount(), len(verts))
		}
		if cd.TriangleCount()*3 != len(cd.VertexIndex) {
			t.Fatalf("case %#x: triangle count %d does not match %d slots", code, cd.TriangleCount(), len(cd.VertexIndex))
		}
		for _, slot := range cd.VertexIndex {
			if int(slot) >= len(verts) {
				t.Fatalf("case %#x references slot %d of %d", code, slot, len(verts))
			}
		}
		for _, vcode := range verts {
			c0, c1 := vertexCodeCorners(vcode)
			if c0 > 7 || c1 > 7 || c0 == c1 {
				t.Fatalf("case %#x has invalid corner pair %d-%d", code, c0, c1)
			}
			// A regular edge joins corners differing in exactly one axis.
			if d := c0 ^ c1; d&(d-1) != 0 {
				t.Fatalf("case %#x edge %d-%d is not axis-aligned", code, c0, c1)
			}
			// The edge must actually cross the surface for this case.
			if (code>>c0)&1 == (code>>c1)&1 {
				t.Fatalf("case %#x lists uncrossed edge %d-%d", code, c0, c1)
			}
		}
	}
	if len(regularVertexData[0]) != 0 || len(regularVertexData[255]) != 0 {
		t.Error("trivial cases must have no vertices")
	}
}

func TestTransitionTablesConsistent(t *testing.T) {
	for code := 0; code < 512; code++ {
		class := transitionCellClass[code]
		cd := transitionCellData[class&transitionClassMask]
		verts := transitionVertexData[code]
		if cd.VertexCount() != len(verts) {
			t.Fatalf("case %#x: class vertex count %d, vertex data %d", code, cd.VertexCount(), len(verts))
		}
		for _, slot := range cd.VertexIndex {
			if int(slot) >= len(verts) {
				t.Fatalf("case %#x references slot %d of %d", code, slot, len(verts))
			}
		}
		solid := func(c int) bool {
			if c >= 9 {
				c = []int{0, 2, 6, 8}[c-9]
			}
			return (code>>c)&1 == 1
		}
		for _, vcode := range verts {
			c0, c1 := vertexCodeCorners(vcode)
			if solid(c0) == solid(c1) {
				t.Fatalf("case %#x lists uncrossed edge %d-%d", code, c0, c1)
			}
			group := vertexCodeGroup(vcode)
			halfEdge := c0 >= 9 && c1 >= 9
			if halfEdge != (group >= groupHalfU) {
				t.Fatalf("case %#x edge %d-%d group %d misclassified", code, c0, c1, group)
			}
		}
	}
	// Complementary cases intersect identical edge sets.
	for code := 0; code < 512; code++ {
		a := transitionVertexData[code]
		b := transitionVertexData[511-code]
		if len(a) != len(b) {
			t.Fatalf("case %#x and its complement differ in vertex count", code)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("case %#x and its complement differ at vertex %d", code, i)
			}
		}
	}
}
