package spatial

import "testing"

func TestFixedConversions(t *testing.T) {
	if FixedFromInt(5).Float() != 5.0 {
		t.Errorf("FixedFromInt(5) = %f", FixedFromInt(5).Float())
	}
	if FixedFromInt(-3).Int() != -3 {
		t.Errorf("FixedFromInt(-3).Int() = %d", FixedFromInt(-3).Int())
	}
	if FixedFromFloat(0.5).Bits() != 1<<(FracBits-1) {
		t.Errorf("0.5 must encode as half the unit, got %d", FixedFromFloat(0.5).Bits())
	}
}

func TestFixedArithmetic(t *testing.T) {
	a := FixedFromFloat(1.5)
	b := FixedFromFloat(2.5)

	if got := a.Add(b).Float(); got != 4.0 {
		t.Errorf("1.5 + 2.5 = %f", got)
	}
	if got := b.Sub(a).Float(); got != 1.0 {
		t.Errorf("2.5 - 1.5 = %f", got)
	}
	if got := a.Mul(b).Float(); got != 3.75 {
		t.Errorf("1.5 * 2.5 = %f", got)
	}
	if got := FixedFromInt(6).Div(FixedFromInt(2)).Float(); got != 3.0 {
		t.Errorf("6 / 2 = %f", got)
	}
	if got := FixedFromInt(7).DivInt(2).Float(); got != 3.5 {
		t.Errorf("7 / 2 = %f", got)
	}
}

func TestFixedMulSplitHalves(t *testing.T) {
	// Large whole parts must not overflow the intermediate product.
	a := FixedFromInt(3000)
	b := FixedFromInt(1000)
	if got := a.Mul(b).Int(); got != 3000000 {
		t.Errorf("3000 * 1000 = %d", got)
	}
}

func TestFixVec3LerpMidpointExact(t *testing.T) {
	p0 := FixVec3FromInts(0, 0, 0)
	p1 := FixVec3FromInts(1, 3, -5)
	half := FixedFromFloat(0.5)

	mid := p0.Lerp(p1, half)
	want := FixVec3{FixedFromFloat(0.5), FixedFromFloat(1.5), FixedFromFloat(-2.5)}
	if mid != want {
		t.Errorf("midpoint = %+v, want %+v", mid, want)
	}

	// Bit-exactness: lerping from either end meets at the same point.
	other := p1.Lerp(p0, half)
	if mid != other {
		t.Errorf("midpoint differs by direction: %+v vs %+v", mid, other)
	}
}

func TestFixVec3Scale(t *testing.T) {
	v := FixVec3FromInts(2, -4, 8).Scale(FixedFromFloat(0.25))
	want := FixVec3{FixedFromFloat(0.5), FixedFromInt(-1), FixedFromInt(2)}
	if v != want {
		t.Errorf("scaled = %+v, want %+v", v, want)
	}
}
