package spatial

// FracBits is the fractional width of the Fixed type. Vertex coordinates
// never exceed the cube dimensions, so 24.7 leaves ample headroom while
// keeping equality on shared boundaries bit-exact.
const FracBits = 7

const (
	fixedUnit = 1 << FracBits
	fixedMask = fixedUnit - 1
)

// Fixed is a signed fixed-precision scalar with FracBits fractional bits.
// The zero value is 0.0.
type Fixed int32

// FixedFromInt converts a whole number.
func FixedFromInt(v int) Fixed {
	return Fixed(v << FracBits)
}

// FixedFromFloat rounds a float toward zero into fixed precision.
func FixedFromFloat(f float32) Fixed {
	return Fixed(f * float32(fixedUnit))
}

// Bits exposes the raw encoded value.
func (f Fixed) Bits() int32 { return int32(f) }

// Int truncates toward zero.
func (f Fixed) Int() int { return int(f / fixedUnit) }

// Float converts to float32.
func (f Fixed) Float() float32 {
	return float32(f/fixedUnit) + float32(f%fixedUnit)/float32(fixedUnit)
}

func (f Fixed) Add(g Fixed) Fixed { return f + g }
func (f Fixed) Sub(g Fixed) Fixed { return f - g }
func (f Fixed) Neg() Fixed        { return -f }

// Mul multiplies in split halves so intermediate products of in-range
// operands cannot overflow.
func (f Fixed) Mul(g Fixed) Fixed {
	return f*(g/fixedUnit) + f*(g%fixedUnit)/fixedUnit
}

// Div divides by multiplying with the reciprocal expressed in double
// precision units, matching the reference arithmetic.
func (f Fixed) Div(g Fixed) Fixed {
	return f.Mul(Fixed(int32(fixedUnit) * int32(fixedUnit) / int32(g)))
}

// MulInt scales by a whole number.
func (f Fixed) MulInt(v int) Fixed { return f * Fixed(v) }

// DivInt divides by a whole number.
func (f Fixed) DivInt(v int) Fixed { return f / Fixed(v) }

// FixVec3 is a three-component fixed-precision vector. Used for grid point
// and iso-vertex positions so coordinate comparisons across cube boundaries
// are bit-exact.
type FixVec3 struct {
	X, Y, Z Fixed
}

// FixVec3FromInts builds a vector of whole coordinates.
func FixVec3FromInts(x, y, z int) FixVec3 {
	return FixVec3{FixedFromInt(x), FixedFromInt(y), FixedFromInt(z)}
}

func (v FixVec3) Add(o FixVec3) FixVec3 {
	return FixVec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v FixVec3) Sub(o FixVec3) FixVec3 {
	return FixVec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v FixVec3) Neg() FixVec3 {
	return FixVec3{-v.X, -v.Y, -v.Z}
}

// Scale multiplies each component by the fixed scalar s.
func (v FixVec3) Scale(s Fixed) FixVec3 {
	return FixVec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Lerp interpolates v toward o by t in [0,1].
func (v FixVec3) Lerp(o FixVec3, t Fixed) FixVec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Floats expands to three float32 components.
func (v FixVec3) Floats() (x, y, z float32) {
	return v.X.Float(), v.Y.Float(), v.Z.Float()
}
