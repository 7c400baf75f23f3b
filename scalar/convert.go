package scalar

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Interop with the x/image fixed-point formats used by font and rasterizer
// pipelines. These conversions live at the boundary between deterministic
// simulation state and rendering; the narrowing direction rounds half to
// even and saturates, like every other DFix64 narrowing.

// Int26_6 returns d in the 26.6 fixed-point format, rounded half to even
// and saturated to the format's range.
func (d DFix64) Int26_6() fixed.Int26_6 {
	v := rshHalfEven(d.raw, FixFracBits-6)
	switch {
	case v > math.MaxInt32:
		return fixed.Int26_6(math.MaxInt32)
	case v < math.MinInt32:
		return fixed.Int26_6(math.MinInt32)
	}
	return fixed.Int26_6(v)
}

// Int52_12 returns d in the 52.12 fixed-point format, rounded half to even.
func (d DFix64) Int52_12() fixed.Int52_12 {
	return fixed.Int52_12(rshHalfEven(d.raw, FixFracBits-12))
}

// DFix64FromInt26_6 converts a 26.6 fixed-point value. The conversion is
// exact: every Int26_6 value is representable.
func DFix64FromInt26_6(v fixed.Int26_6) DFix64 {
	return DFix64{raw: int64(v) << (FixFracBits - 6)}
}

// DFix64FromInt52_12 converts a 52.12 fixed-point value, saturating the
// magnitudes that exceed the DFix64 range.
func DFix64FromInt52_12(v fixed.Int52_12) DFix64 {
	m := magnitude(int64(v))
	if m > 1<<(63-(FixFracBits-12)) {
		return saturated(v < 0)
	}
	d, _ := narrow(m<<(FixFracBits-12), v < 0)
	return d
}

// rshHalfEven shifts v right by shift bits, rounding half to even.
// The shift is applied to the magnitude so the rounding is symmetric
// around zero.
func rshHalfEven(v int64, shift uint) int64 {
	m := magnitude(v)
	z := m >> shift
	rem := m & (1<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && z&1 == 1) {
		z++
	}
	if v < 0 {
		return -int64(z)
	}
	return int64(z)
}
