package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// F32 adapts the native float32 to the full capability stack, delegating
// trigonometry and square root to the platform math library.
//
// F32 carries the [Nondet] marker: libm results differ between platforms
// and the compiler is free to fuse operations, so two builds can disagree
// in the low bits. Use it for rendering, interpolation for display, and
// other consumers that want speed and share the generic APIs; the marker
// keeps it out of deterministic simulation code at compile time.
type F32 float32

// Zero returns the additive identity.
func (f F32) Zero() F32 { return 0 }

// One returns the multiplicative identity.
func (f F32) One() F32 { return 1 }

// Epsilon returns the difference between 1 and the next larger float32.
func (f F32) Epsilon() F32 { return 0x1p-23 }

// IsZero returns true if f == 0.
func (f F32) IsZero() bool { return f == 0 }

// Add returns the sum of f and e.
func (f F32) Add(e F32) F32 { return f + e }

// Sub returns the difference of f and e.
func (f F32) Sub(e F32) F32 { return f - e }

// Mul returns the product of f and e.
func (f F32) Mul(e F32) F32 { return f * e }

// Div returns the quotient of f and e.
// Div returns [ErrDivisionByZero] if e is zero, keeping the shared
// capability contract instead of producing an infinity.
func (f F32) Div(e F32) (F32, error) {
	if e == 0 {
		return 0, fmt.Errorf("%v / %v: %w", f, e, ErrDivisionByZero)
	}
	return f / e, nil
}

// Neg returns f with its sign flipped.
func (f F32) Neg() F32 { return -f }

// Cmp compares f and e numerically.
func (f F32) Cmp(e F32) int {
	switch {
	case f < e:
		return -1
	case f > e:
		return 1
	}
	return 0
}

// Abs returns the absolute value of f.
func (f F32) Abs() F32 {
	if f < 0 {
		return -f
	}
	return f
}

// Min returns the smaller of f and e.
func (f F32) Min(e F32) F32 {
	if e < f {
		return e
	}
	return f
}

// Max returns the larger of f and e.
func (f F32) Max(e F32) F32 {
	if e > f {
		return e
	}
	return f
}

// Clamp limits f to [lo, hi]. lo must not exceed hi.
func (f F32) Clamp(lo, hi F32) F32 {
	return f.Max(lo).Min(hi)
}

// Sqrt returns the square root of f.
// Sqrt returns [ErrNegativeSqrt] if f is negative.
func (f F32) Sqrt() (F32, error) {
	if f < 0 {
		return 0, fmt.Errorf("sqrt of %v: %w", f, ErrNegativeSqrt)
	}
	return F32(math.Sqrt(float64(f))), nil
}

// Rsqrt returns the reciprocal square root of f.
// Rsqrt returns [ErrNegativeSqrt] if f is negative and [ErrDivisionByZero]
// if f is zero.
func (f F32) Rsqrt() (F32, error) {
	switch {
	case f < 0:
		return 0, fmt.Errorf("rsqrt of %v: %w", f, ErrNegativeSqrt)
	case f == 0:
		return 0, fmt.Errorf("rsqrt of %v: %w", f, ErrDivisionByZero)
	}
	return F32(1 / math.Sqrt(float64(f))), nil
}

// Sin returns the sine of f (radians).
func (f F32) Sin() F32 { return F32(math.Sin(float64(f))) }

// Cos returns the cosine of f (radians).
func (f F32) Cos() F32 { return F32(math.Cos(float64(f))) }

// SinCos returns both the sine and the cosine of f (radians).
func (f F32) SinCos() (sin, cos F32) {
	s, c := math.Sincos(float64(f))
	return F32(s), F32(c)
}

// Tan returns the tangent of f (radians).
func (f F32) Tan() F32 { return F32(math.Tan(float64(f))) }

// Asin returns the arcsine of f, in [-π/2, π/2].
// Asin returns [ErrRange] if f is outside [-1, 1].
func (f F32) Asin() (F32, error) {
	if f < -1 || f > 1 {
		return 0, fmt.Errorf("asin of %v: %w", f, ErrRange)
	}
	return F32(math.Asin(float64(f))), nil
}

// Acos returns the arccosine of f, in [0, π].
// Acos returns [ErrRange] if f is outside [-1, 1].
func (f F32) Acos() (F32, error) {
	if f < -1 || f > 1 {
		return 0, fmt.Errorf("acos of %v: %w", f, ErrRange)
	}
	return F32(math.Acos(float64(f))), nil
}

// Atan2 returns the angle of the vector (e, f) in (-π, π].
func (f F32) Atan2(e F32) F32 {
	return F32(math.Atan2(float64(f), float64(e)))
}

// FromFloat64 converts x to the nearest float32.
func (f F32) FromFloat64(x float64) F32 { return F32(x) }

// Float64 returns the value widened to float64.
func (f F32) Float64() float64 { return float64(f) }

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f F32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// nondeterministicScalar marks F32 as platform-dependent.
func (F32) nondeterministicScalar() {}
