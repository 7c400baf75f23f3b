package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// F32Det is a deterministic wrapper around a float32 value.
//
// The wrapper restricts the operation set to what IEEE-754 guarantees to be
// bit-reproducible: add, subtract, multiply, divide, compare, and the
// correctly rounded square root. Every arithmetic result passes through an
// explicit float32 conversion; the Go specification permits fusing
// floating-point operations (for example into a fused multiply-add) unless
// an explicit conversion forces the intermediate rounding, and fusion is
// exactly the cross-platform divergence this type exists to rule out.
//
// Trigonometry does not delegate to the platform math library, whose results
// differ between libm implementations. Sin, Cos and Atan2 run the same
// fixed-iteration CORDIC kernels as [DFix64], re-expressed over float32
// storage: not bit-identical to the fixed-point results, but individually
// reproducible on every platform.
//
// Construction rejects NaNs and infinities and canonicalizes negative zero,
// so two equal F32Det values always carry identical bit patterns. Arithmetic
// that overflows saturates to the largest finite magnitude, matching the
// [DFix64] saturation contract.
// The zero value is the numeric value 0.
type F32Det struct {
	v float32
}

// NewF32Det wraps a float32 in the deterministic wrapper.
// NewF32Det returns [ErrInvalidNumber] if f is NaN or infinite.
func NewF32Det(f float32) (F32Det, error) {
	if f != f || f > math.MaxFloat32 || f < -math.MaxFloat32 {
		return F32Det{}, fmt.Errorf("wrapping float %v: %w", f, ErrInvalidNumber)
	}
	return F32Det{v: canon32(f)}, nil
}

// F32DetFromBits returns the value with the given IEEE-754 binary32
// representation. Together with [F32Det.Bits] it forms the persistence
// surface of the type (byte order is left to the host application).
func F32DetFromBits(b uint32) (F32Det, error) {
	return NewF32Det(math.Float32frombits(b))
}

// Bits returns the IEEE-754 binary32 representation of d.
func (d F32Det) Bits() uint32 {
	return math.Float32bits(d.v)
}

// canon32 maps negative zero to positive zero so equal values share one bit
// pattern, and saturates an overflowed result to the largest finite
// magnitude so a stored value is never infinite.
func canon32(f float32) float32 {
	switch {
	case f == 0:
		return 0
	case f > math.MaxFloat32:
		return math.MaxFloat32
	case f < -math.MaxFloat32:
		return -math.MaxFloat32
	}
	return f
}

// Zero returns the additive identity.
func (d F32Det) Zero() F32Det {
	return F32Det{}
}

// One returns the multiplicative identity.
func (d F32Det) One() F32Det {
	return F32Det{v: 1}
}

// Epsilon returns the difference between 1 and the next larger float32.
func (d F32Det) Epsilon() F32Det {
	return F32Det{v: 0x1p-23}
}

// IsZero returns true if d == 0.
func (d F32Det) IsZero() bool {
	return d.v == 0
}

// Sign returns -1, 0 or +1 depending on the sign of d.
func (d F32Det) Sign() int {
	switch {
	case d.v < 0:
		return -1
	case d.v > 0:
		return 1
	}
	return 0
}

// Cmp compares d and e numerically.
func (d F32Det) Cmp(e F32Det) int {
	switch {
	case d.v < e.v:
		return -1
	case d.v > e.v:
		return 1
	}
	return 0
}

// Min returns the smaller of d and e.
func (d F32Det) Min(e F32Det) F32Det {
	if e.v < d.v {
		return e
	}
	return d
}

// Max returns the larger of d and e.
func (d F32Det) Max(e F32Det) F32Det {
	if e.v > d.v {
		return e
	}
	return d
}

// Clamp limits d to [lo, hi]. lo must not exceed hi.
func (d F32Det) Clamp(lo, hi F32Det) F32Det {
	return d.Max(lo).Min(hi)
}

// Add returns the IEEE-754 sum of d and e.
func (d F32Det) Add(e F32Det) F32Det {
	return F32Det{v: canon32(float32(d.v + e.v))}
}

// Sub returns the IEEE-754 difference of d and e.
func (d F32Det) Sub(e F32Det) F32Det {
	return F32Det{v: canon32(float32(d.v - e.v))}
}

// Mul returns the IEEE-754 product of d and e.
func (d F32Det) Mul(e F32Det) F32Det {
	return F32Det{v: canon32(float32(d.v * e.v))}
}

// Div returns the IEEE-754 quotient of d and e.
// Div returns [ErrDivisionByZero] if e is zero, keeping the contract shared
// with [DFix64] instead of producing an infinity.
func (d F32Det) Div(e F32Det) (F32Det, error) {
	if e.v == 0 {
		return F32Det{}, fmt.Errorf("%v / %v: %w", d, e, ErrDivisionByZero)
	}
	return F32Det{v: canon32(float32(d.v / e.v))}, nil
}

// Neg returns d with its sign flipped.
func (d F32Det) Neg() F32Det {
	return F32Det{v: canon32(float32(-d.v))}
}

// Abs returns the absolute value of d.
func (d F32Det) Abs() F32Det {
	if d.v < 0 {
		return F32Det{v: float32(-d.v)}
	}
	return d
}

// Sqrt returns the square root of d.
//
// The result is the IEEE-754 correctly rounded root: the standard requires
// sqrt to be exact, so delegation is deterministic (the float64 detour
// cannot double-round, since 53 bits exceed the 2·24+2 needed for binary32
// roots).
//
// Sqrt returns [ErrNegativeSqrt] if d is negative.
func (d F32Det) Sqrt() (F32Det, error) {
	if d.v < 0 {
		return F32Det{}, fmt.Errorf("sqrt of %v: %w", d, ErrNegativeSqrt)
	}
	return F32Det{v: float32(math.Sqrt(float64(d.v)))}, nil
}

// Rsqrt returns the reciprocal square root of d, as the IEEE-754 division
// of 1 by the correctly rounded root.
//
// Rsqrt returns [ErrNegativeSqrt] if d is negative and [ErrDivisionByZero]
// if d is zero.
func (d F32Det) Rsqrt() (F32Det, error) {
	switch {
	case d.v < 0:
		return F32Det{}, fmt.Errorf("rsqrt of %v: %w", d, ErrNegativeSqrt)
	case d.v == 0:
		return F32Det{}, fmt.Errorf("rsqrt of %v: %w", d, ErrDivisionByZero)
	}
	r := float32(math.Sqrt(float64(d.v)))
	return F32Det{v: canon32(float32(1 / r))}, nil
}

// Sin returns the sine of d (radians). The result is in [-1, 1].
func (d F32Det) Sin() F32Det {
	s, _ := sincos32(d.v)
	return F32Det{v: s}
}

// Cos returns the cosine of d (radians). The result is in [-1, 1].
func (d F32Det) Cos() F32Det {
	_, c := sincos32(d.v)
	return F32Det{v: c}
}

// SinCos returns both the sine and the cosine of d (radians), sharing a
// single argument reduction.
func (d F32Det) SinCos() (sin, cos F32Det) {
	s, c := sincos32(d.v)
	return F32Det{v: s}, F32Det{v: c}
}

// Tan returns the tangent of d (radians). At a pole, where the cosine
// kernel yields exactly zero, the result saturates to the largest finite
// magnitude with the sign of the sine.
func (d F32Det) Tan() F32Det {
	s, c := sincos32(d.v)
	if c == 0 {
		if s < 0 {
			return F32Det{v: -math.MaxFloat32}
		}
		return F32Det{v: math.MaxFloat32}
	}
	return F32Det{v: canon32(float32(s / c))}
}

// Asin returns the arcsine of d, in [-π/2, π/2], computed as
// atan2(d, sqrt(1-d²)) over the same CORDIC kernel as [F32Det.Atan2].
//
// Asin returns [ErrRange] if d is outside [-1, 1].
func (d F32Det) Asin() (F32Det, error) {
	if d.v < -1 || d.v > 1 {
		return F32Det{}, fmt.Errorf("asin of %v: %w", d, ErrRange)
	}
	q := float32(d.v * d.v)
	t := float32(math.Sqrt(float64(float32(1 - q))))
	return F32Det{v: atan232(d.v, t)}, nil
}

// Acos returns the arccosine of d, in [0, π].
//
// Acos returns [ErrRange] if d is outside [-1, 1].
func (d F32Det) Acos() (F32Det, error) {
	if d.v < -1 || d.v > 1 {
		return F32Det{}, fmt.Errorf("acos of %v: %w", d, ErrRange)
	}
	q := float32(d.v * d.v)
	t := float32(math.Sqrt(float64(float32(1 - q))))
	return F32Det{v: atan232(t, d.v)}, nil
}

// Atan2 returns the angle of the vector (e, d) in (-π, π].
// Atan2 of two zeros is defined as 0.
func (d F32Det) Atan2(e F32Det) F32Det {
	return F32Det{v: atan232(d.v, e.v)}
}

// FromFloat64 converts f to an F32Det, rounding to the nearest float32 and
// clamping NaNs to zero and infinities to the largest finite magnitudes.
// For validated construction use [NewF32Det].
func (d F32Det) FromFloat64(f float64) F32Det {
	switch {
	case math.IsNaN(f):
		return F32Det{}
	case f > math.MaxFloat32:
		return F32Det{v: math.MaxFloat32}
	case f < -math.MaxFloat32:
		return F32Det{v: -math.MaxFloat32}
	}
	return F32Det{v: canon32(float32(f))}
}

// Float64 returns the value widened to float64. The widening is exact; the
// method exists to satisfy the capability contract's diagnostics hatch.
func (d F32Det) Float64() float64 {
	return float64(d.v)
}

// Float32 returns the wrapped float32 value.
func (d F32Det) Float32() float32 {
	return d.v
}

// String implements the [fmt.Stringer] interface, using the shortest
// decimal form that round-trips the float32 value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d F32Det) String() string {
	return strconv.FormatFloat(float64(d.v), 'g', -1, 32)
}

// deterministicScalar marks F32Det as reproducible across platforms.
func (F32Det) deterministicScalar() {}
