package scalar

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// DFix64 is a deterministic signed fixed-point number in the Q31.32 layout:
// an int64 storage value interpreted with [FixFracBits] fractional bits.
// The zero value is the numeric value 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Every operation computes in a wider intermediate integer width, rounds
// half to even, and narrows back to 64 bits, so identical inputs yield
// bit-identical stored results on every supported platform, compiler, and
// optimization level. Out-of-range results saturate to [MaxDFix64] or
// [MinDFix64] instead of wrapping; saturation is itself deterministic and
// observable through the Checked operation variants or the package logger.
//
// Trigonometry and square root run on fixed-iteration integer kernels and
// never touch the host math library.
type DFix64 struct {
	raw int64 // stored value, scaled by 2^FixFracBits
}

const (
	// FixFracBits is the number of fractional bits in the DFix64 layout.
	// The constant is published so serialization formats and cross-language
	// ports can reproduce the exact representable range.
	FixFracBits = 32

	// FixRawOne is the storage value of the number 1.
	FixRawOne = int64(1) << FixFracBits
)

// Saturation bounds of DFix64, approximately ±2.147483648e9.
// The stored values are math.MaxInt64 and math.MinInt64.
var (
	MaxDFix64 = DFix64{raw: math.MaxInt64}
	MinDFix64 = DFix64{raw: math.MinInt64}
)

// DFix64FromRaw returns the fixed-point number with the given storage value,
// that is raw / 2^[FixFracBits]. It is the inverse of [DFix64.Raw] and exists
// for persistence: the raw value is the canonical wire form of a DFix64
// (byte order is left to the host application).
func DFix64FromRaw(raw int64) DFix64 {
	return DFix64{raw: raw}
}

// NewDFix64 returns the fixed-point number equal to the integer i.
// NewDFix64 returns [ErrRange] if i does not fit the representable range.
func NewDFix64(i int64) (DFix64, error) {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return DFix64{}, fmt.Errorf("converting integer %d: %w", i, ErrRange)
	}
	return DFix64{raw: i << FixFracBits}, nil
}

// NewDFix64FromFloat64 converts a float to a (possibly rounded) fixed-point
// number, rounding half to even to the nearest representable value.
//
// NewDFix64FromFloat64 returns:
//   - [ErrInvalidNumber] if f is NaN or infinite;
//   - [ErrRange] if f is outside the representable range.
//
// The conversion exists for boundary crossings; deterministic pipelines
// should construct values with [ParseDFix64] or [DFix64FromRaw] instead.
func NewDFix64FromFloat64(f float64) (DFix64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return DFix64{}, fmt.Errorf("converting float %v: %w", f, ErrInvalidNumber)
	}
	scaled := math.RoundToEven(f * (1 << FixFracBits))
	if scaled < math.MinInt64 || scaled >= math.MaxInt64 {
		return DFix64{}, fmt.Errorf("converting float %v: %w", f, ErrRange)
	}
	return DFix64{raw: int64(scaled)}, nil
}

// ParseDFix64 converts a decimal string to a (possibly rounded) fixed-point
// number. The rounding, when the value has no exact Q31.32 representation,
// is half to even. The input must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.5
//	.25
//	12.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// ParseDFix64 returns an error:
//   - if the string does not represent a valid decimal number
//     ([ErrInvalidNumber]);
//   - if the value does not fit the representable range, or the string is
//     longer than 128 characters ([ErrRange]).
//
// Parsing first runs entirely in uint64 arithmetic; inputs whose
// coefficient or fraction outgrows 64 bits are retried through a big.Int
// path, so any exact representation produced by [DFix64.String] parses back
// to the identical stored value.
func ParseDFix64(s string) (DFix64, error) {
	d, err := parseFast(s)
	if err != nil {
		d, err = parseSlow(s)
		if err != nil {
			return DFix64{}, err
		}
	}
	return d, nil
}

func parseFast(s string) (DFix64, error) {
	var (
		pos     int
		width   = len(s)
		neg     bool
		coef    uint64
		scale   int
		hascoef bool
		ok      bool
	)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef, ok = fsa(coef, s[pos]-'0')
		if !ok {
			return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			if scale >= len(pow10)-1 {
				return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
			}
			coef, ok = fsa(coef, s[pos]-'0')
			if !ok {
				return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
			}
			scale++
			pos++
		}
	}

	if !hascoef || pos != width {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}

	// The parsed value is ±coef / 10^scale; scale it into Q31.32.
	m, ok := divPow10(coef, scale)
	if !ok {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	d, ok := narrow(m, neg)
	if !ok {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	return d, nil
}

// parseSlow re-parses s with big.Int arithmetic. It accepts any fraction up
// to the 128-character input cap, covering the 32 exact fractional digits
// that String can emit.
func parseSlow(s string) (DFix64, error) {
	if len(s) > 128 {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}

	var (
		pos     int
		width   = len(s)
		neg     bool
		scale   int
		hascoef bool
	)
	coef := new(big.Int)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef.Mul(coef, bigTen)
		coef.Add(coef, big.NewInt(int64(s[pos]-'0')))
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef.Mul(coef, bigTen)
			coef.Add(coef, big.NewInt(int64(s[pos]-'0')))
			scale++
			pos++
		}
	}

	if !hascoef || pos != width {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}

	// raw = round(coef * 2^32 / 10^scale), half to even.
	num := new(big.Int).Lsh(coef, FixFracBits)
	den := new(big.Int).Exp(bigTen, big.NewInt(int64(scale)), nil)
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	r.Lsh(r, 1)
	if c := r.Cmp(den); c > 0 || (c == 0 && q.Bit(0) == 1) {
		q.Add(q, bigOne)
	}
	if q.BitLen() > 64 {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	d, ok := narrow(q.Uint64(), neg)
	if !ok {
		return DFix64{}, fmt.Errorf("parsing %q: %w", s, ErrRange)
	}
	return d, nil
}

var (
	bigTen = big.NewInt(10)
	bigOne = big.NewInt(1)
)

// narrow converts a Q31.32 magnitude and a sign back into storage,
// reporting whether the magnitude fit without clamping.
func narrow(m uint64, neg bool) (DFix64, bool) {
	if neg {
		if m > 1<<63 {
			return MinDFix64, false
		}
		return DFix64{raw: -int64(m - 1) - 1}, true
	}
	if m > math.MaxInt64 {
		return MaxDFix64, false
	}
	return DFix64{raw: int64(m)}, true
}

// saturated returns the saturation bound for the given result sign.
func saturated(neg bool) DFix64 {
	if neg {
		return MinDFix64
	}
	return MaxDFix64
}

// Raw returns the storage value of d, that is d * 2^[FixFracBits].
// Together with [DFix64FromRaw] it forms the persistence surface of the type.
func (d DFix64) Raw() int64 {
	return d.raw
}

// Zero returns the additive identity with the same representation as d.
func (d DFix64) Zero() DFix64 {
	return DFix64{}
}

// One returns the multiplicative identity.
func (d DFix64) One() DFix64 {
	return DFix64{raw: FixRawOne}
}

// Epsilon returns the smallest representable positive value, 2^-32. Fixed
// point has uniform spacing, so this is also the ulp of every value.
func (d DFix64) Epsilon() DFix64 {
	return DFix64{raw: 1}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d DFix64) Sign() int {
	switch {
	case d.raw < 0:
		return -1
	case d.raw > 0:
		return 1
	}
	return 0
}

// IsZero returns true if d == 0.
func (d DFix64) IsZero() bool {
	return d.raw == 0
}

// IsNeg returns true if d < 0.
func (d DFix64) IsNeg() bool {
	return d.raw < 0
}

// IsPos returns true if d > 0.
func (d DFix64) IsPos() bool {
	return d.raw > 0
}

// Cmp compares d and e numerically:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d DFix64) Cmp(e DFix64) int {
	switch {
	case d.raw < e.raw:
		return -1
	case d.raw > e.raw:
		return 1
	}
	return 0
}

// Min returns the smaller of d and e.
func (d DFix64) Min(e DFix64) DFix64 {
	if d.raw < e.raw {
		return d
	}
	return e
}

// Max returns the larger of d and e.
func (d DFix64) Max(e DFix64) DFix64 {
	if d.raw > e.raw {
		return d
	}
	return e
}

// Clamp limits d to [lo, hi]. lo must not exceed hi.
func (d DFix64) Clamp(lo, hi DFix64) DFix64 {
	return d.Max(lo).Min(hi)
}

// Add returns the saturated sum of d and e.
func (d DFix64) Add(e DFix64) DFix64 {
	f, ok := d.AddChecked(e)
	if !ok {
		logger().Debug("fixed-point saturation", "op", "add", "a", d, "b", e)
	}
	return f
}

// AddChecked is like [DFix64.Add], but additionally reports whether the
// exact sum was representable. ok is false when the result saturated.
func (d DFix64) AddChecked(e DFix64) (f DFix64, ok bool) {
	s := d.raw + e.raw
	if (d.raw >= 0) == (e.raw >= 0) && (s >= 0) != (d.raw >= 0) {
		return saturated(d.raw < 0), false
	}
	return DFix64{raw: s}, true
}

// Sub returns the saturated difference of d and e.
func (d DFix64) Sub(e DFix64) DFix64 {
	f, ok := d.SubChecked(e)
	if !ok {
		logger().Debug("fixed-point saturation", "op", "sub", "a", d, "b", e)
	}
	return f
}

// SubChecked is like [DFix64.Sub], but additionally reports whether the
// exact difference was representable. ok is false when the result saturated.
func (d DFix64) SubChecked(e DFix64) (f DFix64, ok bool) {
	s := d.raw - e.raw
	if (d.raw >= 0) != (e.raw >= 0) && (s >= 0) != (d.raw >= 0) {
		return saturated(d.raw < 0), false
	}
	return DFix64{raw: s}, true
}

// Mul returns the saturated product of d and e, rounded half to even in the
// last fractional bit.
func (d DFix64) Mul(e DFix64) DFix64 {
	f, ok := d.MulChecked(e)
	if !ok {
		logger().Debug("fixed-point saturation", "op", "mul", "a", d, "b", e)
	}
	return f
}

// MulChecked is like [DFix64.Mul], but additionally reports whether the
// rounded product was representable. ok is false when the result saturated.
func (d DFix64) MulChecked(e DFix64) (f DFix64, ok bool) {
	if d.raw == 0 || e.raw == 0 {
		return DFix64{}, true
	}
	neg := (d.raw < 0) != (e.raw < 0)
	m, ok := mulShift32(magnitude(d.raw), magnitude(e.raw))
	if !ok {
		return saturated(neg), false
	}
	return narrow(m, neg)
}

// Neg returns d with its sign flipped, saturating on the single
// non-symmetric value [MinDFix64].
func (d DFix64) Neg() DFix64 {
	if d.raw == math.MinInt64 {
		return MaxDFix64
	}
	return DFix64{raw: -d.raw}
}

// Abs returns the absolute value of d, saturating on [MinDFix64].
func (d DFix64) Abs() DFix64 {
	if d.raw < 0 {
		return d.Neg()
	}
	return d
}

// Div returns the saturated quotient of d and e, rounded half to even in
// the last fractional bit.
//
// Div returns [ErrDivisionByZero] if e is zero.
func (d DFix64) Div(e DFix64) (DFix64, error) {
	if e.raw == 0 {
		return DFix64{}, fmt.Errorf("%v / %v: %w", d, e, ErrDivisionByZero)
	}
	f, ok := d.DivChecked(e)
	if !ok {
		logger().Debug("fixed-point saturation", "op", "div", "a", d, "b", e)
	}
	return f, nil
}

// DivChecked is like [DFix64.Div] for a known non-zero divisor: it reports
// saturation instead of returning an error. DivChecked panics if e is zero.
func (d DFix64) DivChecked(e DFix64) (f DFix64, ok bool) {
	if e.raw == 0 {
		panic(fmt.Sprintf("%v.DivChecked(%v) failed: %v", d, e, ErrDivisionByZero))
	}
	if d.raw == 0 {
		return DFix64{}, true
	}
	neg := (d.raw < 0) != (e.raw < 0)
	m, ok := divShift32(magnitude(d.raw), magnitude(e.raw))
	if !ok {
		return saturated(neg), false
	}
	return narrow(m, neg)
}

// Sqrt returns the square root of d, rounded to the nearest representable
// value.
//
// The root is extracted from the 128-bit widened radicand with a fixed
// 64-round restoring iteration, so the cost and the result are independent
// of the input's magnitude.
//
// Sqrt returns [ErrNegativeSqrt] if d is negative.
func (d DFix64) Sqrt() (DFix64, error) {
	if d.raw < 0 {
		return DFix64{}, fmt.Errorf("sqrt of %v: %w", d, ErrNegativeSqrt)
	}
	return DFix64{raw: int64(sqrtShift32(uint64(d.raw)))}, nil
}

// Rsqrt returns the reciprocal square root of d.
//
// Rsqrt returns [ErrNegativeSqrt] if d is negative and [ErrDivisionByZero]
// if d is zero.
func (d DFix64) Rsqrt() (DFix64, error) {
	switch {
	case d.raw < 0:
		return DFix64{}, fmt.Errorf("rsqrt of %v: %w", d, ErrNegativeSqrt)
	case d.raw == 0:
		return DFix64{}, fmt.Errorf("rsqrt of %v: %w", d, ErrDivisionByZero)
	}
	r, _ := d.Sqrt()
	f, _ := d.One().DivChecked(r)
	return f, nil
}

// Sin returns the sine of d (radians). The result is in [-1, 1].
func (d DFix64) Sin() DFix64 {
	s, _ := sincosRaw(d.raw)
	return DFix64{raw: s}
}

// Cos returns the cosine of d (radians). The result is in [-1, 1].
func (d DFix64) Cos() DFix64 {
	_, c := sincosRaw(d.raw)
	return DFix64{raw: c}
}

// SinCos returns both the sine and the cosine of d (radians), sharing a
// single argument reduction.
func (d DFix64) SinCos() (sin, cos DFix64) {
	s, c := sincosRaw(d.raw)
	return DFix64{raw: s}, DFix64{raw: c}
}

// Tan returns the tangent of d (radians). At a pole, where the cosine
// rounds to exactly zero, the result saturates with the sign of the sine.
func (d DFix64) Tan() DFix64 {
	s, c := sincosRaw(d.raw)
	if c == 0 {
		return saturated(s < 0)
	}
	f, ok := DFix64{raw: s}.DivChecked(DFix64{raw: c})
	if !ok {
		logger().Debug("fixed-point saturation", "op", "tan", "a", d)
	}
	return f
}

// Asin returns the arcsine of d, in [-π/2, π/2], computed as
// atan2(d, sqrt(1-d²)). The endpoints are exact: Asin(±1) is ±π/2 to the
// last stored bit.
//
// Asin returns [ErrRange] if d is outside [-1, 1].
func (d DFix64) Asin() (DFix64, error) {
	if d.Abs().Cmp(d.One()) > 0 {
		return DFix64{}, fmt.Errorf("asin of %v: %w", d, ErrRange)
	}
	t, _ := d.One().Sub(d.Mul(d)).Sqrt()
	return d.Atan2(t), nil
}

// Acos returns the arccosine of d, in [0, π]. Acos(1) is exactly zero and
// Acos(-1) is exactly π.
//
// Acos returns [ErrRange] if d is outside [-1, 1].
func (d DFix64) Acos() (DFix64, error) {
	if d.Abs().Cmp(d.One()) > 0 {
		return DFix64{}, fmt.Errorf("acos of %v: %w", d, ErrRange)
	}
	t, _ := d.One().Sub(d.Mul(d)).Sqrt()
	return t.Atan2(d), nil
}

// Atan2 returns the angle of the vector (e, d), that is atan2(y=d, x=e).
// The result is in (-π, π]; Atan2(0, 0) is defined as 0.
func (d DFix64) Atan2(e DFix64) DFix64 {
	return DFix64{raw: atan2Raw(d.raw, e.raw)}
}

// FromFloat64 converts f to a fixed-point number, rounding half to even and
// clamping out-of-range inputs (including infinities) to the saturation
// bounds. A NaN converts to zero. For validated construction use
// [NewDFix64FromFloat64].
func (d DFix64) FromFloat64(f float64) DFix64 {
	if math.IsNaN(f) {
		return DFix64{}
	}
	scaled := math.RoundToEven(f * (1 << FixFracBits))
	switch {
	case scaled < math.MinInt64:
		return MinDFix64
	case scaled >= math.MaxInt64:
		return MaxDFix64
	}
	return DFix64{raw: int64(scaled)}
}

// Float64 returns the nearest floating-point approximation of d.
//
// The conversion is lossy above 2^21 (the float64 mantissa cannot hold all
// 63 stored bits) and exists for logging and display only; feeding the
// result back into deterministic state would reintroduce platform-dependent
// rounding at the boundary.
func (d DFix64) Float64() float64 {
	return float64(d.raw) / (1 << FixFracBits)
}

// Int64 returns the integer part of d, truncated toward zero.
func (d DFix64) Int64() int64 {
	m := magnitude(d.raw) >> FixFracBits
	if d.raw < 0 {
		return -int64(m)
	}
	return int64(m)
}

// String implements the [fmt.Stringer] interface and returns the exact
// decimal representation of d. The fractional part needs at most 32 digits;
// trailing zeros are trimmed, and an integral value is rendered with no
// decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d DFix64) String() string {
	m := magnitude(d.raw)
	ip := m >> FixFracBits
	fp := m & (1<<FixFracBits - 1)

	var buf []byte
	if d.raw < 0 {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, ip, 10)
	if fp != 0 {
		buf = append(buf, '.')
		for fp != 0 {
			fp *= 10
			buf = append(buf, byte(fp>>FixFracBits)+'0')
			fp &= 1<<FixFracBits - 1
		}
	}
	return string(buf)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [DFix64.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d DFix64) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see [ParseDFix64].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *DFix64) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDFix64(string(text))
	return err
}

// deterministicScalar marks DFix64 as reproducible across platforms.
func (DFix64) deterministicScalar() {}
