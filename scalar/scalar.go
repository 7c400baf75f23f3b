package scalar

// Scalar is the minimal capability level: closure under the four arithmetic
// operations and negation, ordering, and the two identities.
//
// The interface is self-referential in the usual Go generics style: a concrete
// type S satisfies Scalar[S]. Generic numeric code should be written against
// the smallest capability level it needs, combined with a determinism marker
// where reproducibility matters:
//
//	func Integrate[T scalar.DetReal[T]](pos, vel, dt T) T {
//		return pos.Add(vel.Mul(dt))
//	}
//
// All implementations are immutable value types. Operations are pure
// functions of their inputs, never allocate, and are safe to call from any
// number of goroutines without coordination.
type Scalar[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Epsilon returns the smallest distinguishable step of the
	// representation. Collaborators use it as a degeneracy threshold, not
	// as a measure of accumulated rounding error.
	Epsilon() T

	// Add returns the sum of the receiver and e.
	Add(e T) T

	// Sub returns the difference of the receiver and e.
	Sub(e T) T

	// Mul returns the product of the receiver and e.
	Mul(e T) T

	// Div returns the quotient of the receiver and e.
	// Div returns [ErrDivisionByZero] if e is the additive identity.
	Div(e T) (T, error)

	// Neg returns the receiver with its sign flipped.
	Neg() T

	// Cmp compares the receiver and e numerically:
	//
	//	-1 if receiver < e
	//	 0 if receiver = e
	//	+1 if receiver > e
	Cmp(e T) int

	// IsZero reports whether the value is the additive identity.
	IsZero() bool

	// FromFloat64 converts f to the receiver's representation.
	// It is intended for boundary crossings (constants in generic code,
	// deserialized payloads); the conversion rounds deterministically and
	// clamps out-of-range inputs to the representable bounds.
	FromFloat64(f float64) T

	// Float64 returns a lossy floating-point approximation of the value.
	// It is an explicit escape hatch for logging and display; deterministic
	// code must never feed the result back into simulation state.
	Float64() float64
}

// Real extends [Scalar] with the real-number operations.
type Real[T any] interface {
	Scalar[T]

	// Abs returns the absolute value.
	Abs() T

	// Min returns the smaller of the receiver and e.
	Min(e T) T

	// Max returns the larger of the receiver and e.
	Max(e T) T

	// Clamp limits the receiver to [lo, hi]. lo must not exceed hi.
	Clamp(lo, hi T) T

	// Sqrt returns the square root of the receiver.
	// Sqrt returns [ErrNegativeSqrt] for negative input.
	Sqrt() (T, error)

	// Rsqrt returns the reciprocal square root of the receiver.
	// Rsqrt returns [ErrNegativeSqrt] for negative input and
	// [ErrDivisionByZero] for zero.
	Rsqrt() (T, error)
}

// Trig extends [Real] with trigonometry. All angles are radians.
type Trig[T any] interface {
	Real[T]

	// Sin returns the sine of the receiver. The result is in [-1, 1].
	Sin() T

	// Cos returns the cosine of the receiver. The result is in [-1, 1].
	Cos() T

	// SinCos returns both the sine and the cosine of the receiver,
	// sharing a single argument reduction.
	SinCos() (sin, cos T)

	// Tan returns the tangent of the receiver. At a pole, where the
	// cosine evaluates to exactly zero, the result saturates to the
	// largest representable magnitude with the sign of the sine.
	Tan() T

	// Asin returns the arcsine of the receiver, in [-π/2, π/2].
	// Asin returns [ErrRange] for input outside [-1, 1].
	Asin() (T, error)

	// Acos returns the arccosine of the receiver, in [0, π].
	// Acos returns [ErrRange] for input outside [-1, 1].
	Acos() (T, error)

	// Atan2 returns the angle of the vector (e, receiver), that is
	// atan2(y=receiver, x=e). The result is in (-π, π].
	Atan2(e T) T
}

// Deterministic marks scalar types that produce bit-identical results for
// identical inputs on every supported platform and build. It carries no
// operations; it exists so generic code can demand reproducibility as a
// compile-time constraint.
//
// The marker method is unexported, so only types in this package can carry
// the marker. A concrete type implements exactly one of [Deterministic] and
// [Nondet]; code constrained by one can never be instantiated with a type
// from the other class.
type Deterministic interface {
	deterministicScalar()
}

// Nondet marks scalar types whose results may vary across platforms,
// compilers, or optimization levels. Rendering and other approximate
// consumers use it; simulation state must not.
type Nondet interface {
	nondeterministicScalar()
}

// DetScalar constrains to deterministic types at the [Scalar] level.
type DetScalar[T any] interface {
	Scalar[T]
	Deterministic
}

// DetReal constrains to deterministic types at the [Real] level.
type DetReal[T any] interface {
	Real[T]
	Deterministic
}

// DetTrig constrains to deterministic types at the [Trig] level.
type DetTrig[T any] interface {
	Trig[T]
	Deterministic
}

var (
	_ Trig[DFix64] = DFix64{}
	_ Trig[F32Det] = F32Det{}
	_ Trig[F32]    = F32(0)

	_ Deterministic = DFix64{}
	_ Deterministic = F32Det{}
	_ Nondet        = F32(0)
)
