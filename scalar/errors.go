package scalar

import "errors"

var (
	// ErrDivisionByZero is returned when the divisor is the additive
	// identity.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrNegativeSqrt is returned when the square root of a negative
	// value is requested.
	ErrNegativeSqrt = errors.New("scalar: square root of negative value")

	// ErrRange is returned when a constructed value does not fit the
	// representable range of the target type, or when an argument lies
	// outside an operation's domain.
	ErrRange = errors.New("scalar: value out of range")

	// ErrInvalidNumber is returned when an input is not a valid number:
	// a malformed decimal string, a NaN, or an infinity.
	ErrInvalidNumber = errors.New("scalar: invalid number")
)
