// Package angle provides unit-safe angle wrappers.
//
// Radians and Degrees are distinct types over the same scalar, so passing a
// degree quantity where radians are expected is a compile error instead of a
// silently wrong rotation. Trigonometry lives on Radians only; Degrees
// convert explicitly.
package angle

import "github.com/flyingrobots/echo-math/scalar"

// Radians is an angle measured in radians.
type Radians[T scalar.Trig[T]] struct {
	v T
}

// Degrees is an angle measured in degrees.
type Degrees[T scalar.Trig[T]] struct {
	v T
}

// FromRadians wraps a raw radian quantity.
func FromRadians[T scalar.Trig[T]](r T) Radians[T] {
	return Radians[T]{v: r}
}

// FromDegrees wraps a raw degree quantity.
func FromDegrees[T scalar.Trig[T]](d T) Degrees[T] {
	return Degrees[T]{v: d}
}

// Radians returns the wrapped radian quantity.
func (a Radians[T]) Radians() T {
	return a.v
}

// Add returns the sum of two angles.
func (a Radians[T]) Add(b Radians[T]) Radians[T] {
	return Radians[T]{v: a.v.Add(b.v)}
}

// Sub returns the difference of two angles.
func (a Radians[T]) Sub(b Radians[T]) Radians[T] {
	return Radians[T]{v: a.v.Sub(b.v)}
}

// Neg returns the angle with its orientation reversed.
func (a Radians[T]) Neg() Radians[T] {
	return Radians[T]{v: a.v.Neg()}
}

// Scale returns the angle multiplied by s.
func (a Radians[T]) Scale(s T) Radians[T] {
	return Radians[T]{v: a.v.Mul(s)}
}

// Sin returns the sine of the angle.
func (a Radians[T]) Sin() T {
	return a.v.Sin()
}

// Cos returns the cosine of the angle.
func (a Radians[T]) Cos() T {
	return a.v.Cos()
}

// SinCos returns both the sine and the cosine of the angle.
func (a Radians[T]) SinCos() (sin, cos T) {
	return a.v.SinCos()
}

// Degrees returns the wrapped degree quantity.
func (a Degrees[T]) Degrees() T {
	return a.v
}

// Radians converts the angle to radians through the scalar's own
// representation of π/180. The conversion factor is materialized per scalar
// type with FromFloat64, so fixed-point and float angles round the same way
// their other constants do.
func (a Degrees[T]) Radians() Radians[T] {
	k := a.v.FromFloat64(0.017453292519943295)
	return Radians[T]{v: a.v.Mul(k)}
}
