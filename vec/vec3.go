// Package vec provides a generic 3-component vector and the point/direction
// newtypes used by deterministic simulation code.
//
// Vec3 is generic over the scalar representation: instantiate it with
// [scalar.DFix64] or [scalar.F32Det] for reproducible simulation state, or
// with [scalar.F32] for rendering. The affine newtypes [Point3] and
// [Direction3] keep locations and displacements apart at compile time:
// subtracting two points yields a direction, adding a direction to a point
// yields a point, and the operations that would mix the two do not exist.
package vec

import "github.com/flyingrobots/echo-math/scalar"

// Vec3 is a 3-component vector over the scalar type T.
type Vec3[T scalar.Real[T]] struct {
	X, Y, Z T
}

// New returns the vector (x, y, z).
func New[T scalar.Real[T]](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat returns the vector (v, v, v).
func Splat[T scalar.Real[T]](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

// Zero returns the zero vector.
func Zero[T scalar.Real[T]]() Vec3[T] {
	return Vec3[T]{}
}

// UnitX returns the unit vector along the positive X axis.
func UnitX[T scalar.Real[T]]() Vec3[T] {
	var z T
	return Vec3[T]{X: z.One(), Y: z.Zero(), Z: z.Zero()}
}

// UnitY returns the unit vector along the positive Y axis.
func UnitY[T scalar.Real[T]]() Vec3[T] {
	var z T
	return Vec3[T]{X: z.Zero(), Y: z.One(), Z: z.Zero()}
}

// UnitZ returns the unit vector along the positive Z axis.
func UnitZ[T scalar.Real[T]]() Vec3[T] {
	var z T
	return Vec3[T]{X: z.Zero(), Y: z.Zero(), Z: z.One()}
}

// Add returns the componentwise sum of v and w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X.Add(w.X), Y: v.Y.Add(w.Y), Z: v.Z.Add(w.Z)}
}

// Sub returns the componentwise difference of v and w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y), Z: v.Z.Sub(w.Z)}
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X.Mul(s), Y: v.Y.Mul(s), Z: v.Z.Mul(s)}
}

// Neg returns v with every component negated.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: v.X.Neg(), Y: v.Y.Neg(), Z: v.Z.Neg()}
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y)).Add(v.Z.Mul(w.Z))
}

// Cross returns the cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y.Mul(w.Z).Sub(v.Z.Mul(w.Y)),
		Y: v.Z.Mul(w.X).Sub(v.X.Mul(w.Z)),
		Z: v.X.Mul(w.Y).Sub(v.Y.Mul(w.X)),
	}
}

// LengthSq returns the squared magnitude of v.
func (v Vec3[T]) LengthSq() T {
	return v.Dot(v)
}

// Length returns the magnitude of v.
func (v Vec3[T]) Length() T {
	// The radicand is a sum of squares, so Sqrt cannot fail.
	l, _ := v.Dot(v).Sqrt()
	return l
}

// Normalize returns v scaled to unit length. Vectors whose length is at or
// below the scalar's Epsilon are degenerate and normalize to the zero vector
// so callers can detect them deterministically.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if l.Cmp(l.Epsilon()) <= 0 {
		return Vec3[T]{}
	}
	inv, err := l.One().Div(l)
	if err != nil {
		return Vec3[T]{}
	}
	return v.Scale(inv)
}

// IsZero reports whether every component is zero.
func (v Vec3[T]) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}
