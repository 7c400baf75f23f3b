package vec

import "github.com/flyingrobots/echo-math/scalar"

// Point3 is a location in space. Points support only the affine operations:
// subtracting another point (yielding a direction) and translating by a
// direction. Adding two points is meaningless and has no method.
type Point3[T scalar.Real[T]] struct {
	v Vec3[T]
}

// Direction3 is a displacement in space. Directions add, scale and negate;
// they have no absolute position.
type Direction3[T scalar.Real[T]] struct {
	v Vec3[T]
}

// NewPoint3 returns the point at (x, y, z).
func NewPoint3[T scalar.Real[T]](x, y, z T) Point3[T] {
	return Point3[T]{v: New(x, y, z)}
}

// Point3FromVec3 reinterprets a vector as a location.
func Point3FromVec3[T scalar.Real[T]](v Vec3[T]) Point3[T] {
	return Point3[T]{v: v}
}

// Vec3 returns the point's coordinates as a plain vector.
func (p Point3[T]) Vec3() Vec3[T] {
	return p.v
}

// Sub returns the direction from q to p.
func (p Point3[T]) Sub(q Point3[T]) Direction3[T] {
	return Direction3[T]{v: p.v.Sub(q.v)}
}

// Add returns p translated by d.
func (p Point3[T]) Add(d Direction3[T]) Point3[T] {
	return Point3[T]{v: p.v.Add(d.v)}
}

// NewDirection3 returns the displacement (x, y, z).
func NewDirection3[T scalar.Real[T]](x, y, z T) Direction3[T] {
	return Direction3[T]{v: New(x, y, z)}
}

// Direction3FromVec3 reinterprets a vector as a displacement.
func Direction3FromVec3[T scalar.Real[T]](v Vec3[T]) Direction3[T] {
	return Direction3[T]{v: v}
}

// Vec3 returns the displacement as a plain vector.
func (d Direction3[T]) Vec3() Vec3[T] {
	return d.v
}

// Add returns the componentwise sum of two displacements.
func (d Direction3[T]) Add(e Direction3[T]) Direction3[T] {
	return Direction3[T]{v: d.v.Add(e.v)}
}

// Sub returns the componentwise difference of two displacements.
func (d Direction3[T]) Sub(e Direction3[T]) Direction3[T] {
	return Direction3[T]{v: d.v.Sub(e.v)}
}

// Scale returns d with its magnitude multiplied by s.
func (d Direction3[T]) Scale(s T) Direction3[T] {
	return Direction3[T]{v: d.v.Scale(s)}
}

// Neg returns the opposite displacement.
func (d Direction3[T]) Neg() Direction3[T] {
	return Direction3[T]{v: d.v.Neg()}
}

// Length returns the magnitude of the displacement.
func (d Direction3[T]) Length() T {
	return d.v.Length()
}

// Normalize returns d scaled to unit length, or the zero displacement when
// d is degenerate.
func (d Direction3[T]) Normalize() Direction3[T] {
	return Direction3[T]{v: d.v.Normalize()}
}
