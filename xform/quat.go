// Package xform provides rotation quaternions and column-major 4x4 matrices
// over the generic scalar types.
//
// Both types are generic over the trigonometric capability level, so the same
// transform code runs on deterministic fixed point for simulation and on
// native floats for rendering. All angles are radians; the coordinate
// convention is right-handed with column vectors (transforms compose as
// M · v, rightmost factor applied first).
package xform

import (
	"github.com/flyingrobots/echo-math/scalar"
	"github.com/flyingrobots/echo-math/vec"
)

// Quat is a rotation quaternion with components (x, y, z, w), w the scalar
// part.
type Quat[T scalar.Trig[T]] struct {
	X, Y, Z, W T
}

// NewQuat returns the quaternion with the given components, taken verbatim.
// Callers typically pass unit quaternions; normalization is not enforced.
func NewQuat[T scalar.Trig[T]](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// IdentityQuat returns the identity quaternion, the rotation that leaves
// every vector in place.
func IdentityQuat[T scalar.Trig[T]]() Quat[T] {
	var z T
	return Quat[T]{X: z.Zero(), Y: z.Zero(), Z: z.Zero(), W: z.One()}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
//
// The axis need not be normalized. A degenerate axis, one whose squared
// length is at or below Epsilon squared, has no defined rotation plane and
// yields the identity quaternion.
func QuatFromAxisAngle[T scalar.Trig[T]](axis vec.Vec3[T], angle T) Quat[T] {
	lenSq := axis.LengthSq()
	eps := angle.Epsilon()
	if lenSq.Cmp(eps.Mul(eps)) <= 0 {
		return IdentityQuat[T]()
	}
	n := axis.Normalize()
	half := angle.Mul(angle.FromFloat64(0.5))
	sinH, cosH := half.SinCos()
	s := n.Scale(sinH)
	return Quat[T]{X: s.X, Y: s.Y, Z: s.Z, W: cosH}
}

// Mul returns the Hamilton product q · r.
//
// Operand order matters: the result applies the rotation of r first, then
// the rotation of q. When both operands are unit quaternions the product is
// a unit quaternion up to rounding; renormalize over long chains.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W.Mul(r.X).Add(q.X.Mul(r.W)).Add(q.Y.Mul(r.Z)).Sub(q.Z.Mul(r.Y)),
		Y: q.W.Mul(r.Y).Sub(q.X.Mul(r.Z)).Add(q.Y.Mul(r.W)).Add(q.Z.Mul(r.X)),
		Z: q.W.Mul(r.Z).Add(q.X.Mul(r.Y)).Sub(q.Y.Mul(r.X)).Add(q.Z.Mul(r.W)),
		W: q.W.Mul(r.W).Sub(q.X.Mul(r.X)).Sub(q.Y.Mul(r.Y)).Sub(q.Z.Mul(r.Z)),
	}
}

// Normalize returns the unit quaternion pointing in the same direction.
// A degenerate quaternion, one whose magnitude is at or below Epsilon,
// cannot represent a rotation and normalizes to the identity.
func (q Quat[T]) Normalize() Quat[T] {
	magSq := q.X.Mul(q.X).Add(q.Y.Mul(q.Y)).Add(q.Z.Mul(q.Z)).Add(q.W.Mul(q.W))
	mag, _ := magSq.Sqrt()
	if mag.Cmp(mag.Epsilon()) <= 0 {
		return IdentityQuat[T]()
	}
	inv, err := mag.One().Div(mag)
	if err != nil {
		return IdentityQuat[T]()
	}
	return Quat[T]{X: q.X.Mul(inv), Y: q.Y.Mul(inv), Z: q.Z.Mul(inv), W: q.W.Mul(inv)}
}

// Mat4 converts the quaternion to a column-major rotation matrix.
// The quaternion is normalized first so the result is a pure rotation.
func (q Quat[T]) Mat4() Mat4[T] {
	n := q.Normalize()
	x, y, z, w := n.X, n.Y, n.Z, n.W

	two := x.FromFloat64(2)
	one := x.One()
	zero := x.Zero()

	xx := x.Mul(x)
	yy := y.Mul(y)
	zz := z.Mul(z)
	xy := x.Mul(y)
	xz := x.Mul(z)
	yz := y.Mul(z)
	wx := w.Mul(x)
	wy := w.Mul(y)
	wz := w.Mul(z)

	return NewMat4([16]T{
		one.Sub(two.Mul(yy.Add(zz))),
		two.Mul(xy.Add(wz)),
		two.Mul(xz.Sub(wy)),
		zero,
		two.Mul(xy.Sub(wz)),
		one.Sub(two.Mul(xx.Add(zz))),
		two.Mul(yz.Add(wx)),
		zero,
		two.Mul(xz.Add(wy)),
		two.Mul(yz.Sub(wx)),
		one.Sub(two.Mul(xx.Add(yy))),
		zero,
		zero, zero, zero, one,
	})
}
