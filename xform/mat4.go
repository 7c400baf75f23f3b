package xform

import (
	"github.com/flyingrobots/echo-math/scalar"
	"github.com/flyingrobots/echo-math/vec"
)

// Mat4 is a 4x4 matrix stored column-major: element (row, col) lives at
// index col*4+row. The layout matches GPU upload conventions.
type Mat4[T scalar.Trig[T]] struct {
	m [16]T
}

// NewMat4 builds a matrix from column-major data.
func NewMat4[T scalar.Trig[T]](data [16]T) Mat4[T] {
	return Mat4[T]{m: data}
}

// Array returns the matrix as a column-major array.
func (a Mat4[T]) Array() [16]T {
	return a.m
}

// At returns the element at the given row and column.
func (a Mat4[T]) At(row, col int) T {
	return a.m[col*4+row]
}

// Identity returns the identity matrix.
func Identity[T scalar.Trig[T]]() Mat4[T] {
	var s T
	one, zero := s.One(), s.Zero()
	return NewMat4([16]T{
		one, zero, zero, zero,
		zero, one, zero, zero,
		zero, zero, one, zero,
		zero, zero, zero, one,
	})
}

// Translation returns the matrix that moves points by (tx, ty, tz).
// Directions are unaffected, translation lives in the fourth column.
func Translation[T scalar.Trig[T]](tx, ty, tz T) Mat4[T] {
	a := Identity[T]()
	a.m[12] = tx
	a.m[13] = ty
	a.m[14] = tz
	return a
}

// Scaling returns the matrix that scales each axis independently. A zero
// component collapses that axis; a negative component reflects it.
func Scaling[T scalar.Trig[T]](sx, sy, sz T) Mat4[T] {
	a := Identity[T]()
	a.m[0] = sx
	a.m[5] = sy
	a.m[10] = sz
	return a
}

// RotationX returns the rotation around the X axis by angle radians.
// Right-handed: positive angles rotate counter-clockwise looking down the
// +X axis toward the origin.
func RotationX[T scalar.Trig[T]](angle T) Mat4[T] {
	s, c := angle.SinCos()
	a := Identity[T]()
	a.m[5] = c
	a.m[6] = s
	a.m[9] = s.Neg()
	a.m[10] = c
	return a
}

// RotationY returns the rotation around the Y axis by angle radians.
func RotationY[T scalar.Trig[T]](angle T) Mat4[T] {
	s, c := angle.SinCos()
	a := Identity[T]()
	a.m[0] = c
	a.m[2] = s.Neg()
	a.m[8] = s
	a.m[10] = c
	return a
}

// RotationZ returns the rotation around the Z axis by angle radians.
func RotationZ[T scalar.Trig[T]](angle T) Mat4[T] {
	s, c := angle.SinCos()
	a := Identity[T]()
	a.m[0] = c
	a.m[1] = s
	a.m[4] = s.Neg()
	a.m[5] = c
	return a
}

// FromEuler returns the rotation R_y(yaw) · R_x(pitch) · R_z(roll).
// With column vectors the rightmost factor applies first: roll, then pitch,
// then yaw.
func FromEuler[T scalar.Trig[T]](yaw, pitch, roll T) Mat4[T] {
	return RotationY(yaw).Mul(RotationX(pitch)).Mul(RotationZ(roll))
}

// FromAxisAngle returns the rotation of angle radians around axis. The axis
// need not be normalized; a degenerate axis yields the identity (the
// behavior is delegated to [QuatFromAxisAngle]).
func FromAxisAngle[T scalar.Trig[T]](axis vec.Vec3[T], angle T) Mat4[T] {
	return QuatFromAxisAngle(axis, angle).Mat4()
}

// FromQuat returns the rotation matrix of q.
func FromQuat[T scalar.Trig[T]](q Quat[T]) Mat4[T] {
	return q.Mat4()
}

// Mul returns the matrix product a · b.
func (a Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	var out [16]T
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := a.At(row, 0).Mul(b.At(0, col))
			for k := 1; k < 4; k++ {
				sum = sum.Add(a.At(row, k).Mul(b.At(k, col)))
			}
			out[col*4+row] = sum
		}
	}
	return Mat4[T]{m: out}
}

// TransformPoint applies the full affine transform to a point (homogeneous
// w = 1, no perspective divide): translation applies.
func (a Mat4[T]) TransformPoint(p vec.Point3[T]) vec.Point3[T] {
	v := p.Vec3()
	nx := a.At(0, 0).Mul(v.X).Add(a.At(0, 1).Mul(v.Y)).Add(a.At(0, 2).Mul(v.Z)).Add(a.At(0, 3))
	ny := a.At(1, 0).Mul(v.X).Add(a.At(1, 1).Mul(v.Y)).Add(a.At(1, 2).Mul(v.Z)).Add(a.At(1, 3))
	nz := a.At(2, 0).Mul(v.X).Add(a.At(2, 1).Mul(v.Y)).Add(a.At(2, 2).Mul(v.Z)).Add(a.At(2, 3))
	return vec.Point3FromVec3(vec.New(nx, ny, nz))
}

// TransformDirection applies only the linear part of the transform to a
// direction (homogeneous w = 0): translation is ignored.
func (a Mat4[T]) TransformDirection(d vec.Direction3[T]) vec.Direction3[T] {
	v := d.Vec3()
	nx := a.At(0, 0).Mul(v.X).Add(a.At(0, 1).Mul(v.Y)).Add(a.At(0, 2).Mul(v.Z))
	ny := a.At(1, 0).Mul(v.X).Add(a.At(1, 1).Mul(v.Y)).Add(a.At(1, 2).Mul(v.Z))
	nz := a.At(2, 0).Mul(v.X).Add(a.At(2, 1).Mul(v.Y)).Add(a.At(2, 2).Mul(v.Z))
	return vec.Direction3FromVec3(vec.New(nx, ny, nz))
}
