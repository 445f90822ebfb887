package math

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat is a quaternion with scalar part Real and imaginary parts
// Imag, Jmag, Kmag. It shares its layout with gonum's quat.Number.
type Quat quat.Number

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{Real: 1}
}

// Pure embeds a vector as a quaternion with zero scalar part.
func Pure(v Vec3) Quat {
	return Quat{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Vec returns the imaginary part as a vector.
func (q Quat) Vec() Vec3 {
	return Vec3{q.Imag, q.Jmag, q.Kmag}
}

func (q Quat) n() quat.Number { return quat.Number(q) }

// Add returns q + p.
func (q Quat) Add(p Quat) Quat {
	return Quat(quat.Add(q.n(), p.n()))
}

// Mul returns the Hamilton product q * p. It is not commutative.
func (q Quat) Mul(p Quat) Quat {
	return Quat(quat.Mul(q.n(), p.n()))
}

// Scale returns q * s.
func (q Quat) Scale(s float64) Quat {
	return Quat(quat.Scale(s, q.n()))
}

// Conj negates the imaginary parts.
func (q Quat) Conj() Quat {
	return Quat(quat.Conj(q.n()))
}

// Norm returns sqrt(a²+b²+c²+d²).
func (q Quat) Norm() float64 {
	return quat.Abs(q.n())
}

// Unit returns q scaled to norm 1. The zero quaternion has no unit form and
// yields non-finite components; callers must not pass it.
func (q Quat) Unit() Quat {
	return q.Scale(1 / q.Norm())
}

// Inverse returns Conj(q) / Norm(q)².
func (q Quat) Inverse() Quat {
	return Quat(quat.Inv(q.n()))
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quat) IsFinite() bool {
	return !quat.IsNaN(q.n()) && !quat.IsInf(q.n())
}

// QuatFromAxisAngle builds the rotation of theta radians about axis.
// The axis is unitized here and must be non-zero.
func QuatFromAxisAngle(axis Vec3, theta float64) Quat {
	s, c := math.Sincos(theta / 2)
	r := Pure(axis).Unit().Scale(s)
	r.Real += c
	return r
}

// RotatePoint rotates v by q using q * v * q⁻¹. q is unitized first.
func (q Quat) RotatePoint(v Vec3) Vec3 {
	u := q.Unit()
	return u.Mul(Pure(v)).Mul(u.Inverse()).Vec()
}
