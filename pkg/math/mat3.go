package math

import "github.com/go-gl/mathgl/mgl64"

// Mat3 is a 3x3 rotation matrix in column-major order.
type Mat3 mgl64.Mat3

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3(mgl64.Ident3())
}

// RotateX returns a rotation about the X axis. angle is in radians.
func RotateX(angle float64) Mat3 {
	return Mat3(mgl64.Rotate3DX(angle))
}

// RotateY returns a rotation about the Y axis. angle is in radians.
func RotateY(angle float64) Mat3 {
	return Mat3(mgl64.Rotate3DY(angle))
}

// RotateZ returns a rotation about the Z axis. angle is in radians.
func RotateZ(angle float64) Mat3 {
	return Mat3(mgl64.Rotate3DZ(angle))
}

// TaitBryan composes Rz(yaw) * Ry(pitch) * Rx(roll).
func TaitBryan(roll, pitch, yaw float64) Mat3 {
	return RotateZ(yaw).Mul(RotateY(pitch)).Mul(RotateX(roll))
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	return Mat3(mgl64.Mat3(m).Mul3(mgl64.Mat3(other)))
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float64 {
	return mgl64.Mat3(m).At(row, col)
}

// Apply returns m * v.
func (m Mat3) Apply(v Vec3) Vec3 {
	r := mgl64.Mat3(m).Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{r[0], r[1], r[2]}
}
