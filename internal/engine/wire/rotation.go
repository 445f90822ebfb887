package wire

import (
	gomath "math"

	"github.com/Faultbox/dddragon/internal/engine/camera"
	"github.com/Faultbox/dddragon/pkg/math"
)

// Rotation describes how a shape's points are rotated in a given frame.
type Rotation interface {
	// Frame resolves the rotation operator for one frame.
	Frame(ws camera.WorldState) func(math.Vec3) math.Vec3
}

// Fixed rotates by a static matrix, independent of time.
type Fixed struct {
	M math.Mat3
}

// Still is the identity rotation.
func Still() Fixed {
	return Fixed{M: math.Identity3()}
}

// Frame implements Rotation.
func (f Fixed) Frame(camera.WorldState) func(math.Vec3) math.Vec3 {
	return f.M.Apply
}

// Spin rotates about Axis by an angle that grows with the frame timestamp.
type Spin struct {
	Axis math.Vec3

	// Radians per millisecond
	Rate float64
}

// Angle returns the rotation angle at ts milliseconds, reduced to [0, 2π).
func (s Spin) Angle(ts int64) float64 {
	a := gomath.Mod(float64(ts)*s.Rate, 2*gomath.Pi)
	if a < 0 {
		a += 2 * gomath.Pi
	}
	return a
}

// Frame implements Rotation. The quaternion is built and unitized once per
// frame, then applied to every point.
func (s Spin) Frame(ws camera.WorldState) func(math.Vec3) math.Vec3 {
	q := math.QuatFromAxisAngle(s.Axis, s.Angle(ws.Timestamp)).Unit()
	return q.RotatePoint
}
