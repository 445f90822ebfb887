package wire

import (
	gomath "math"

	"github.com/Faultbox/dddragon/internal/engine/camera"
	"github.com/Faultbox/dddragon/pkg/math"
)

// DefaultMinDepth is the smallest view-space depth used as a divisor.
const DefaultMinDepth = 1e-6

// Projector maps world-space points onto the 2D display plane.
type Projector struct {
	// Distance from the camera to the display plane, 1/tan(fov/2)
	EyeDistance float64

	// Display offset added after the perspective divide
	Eye math.Vec2

	// Camera reference position subtracted before rotating
	Center math.Vec3

	// |dz| below MinDepth is clamped to ±MinDepth
	MinDepth float64
}

// NewProjector creates a projector for the given field of view in radians.
func NewProjector(fov, minDepth float64) Projector {
	if minDepth <= 0 {
		minDepth = DefaultMinDepth
	}
	return Projector{
		EyeDistance: 1 / gomath.Tan(fov/2),
		MinDepth:    minDepth,
	}
}

// View is a projector bound to one camera pose.
type View struct {
	p Projector

	cx, cy, cz float64
	sx, sy, sz float64
}

// View binds the projector to the camera pitch and yaw of ws. Roll does
// not take part in the projection.
func (p Projector) View(ws camera.WorldState) View {
	v := View{p: p}
	v.sx, v.cx = gomath.Sincos(ws.Pitch)
	v.sy, v.cy = gomath.Sincos(ws.Yaw)
	v.sz, v.cz = 0, 1
	return v
}

// Project maps a onto the display plane. The second result reports whether
// the view-space depth had to be clamped.
func (v View) Project(a math.Vec3) (math.Vec2, bool) {
	d := a.Sub(v.p.Center)
	x, y, z := d.X, d.Y, d.Z

	inner := v.sz*y + v.cz*x
	dx := v.cy*inner - v.sy*z
	dy := v.sx*(v.cy*z+v.sy*inner) + v.cx*(v.cz*y-v.sz*x)
	dz := v.cx*(v.cy*z+v.sy*inner) - v.sx*(v.cz*y-v.sz*x)

	clamped := false
	if gomath.Abs(dz) < v.p.MinDepth {
		clamped = true
		if dz < 0 {
			dz = -v.p.MinDepth
		} else {
			dz = v.p.MinDepth
		}
	}

	f := v.p.EyeDistance / dz
	return math.Vec2{X: f*dx + v.p.Eye.X, Y: f*dy + v.p.Eye.Y}, clamped
}
