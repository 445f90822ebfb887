// Package wire implements the wireframe geometry pipeline: edge
// tessellation, per-point transforms and perspective projection of
// polygons and polyhedra.
package wire

import "github.com/Faultbox/dddragon/pkg/math"

// DefaultResolution is the number of points generated per edge.
const DefaultResolution = 200

// Edge is a straight segment discretized into a fixed number of points.
type Edge struct {
	Start, End math.Vec3

	// Points runs from Start (inclusive) towards End (exclusive)
	Points []math.Vec3

	Center math.Vec3
}

// NewEdge tessellates start→end into n points.
func NewEdge(start, end math.Vec3, n int) Edge {
	return Edge{
		Start:  start,
		End:    end,
		Points: Interpolate(start, end, n),
		Center: start.Midpoint(end),
	}
}

// Interpolate returns start + k·(end-start)/n for k in [0, n).
func Interpolate(start, end math.Vec3, n int) []math.Vec3 {
	if n <= 0 {
		return nil
	}
	delta := end.Sub(start).Scale(1 / float64(n))
	points := make([]math.Vec3, n)
	for k := range points {
		points[k] = start.Add(delta.Scale(float64(k)))
	}
	return points
}
