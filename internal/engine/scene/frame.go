package scene

import (
	"fmt"

	"github.com/Faultbox/dddragon/internal/engine/wire"
)

// Bounds is the visible region of the display plane.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// AxisBounds widens the unit square horizontally to fill a display whose
// width/height ratio, in square units, is aspect.
func AxisBounds(aspect float64) Bounds {
	pad := (aspect - 1) / 2
	return Bounds{
		XMin: -1 - pad,
		XMax: 1 + pad,
		YMin: -1,
		YMax: 1,
	}
}

// XLabels returns the left, middle and right axis labels.
func (b Bounds) XLabels() [3]string {
	return [3]string{
		fmt.Sprintf("%0.2f", b.XMin),
		fmt.Sprintf("%0.2f", (b.XMin+b.XMax)/2),
		fmt.Sprintf("%0.2f", b.XMax),
	}
}

// YLabels returns the bottom, middle and top axis labels.
func (b Bounds) YLabels() [3]string {
	return [3]string{
		fmt.Sprintf("%0.1f", b.YMin),
		"0",
		fmt.Sprintf("%0.1f", b.YMax),
	}
}

// Frame is the output of one render pass, ordered for drawing.
type Frame struct {
	// Farthest first, nearest last
	Polylines []wire.Polyline

	Bounds Bounds

	// Shapes built this frame, how many the near plane dropped, and how
	// many points needed their depth clamped
	Shapes  int
	Culled  int
	Clamped int
}
