package math

import "github.com/go-gl/mathgl/mgl64"

// Radians is an angle in radians.
type Radians float64

// Degrees is an angle in degrees.
type Degrees float64

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Radians(mgl64.DegToRad(float64(d)))
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Degrees(mgl64.RadToDeg(float64(r)))
}
