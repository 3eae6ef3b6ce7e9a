package cgilluminate

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Angle is a tagged angular quantity. The internal representation is radians;
// construct values through Degrees or Radians so the unit is explicit at the
// call boundary.
type Angle float32

// Degrees constructs an angle from a value in degrees.
func Degrees(degrees float32) Angle {
	return Angle(mgl32.DegToRad(degrees))
}

// Radians constructs an angle from a value in radians.
func Radians(radians float32) Angle {
	return Angle(radians)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float32 {
	return float32(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float32 {
	return mgl32.RadToDeg(float32(a))
}
