package cgilluminate

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightAttitudeSpec describes the initial placement of a light in world space:
// its location, its local coordinate frame, and its axis of rotation. The frame
// (forward, right, up) must be a right-handed orthonormal basis; this is a
// caller contract and is not re-validated at runtime. A violated contract does
// not fail, it silently skews every subsequent update.
type LightAttitudeSpec struct {
	// Position is the location of the light in world space.
	Position mgl32.Vec3
	// Forward is the direction of the light's negative z-axis.
	Forward mgl32.Vec3
	// Right is the direction of the light's positive x-axis.
	Right mgl32.Vec3
	// Up is the direction of the light's positive y-axis.
	Up mgl32.Vec3
	// Axis is the rotation axis of the light. It need not coincide with any of
	// the coordinate axes.
	Axis mgl32.Vec3
}

// NewLightAttitudeSpec constructs a new attitude specification. The fields are
// stored verbatim.
func NewLightAttitudeSpec(position, forward, right, up, axis mgl32.Vec3) LightAttitudeSpec {
	return LightAttitudeSpec{
		Position: position,
		Forward:  forward,
		Right:    right,
		Up:       up,
		Axis:     axis,
	}
}

// Orthonormal reports whether the spec's frame satisfies the orthonormality
// contract within tolerance: all three vectors unit length, pairwise
// orthogonal, and forward = right x up. The core never calls this; it is a
// diagnostic for callers who want to check their own inputs.
func (s LightAttitudeSpec) Orthonormal(tolerance float32) bool {
	if math32.Abs(s.Forward.Len()-1) > tolerance {
		return false
	}
	if math32.Abs(s.Right.Len()-1) > tolerance {
		return false
	}
	if math32.Abs(s.Up.Len()-1) > tolerance {
		return false
	}
	if math32.Abs(s.Forward.Dot(s.Right)) > tolerance {
		return false
	}
	if math32.Abs(s.Forward.Dot(s.Up)) > tolerance {
		return false
	}
	if math32.Abs(s.Right.Dot(s.Up)) > tolerance {
		return false
	}
	cross := s.Right.Cross(s.Up)
	for i := 0; i < 3; i++ {
		if math32.Abs(cross[i]-s.Forward[i]) > tolerance {
			return false
		}
	}
	return true
}

func (s LightAttitudeSpec) String() string {
	return fmt.Sprintf(
		"LightAttitudeSpec [position=%v, forward=%v, right=%v up=%v, axis=%v]",
		s.Position, s.Forward, s.Right, s.Up, s.Axis,
	)
}
