package cgilluminate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DeltaAttitude carries one requested change in the attitude of a light: a
// translation offset expressed in the light's own axes and signed rotation
// amounts about each of them.
type DeltaAttitude struct {
	// DeltaPosition is the change in the position of the light in the light's
	// local axes (x = right, y = up, z = backward along forward).
	DeltaPosition mgl32.Vec3
	// Roll is the change in orientation about the light's forward axis
	// (the negative z-axis).
	Roll Angle
	// Yaw is the change in orientation about the light's up axis
	// (the positive y-axis).
	Yaw Angle
	// Pitch is the change in orientation about the light's right axis
	// (the positive x-axis).
	Pitch Angle
}

// NewDeltaAttitude constructs a new change in attitude.
func NewDeltaAttitude(deltaPosition mgl32.Vec3, roll, yaw, pitch Angle) DeltaAttitude {
	return DeltaAttitude{
		DeltaPosition: deltaPosition,
		Roll:          roll,
		Yaw:           yaw,
		Pitch:         pitch,
	}
}

// ZeroDeltaAttitude constructs the zero change in attitude. Applying it to a
// light is a no-op.
func ZeroDeltaAttitude() DeltaAttitude {
	return DeltaAttitude{}
}

func (d DeltaAttitude) String() string {
	return fmt.Sprintf(
		"DeltaAttitude [x=%v, y=%v, z=%v, roll=%v, yaw=%v, pitch=%v]",
		d.DeltaPosition.X(), d.DeltaPosition.Y(), d.DeltaPosition.Z(),
		float32(d.Roll), float32(d.Yaw), float32(d.Pitch),
	)
}
