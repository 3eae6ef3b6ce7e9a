package cgilluminate

import (
	"github.com/go-gl/mathgl/mgl32"
)

// The canonical eye space basis. A light faces along its negative z-axis.
var (
	eyeForward = mgl32.Vec4{0, 0, -1, 0}
	eyeRight   = mgl32.Vec4{1, 0, 0, 0}
	eyeUp      = mgl32.Vec4{0, 1, 0, 0}
)

// lightAttitude tracks the position and orientation of a light in world space.
// The coordinate system is right-handed and orthonormal, facing along the
// light's negative z-axis.
//
// The frame vectors are never rotated incrementally; every orientation update
// re-derives them from the quaternion accumulator, so they stay orthonormal no
// matter how much rotation has accumulated. The invariant
// view == rotation * translation holds whenever no mutator is in flight.
type lightAttitude struct {
	// The world space position of the light.
	position mgl32.Vec3
	// The basis vectors of the light's frame in world space, in homogeneous
	// form (w = 0).
	forward mgl32.Vec4
	right   mgl32.Vec4
	up      mgl32.Vec4
	// axis accumulates the net rotation applied to the light's rotation axis.
	// It is seeded as the pure quaternion (0, spec.Axis) and left-multiplied by
	// every incremental rotation; it is not itself the orientation.
	axis mgl32.Quat

	// Cached transforms. rotation is world-to-eye; view is the light's full
	// viewing transformation.
	translation mgl32.Mat4
	rotation    mgl32.Mat4
	view        mgl32.Mat4
}

// attitudeFromSpec constructs the light's attitude from its specification.
func attitudeFromSpec(spec LightAttitudeSpec) lightAttitude {
	att := lightAttitude{
		position: spec.Position,
		forward:  spec.Forward.Vec4(0),
		right:    spec.Right.Vec4(0),
		up:       spec.Up.Vec4(0),
		axis:     mgl32.Quat{W: 0, V: spec.Axis},
	}
	att.translation = translateInverse(spec.Position)
	att.rotation = att.axis.Normalize().Mat4()
	att.view = att.rotation.Mul4(att.translation)
	return att
}

// updateOrientation rotates the light's frame by the delta's yaw, pitch and
// roll. Each rotation axis is taken from the pre-update frame, not re-derived
// after the previous rotation, and the order yaw, pitch, roll is fixed;
// composing in any other order yields a different orientation.
func (att *lightAttitude) updateOrientation(delta DeltaAttitude) {
	qYaw := mgl32.QuatRotate(delta.Yaw.Radians(), att.up.Vec3())
	att.axis = qYaw.Mul(att.axis)

	qPitch := mgl32.QuatRotate(delta.Pitch.Radians(), att.right.Vec3())
	att.axis = qPitch.Mul(att.axis)

	qRoll := mgl32.QuatRotate(delta.Roll.Radians(), att.forward.Vec3())
	att.axis = qRoll.Mul(att.axis)

	// eyeToWorld carries the canonical eye axes into world space; the cached
	// rotation matrix is its inverse.
	eyeToWorld := att.axis.Normalize().Mat4()
	att.forward = eyeToWorld.Mul4x1(eyeForward)
	att.right = eyeToWorld.Mul4x1(eyeRight)
	att.up = eyeToWorld.Mul4x1(eyeUp)
	att.rotation = invertRotation(eyeToWorld)
}

// updatePositionEye displaces the light along its current frame. The forward
// axis points along negative z in eye space, so moving forward is a
// displacement along -delta.z.
func (att *lightAttitude) updatePositionEye(delta DeltaAttitude) {
	att.position = att.position.Add(att.forward.Vec3().Mul(-delta.DeltaPosition.Z()))
	att.position = att.position.Add(att.up.Vec3().Mul(delta.DeltaPosition.Y()))
	att.position = att.position.Add(att.right.Vec3().Mul(delta.DeltaPosition.X()))
	att.translation = translateInverse(att.position)
}

// setPositionWorld moves the light to an absolute world space position,
// ignoring the frame entirely. The only mutator that needs no paired
// orientation step, so it restores the view invariant itself.
func (att *lightAttitude) setPositionWorld(position mgl32.Vec3) {
	att.position = position
	att.translation = translateInverse(position)
	att.view = att.rotation.Mul4(att.translation)
}

// update applies a full change in attitude. Orientation first, using the
// pre-motion frame for the rotation axes, then translation along the
// just-rotated frame. This is the commit point that restores the view
// invariant.
func (att *lightAttitude) update(delta DeltaAttitude) {
	att.updateOrientation(delta)
	att.updatePositionEye(delta)
	att.view = att.rotation.Mul4(att.translation)
}

// translateInverse builds the inverse of a translation by position. For a pure
// translation the analytic inverse is a translation by the negation.
func translateInverse(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(-position.X(), -position.Y(), -position.Z())
}

// invertRotation inverts a pure rotation matrix. A proper rotation matrix is
// always invertible; a singular input means the accumulator state is corrupt,
// which is a programming error rather than a condition a caller could recover
// from.
func invertRotation(m mgl32.Mat4) mgl32.Mat4 {
	if m.Det() == 0 {
		panic("cgilluminate: rotation matrix is singular")
	}
	return m.Inv()
}
