package cgilluminate

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PointLight is a light with a point illumination model.
type PointLight = Light[PointLightModel]

// SpotLight is a light with a spot illumination model.
type SpotLight = Light[SpotLightModel]

// Light binds one attitude to one illumination model. A light is exclusively
// owned by its caller; there is no internal locking, and at most one mutator
// call may be in flight at a time.
type Light[M IlluminationModel] struct {
	model    M
	attitude lightAttitude
}

// NewLight constructs a light from a description of its illumination model and
// a description of its initial attitude. Most callers want NewPointLight or
// NewSpotLight, which pick the model type for them.
func NewLight[M IlluminationModel](modelSpec ModelSpec[M], attitudeSpec LightAttitudeSpec) *Light[M] {
	return &Light[M]{
		model:    modelSpec.Model(),
		attitude: attitudeFromSpec(attitudeSpec),
	}
}

// NewPointLight constructs a point light.
func NewPointLight(modelSpec PointLightModelSpec, attitudeSpec LightAttitudeSpec) *PointLight {
	return NewLight[PointLightModel](modelSpec, attitudeSpec)
}

// NewSpotLight constructs a spot light.
func NewSpotLight(modelSpec SpotLightModelSpec, attitudeSpec LightAttitudeSpec) *SpotLight {
	return NewLight[SpotLightModel](modelSpec, attitudeSpec)
}

// UpdateAttitudeEye applies a change to the light's attitude: orientation
// first, then a displacement along the just-rotated frame.
func (l *Light[M]) UpdateAttitudeEye(delta DeltaAttitude) {
	l.attitude.update(delta)
}

// Update applies a change to the light's attitude. It is the legacy name for
// UpdateAttitudeEye and behaves identically.
func (l *Light[M]) Update(delta DeltaAttitude) {
	l.attitude.update(delta)
}

// UpdatePositionWorld moves the light to an absolute position in world space,
// leaving its orientation untouched.
func (l *Light[M]) UpdatePositionWorld(position mgl32.Vec3) {
	l.attitude.setPositionWorld(position)
}

// Model returns the light's illumination model.
func (l *Light[M]) Model() *M {
	return &l.model
}

// Position returns the light's position in world space.
func (l *Light[M]) Position() mgl32.Vec3 {
	return l.attitude.position
}

// ForwardAxis returns the light's forward axis in world space.
func (l *Light[M]) ForwardAxis() mgl32.Vec3 {
	return l.attitude.forward.Vec3()
}

// RightAxis returns the light's right axis in world space.
func (l *Light[M]) RightAxis() mgl32.Vec3 {
	return l.attitude.right.Vec3()
}

// UpAxis returns the light's up axis in world space.
func (l *Light[M]) UpAxis() mgl32.Vec3 {
	return l.attitude.up.Vec3()
}

// ForwardAxisEye returns the light's forward axis in eye space.
func (l *Light[M]) ForwardAxisEye() mgl32.Vec3 {
	return eyeForward.Vec3()
}

// RightAxisEye returns the light's right axis in eye space.
func (l *Light[M]) RightAxisEye() mgl32.Vec3 {
	return eyeRight.Vec3()
}

// UpAxisEye returns the light's up axis in eye space.
func (l *Light[M]) UpAxisEye() mgl32.Vec3 {
	return eyeUp.Vec3()
}

// RotationAxis returns the light's axis of rotation: the raw vector part of
// the orientation accumulator. Exposed for diagnostics; it is not guaranteed
// to be normalized.
func (l *Light[M]) RotationAxis() mgl32.Vec3 {
	return l.attitude.axis.V
}

// ModelMatrix returns the transformation placing the light's model in the
// scene. It is a pure translation by the current position; the light's shape
// is assumed axis-aligned in its own model space, so orientation is not
// included.
func (l *Light[M]) ModelMatrix() mgl32.Mat4 {
	position := l.attitude.position
	return mgl32.Translate3D(position.X(), position.Y(), position.Z())
}

// ViewMatrix returns the light's viewing transformation, carrying world space
// geometry into the light's eye space. Useful for rendering a scene from the
// light's point of view, e.g. for shadow mapping.
func (l *Light[M]) ViewMatrix() mgl32.Mat4 {
	return l.attitude.view
}
