package cgilluminate

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightType identifies the kind of illumination model a light carries.
type LightType uint32

const (
	LightTypePoint LightType = 0
	LightTypeSpot  LightType = 1
)

// IlluminationModel is the capability a type needs to act as the lighting
// model of a Light. A lighting model is the set of parameters a light uses to
// illuminate objects in a scene; the shading stage consumes them, this package
// only carries them.
type IlluminationModel interface {
	// Type returns the kind of illumination model.
	Type() LightType
}

// ModelSpec carries the parameters for constructing an illumination model of
// type M. A spec knows how to produce its model.
type ModelSpec[M IlluminationModel] interface {
	// Model constructs the illumination model from the spec's parameters.
	Model() M
}

// PointLightModelSpec carries the parameters for constructing a point light
// model.
type PointLightModelSpec struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// NewPointLightModelSpec constructs a new point light specification.
func NewPointLightModelSpec(ambient, diffuse, specular mgl32.Vec3) PointLightModelSpec {
	return PointLightModelSpec{
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

func (s PointLightModelSpec) Model() PointLightModel {
	return PointLightModel{
		Ambient:  s.Ambient,
		Diffuse:  s.Diffuse,
		Specular: s.Specular,
	}
}

// PointLightModel is an illumination model that emits in all directions from
// the light's position.
type PointLightModel struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

func (PointLightModel) Type() LightType { return LightTypePoint }

// SpotLightModelSpec carries the parameters for constructing a spot light
// model. Cutoff and OuterCutoff should lie in [0, 180] degrees and the
// attenuation coefficients should be non-negative; neither range is enforced.
type SpotLightModelSpec struct {
	Cutoff      Angle
	OuterCutoff Angle
	// The spotlight illumination parameters.
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	// The spotlight attenuation parameters.
	Constant  float32
	Linear    float32
	Quadratic float32
}

// NewSpotLightModelSpec constructs a new spot light specification.
func NewSpotLightModelSpec(
	cutoff, outerCutoff Angle,
	ambient, diffuse, specular mgl32.Vec3,
	constant, linear, quadratic float32,
) SpotLightModelSpec {
	return SpotLightModelSpec{
		Cutoff:      cutoff,
		OuterCutoff: outerCutoff,
		Ambient:     ambient,
		Diffuse:     diffuse,
		Specular:    specular,
		Constant:    constant,
		Linear:      linear,
		Quadratic:   quadratic,
	}
}

func (s SpotLightModelSpec) Model() SpotLightModel {
	return SpotLightModel{
		Cutoff:      s.Cutoff,
		OuterCutoff: s.OuterCutoff,
		Ambient:     s.Ambient,
		Diffuse:     s.Diffuse,
		Specular:    s.Specular,
		Constant:    s.Constant,
		Linear:      s.Linear,
		Quadratic:   s.Quadratic,
	}
}

// SpotLightModel is an illumination model that emits in a cone from the
// light's position along its forward axis.
type SpotLightModel struct {
	Cutoff      Angle
	OuterCutoff Angle
	// The spotlight illumination parameters.
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	// The spotlight attenuation parameters.
	Constant  float32
	Linear    float32
	Quadratic float32
}

func (SpotLightModel) Type() LightType { return LightTypeSpot }
