package cgilluminate

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrthonormalAcceptsCanonicalFrame(t *testing.T) {
	spec := canonicalAttitudeSpec()
	if !spec.Orthonormal(1e-6) {
		t.Errorf("canonical frame reported as not orthonormal")
	}
}

func TestOrthonormalRejectsBadFrames(t *testing.T) {
	cases := []struct {
		name string
		spec LightAttitudeSpec
	}{
		{
			"non-unit forward",
			NewLightAttitudeSpec(
				mgl32.Vec3{}, mgl32.Vec3{0, 0, -2}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0},
			),
		},
		{
			"non-orthogonal right",
			NewLightAttitudeSpec(
				mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0},
			),
		},
		{
			"left-handed frame",
			NewLightAttitudeSpec(
				mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0},
			),
		},
	}
	for _, c := range cases {
		if c.spec.Orthonormal(1e-6) {
			t.Errorf("%s reported as orthonormal", c.name)
		}
	}
}

func TestSpecStoresFieldsVerbatim(t *testing.T) {
	position := mgl32.Vec3{1, 2, 3}
	forward := mgl32.Vec3{0, 0, -1}
	right := mgl32.Vec3{1, 0, 0}
	up := mgl32.Vec3{0, 1, 0}
	axis := mgl32.Vec3{0.3, 0.9, 0.1}

	spec := NewLightAttitudeSpec(position, forward, right, up, axis)
	if spec.Position != position || spec.Forward != forward ||
		spec.Right != right || spec.Up != up || spec.Axis != axis {
		t.Errorf("spec fields not stored verbatim: %v", spec)
	}
}

func TestSpecString(t *testing.T) {
	s := canonicalAttitudeSpec().String()
	if !strings.HasPrefix(s, "LightAttitudeSpec [") {
		t.Errorf("unexpected String() output: %q", s)
	}
}
