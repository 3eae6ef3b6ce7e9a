package cgilluminate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func makeTestPointLight(position mgl32.Vec3) *PointLight {
	spec := canonicalAttitudeSpec()
	spec.Position = position
	return NewPointLight(testPointModelSpec(), spec)
}

func TestRigAddRemove(t *testing.T) {
	rig := NewLightRig(nil)

	pointId, ok := rig.AddPoint(makeTestPointLight(mgl32.Vec3{1, 2, 3}))
	if !ok {
		t.Fatalf("AddPoint failed on empty rig")
	}
	spotId, ok := rig.AddSpot(NewSpotLight(
		NewSpotLightModelSpec(Degrees(15), Degrees(20),
			mgl32.Vec3{0.1, 0.1, 0.1}, mgl32.Vec3{0.7, 0.7, 0.7}, mgl32.Vec3{1, 1, 1},
			1, 0.09, 0.032),
		canonicalAttitudeSpec(),
	))
	if !ok {
		t.Fatalf("AddSpot failed")
	}
	if rig.Len() != 2 {
		t.Errorf("Len = %d, want 2", rig.Len())
	}

	if _, ok := rig.Point(pointId); !ok {
		t.Errorf("Point(%s) not found", pointId)
	}
	if _, ok := rig.Spot(pointId); ok {
		t.Errorf("Spot getter returned a point light")
	}
	if _, ok := rig.Spot(spotId); !ok {
		t.Errorf("Spot(%s) not found", spotId)
	}

	if !rig.Remove(pointId) {
		t.Errorf("Remove(%s) = false", pointId)
	}
	if rig.Remove(pointId) {
		t.Errorf("second Remove(%s) = true", pointId)
	}
	if rig.Len() != 1 {
		t.Errorf("Len = %d after remove, want 1", rig.Len())
	}
}

func TestRigCapacity(t *testing.T) {
	rig := NewLightRig(NewNopLogger())
	for i := 0; i < MaxRigLights; i++ {
		if _, ok := rig.AddPoint(makeTestPointLight(mgl32.Vec3{float32(i), 0, 0})); !ok {
			t.Fatalf("AddPoint failed at %d of %d", i, MaxRigLights)
		}
	}
	if _, ok := rig.AddPoint(makeTestPointLight(mgl32.Vec3{})); ok {
		t.Errorf("rig accepted more than MaxRigLights lights")
	}
	if rig.Len() != MaxRigLights {
		t.Errorf("Len = %d, want %d", rig.Len(), MaxRigLights)
	}
}

func TestRigPackedPositions(t *testing.T) {
	rig := NewLightRig(nil)
	rig.AddPoint(makeTestPointLight(mgl32.Vec3{1, 2, 3}))
	rig.AddPoint(makeTestPointLight(mgl32.Vec3{-4, 5, -6}))

	packed := rig.PackedPositions()
	if len(packed) != MaxRigLights*3 {
		t.Fatalf("len = %d, want %d", len(packed), MaxRigLights*3)
	}
	want := []float32{1, 2, 3, -4, 5, -6}
	for i, w := range want {
		if packed[i] != w {
			t.Errorf("packed[%d] = %v, want %v", i, packed[i], w)
		}
	}
	// Unused slots stay zero.
	for i := len(want); i < len(packed); i++ {
		if packed[i] != 0 {
			t.Errorf("packed[%d] = %v, want zero padding", i, packed[i])
		}
	}
}

func TestRigPackedColors(t *testing.T) {
	rig := NewLightRig(nil)
	rig.AddPoint(makeTestPointLight(mgl32.Vec3{}))

	model := testPointModelSpec()
	checks := []struct {
		name   string
		packed []float32
		want   mgl32.Vec3
	}{
		{"ambient", rig.PackedAmbient(), model.Ambient},
		{"diffuse", rig.PackedDiffuse(), model.Diffuse},
		{"specular", rig.PackedSpecular(), model.Specular},
	}
	for _, c := range checks {
		for i := 0; i < 3; i++ {
			if c.packed[i] != c.want[i] {
				t.Errorf("%s[%d] = %v, want %v", c.name, i, c.packed[i], c.want[i])
			}
		}
	}
}

func TestRigUpdateAll(t *testing.T) {
	rig := NewLightRig(nil)
	idA, _ := rig.AddPoint(makeTestPointLight(mgl32.Vec3{0, 0, 0}))
	idB, _ := rig.AddPoint(makeTestPointLight(mgl32.Vec3{5, 0, 0}))

	rig.UpdateAll(NewDeltaAttitude(mgl32.Vec3{0, 1, 0}, 0, 0, 0))

	a, _ := rig.Point(idA)
	b, _ := rig.Point(idB)
	assertVec3Near(t, "light A position", mgl32.Vec3{0, 1, 0}, a.Position(), testEpsilon)
	assertVec3Near(t, "light B position", mgl32.Vec3{5, 1, 0}, b.Position(), testEpsilon)
}
