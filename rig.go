package cgilluminate

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// MaxRigLights is the maximum number of lights a rig holds, matching the
// fixed-size light arrays shaders are typically compiled against.
const MaxRigLights = 32

// LightId identifies a light within a rig.
type LightId string

func newLightId() LightId {
	return LightId(uuid.NewString())
}

// rigEntry holds one light of either kind. Exactly one of the two pointers is
// set.
type rigEntry struct {
	point *PointLight
	spot  *SpotLight
}

func (e rigEntry) lightType() LightType {
	if e.point != nil {
		return LightTypePoint
	}
	return LightTypeSpot
}

func (e rigEntry) position() mgl32.Vec3 {
	if e.point != nil {
		return e.point.Position()
	}
	return e.spot.Position()
}

func (e rigEntry) ambient() mgl32.Vec3 {
	if e.point != nil {
		return e.point.Model().Ambient
	}
	return e.spot.Model().Ambient
}

func (e rigEntry) diffuse() mgl32.Vec3 {
	if e.point != nil {
		return e.point.Model().Diffuse
	}
	return e.spot.Model().Diffuse
}

func (e rigEntry) specular() mgl32.Vec3 {
	if e.point != nil {
		return e.point.Model().Specular
	}
	return e.spot.Model().Specular
}

func (e rigEntry) update(delta DeltaAttitude) {
	if e.point != nil {
		e.point.UpdateAttitudeEye(delta)
		return
	}
	e.spot.UpdateAttitudeEye(delta)
}

// LightRig is the hand-off point between this package and a renderer: it owns
// a set of lights and exposes their state as flat float32 slices laid out the
// way a GPU uniform or storage buffer consumes them. The rig only reads the
// lights' public accessors and forwards the public update entry points; it
// never reaches into the attitude state.
type LightRig struct {
	entries map[LightId]rigEntry
	// Insertion order; packing is stable across frames as long as the set of
	// lights does not change.
	order []LightId
	log   Logger
}

// NewLightRig constructs an empty rig. A nil logger is replaced with a no-op
// logger.
func NewLightRig(logger Logger) *LightRig {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &LightRig{
		entries: make(map[LightId]rigEntry),
		log:     logger,
	}
}

// AddPoint adds a point light to the rig. Returns false if the rig is full.
func (r *LightRig) AddPoint(light *PointLight) (LightId, bool) {
	return r.add(rigEntry{point: light})
}

// AddSpot adds a spot light to the rig. Returns false if the rig is full.
func (r *LightRig) AddSpot(light *SpotLight) (LightId, bool) {
	return r.add(rigEntry{spot: light})
}

func (r *LightRig) add(entry rigEntry) (LightId, bool) {
	if len(r.order) >= MaxRigLights {
		r.log.Warnf("light rig is full, dropping light (max %d)", MaxRigLights)
		return "", false
	}
	id := newLightId()
	r.entries[id] = entry
	r.order = append(r.order, id)
	r.log.Debugf("added light %s (type %d), rig holds %d", id, entry.lightType(), len(r.order))
	return id, true
}

// Remove removes the light with the given id. Returns false if the rig does
// not hold it.
func (r *LightRig) Remove(id LightId) bool {
	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.log.Debugf("removed light %s, rig holds %d", id, len(r.order))
	return true
}

// Len returns the number of lights in the rig.
func (r *LightRig) Len() int {
	return len(r.order)
}

// Point returns the point light with the given id.
func (r *LightRig) Point(id LightId) (*PointLight, bool) {
	entry, ok := r.entries[id]
	if !ok || entry.point == nil {
		return nil, false
	}
	return entry.point, true
}

// Spot returns the spot light with the given id.
func (r *LightRig) Spot(id LightId) (*SpotLight, bool) {
	entry, ok := r.entries[id]
	if !ok || entry.spot == nil {
		return nil, false
	}
	return entry.spot, true
}

// UpdateAll applies the same change in attitude to every light in the rig.
func (r *LightRig) UpdateAll(delta DeltaAttitude) {
	for _, id := range r.order {
		r.entries[id].update(delta)
	}
	r.log.Debugf("updated %d lights: %s", len(r.order), delta)
}

// PackedPositions returns the world positions of the rig's lights as a flat
// slice [x0, y0, z0, x1, y1, z1, ...], zero padded to MaxRigLights entries.
func (r *LightRig) PackedPositions() []float32 {
	return r.packVec3(rigEntry.position)
}

// PackedAmbient returns the ambient colors of the rig's lights as a flat
// slice, zero padded to MaxRigLights entries.
func (r *LightRig) PackedAmbient() []float32 {
	return r.packVec3(rigEntry.ambient)
}

// PackedDiffuse returns the diffuse colors of the rig's lights as a flat
// slice, zero padded to MaxRigLights entries.
func (r *LightRig) PackedDiffuse() []float32 {
	return r.packVec3(rigEntry.diffuse)
}

// PackedSpecular returns the specular colors of the rig's lights as a flat
// slice, zero padded to MaxRigLights entries.
func (r *LightRig) PackedSpecular() []float32 {
	return r.packVec3(rigEntry.specular)
}

func (r *LightRig) packVec3(field func(rigEntry) mgl32.Vec3) []float32 {
	packed := make([]float32, MaxRigLights*3)
	for i, id := range r.order {
		v := field(r.entries[id])
		packed[i*3+0] = v.X()
		packed[i*3+1] = v.Y()
		packed[i*3+2] = v.Z()
	}
	return packed
}
