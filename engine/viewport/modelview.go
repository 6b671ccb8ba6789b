package viewport

import (
	"math"

	"github.com/Hendawy97/giraffe-demo/engine/geom"
)

// Dolly clamp: distance from camera to target, world units.
const (
	minDistance = 1.0
	maxDistance = 500.0
)

// Pitch stays off the poles so the orbit basis never degenerates.
const maxPitch = math.Pi/2 - 0.05

// DefaultCamera is the camera restored by ResetView.
var DefaultCamera = ModelView{
	Position: geom.Vec3{X: 30, Y: -30, Z: 25},
	Target:   geom.Vec3{},
	FOV:      50,
}

// ModelView is the perspective view state. Z is up.
type ModelView struct {
	Position geom.Vec3
	Target   geom.Vec3
	FOV      float64 // vertical field of view, degrees

	width, height int
}

func NewModelView(width, height int) *ModelView {
	v := DefaultCamera
	v.width, v.height = width, height
	return &v
}

func (v *ModelView) SetViewportPixels(w, h int) { v.width, v.height = w, h }

// Reset restores the fixed default camera, keeping viewport size.
func (v *ModelView) Reset() {
	w, h := v.width, v.height
	*v = DefaultCamera
	v.width, v.height = w, h
}

// Orbit rotates the camera around the target. dYaw spins around the up
// axis, dPitch tilts; both radians.
func (v *ModelView) Orbit(dYaw, dPitch float64) {
	rel := v.Position.Sub(v.Target)
	dist := rel.Len()
	if dist == 0 {
		return
	}
	yaw := math.Atan2(rel.Y, rel.X) + dYaw
	pitch := math.Asin(rel.Z/dist) + dPitch
	if pitch > maxPitch {
		pitch = maxPitch
	} else if pitch < -maxPitch {
		pitch = -maxPitch
	}
	v.Position = v.Target.Add(geom.Vec3{
		X: dist * math.Cos(pitch) * math.Cos(yaw),
		Y: dist * math.Cos(pitch) * math.Sin(yaw),
		Z: dist * math.Sin(pitch),
	})
}

// Dolly moves the camera along the view ray; factor > 1 moves away.
func (v *ModelView) Dolly(factor float64) {
	rel := v.Position.Sub(v.Target)
	dist := rel.Len() * factor
	if dist < minDistance {
		dist = minDistance
	} else if dist > maxDistance {
		dist = maxDistance
	}
	v.Position = v.Target.Add(rel.Normalized().Scale(dist))
}

// Fit frames bounds with the given margin factor, preserving the current
// view direction. An empty scene resets to the default camera.
func (v *ModelView) Fit(b geom.Bounds, margin float64) {
	if b.IsEmpty() {
		v.Reset()
		return
	}
	dir := v.Position.Sub(v.Target).Normalized()
	if dir.Len() == 0 {
		dir = DefaultCamera.Position.Sub(DefaultCamera.Target).Normalized()
	}
	radius := b.Radius()
	if radius == 0 {
		radius = 1
	}
	halfFOV := v.FOV * math.Pi / 360
	dist := radius * margin / math.Tan(halfFOV)
	if dist < minDistance {
		dist = minDistance
	}
	v.Target = b.Center()
	v.Position = v.Target.Add(dir.Scale(dist))
}

// UnprojectGround casts a ray through the screen pixel and intersects the
// ground plane (z = 0). ok is false when the ray misses (looking at the
// sky). Used for hover picking in the model view.
func (v *ModelView) UnprojectGround(p geom.Vec2) (geom.Vec2, bool) {
	fwd := v.Target.Sub(v.Position).Normalized()
	up := geom.Vec3{Z: 1}
	right := fwd.Cross(up).Normalized()
	if right.Len() == 0 {
		right = geom.Vec3{X: 1}
	}
	trueUp := right.Cross(fwd)

	f := (float64(v.height) / 2) / math.Tan(v.FOV*math.Pi/360)
	x := p.X - float64(v.width)/2
	y := float64(v.height)/2 - p.Y
	dir := fwd.Scale(f).Add(right.Scale(x)).Add(trueUp.Scale(y)).Normalized()
	if math.Abs(dir.Z) < 1e-9 {
		return geom.Vec2{}, false
	}
	t := -v.Position.Z / dir.Z
	if t <= 0 {
		return geom.Vec2{}, false
	}
	hit := v.Position.Add(dir.Scale(t))
	return hit.XY(), true
}

// Project maps a model-space point to screen pixels. ok is false when the
// point is behind the camera. Used by the model renderer and 3D hit probes.
func (v *ModelView) Project(p geom.Vec3) (geom.Vec2, float64, bool) {
	fwd := v.Target.Sub(v.Position).Normalized()
	up := geom.Vec3{Z: 1}
	right := fwd.Cross(up).Normalized()
	if right.Len() == 0 {
		// Looking straight down the up axis.
		right = geom.Vec3{X: 1}
	}
	trueUp := right.Cross(fwd)

	rel := p.Sub(v.Position)
	depth := rel.Dot(fwd)
	if depth <= 1e-6 {
		return geom.Vec2{}, 0, false
	}
	x := rel.Dot(right)
	y := rel.Dot(trueUp)

	f := (float64(v.height) / 2) / math.Tan(v.FOV*math.Pi/360)
	return geom.Vec2{
		X: float64(v.width)/2 + x*f/depth,
		Y: float64(v.height)/2 - y*f/depth,
	}, depth, true
}
