package viewport

import "github.com/Hendawy97/giraffe-demo/engine/geom"

// Zoom clamp for the plan view, in pixels per world unit. No sequence of
// zoom calls can push the scale outside this range.
const (
	MinScale = 1.0
	MaxScale = 50.0
)

// PlanView is the top-down orthographic view state: a uniform scale plus a
// pixel offset. World Y points up, screen Y points down, so the transform
// flips Y; WorldToScreen and ScreenToWorld are exact inverses.
type PlanView struct {
	Scale  float64 // pixels per world unit
	Offset geom.Vec2

	width, height int
}

func NewPlanView(width, height int) *PlanView {
	return &PlanView{Scale: 10, width: width, height: height}
}

func (v *PlanView) SetViewportPixels(w, h int) { v.width, v.height = w, h }

func (v *PlanView) WorldToScreen(p geom.Vec2) geom.Vec2 {
	cx := float64(v.width) / 2
	cy := float64(v.height) / 2
	return geom.Vec2{
		X: p.X*v.Scale + v.Offset.X + cx,
		Y: -p.Y*v.Scale + v.Offset.Y + cy,
	}
}

func (v *PlanView) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	cx := float64(v.width) / 2
	cy := float64(v.height) / 2
	return geom.Vec2{
		X: (p.X - v.Offset.X - cx) / v.Scale,
		Y: -(p.Y - v.Offset.Y - cy) / v.Scale,
	}
}

// Zoom multiplies the scale by factor and clamps the result.
func (v *PlanView) Zoom(factor float64) {
	v.Scale = clampScale(v.Scale * factor)
}

// ZoomAt zooms while keeping the world point under anchor (a screen point)
// fixed on screen. Wheel zoom goes through here.
func (v *PlanView) ZoomAt(factor float64, anchor geom.Vec2) {
	before := v.ScreenToWorld(anchor)
	v.Zoom(factor)
	after := v.WorldToScreen(before)
	v.Offset.X += anchor.X - after.X
	v.Offset.Y += anchor.Y - after.Y
}

// Pan shifts the view by a screen-space delta. Unbounded.
func (v *PlanView) Pan(delta geom.Vec2) {
	v.Offset = v.Offset.Add(delta)
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
