package viewport

import (
	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
)

// Mode selects the active presentation.
type Mode string

const (
	ModePlan  Mode = "2d"
	ModeModel Mode = "3d"
)

// Gesture is the pointer-driven camera state.
type Gesture int

const (
	GestureIdle Gesture = iota
	GesturePanning
	GestureOrbiting
)

// FitMargin frames the scene with a little air around it.
const FitMargin = 1.2

// Controller owns per-mode view state and the pan/orbit gesture machine.
// Each mode's state is created on first use and preserved across mode
// switches; a switch never resets the target mode's view.
type Controller struct {
	mode    Mode
	gesture Gesture
	plan    *PlanView
	model   *ModelView

	width, height int
	bus           *events.Bus
}

func NewController(bus *events.Bus, mode Mode, width, height int) *Controller {
	c := &Controller{bus: bus, width: width, height: height}
	c.mode = mode
	c.ensure(mode)
	return c
}

func (c *Controller) Mode() Mode       { return c.mode }
func (c *Controller) Gesture() Gesture { return c.gesture }

// Plan returns the plan view state, initializing it on first use.
func (c *Controller) Plan() *PlanView {
	c.ensure(ModePlan)
	return c.plan
}

// Model returns the model view state, initializing it on first use.
func (c *Controller) Model() *ModelView {
	c.ensure(ModeModel)
	return c.model
}

// SetMode switches presentation. Selection and tool state live elsewhere
// and are untouched. Returns true when the mode actually changed.
func (c *Controller) SetMode(m Mode) bool {
	if m == c.mode {
		return false
	}
	c.mode = m
	c.gesture = GestureIdle
	c.ensure(m)
	c.bus.Publish(events.ModeChanged, events.ModeChangedPayload{Mode: string(m)})
	return true
}

func (c *Controller) Resize(w, h int) {
	c.width, c.height = w, h
	if c.plan != nil {
		c.plan.SetViewportPixels(w, h)
	}
	if c.model != nil {
		c.model.SetViewportPixels(w, h)
	}
}

// BeginPan enters PANNING from IDLE; no-op mid-gesture.
func (c *Controller) BeginPan() {
	if c.gesture == GestureIdle {
		c.gesture = GesturePanning
	}
}

// BeginOrbit enters ORBITING; only meaningful in model mode.
func (c *Controller) BeginOrbit() {
	if c.mode == ModeModel && c.gesture == GestureIdle {
		c.gesture = GestureOrbiting
	}
}

// EndGesture returns to IDLE on pointer-up.
func (c *Controller) EndGesture() { c.gesture = GestureIdle }

// Drag feeds a pointer delta (screen pixels) into the active gesture.
func (c *Controller) Drag(delta geom.Vec2) {
	switch c.gesture {
	case GesturePanning:
		if c.mode == ModePlan {
			c.Plan().Pan(delta)
		} else {
			// Panning the model view slides the target on the ground plane.
			v := c.Model()
			dist := v.Position.Sub(v.Target).Len()
			k := dist * 0.002
			shift := geom.Vec3{X: -delta.X * k, Y: delta.Y * k}
			v.Target = v.Target.Add(shift)
			v.Position = v.Position.Add(shift)
		}
	case GestureOrbiting:
		c.Model().Orbit(-delta.X*0.01, delta.Y*0.01)
	}
}

// Zoom applies a multiplicative factor to the active mode: plan scale or
// model dolly (inverted so factor > 1 always means "closer").
func (c *Controller) Zoom(factor float64) {
	if c.mode == ModePlan {
		c.Plan().Zoom(factor)
	} else {
		c.Model().Dolly(1 / factor)
	}
}

// ZoomAt is Zoom anchored at a screen point; only plan mode uses the anchor.
func (c *Controller) ZoomAt(factor float64, anchor geom.Vec2) {
	if c.mode == ModePlan {
		c.Plan().ZoomAt(factor, anchor)
	} else {
		c.Model().Dolly(1 / factor)
	}
}

// Reset restores the active mode's default view.
func (c *Controller) Reset() {
	if c.mode == ModePlan {
		v := c.Plan()
		v.Scale = 10
		v.Offset = geom.Vec2{}
	} else {
		c.Model().Reset()
	}
}

// Fit frames bounds in the active mode.
func (c *Controller) Fit(b geom.Bounds) {
	if c.mode == ModePlan {
		c.fitPlan(b)
	} else {
		c.Model().Fit(b, FitMargin)
	}
}

func (c *Controller) fitPlan(b geom.Bounds) {
	v := c.Plan()
	if b.IsEmpty() {
		v.Scale = 10
		v.Offset = geom.Vec2{}
		return
	}
	size := b.Max.Sub(b.Min)
	sx, sy := size.X, size.Y
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	scale := min(float64(c.width)/(sx*FitMargin), float64(c.height)/(sy*FitMargin))
	v.Scale = clampScale(scale)
	center := b.Center()
	v.Offset = geom.Vec2{}
	at := v.WorldToScreen(center.XY())
	v.Offset = geom.Vec2{
		X: float64(c.width)/2 - at.X,
		Y: float64(c.height)/2 - at.Y,
	}
}

func (c *Controller) ensure(m Mode) {
	switch m {
	case ModePlan:
		if c.plan == nil {
			c.plan = NewPlanView(c.width, c.height)
		}
	case ModeModel:
		if c.model == nil {
			c.model = NewModelView(c.width, c.height)
		}
	}
}
