package input

import (
	"github.com/sirupsen/logrus"

	"github.com/Hendawy97/giraffe-demo/engine/config"
	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

// Tool is the active interaction mode. Exactly one tool is active at a time.
type Tool string

const (
	ToolSelect   Tool = "select"
	ToolDrawWall Tool = "drawWall"
	ToolDrawDoor Tool = "drawDoor"
	ToolMove     Tool = "move"
	ToolDelete   Tool = "delete"
)

// WallPreview is the uncommitted endpoint of an in-progress draw-wall
// gesture, for the renderer to show.
type WallPreview struct {
	Start, End geom.Vec2
}

type moveDrag struct {
	id    string
	delta geom.Vec2 // cumulative world-space delta
}

type doorPlace struct {
	wallID string
	pos    geom.Vec3
}

// Router turns raw pointer/wheel input into viewport commands or scene
// mutations, based on the active tool. Tool gestures act in plan mode; in
// model mode every drag is a camera gesture (orbit, or pan with no hit).
type Router struct {
	cfg   config.Config
	log   *logrus.Logger
	bus   *events.Bus
	store *scene.Store
	ctrl  *viewport.Controller

	// onCamera fires after any camera-only change so the render loop can
	// schedule a frame; store mutations announce themselves on the bus.
	onCamera func()

	tool        Tool
	pointerDown bool
	downScreen  geom.Vec2
	lastScreen  geom.Vec2

	drawing        *WallPreview
	pending        *doorPlace
	move           *moveDrag
	selectionDirty bool
}

func NewRouter(cfg config.Config, store *scene.Store, ctrl *viewport.Controller, bus *events.Bus, log *logrus.Logger, onCamera func()) *Router {
	if log == nil {
		log = logrus.New()
	}
	if onCamera == nil {
		onCamera = func() {}
	}
	return &Router{
		cfg:      cfg,
		log:      log,
		bus:      bus,
		store:    store,
		ctrl:     ctrl,
		onCamera: onCamera,
		tool:     ToolSelect,
	}
}

func (r *Router) Tool() Tool { return r.tool }

// SetTool switches the active tool, cancelling any in-progress draw or
// move without committing.
func (r *Router) SetTool(t Tool) {
	if t == r.tool {
		return
	}
	r.cancelPending()
	r.tool = t
	r.bus.Publish(events.ToolChanged, events.ToolChangedPayload{Tool: string(t)})
}

// Preview exposes the in-progress wall for rendering, nil when idle.
func (r *Router) Preview() *WallPreview { return r.drawing }

func (r *Router) PointerDown(x, y float64) {
	p := geom.Vec2{X: x, Y: y}
	r.pointerDown = true
	r.downScreen, r.lastScreen = p, p

	if r.ctrl.Mode() == viewport.ModeModel {
		// No tool override in model mode: drag orbits.
		r.ctrl.BeginOrbit()
		return
	}

	world := r.ctrl.Plan().ScreenToWorld(p)
	tol := r.cfg.Tools.HitTolerancePx / r.ctrl.Plan().Scale

	switch r.tool {
	case ToolSelect:
		if id := HitTest(r.store, world, tol); id != "" {
			r.selectionDirty = r.store.Selection().Set(id) || r.selectionDirty
		} else {
			r.selectionDirty = r.store.Selection().Clear() || r.selectionDirty
			r.ctrl.BeginPan()
		}
	case ToolMove:
		if id := HitTest(r.store, world, tol); id != "" {
			r.move = &moveDrag{id: id}
		} else {
			r.ctrl.BeginPan()
		}
	case ToolDrawWall:
		r.drawing = &WallPreview{Start: world, End: world}
	case ToolDrawDoor:
		snap := r.cfg.Tools.DoorSnapPx / r.ctrl.Plan().Scale
		if id, pos, ok := NearestWall(r.store, world, snap); ok {
			r.pending = &doorPlace{wallID: id, pos: pos}
		}
	case ToolDelete:
		if id := HitTest(r.store, world, tol); id != "" {
			if err := r.store.Delete(id); err != nil {
				r.bus.Publish(events.Error, events.ErrorPayload{Op: "delete", Err: err})
			}
		}
	}
}

func (r *Router) PointerMove(x, y float64) {
	p := geom.Vec2{X: x, Y: y}
	if !r.pointerDown {
		r.lastScreen = p
		return
	}
	delta := p.Sub(r.lastScreen)
	r.lastScreen = p

	if g := r.ctrl.Gesture(); g != viewport.GestureIdle {
		r.ctrl.Drag(delta)
		r.onCamera()
		return
	}
	if r.ctrl.Mode() != viewport.ModePlan {
		return
	}
	if r.drawing != nil {
		r.drawing.End = r.ctrl.Plan().ScreenToWorld(p)
		r.onCamera()
		return
	}
	if r.move != nil {
		scale := r.ctrl.Plan().Scale
		r.move.delta = r.move.delta.Add(geom.Vec2{X: delta.X / scale, Y: -delta.Y / scale})
	}
}

func (r *Router) PointerUp(x, y float64) {
	p := geom.Vec2{X: x, Y: y}
	r.pointerDown = false
	r.ctrl.EndGesture()

	switch {
	case r.drawing != nil:
		r.commitWall(p)
	case r.pending != nil:
		r.commitDoor()
	case r.move != nil:
		r.commitMove()
	}
	if r.selectionDirty {
		r.selectionDirty = false
		sel := r.store.Selection()
		if sel.IsEmpty() {
			r.bus.Publish(events.SelectionCleared, events.SelectionClearedPayload{})
		} else {
			r.bus.Publish(events.ObjectSelected, events.ObjectSelectedPayload{IDs: sel.IDs()})
		}
	}
	r.onCamera()
}

// Wheel always zooms the active view, independent of tool, anchored at the
// cursor in plan mode.
func (r *Router) Wheel(dy, x, y float64) {
	factor := r.cfg.Zoom.Step
	if dy < 0 {
		factor = 1 / factor
	}
	r.ctrl.ZoomAt(factor, geom.Vec2{X: x, Y: y})
	r.onCamera()
}

func (r *Router) commitWall(up geom.Vec2) {
	draw := r.drawing
	r.drawing = nil
	if up.Sub(r.downScreen).Len() < r.cfg.Tools.MinWallDragPx {
		return
	}
	end := r.ctrl.Plan().ScreenToWorld(up)
	obj := &scene.Object{
		Kind: scene.KindWall,
		Wall: &scene.Wall{
			Start:     geom.Vec3{X: draw.Start.X, Y: draw.Start.Y},
			End:       geom.Vec3{X: end.X, Y: end.Y},
			Height:    r.cfg.Objects.WallHeight,
			Thickness: r.cfg.Objects.WallThickness,
		},
	}
	if _, err := r.store.Add(obj); err != nil {
		r.bus.Publish(events.Error, events.ErrorPayload{Op: "drawWall", Err: err})
	}
}

func (r *Router) commitDoor() {
	place := r.pending
	r.pending = nil
	obj := &scene.Object{
		Kind: scene.KindDoor,
		Door: &scene.Door{
			Position: place.pos,
			Width:    r.cfg.Objects.DoorWidth,
			Height:   r.cfg.Objects.DoorHeight,
			WallID:   place.wallID,
			Swing:    scene.SwingSingle,
		},
	}
	if _, err := r.store.Add(obj); err != nil {
		r.bus.Publish(events.Error, events.ErrorPayload{Op: "drawDoor", Err: err})
	}
}

func (r *Router) commitMove() {
	drag := r.move
	r.move = nil
	if drag.delta.Len() == 0 {
		return
	}
	obj := r.store.Get(drag.id)
	if obj == nil {
		return
	}
	obj.Translate(drag.delta.X, drag.delta.Y)
	var p scene.Props
	switch obj.Kind {
	case scene.KindWall:
		p.Start, p.End = &obj.Wall.Start, &obj.Wall.End
	case scene.KindDoor:
		p.Position = &obj.Door.Position
	case scene.KindVolume:
		p.Bounds = &obj.Volume.Bounds
	}
	if err := r.store.Update(drag.id, p); err != nil {
		r.bus.Publish(events.Error, events.ErrorPayload{Op: "move", Err: err})
	}
}

func (r *Router) cancelPending() {
	r.drawing = nil
	r.pending = nil
	r.move = nil
}
