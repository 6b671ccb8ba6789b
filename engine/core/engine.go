// Package core wires the engine together and exposes the SDK contract the
// host UI consumes: construction, project load, tool/mode switching, object
// CRUD, camera commands, event subscription, and teardown.
package core

import (
	"context"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/Hendawy97/giraffe-demo/engine/config"
	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/project"
	"github.com/Hendawy97/giraffe-demo/engine/render"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

// Options configures construction. Zero values take defaults; Width and
// Height must be positive.
type Options struct {
	Width, Height int
	Mode          viewport.Mode
	Tool          input.Tool
	Loader        project.Loader
	Config        *config.Config
	Logger        *logrus.Logger
}

// Engine is the viewport & interaction engine handle. All methods must be
// called from one goroutine; nothing here is concurrency-safe by design
// (see the concurrency notes in the package docs).
type Engine struct {
	cfg    config.Config
	log    *logrus.Logger
	bus    *events.Bus
	store  *scene.Store
	ctrl   *viewport.Controller
	router *input.Router
	loop   *render.Loop
	loader project.Loader

	renderer      render.Renderer
	width, height int
	pointerHeld   bool
	destroyed     bool
}

var _ SDK = (*Engine)(nil)

// New constructs an engine with an owned drawing surface of the given
// size. Fails with InitializationError when no surface can be allocated.
func New(opts Options) (*Engine, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, &InitializationError{Reason: "no drawing surface: width and height must be positive"}
	}
	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}
	mode := opts.Mode
	if mode == "" {
		mode = viewport.ModePlan
	}
	loader := opts.Loader
	if loader == nil {
		loader = project.DemoLoader{}
	}

	e := &Engine{
		cfg:    cfg,
		log:    log,
		loader: loader,
		width:  opts.Width,
		height: opts.Height,
	}
	e.bus = events.NewBus(log)
	e.store = scene.NewStore(e.bus, log)
	e.ctrl = viewport.NewController(e.bus, mode, opts.Width, opts.Height)
	e.loop = render.NewLoop(e.renderFrame)
	e.router = input.NewRouter(cfg, e.store, e.ctrl, e.bus, log, e.loop.Invalidate)
	if opts.Tool != "" {
		e.router.SetTool(opts.Tool)
	}
	e.renderer = e.newRenderer(mode)

	// Any store or mode mutation schedules exactly one frame; the loop
	// coalesces bursts within a tick.
	for _, name := range []events.Name{
		events.ObjectAdded, events.ObjectUpdated, events.ObjectDeleted,
		events.ObjectSelected, events.SelectionCleared,
		events.ModeChanged, events.ToolChanged, events.ProjectLoaded,
	} {
		e.bus.Subscribe(name, func(events.Event) { e.loop.Invalidate() })
	}

	e.loop.Start()
	e.loop.Invalidate()
	return e, nil
}

func (e *Engine) newRenderer(m viewport.Mode) render.Renderer {
	if m == viewport.ModeModel {
		return render.NewModelRenderer(e.ctrl.Model(), e.width, e.height)
	}
	return render.NewPlanRenderer(e.ctrl.Plan(), e.width, e.height)
}

// LoadProject fetches the project's layers and replaces the scene with the
// seeded objects. On failure the scene is untouched, an error event is
// published, and the LoadError is returned; the engine stays usable.
func (e *Engine) LoadProject(ctx context.Context, projectID string) error {
	layers, err := e.loader.LoadLayers(ctx, projectID)
	if err != nil {
		e.bus.Publish(events.Error, events.ErrorPayload{Op: "loadProject", Err: err})
		return err
	}
	e.store.Replace(project.Seed(layers, e.cfg.Objects))
	e.log.WithFields(logrus.Fields{"project": projectID, "layers": len(layers)}).Info("engine: project loaded")
	e.bus.Publish(events.ProjectLoaded, events.ProjectLoadedPayload{ProjectID: projectID, LayerCount: len(layers)})
	return nil
}

// SetMode switches presentation, swapping the renderer against the same
// surface size. Selection and tool survive the switch.
func (e *Engine) SetMode(m viewport.Mode) {
	if !e.ctrl.SetMode(m) {
		return
	}
	e.loop.SetHover("")
	e.renderer.Dispose()
	e.renderer = e.newRenderer(m)
	e.loop.Invalidate()
}

func (e *Engine) SetTool(t input.Tool) { e.router.SetTool(t) }

func (e *Engine) Mode() viewport.Mode { return e.ctrl.Mode() }
func (e *Engine) Tool() input.Tool    { return e.router.Tool() }

// AddWall creates a wall through the SDK surface. Zero thickness takes the
// configured default.
func (e *Engine) AddWall(o WallOptions) (string, error) {
	thickness := o.Thickness
	if thickness == 0 {
		thickness = e.cfg.Objects.WallThickness
	}
	return e.store.Add(&scene.Object{
		Kind: scene.KindWall,
		Wall: &scene.Wall{
			Start:     o.Start,
			End:       o.End,
			Height:    o.Height,
			Thickness: thickness,
		},
		Style: scene.Style{Color: o.Color, Material: o.Material},
	})
}

func (e *Engine) AddDoor(o DoorOptions) (string, error) {
	swing := o.Type
	if swing == "" {
		swing = scene.SwingSingle
	}
	return e.store.Add(&scene.Object{
		Kind: scene.KindDoor,
		Door: &scene.Door{
			Position: o.Position,
			Width:    o.Width,
			Height:   o.Height,
			WallID:   o.WallID,
			Swing:    swing,
		},
	})
}

func (e *Engine) UpdateObject(id string, props scene.Props) error {
	return e.store.Update(id, props)
}

func (e *Engine) DeleteObject(id string) error {
	return e.store.Delete(id)
}

func (e *Engine) ZoomIn()  { e.ctrl.Zoom(e.cfg.Zoom.Step); e.loop.Invalidate() }
func (e *Engine) ZoomOut() { e.ctrl.Zoom(1 / e.cfg.Zoom.Step); e.loop.Invalidate() }

func (e *Engine) ResetView() { e.ctrl.Reset(); e.loop.Invalidate() }

func (e *Engine) FitToView() { e.ctrl.Fit(e.store.Bounds()); e.loop.Invalidate() }

func (e *Engine) On(name events.Name, fn events.Handler) events.Subscription {
	return e.bus.Subscribe(name, fn)
}

func (e *Engine) Off(s events.Subscription) { e.bus.Unsubscribe(s) }

// Pointer and wheel input, fed by the host window.

func (e *Engine) PointerDown(x, y float64) {
	e.pointerHeld = true
	e.router.PointerDown(x, y)
}

func (e *Engine) PointerMove(x, y float64) {
	e.router.PointerMove(x, y)
	if !e.pointerHeld && e.ctrl.Mode() == viewport.ModeModel {
		e.updateHover(x, y)
	}
}

func (e *Engine) PointerUp(x, y float64) {
	e.pointerHeld = false
	e.router.PointerUp(x, y)
}

func (e *Engine) Wheel(dy, x, y float64) { e.router.Wheel(dy, x, y) }

func (e *Engine) updateHover(x, y float64) {
	world, ok := e.ctrl.Model().UnprojectGround(geom.Vec2{X: x, Y: y})
	if !ok {
		e.loop.SetHover("")
		return
	}
	// Hover picking uses a fixed world-space pad; there is no scale in the
	// model view to convert the pixel tolerance through.
	e.loop.SetHover(input.HitTest(e.store, world, 0.3))
}

// Read-only views for the surrounding UI.

func (e *Engine) ViewSnapshot() ViewSnapshot {
	snap := ViewSnapshot{Mode: e.ctrl.Mode()}
	if snap.Mode == viewport.ModePlan {
		v := e.ctrl.Plan()
		snap.Scale, snap.Offset = v.Scale, v.Offset
	} else {
		v := e.ctrl.Model()
		snap.Position, snap.Target, snap.FOV = v.Position, v.Target, v.FOV
	}
	return snap
}

func (e *Engine) Selection() []string { return e.store.Selection().IDs() }

func (e *Engine) Objects(kinds ...scene.Kind) []*scene.Object { return e.store.List(kinds...) }

// Resize adjusts the viewport and surface. Unchanged dimensions only
// trigger a redraw.
func (e *Engine) Resize(w, h int) {
	if w == e.width && h == e.height {
		e.loop.Invalidate()
		return
	}
	e.width, e.height = w, h
	e.ctrl.Resize(w, h)
	e.renderer.Resize(w, h)
	e.loop.Invalidate()
}

// Step advances the render loop; the host calls it once per frame tick.
// Returns true when a new frame was drawn.
func (e *Engine) Step(dt float64) bool { return e.loop.Step(dt) }

// Frame returns the last rendered image. Valid until the next render.
func (e *Engine) Frame() image.Image { return e.renderer.Image() }

// Destroy tears the engine down: handlers first, then the loop, then the
// renderer, so no callback can fire against a released surface. Idempotent.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.bus.UnsubscribeAll()
	e.loop.Stop()
	e.renderer.Dispose()
}

func (e *Engine) renderFrame() {
	selected := make(map[string]bool)
	for _, id := range e.store.Selection().IDs() {
		selected[id] = true
	}
	hoverID, hoverAngle := e.loop.Hover()
	e.renderer.Render(render.Snapshot{
		Objects:    e.store.List(),
		Selected:   selected,
		Preview:    e.router.Preview(),
		HoverID:    hoverID,
		HoverAngle: hoverAngle,
	})
}
