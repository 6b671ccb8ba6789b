package render

import (
	"image"
	"math"
	"strconv"

	"github.com/Hendawy97/giraffe-demo/engine/colors"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

// Grid spacing in world units.
const (
	gridMinorStep = 1.0
	gridMajorStep = 10.0
	// Minor lines disappear when they would be closer than this many pixels.
	minorVisiblePx = 4.0
)

// PlanRenderer draws the top-down orthographic plan: ruled grid, axes, and
// the scene's objects transformed through the plan view.
type PlanRenderer struct {
	view *viewport.PlanView
	surf *Surface
}

func NewPlanRenderer(view *viewport.PlanView, w, h int) *PlanRenderer {
	return &PlanRenderer{view: view, surf: NewSurface(w, h)}
}

func (r *PlanRenderer) Resize(w, h int) { r.surf.Resize(w, h) }
func (r *PlanRenderer) Dispose()        { r.surf.release() }
func (r *PlanRenderer) Image() image.Image {
	return r.surf.Image()
}

func (r *PlanRenderer) Render(snap Snapshot) {
	r.surf.clear(colors.Paper)
	r.drawGrid()
	r.drawAxes()
	for _, o := range snap.Objects {
		if o.Kind == scene.KindVolume {
			r.drawVolume(o, snap.Selected[o.ID])
		}
	}
	for _, o := range snap.Objects {
		if o.Kind == scene.KindWall {
			r.drawWall(o, snap.Selected[o.ID])
		}
	}
	for _, o := range snap.Objects {
		if o.Kind == scene.KindDoor {
			r.drawDoor(o, snap.Selected[o.ID])
		}
	}
	if snap.Preview != nil {
		r.drawPreview(snap.Preview)
	}
}

// drawGrid rules vertical and horizontal lines across the visible world
// range: minor every world unit (when legible), major every ten.
func (r *PlanRenderer) drawGrid() {
	w, h := r.surf.Size()
	tl := r.view.ScreenToWorld(geom.Vec2{})
	br := r.view.ScreenToWorld(geom.Vec2{X: float64(w), Y: float64(h)})
	minX, maxX := tl.X, br.X
	minY, maxY := br.Y, tl.Y // screen Y is flipped

	if r.view.Scale*gridMinorStep >= minorVisiblePx {
		r.ruleLines(minX, maxX, minY, maxY, gridMinorStep, colors.GridMinor, 1)
	}
	r.ruleLines(minX, maxX, minY, maxY, gridMajorStep, colors.GridMajor, 1)
	r.labelMajors(minX, maxX, minY, maxY)
}

// labelMajors writes the world coordinate next to each major grid line,
// along the axes.
func (r *PlanRenderer) labelMajors(minX, maxX, minY, maxY float64) {
	dc := r.surf.ctx()
	dc.SetRGBA(colors.GridLabel.Floats())
	origin := r.view.WorldToScreen(geom.Vec2{})

	for x := math.Floor(minX/gridMajorStep) * gridMajorStep; x <= maxX; x += gridMajorStep {
		if x == 0 {
			continue
		}
		p := r.view.WorldToScreen(geom.Vec2{X: x})
		dc.DrawStringAnchored(strconv.FormatFloat(x, 'f', -1, 64), p.X, origin.Y+3, 0.5, 1)
	}
	for y := math.Floor(minY/gridMajorStep) * gridMajorStep; y <= maxY; y += gridMajorStep {
		if y == 0 {
			continue
		}
		p := r.view.WorldToScreen(geom.Vec2{Y: y})
		dc.DrawStringAnchored(strconv.FormatFloat(y, 'f', -1, 64), origin.X+4, p.Y, 0, 0.4)
	}
	dc.DrawStringAnchored("0", origin.X+4, origin.Y+3, 0, 1)
}

func (r *PlanRenderer) ruleLines(minX, maxX, minY, maxY, step float64, c colors.Color, width float64) {
	dc := r.surf.ctx()
	dc.SetRGBA(c.Floats())
	dc.SetLineWidth(width)
	for x := math.Floor(minX/step) * step; x <= maxX; x += step {
		a := r.view.WorldToScreen(geom.Vec2{X: x, Y: minY})
		b := r.view.WorldToScreen(geom.Vec2{X: x, Y: maxY})
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
	}
	for y := math.Floor(minY/step) * step; y <= maxY; y += step {
		a := r.view.WorldToScreen(geom.Vec2{X: minX, Y: y})
		b := r.view.WorldToScreen(geom.Vec2{X: maxX, Y: y})
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
	}
	dc.Stroke()
}

func (r *PlanRenderer) drawAxes() {
	w, h := r.surf.Size()
	dc := r.surf.ctx()
	origin := r.view.WorldToScreen(geom.Vec2{})

	dc.SetRGBA(colors.AxisX.Floats())
	dc.SetLineWidth(1.5)
	dc.DrawLine(0, origin.Y, float64(w), origin.Y)
	dc.Stroke()

	dc.SetRGBA(colors.AxisY.Floats())
	dc.DrawLine(origin.X, 0, origin.X, float64(h))
	dc.Stroke()
}

func (r *PlanRenderer) drawWall(o *scene.Object, selected bool) {
	dc := r.surf.ctx()
	a := r.view.WorldToScreen(o.Wall.Start.XY())
	b := r.view.WorldToScreen(o.Wall.End.XY())

	c := colors.WallFill
	if selected {
		c = colors.Selection
	}
	dc.SetRGBA(c.Floats())
	dc.SetLineWidth(math.Max(o.Wall.Thickness*r.view.Scale, 2))
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	dc.Stroke()

	// Endpoint markers.
	rad := math.Max(o.Wall.Thickness*r.view.Scale*0.75, 3)
	dc.DrawCircle(a.X, a.Y, rad)
	dc.DrawCircle(b.X, b.Y, rad)
	dc.Fill()
}

func (r *PlanRenderer) drawDoor(o *scene.Object, selected bool) {
	dc := r.surf.ctx()
	d := o.Door
	p := r.view.WorldToScreen(d.Position.XY())
	half := d.Width / 2 * r.view.Scale

	c := colors.DoorFill
	if selected {
		c = colors.Selection
	}
	dc.SetRGBA(c.Floats())
	dc.DrawRectangle(p.X-half, p.Y-half/3, half*2, half*2/3)
	dc.Fill()

	// Swing arc for hinged doors.
	if d.Swing != scene.SwingSliding {
		dc.SetLineWidth(1)
		dc.DrawArc(p.X-half, p.Y, half*2, -math.Pi/2, 0)
		dc.Stroke()
	}
}

func (r *PlanRenderer) drawVolume(o *scene.Object, selected bool) {
	dc := r.surf.ctx()
	b := o.Volume.Bounds
	tl := r.view.WorldToScreen(geom.Vec2{X: b.Min.X, Y: b.Max.Y})
	br := r.view.WorldToScreen(geom.Vec2{X: b.Max.X, Y: b.Min.Y})

	fill := colors.VolumeFill.WithAlpha(0.35)
	if selected {
		fill = colors.Selection.WithAlpha(0.35)
	}
	dc.SetRGBA(fill.Floats())
	dc.DrawRectangle(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
	dc.Fill()

	dc.SetRGBA(colors.VolumeFill.Floats())
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
	dc.Stroke()
}

func (r *PlanRenderer) drawPreview(p *input.WallPreview) {
	dc := r.surf.ctx()
	a := r.view.WorldToScreen(p.Start)
	b := r.view.WorldToScreen(p.End)
	dc.SetRGBA(colors.Selection.WithAlpha(0.8).Floats())
	dc.SetLineWidth(2)
	dc.SetDash(6, 4)
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	dc.Stroke()
	dc.SetDash()
}
