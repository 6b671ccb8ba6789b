package render

import (
	"image"
	"math"
	"sort"

	"github.com/Hendawy97/giraffe-demo/engine/colors"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

const groundExtent = 40 // half-size of the ground grid, world units

// Fixed directional light plus ambient floor for lambert shading.
var (
	lightDir     = geom.Vec3{X: -0.5, Y: 0.3, Z: -0.8}.Normalized()
	ambientLight = float32(0.35)
)

// face is one quad of an extruded box, ready for painter's-order fill.
type face struct {
	pts    [4]geom.Vec3
	color  colors.Color
	normal geom.Vec3
}

// ModelRenderer draws the perspective model view: ground grid, lit extruded
// boxes for walls and volumes, door panels, and idle rotation of the
// hovered object. Pure CPU projection through the model view camera.
type ModelRenderer struct {
	view *viewport.ModelView
	surf *Surface
}

func NewModelRenderer(view *viewport.ModelView, w, h int) *ModelRenderer {
	return &ModelRenderer{view: view, surf: NewSurface(w, h)}
}

func (r *ModelRenderer) Resize(w, h int) { r.surf.Resize(w, h) }
func (r *ModelRenderer) Dispose()        { r.surf.release() }
func (r *ModelRenderer) Image() image.Image {
	return r.surf.Image()
}

func (r *ModelRenderer) Render(snap Snapshot) {
	r.surf.clear(colors.Sky)
	r.drawGround()

	var faces []face
	for _, o := range snap.Objects {
		c := baseColor(o)
		if snap.Selected[o.ID] {
			c = colors.Selection
		}
		angle := 0.0
		if o.ID == snap.HoverID {
			angle = snap.HoverAngle
		}
		faces = append(faces, objectFaces(o, c, angle)...)
	}
	r.drawFaces(faces)
}

func (r *ModelRenderer) drawGround() {
	dc := r.surf.ctx()
	dc.SetRGBA(colors.Ground.Floats())
	dc.SetLineWidth(1)
	for i := -groundExtent; i <= groundExtent; i++ {
		r.line3(geom.Vec3{X: float64(i), Y: -groundExtent}, geom.Vec3{X: float64(i), Y: groundExtent})
		r.line3(geom.Vec3{X: -groundExtent, Y: float64(i)}, geom.Vec3{X: groundExtent, Y: float64(i)})
	}
	dc.Stroke()
}

func (r *ModelRenderer) line3(a, b geom.Vec3) {
	pa, _, oka := r.view.Project(a)
	pb, _, okb := r.view.Project(b)
	if !oka || !okb {
		return
	}
	r.surf.ctx().DrawLine(pa.X, pa.Y, pb.X, pb.Y)
}

// drawFaces shades, depth-sorts and fills. Painter's order is exact enough
// for disjoint convex boxes.
func (r *ModelRenderer) drawFaces(faces []face) {
	type projected struct {
		pts   [4]geom.Vec2
		depth float64
		color colors.Color
	}
	out := make([]projected, 0, len(faces))
	for _, f := range faces {
		var p projected
		ok := true
		depth := 0.0
		for i, v := range f.pts {
			pt, d, vis := r.view.Project(v)
			if !vis {
				ok = false
				break
			}
			p.pts[i] = pt
			depth += d
		}
		if !ok {
			continue
		}
		// Backface cull against the view direction.
		viewDir := f.pts[0].Sub(r.view.Position).Normalized()
		if f.normal.Dot(viewDir) > 0 {
			continue
		}
		lambert := float32(math.Max(0, -f.normal.Dot(lightDir)))
		shade := ambientLight + (1-ambientLight)*lambert
		p.color = f.color.Shade(shade)
		p.depth = depth / 4
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].depth > out[j].depth })

	dc := r.surf.ctx()
	for _, p := range out {
		dc.SetRGBA(p.color.Floats())
		dc.MoveTo(p.pts[0].X, p.pts[0].Y)
		for _, pt := range p.pts[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.ClosePath()
		dc.Fill()
	}
}

func baseColor(o *scene.Object) colors.Color {
	switch o.Kind {
	case scene.KindDoor:
		return colors.DoorFill
	case scene.KindVolume:
		return colors.VolumeFill
	default:
		return colors.WallLight
	}
}

// objectFaces turns an object into the quads of its extruded box, rotated
// around its footprint center by angle (the hover idle rotation).
func objectFaces(o *scene.Object, c colors.Color, angle float64) []face {
	switch o.Kind {
	case scene.KindWall:
		w := o.Wall
		dir := w.End.XY().Sub(w.Start.XY()).Normalized()
		n := geom.Vec2{X: -dir.Y, Y: dir.X}.Scale(w.Thickness / 2)
		quad := [4]geom.Vec2{
			w.Start.XY().Sub(n),
			w.End.XY().Sub(n),
			w.End.XY().Add(n),
			w.Start.XY().Add(n),
		}
		return boxFaces(quad, w.Start.Z, w.Start.Z+w.Height, c, angle)
	case scene.KindDoor:
		d := o.Door
		half := d.Width / 2
		const leaf = 0.06 // panel half-thickness
		quad := [4]geom.Vec2{
			{X: d.Position.X - half, Y: d.Position.Y - leaf},
			{X: d.Position.X + half, Y: d.Position.Y - leaf},
			{X: d.Position.X + half, Y: d.Position.Y + leaf},
			{X: d.Position.X - half, Y: d.Position.Y + leaf},
		}
		return boxFaces(quad, d.Position.Z, d.Position.Z+d.Height, c, angle)
	case scene.KindVolume:
		b := o.Volume.Bounds
		quad := [4]geom.Vec2{
			{X: b.Min.X, Y: b.Min.Y},
			{X: b.Max.X, Y: b.Min.Y},
			{X: b.Max.X, Y: b.Max.Y},
			{X: b.Min.X, Y: b.Max.Y},
		}
		return boxFaces(quad, b.Min.Z, b.Max.Z, c, angle)
	}
	return nil
}

// boxFaces extrudes a counter-clockwise footprint quad from z0 to z1.
func boxFaces(quad [4]geom.Vec2, z0, z1 float64, c colors.Color, angle float64) []face {
	if angle != 0 {
		var cx, cy float64
		for _, p := range quad {
			cx += p.X / 4
			cy += p.Y / 4
		}
		sin, cos := math.Sin(angle), math.Cos(angle)
		for i, p := range quad {
			dx, dy := p.X-cx, p.Y-cy
			quad[i] = geom.Vec2{X: cx + dx*cos - dy*sin, Y: cy + dx*sin + dy*cos}
		}
	}

	at := func(i int, z float64) geom.Vec3 {
		return geom.Vec3{X: quad[i].X, Y: quad[i].Y, Z: z}
	}
	faces := make([]face, 0, 6)
	// Side walls.
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		edge := quad[j].Sub(quad[i])
		normal := geom.Vec3{X: edge.Y, Y: -edge.X}.Normalized()
		faces = append(faces, face{
			pts:    [4]geom.Vec3{at(i, z0), at(j, z0), at(j, z1), at(i, z1)},
			color:  c,
			normal: normal,
		})
	}
	// Top and bottom.
	faces = append(faces,
		face{
			pts:    [4]geom.Vec3{at(0, z1), at(1, z1), at(2, z1), at(3, z1)},
			color:  c,
			normal: geom.Vec3{Z: 1},
		},
		face{
			pts:    [4]geom.Vec3{at(3, z0), at(2, z0), at(1, z0), at(0, z0)},
			color:  c,
			normal: geom.Vec3{Z: -1},
		},
	)
	return faces
}
