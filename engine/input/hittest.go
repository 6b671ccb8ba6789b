package input

import (
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
)

// HitTest returns the id of the topmost object under the world-space point
// p, or "" when nothing is hit. tolerance is in world units (the caller
// converts the pixel tolerance by the current scale). Later-added objects
// win, matching draw order.
func HitTest(store *scene.Store, p geom.Vec2, tolerance float64) string {
	objs := store.List()
	for i := len(objs) - 1; i >= 0; i-- {
		if hitObject(objs[i], p, tolerance) {
			return objs[i].ID
		}
	}
	return ""
}

func hitObject(o *scene.Object, p geom.Vec2, tolerance float64) bool {
	switch o.Kind {
	case scene.KindWall:
		w := o.Wall
		d := geom.SegmentDistance(p, w.Start.XY(), w.End.XY())
		return d <= w.Thickness/2+tolerance
	case scene.KindDoor:
		d := o.Door
		dx := p.X - d.Position.X
		dy := p.Y - d.Position.Y
		return dx >= -d.Width/2-tolerance && dx <= d.Width/2+tolerance &&
			dy >= -d.Height/2-tolerance && dy <= d.Height/2+tolerance
	case scene.KindVolume:
		b := o.Volume.Bounds
		return p.X >= b.Min.X-tolerance && p.X <= b.Max.X+tolerance &&
			p.Y >= b.Min.Y-tolerance && p.Y <= b.Max.Y+tolerance
	}
	return false
}

// NearestWall finds the wall closest to p within maxDist (world units) and
// the position on its centerline, for door snapping. ok is false when no
// wall qualifies.
func NearestWall(store *scene.Store, p geom.Vec2, maxDist float64) (id string, pos geom.Vec3, ok bool) {
	best := maxDist
	for _, o := range store.List(scene.KindWall) {
		w := o.Wall
		a, b := w.Start.XY(), w.End.XY()
		d := geom.SegmentDistance(p, a, b)
		if d <= best {
			best = d
			t := geom.SegmentProject(p, a, b)
			on := a.Add(b.Sub(a).Scale(t))
			id = o.ID
			pos = geom.Vec3{X: on.X, Y: on.Y, Z: w.Start.Z}
			ok = true
		}
	}
	return id, pos, ok
}
