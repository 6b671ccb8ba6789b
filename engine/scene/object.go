package scene

import (
	"math"

	"github.com/Hendawy97/giraffe-demo/engine/geom"
)

// Kind discriminates the geometry carried by an Object.
type Kind string

const (
	KindWall   Kind = "wall"
	KindDoor   Kind = "door"
	KindVolume Kind = "volume"
)

// Swing is how a door opens.
type Swing string

const (
	SwingSingle  Swing = "single"
	SwingDouble  Swing = "double"
	SwingSliding Swing = "sliding"
)

// Wall runs from Start to End on the ground plane and extrudes up by Height.
type Wall struct {
	Start     geom.Vec3
	End       geom.Vec3
	Height    float64
	Thickness float64
}

func (w Wall) Length() float64 { return w.End.Sub(w.Start).Len() }

// Door sits at Position. WallID, when non-empty, references the owning wall.
type Door struct {
	Position geom.Vec3
	Width    float64
	Height   float64
	WallID   string
	Swing    Swing
}

// Volume is a generic structural box.
type Volume struct {
	Bounds geom.Bounds
}

// Style carries presentation attributes. Empty fields mean renderer defaults.
type Style struct {
	Color    string
	Material string
}

// Object is one scene entity. Exactly one of Wall/Door/Volume is set,
// matching Kind. Objects are owned by the Store; callers get copies.
type Object struct {
	ID     string
	Kind   Kind
	Wall   *Wall
	Door   *Door
	Volume *Volume
	Style  Style
}

const minWallLength = 1e-9

// Validate rejects degenerate geometry. The store calls this before any
// state write so a failed mutation leaves the scene untouched.
func (o *Object) Validate() error {
	switch o.Kind {
	case KindWall:
		if o.Wall == nil {
			return &ValidationError{Field: "geometry", Reason: "wall geometry missing"}
		}
		if !finite(o.Wall.Start.X, o.Wall.Start.Y, o.Wall.Start.Z, o.Wall.End.X, o.Wall.End.Y, o.Wall.End.Z, o.Wall.Height, o.Wall.Thickness) {
			return &ValidationError{Field: "geometry", Reason: "non-finite coordinate"}
		}
		if o.Wall.Length() < minWallLength {
			return &ValidationError{Field: "end", Reason: "zero-length wall"}
		}
		if o.Wall.Height <= 0 {
			return &ValidationError{Field: "height", Reason: "must be positive"}
		}
		if o.Wall.Thickness <= 0 {
			return &ValidationError{Field: "thickness", Reason: "must be positive"}
		}
	case KindDoor:
		if o.Door == nil {
			return &ValidationError{Field: "geometry", Reason: "door geometry missing"}
		}
		if !finite(o.Door.Position.X, o.Door.Position.Y, o.Door.Position.Z, o.Door.Width, o.Door.Height) {
			return &ValidationError{Field: "geometry", Reason: "non-finite coordinate"}
		}
		if o.Door.Width <= 0 || o.Door.Height <= 0 {
			return &ValidationError{Field: "size", Reason: "zero-area door"}
		}
	case KindVolume:
		if o.Volume == nil {
			return &ValidationError{Field: "geometry", Reason: "volume geometry missing"}
		}
		b := o.Volume.Bounds
		if b.IsEmpty() || b.Max.Sub(b.Min).Len() < minWallLength {
			return &ValidationError{Field: "bounds", Reason: "zero-volume box"}
		}
	default:
		return &ValidationError{Field: "kind", Reason: "unknown kind"}
	}
	return nil
}

// Bounds returns the object's extent in model space.
func (o *Object) Bounds() geom.Bounds {
	switch o.Kind {
	case KindWall:
		w := o.Wall
		half := w.Thickness / 2
		b := geom.EmptyBounds()
		for _, p := range []geom.Vec3{w.Start, w.End} {
			b = b.Extend(geom.Vec3{X: p.X - half, Y: p.Y - half, Z: p.Z})
			b = b.Extend(geom.Vec3{X: p.X + half, Y: p.Y + half, Z: p.Z + w.Height})
		}
		return b
	case KindDoor:
		d := o.Door
		half := d.Width / 2
		b := geom.EmptyBounds()
		b = b.Extend(geom.Vec3{X: d.Position.X - half, Y: d.Position.Y - half, Z: d.Position.Z})
		b = b.Extend(geom.Vec3{X: d.Position.X + half, Y: d.Position.Y + half, Z: d.Position.Z + d.Height})
		return b
	case KindVolume:
		return o.Volume.Bounds
	}
	return geom.EmptyBounds()
}

// Clone deep-copies the object so store internals never escape.
func (o *Object) Clone() *Object {
	c := *o
	if o.Wall != nil {
		w := *o.Wall
		c.Wall = &w
	}
	if o.Door != nil {
		d := *o.Door
		c.Door = &d
	}
	if o.Volume != nil {
		v := *o.Volume
		c.Volume = &v
	}
	return &c
}

// Translate moves the object by (dx, dy) on the ground plane. Used by the
// move tool; dz is always zero there.
func (o *Object) Translate(dx, dy float64) {
	d := geom.Vec3{X: dx, Y: dy}
	switch o.Kind {
	case KindWall:
		o.Wall.Start = o.Wall.Start.Add(d)
		o.Wall.End = o.Wall.End.Add(d)
	case KindDoor:
		o.Door.Position = o.Door.Position.Add(d)
	case KindVolume:
		o.Volume.Bounds.Min = o.Volume.Bounds.Min.Add(d)
		o.Volume.Bounds.Max = o.Volume.Bounds.Max.Add(d)
	}
}

// NaN guards for option structs built from external input.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
