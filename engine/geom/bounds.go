package geom

import "math"

// Bounds is an axis-aligned bounding box in model space.
type Bounds struct {
	Min, Max Vec3
}

// EmptyBounds returns a box that expands from nothing.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

func (b Bounds) IsEmpty() bool { return b.Min.X > b.Max.X }

func (b Bounds) Extend(p Vec3) Bounds {
	return Bounds{
		Min: Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)},
		Max: Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)},
	}
}

func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius is half the diagonal, the sphere that encloses the box.
func (b Bounds) Radius() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Sub(b.Min).Len() * 0.5
}

// SegmentDistance returns the shortest distance from p to the segment a-b.
func SegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Sub(a.Add(ab.Scale(t))).Len()
}

// SegmentProject returns the parameter t in [0,1] of the closest point on a-b to p.
func SegmentProject(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return 0
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
