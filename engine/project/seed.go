package project

import (
	"github.com/Hendawy97/giraffe-demo/engine/config"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
)

// Footprint of the seeded sample building, world units.
const (
	seedWidth  = 20.0
	seedDepth  = 12.0
	slabHeight = 0.4
)

// Seed turns layer records into initial scene objects. Layer metadata only
// selects what gets created: wall layers become the building perimeter,
// structure layers become slabs stacked in record order. Hidden layers are
// skipped. The result is pre-validated; Seed never returns a degenerate
// object.
func Seed(layers []Layer, defaults config.ObjectsConfig) []*scene.Object {
	var out []*scene.Object
	level := 0.0
	for _, l := range layers {
		if !l.IsVisible {
			continue
		}
		switch l.LayerType {
		case "wall":
			out = append(out, perimeter(defaults, level)...)
		case "structure":
			out = append(out, &scene.Object{
				Kind: scene.KindVolume,
				Volume: &scene.Volume{Bounds: geom.Bounds{
					Min: geom.Vec3{X: -seedWidth / 2, Y: -seedDepth / 2, Z: level},
					Max: geom.Vec3{X: seedWidth / 2, Y: seedDepth / 2, Z: level + slabHeight},
				}},
				Style: scene.Style{Material: l.Name},
			})
			level += slabHeight
		}
	}
	return out
}

func perimeter(defaults config.ObjectsConfig, z float64) []*scene.Object {
	corners := []geom.Vec3{
		{X: -seedWidth / 2, Y: -seedDepth / 2, Z: z},
		{X: seedWidth / 2, Y: -seedDepth / 2, Z: z},
		{X: seedWidth / 2, Y: seedDepth / 2, Z: z},
		{X: -seedWidth / 2, Y: seedDepth / 2, Z: z},
	}
	walls := make([]*scene.Object, 0, 4)
	for i := range corners {
		walls = append(walls, &scene.Object{
			Kind: scene.KindWall,
			Wall: &scene.Wall{
				Start:     corners[i],
				End:       corners[(i+1)%4],
				Height:    defaults.WallHeight,
				Thickness: defaults.WallThickness,
			},
		})
	}
	return walls
}
