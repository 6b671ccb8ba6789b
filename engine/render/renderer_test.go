package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

func testObjects() []*scene.Object {
	return []*scene.Object{
		{
			ID:   "w1",
			Kind: scene.KindWall,
			Wall: &scene.Wall{Start: geom.Vec3{}, End: geom.Vec3{X: 20}, Height: 3, Thickness: 0.3},
		},
		{
			ID:   "d1",
			Kind: scene.KindDoor,
			Door: &scene.Door{Position: geom.Vec3{X: 5}, Width: 0.9, Height: 2.1, WallID: "w1", Swing: scene.SwingSingle},
		},
		{
			ID:   "v1",
			Kind: scene.KindVolume,
			Volume: &scene.Volume{Bounds: geom.Bounds{
				Min: geom.Vec3{X: 2, Y: 2},
				Max: geom.Vec3{X: 8, Y: 6, Z: 2.5},
			}},
		},
	}
}

func TestPlanRendererDrawsScene(t *testing.T) {
	view := viewport.NewPlanView(800, 600)
	r := NewPlanRenderer(view, 800, 600)
	defer r.Dispose()

	r.Render(Snapshot{
		Objects:  testObjects(),
		Selected: map[string]bool{"w1": true},
		Preview:  &input.WallPreview{Start: geom.Vec2{}, End: geom.Vec2{X: 5, Y: 5}},
	})

	img := r.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())

	// Wall centerline passes through the viewport center; off-grid corner
	// pixels stay paper.
	assert.NotEqual(t, img.At(5, 5), img.At(400, 300))
}

func TestPlanRendererLabelsMajorGridLines(t *testing.T) {
	view := viewport.NewPlanView(800, 600)
	r := NewPlanRenderer(view, 800, 600)
	defer r.Dispose()

	r.Render(Snapshot{})
	img := r.Image()
	paper := img.At(5, 5)

	// The "10" label sits centered under the major line at screen x=500.
	// Skip the grid-line rows/columns themselves (every 10px at this
	// scale) so only label glyphs can trip the check.
	found := false
	for y := 303; y <= 318 && !found; y++ {
		if y%10 == 0 {
			continue
		}
		for x := 492; x <= 508; x++ {
			if x%10 == 0 {
				continue
			}
			if img.At(x, y) != paper {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "major grid line coordinate label missing")
}

func TestPlanRendererEmptyScene(t *testing.T) {
	view := viewport.NewPlanView(200, 200)
	r := NewPlanRenderer(view, 200, 200)
	defer r.Dispose()

	r.Render(Snapshot{})
	require.NotNil(t, r.Image())
}

func TestPlanRendererResize(t *testing.T) {
	view := viewport.NewPlanView(400, 300)
	r := NewPlanRenderer(view, 400, 300)
	defer r.Dispose()

	r.Resize(640, 480)
	view.SetViewportPixels(640, 480)
	r.Render(Snapshot{Objects: testObjects()})
	assert.Equal(t, image.Rect(0, 0, 640, 480), r.Image().Bounds())

	// Same dimensions: buffer survives untouched.
	before := r.Image()
	r.Resize(640, 480)
	assert.Same(t, before, r.Image())
}

func TestModelRendererDrawsScene(t *testing.T) {
	view := viewport.NewModelView(800, 600)
	r := NewModelRenderer(view, 800, 600)
	defer r.Dispose()

	r.Render(Snapshot{
		Objects:  testObjects(),
		Selected: map[string]bool{"v1": true},
	})

	img := r.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())

	// The camera looks down at the origin: sky above, ground and geometry
	// around the center.
	assert.NotEqual(t, img.At(400, 5), img.At(400, 300))
}

func TestModelRendererHoverRotation(t *testing.T) {
	view := viewport.NewModelView(800, 600)
	r := NewModelRenderer(view, 800, 600)
	defer r.Dispose()

	// Rotating the hovered object must not disturb the rest of the frame.
	r.Render(Snapshot{Objects: testObjects(), HoverID: "w1", HoverAngle: 0.7})
	require.NotNil(t, r.Image())
}
