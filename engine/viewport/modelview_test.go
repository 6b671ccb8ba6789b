package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hendawy97/giraffe-demo/engine/geom"
)

func TestOrbitPreservesDistance(t *testing.T) {
	v := NewModelView(800, 600)
	dist := v.Position.Sub(v.Target).Len()

	v.Orbit(0.5, 0.2)
	assert.InDelta(t, dist, v.Position.Sub(v.Target).Len(), 1e-9)

	// Pitch clamps short of the pole.
	for i := 0; i < 100; i++ {
		v.Orbit(0, 0.3)
	}
	rel := v.Position.Sub(v.Target)
	pitch := math.Asin(rel.Z / rel.Len())
	assert.LessOrEqual(t, pitch, maxPitch+1e-9)
}

func TestDollyClamps(t *testing.T) {
	v := NewModelView(800, 600)

	for i := 0; i < 50; i++ {
		v.Dolly(0.5)
	}
	assert.InDelta(t, minDistance, v.Position.Sub(v.Target).Len(), 1e-9)

	for i := 0; i < 50; i++ {
		v.Dolly(3)
	}
	assert.InDelta(t, maxDistance, v.Position.Sub(v.Target).Len(), 1e-9)
}

func TestResetRestoresDefaultCamera(t *testing.T) {
	v := NewModelView(800, 600)
	v.Orbit(1, 0.4)
	v.Dolly(0.3)

	v.Reset()
	assert.Equal(t, DefaultCamera.Position, v.Position)
	assert.Equal(t, DefaultCamera.Target, v.Target)
	assert.Equal(t, DefaultCamera.FOV, v.FOV)
}

func TestFitFramesBounds(t *testing.T) {
	v := NewModelView(800, 600)
	b := geom.EmptyBounds().
		Extend(geom.Vec3{X: -10, Y: -10, Z: 0}).
		Extend(geom.Vec3{X: 10, Y: 10, Z: 5})

	v.Fit(b, FitMargin)
	assert.Equal(t, b.Center(), v.Target)

	// The framing distance scales with the bounding radius.
	expected := b.Radius() * FitMargin / math.Tan(v.FOV*math.Pi/360)
	assert.InDelta(t, expected, v.Position.Sub(v.Target).Len(), 1e-9)

	// Empty bounds fall back to the default camera.
	v.Fit(geom.EmptyBounds(), FitMargin)
	assert.Equal(t, DefaultCamera.Position, v.Position)
}

func TestProjectRoundTripThroughGround(t *testing.T) {
	v := NewModelView(800, 600)
	world := geom.Vec3{X: 4, Y: -2, Z: 0}

	screen, depth, ok := v.Project(world)
	require.True(t, ok)
	assert.Positive(t, depth)

	back, ok := v.UnprojectGround(screen)
	require.True(t, ok)
	assert.InDelta(t, world.X, back.X, 1e-6)
	assert.InDelta(t, world.Y, back.Y, 1e-6)
}

func TestProjectBehindCamera(t *testing.T) {
	v := NewModelView(800, 600)
	behind := v.Position.Add(v.Position.Sub(v.Target))
	_, _, ok := v.Project(behind)
	assert.False(t, ok)
}

func TestUnprojectGroundMissesSky(t *testing.T) {
	v := NewModelView(800, 600)
	// Top of the screen looks above the horizon from the default camera.
	_, ok := v.UnprojectGround(geom.Vec2{X: 400, Y: -10000})
	assert.False(t, ok)
}
