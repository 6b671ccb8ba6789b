package input

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
)

func newTestScene(t *testing.T) *scene.Store {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return scene.NewStore(events.NewBus(log), log)
}

func addWall(t *testing.T, store *scene.Store, start, end geom.Vec3, thickness float64) string {
	t.Helper()
	id, err := store.Add(&scene.Object{
		Kind: scene.KindWall,
		Wall: &scene.Wall{Start: start, End: end, Height: 3, Thickness: thickness},
	})
	require.NoError(t, err)
	return id
}

func TestWallHit(t *testing.T) {
	store := newTestScene(t)
	id := addWall(t, store, geom.Vec3{}, geom.Vec3{X: 20}, 0.3)

	// Inside thickness/2.
	assert.Equal(t, id, HitTest(store, geom.Vec2{X: 10, Y: 0.1}, 0))
	// Far off the centerline.
	assert.Empty(t, HitTest(store, geom.Vec2{X: 10, Y: 5}, 0))
	// Tolerance pads the hit zone.
	assert.Equal(t, id, HitTest(store, geom.Vec2{X: 10, Y: 0.5}, 0.4))
}

func TestTopmostWins(t *testing.T) {
	store := newTestScene(t)
	addWall(t, store, geom.Vec3{}, geom.Vec3{X: 20}, 0.3)
	top := addWall(t, store, geom.Vec3{}, geom.Vec3{X: 20}, 0.3)

	assert.Equal(t, top, HitTest(store, geom.Vec2{X: 10}, 0))
}

func TestDoorFootprintHit(t *testing.T) {
	store := newTestScene(t)
	id, err := store.Add(&scene.Object{
		Kind: scene.KindDoor,
		Door: &scene.Door{Position: geom.Vec3{X: 5, Y: 5}, Width: 1, Height: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, id, HitTest(store, geom.Vec2{X: 5.3, Y: 5.5}, 0))
	assert.Empty(t, HitTest(store, geom.Vec2{X: 6, Y: 5}, 0))
}

func TestVolumeHit(t *testing.T) {
	store := newTestScene(t)
	id, err := store.Add(&scene.Object{
		Kind: scene.KindVolume,
		Volume: &scene.Volume{Bounds: geom.Bounds{
			Min: geom.Vec3{X: -5, Y: -5},
			Max: geom.Vec3{X: 5, Y: 5, Z: 2},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, id, HitTest(store, geom.Vec2{X: 0, Y: 0}, 0))
	assert.Empty(t, HitTest(store, geom.Vec2{X: 10, Y: 0}, 0))
}

func TestNearestWallSnapsOntoCenterline(t *testing.T) {
	store := newTestScene(t)
	id := addWall(t, store, geom.Vec3{}, geom.Vec3{X: 20}, 0.3)

	got, pos, ok := NearestWall(store, geom.Vec2{X: 7, Y: 0.4}, 1.0)
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.InDelta(t, 7.0, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)

	_, _, ok = NearestWall(store, geom.Vec2{X: 7, Y: 10}, 1.0)
	assert.False(t, ok)
}
