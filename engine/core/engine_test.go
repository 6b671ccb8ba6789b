package core

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/project"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

type failingLoader struct{ err error }

func (l failingLoader) LoadLayers(ctx context.Context, projectID string) ([]project.Layer, error) {
	return nil, &project.LoadError{ProjectID: projectID, Cause: l.err}
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Width == 0 {
		opts.Width, opts.Height = 800, 600
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	eng, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(eng.Destroy)
	return eng
}

func TestNewRejectsMissingSurface(t *testing.T) {
	_, err := New(Options{Width: 0, Height: 600})
	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)

	_, err = New(Options{Width: 800, Height: -1})
	assert.Error(t, err)
}

func TestAddWallThroughSDK(t *testing.T) {
	eng := newTestEngine(t, Options{Mode: viewport.ModePlan})
	added := 0
	eng.On(events.ObjectAdded, func(events.Event) { added++ })

	id, err := eng.AddWall(WallOptions{
		Start:  geom.Vec3{},
		End:    geom.Vec3{X: 20},
		Height: 15,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.Len(t, eng.Objects(), 1)
	assert.Equal(t, 1, added)
	// Unspecified thickness takes the configured default.
	assert.InDelta(t, 0.3, eng.Objects()[0].Wall.Thickness, 1e-9)
}

func TestShortDrawWallDragCreatesNothing(t *testing.T) {
	eng := newTestEngine(t, Options{})
	eng.SetTool(input.ToolDrawWall)

	eng.PointerDown(400, 300)
	eng.PointerUp(401, 300)

	assert.Empty(t, eng.Objects())
}

func TestModeSwitchPreservesSelection(t *testing.T) {
	eng := newTestEngine(t, Options{})
	_, err := eng.AddWall(WallOptions{Start: geom.Vec3{}, End: geom.Vec3{X: 20}, Height: 3})
	require.NoError(t, err)

	// Select by clicking the wall at the viewport center.
	eng.PointerDown(400, 300)
	eng.PointerUp(400, 300)
	require.Len(t, eng.Selection(), 1)
	selected := eng.Selection()

	eng.SetMode(viewport.ModeModel)
	eng.SetMode(viewport.ModePlan)

	assert.Equal(t, selected, eng.Selection())
	assert.Equal(t, viewport.ModePlan, eng.Mode())
}

func TestZoomInClampsAtMaxScale(t *testing.T) {
	eng := newTestEngine(t, Options{})
	for i := 0; i < 100; i++ {
		eng.ZoomIn()
	}
	snap := eng.ViewSnapshot()
	assert.Equal(t, viewport.ModePlan, snap.Mode)
	assert.InDelta(t, viewport.MaxScale, snap.Scale, 1e-9)
}

func TestLoadProjectSeedsScene(t *testing.T) {
	eng := newTestEngine(t, Options{})
	var loaded *events.ProjectLoadedPayload
	eng.On(events.ProjectLoaded, func(ev events.Event) {
		p := ev.Payload.(events.ProjectLoadedPayload)
		loaded = &p
	})

	require.NoError(t, eng.LoadProject(context.Background(), "demo"))

	require.NotNil(t, loaded)
	assert.Equal(t, "demo", loaded.ProjectID)
	assert.Equal(t, 3, loaded.LayerCount)
	assert.Len(t, eng.Objects(scene.KindWall), 4)
	assert.Len(t, eng.Objects(scene.KindVolume), 1)
}

func TestLoadProjectFailureKeepsEngineUsable(t *testing.T) {
	eng := newTestEngine(t, Options{Loader: failingLoader{err: errors.New("service down")}})
	_, err := eng.AddWall(WallOptions{Start: geom.Vec3{}, End: geom.Vec3{X: 5}, Height: 3})
	require.NoError(t, err)

	var errEvents int
	eng.On(events.Error, func(events.Event) { errEvents++ })

	err = eng.LoadProject(context.Background(), "p-1")
	var loadErr *project.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, errEvents)

	// Existing scene untouched, engine still mutable.
	assert.Len(t, eng.Objects(), 1)
	_, err = eng.AddWall(WallOptions{Start: geom.Vec3{Y: 1}, End: geom.Vec3{X: 5, Y: 1}, Height: 3})
	assert.NoError(t, err)
}

func TestStepCoalescesMutations(t *testing.T) {
	eng := newTestEngine(t, Options{})
	eng.Step(0.016) // drain the construction frame

	for i := 0; i < 3; i++ {
		_, err := eng.AddWall(WallOptions{
			Start:  geom.Vec3{Y: float64(i)},
			End:    geom.Vec3{X: 10, Y: float64(i)},
			Height: 3,
		})
		require.NoError(t, err)
	}

	assert.True(t, eng.Step(0.016), "burst of mutations renders one frame")
	assert.False(t, eng.Step(0.016), "no changes, no frame")
}

func TestResizeUnchangedOnlyRedraws(t *testing.T) {
	eng := newTestEngine(t, Options{})
	eng.Step(0.016)

	eng.Resize(800, 600)
	assert.True(t, eng.Step(0.016))

	eng.Resize(1024, 768)
	assert.True(t, eng.Step(0.016))
	assert.Equal(t, 1024, eng.Frame().Bounds().Dx())
}

func TestSetModeSwapsRenderer(t *testing.T) {
	eng := newTestEngine(t, Options{})
	eng.Step(0.016)

	changed := 0
	eng.On(events.ModeChanged, func(events.Event) { changed++ })

	eng.SetMode(viewport.ModeModel)
	assert.Equal(t, 1, changed)
	assert.True(t, eng.Step(0.016))

	// Same mode again: no event, no frame.
	eng.SetMode(viewport.ModeModel)
	assert.Equal(t, 1, changed)
	assert.False(t, eng.Step(0.016))
}

func TestHoverPickingInModelMode(t *testing.T) {
	eng := newTestEngine(t, Options{Mode: viewport.ModeModel})
	require.NoError(t, eng.LoadProject(context.Background(), "demo"))
	eng.FitToView()
	eng.Step(0.016)

	// The camera looks at the scene center; the cursor at the viewport
	// center lands on seeded geometry.
	eng.PointerMove(400, 300)
	assert.True(t, eng.Step(0.1), "hovered object keeps the loop animating")
	assert.True(t, eng.Step(0.1))
}

func TestDestroyIsIdempotent(t *testing.T) {
	eng := newTestEngine(t, Options{})
	fired := 0
	eng.On(events.ObjectAdded, func(events.Event) { fired++ })

	eng.Destroy()
	eng.Destroy()

	// Handlers are gone and the loop is stopped.
	_, err := eng.AddWall(WallOptions{Start: geom.Vec3{}, End: geom.Vec3{X: 5}, Height: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, fired)
	assert.False(t, eng.Step(0.016))
}
