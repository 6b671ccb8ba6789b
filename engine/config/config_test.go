package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 8.0, cfg.Tools.MinWallDragPx)
	assert.Equal(t, 6.0, cfg.Tools.HitTolerancePx)
	assert.Equal(t, 12.0, cfg.Tools.DoorSnapPx)
	assert.Equal(t, 1.2, cfg.Zoom.Step)
	assert.Equal(t, 3.0, cfg.Objects.WallHeight)
	assert.Equal(t, 0.3, cfg.Objects.WallThickness)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
tools:
  min_wall_drag_px: 16
zoom:
  step: 1.5
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 16.0, cfg.Tools.MinWallDragPx)
	assert.Equal(t, 1.5, cfg.Zoom.Step)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, 6.0, cfg.Tools.HitTolerancePx)
	assert.Equal(t, 0.9, cfg.Objects.DoorWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"zoom step too small": "zoom:\n  step: 1.0\n",
		"zero wall height":    "objects:\n  wall_height: 0\n",
		"negative door width": "objects:\n  door_width: -1\n",
		"broken yaml":         "tools: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
