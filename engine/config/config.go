// Package config holds tunable engine defaults: tool thresholds, zoom
// behavior, and default object dimensions. Values load from a YAML file
// merged over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration.
type Config struct {
	Tools   ToolsConfig   `yaml:"tools"`
	Zoom    ZoomConfig    `yaml:"zoom"`
	Objects ObjectsConfig `yaml:"objects"`
	Logging LoggingConfig `yaml:"logging"`
}

// ToolsConfig tunes pointer interaction.
type ToolsConfig struct {
	// MinWallDragPx is the minimum pointer travel, in pixels, before a
	// draw-wall gesture commits. Shorter drags cancel.
	MinWallDragPx float64 `yaml:"min_wall_drag_px"`
	// HitTolerancePx pads hit-testing, converted to world units by the
	// current scale.
	HitTolerancePx float64 `yaml:"hit_tolerance_px"`
	// DoorSnapPx is how far, in pixels, a draw-door click may land from a
	// wall and still snap onto it.
	DoorSnapPx float64 `yaml:"door_snap_px"`
}

// ZoomConfig tunes discrete zoom steps. The scale clamp itself is fixed.
type ZoomConfig struct {
	Step float64 `yaml:"step"` // multiplicative factor per ZoomIn/ZoomOut
}

// ObjectsConfig provides dimensions for objects created without explicit
// sizes (draw tools, seeded layers).
type ObjectsConfig struct {
	WallHeight    float64 `yaml:"wall_height"`
	WallThickness float64 `yaml:"wall_thickness"`
	DoorWidth     float64 `yaml:"door_width"`
	DoorHeight    float64 `yaml:"door_height"`
}

// LoggingConfig mirrors the usual level/format pair.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tools: ToolsConfig{
			MinWallDragPx:  8,
			HitTolerancePx: 6,
			DoorSnapPx:     12,
		},
		Zoom: ZoomConfig{Step: 1.2},
		Objects: ObjectsConfig{
			WallHeight:    3,
			WallThickness: 0.3,
			DoorWidth:     0.9,
			DoorHeight:    2.1,
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads path and merges it over the defaults. A missing file is an
// error; call Default directly when no file is configured.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Zoom.Step <= 1 {
		return fmt.Errorf("config: zoom.step must be > 1, got %v", c.Zoom.Step)
	}
	if c.Objects.WallHeight <= 0 || c.Objects.WallThickness <= 0 {
		return fmt.Errorf("config: objects wall defaults must be positive")
	}
	if c.Objects.DoorWidth <= 0 || c.Objects.DoorHeight <= 0 {
		return fmt.Errorf("config: objects door defaults must be positive")
	}
	return nil
}
