package core

import (
	"context"

	"github.com/Hendawy97/giraffe-demo/engine/events"
	"github.com/Hendawy97/giraffe-demo/engine/geom"
	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

// SDK is the capability set the host UI programs against. *Engine is the
// concrete implementation; alternative backends implement the same
// interface instead of branching on a runtime flag.
type SDK interface {
	LoadProject(ctx context.Context, projectID string) error

	SetMode(viewport.Mode)
	SetTool(input.Tool)

	AddWall(WallOptions) (string, error)
	AddDoor(DoorOptions) (string, error)
	UpdateObject(id string, props scene.Props) error
	DeleteObject(id string) error

	ZoomIn()
	ZoomOut()
	ResetView()
	FitToView()

	On(events.Name, events.Handler) events.Subscription
	Off(events.Subscription)

	Destroy()
}

// WallOptions creates a wall through the SDK. Zero Thickness takes the
// configured default.
type WallOptions struct {
	Start     geom.Vec3
	End       geom.Vec3
	Height    float64
	Thickness float64
	Material  string
	Color     string
}

// DoorOptions creates a door. WallID may be empty (free-standing door);
// zero Type means a single swing.
type DoorOptions struct {
	Position geom.Vec3
	Width    float64
	Height   float64
	WallID   string
	Type     scene.Swing
}

// ViewSnapshot is a read-only copy of the active view state, for status
// displays. Plan fields are meaningful in plan mode, camera fields in
// model mode.
type ViewSnapshot struct {
	Mode viewport.Mode

	Scale  float64
	Offset geom.Vec2

	Position geom.Vec3
	Target   geom.Vec3
	FOV      float64
}
