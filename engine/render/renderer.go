package render

import (
	"image"

	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/scene"
)

// Snapshot is everything a renderer reads for one frame. It is a copy:
// renderers never reach into live engine state.
type Snapshot struct {
	Objects  []*scene.Object
	Selected map[string]bool

	// Preview is the uncommitted draw-wall endpoint, plan mode only.
	Preview *input.WallPreview

	// HoverID and HoverAngle drive the model view's idle rotation of the
	// object under the pointer.
	HoverID    string
	HoverAngle float64
}

// Renderer draws frames into an owned surface. Implementations: the plan
// (top-down orthographic) and model (perspective) renderers. A renderer is
// constructed per mode and disposed when the mode switches.
type Renderer interface {
	Render(snap Snapshot)
	Resize(w, h int)
	Dispose()
	Image() image.Image
}
