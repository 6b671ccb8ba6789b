package colors

// Color is RGBA in [0,1], the form the drawing surface consumes.
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}

	// Architectural palette.
	Paper      = Color{0.97, 0.97, 0.95, 1} // plan background
	GridMinor  = Color{0.88, 0.89, 0.90, 1}
	GridMajor  = Color{0.76, 0.78, 0.80, 1}
	GridLabel  = Color{0.45, 0.48, 0.52, 1}
	AxisX      = Color{0.80, 0.25, 0.25, 1}
	AxisY      = Color{0.25, 0.60, 0.30, 1}
	WallFill   = Color{0.25, 0.27, 0.30, 1}
	WallLight  = Color{0.62, 0.64, 0.68, 1} // model-view wall faces
	DoorFill   = Color{0.65, 0.45, 0.25, 1}
	VolumeFill = Color{0.55, 0.60, 0.68, 1}
	Selection  = Color{0.20, 0.55, 0.90, 1}
	Sky        = Color{0.12, 0.14, 0.18, 1} // model background
	Ground     = Color{0.20, 0.22, 0.25, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Floats returns the components as float64, the form gg takes.
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])
}

// Shade scales the RGB components, for simple lambert-style lighting.
func (c Color) Shade(k float32) Color {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	return Color{c[0] * k, c[1] * k, c[2] * k, c[3]}
}
