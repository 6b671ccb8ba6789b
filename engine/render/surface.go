package render

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Hendawy97/giraffe-demo/engine/colors"
)

// Surface is the owned drawing target of a renderer: a CPU-side RGBA
// buffer behind a gg context. The host presents the image however it
// likes (the viewer blits it to a GL texture).
type Surface struct {
	dc   *gg.Context
	w, h int
}

func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.alloc(w, h)
	return s
}

func (s *Surface) alloc(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.w, s.h = w, h
	s.dc = gg.NewContext(w, h)
	s.dc.SetFontFace(basicfont.Face7x13)
}

// Resize reallocates the backing buffer. Unchanged dimensions are a no-op.
func (s *Surface) Resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.alloc(w, h)
}

func (s *Surface) Size() (int, int)    { return s.w, s.h }
func (s *Surface) Image() image.Image  { return s.dc.Image() }
func (s *Surface) ctx() *gg.Context    { return s.dc }

func (s *Surface) clear(c colors.Color) {
	s.dc.SetRGBA(c.Floats())
	s.dc.Clear()
}

// release drops the buffer so a disposed renderer cannot keep drawing.
func (s *Surface) release() { s.dc = nil }
