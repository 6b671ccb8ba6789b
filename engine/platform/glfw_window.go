package platform

import (
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"
)

// Event is the typed input stream a Window pushes to its handler.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// Pointer coordinates are framebuffer pixels.
type EventPointerMove struct{ X, Y float64 }

func (EventPointerMove) isEvent() {}

type EventPointerButton struct {
	Down bool
	X, Y float64
}

func (EventPointerButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff, X, Y float64 }

func (EventScroll) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
}

func (EventKey) isEvent() {}

// Key enum (subset; the viewer binds tools and view commands).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyTab
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyR
	KeyF
)

// Config for window creation.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window wraps a GLFW window and translates its callbacks into Events.
type Window struct {
	w    *glfw.Window
	onEv func(Event)
	log  *logrus.Logger
}

// NewWindow creates the window and GL context. Must be called on the main
// thread before any GL calls.
func NewWindow(cfg Config, log *logrus.Logger, onEvent func(Event)) (*Window, error) {
	runtime.LockOSThread()
	if log == nil {
		log = logrus.New()
	}
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("platform: GL context ready")

	gw := &Window{w: win, onEv: onEvent, log: log}

	win.SetCloseCallback(func(*glfw.Window) { gw.emit(EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		x, y = gw.toFramebuffer(x, y)
		gw.emit(EventPointerMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := gw.toFramebuffer(win.GetCursorPos())
		gw.emit(EventPointerButton{Down: action == glfw.Press, X: x, Y: y})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		x, y := gw.toFramebuffer(win.GetCursorPos())
		gw.emit(EventScroll{Xoff: xoff, Yoff: yoff, X: x, Y: y})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := translateKey(key)
		if k == KeyUnknown {
			return
		}
		gw.emit(EventKey{Key: k, Down: action != glfw.Release})
	})

	return gw, nil
}

func (g *Window) emit(ev Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// toFramebuffer converts cursor coordinates (window space) to framebuffer
// pixels. On HiDPI displays the two differ by the content scale, and the
// engine surface is sized in framebuffer pixels.
func (g *Window) toFramebuffer(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return x, y
	}
	return x * float64(fw) / float64(ww), y * float64(fh) / float64(wh)
}

func (g *Window) PollEvents()                     { glfw.PollEvents() }
func (g *Window) SwapBuffers()                    { g.w.SwapBuffers() }
func (g *Window) ShouldClose() bool               { return g.w.ShouldClose() }
func (g *Window) RequestClose()                   { g.w.SetShouldClose(true) }
func (g *Window) FramebufferSize() (int, int)     { return g.w.GetFramebufferSize() }
func (g *Window) SetTitle(t string)               { g.w.SetTitle(t) }
func (g *Window) SetEventCallback(cb func(Event)) { g.onEv = cb }

func translateKey(k glfw.Key) Key {
	switch k {
	case glfw.KeyEscape:
		return KeyEscape
	case glfw.KeyTab:
		return KeyTab
	case glfw.Key1:
		return Key1
	case glfw.Key2:
		return Key2
	case glfw.Key3:
		return Key3
	case glfw.Key4:
		return Key4
	case glfw.Key5:
		return Key5
	case glfw.KeyR:
		return KeyR
	case glfw.KeyF:
		return KeyF
	default:
		return KeyUnknown
	}
}
