// Command viewer hosts the engine in a desktop window: it feeds pointer,
// wheel and key input into the engine and presents the rendered frames.
//
// Keys: 1-5 select tools, Tab toggles plan/model, R resets the view,
// F fits the scene, Escape quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Hendawy97/giraffe-demo/engine/config"
	"github.com/Hendawy97/giraffe-demo/engine/core"
	"github.com/Hendawy97/giraffe-demo/engine/events"
	glbackend "github.com/Hendawy97/giraffe-demo/engine/gfx/gl"
	"github.com/Hendawy97/giraffe-demo/engine/input"
	"github.com/Hendawy97/giraffe-demo/engine/platform"
	"github.com/Hendawy97/giraffe-demo/engine/project"
	"github.com/Hendawy97/giraffe-demo/engine/viewport"
)

func main() {
	var (
		configPath = flag.String("config", "", "engine config file (YAML)")
		serverURL  = flag.String("server", "", "project service base URL; empty uses built-in demo data")
		projectID  = flag.String("project", "demo", "project to load on startup")
		width      = flag.Int("width", 1280, "window width")
		height     = flag.Int("height", 720, "window height")
	)
	flag.Parse()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.WithError(err).Fatal("viewer: loading config")
		}
	}

	var loader project.Loader = project.DemoLoader{}
	if *serverURL != "" {
		loader = project.NewHTTPLoader(*serverURL)
	}

	if err := run(cfg, loader, *projectID, *width, *height, log); err != nil {
		log.WithError(err).Fatal("viewer: exiting")
	}
}

func run(cfg config.Config, loader project.Loader, projectID string, width, height int, log *logrus.Logger) error {
	eng, err := core.New(core.Options{
		Width:  width,
		Height: height,
		Mode:   viewport.ModePlan,
		Tool:   input.ToolSelect,
		Loader: loader,
		Config: &cfg,
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer eng.Destroy()

	win, err := platform.NewWindow(platform.Config{
		Title:  "giraffe viewer",
		Width:  width,
		Height: height,
		VSync:  true,
	}, log, nil)
	if err != nil {
		return err
	}
	blit, err := glbackend.NewBlitter()
	if err != nil {
		return err
	}
	defer blit.Shutdown()

	win.SetEventCallback(func(ev platform.Event) {
		handleEvent(eng, win, ev)
		if e, ok := ev.(platform.EventResize); ok && e.W > 0 && e.H > 0 {
			blit.Resize(e.W, e.H)
		}
	})

	fw, fh := win.FramebufferSize()
	blit.Resize(fw, fh)
	eng.Resize(fw, fh)

	// Title reflects mode and selection; live updates via the event bus.
	sub := eng.On(events.ModeChanged, func(ev events.Event) {
		p := ev.Payload.(events.ModeChangedPayload)
		win.SetTitle(fmt.Sprintf("giraffe viewer [%s]", p.Mode))
	})
	defer eng.Off(sub)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := eng.LoadProject(ctx, projectID); err != nil {
		// Recoverable: keep running with an empty scene.
		log.WithError(err).Warn("viewer: project load failed")
	}
	cancel()
	eng.FitToView()

	prev := time.Now()
	for !win.ShouldClose() {
		now := time.Now()
		dt := now.Sub(prev).Seconds()
		prev = now

		win.PollEvents()
		eng.Step(dt)
		blit.Blit(eng.Frame())
		win.SwapBuffers()
	}
	return nil
}

func handleEvent(eng *core.Engine, win *platform.Window, ev platform.Event) {
	switch e := ev.(type) {
	case platform.EventResize:
		if e.W < 1 || e.H < 1 {
			return
		}
		eng.Resize(e.W, e.H)
	case platform.EventPointerButton:
		if e.Down {
			eng.PointerDown(e.X, e.Y)
		} else {
			eng.PointerUp(e.X, e.Y)
		}
	case platform.EventPointerMove:
		eng.PointerMove(e.X, e.Y)
	case platform.EventScroll:
		eng.Wheel(e.Yoff, e.X, e.Y)
	case platform.EventKey:
		if !e.Down {
			return
		}
		switch e.Key {
		case platform.KeyEscape:
			win.RequestClose()
		case platform.KeyTab:
			if eng.Mode() == viewport.ModePlan {
				eng.SetMode(viewport.ModeModel)
			} else {
				eng.SetMode(viewport.ModePlan)
			}
		case platform.Key1:
			eng.SetTool(input.ToolSelect)
		case platform.Key2:
			eng.SetTool(input.ToolDrawWall)
		case platform.Key3:
			eng.SetTool(input.ToolDrawDoor)
		case platform.Key4:
			eng.SetTool(input.ToolMove)
		case platform.Key5:
			eng.SetTool(input.ToolDelete)
		case platform.KeyR:
			eng.ResetView()
		case platform.KeyF:
			eng.FitToView()
		}
	}
}
