package main

import (
	"log/slog"
	"os"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/logging"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/scene"
	"github.com/hubastard/canopy/engine/scratch"
	"github.com/hubastard/canopy/engine/ui"
	"github.com/hubastard/canopy/engine/uibridge"
)

const settingsPath = "assets/ui.toml"

// Messages emitted by the HUD session.
type bumpMsg struct{ delta int }
type overlayMsg struct{ on bool }

type sandboxApp struct {
	plugin *uibridge.Plugin
	hud    *uibridge.Context
	stats  *uibridge.Context
	topic  *core.Topic

	r2d    *renderer2d.Renderer2D
	cam    *scene.OrthoCamera2D
	camCtl *scene.CamController2D

	count       int
	showOverlay bool
	uiCaptured  bool

	stopWatch func() error
}

func (a *sandboxApp) OnStart(e *core.Engine) {
	// Session topics must exist before the first Display.
	a.topic = e.Bus.Register("hud")
	e.Bus.Register("stats")

	if err := a.plugin.Install(e); err != nil {
		logging.Logger().Error("ui install failed", "err", err)
		panic(err)
	}
	a.hud = a.plugin.Context("hud")
	a.stats = a.plugin.Context("stats")

	r2d, err := renderer2d.New(e.Renderer,
		renderer2d.DefaultVertexShader, renderer2d.DefaultFragmentShader, 2048)
	if err != nil {
		panic(err)
	}
	a.r2d = r2d

	w, h := e.Window.PixelSize()
	a.cam = scene.NewOrtho2D(w, h)
	a.camCtl = scene.NewCamController2D(a.cam)

	if stop, err := uibridge.WatchSettings(settingsPath, a.plugin.ApplySettings); err == nil {
		a.stopWatch = stop
	} else {
		logging.Logger().Warn("settings watch unavailable", "err", err)
	}
}

func (a *sandboxApp) buildHUD() ui.UIElement {
	return ui.NewView().Column().Gap(8).Padding(16).
		Children(
			ui.NewLabel(scratch.Sprintf("count: %d", a.count)),
			ui.NewView().Row().Gap(8).
				Children(
					ui.NewButton("+1").ID("inc").OnPress(bumpMsg{1}),
					ui.NewButton("-1").ID("dec").OnPress(bumpMsg{-1}),
				),
			ui.NewCheckbox("debug overlay", a.showOverlay).ID("overlay").
				OnToggle(func(on bool) any { return overlayMsg{on} }),
		)
}

func (a *sandboxApp) OnUpdate(e *core.Engine, dt float64) {
	// Apply last tick's messages before rebuilding the tree.
	for _, msg := range a.topic.Drain() {
		switch m := msg.(type) {
		case bumpMsg:
			a.count += m.delta
		case overlayMsg:
			a.showOverlay = m.on
			a.plugin.Props().Debug.SetEnabled(m.on)
		}
	}

	// The HUD displays first and consumes the shared event queue; the
	// stats panel is display-only.
	statuses := a.hud.Display(a.buildHUD())
	a.stats.Display(a.buildStats(e))

	a.uiCaptured = false
	for _, s := range statuses {
		if s == ui.Captured {
			a.uiCaptured = true
			break
		}
	}

	if !a.uiCaptured {
		a.camCtl.Update(e.Input, dt)
	}
}

func (a *sandboxApp) buildStats(e *core.Engine) ui.UIElement {
	vp := a.plugin.Viewport()
	w, h := vp.LogicalSize()
	return ui.NewView().Column().Gap(2).Padding(8).Position(0, h-70).
		Children(
			ui.NewLabel(scratch.Sprintf("viewport %.0fx%.0f @ %.2f", float64(w), float64(h), vp.ScaleFactor)),
			ui.NewLabel(scratch.Sprintf("camera %.0f,%.0f zoom %.2f",
				float64(a.cam.X), float64(a.cam.Y), float64(a.cam.Zoom))),
			ui.NewLabel(scratch.Sprintf("uptime %.0fs", e.Uptime().Seconds())),
		)
}

func (a *sandboxApp) OnRender(e *core.Engine, alpha float64) {
	a.r2d.BeginScene(a.cam.VP())
	// A colored grid so camera pan/zoom is visible behind the UI.
	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			c := colors.RGB(0.2+0.06*float32(i+5)/2, 0.3, 0.2+0.06*float32(j+5)/2)
			a.r2d.DrawQuad(float32(i)*90, float32(j)*90, 70, 70, c, 0)
		}
	}
	a.r2d.EndScene()
}

func (a *sandboxApp) OnEvent(e *core.Engine, ev core.Event) {
	if rs, ok := ev.(core.EventResize); ok && rs.W >= 1 && rs.H >= 1 {
		a.cam.SetViewportPixels(rs.W, rs.H)
	}
}

func (a *sandboxApp) OnShutdown(e *core.Engine) {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	logging.Logger().Info("sandbox shutdown", "count", a.count)
}

func main() {
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	scratch.Init(8 * 1024)
	profiler.Init(1 << 18)

	settings, err := uibridge.LoadSettingsFile(settingsPath)
	if err != nil {
		logging.Logger().Warn("using default ui settings", "err", err)
		settings = uibridge.DefaultSettings()
	}

	app := &sandboxApp{plugin: uibridge.New(settings)}
	cfg := core.Config{
		Title:      "canopy sandbox",
		Width:      1280,
		Height:     720,
		VSync:      true,
		Samples:    4,
		ClearColor: [4]float32{0.07, 0.08, 0.10, 1},
	}
	err = core.Run(app, cfg,
		func(c core.Config) (core.Window, error) {
			return platform.NewGLFWWindow(c, nil)
		},
		func(w core.Window, c core.Config) (core.Renderer, error) {
			return glbackend.NewRendererGL(w, c)
		},
	)
	if err != nil {
		logging.Logger().Error("engine run failed", "err", err)
		os.Exit(1)
	}
}
