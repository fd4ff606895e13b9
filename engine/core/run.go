package core

import (
	"runtime"
	"time"

	"github.com/hubastard/canopy/engine/logging"
)

// Run wires the platform window + renderer and executes the main loop.
//
// Each iteration has two phases: a fixed-timestep update phase (tick-begin
// hooks, App.OnUpdate, layers) and a render phase driven by the render
// graph. Render nodes registered on Engine.Graph run after the built-in
// camera driver pass when they declare that edge.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.PixelSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Graph:    NewRenderGraph(),
		Bus:      NewBus(),
		Input:    NewInput(),
		start:    time.Now(),
	}
	eng.Graph.AddNode(CameraDriverNode, NewCameraDriver(app))

	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			if l.OnEvent(eng, ev) {
				handled = true
				return true
			}
			return false
		})
		if !handled {
			app.OnEvent(eng, ev)
		}
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.PixelSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			for _, fn := range eng.tickBegin {
				fn(eng)
			}
			app.OnUpdate(eng, float64(tick)/float64(time.Second))
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, float64(tick)/float64(time.Second)) })
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		fw, fh := win.PixelSize()
		if fw >= 1 && fh >= 1 {
			rend.Clear(clear[0], clear[1], clear[2], clear[3])
		}
		if err := eng.Graph.Execute(eng, &Frame{W: fw, H: fh, Alpha: alpha}); err != nil {
			return err
		}

		win.SwapBuffers()
	}

	app.OnShutdown(eng)
	logging.Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}
