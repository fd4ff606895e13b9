package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Graph    *RenderGraph
	Bus      *Bus
	Input    *Input
	Layers   LayerStack
	start    time.Time

	tickBegin []func(*Engine)
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// OnTickBegin registers fn to run at the start of every fixed update tick,
// before App.OnUpdate. Input translators hook in here.
func (e *Engine) OnTickBegin(fn func(*Engine)) {
	e.tickBegin = append(e.tickBegin, fn)
}

// Window abstraction. Implemented by engine/platform.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool

	// PixelSize is the framebuffer size in physical pixels.
	PixelSize() (int, int)
	// ScaleFactor maps window points to physical pixels (1.0 on standard
	// density displays).
	ScaleFactor() float64
	// CursorPos returns the cursor position in physical pixels, with
	// ok=false while the cursor is outside the window.
	CursorPos() (x, y float64, ok bool)

	// ReadNew returns the events that arrived since the previous call and
	// marks them consumed. Each event is delivered through here exactly once.
	ReadNew() []Event
	// SetEventCallback additionally pushes every event as it arrives.
	SetEventCallback(func(Event))

	SetTitle(title string)
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	Samples    int // MSAA sample count for the default framebuffer (0 = off)
	ClearColor [4]float32
}
