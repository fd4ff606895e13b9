package platform

import (
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/logging"
)

// GLFWWindow implements core.Window. Events flow two ways: pushed to the
// registered callback as they arrive, and buffered for ReadNew so per-tick
// consumers see each event exactly once.
type GLFWWindow struct {
	w        *glfw.Window
	onEv     func(core.Event)
	pending  []core.Event
	scale    float64
	cursorIn bool
}

// NewGLFWWindow creates the window and GL context. Must be called on the
// main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

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
	logging.Logger().Info("gl context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, onEv: onEvent}
	sx, _ := win.GetContentScale()
	gw.scale = float64(sx)
	if gw.scale <= 0 {
		gw.scale = 1
	}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		if x > 0 {
			gw.scale = float64(x)
		}
		gw.emit(core.EventScaleChanged{Scale: gw.scale})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x * gw.scale, Y: y * gw.scale})
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		gw.cursorIn = entered
		if entered {
			gw.emit(core.EventMouseEnter{})
		} else {
			gw.emit(core.EventMouseLeave{})
		}
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		gw.emit(core.EventMouseButton{
			Button: core.Button(int(button)),
			Down:   action != glfw.Release,
			Mods:   translateMods(mods),
		})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			logging.Logger().Debug("unmapped glfw key", "key", int(key), "scancode", scancode)
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetCharCallback(func(_ *glfw.Window, char rune) {
		gw.emit(core.EventChar{Rune: char})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	g.pending = append(g.pending, ev)
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                 { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool           { return g.w.ShouldClose() }
func (g *GLFWWindow) PixelSize() (int, int)       { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) ScaleFactor() float64        { return g.scale }
func (g *GLFWWindow) SetTitle(t string)           { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) CursorPos() (float64, float64, bool) {
	if !g.cursorIn {
		return 0, 0, false
	}
	x, y := g.w.GetCursorPos()
	return x * g.scale, y * g.scale, true
}

func (g *GLFWWindow) ReadNew() []core.Event {
	evs := g.pending
	g.pending = nil
	return evs
}

// Clipboard access, picked up by the UI bridge when present.
func (g *GLFWWindow) ClipboardText() string     { return g.w.GetClipboardString() }
func (g *GLFWWindow) SetClipboardText(s string) { g.w.SetClipboardString(s) }

func translateKey(k glfw.Key) core.Key {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.KeyA + core.Key(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.Key0 + core.Key(k-glfw.Key0)
	}
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return core.KeyEnter
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyBackspace:
		return core.KeyBackspace
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyDelete:
		return core.KeyDelete
	case glfw.KeyInsert:
		return core.KeyInsert
	case glfw.KeyHome:
		return core.KeyHome
	case glfw.KeyEnd:
		return core.KeyEnd
	case glfw.KeyPageUp:
		return core.KeyPageUp
	case glfw.KeyPageDown:
		return core.KeyPageDown
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyMinus:
		return core.KeyMinus
	case glfw.KeyEqual:
		return core.KeyEqual
	case glfw.KeyComma:
		return core.KeyComma
	case glfw.KeyPeriod:
		return core.KeyPeriod
	case glfw.KeySlash:
		return core.KeySlash
	case glfw.KeyLeftShift:
		return core.KeyLeftShift
	case glfw.KeyRightShift:
		return core.KeyRightShift
	case glfw.KeyLeftControl:
		return core.KeyLeftControl
	case glfw.KeyRightControl:
		return core.KeyRightControl
	case glfw.KeyLeftAlt:
		return core.KeyLeftAlt
	case glfw.KeyRightAlt:
		return core.KeyRightAlt
	case glfw.KeyLeftSuper:
		return core.KeyLeftSuper
	case glfw.KeyRightSuper:
		return core.KeyRightSuper
	default:
		return core.KeyUnknown
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
