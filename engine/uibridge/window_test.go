package uibridge

import "github.com/hubastard/canopy/engine/core"

// fakeWindow is a scriptable core.Window for bridge tests.
type fakeWindow struct {
	pixelW, pixelH int
	scale          float64
	cursorX        float64
	cursorY        float64
	cursorIn       bool
	pending        []core.Event
	title          string
}

func newFakeWindow(w, h int, scale float64) *fakeWindow {
	return &fakeWindow{pixelW: w, pixelH: h, scale: scale}
}

func (f *fakeWindow) push(evs ...core.Event) { f.pending = append(f.pending, evs...) }

func (f *fakeWindow) setCursor(x, y float64) {
	f.cursorX, f.cursorY, f.cursorIn = x, y, true
}

func (f *fakeWindow) PollEvents()           {}
func (f *fakeWindow) SwapBuffers()          {}
func (f *fakeWindow) ShouldClose() bool     { return false }
func (f *fakeWindow) PixelSize() (int, int) { return f.pixelW, f.pixelH }
func (f *fakeWindow) ScaleFactor() float64  { return f.scale }

func (f *fakeWindow) CursorPos() (float64, float64, bool) {
	return f.cursorX, f.cursorY, f.cursorIn
}

func (f *fakeWindow) ReadNew() []core.Event {
	evs := f.pending
	f.pending = nil
	return evs
}

func (f *fakeWindow) SetEventCallback(func(core.Event)) {}
func (f *fakeWindow) SetTitle(t string)                 { f.title = t }
