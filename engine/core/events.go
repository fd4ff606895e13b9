package core

// Event is the sealed union of host window/input events.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new framebuffer size in physical pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventScaleChanged fires when the window moves to a display with a
// different content scale.
type EventScaleChanged struct{ Scale float64 }

func (EventScaleChanged) isEvent() {}

// EventMouseMove carries the cursor position in physical pixels,
// top-left origin, Y down.
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseEnter struct{}

func (EventMouseEnter) isEvent() {}

type EventMouseLeave struct{}

func (EventMouseLeave) isEvent() {}

// Button identifies a mouse button by index: 0 left, 1 right, 2 middle,
// higher indices map platform extra buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

type EventMouseButton struct {
	Button Button
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventChar carries composed text input, a separate channel from the
// physical key events above.
type EventChar struct{ Rune rune }

func (EventChar) isEvent() {}

// Touch events. Desktop GLFW never produces these; other window backends
// (and tests) do.
type EventTouchBegin struct {
	Finger uint64
	X, Y   float64
}

func (EventTouchBegin) isEvent() {}

type EventTouchMove struct {
	Finger uint64
	X, Y   float64
}

func (EventTouchMove) isEvent() {}

type EventTouchEnd struct {
	Finger uint64
	X, Y   float64
}

func (EventTouchEnd) isEvent() {}
