package ui

// Event is the toolkit's input vocabulary. Bridges translate host window
// events into these and replay them, in arrival order, into an Interface.
type Event interface{ isEvent() }

// CursorMoved carries the cursor position in logical coordinates. Hit
// testing uses the resolved Cursor passed to Interface.Update; the event
// itself marks that pointer motion happened this tick.
type CursorMoved struct{ X, Y float32 }

func (CursorMoved) isEvent() {}

type CursorEntered struct{}

func (CursorEntered) isEvent() {}

type CursorLeft struct{}

func (CursorLeft) isEvent() {}

type ButtonPressed struct{ Button MouseButton }

func (ButtonPressed) isEvent() {}

type ButtonReleased struct{ Button MouseButton }

func (ButtonReleased) isEvent() {}

type WheelScrolled struct{ DX, DY float32 }

func (WheelScrolled) isEvent() {}

// KeyPressed is a physical key press, or composed text input when Text is
// non-empty and Key is KeyUnknown (the two arrive on separate channels).
type KeyPressed struct {
	Key       Key
	Modifiers Modifiers
	Text      string
}

func (KeyPressed) isEvent() {}

type KeyReleased struct {
	Key       Key
	Modifiers Modifiers
}

func (KeyReleased) isEvent() {}

type ModifiersChanged struct{ Modifiers Modifiers }

func (ModifiersChanged) isEvent() {}

type FingerPressed struct {
	Finger uint64
	X, Y   float32
}

func (FingerPressed) isEvent() {}

type FingerMoved struct {
	Finger uint64
	X, Y   float32
}

func (FingerMoved) isEvent() {}

type FingerLifted struct {
	Finger uint64
	X, Y   float32
}

func (FingerLifted) isEvent() {}

// MouseButton identifies a mouse button; values past ButtonForward carry
// the platform button index directly.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifiers) Shift() bool   { return m&ModShift != 0 }
func (m Modifiers) Control() bool { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool     { return m&ModAlt != 0 }
func (m Modifiers) Meta() bool    { return m&ModMeta != 0 }

// Key identifies a physical key in the toolkit's vocabulary. Dedicated
// modifier keys never appear here; they arrive as ModifiersChanged.
type Key int

const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
)

// Cursor is the resolved pointer location in logical coordinates, or
// unavailable when neither mouse nor touch can supply one.
type Cursor struct {
	X, Y      float32
	Available bool
}

func AvailableCursor(x, y float32) Cursor { return Cursor{X: x, Y: y, Available: true} }

// Position returns the location with ok=false for an unavailable cursor.
func (c Cursor) Position() (x, y float32, ok bool) { return c.X, c.Y, c.Available }

// Status reports whether a replayed event was consumed by the UI. Hosts
// use Ignored to decide whether the same raw input should also reach the
// 3D scene.
type Status int

const (
	Ignored Status = iota
	Captured
)
