package uibridge

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/logging"
	"github.com/hubastard/canopy/engine/ui"
)

type touchPoint struct {
	finger uint64
	x, y   float32 // logical
}

// Translator drains host window events each tick and rewrites them into the
// toolkit's vocabulary. It also tracks modifier and touch state so the
// bridge can resolve a cursor position when the mouse is unavailable.
type Translator struct {
	queue *EventQueue
	mods  ui.Modifiers

	pressed  []touchPoint // active contacts, press order
	lastLift *touchPoint  // most recently lifted contact
}

func NewTranslator(queue *EventQueue) *Translator {
	return &Translator{queue: queue}
}

// Tick rebuilds the queue from the events that arrived since the last tick.
// Positions are converted to logical coordinates through vp.
func (t *Translator) Tick(win core.Window, vp Viewport) {
	t.queue.Clear()
	for _, ev := range win.ReadNew() {
		t.Translate(ev, vp)
	}
}

// Translate rewrites one host event into the queue. Events the toolkit has
// no use for (resize, close) are skipped; the bridge reads the viewport
// from the window directly.
func (t *Translator) Translate(ev core.Event, vp Viewport) {
	switch e := ev.(type) {
	case core.EventMouseMove:
		x, y := vp.ScreenToLogical(e.X, e.Y)
		t.queue.Push(ui.CursorMoved{X: x, Y: y})
	case core.EventMouseEnter:
		t.queue.Push(ui.CursorEntered{})
	case core.EventMouseLeave:
		t.queue.Push(ui.CursorLeft{})
	case core.EventMouseButton:
		btn := ui.MouseButton(e.Button)
		if e.Down {
			t.queue.Push(ui.ButtonPressed{Button: btn})
		} else {
			t.queue.Push(ui.ButtonReleased{Button: btn})
		}
	case core.EventScroll:
		t.queue.Push(ui.WheelScrolled{DX: float32(e.Xoff), DY: float32(e.Yoff)})
	case core.EventKey:
		t.translateKey(e)
	case core.EventChar:
		t.queue.Push(ui.KeyPressed{Key: ui.KeyUnknown, Modifiers: t.mods, Text: string(e.Rune)})
	case core.EventTouchBegin:
		x, y := vp.ScreenToLogical(e.X, e.Y)
		t.pressed = append(t.pressed, touchPoint{finger: e.Finger, x: x, y: y})
		t.queue.Push(ui.FingerPressed{Finger: e.Finger, X: x, Y: y})
	case core.EventTouchMove:
		x, y := vp.ScreenToLogical(e.X, e.Y)
		for i := range t.pressed {
			if t.pressed[i].finger == e.Finger {
				t.pressed[i].x, t.pressed[i].y = x, y
				break
			}
		}
		t.queue.Push(ui.FingerMoved{Finger: e.Finger, X: x, Y: y})
	case core.EventTouchEnd:
		x, y := vp.ScreenToLogical(e.X, e.Y)
		for i := range t.pressed {
			if t.pressed[i].finger == e.Finger {
				t.pressed = append(t.pressed[:i], t.pressed[i+1:]...)
				break
			}
		}
		t.lastLift = &touchPoint{finger: e.Finger, x: x, y: y}
		t.queue.Push(ui.FingerLifted{Finger: e.Finger, X: x, Y: y})
	}
}

func (t *Translator) translateKey(e core.EventKey) {
	// Dedicated modifier keys surface as a modifier-state change, never as
	// key events.
	if e.Key.IsModifier() {
		t.mods = modifierBit(e.Key, e.Down, t.mods)
		t.queue.Push(ui.ModifiersChanged{Modifiers: t.mods})
		return
	}
	key, ok := keyTable[e.Key]
	if !ok {
		logging.Logger().Debug("uibridge: dropping unmapped key", "key", int(e.Key))
		return
	}
	mods := modsFromCore(e.Mods)
	t.mods = mods
	if e.Down {
		t.queue.Push(ui.KeyPressed{Key: key, Modifiers: mods})
	} else {
		t.queue.Push(ui.KeyReleased{Key: key, Modifiers: mods})
	}
}

// Cursor resolves the pointer position in logical space: the mouse when it
// is inside the window, else the oldest active touch contact, else the last
// lifted contact, else a position carried by a touch event still queued
// this tick.
func (t *Translator) Cursor(win core.Window, vp Viewport) ui.Cursor {
	if x, y, ok := win.CursorPos(); ok {
		lx, ly := vp.ScreenToLogical(x, y)
		return ui.AvailableCursor(lx, ly)
	}
	if len(t.pressed) > 0 {
		p := t.pressed[0]
		return ui.AvailableCursor(p.x, p.y)
	}
	if t.lastLift != nil {
		return ui.AvailableCursor(t.lastLift.x, t.lastLift.y)
	}
	// Contacts that began before the bridge was watching never reach the
	// tracked sets; their queued events still carry usable positions.
	evs := t.queue.Events()
	for i := len(evs) - 1; i >= 0; i-- {
		switch e := evs[i].(type) {
		case ui.FingerPressed:
			return ui.AvailableCursor(e.X, e.Y)
		case ui.FingerMoved:
			return ui.AvailableCursor(e.X, e.Y)
		case ui.FingerLifted:
			return ui.AvailableCursor(e.X, e.Y)
		}
	}
	return ui.Cursor{}
}

func modifierBit(k core.Key, down bool, mods ui.Modifiers) ui.Modifiers {
	var bit ui.Modifiers
	switch k {
	case core.KeyLeftShift, core.KeyRightShift:
		bit = ui.ModShift
	case core.KeyLeftControl, core.KeyRightControl:
		bit = ui.ModCtrl
	case core.KeyLeftAlt, core.KeyRightAlt:
		bit = ui.ModAlt
	case core.KeyLeftSuper, core.KeyRightSuper:
		bit = ui.ModMeta
	}
	if down {
		return mods | bit
	}
	return mods &^ bit
}

func modsFromCore(m core.Mod) ui.Modifiers {
	var out ui.Modifiers
	if m&core.ModShift != 0 {
		out |= ui.ModShift
	}
	if m&core.ModCtrl != 0 {
		out |= ui.ModCtrl
	}
	if m&core.ModAlt != 0 {
		out |= ui.ModAlt
	}
	if m&core.ModSuper != 0 {
		out |= ui.ModMeta
	}
	return out
}

var keyTable = map[core.Key]ui.Key{
	core.KeyA: ui.KeyA,
	core.KeyB: ui.KeyB,
	core.KeyC: ui.KeyC,
	core.KeyD: ui.KeyD,
	core.KeyE: ui.KeyE,
	core.KeyF: ui.KeyF,
	core.KeyG: ui.KeyG,
	core.KeyH: ui.KeyH,
	core.KeyI: ui.KeyI,
	core.KeyJ: ui.KeyJ,
	core.KeyK: ui.KeyK,
	core.KeyL: ui.KeyL,
	core.KeyM: ui.KeyM,
	core.KeyN: ui.KeyN,
	core.KeyO: ui.KeyO,
	core.KeyP: ui.KeyP,
	core.KeyQ: ui.KeyQ,
	core.KeyR: ui.KeyR,
	core.KeyS: ui.KeyS,
	core.KeyT: ui.KeyT,
	core.KeyU: ui.KeyU,
	core.KeyV: ui.KeyV,
	core.KeyW: ui.KeyW,
	core.KeyX: ui.KeyX,
	core.KeyY: ui.KeyY,
	core.KeyZ: ui.KeyZ,

	core.Key0: ui.Key0,
	core.Key1: ui.Key1,
	core.Key2: ui.Key2,
	core.Key3: ui.Key3,
	core.Key4: ui.Key4,
	core.Key5: ui.Key5,
	core.Key6: ui.Key6,
	core.Key7: ui.Key7,
	core.Key8: ui.Key8,
	core.Key9: ui.Key9,

	core.KeyEscape:    ui.KeyEscape,
	core.KeyEnter:     ui.KeyEnter,
	core.KeyTab:       ui.KeyTab,
	core.KeyBackspace: ui.KeyBackspace,
	core.KeySpace:     ui.KeySpace,
	core.KeyDelete:    ui.KeyDelete,
	core.KeyInsert:    ui.KeyInsert,
	core.KeyHome:      ui.KeyHome,
	core.KeyEnd:       ui.KeyEnd,
	core.KeyPageUp:    ui.KeyPageUp,
	core.KeyPageDown:  ui.KeyPageDown,

	core.KeyLeft:  ui.KeyLeft,
	core.KeyRight: ui.KeyRight,
	core.KeyUp:    ui.KeyUp,
	core.KeyDown:  ui.KeyDown,

	core.KeyMinus:  ui.KeyMinus,
	core.KeyEqual:  ui.KeyEqual,
	core.KeyComma:  ui.KeyComma,
	core.KeyPeriod: ui.KeyPeriod,
	core.KeySlash:  ui.KeySlash,
}
