package uibridge

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident() Viewport {
	return Viewport{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 1}
}

func TestTickPreservesArrivalOrder(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	win := newFakeWindow(800, 600, 1)
	win.push(
		core.EventMouseMove{X: 10, Y: 20},
		core.EventMouseButton{Button: core.ButtonLeft, Down: true},
		core.EventMouseButton{Button: core.ButtonLeft, Down: false},
		core.EventScroll{Yoff: -1},
	)

	tr.Tick(win, ident())

	require.Equal(t, 4, q.Len())
	evs := q.Events()
	assert.Equal(t, ui.CursorMoved{X: 10, Y: 20}, evs[0])
	assert.Equal(t, ui.ButtonPressed{Button: ui.ButtonLeft}, evs[1])
	assert.Equal(t, ui.ButtonReleased{Button: ui.ButtonLeft}, evs[2])
	assert.Equal(t, ui.WheelScrolled{DY: -1}, evs[3])
}

func TestTickRebuildsQueue(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	win := newFakeWindow(800, 600, 1)

	win.push(core.EventMouseMove{X: 1, Y: 1})
	tr.Tick(win, ident())
	require.Equal(t, 1, q.Len())

	// A quiet tick leaves no stale events behind.
	tr.Tick(win, ident())
	assert.Zero(t, q.Len())
}

func TestExtraMouseButtonsKeepPlatformIndex(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	tr.Translate(core.EventMouseButton{Button: core.Button(5), Down: true}, ident())

	require.Equal(t, 1, q.Len())
	assert.Equal(t, ui.ButtonPressed{Button: ui.MouseButton(5)}, q.Events()[0])
}

func TestKeyEventsCarryModifierSnapshot(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	tr.Translate(core.EventKey{Key: core.KeyA, Down: true, Mods: core.ModCtrl}, ident())

	require.Equal(t, 1, q.Len())
	kp, ok := q.Events()[0].(ui.KeyPressed)
	require.True(t, ok)
	assert.Equal(t, ui.KeyA, kp.Key)
	assert.True(t, kp.Modifiers.Control())
	assert.False(t, kp.Modifiers.Shift())
}

func TestModifierKeysBecomeModifiersChanged(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	tr.Translate(core.EventKey{Key: core.KeyLeftShift, Down: true}, ident())
	tr.Translate(core.EventKey{Key: core.KeyLeftShift, Down: false}, ident())

	require.Equal(t, 2, q.Len())
	mc, ok := q.Events()[0].(ui.ModifiersChanged)
	require.True(t, ok)
	assert.True(t, mc.Modifiers.Shift())
	mc, ok = q.Events()[1].(ui.ModifiersChanged)
	require.True(t, ok)
	assert.False(t, mc.Modifiers.Shift())
}

func TestUnmappedKeyIsDropped(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	tr.Translate(core.EventKey{Key: core.KeyUnknown, Down: true}, ident())
	assert.Zero(t, q.Len())
}

func TestCharBecomesTextKeyPress(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	tr.Translate(core.EventKey{Key: core.KeyLeftShift, Down: true}, ident())
	tr.Translate(core.EventChar{Rune: 'A'}, ident())

	require.Equal(t, 2, q.Len())
	kp, ok := q.Events()[1].(ui.KeyPressed)
	require.True(t, ok)
	assert.Equal(t, ui.KeyUnknown, kp.Key)
	assert.Equal(t, "A", kp.Text)
	assert.True(t, kp.Modifiers.Shift())
}

func TestEventPositionsScaleToLogical(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	vp := Viewport{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 2}
	tr.Translate(core.EventMouseMove{X: 100, Y: 100}, vp)
	tr.Translate(core.EventTouchBegin{Finger: 7, X: 200, Y: 300}, vp)

	require.Equal(t, 2, q.Len())
	assert.Equal(t, ui.CursorMoved{X: 50, Y: 50}, q.Events()[0])
	assert.Equal(t, ui.FingerPressed{Finger: 7, X: 100, Y: 150}, q.Events()[1])
}

func TestCursorPrefersMouse(t *testing.T) {
	tr := NewTranslator(&EventQueue{})
	win := newFakeWindow(800, 600, 2)
	win.setCursor(100, 100)

	c := tr.Cursor(win, FromWindow(win, 0))
	x, y, ok := c.Position()
	require.True(t, ok)
	assert.Equal(t, float32(50), x)
	assert.Equal(t, float32(50), y)
}

func TestCursorFallsBackToTouches(t *testing.T) {
	tr := NewTranslator(&EventQueue{})
	win := newFakeWindow(800, 600, 1)
	vp := FromWindow(win, 0)

	// No mouse, no touches: unavailable.
	_, _, ok := tr.Cursor(win, vp).Position()
	assert.False(t, ok)

	// Oldest active contact wins.
	tr.Translate(core.EventTouchBegin{Finger: 1, X: 10, Y: 20}, vp)
	tr.Translate(core.EventTouchBegin{Finger: 2, X: 30, Y: 40}, vp)
	x, y, ok := tr.Cursor(win, vp).Position()
	require.True(t, ok)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)

	// Moving a contact tracks it.
	tr.Translate(core.EventTouchMove{Finger: 1, X: 15, Y: 25}, vp)
	x, y, _ = tr.Cursor(win, vp).Position()
	assert.Equal(t, float32(15), x)
	assert.Equal(t, float32(25), y)

	// After every contact lifts, the last lift position remains.
	tr.Translate(core.EventTouchEnd{Finger: 1, X: 16, Y: 26}, vp)
	tr.Translate(core.EventTouchEnd{Finger: 2, X: 31, Y: 41}, vp)
	x, y, ok = tr.Cursor(win, vp).Position()
	require.True(t, ok)
	assert.Equal(t, float32(31), x)
	assert.Equal(t, float32(41), y)
}

func TestCursorFallsBackToQueuedTouchEvents(t *testing.T) {
	q := &EventQueue{}
	tr := NewTranslator(q)
	win := newFakeWindow(800, 600, 2)
	vp := FromWindow(win, 0)

	// A move for a contact that began before the bridge installed: the
	// finger is untracked, but its queued event still locates the cursor.
	tr.Translate(core.EventTouchMove{Finger: 7, X: 120, Y: 90}, vp)
	x, y, ok := tr.Cursor(win, vp).Position()
	require.True(t, ok)
	assert.Equal(t, float32(60), x)
	assert.Equal(t, float32(45), y)

	// The next tick clears the queue; with nothing tracked the cursor is
	// unavailable again.
	tr.Tick(win, vp)
	_, _, ok = tr.Cursor(win, vp).Position()
	assert.False(t, ok)
}
