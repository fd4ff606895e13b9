package uibridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogicalSizeDividesByScale(t *testing.T) {
	vp := Viewport{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 2}
	w, h := vp.LogicalSize()
	assert.Equal(t, float32(400), w)
	assert.Equal(t, float32(300), h)
}

func TestScreenToLogical(t *testing.T) {
	vp := Viewport{PhysicalWidth: 800, PhysicalHeight: 600, ScaleFactor: 2}
	x, y := vp.ScreenToLogical(100, 100)
	assert.Equal(t, float32(50), x)
	assert.Equal(t, float32(50), y)
}

func TestFromWindowOverride(t *testing.T) {
	win := newFakeWindow(800, 600, 2)

	vp := FromWindow(win, 0)
	assert.Equal(t, 2.0, vp.ScaleFactor)

	vp = FromWindow(win, 1.5)
	assert.Equal(t, 1.5, vp.ScaleFactor)
	w, h := vp.LogicalSize()
	assert.InDelta(t, 533.333, w, 0.01)
	assert.InDelta(t, 400, h, 0.01)
}

func TestZeroScaleFallsBackToIdentity(t *testing.T) {
	vp := Viewport{PhysicalWidth: 640, PhysicalHeight: 480}
	w, h := vp.LogicalSize()
	assert.Equal(t, float32(640), w)
	assert.Equal(t, float32(480), h)
}
