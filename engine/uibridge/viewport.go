package uibridge

import "github.com/hubastard/canopy/engine/core"

// Viewport is the physical framebuffer size plus the scale factor mapping
// logical UI coordinates onto it.
type Viewport struct {
	PhysicalWidth  int
	PhysicalHeight int
	ScaleFactor    float64
}

// FromWindow snapshots the window's current viewport. A positive
// scaleOverride replaces the display's own content scale.
func FromWindow(win core.Window, scaleOverride float64) Viewport {
	w, h := win.PixelSize()
	scale := win.ScaleFactor()
	if scaleOverride > 0 {
		scale = scaleOverride
	}
	if scale <= 0 {
		scale = 1
	}
	return Viewport{PhysicalWidth: w, PhysicalHeight: h, ScaleFactor: scale}
}

// LogicalSize is the UI-space size: physical pixels divided by the scale
// factor.
func (v Viewport) LogicalSize() (w, h float32) {
	s := v.ScaleFactor
	if s <= 0 {
		s = 1
	}
	return float32(float64(v.PhysicalWidth) / s), float32(float64(v.PhysicalHeight) / s)
}

// ScreenToLogical converts a physical-pixel position to logical UI space.
func (v Viewport) ScreenToLogical(x, y float64) (float32, float32) {
	s := v.ScaleFactor
	if s <= 0 {
		s = 1
	}
	return float32(x / s), float32(y / s)
}
