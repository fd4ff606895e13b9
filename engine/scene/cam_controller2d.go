package scene

import "github.com/hubastard/canopy/engine/core"

// CamController2D pans/zooms an OrthoCamera2D from WASD + -/= keys.
// Call Update every tick; the owner decides whether input is available
// (e.g. suppressed while the UI captures the pointer).
type CamController2D struct {
	Cam   *OrthoCamera2D
	Speed float32 // units per second at zoom 1
}

func NewCamController2D(cam *OrthoCamera2D) *CamController2D {
	return &CamController2D{Cam: cam, Speed: 400}
}

func (cc *CamController2D) Update(in *core.Input, dt float64) {
	step := cc.Speed * float32(dt) / cc.Cam.Zoom
	if in.IsKeyDown(core.KeyW) {
		cc.Cam.Move(0, -step)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Cam.Move(0, step)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Cam.Move(-step, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Cam.Move(step, 0)
	}
	if in.IsKeyDown(core.KeyMinus) {
		cc.Cam.SetZoom(cc.Cam.Zoom * (1 - 0.9*float32(dt)))
	}
	if in.IsKeyDown(core.KeyEqual) {
		cc.Cam.SetZoom(cc.Cam.Zoom * (1 + 0.9*float32(dt)))
	}
}
