package uibridge

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/scratch"
)

// SpliceNodeName is the bridge's node in the render graph, scheduled after
// the main scene pass.
const SpliceNodeName = "ui_splice"

// spliceNode presents the recorded UI batch on top of the scene. It never
// clears the target; compositing is pure blending over whatever the scene
// pass left behind.
type spliceNode struct {
	p *Plugin
}

// Update extracts the per-frame snapshot: the did-draw flag is swapped out
// so the next Display knows to recycle the batch, and the viewport is
// copied so a late resize cannot shear the composite. The frame scratch
// arena resets here, before any pass formats overlay text.
func (n *spliceNode) Update(e *core.Engine) {
	n.p.snapshot = Snapshot{
		Viewport: n.p.viewport,
		DidDraw:  n.p.didDraw.Swap(false),
	}
	scratch.Reset()
}

// Run presents the retained primitive batch. Displays run on the fixed
// tick while the graph runs every frame, so frames between ticks re-present
// the batch recorded by the last Display; recycling stays gated on
// extraction, keeping the batch intact until the next Display.
func (n *spliceNode) Run(e *core.Engine, f *core.Frame) error {
	if f.W < 1 || f.H < 1 {
		return nil
	}

	p := n.p.props
	p.Lock()
	defer p.Unlock()
	if p.Renderer == nil || p.Backend == nil || p.Renderer.PrimitiveCount() == 0 {
		return nil
	}
	defer profiler.Start("uibridge.splice")()

	// Camera spanning the logical viewport with (0,0) at the top-left.
	w, h := n.p.snapshot.Viewport.LogicalSize()
	cam := n.p.cam
	cam.Left, cam.Right = -w*0.5, w*0.5
	cam.Bottom, cam.Top = h*0.5, -h*0.5
	cam.SetPosition(w*0.5, h*0.5)

	var overlay []string
	if p.Debug.Enabled() {
		overlay = p.Debug.Overlay()
	}
	p.Renderer.Present(p.Backend, cam.VP(), overlay)
	return nil
}
