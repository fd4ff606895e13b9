package uibridge

import (
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/ui"
)

// Context is one session's handle for displaying UI. Obtain it from
// Plugin.Context and call Display once per tick from the update schedule.
type Context struct {
	p       *Plugin
	session string
	topic   *core.Topic
}

// Display runs the session's frame: build the widget tree against the
// retained cache, replay this tick's events, forward the emitted messages
// onto the session's topic, and record the draw primitives for the splice
// node to present.
//
// The event queue is shared: the first session to display a tick consumes
// it, later sessions see an empty queue. The returned statuses mirror the
// replayed events index for index so the host can keep captured input away
// from the scene.
func (c *Context) Display(root ui.UIElement) []ui.Status {
	defer profiler.Start("uibridge.display")()
	p := c.p

	p.props.Lock()
	defer p.props.Unlock()

	// First display since the last extraction starts a fresh primitive
	// batch; further sessions this tick append to it.
	if !p.didDraw.Load() {
		p.props.Renderer.Recycle()
	}

	vp := p.viewport
	w, h := vp.LogicalSize()
	cursor := p.translator.Cursor(p.win, vp)
	dbg := p.props.Debug

	cache := p.registry.Acquire(c.session)
	t0 := time.Now()
	iface := ui.Build(root, [2]float32{w, h}, cache, p.props.Renderer)
	dbg.buildDone(time.Since(t0))

	events := p.queue.Events()
	t0 = time.Now()
	msgs, statuses := iface.Update(events, cursor)
	dbg.updateDone(time.Since(t0), len(events), len(msgs))
	for _, m := range msgs {
		c.topic.Send(m)
	}

	t0 = time.Now()
	iface.Draw(p.Theme(), p.style, cursor)
	dbg.drawDone(time.Since(t0), p.props.Renderer.PrimitiveCount())

	p.queue.Clear()
	p.registry.Release(c.session, iface.IntoCache())
	p.didDraw.Store(true)
	return statuses
}
