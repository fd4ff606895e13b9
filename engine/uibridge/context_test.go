package uibridge

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bump struct{ delta int }

func testPlugin(win *fakeWindow, bus *core.Bus) *Plugin {
	p := New(Settings{})
	p.attach(win, bus)
	return p
}

func counterRoot() ui.UIElement {
	return ui.NewView().Children(
		ui.NewButton("+1").ID("inc").WidthFixed(120).HeightFixed(60).OnPress(bump{1}),
	)
}

// tick mimics the installed tick-begin hook.
func tick(p *Plugin, win *fakeWindow) {
	p.viewport = FromWindow(win, p.settings.ScaleOverride)
	p.translator.Tick(win, p.viewport)
}

func TestDisplayForwardsMessagesToTopic(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	topic := bus.Register("hud")
	p := testPlugin(win, bus)
	ctx := p.Context("hud")

	win.setCursor(10, 10)
	win.push(
		core.EventMouseButton{Button: core.ButtonLeft, Down: true},
		core.EventMouseButton{Button: core.ButtonLeft, Down: false},
	)
	tick(p, win)

	statuses := ctx.Display(counterRoot())

	require.Equal(t, []ui.Status{ui.Captured, ui.Captured}, statuses)
	msgs := topic.Drain()
	require.Len(t, msgs, 1)
	assert.Equal(t, bump{1}, msgs[0])
	assert.True(t, p.didDraw.Load())
}

func TestFirstSessionConsumesSharedQueue(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	hud := bus.Register("hud")
	menu := bus.Register("menu")
	p := testPlugin(win, bus)

	win.setCursor(10, 10)
	win.push(
		core.EventMouseButton{Button: core.ButtonLeft, Down: true},
		core.EventMouseButton{Button: core.ButtonLeft, Down: false},
	)
	tick(p, win)

	first := p.Context("hud").Display(counterRoot())
	second := p.Context("menu").Display(counterRoot())

	assert.Len(t, first, 2)
	assert.Empty(t, second)
	assert.Equal(t, 1, hud.Len())
	assert.Zero(t, menu.Len())
}

func TestCursorScalingReachesHitTest(t *testing.T) {
	// 800x600 at scale 2: logical 400x300, physical cursor (100,100)
	// resolves to logical (50,50), inside the 120x60 button.
	win := newFakeWindow(800, 600, 2)
	bus := core.NewBus()
	topic := bus.Register("hud")
	p := testPlugin(win, bus)

	win.setCursor(100, 100)
	win.push(
		core.EventMouseButton{Button: core.ButtonLeft, Down: true},
		core.EventMouseButton{Button: core.ButtonLeft, Down: false},
	)
	tick(p, win)

	w, h := p.Viewport().LogicalSize()
	assert.Equal(t, float32(400), w)
	assert.Equal(t, float32(300), h)

	p.Context("hud").Display(counterRoot())
	assert.Equal(t, 1, topic.Len())
}

func TestUnregisteredSessionPanics(t *testing.T) {
	p := testPlugin(newFakeWindow(800, 600, 1), core.NewBus())
	assert.Panics(t, func() { p.Context("nope") })
}

func TestSpliceExtractsDidDrawExactlyOnce(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	bus.Register("hud")
	p := testPlugin(win, bus)
	node := &spliceNode{p: p}

	tick(p, win)
	p.Context("hud").Display(counterRoot())

	node.Update(nil)
	assert.True(t, p.snapshot.DidDraw)
	assert.False(t, p.didDraw.Load())

	// No display since: the extracted flag stays down.
	node.Update(nil)
	assert.False(t, p.snapshot.DidDraw)
}

func TestQuietFrameRepresentsRetainedBatch(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	bus.Register("hud")
	p := testPlugin(win, bus)
	backend, stub := newTestBackend2D(t)
	p.props.Backend = backend
	node := &spliceNode{p: p}

	tick(p, win)
	p.Context("hud").Display(counterRoot())

	node.Update(nil)
	require.NoError(t, node.Run(nil, &core.Frame{W: 800, H: 600}))
	require.Equal(t, 1, stub.draws)

	// The next frame arrives before the next tick: the extracted flag is
	// down, but the batch from the last Display still composites.
	node.Update(nil)
	require.False(t, p.snapshot.DidDraw)
	require.NoError(t, node.Run(nil, &core.Frame{W: 800, H: 600}))
	assert.Equal(t, 2, stub.draws)
}

func TestSpliceSkipsMinimizedTarget(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	bus.Register("hud")
	p := testPlugin(win, bus)
	backend, stub := newTestBackend2D(t)
	p.props.Backend = backend
	node := &spliceNode{p: p}

	tick(p, win)
	p.Context("hud").Display(counterRoot())
	node.Update(nil)
	require.True(t, p.snapshot.DidDraw)

	require.NoError(t, node.Run(nil, &core.Frame{W: 0, H: 0}))
	assert.Zero(t, stub.draws)
}

func TestRedisplayRecyclesPrimitiveBatch(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	bus.Register("hud")
	p := testPlugin(win, bus)
	node := &spliceNode{p: p}

	tick(p, win)
	p.Context("hud").Display(counterRoot())
	n := p.props.Renderer.PrimitiveCount()
	require.Positive(t, n)

	node.Update(nil)
	tick(p, win)
	p.Context("hud").Display(counterRoot())
	assert.Equal(t, n, p.props.Renderer.PrimitiveCount())
}

func TestDisplayWithoutEventsIsIdempotent(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	topic := bus.Register("hud")
	p := testPlugin(win, bus)
	node := &spliceNode{p: p}
	ctx := p.Context("hud")

	// Two quiet displays must not disturb retained state.
	for i := 0; i < 2; i++ {
		tick(p, win)
		require.Empty(t, ctx.Display(counterRoot()))
		node.Update(nil)
	}
	assert.Zero(t, topic.Len())

	// A click on the third display still lands.
	win.setCursor(10, 10)
	win.push(
		core.EventMouseButton{Button: core.ButtonLeft, Down: true},
		core.EventMouseButton{Button: core.ButtonLeft, Down: false},
	)
	tick(p, win)
	ctx.Display(counterRoot())
	assert.Equal(t, 1, topic.Len())
}

func TestSecondSessionAppendsToBatch(t *testing.T) {
	win := newFakeWindow(800, 600, 1)
	bus := core.NewBus()
	bus.Register("hud")
	bus.Register("menu")
	p := testPlugin(win, bus)

	tick(p, win)
	p.Context("hud").Display(counterRoot())
	n := p.props.Renderer.PrimitiveCount()
	p.Context("menu").Display(counterRoot())
	assert.Greater(t, p.props.Renderer.PrimitiveCount(), n)
}
