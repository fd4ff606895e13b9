package ui

import "github.com/hubastard/canopy/engine/text"

// Context is the per-phase environment handed to widgets.
type Context struct {
	Bounds   [2]float32
	Renderer *Renderer
	Theme    *Theme
	Style    Style
	Cursor   Cursor

	cache *Cache
	emit  func(msg any)
}

func (ctx *Context) DefaultFont() *text.Font { return ctx.Renderer.DefaultFont() }

// Emit queues a message for the host. Widgets call it from OnEvent.
func (ctx *Context) Emit(msg any) {
	if ctx.emit != nil && msg != nil {
		ctx.emit(msg)
	}
}

func (ctx *Context) State(id string) WidgetState        { return ctx.cache.stateFor(id) }
func (ctx *Context) SetState(id string, st WidgetState) { ctx.cache.setState(id, st) }

// Interface is one frame's built widget tree bound to its retained cache.
// Lifecycle: Build, Update (replay events), Draw, IntoCache.
type Interface struct {
	root   UIElement
	bounds [2]float32
	cache  *Cache
	r      *Renderer
}

// Build lays out root against bounds using the retained cache. The cache is
// owned by the Interface until IntoCache returns it.
func Build(root UIElement, bounds [2]float32, cache *Cache, r *Renderer) *Interface {
	if cache == nil {
		cache = NewCache()
	}
	cache.bounds = bounds
	// Roots default to the top-left corner; a builder-set position offsets
	// the whole tree. Layout computes sizes and parent-relative placement,
	// then one walk rebases every node to absolute coordinates.
	ctx := &Context{Bounds: bounds, Renderer: r, cache: cache}
	root.Layout(ctx, Constraints{Max: bounds})
	absolutize(root)
	return &Interface{root: root, bounds: bounds, cache: cache, r: r}
}

func absolutize(el UIElement) {
	n := el.Node()
	for _, child := range n.Children() {
		cn := child.Node()
		x, y := cn.Pos()
		cn.SetPos(x+n.position[0], y+n.position[1])
		absolutize(child)
	}
}

// Update replays the events, in order, through the tree. It returns the
// messages emitted by widget handlers and one Status per event, index for
// index, telling the host which events the UI consumed.
func (ui *Interface) Update(events []Event, cursor Cursor) ([]any, []Status) {
	if len(events) == 0 {
		return nil, nil
	}
	var msgs []any
	statuses := make([]Status, len(events))
	ctx := &Context{
		Bounds:   ui.bounds,
		Renderer: ui.r,
		Cursor:   cursor,
		cache:    ui.cache,
		emit:     func(m any) { msgs = append(msgs, m) },
	}
	for i, ev := range events {
		statuses[i] = ui.root.OnEvent(ctx, ev)
	}
	return msgs, statuses
}

// Draw records the frame's primitives into the renderer. It does not touch
// the GPU; the bridge presents the recorded batch during the render phase.
func (ui *Interface) Draw(theme *Theme, style Style, cursor Cursor) {
	ctx := &Context{
		Bounds:   ui.bounds,
		Renderer: ui.r,
		Theme:    theme,
		Style:    style,
		Cursor:   cursor,
		cache:    ui.cache,
	}
	if theme.Background[3] > 0 {
		ui.r.FillQuad(0, 0, ui.bounds[0], ui.bounds[1], theme.Background)
	}
	ui.root.Draw(ctx)
}

// IntoCache releases the retained cache back to the caller. The Interface
// must not be used afterwards.
func (ui *Interface) IntoCache() *Cache {
	c := ui.cache
	ui.cache = nil
	return c
}
