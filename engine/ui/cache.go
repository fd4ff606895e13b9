package ui

// WidgetState is the retained interaction state of one widget.
type WidgetState struct {
	Hot    bool // pointer over the widget
	Active bool // press started inside and has not been released
}

// Cache carries widget state across frames. Opaque to callers: a bridge
// moves it between its session registry and each frame's Interface without
// inspecting it.
type Cache struct {
	state  map[string]WidgetState
	bounds [2]float32
}

func NewCache() *Cache {
	return &Cache{state: make(map[string]WidgetState, 64)}
}

// Bounds is the logical size the cache was last laid out against.
func (c *Cache) Bounds() (w, h float32) { return c.bounds[0], c.bounds[1] }

func (c *Cache) stateFor(id string) WidgetState {
	if id == "" {
		return WidgetState{}
	}
	return c.state[id]
}

func (c *Cache) setState(id string, st WidgetState) {
	if id == "" {
		return
	}
	c.state[id] = st
}
