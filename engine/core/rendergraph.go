package core

import (
	"fmt"
	"sort"
)

// Frame describes the current render target: the default framebuffer at
// its physical pixel size. W or H below 1 means there is nothing to render
// into this frame (minimized window).
type Frame struct {
	W, H  int
	Alpha float64 // fixed-timestep interpolation factor [0..1]
}

// RenderNode is one pass in the render graph. Update runs once per frame on
// every node before any node records commands; Run records the pass.
type RenderNode interface {
	Update(e *Engine)
	Run(e *Engine, f *Frame) error
}

// RenderGraph schedules named render nodes honoring "runs after" edges.
type RenderGraph struct {
	nodes map[string]RenderNode
	after map[string][]string // node -> nodes it must run after
	order []string
	dirty bool
}

func NewRenderGraph() *RenderGraph {
	return &RenderGraph{
		nodes: map[string]RenderNode{},
		after: map[string][]string{},
	}
}

// AddNode registers a node under a unique name.
func (g *RenderGraph) AddNode(name string, n RenderNode) {
	if _, ok := g.nodes[name]; ok {
		panic(fmt.Sprintf("core: render node %q added twice", name))
	}
	g.nodes[name] = n
	g.dirty = true
}

// AddEdge declares that node `after` runs after node `before`. Both must
// already be registered.
func (g *RenderGraph) AddEdge(before, after string) {
	if _, ok := g.nodes[before]; !ok {
		panic(fmt.Sprintf("core: render edge references unknown node %q", before))
	}
	if _, ok := g.nodes[after]; !ok {
		panic(fmt.Sprintf("core: render edge references unknown node %q", after))
	}
	g.after[after] = append(g.after[after], before)
	g.dirty = true
}

// Execute runs every node's Update phase, then every Run phase in
// dependency order. The first node error aborts the frame.
func (g *RenderGraph) Execute(e *Engine, f *Frame) error {
	if g.dirty {
		g.sort()
	}
	for _, name := range g.order {
		g.nodes[name].Update(e)
	}
	for _, name := range g.order {
		if err := g.nodes[name].Run(e, f); err != nil {
			return fmt.Errorf("render node %q: %w", name, err)
		}
	}
	return nil
}

// sort computes a stable topological order (Kahn). Cycles are a host
// misconfiguration and panic.
func (g *RenderGraph) sort() {
	indeg := make(map[string]int, len(g.nodes))
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		indeg[name] = len(g.after[name])
		names = append(names, name)
	}
	// Deterministic order independent of map iteration.
	sort.Strings(names)

	order := make([]string, 0, len(names))
	ready := make([]string, 0, len(names))
	for _, n := range names {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n)
		for _, m := range names {
			for _, dep := range g.after[m] {
				if dep == n {
					indeg[m]--
					if indeg[m] == 0 {
						ready = append(ready, m)
					}
				}
			}
		}
	}
	if len(order) != len(g.nodes) {
		panic("core: render graph has a cycle")
	}
	g.order = order
	g.dirty = false
}

// CameraDriver is the main scene pass: it invokes the App's render hook and
// the layer stack. UI passes declare an edge after this node to composite on
// top of the scene.
type CameraDriver struct {
	app App
}

func NewCameraDriver(app App) *CameraDriver { return &CameraDriver{app: app} }

func (c *CameraDriver) Update(e *Engine) {}

func (c *CameraDriver) Run(e *Engine, f *Frame) error {
	if f.W < 1 || f.H < 1 {
		return nil
	}
	c.app.OnRender(e, f.Alpha)
	e.Layers.ForEach(func(l Layer) { l.OnRender(e, f.Alpha) })
	return nil
}

// CameraDriverNode is the well-known name of the main scene pass.
const CameraDriverNode = "camera_driver"
