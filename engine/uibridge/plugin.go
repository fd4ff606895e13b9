package uibridge

import (
	"fmt"
	"sync/atomic"

	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/scene"
	"github.com/hubastard/canopy/engine/text"
	"github.com/hubastard/canopy/engine/ui"
)

// Plugin owns the bridge state: the shared event queue, the session
// registry, the shared render props, and the splice render node. Create it
// with New and wire it with Install before the run loop starts.
type Plugin struct {
	settings Settings
	theme    atomic.Pointer[ui.Theme]
	style    ui.Style

	props      *Props
	registry   *Registry
	queue      *EventQueue
	translator *Translator

	win core.Window
	bus *core.Bus
	cam *scene.OrthoCamera2D

	viewport Viewport    // written by the tick-begin hook, read by Display
	didDraw  atomic.Bool // set by Display, swapped out by the splice update
	snapshot Snapshot    // render-side copy, owned by the splice node
}

func New(s Settings) *Plugin {
	s.applyDefaults()
	queue := &EventQueue{}
	p := &Plugin{
		settings:   s,
		props:      &Props{Debug: &Debug{}, Clipboard: NullClipboard{}},
		registry:   NewRegistry(),
		queue:      queue,
		translator: NewTranslator(queue),
	}
	p.theme.Store(themeFromSettings(s))
	p.style = styleFromSettings(s)
	p.props.Debug.SetEnabled(s.DebugOverlay)
	return p
}

func themeFromSettings(s Settings) *ui.Theme {
	theme := ui.ThemeByName(s.Theme)
	if s.Accent != "" {
		if accent, err := ParseHexColor(s.Accent); err == nil {
			theme.Accent = accent
		}
	}
	return theme
}

func styleFromSettings(s Settings) ui.Style {
	var style ui.Style
	if s.TextColor != "" {
		if c, err := ParseHexColor(s.TextColor); err == nil {
			style.TextColor = c
		}
	}
	return style
}

// Install loads the font, builds the GPU backend, and hooks the bridge into
// the engine: a tick-begin hook that refreshes the viewport and retranslates
// input, and a render node spliced after the main scene pass.
func (p *Plugin) Install(eng *core.Engine) error {
	fontData := p.settings.DefaultFontTTF
	if fontData == nil {
		var err error
		fontData, err = assets.LoadFont(p.settings.Font)
		if err != nil {
			return fmt.Errorf("uibridge: %w", err)
		}
	}
	font, err := text.LoadTTFBytes(eng.Renderer, fontData, p.settings.TextSize)
	if err != nil {
		return fmt.Errorf("uibridge: %w", err)
	}
	backend, err := renderer2d.New(eng.Renderer,
		renderer2d.DefaultVertexShader, renderer2d.DefaultFragmentShader,
		p.settings.MaxQuads)
	if err != nil {
		return fmt.Errorf("uibridge: %w", err)
	}

	aa := ui.AntialiasNone
	if p.settings.Antialiasing {
		aa = ui.AntialiasMSAA4x
	}
	p.props.Lock()
	p.props.Renderer = ui.NewRenderer(font, p.settings.TextSize, aa)
	for _, blob := range p.settings.ExtraFonts {
		extra, err := text.LoadTTFBytes(eng.Renderer, blob, p.settings.TextSize)
		if err != nil {
			p.props.Unlock()
			return fmt.Errorf("uibridge: extra font: %w", err)
		}
		p.props.Renderer.LoadFont(extra)
	}
	p.props.Backend = backend
	p.props.Clipboard = ClipboardFor(eng.Window)
	p.props.Unlock()

	p.win = eng.Window
	p.bus = eng.Bus
	p.cam = scene.NewOrtho2D(1, 1)
	p.viewport = FromWindow(eng.Window, p.settings.ScaleOverride)

	eng.OnTickBegin(func(e *core.Engine) {
		p.viewport = FromWindow(e.Window, p.settings.ScaleOverride)
		p.translator.Tick(e.Window, p.viewport)
	})

	eng.Graph.AddNode(SpliceNodeName, &spliceNode{p: p})
	eng.Graph.AddEdge(core.CameraDriverNode, SpliceNodeName)
	return nil
}

// attach wires the plugin to a window and bus without touching the GPU.
// Test harnesses use it in place of Install.
func (p *Plugin) attach(win core.Window, bus *core.Bus) {
	p.win = win
	p.bus = bus
	p.cam = scene.NewOrtho2D(1, 1)
	p.props.Lock()
	if p.props.Renderer == nil {
		aa := ui.AntialiasNone
		if p.settings.Antialiasing {
			aa = ui.AntialiasMSAA4x
		}
		p.props.Renderer = ui.NewRenderer(nil, p.settings.TextSize, aa)
	}
	p.props.Unlock()
	p.viewport = FromWindow(win, p.settings.ScaleOverride)
}

// Props exposes the shared render resources (clipboard, debug overlay).
func (p *Plugin) Props() *Props { return p.props }

func (p *Plugin) Theme() *ui.Theme { return p.theme.Load() }

// SetTheme swaps the active theme. Safe to call from a watcher goroutine.
func (p *Plugin) SetTheme(t *ui.Theme) {
	if t != nil {
		p.theme.Store(t)
	}
}

// ApplySettings applies the reloadable subset of settings: theme, accent
// and the debug overlay toggle. Font, text size and GPU options stay as
// installed.
func (p *Plugin) ApplySettings(s Settings) {
	s.applyDefaults()
	p.theme.Store(themeFromSettings(s))
	p.props.Lock()
	p.style = styleFromSettings(s)
	p.props.Unlock()
	p.props.Debug.SetEnabled(s.DebugOverlay)
}

// Viewport is the bridge's current update-phase viewport.
func (p *Plugin) Viewport() Viewport { return p.viewport }

// Context binds a UI session to its registered bus topic. The plugin must
// be installed and the topic registered before the first Display; both are
// wiring errors and panic.
func (p *Plugin) Context(session string) *Context {
	if p.win == nil || p.bus == nil {
		panic("uibridge: Context called before Install")
	}
	topic, ok := p.bus.Lookup(session)
	if !ok {
		panic(fmt.Sprintf("uibridge: session %q has no registered bus topic", session))
	}
	return &Context{p: p, session: session, topic: topic}
}
