package uibridge

import (
	"sync"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/ui"
)

// Props bundles the render resources shared between the update phase
// (recording) and the render node (presenting), guarded by one mutex.
type Props struct {
	mu sync.Mutex

	Renderer  *ui.Renderer
	Backend   *renderer2d.Renderer2D
	Debug     *Debug
	Clipboard Clipboard
}

func (p *Props) Lock()   { p.mu.Lock() }
func (p *Props) Unlock() { p.mu.Unlock() }

// Clipboard abstracts the host clipboard for widgets that paste or copy.
type Clipboard interface {
	ReadText() string
	WriteText(s string)
}

// NullClipboard is the fallback when the window backend has no clipboard.
type NullClipboard struct{}

func (NullClipboard) ReadText() string { return "" }
func (NullClipboard) WriteText(string) {}

type windowClipboard struct {
	win interface {
		ClipboardText() string
		SetClipboardText(string)
	}
}

func (w windowClipboard) ReadText() string   { return w.win.ClipboardText() }
func (w windowClipboard) WriteText(s string) { w.win.SetClipboardText(s) }

// ClipboardFor returns the window's clipboard when the backend exposes one.
func ClipboardFor(win core.Window) Clipboard {
	if c, ok := win.(interface {
		ClipboardText() string
		SetClipboardText(string)
	}); ok {
		return windowClipboard{win: c}
	}
	return NullClipboard{}
}
