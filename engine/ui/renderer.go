package ui

import (
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/hubastard/canopy/engine/text"
)

// Antialiasing selects the smoothing strategy applied by the GPU backend.
// MSAA is requested at window creation (core.Config.Samples); the value
// here is advisory for backends that can toggle it per pass.
type Antialiasing int

const (
	AntialiasNone Antialiasing = iota
	AntialiasMSAA4x
)

type primKind uint8

const (
	primQuad primKind = iota
	primText
)

type primitive struct {
	kind primKind
	x, y float32 // top-left
	w, h float32
	col  colors.Color
	str  string
	size float32
	font *text.Font
}

// Renderer records widget draw primitives during the update phase and
// replays them through the batched 2D renderer during the render phase.
// It never issues GPU calls while recording, so Interface.Draw is safe to
// run from the main update schedule.
type Renderer struct {
	defaultFont *text.Font
	defaultSize float32
	antialias   Antialiasing
	fonts       []*text.Font
	prims       []primitive
}

// NewRenderer builds the recorder. defaultFont may be nil (text becomes a
// no-op), which test harnesses use to run without a GPU.
func NewRenderer(defaultFont *text.Font, defaultTextSize float32, aa Antialiasing) *Renderer {
	if defaultTextSize <= 0 {
		defaultTextSize = 16
	}
	return &Renderer{
		defaultFont: defaultFont,
		defaultSize: defaultTextSize,
		antialias:   aa,
		prims:       make([]primitive, 0, 256),
	}
}

// LoadFont registers an additional preloaded font.
func (r *Renderer) LoadFont(f *text.Font) { r.fonts = append(r.fonts, f) }

func (r *Renderer) DefaultFont() *text.Font    { return r.defaultFont }
func (r *Renderer) DefaultTextSize() float32   { return r.defaultSize }
func (r *Renderer) Antialiasing() Antialiasing { return r.antialias }

// FillQuad records a solid rectangle with top-left corner (x,y).
func (r *Renderer) FillQuad(x, y, w, h float32, col colors.Color) {
	if col[3] <= 0 || w <= 0 || h <= 0 {
		return
	}
	r.prims = append(r.prims, primitive{kind: primQuad, x: x, y: y, w: w, h: h, col: col})
}

// DrawString records a text run with top-left origin (x,y). A nil font
// falls back to the default; with no default the run is dropped.
func (r *Renderer) DrawString(x, y float32, s string, size float32, f *text.Font, col colors.Color) {
	if f == nil {
		f = r.defaultFont
	}
	if f == nil || s == "" || col[3] <= 0 {
		return
	}
	if size <= 0 {
		size = r.defaultSize
	}
	r.prims = append(r.prims, primitive{kind: primText, x: x, y: y, str: s, size: size, font: f, col: col})
}

// Measure returns the size of s at the given size using the default font.
// Without a font it reports zero, which collapses text to its padding.
func (r *Renderer) Measure(s string, size float32) (w, h float32) {
	if r.defaultFont == nil {
		return 0, 0
	}
	if size <= 0 {
		size = r.defaultSize
	}
	return text.MeasureText(r.defaultFont, s, size)
}

// PrimitiveCount reports the buffered primitives (diagnostics and tests).
func (r *Renderer) PrimitiveCount() int { return len(r.prims) }

// Recycle drops the buffered primitives, reclaiming the batch for the next
// recording pass.
func (r *Renderer) Recycle() { r.prims = r.prims[:0] }

// Present replays the buffered primitives into the 2D batch renderer under
// the given view-projection, then appends the overlay lines on top. The
// buffer is kept; the owner recycles it at the start of the next tick so a
// frame without new UI work can still re-present.
func (r *Renderer) Present(backend *renderer2d.Renderer2D, vp [16]float32, overlay []string) {
	backend.BeginScene(vp)
	for i := range r.prims {
		p := &r.prims[i]
		switch p.kind {
		case primQuad:
			backend.DrawQuad(p.x+p.w*0.5, p.y+p.h*0.5, p.w, p.h, p.col, 0)
		case primText:
			text.DrawTextSized(backend, p.font, p.x, p.y, p.str, p.size, p.col)
		}
	}
	if len(overlay) > 0 && r.defaultFont != nil {
		lineH := text.LineHeight(r.defaultFont)
		y := float32(8)
		for _, line := range overlay {
			text.DrawText(backend, r.defaultFont, 8, y, line, colors.Yellow)
			y += lineH
		}
	}
	backend.EndScene()
}
