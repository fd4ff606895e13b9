package text

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRenderer is a GPU-less core.Renderer recording the batches the 2D
// renderer flushes.
type captureRenderer struct {
	verts []float32
	draws int
}

func (c *captureRenderer) Init() error              { return nil }
func (c *captureRenderer) Resize(w, h int)          {}
func (c *captureRenderer) Clear(r, g, b, a float32) {}

func (c *captureRenderer) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) {
	return "pipe", nil
}

func (c *captureRenderer) CreateTexture(core.TextureDesc) (core.Texture, error) {
	return new(int), nil
}

func (c *captureRenderer) CreateMesh(core.MeshDesc) (core.Mesh, error) { return "mesh", nil }

func (c *captureRenderer) UpdateMesh(m core.Mesh, vertices []float32, indices []uint32) error {
	c.verts = append(c.verts[:0], vertices...)
	return nil
}

func (c *captureRenderer) Draw(core.DrawCmd) { c.draws++ }

func (c *captureRenderer) GPUVendor() string   { return "test" }
func (c *captureRenderer) GPURenderer() string { return "test" }
func (c *captureRenderer) GPUVersion() string  { return "test" }
func (c *captureRenderer) Shutdown()           {}

// fixtureFont is a hand-built 32px atlas: two 20px-advance glyphs, no
// kerning, top bearing equal to the ascent.
func fixtureFont() *Font {
	glyph := func(r rune) Glyph {
		return Glyph{Rune: r, Advance: 20, BearingY: 24, W: 20, H: 24, U1: 1, V1: 1}
	}
	return &Font{
		SizePx:  32,
		Ascent:  24,
		Descent: -8,
		Glyphs:  map[rune]Glyph{'A': glyph('A'), 'B': glyph('B')},
		Texture: "atlas",
	}
}

func TestDrawTextSizedMatchesMeasuredWidth(t *testing.T) {
	rec := &captureRenderer{}
	r2d, err := renderer2d.New(rec, "", "", 64)
	require.NoError(t, err)
	font := fixtureFont()

	// Half the atlas size: the run must occupy half its native width.
	w, _ := MeasureText(font, "AB", 16)
	require.Equal(t, float32(20), w)

	r2d.BeginScene([16]float32{})
	DrawTextSized(r2d, font, 0, 0, "AB", 16, [4]float32{1, 1, 1, 1})
	r2d.EndScene()
	require.Equal(t, 1, rec.draws)

	// Two glyph quads, 4 vertices of 9 floats each; corner order TL TR BL
	// BR. The second pen advances by the scaled advance and the run ends
	// exactly at the measured width.
	require.Len(t, rec.verts, 2*4*9)
	assert.Equal(t, float32(0), rec.verts[0])     // 'A' left edge
	assert.Equal(t, float32(10), rec.verts[36])   // 'B' left edge
	assert.Equal(t, float32(20), rec.verts[36+9]) // 'B' right edge
}

func TestDrawTextDrawsAtNativeScale(t *testing.T) {
	rec := &captureRenderer{}
	r2d, err := renderer2d.New(rec, "", "", 64)
	require.NoError(t, err)
	font := fixtureFont()

	r2d.BeginScene([16]float32{})
	DrawText(r2d, font, 0, 0, "AB", [4]float32{1, 1, 1, 1})
	r2d.EndScene()

	require.Len(t, rec.verts, 2*4*9)
	assert.Equal(t, float32(20), rec.verts[36])   // 'B' left edge, full advance
	assert.Equal(t, float32(40), rec.verts[36+9]) // 'B' right edge
}
