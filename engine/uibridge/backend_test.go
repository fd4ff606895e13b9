package uibridge

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/renderer2d"
	"github.com/stretchr/testify/require"
)

// stubGPU is a GPU-less core.Renderer that counts submitted draw calls, so
// splice tests can observe whether a frame composited the UI batch.
type stubGPU struct {
	draws int
}

func (s *stubGPU) Init() error              { return nil }
func (s *stubGPU) Resize(w, h int)          {}
func (s *stubGPU) Clear(r, g, b, a float32) {}

func (s *stubGPU) CreatePipeline(core.PipelineDesc) (core.Pipeline, error) { return "pipe", nil }
func (s *stubGPU) CreateTexture(core.TextureDesc) (core.Texture, error)    { return new(int), nil }
func (s *stubGPU) CreateMesh(core.MeshDesc) (core.Mesh, error)             { return "mesh", nil }

func (s *stubGPU) UpdateMesh(core.Mesh, []float32, []uint32) error { return nil }
func (s *stubGPU) Draw(core.DrawCmd)                               { s.draws++ }

func (s *stubGPU) GPUVendor() string   { return "test" }
func (s *stubGPU) GPURenderer() string { return "test" }
func (s *stubGPU) GPUVersion() string  { return "test" }
func (s *stubGPU) Shutdown()           {}

// newTestBackend2D builds a real 2D batch renderer over the stub.
func newTestBackend2D(t *testing.T) (*renderer2d.Renderer2D, *stubGPU) {
	t.Helper()
	stub := &stubGPU{}
	backend, err := renderer2d.New(stub, "", "", 64)
	require.NoError(t, err)
	return backend, stub
}
