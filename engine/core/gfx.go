package core

// Opaque GPU resource handles. Concrete types live in the backend
// (engine/gfx/gl); handles must be comparable so batchers can detect
// already-bound resources.
type (
	Pipeline any
	Texture  any
	Mesh     any
)

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

// VertexAttrib describes one interleaved vertex attribute.
type VertexAttrib struct {
	Location int
	Size     int // component count (vec2 = 2, ...)
	Type     AttribType
	Offset   int // byte offset within the vertex
}

type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

type PipelineDesc struct {
	VertexSource   string // GLSL, null-terminated
	FragmentSource string
	DepthTest      bool
	Blend          bool // premultiplied-alpha-style src-alpha blending
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, row-major, top-left origin
	MinFilter     string // "nearest" or "linear"
	MagFilter     string
	WrapU         string // "clamp" or "repeat"
	WrapV         string
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd is one submitted draw: a pipeline, a mesh, and its bindings.
type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int // 0 = all indices currently in the mesh
	Uniforms   map[string]any
	Samplers   map[string]Texture
}

// Renderer abstraction over the GPU backend.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	// UpdateMesh re-uploads vertex/index data into an existing mesh.
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string

	Shutdown()
}
