package gpumesh

import "github.com/gogpu/gputypes"

// VertexStride is the byte stride per packed vertex.
// Layout per vertex:
//
//	position (vec4<f32>) = 16 bytes (location 0)
//	uv       (vec2<f32>) =  8 bytes (location 1)
//	color    (vec4<f32>) = 16 bytes (location 2)
const VertexStride = 40

// Pipeline constants matching the packed data.
const (
	IndexFormat = gputypes.IndexFormatUint32
	Topology    = gputypes.PrimitiveTopologyTriangleList
)

// VertexLayout returns the vertex buffer layout of packed batches.
// Matches VertexInput in shaders/grid.wgsl.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 1}, // uv
				{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: 2}, // color
			},
		},
	}
}
