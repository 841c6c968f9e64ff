package gpumesh

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gridmesh"
	"github.com/gogpu/naga"
)

// Embedded grid shader source.
//
//go:embed shaders/grid.wgsl
var gridShaderSource string

// UniformSize is the byte size of the GridUniforms buffer.
const UniformSize = 16

// ShaderSource returns the WGSL source of the grid shader.
// Entry points are vs_main and fs_main. Bind group 0 holds the uniforms
// (binding 0), the atlas texture (binding 1) and its sampler (binding 2).
func ShaderSource() string {
	return gridShaderSource
}

// CompileShader compiles the grid shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(gridShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpumesh: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return code, nil
}

// Uniforms creates the uniform buffer contents for drawing a batch on a
// screen of the given pixel size.
func Uniforms(screen gridmesh.Size, textured bool) []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(float32(screen.Width)))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(float32(screen.Height)))
	var t float32
	if textured {
		t = 1
	}
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(t))
	return buf
}
