package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUTransformUniformSource is the canonical WGSL definition of the Transforms struct.
// Matches GPUTransformUniform layout exactly (192 bytes).
//
//go:embed assets/transform_uniform.wgsl
var GPUTransformUniformSource string

// GPUTransformUniform is the GPU-aligned representation of the transform uniform buffer.
// Matches the WGSL Transforms struct (see GPUTransformUniformSource): three column-major mat4x4<f32>.
// Size: 192 bytes.
type GPUTransformUniform struct {
	World      mgl32.Mat4 // offset   0
	View       mgl32.Mat4 // offset  64
	Projection mgl32.Mat4 // offset 128
}

// NewGPUTransformUniform packs a world matrix together with the camera's view and projection.
//
// Parameters:
//   - world: the model-to-world matrix
//   - cam: the camera supplying view and projection
//
// Returns:
//   - GPUTransformUniform: the packed uniform
func NewGPUTransformUniform(world mgl32.Mat4, cam Camera) GPUTransformUniform {
	return GPUTransformUniform{
		World:      world,
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
	}
}

// Size returns the size of the GPUTransformUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (192)
func (g *GPUTransformUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUTransformUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUTransformUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for m, mat := range [3]mgl32.Mat4{g.World, g.View, g.Projection} {
		for i := range 16 {
			binary.LittleEndian.PutUint32(buf[m*64+i*4:], math.Float32bits(mat[i]))
		}
	}
	return buf
}
