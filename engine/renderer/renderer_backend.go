package renderer

import (
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// String returns the config name of the present mode.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	default:
		return "unknown"
	}
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the GPU API the Renderer drives. Every call happens on the render thread.
//
// Lifecycle:
//  1. Init creates the device against a window surface
//  2. ConfigureSurface sizes the swapchain and depth target (again on every resize)
//  3. RegisterRenderPipeline, InitMeshBuffers and InitBindGroup create the drawable resources
//  4. WriteBuffers, BeginFrame, DrawCall, EndFrame and Present run once per frame
//  5. Release frees the device level resources
type RendererBackend interface {
	// Init creates the instance, surface, adapter, device and queue.
	//
	// Parameters:
	//   - surfaceDescriptor: the platform surface of the target window
	//
	// Returns:
	//   - error: an error if any device level object could not be created
	Init(surfaceDescriptor *wgpu.SurfaceDescriptor) error

	// ConfigureSurface (re)configures the swapchain and recreates the depth and MSAA targets.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	//
	// Returns:
	//   - error: an error if a render target could not be created
	ConfigureSurface(width, height int) error

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// RegisterRenderPipeline compiles the pipeline's shaders and stores the created GPU pipeline on it.
	//
	// Parameters:
	//   - p: the pipeline description, which must carry a vertex and a fragment shader
	//
	// Returns:
	//   - error: an error if shader compilation or pipeline creation fails
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers uploads vertex and index data into new GPU buffers stored on the provider.
	// The provider's index count must fit in indexData.
	//
	// Parameters:
	//   - provider: the BindGroupProvider receiving the buffers
	//   - vertexData: the raw vertex bytes
	//   - indexData: the raw uint32 index bytes
	//
	// Returns:
	//   - error: an error if the index count exceeds indexData or buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte) error

	// InitBindGroup creates the uniform buffers and bind group described by descriptor.
	//
	// Parameters:
	//   - provider: the BindGroupProvider receiving the buffers and bind group
	//   - descriptor: the shader reflected layout of the group
	//
	// Returns:
	//   - error: an error if buffer or bind group creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// WriteBuffers queues the given writes. Writes to bindings without a buffer are skipped.
	//
	// Parameters:
	//   - writes: the buffer writes to queue
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	//
	// Parameters:
	//   - clearColor: the color the target is cleared to; depth is cleared to 1.0
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame(clearColor wgpu.Color) error

	// DrawCall binds the pipeline, bind group and mesh buffers of provider and issues one indexed draw.
	//
	// Parameters:
	//   - p: the registered pipeline
	//   - provider: the BindGroupProvider holding mesh buffers and the group 0 bind group
	//
	// Returns:
	//   - error: an error if no frame is in progress or the pipeline was never registered
	DrawCall(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider) error

	// EndFrame ends the render pass and submits the recorded commands.
	//
	// Returns:
	//   - error: an error if the command buffer could not be finished
	EndFrame() error

	// Present shows the frame acquired by BeginFrame. It is a no-op without one.
	Present()

	// Release frees the render targets, device and surface. Safe to call more than once.
	Release()
}
