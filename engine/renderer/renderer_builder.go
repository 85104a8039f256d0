package renderer

import (
	"github.com/Carmen-Shannon/oxy-cube/engine/camera"
	"github.com/Carmen-Shannon/oxy-cube/engine/character"
	"github.com/Carmen-Shannon/oxy-cube/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rs/zerolog"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend replaces the GPU backend selected by the backend type.
//
// Parameters:
//   - backend: the backend to render with
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.sampleCount = count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColor sets the color every frame is cleared to.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(color wgpu.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithCharacter sets the character whose transform is drawn.
//
// Parameters:
//   - c: the character
//
// Returns:
//   - RendererBuilderOption: a function that applies the character option to a renderer
func WithCharacter(c character.Character) RendererBuilderOption {
	return func(r *renderer) {
		r.character = c
	}
}

// WithCamera sets the camera supplying view and projection.
//
// Parameters:
//   - cam: the camera
//
// Returns:
//   - RendererBuilderOption: a function that applies the camera option to a renderer
func WithCamera(cam camera.Camera) RendererBuilderOption {
	return func(r *renderer) {
		r.camera = cam
	}
}

// WithModel sets the mesh drawn at the character's transform.
//
// Parameters:
//   - m: the mesh
//
// Returns:
//   - RendererBuilderOption: a function that applies the model option to a renderer
func WithModel(m model.Model) RendererBuilderOption {
	return func(r *renderer) {
		r.cube = m
	}
}

// WithLogger sets the logger used for lifecycle and frame error messages.
func WithLogger(logger zerolog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.logger = logger
	}
}
