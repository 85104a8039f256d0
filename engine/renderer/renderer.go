package renderer

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine/camera"
	"github.com/Carmen-Shannon/oxy-cube/engine/character"
	"github.com/Carmen-Shannon/oxy-cube/engine/model"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CubePipelineKey is the key of the single render pipeline drawing the cube.
const CubePipelineKey = "cube"

// transformsBinding is the binding of the Transforms uniform inside bind group 0.
const transformsBinding = 0

var (
	// ErrNilWindow is returned by Initialize when no window is supplied.
	ErrNilWindow = errors.New("window is nil")

	// ErrNoSurface is returned by Initialize when the window has no native surface.
	ErrNoSurface = errors.New("window has no surface")

	// ErrInvalidSize is returned by Initialize when the window client area is empty.
	ErrInvalidSize = errors.New("window size must be positive")

	// ErrAlreadyInitialized is returned by every Initialize call after the first attempt.
	ErrAlreadyInitialized = errors.New("renderer already initialized")
)

// DefaultClearColor is the color every frame is cleared to.
var DefaultClearColor = wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0}

// Surface is the part of a window the renderer draws into.
type Surface interface {
	// SurfaceDescriptor returns the platform surface descriptor, or nil if the window has none.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	// Width returns the client width in pixels.
	Width() int
	// Height returns the client height in pixels.
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	logger zerolog.Logger

	backendType RendererBackendType
	backend     RendererBackend

	character character.Character
	camera    camera.Camera
	cube      model.Model

	pipeline pipeline.Pipeline
	provider bind_group_provider.BindGroupProvider
	world    mgl32.Mat4

	clearColor wgpu.Color

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount

	attempted   bool
	initialized bool
}

// Renderer draws the character's cube every frame.
//
// Phases: uninitialized, initialized after a successful Initialize, then any number of
// Update and Render calls, and finally cleaned up by Cleanup. Initialize is single-shot.
type Renderer interface {
	// Initialize creates every GPU resource against the window's surface.
	// A failed attempt leaves partially created resources for Cleanup to release.
	//
	// Parameters:
	//   - surface: the window to draw into
	//
	// Returns:
	//   - error: ErrNilWindow, ErrNoSurface, ErrInvalidSize, ErrAlreadyInitialized or a wrapped backend error
	Initialize(surface Surface) error

	// Update advances the character by deltaTime seconds and recomputes the world matrix.
	//
	// Parameters:
	//   - deltaTime: the elapsed time in seconds
	Update(deltaTime float32)

	// Render draws one frame and presents it. It is a no-op until Initialize succeeds.
	// Frame errors are logged at debug level and otherwise ignored.
	Render()

	// Resize reconfigures the surface and the camera aspect ratio. Non-positive sizes are ignored.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Cleanup releases every GPU resource. Safe on a partially initialized or already cleaned renderer.
	Cleanup()

	// OnKeyDown forwards a key press to the character.
	//
	// Parameters:
	//   - keyCode: the key code
	OnKeyDown(keyCode uint32)

	// OnKeyUp forwards a key release to the character.
	//
	// Parameters:
	//   - keyCode: the key code
	OnKeyUp(keyCode uint32)

	// Character returns the character driven by this renderer.
	Character() character.Character

	// Camera returns the camera supplying view and projection.
	Camera() camera.Camera

	// Model returns the drawn mesh.
	Model() model.Model

	// WorldMatrix returns the world matrix computed by the last Update.
	WorldMatrix() mgl32.Mat4

	// Initialized reports whether Initialize succeeded and Cleanup has not run since.
	Initialized() bool
}

var _ Renderer = &renderer{}

// NewRenderer creates an uninitialized Renderer.
//
// Parameters:
//   - backendType: the GPU API to render with
//   - options: a variadic list of RendererBuilderOption
//
// Returns:
//   - Renderer: the renderer
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		logger:      log.Logger,
		backendType: backendType,
		clearColor:  DefaultClearColor,
		presentMode: PresentModeVSync,
		sampleCount: MSAA4x,
	}

	for _, opt := range options {
		opt(r)
	}

	if r.character == nil {
		r.character = character.NewCharacter(character.WithLogger(r.logger))
	}
	if r.camera == nil {
		r.camera = camera.NewCamera()
	}
	if r.cube == nil {
		r.cube = model.NewCube()
	}
	r.world = common.WorldMatrix(r.character.Position(), r.character.Rotation())

	return r
}

func (r *renderer) Initialize(surface Surface) error {
	if surface == nil {
		return ErrNilWindow
	}
	if r.attempted {
		return ErrAlreadyInitialized
	}
	descriptor := surface.SurfaceDescriptor()
	if descriptor == nil {
		return ErrNoSurface
	}
	width, height := surface.Width(), surface.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	r.attempted = true

	if r.backend == nil {
		switch r.backendType {
		case BackendTypeWGPU:
			r.backend = newWGPURendererBackend(r.forceFallbackAdapter, r.sampleCount)
		default:
			return fmt.Errorf("unsupported backend type %d", r.backendType)
		}
	}
	r.backend.SetPresentMode(r.presentMode)

	if err := r.backend.Init(descriptor); err != nil {
		return fmt.Errorf("failed to create graphics device: %w", err)
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("failed to configure surface: %w", err)
	}

	vert, frag, err := shader.NewCubeShaders()
	if err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}
	// The cube is opaque and wound clockwise when seen from outside.
	r.pipeline = pipeline.NewPipeline(CubePipelineKey,
		pipeline.WithVertexShader(vert),
		pipeline.WithFragmentShader(frag),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
		pipeline.WithFrontFace(wgpu.FrontFaceCW),
		pipeline.WithCullMode(wgpu.CullModeBack),
		pipeline.WithDepthTestEnabled(true),
		pipeline.WithDepthWriteEnabled(true),
		pipeline.WithBlendEnabled(false),
		pipeline.WithWriteMask(wgpu.ColorWriteMaskAll),
	)
	if err := r.backend.RegisterRenderPipeline(r.pipeline); err != nil {
		return fmt.Errorf("failed to create render pipeline: %w", err)
	}

	r.provider = bind_group_provider.NewBindGroupProvider(r.cube.Name(),
		bind_group_provider.WithIndexCount(r.cube.IndexCount()),
	)
	if err := r.backend.InitMeshBuffers(r.provider, r.cube.VertexData(), r.cube.IndexData()); err != nil {
		return fmt.Errorf("failed to create mesh buffers: %w", err)
	}
	layouts := mergeBindGroupLayouts(vert.BindGroupLayoutDescriptors(), frag.BindGroupLayoutDescriptors())
	if err := r.backend.InitBindGroup(r.provider, layouts[0]); err != nil {
		return fmt.Errorf("failed to create transform buffer: %w", err)
	}

	r.camera.SetViewport(width, height)
	r.world = common.WorldMatrix(r.character.Position(), r.character.Rotation())
	r.initialized = true

	r.logger.Info().
		Int("width", width).
		Int("height", height).
		Str("present_mode", r.presentMode.String()).
		Uint32("msaa", uint32(r.sampleCount)).
		Msg("renderer initialized")

	return nil
}

func (r *renderer) Update(deltaTime float32) {
	r.character.Update(deltaTime)
	r.world = common.WorldMatrix(r.character.Position(), r.character.Rotation())
}

func (r *renderer) Render() {
	if !r.initialized {
		return
	}

	uniform := camera.NewGPUTransformUniform(r.world, r.camera)
	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{
		bind_group_provider.NewBufferWrite(r.provider, transformsBinding, uniform.Marshal()),
	})

	if err := r.backend.BeginFrame(r.clearColor); err != nil {
		r.logger.Debug().Err(err).Msg("begin frame failed")
		return
	}
	if err := r.backend.DrawCall(r.pipeline, r.provider); err != nil {
		r.logger.Debug().Err(err).Msg("draw failed")
	}
	if err := r.backend.EndFrame(); err != nil {
		r.logger.Debug().Err(err).Msg("end frame failed")
	}
	r.backend.Present()
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.initialized {
		if err := r.backend.ConfigureSurface(width, height); err != nil {
			r.logger.Error().Err(err).Int("width", width).Int("height", height).Msg("failed to resize surface")
			return
		}
	}
	r.camera.SetViewport(width, height)
}

// Cleanup releases drawable resources before the pipeline and device they were created from.
func (r *renderer) Cleanup() {
	if r.provider != nil {
		r.provider.Release()
		r.provider = nil
	}
	if r.pipeline != nil {
		r.pipeline.Release()
		r.pipeline = nil
	}
	if r.backend != nil {
		r.backend.Release()
	}
	if r.initialized {
		r.logger.Debug().Msg("renderer cleaned up")
	}
	r.initialized = false
}

func (r *renderer) OnKeyDown(keyCode uint32) {
	r.character.OnKeyDown(keyCode)
}

func (r *renderer) OnKeyUp(keyCode uint32) {
	r.character.OnKeyUp(keyCode)
}

func (r *renderer) Character() character.Character {
	return r.character
}

func (r *renderer) Camera() camera.Camera {
	return r.camera
}

func (r *renderer) Model() model.Model {
	return r.cube
}

func (r *renderer) WorldMatrix() mgl32.Mat4 {
	return r.world
}

func (r *renderer) Initialized() bool {
	return r.initialized
}
