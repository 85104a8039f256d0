package camera

import (
	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultFovDegrees is the default vertical field of view in degrees.
	DefaultFovDegrees float32 = 45.0

	// DefaultNear is the default near clipping plane distance.
	DefaultNear float32 = 0.01

	// DefaultFar is the default far clipping plane distance.
	DefaultFar float32 = 100.0
)

type cameraImpl struct {
	eye mgl32.Vec3
	at  mgl32.Vec3
	up  mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
}

// Camera is a fixed look-at camera with a left-handed perspective projection.
// The view and projection matrices are recomputed whenever a parameter changes, so reads are free.
type Camera interface {
	// Eye returns the camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space camera position
	Eye() mgl32.Vec3

	// At returns the point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space look-at target
	At() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// SetLookAt repositions the camera and recomputes the view matrix.
	//
	// Parameters:
	//   - eye: camera position
	//   - at: look-at target
	//   - up: up vector
	SetLookAt(eye, at, up mgl32.Vec3)

	// SetAspect sets the aspect ratio and recomputes the projection matrix.
	// Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: the aspect ratio (width / height)
	SetAspect(aspect float32)

	// SetViewport sets the aspect ratio from a viewport size in pixels.
	// Sizes with a non-positive dimension are ignored.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	SetViewport(width, height int)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at (0, 2, -10) looking at the origin with +Y up,
// a 45 degree vertical field of view and near/far planes of 0.01/100.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		eye:    mgl32.Vec3{0, 2, -10},
		at:     mgl32.Vec3{0, 0, 0},
		up:     mgl32.Vec3{0, 1, 0},
		fov:    common.DegToRad(DefaultFovDegrees),
		aspect: 1.0,
		near:   DefaultNear,
		far:    DefaultFar,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	return c.eye
}

func (c *cameraImpl) At() mgl32.Vec3 {
	return c.at
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projectionMatrix
}

func (c *cameraImpl) SetLookAt(eye, at, up mgl32.Vec3) {
	c.eye = eye
	c.at = at
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

// updateMatrices recalculates the view and projection matrices from the current parameters.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = common.LookAtLH(c.eye, c.at, c.up)
	c.projectionMatrix = common.PerspectiveLH(c.fov, c.aspect, c.near, c.far)
}
