package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// All matrices are mgl32.Mat4 values stored in column-major order, which is the layout WGSL
// expects for mat4x4<f32> uniforms. The view and projection helpers follow left-handed
// conventions (+Z into the screen) with a [0, 1] clip-space depth range, matching WebGPU.

// DegToRad converts an angle in degrees to radians.
//
// Parameters:
//   - degrees: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func DegToRad(degrees float32) float32 {
	return float32(float64(degrees) * math.Pi / 180.0)
}

// WrapDegrees normalizes an angle into the half-open range [0, 360).
//
// Parameters:
//   - degrees: the angle in degrees, any magnitude or sign
//
// Returns:
//   - float32: the equivalent angle in [0, 360)
func WrapDegrees(degrees float32) float32 {
	d := math.Mod(float64(degrees), 360.0)
	if d < 0 {
		d += 360.0
	}
	w := float32(d)
	// float32 rounding can push values just below 360 up to exactly 360.
	if w >= 360 {
		w = 0
	}
	return w
}

// LookAtLH creates a left-handed view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space. If eye and at
// coincide, or up is parallel to the view direction, the identity matrix is returned.
//
// Parameters:
//   - eye: camera position in world space
//   - at: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAtLH(eye, at, up mgl32.Vec3) mgl32.Mat4 {
	dir := at.Sub(eye)
	if dir.Len() == 0 {
		return mgl32.Ident4()
	}
	z := dir.Normalize()

	x := up.Cross(z)
	if x.Len() == 0 {
		return mgl32.Ident4()
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl32.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveLH creates a left-handed perspective projection matrix mapping view-space depth
// in [near, far] to clip-space depth in [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func PerspectiveLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	yScale := float32(1.0 / math.Tan(float64(fovY)/2.0))
	xScale := yScale / aspect
	depthRange := far / (far - near)

	return mgl32.Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, depthRange, 1,
		0, 0, -near * depthRange, 0,
	}
}

// WorldMatrix builds a model-to-world matrix from a yaw rotation about the vertical axis followed
// by a translation. Rotation is applied first, then translation.
//
// Parameters:
//   - position: translation in world space
//   - yawDegrees: rotation about +Y in degrees
//
// Returns:
//   - mgl32.Mat4: the world matrix
func WorldMatrix(position mgl32.Vec3, yawDegrees float32) mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DY(DegToRad(yawDegrees))
	translation := mgl32.Translate3D(position[0], position[1], position[2])
	return translation.Mul4(rotation)
}
