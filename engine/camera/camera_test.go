package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 2, -10}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.At())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.InDelta(t, math.Pi/4, c.Fov(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, DefaultNear, c.Near())
	assert.Equal(t, DefaultFar, c.Far())
}

func TestTargetProjectsToScreenCenter(t *testing.T) {
	c := NewCamera(WithAspect(16.0 / 9.0))
	clip := c.ProjectionMatrix().Mul4(c.ViewMatrix()).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	require.Greater(t, clip[3], float32(0))

	ndc := clip.Vec3().Mul(1 / clip[3])
	assert.InDelta(t, 0, ndc[0], 1e-5)
	assert.InDelta(t, 0, ndc[1], 1e-5)
	assert.Greater(t, ndc[2], float32(0))
	assert.Less(t, ndc[2], float32(1))
}

func TestPointAboveTargetIsUpOnScreen(t *testing.T) {
	c := NewCamera()
	vp := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	clip := vp.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.Greater(t, clip[1]/clip[3], float32(0))

	// +X is to the right when looking down +Z in a left-handed system.
	clip = vp.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.Greater(t, clip[0]/clip[3], float32(0))
}

func TestSetViewport(t *testing.T) {
	c := NewCamera()
	c.SetViewport(1280, 720)
	assert.InDelta(t, 1280.0/720.0, c.Aspect(), 1e-6)
	assert.Equal(t, common.PerspectiveLH(c.Fov(), 1280.0/720.0, c.Near(), c.Far()), c.ProjectionMatrix())

	c.SetViewport(0, 720)
	c.SetViewport(1280, -1)
	c.SetAspect(0)
	assert.InDelta(t, 1280.0/720.0, c.Aspect(), 1e-6)
}

func TestSetLookAt(t *testing.T) {
	c := NewCamera()
	c.SetLookAt(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 5, p[2], 1e-5)
}

func TestGPUTransformUniformMarshal(t *testing.T) {
	c := NewCamera()
	world := mgl32.Translate3D(1, 2, 3)
	u := NewGPUTransformUniform(world, c)
	require.Equal(t, 192, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 192)

	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	// Column-major: the translation lives in elements 12..14 of the world matrix.
	assert.Equal(t, float32(1), read(12*4))
	assert.Equal(t, float32(2), read(13*4))
	assert.Equal(t, float32(3), read(14*4))
	assert.Equal(t, c.ViewMatrix()[0], read(64))
	assert.Equal(t, c.ProjectionMatrix()[15], read(128+15*4))
}
