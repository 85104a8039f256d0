package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine"
	"github.com/Carmen-Shannon/oxy-cube/engine/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, override string) *config.Config {
	t.Helper()
	if override == "" {
		cfg, err := config.Load()
		require.NoError(t, err)
		return cfg
	}
	path := filepath.Join(t.TempDir(), "cube.yaml")
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestNewRendererDefaults(t *testing.T) {
	r, err := newRenderer(loadConfig(t, ""))
	require.NoError(t, err)

	c := r.Character()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Position())
	assert.Equal(t, float32(0), c.Rotation())
	assert.Equal(t, float32(0.5), c.Speed())
	assert.Equal(t, float32(5), c.RotationSpeed())

	cam := r.Camera()
	assert.Equal(t, mgl32.Vec3{0, 2, -10}, cam.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.At())
	assert.InDelta(t, common.DegToRad(45), cam.Fov(), 1e-6)
	assert.InDelta(t, 1280.0/720.0, cam.Aspect(), 1e-6)
	assert.Equal(t, float32(0.01), cam.Near())
	assert.Equal(t, float32(100), cam.Far())

	assert.Equal(t, 36, r.Model().IndexCount())
	assert.False(t, r.Initialized())
}

func TestNewRendererOverrides(t *testing.T) {
	r, err := newRenderer(loadConfig(t, `
character:
  position: [1, 2, 3]
  rotation: 360
  bindings:
    move_forward: up
cube:
  half_extent: 2
`))
	require.NoError(t, err)

	c := r.Character()
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.Equal(t, float32(0), c.Rotation())

	r.OnKeyDown(common.KeyUp)
	r.Update(1)
	assert.InDelta(t, 3.5, c.Position().Z(), 1e-4)

	for _, v := range r.Model().Vertices() {
		assert.InDelta(t, 2, math.Abs(float64(v.Position[0])), 1e-6)
	}
}

func TestEngineOptionsClock(t *testing.T) {
	r, err := newRenderer(loadConfig(t, ""))
	require.NoError(t, err)

	e := engine.NewEngine(engineOptions(loadConfig(t, ""), false, nil, r)...)
	fixed, ok := e.Clock().(*engine.FixedClock)
	require.True(t, ok)
	assert.InDelta(t, 1.0/60, fixed.Step(), 1e-7)

	e = engine.NewEngine(engineOptions(loadConfig(t, "clock:\n  mode: measured\n"), false, nil, r)...)
	_, ok = e.Clock().(*engine.MeasuredClock)
	assert.True(t, ok)
}
