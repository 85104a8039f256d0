package character

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func newQuietCharacter(options ...CharacterBuilderOption) Character {
	return NewCharacter(append([]CharacterBuilderOption{WithLogger(zerolog.Nop())}, options...)...)
}

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], epsilon, "component %d of %v", i, actual)
	}
}

func TestNewCharacterDefaults(t *testing.T) {
	c := newQuietCharacter()
	assertVec3(t, mgl32.Vec3{}, c.Position())
	assert.Equal(t, float32(0), c.Rotation())
	assert.Equal(t, DefaultSpeed, c.Speed())
	assert.Equal(t, DefaultRotationSpeed, c.RotationSpeed())
	require.NotNil(t, c.Controls())
}

func TestNewCharacterOptions(t *testing.T) {
	tr := input.NewTracker(input.WithLogger(zerolog.Nop()))
	c := newQuietCharacter(
		WithSpeed(2),
		WithRotationSpeed(90),
		WithPosition(1, 2, 3),
		WithRotation(-90),
		WithControls(tr),
	)
	assert.Equal(t, float32(2), c.Speed())
	assert.Equal(t, float32(90), c.RotationSpeed())
	assertVec3(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.InDelta(t, 270, c.Rotation(), epsilon)
	assert.Same(t, tr, c.Controls())
}

func TestNegativeSpeedsClamp(t *testing.T) {
	c := newQuietCharacter(WithSpeed(-1), WithRotationSpeed(-5))
	assert.Equal(t, float32(0), c.Speed())
	assert.Equal(t, float32(0), c.RotationSpeed())
}

func TestUpdateWithoutKeysDoesNothing(t *testing.T) {
	c := newQuietCharacter(WithPosition(1, 1, 1), WithRotation(30))
	c.Update(1)
	assertVec3(t, mgl32.Vec3{1, 1, 1}, c.Position())
	assert.InDelta(t, 30, c.Rotation(), epsilon)
}

func TestUpdateNonPositiveDeltaIsNoop(t *testing.T) {
	c := newQuietCharacter()
	c.OnKeyDown(common.KeyW)
	c.OnKeyDown(common.KeySpace)

	c.Update(0)
	c.Update(-1)

	assertVec3(t, mgl32.Vec3{}, c.Position())
	assert.Equal(t, float32(0), c.Rotation())
}

func TestUpdateNonFiniteDeltaIsNoop(t *testing.T) {
	c := newQuietCharacter(WithPosition(1, 2, 3), WithRotation(30))
	c.OnKeyDown(common.KeyW)
	c.OnKeyDown(common.KeySpace)

	c.Update(float32(math.NaN()))
	c.Update(float32(math.Inf(1)))

	assertVec3(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.InDelta(t, 30, c.Rotation(), epsilon)
}

func TestHugeDeltaKeepsTransformFinite(t *testing.T) {
	c := newQuietCharacter()
	c.OnKeyDown(common.KeyW)
	c.OnKeyDown(common.KeyD)
	c.OnKeyDown(common.KeyUp)
	c.OnKeyDown(common.KeySpace)

	for _, dt := range []float32{1e37, 1e38, 3e38, math.MaxFloat32, 1e38, 3e38} {
		c.Update(dt)

		r := c.Rotation()
		require.False(t, math.IsNaN(float64(r)), "rotation after dt=%g", dt)
		require.GreaterOrEqual(t, r, float32(0))
		require.Less(t, r, float32(360))
		for i, v := range c.Position() {
			require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "component %d after dt=%g is %v", i, dt, v)
		}
	}
	assert.Equal(t, float32(math.MaxFloat32), c.Position()[1])
}

func TestSingleActionMovement(t *testing.T) {
	cases := []struct {
		name     string
		key      uint32
		rotation float32
		expected mgl32.Vec3
	}{
		{name: "forward", key: common.KeyW, expected: mgl32.Vec3{0, 0, 0.5}},
		{name: "backward", key: common.KeyS, expected: mgl32.Vec3{0, 0, -0.5}},
		{name: "strafe left", key: common.KeyA, expected: mgl32.Vec3{-0.5, 0, 0}},
		{name: "strafe right", key: common.KeyD, expected: mgl32.Vec3{0.5, 0, 0}},
		{name: "up", key: common.KeyUp, expected: mgl32.Vec3{0, 0.5, 0}},
		{name: "down", key: common.KeyDown, expected: mgl32.Vec3{0, -0.5, 0}},
		{name: "forward rotated 90", key: common.KeyW, rotation: 90, expected: mgl32.Vec3{0.5, 0, 0}},
		{name: "strafe right rotated 90", key: common.KeyD, rotation: 90, expected: mgl32.Vec3{0, 0, -0.5}},
		{name: "up ignores rotation", key: common.KeyUp, rotation: 45, expected: mgl32.Vec3{0, 0.5, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newQuietCharacter(WithRotation(tc.rotation))
			c.OnKeyDown(tc.key)
			c.Update(1)
			assertVec3(t, tc.expected, c.Position())
			assert.InDelta(t, tc.rotation, c.Rotation(), epsilon)
		})
	}
}

func TestMovementScalesWithDelta(t *testing.T) {
	c := newQuietCharacter()
	c.OnKeyDown(common.KeyW)
	for range 60 {
		c.Update(1.0 / 60.0)
	}
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, c.Position())
}

func TestDiagonalMovementIsNotNormalized(t *testing.T) {
	c := newQuietCharacter()
	c.OnKeyDown(common.KeyW)
	c.OnKeyDown(common.KeyD)
	c.Update(1)

	assertVec3(t, mgl32.Vec3{0.5, 0, 0.5}, c.Position())
	assert.Greater(t, c.Position().Len(), float32(0.5))
}

func TestOpposingActionsCancel(t *testing.T) {
	c := newQuietCharacter()
	c.OnKeyDown(common.KeyW)
	c.OnKeyDown(common.KeyS)
	c.OnKeyDown(common.KeyA)
	c.OnKeyDown(common.KeyD)
	c.Update(1)
	assertVec3(t, mgl32.Vec3{}, c.Position())
}

func TestRotationUsesStartOfUpdateHeading(t *testing.T) {
	// Rotation changes by a full 90 degrees in this update, but movement uses the heading it started with.
	c := newQuietCharacter(WithRotationSpeed(90))
	c.OnKeyDown(common.KeyW)
	c.OnKeyDown(common.KeySpace)
	c.Update(1)

	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, c.Position())
	assert.InDelta(t, 90, c.Rotation(), epsilon)

	c.Update(1)
	assertVec3(t, mgl32.Vec3{0.5, 0, 0.5}, c.Position())
	assert.InDelta(t, 180, c.Rotation(), epsilon)
}

func TestRotationWraps(t *testing.T) {
	c := newQuietCharacter(WithRotation(358))
	c.OnKeyDown(common.KeySpace)
	c.Update(1)
	assert.InDelta(t, 3, c.Rotation(), epsilon)

	for range 1000 {
		c.Update(0.7)
		r := c.Rotation()
		require.GreaterOrEqual(t, r, float32(0))
		require.Less(t, r, float32(360))
	}
}

func TestKeyReleaseStopsMovement(t *testing.T) {
	c := newQuietCharacter()
	c.OnKeyDown(common.KeyW)
	c.Update(1)
	c.OnKeyUp(common.KeyW)
	c.Update(1)
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, c.Position())
}

func TestCustomBindingsDriveMovement(t *testing.T) {
	tr := input.NewTracker(
		input.WithLogger(zerolog.Nop()),
		input.WithBindings(input.Bindings{input.ActionMoveUp: common.KeyE}),
	)
	c := newQuietCharacter(WithControls(tr))

	c.OnKeyDown(common.KeyUp)
	c.Update(1)
	assertVec3(t, mgl32.Vec3{}, c.Position())

	c.OnKeyDown(common.KeyE)
	c.Update(1)
	assertVec3(t, mgl32.Vec3{0, 0.5, 0}, c.Position())
}
