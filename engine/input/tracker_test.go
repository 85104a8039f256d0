package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuietTracker(options ...TrackerBuilderOption) Tracker {
	return NewTracker(append([]TrackerBuilderOption{WithLogger(zerolog.Nop())}, options...)...)
}

func TestUnseenKeysAreNotDown(t *testing.T) {
	tr := newQuietTracker()
	for code := uint32(0); code < 512; code++ {
		assert.False(t, tr.IsKeyDown(code), "key %d", code)
	}
	for _, a := range Actions() {
		assert.False(t, tr.ActionDown(a), "action %s", a)
	}
}

func TestKeyDownThenUp(t *testing.T) {
	tr := newQuietTracker()

	tr.KeyDown(common.KeyW)
	assert.True(t, tr.IsKeyDown(common.KeyW))
	assert.False(t, tr.IsKeyDown(common.KeyS))

	tr.KeyUp(common.KeyW)
	assert.False(t, tr.IsKeyDown(common.KeyW))
}

func TestKeyUpWithoutKeyDown(t *testing.T) {
	tr := newQuietTracker()
	tr.KeyUp(common.KeyA)
	assert.False(t, tr.IsKeyDown(common.KeyA))
}

func TestRepeatedKeyDownIsIdempotent(t *testing.T) {
	tr := newQuietTracker()
	tr.KeyDown(common.KeySpace)
	tr.KeyDown(common.KeySpace)
	assert.True(t, tr.IsKeyDown(common.KeySpace))
	tr.KeyUp(common.KeySpace)
	assert.False(t, tr.IsKeyDown(common.KeySpace))
}

func TestActionDownUsesDefaultBindings(t *testing.T) {
	tr := newQuietTracker()
	for a, code := range DefaultBindings() {
		tr.KeyDown(code)
		assert.True(t, tr.ActionDown(a), "action %s", a)
		tr.KeyUp(code)
		assert.False(t, tr.ActionDown(a), "action %s", a)
	}
}

func TestActionDownCustomBindings(t *testing.T) {
	tr := newQuietTracker(WithBindings(Bindings{ActionRotate: common.KeyE}))

	tr.KeyDown(common.KeySpace)
	assert.False(t, tr.ActionDown(ActionRotate))

	tr.KeyDown(common.KeyE)
	assert.True(t, tr.ActionDown(ActionRotate))

	// Only rotate is bound; every other action stays up regardless of key state.
	tr.KeyDown(common.KeyW)
	assert.False(t, tr.ActionDown(ActionMoveForward))
}

func TestBindingsReturnsCopy(t *testing.T) {
	tr := newQuietTracker()
	b := tr.Bindings()
	b[ActionRotate] = common.KeyQ

	tr.KeyDown(common.KeySpace)
	assert.True(t, tr.ActionDown(ActionRotate))
}

func TestReset(t *testing.T) {
	tr := newQuietTracker()
	tr.KeyDown(common.KeyW)
	tr.KeyDown(common.KeyD)
	tr.Reset()
	assert.False(t, tr.IsKeyDown(common.KeyW))
	assert.False(t, tr.IsKeyDown(common.KeyD))
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction(" Move_Forward ")
	require.NoError(t, err)
	assert.Equal(t, ActionMoveForward, got)

	_, err = ParseAction("jump")
	assert.Error(t, err)
}

func TestActionStringOutOfRange(t *testing.T) {
	assert.Equal(t, "action(42)", Action(42).String())
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(map[string]string{"rotate": "R", "move_up": "q"})
	require.NoError(t, err)
	assert.Equal(t, uint32('R'), b[ActionRotate])
	assert.Equal(t, uint32(common.KeyQ), b[ActionMoveUp])
	assert.Equal(t, uint32(common.KeyW), b[ActionMoveForward])

	_, err = ParseBindings(map[string]string{"fly": "F"})
	assert.Error(t, err)

	_, err = ParseBindings(map[string]string{"rotate": "hyperdrive"})
	assert.Error(t, err)
}
