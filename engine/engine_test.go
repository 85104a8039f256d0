package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine/camera"
	"github.com/Carmen-Shannon/oxy-cube/engine/character"
	"github.com/Carmen-Shannon/oxy-cube/engine/model"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cube/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	// frames is the number of polls that report the window as running.
	frames int
	polls  int
	closed int
	// onPoll runs before a poll returns, simulating delivered events.
	onPoll map[int]func(w *fakeWindow)

	keyDown func(uint32)
	keyUp   func(uint32)
	resize  func(int, int)
	focus   func(bool)
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.resize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32))   { w.keyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(keyCode uint32))     { w.keyUp = cb }
func (w *fakeWindow) SetFocusCallback(cb func(focused bool))       { w.focus = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor   { return &wgpu.SurfaceDescriptor{} }
func (w *fakeWindow) IsRunning() bool                              { return w.polls <= w.frames }
func (w *fakeWindow) Title() string                                { return "fake" }
func (w *fakeWindow) Width() int                                   { return 1280 }
func (w *fakeWindow) Height() int                                  { return 720 }

func (w *fakeWindow) PollEvents() bool {
	w.polls++
	if fn, ok := w.onPoll[w.polls]; ok {
		fn(w)
	}
	return w.IsRunning()
}

func (w *fakeWindow) Close() error {
	w.closed++
	return nil
}

type fakeRenderer struct {
	calls     []string
	deltas    []float32
	initErr   error
	sizes     [][2]int
	character character.Character
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{character: character.NewCharacter(character.WithLogger(zerolog.Nop()))}
}

func (r *fakeRenderer) Initialize(renderer.Surface) error {
	r.calls = append(r.calls, "initialize")
	return r.initErr
}

func (r *fakeRenderer) Update(dt float32) {
	r.calls = append(r.calls, "update")
	r.deltas = append(r.deltas, dt)
	r.character.Update(dt)
}

func (r *fakeRenderer) Render()                          { r.calls = append(r.calls, "render") }
func (r *fakeRenderer) Resize(w, h int)                  { r.sizes = append(r.sizes, [2]int{w, h}) }
func (r *fakeRenderer) Cleanup()                         { r.calls = append(r.calls, "cleanup") }
func (r *fakeRenderer) OnKeyDown(k uint32)               { r.character.OnKeyDown(k) }
func (r *fakeRenderer) OnKeyUp(k uint32)                 { r.character.OnKeyUp(k) }
func (r *fakeRenderer) Character() character.Character   { return r.character }
func (r *fakeRenderer) Camera() camera.Camera            { return nil }
func (r *fakeRenderer) Model() model.Model               { return nil }
func (r *fakeRenderer) WorldMatrix() mgl32.Mat4          { return mgl32.Ident4() }
func (r *fakeRenderer) Initialized() bool                { return len(r.calls) > 0 }

func countCalls(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

func TestRunOneUpdateAndRenderPerIteration(t *testing.T) {
	win := &fakeWindow{frames: 3}
	r := newFakeRenderer()
	e := NewEngine(WithWindow(win), WithRenderer(r), WithLogger(zerolog.Nop()))

	require.NoError(t, e.Run())

	assert.Equal(t, []string{
		"initialize",
		"update", "render",
		"update", "render",
		"update", "render",
		"cleanup",
	}, r.calls)
	assert.Equal(t, uint64(3), e.Frames())
	assert.Equal(t, 1, win.closed)
}

func TestRunUsesClockDelta(t *testing.T) {
	r := newFakeRenderer()
	e := NewEngine(WithWindow(&fakeWindow{frames: 2}), WithRenderer(r), WithLogger(zerolog.Nop()))
	require.NoError(t, e.Run())
	step := NewFixedClock(60).Step()
	assert.Equal(t, []float32{step, step}, r.deltas)

	r = newFakeRenderer()
	e = NewEngine(WithWindow(&fakeWindow{frames: 1}), WithRenderer(r), WithTickRate(30), WithLogger(zerolog.Nop()))
	require.NoError(t, e.Run())
	assert.Equal(t, []float32{NewFixedClock(30).Step()}, r.deltas)
	assert.InDelta(t, 1.0/30, r.deltas[0], 1e-7)
}

func TestRunInitFailure(t *testing.T) {
	win := &fakeWindow{frames: 5}
	r := newFakeRenderer()
	r.initErr = errors.New("no adapter")
	e := NewEngine(WithWindow(win), WithRenderer(r), WithLogger(zerolog.Nop()))

	err := e.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, r.initErr)
	assert.Equal(t, []string{"initialize", "cleanup"}, r.calls)
	assert.Equal(t, 0, win.polls)
	assert.Equal(t, 1, win.closed)
}

func TestInitRequiresWindowAndRenderer(t *testing.T) {
	assert.ErrorIs(t, NewEngine(WithRenderer(newFakeRenderer())).Init(), ErrNoWindow)
	assert.ErrorIs(t, NewEngine(WithWindow(&fakeWindow{})).Init(), ErrNoRenderer)
}

func TestKeyEventsReachCharacter(t *testing.T) {
	win := &fakeWindow{
		frames: 2,
		onPoll: map[int]func(w *fakeWindow){
			1: func(w *fakeWindow) { w.keyDown(common.KeyW) },
			2: func(w *fakeWindow) { w.keyUp(common.KeyW) },
		},
	}
	r := newFakeRenderer()
	e := NewEngine(WithWindow(win), WithRenderer(r), WithTickRate(1), WithLogger(zerolog.Nop()))

	require.NoError(t, e.Run())

	// Only the first frame runs with W held: dt 1 at speed 0.5.
	assert.InDelta(t, 0.5, r.Character().Position().Z(), 1e-6)
}

func TestFocusLossResetsInput(t *testing.T) {
	win := &fakeWindow{
		frames: 2,
		onPoll: map[int]func(w *fakeWindow){
			1: func(w *fakeWindow) { w.keyDown(common.KeySpace) },
			2: func(w *fakeWindow) { w.focus(false) },
		},
	}
	r := newFakeRenderer()
	e := NewEngine(WithWindow(win), WithRenderer(r), WithTickRate(1), WithLogger(zerolog.Nop()))

	require.NoError(t, e.Run())

	assert.False(t, r.Character().Controls().IsKeyDown(common.KeySpace))
	assert.InDelta(t, 5, r.Character().Rotation(), 1e-5)
}

func TestResizeForwardedToRenderer(t *testing.T) {
	win := &fakeWindow{
		frames: 1,
		onPoll: map[int]func(w *fakeWindow){
			1: func(w *fakeWindow) { w.resize(800, 600) },
		},
	}
	r := newFakeRenderer()
	require.NoError(t, NewEngine(WithWindow(win), WithRenderer(r), WithLogger(zerolog.Nop())).Run())
	assert.Equal(t, [][2]int{{800, 600}}, r.sizes)
}

func TestQuitStopsLoop(t *testing.T) {
	win := &fakeWindow{frames: 100}
	r := newFakeRenderer()
	e := NewEngine(WithWindow(win), WithRenderer(r), WithLogger(zerolog.Nop()))
	win.onPoll = map[int]func(w *fakeWindow){
		3: func(*fakeWindow) { e.Quit() },
	}

	require.NoError(t, e.Run())
	assert.Equal(t, uint64(2), e.Frames())
	assert.False(t, e.Step())
}

func TestStepWithoutCollaborators(t *testing.T) {
	assert.False(t, NewEngine().Step())
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithProfiling(true)).(*engine)
	assert.True(t, e.profilingEnabled)
	e.DisableProfiler()
	assert.False(t, e.profilingEnabled)
	e.EnableProfiler()
	assert.True(t, e.profilingEnabled)
}

func TestWithRenderFrameLimit(t *testing.T) {
	e := NewEngine(WithRenderFrameLimit(100)).(*engine)
	assert.Equal(t, 10*time.Millisecond, e.renderFrameLimit)

	e = NewEngine(WithRenderFrameLimit(0)).(*engine)
	assert.Zero(t, e.renderFrameLimit)
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(0)
	assert.InDelta(t, 1.0/60, c.Tick(), 1e-7)
	assert.Equal(t, c.Step(), c.Tick())
	assert.Equal(t, float32(0.5), NewFixedClock(2).Tick())
}

func TestMeasuredClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewMeasuredClock(0)
	c.now = func() time.Time { return now }
	c.Reset()

	now = now.Add(20 * time.Millisecond)
	assert.InDelta(t, 0.02, c.Tick(), 1e-6)

	now = now.Add(5 * time.Second)
	assert.Equal(t, DefaultMaxStep, c.Tick())

	now = now.Add(-time.Second)
	assert.Zero(t, c.Tick())
}
