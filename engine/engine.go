package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-cube/engine/profiler"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cube/engine/window"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNoWindow is returned when the engine is started without a window.
	ErrNoWindow = errors.New("engine has no window")

	// ErrNoRenderer is returned when the engine is started without a renderer.
	ErrNoRenderer = errors.New("engine has no renderer")
)

// engine implements the Engine interface.
// Runs the poll-then-frame loop on the calling goroutine.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	clock    Clock

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	logger zerolog.Logger

	initialized bool
	quit        bool
	frames      uint64
}

// Engine is the main entry point for the demo.
// It owns the window and the renderer and drives one update and render per loop iteration.
type Engine interface {
	// Init wires the window callbacks to the renderer and initializes the renderer.
	//
	// Returns:
	//   - error: ErrNoWindow, ErrNoRenderer or the wrapped renderer initialization error
	Init() error

	// Run initializes the engine if needed, loops until the window closes or Quit is called,
	// then releases the renderer and closes the window. It must run on the main OS thread.
	//
	// Returns:
	//   - error: the initialization error, if any
	Run() error

	// Step runs one loop iteration: poll pending events, then exactly one update and render.
	//
	// Returns:
	//   - bool: false once the window has closed or Quit was called
	Step() bool

	// Quit stops the loop after the current iteration. Safe to call more than once.
	Quit()

	// Frames returns the number of completed update and render passes.
	Frames() uint64

	// Window returns the underlying window.
	Window() window.Window

	// Renderer returns the render driver.
	Renderer() renderer.Renderer

	// Clock returns the timestep source.
	Clock() Clock

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// The clock defaults to a fixed 1/60 s step.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		clock:  NewFixedClock(DefaultTickRate),
		logger: log.Logger,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	return e
}

func (e *engine) Init() error {
	if e.initialized {
		return nil
	}
	if e.window == nil {
		return ErrNoWindow
	}
	if e.renderer == nil {
		return ErrNoRenderer
	}

	e.window.SetKeyDownCallback(e.renderer.OnKeyDown)
	e.window.SetKeyUpCallback(e.renderer.OnKeyUp)
	e.window.SetResizeCallback(e.renderer.Resize)
	e.window.SetFocusCallback(func(focused bool) {
		if !focused {
			e.renderer.Character().Controls().Reset()
		}
	})

	if err := e.renderer.Initialize(e.window); err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	e.initialized = true
	return nil
}

func (e *engine) Run() error {
	defer e.shutdown()

	if err := e.Init(); err != nil {
		return err
	}

	e.logger.Info().Msg("entering frame loop")
	e.clock.Reset()
	for e.Step() {
	}
	e.logger.Info().Uint64("frames", e.frames).Msg("frame loop stopped")

	return nil
}

func (e *engine) Step() bool {
	if e.quit || e.window == nil || e.renderer == nil {
		return false
	}
	if !e.window.PollEvents() || e.quit {
		return false
	}

	start := time.Now()

	e.renderer.Update(e.clock.Tick())
	e.renderer.Render()
	e.frames++

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}

	return true
}

// shutdown releases the renderer before the window whose surface it draws into.
func (e *engine) shutdown() {
	if e.renderer != nil {
		e.renderer.Cleanup()
	}
	if e.window != nil {
		if err := e.window.Close(); err != nil {
			e.logger.Debug().Err(err).Msg("window close")
		}
	}
}

func (e *engine) Quit() {
	e.quit = true
}

func (e *engine) Frames() uint64 {
	return e.frames
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Clock() Clock {
	return e.clock
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}
