package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine"
	"github.com/Carmen-Shannon/oxy-cube/engine/camera"
	"github.com/Carmen-Shannon/oxy-cube/engine/character"
	"github.com/Carmen-Shannon/oxy-cube/engine/config"
	"github.com/Carmen-Shannon/oxy-cube/engine/input"
	"github.com/Carmen-Shannon/oxy-cube/engine/model"
	"github.com/Carmen-Shannon/oxy-cube/engine/profiler"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-cube/engine/window"
	"github.com/rs/zerolog/log"
)

// newEngine opens the window and assembles the engine around it.
func newEngine(cfg *config.Config, profile bool) (engine.Engine, error) {
	r, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}

	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithResizable(cfg.Window.Resizable),
		window.WithMinWidth(cfg.Window.MinWidth),
		window.WithMinHeight(cfg.Window.MinHeight),
		window.WithMaxWidth(cfg.Window.MaxWidth),
		window.WithMaxHeight(cfg.Window.MaxHeight),
		window.WithLogger(log.With().Str("component", "window").Logger()),
	)
	if err != nil {
		return nil, err
	}

	return engine.NewEngine(engineOptions(cfg, profile, win, r)...), nil
}

// engineOptions maps the clock and profiler settings onto engine options.
func engineOptions(cfg *config.Config, profile bool, win window.Window, r renderer.Renderer) []engine.EngineBuilderOption {
	logger := log.With().Str("component", "engine").Logger()

	var clock engine.Clock = engine.NewFixedClock(cfg.Clock.TickRate)
	if cfg.Clock.Mode == config.ClockMeasured {
		clock = engine.NewMeasuredClock(cfg.Clock.MaxStep)
	}

	return []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithClock(clock),
		engine.WithRenderFrameLimit(cfg.Clock.FrameLimit),
		engine.WithProfiling(profile || cfg.Profiler.Enabled),
		engine.WithProfiler(profiler.NewProfiler(
			profiler.WithInterval(cfg.Profiler.Interval),
			profiler.WithLogger(log.With().Str("component", "profiler").Logger()),
		)),
		engine.WithLogger(logger),
	}
}

// newRenderer builds the character, camera, cube and renderer described by cfg.
func newRenderer(cfg *config.Config) (renderer.Renderer, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	mode, err := cfg.PresentMode()
	if err != nil {
		return nil, err
	}
	msaa, err := cfg.MSAA()
	if err != nil {
		return nil, err
	}
	if len(cfg.Character.Position) != 3 || len(cfg.Camera.Eye) != 3 || len(cfg.Camera.At) != 3 || len(cfg.Camera.Up) != 3 {
		return nil, fmt.Errorf("position vectors must have 3 components")
	}

	characterLogger := log.With().Str("component", "character").Logger()
	pos := cfg.Character.Position
	c := character.NewCharacter(
		character.WithPosition(pos[0], pos[1], pos[2]),
		character.WithRotation(cfg.Character.Rotation),
		character.WithSpeed(cfg.Character.Speed),
		character.WithRotationSpeed(cfg.Character.RotationSpeed),
		character.WithControls(input.NewTracker(
			input.WithBindings(bindings),
			input.WithLogger(characterLogger),
		)),
		character.WithLogger(characterLogger),
	)

	eye, at, up := cfg.Camera.Eye, cfg.Camera.At, cfg.Camera.Up
	cam := camera.NewCamera(
		camera.WithEye(eye[0], eye[1], eye[2]),
		camera.WithAt(at[0], at[1], at[2]),
		camera.WithUp(up[0], up[1], up[2]),
		camera.WithFov(common.DegToRad(cfg.Camera.Fov)),
		camera.WithNear(cfg.Camera.Near),
		camera.WithFar(cfg.Camera.Far),
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
	)

	return renderer.NewRenderer(renderer.BackendTypeWGPU,
		renderer.WithCharacter(c),
		renderer.WithCamera(cam),
		renderer.WithModel(model.NewCube(model.WithHalfExtent(cfg.Cube.HalfExtent))),
		renderer.WithClearColor(cfg.ClearColor()),
		renderer.WithPresentMode(mode),
		renderer.WithMSAA(msaa),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.Software),
		renderer.WithLogger(log.With().Str("component", "renderer").Logger()),
	), nil
}
