package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine/input"
	"github.com/Carmen-Shannon/oxy-cube/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DEFAULT is the embedded default configuration.
//
//go:embed default.yaml
var DEFAULT []byte

const (
	// ClockFixed steps the simulation by 1/tick_rate every frame.
	ClockFixed = "fixed"
	// ClockMeasured steps the simulation by the measured frame time.
	ClockMeasured = "measured"
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Character CharacterConfig `yaml:"character"`
	Camera    CameraConfig    `yaml:"camera"`
	Cube      CubeConfig      `yaml:"cube"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Clock     ClockConfig     `yaml:"clock"`
	Logging   LoggingConfig   `yaml:"logging"`
	Profiler  ProfilerConfig  `yaml:"profiler"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

type CharacterConfig struct {
	Position      []float32         `yaml:"position"`
	Rotation      float32           `yaml:"rotation"`
	Speed         float32           `yaml:"speed"`
	RotationSpeed float32           `yaml:"rotation_speed"`
	Bindings      map[string]string `yaml:"bindings"`
}

type CameraConfig struct {
	Eye  []float32 `yaml:"eye"`
	At   []float32 `yaml:"at"`
	Up   []float32 `yaml:"up"`
	Fov  float32   `yaml:"fov"`
	Near float32   `yaml:"near"`
	Far  float32   `yaml:"far"`
}

type CubeConfig struct {
	HalfExtent float32 `yaml:"half_extent"`
}

type RendererConfig struct {
	ClearColor  []float64 `yaml:"clear_color"`
	PresentMode string    `yaml:"present_mode"`
	MSAA        uint32    `yaml:"msaa"`
	Software    bool      `yaml:"software"`
}

type ClockConfig struct {
	Mode       string  `yaml:"mode"`
	TickRate   float64 `yaml:"tick_rate"`
	MaxStep    float32 `yaml:"max_step"`
	FrameLimit float64 `yaml:"frame_limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ProfilerConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// Default returns the compiled-in configuration.
//
// Returns:
//   - *Config: the default configuration
//   - error: an error if the embedded defaults are malformed
func Default() (*Config, error) {
	cfg := &Config{}
	if err := decode(DEFAULT, cfg); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}
	return cfg, nil
}

// Load starts from the defaults and applies each override file in order, then validates the result.
// Keys missing from an override keep their previous value.
//
// Parameters:
//   - paths: YAML files to apply
//
// Returns:
//   - *Config: the merged configuration
//   - error: an error if a file cannot be read or parsed, or the result is invalid
func Load(paths ...string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies data on top of cfg, rejecting keys the config does not know.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.MinWidth <= 0 || c.Window.MinHeight <= 0 || c.Window.MinWidth > c.Window.MaxWidth || c.Window.MinHeight > c.Window.MaxHeight {
		errs = append(errs, fmt.Errorf("window limits must satisfy 0 < min <= max, got %dx%d to %dx%d",
			c.Window.MinWidth, c.Window.MinHeight, c.Window.MaxWidth, c.Window.MaxHeight))
	}
	if len(c.Character.Position) != 3 {
		errs = append(errs, errors.New("character.position must have 3 components"))
	}
	if c.Character.Speed < 0 || c.Character.RotationSpeed < 0 {
		errs = append(errs, errors.New("character speeds must not be negative"))
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	for name, v := range map[string][]float32{"eye": c.Camera.Eye, "at": c.Camera.At, "up": c.Camera.Up} {
		if len(v) != 3 {
			errs = append(errs, fmt.Errorf("camera.%s must have 3 components", name))
		}
	}
	if len(c.Camera.Eye) == 3 && len(c.Camera.At) == 3 && len(c.Camera.Up) == 3 {
		dir := vec3(c.Camera.At).Sub(vec3(c.Camera.Eye))
		if dir.Len() == 0 {
			errs = append(errs, errors.New("camera.eye and camera.at must differ"))
		} else if vec3(c.Camera.Up).Cross(dir).Len() == 0 {
			errs = append(errs, errors.New("camera.up must not be parallel to the view direction"))
		}
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %g", c.Camera.Fov))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera planes must satisfy 0 < near < far, got %g/%g", c.Camera.Near, c.Camera.Far))
	}
	if c.Cube.HalfExtent <= 0 {
		errs = append(errs, errors.New("cube.half_extent must be positive"))
	}
	if len(c.Renderer.ClearColor) != 4 {
		errs = append(errs, errors.New("renderer.clear_color must have 4 components"))
	}
	if _, err := c.PresentMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.MSAA(); err != nil {
		errs = append(errs, err)
	}
	switch c.Clock.Mode {
	case ClockFixed, ClockMeasured:
	default:
		errs = append(errs, fmt.Errorf("unknown clock mode %q", c.Clock.Mode))
	}
	if c.Clock.TickRate <= 0 {
		errs = append(errs, errors.New("clock.tick_rate must be positive"))
	}
	if c.Clock.FrameLimit < 0 {
		errs = append(errs, errors.New("clock.frame_limit must not be negative"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func vec3(v []float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// Bindings resolves the key bindings.
func (c *Config) Bindings() (input.Bindings, error) {
	return input.ParseBindings(c.Character.Bindings)
}

// PresentMode resolves renderer.present_mode.
func (c *Config) PresentMode() (renderer.PresentMode, error) {
	switch strings.ToLower(c.Renderer.PresentMode) {
	case "", renderer.PresentModeVSync.String():
		return renderer.PresentModeVSync, nil
	case renderer.PresentModeUncapped.String():
		return renderer.PresentModeUncapped, nil
	default:
		return 0, fmt.Errorf("unknown present mode %q", c.Renderer.PresentMode)
	}
}

// MSAA resolves renderer.msaa, where 0 and 1 both disable multisampling.
func (c *Config) MSAA() (renderer.MSAASampleCount, error) {
	switch c.Renderer.MSAA {
	case 0, 1:
		return renderer.MSAAOff, nil
	case 4:
		return renderer.MSAA4x, nil
	default:
		return 0, fmt.Errorf("unsupported msaa sample count %d", c.Renderer.MSAA)
	}
}

// ClearColor returns renderer.clear_color, or the renderer default if it is malformed.
func (c *Config) ClearColor() wgpu.Color {
	cc := c.Renderer.ClearColor
	if len(cc) != 4 {
		return renderer.DefaultClearColor
	}
	return wgpu.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}
}

// LogLevel resolves logging.level, defaulting to info.
func (c *Config) LogLevel() (zerolog.Level, error) {
	return zerolog.ParseLevel(common.Coalesce(strings.ToLower(c.Logging.Level), "info"))
}
