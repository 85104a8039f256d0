package character

import (
	"github.com/Carmen-Shannon/oxy-cube/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// CharacterBuilderOption is a functional option for configuring a Character.
type CharacterBuilderOption func(*character)

// WithSpeed sets the movement speed in world units per second.
// Negative values are clamped to 0.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithSpeed(speed float32) CharacterBuilderOption {
	return func(c *character) {
		c.speed = max(speed, 0)
	}
}

// WithRotationSpeed sets the yaw rotation speed in degrees per second.
// Negative values are clamped to 0.
//
// Parameters:
//   - degreesPerSecond: the rotation speed
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithRotationSpeed(degreesPerSecond float32) CharacterBuilderOption {
	return func(c *character) {
		c.rotationSpeed = max(degreesPerSecond, 0)
	}
}

// WithPosition sets the starting world position.
//
// Parameters:
//   - x, y, z: the starting position
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithPosition(x, y, z float32) CharacterBuilderOption {
	return func(c *character) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the starting yaw rotation in degrees. The value is wrapped into [0, 360).
//
// Parameters:
//   - degrees: the starting rotation
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithRotation(degrees float32) CharacterBuilderOption {
	return func(c *character) {
		c.rotation = degrees
	}
}

// WithControls sets the input tracker the character reads from.
//
// Parameters:
//   - controls: the input tracker
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithControls(controls input.Tracker) CharacterBuilderOption {
	return func(c *character) {
		c.controls = controls
	}
}

// WithLogger sets the logger used for movement debug output.
//
// Parameters:
//   - logger: the zerolog logger to use
//
// Returns:
//   - CharacterBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) CharacterBuilderOption {
	return func(c *character) {
		c.logger = logger
	}
}
