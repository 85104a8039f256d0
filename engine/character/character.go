package character

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cube/common"
	"github.com/Carmen-Shannon/oxy-cube/engine/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSpeed is the default movement speed in world units per second.
	DefaultSpeed float32 = 0.5

	// DefaultRotationSpeed is the default yaw rotation speed in degrees per second.
	DefaultRotationSpeed float32 = 5.0
)

// character is the implementation of the Character interface.
type character struct {
	position mgl32.Vec3
	rotation float32 // degrees, always in [0, 360)

	speed         float32
	rotationSpeed float32

	controls input.Tracker
	logger   zerolog.Logger
}

// Character owns the controllable transform: a world position and a single yaw rotation.
// Each Update advances the transform according to which actions are currently held.
type Character interface {
	// Update advances position and rotation by the elapsed time.
	// Movement is applied along the forward/right vectors derived from the rotation at the start of the update,
	// and simultaneous actions compose additively (diagonal movement is not normalized).
	// Non-positive, NaN or infinite deltaTime leaves the transform unchanged. Position saturates at the
	// float32 range, so very large steps never produce NaN.
	//
	// Parameters:
	//   - deltaTime: elapsed time in seconds
	Update(deltaTime float32)

	// OnKeyDown forwards a key press to the input tracker.
	//
	// Parameters:
	//   - keyCode: the platform key code
	OnKeyDown(keyCode uint32)

	// OnKeyUp forwards a key release to the input tracker.
	//
	// Parameters:
	//   - keyCode: the platform key code
	OnKeyUp(keyCode uint32)

	// Position returns the current world position.
	//
	// Returns:
	//   - mgl32.Vec3: a copy of the position
	Position() mgl32.Vec3

	// Rotation returns the current yaw rotation in degrees, in [0, 360).
	//
	// Returns:
	//   - float32: the rotation in degrees
	Rotation() float32

	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// RotationSpeed returns the rotation speed in degrees per second.
	//
	// Returns:
	//   - float32: the rotation speed
	RotationSpeed() float32

	// Controls returns the input tracker the character reads from.
	//
	// Returns:
	//   - input.Tracker: the input tracker
	Controls() input.Tracker
}

var _ Character = &character{}

// NewCharacter creates a Character at the origin with zero rotation and default speeds.
//
// Parameters:
//   - options: functional options to configure the character
//
// Returns:
//   - Character: the newly created character
func NewCharacter(options ...CharacterBuilderOption) Character {
	c := &character{
		speed:         DefaultSpeed,
		rotationSpeed: DefaultRotationSpeed,
		logger:        log.Logger,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.controls == nil {
		c.controls = input.NewTracker(input.WithLogger(c.logger))
	}
	c.rotation = common.WrapDegrees(c.rotation)
	return c
}

func (c *character) Update(deltaTime float32) {
	dt := float64(deltaTime)
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	// Products are taken in float64 so large steps cannot overflow to Inf.
	moveDelta := float64(c.speed) * dt
	rotateDelta := math.Mod(float64(c.rotationSpeed)*dt, 360)

	rad := float64(common.DegToRad(c.rotation))
	sin := math.Sin(rad)
	cos := math.Cos(rad)

	// x/z-plane basis vectors: forward is +Z and right is +X at rotation 0.
	forward := [2]float64{sin, cos}
	right := [2]float64{cos, -sin}

	moved := false

	if c.controls.ActionDown(input.ActionMoveForward) {
		c.move(0, forward[0]*moveDelta)
		c.move(2, forward[1]*moveDelta)
		moved = true
	}
	if c.controls.ActionDown(input.ActionMoveBackward) {
		c.move(0, -forward[0]*moveDelta)
		c.move(2, -forward[1]*moveDelta)
		moved = true
	}
	if c.controls.ActionDown(input.ActionStrafeLeft) {
		c.move(0, -right[0]*moveDelta)
		c.move(2, -right[1]*moveDelta)
		moved = true
	}
	if c.controls.ActionDown(input.ActionStrafeRight) {
		c.move(0, right[0]*moveDelta)
		c.move(2, right[1]*moveDelta)
		moved = true
	}
	if c.controls.ActionDown(input.ActionMoveUp) {
		c.move(1, moveDelta)
		moved = true
	}
	if c.controls.ActionDown(input.ActionMoveDown) {
		c.move(1, -moveDelta)
		moved = true
	}
	if c.controls.ActionDown(input.ActionRotate) {
		c.rotation = common.WrapDegrees(float32(math.Mod(float64(c.rotation)+rotateDelta, 360)))
		moved = true
	}

	if moved {
		c.logger.Debug().
			Float32("x", c.position[0]).
			Float32("y", c.position[1]).
			Float32("z", c.position[2]).
			Float32("rotation", c.rotation).
			Msg("character updated")
	}
}

// move offsets one position axis, saturating at the float32 range.
func (c *character) move(axis int, delta float64) {
	p := float64(c.position[axis]) + delta
	c.position[axis] = float32(math.Max(-math.MaxFloat32, math.Min(math.MaxFloat32, p)))
}

func (c *character) OnKeyDown(keyCode uint32) {
	c.controls.KeyDown(keyCode)
}

func (c *character) OnKeyUp(keyCode uint32) {
	c.controls.KeyUp(keyCode)
}

func (c *character) Position() mgl32.Vec3 {
	return c.position
}

func (c *character) Rotation() float32 {
	return c.rotation
}

func (c *character) Speed() float32 {
	return c.speed
}

func (c *character) RotationSpeed() float32 {
	return c.rotationSpeed
}

func (c *character) Controls() input.Tracker {
	return c.controls
}
