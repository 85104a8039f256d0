package engine

import "time"

const (
	// DefaultTickRate is the update rate assumed by the fixed clock.
	DefaultTickRate = 60.0

	// DefaultMaxStep caps a measured step so a stalled frame does not teleport the character.
	DefaultMaxStep = float32(0.25)
)

// Clock is the timestep source of the frame loop.
type Clock interface {
	// Tick returns the seconds to simulate for the next frame.
	//
	// Returns:
	//   - float32: the frame delta time in seconds
	Tick() float32

	// Reset restarts measurement, called once before the first frame.
	Reset()
}

// FixedClock returns the same step every frame regardless of wall time.
type FixedClock struct {
	step float32
}

var _ Clock = &FixedClock{}

// NewFixedClock creates a clock stepping at tickRate updates per second.
// Non-positive rates fall back to DefaultTickRate.
//
// Parameters:
//   - tickRate: updates per second
//
// Returns:
//   - *FixedClock: the clock
func NewFixedClock(tickRate float64) *FixedClock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &FixedClock{step: float32(1 / tickRate)}
}

func (c *FixedClock) Tick() float32 {
	return c.step
}

func (c *FixedClock) Reset() {}

// Step returns the fixed step in seconds.
func (c *FixedClock) Step() float32 {
	return c.step
}

// MeasuredClock returns the wall time elapsed since the previous tick, capped at maxStep.
type MeasuredClock struct {
	last    time.Time
	maxStep float32
	now     func() time.Time
}

var _ Clock = &MeasuredClock{}

// NewMeasuredClock creates a wall clock timestep source.
// Non-positive caps fall back to DefaultMaxStep.
//
// Parameters:
//   - maxStep: the largest step returned, in seconds
//
// Returns:
//   - *MeasuredClock: the clock
func NewMeasuredClock(maxStep float32) *MeasuredClock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	c := &MeasuredClock{maxStep: maxStep, now: time.Now}
	c.Reset()
	return c
}

func (c *MeasuredClock) Tick() float32 {
	now := c.now()
	dt := float32(now.Sub(c.last).Seconds())
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

func (c *MeasuredClock) Reset() {
	c.last = c.now()
}
