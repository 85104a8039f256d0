package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTickReportsAfterInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var buf bytes.Buffer
	p := NewProfiler(withClock(clock.now), WithLogger(zerolog.New(&buf)))

	for range 99 {
		clock.advance(10 * time.Millisecond)
		assert.False(t, p.Tick())
	}
	assert.Zero(t, buf.Len())

	clock.advance(10 * time.Millisecond)
	require.True(t, p.Tick())

	stats := p.Last()
	assert.Equal(t, 100, stats.Frames)
	assert.InDelta(t, 100.0, stats.FPS, 0.01)
	assert.Contains(t, buf.String(), `"message":"profiler"`)
	assert.Contains(t, buf.String(), `"frames":100`)

	// The window restarts after a report.
	clock.advance(time.Millisecond)
	assert.False(t, p.Tick())
}

func TestWithInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(withClock(clock.now), WithInterval(100*time.Millisecond), WithLogger(zerolog.Nop()))

	clock.advance(50 * time.Millisecond)
	assert.False(t, p.Tick())
	clock.advance(50 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.InDelta(t, 20.0, p.Last().FPS, 0.01)
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithInterval(-time.Second))
	assert.Equal(t, DefaultInterval, p.updateInterval)
}
