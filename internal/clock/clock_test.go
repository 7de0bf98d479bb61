package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestIntervalFiresEachPeriod(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	iv := NewInterval(1500*time.Millisecond, clk.now)

	assert.False(t, iv.Due(), "stopped interval must not fire")

	iv.Start()
	assert.True(t, iv.Running())
	assert.False(t, iv.Due())

	clk.advance(1499 * time.Millisecond)
	assert.False(t, iv.Due())

	clk.advance(time.Millisecond)
	assert.True(t, iv.Due())
	assert.False(t, iv.Due(), "fires once per period")

	clk.advance(1500 * time.Millisecond)
	assert.True(t, iv.Due())
}

func TestIntervalCoalescesMissedPeriods(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	iv := NewInterval(time.Second, clk.now)
	iv.Start()

	clk.advance(3500 * time.Millisecond)
	assert.True(t, iv.Due())
	assert.False(t, iv.Due())

	clk.advance(500 * time.Millisecond)
	assert.True(t, iv.Due())
}

func TestIntervalStopAndRestart(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	iv := NewInterval(time.Second, clk.now)
	iv.Start()

	clk.advance(900 * time.Millisecond)
	iv.Stop()
	clk.advance(5 * time.Second)
	assert.False(t, iv.Due())
	assert.False(t, iv.Running())

	iv.Start()
	assert.False(t, iv.Due(), "restart re-arms a full period")
	clk.advance(time.Second)
	assert.True(t, iv.Due())
}

func TestIntervalDefaultsToWallClock(t *testing.T) {
	iv := NewInterval(time.Hour, nil)
	iv.Start()
	assert.False(t, iv.Due())
}

func TestToggle(t *testing.T) {
	var tg Toggle
	assert.False(t, tg.Running())
	tg.Start()
	assert.True(t, tg.Running())
	tg.Stop()
	assert.False(t, tg.Running())
}
