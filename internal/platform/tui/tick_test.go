package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeaDriverLifecycle(t *testing.T) {
	d := newTeaDriver(driverSimulation, time.Millisecond)

	assert.Nil(t, d.pending(), "not started")

	d.Start()
	assert.NotNil(t, d.pending())
	assert.Nil(t, d.pending(), "pending is consumed")

	current := TickMsg{kind: driverSimulation, gen: d.gen}
	assert.True(t, d.accept(current))
	assert.False(t, d.accept(TickMsg{kind: driverSpawn, gen: d.gen}), "other driver")
	assert.NotNil(t, d.next())

	d.Stop()
	assert.False(t, d.accept(current), "stopped")
	assert.Nil(t, d.next())
	assert.Nil(t, d.pending())

	d.Start()
	assert.False(t, d.accept(current), "tick from a previous run")
	assert.True(t, d.accept(TickMsg{kind: driverSimulation, gen: d.gen}))
}

func TestTeaDriverTickMessage(t *testing.T) {
	d := newTeaDriver(driverSpawn, time.Millisecond)
	d.Start()

	msg := d.pending()()
	tick, ok := msg.(TickMsg)
	assert.True(t, ok)
	assert.True(t, d.accept(tick))
	assert.False(t, tick.At.IsZero())
}
