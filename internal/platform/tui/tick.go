// Package tui provides the Bubble Tea host for the game: the terminal UI loop,
// input mapping, tick drivers and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// driverKind identifies which schedule a TickMsg belongs to.
type driverKind int

const (
	driverSimulation driverKind = iota
	driverSpawn
)

// TickMsg is sent when a driver's period elapses.
type TickMsg struct {
	kind driverKind
	gen  int
	At   time.Time
}

// teaDriver is a flappy.Driver backed by tea.Tick. Bubble Tea delivers every
// TickMsg on its Update loop, so both drivers share one thread with input
// handling. Stop bumps the generation so a tick already in flight is dropped.
type teaDriver struct {
	kind    driverKind
	period  time.Duration
	gen     int
	running bool
	armed   bool // Started since the last pending() call
}

func newTeaDriver(kind driverKind, period time.Duration) *teaDriver {
	return &teaDriver{kind: kind, period: period}
}

// Start implements flappy.Driver.
func (d *teaDriver) Start() {
	d.gen++
	d.running = true
	d.armed = true
}

// Stop implements flappy.Driver.
func (d *teaDriver) Stop() {
	d.gen++
	d.running = false
	d.armed = false
}

// pending returns the first tick command after a Start, or nil.
func (d *teaDriver) pending() tea.Cmd {
	if !d.armed {
		return nil
	}
	d.armed = false
	return d.schedule()
}

// accept reports whether msg belongs to the current run of this driver.
func (d *teaDriver) accept(msg TickMsg) bool {
	return msg.kind == d.kind && d.running && msg.gen == d.gen
}

// next schedules the following tick, or nil once stopped.
func (d *teaDriver) next() tea.Cmd {
	if !d.running {
		return nil
	}
	return d.schedule()
}

func (d *teaDriver) schedule() tea.Cmd {
	kind, gen := d.kind, d.gen
	return tea.Tick(d.period, func(t time.Time) tea.Msg {
		return TickMsg{kind: kind, gen: gen, At: t}
	})
}
