package flappy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var testImages = Images{
	Background: "background",
	Bird:       "bird",
	TopPipe:    "top",
	BottomPipe: "bottom",
}

// fakeDriver records the session's start/stop calls.
type fakeDriver struct {
	running bool
	starts  int
	stops   int
}

func (d *fakeDriver) Start() {
	d.running = true
	d.starts++
}

func (d *fakeDriver) Stop() {
	d.running = false
	d.stops++
}

type drawCall struct {
	img  Image
	rect core.Rect
	text string
	x, y int
}

// recordingSurface captures draw calls in order.
type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) DrawImage(img Image, rect core.Rect) {
	r.calls = append(r.calls, drawCall{img: img, rect: rect})
}

func (r *recordingSurface) DrawText(x, y int, text string) {
	r.calls = append(r.calls, drawCall{text: text, x: x, y: y})
}

func (r *recordingSurface) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.img == nil {
			out = append(out, c.text)
		}
	}
	return out
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *fakeDriver, *fakeDriver) {
	t.Helper()
	tick, spawn := &fakeDriver{}, &fakeDriver{}
	opts = append([]Option{
		WithDrivers(tick, spawn),
		WithRand(rand.New(rand.NewSource(1))),
	}, opts...)

	s, err := NewSession(config.DefaultFlappyConfig(), testImages, opts...)
	require.NoError(t, err)
	s.Start()
	return s, tick, spawn
}
