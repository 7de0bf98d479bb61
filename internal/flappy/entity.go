package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Image is an opaque visual handle loaded by the host. The game only hands
// it back to the host's Surface.
type Image any

// Images are the four handles a session draws with.
type Images struct {
	Background Image
	Bird       Image
	TopPipe    Image
	BottomPipe Image
}

// validate reports the first missing handle.
func (im Images) validate() error {
	switch {
	case im.Background == nil:
		return missingImage("background")
	case im.Bird == nil:
		return missingImage("bird")
	case im.TopPipe == nil:
		return missingImage("top pipe")
	case im.BottomPipe == nil:
		return missingImage("bottom pipe")
	}
	return nil
}

// Bird is the player. X never changes during a session; horizontal motion is
// simulated by scrolling the pipes.
type Bird struct {
	X, Y          int
	Width, Height int
}

// Rect returns the bird's hitbox.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// PipeKind tells the two halves of a pipe pair apart.
type PipeKind int

const (
	PipeTop PipeKind = iota
	PipeBottom
)

// String returns a human-readable name for the kind.
func (k PipeKind) String() string {
	switch k {
	case PipeTop:
		return "top"
	case PipeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Pipe is one half of an obstacle pair.
type Pipe struct {
	Kind          PipeKind
	X, Y          int
	Width, Height int
	Passed        bool // Set once the bird has cleared the pipe's right edge
}

// Rect returns the pipe's hitbox.
func (p Pipe) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// image picks the handle matching the pipe's kind.
func (p Pipe) image(im Images) Image {
	if p.Kind == PipeTop {
		return im.TopPipe
	}
	return im.BottomPipe
}
