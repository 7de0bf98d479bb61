// Package gui provides the desktop host for the game, built on ebiten.
// Ebiten calls Update at a fixed rate on one goroutine; both game drivers are
// polled from there.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sprites"
)

const (
	windowTitle  = "Flappy Bird"
	restartLabel = "Restart"

	// debugLineHeight is the height of ebitenutil's debug font; text is
	// positioned by baseline, the debug printer by its top edge.
	debugLineHeight = 16
	debugCharWidth  = 6
)

var (
	buttonFill   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	buttonBorder = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Options configures a Game.
type Options struct {
	Config config.FlappyConfig
	Sheet  *sprites.Sheet
	Seed   int64       // 0 = time based
	Logger *log.Logger // nil discards

	// Now is the spawn driver's clock. nil uses time.Now.
	Now func() time.Time
}

// Game implements ebiten.Game.
type Game struct {
	session *flappy.Session
	cfg     config.FlappyConfig
	tick    *clock.Toggle
	spawn   *clock.Interval
	logger  *log.Logger
}

// input is one frame of raw input.
type input struct {
	keys    []ebiten.Key // Keys pressed this frame
	clicked bool         // Left button pressed this frame
	x, y    int          // Cursor position in board units
}

// New creates a desktop game with its session started.
func New(opts Options) (*Game, error) {
	if opts.Sheet == nil {
		return nil, fmt.Errorf("gui: %w", sprites.ErrMissingSprite)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    opts.Config,
		tick:   &clock.Toggle{},
		spawn:  clock.NewInterval(opts.Config.Timing.SpawnInterval, opts.Now),
		logger: logger,
	}

	session, err := flappy.NewSession(opts.Config, opts.Sheet.Images(),
		flappy.WithDrivers(g.tick, g.spawn),
		flappy.WithRand(rand.New(rand.NewSource(seed))),
		flappy.OnGameOver(func(st core.GameState) {
			logger.Info("game over", "score", int(st.Score), "high", int(st.HighScore))
		}),
		flappy.OnRestart(func(core.GameState) {
			logger.Debug("restart")
		}),
	)
	if err != nil {
		return nil, err
	}
	g.session = session
	session.Start()
	return g, nil
}

// Session returns the game session.
func (g *Game) Session() *flappy.Session {
	return g.session
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	in := input{keys: inpututil.AppendJustPressedKeys(nil)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.clicked = true
		in.x, in.y = ebiten.CursorPosition()
	}
	return g.step(in)
}

// step applies one frame of input, then runs the drivers that are due.
func (g *Game) step(in input) error {
	for _, a := range g.actions(in) {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		g.session.HandleAction(a)
	}

	if g.spawn.Due() {
		g.session.SpawnPipes()
	}
	if g.tick.Running() {
		g.session.Tick()
	}
	return nil
}

// actions maps raw input to game actions.
func (g *Game) actions(in input) []core.Action {
	var out []core.Action
	for _, k := range in.keys {
		switch k {
		case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
			out = append(out, core.ActionJump)
		case ebiten.KeyR, ebiten.KeyEnter:
			if g.session.RestartAvailable() {
				out = append(out, core.ActionRestart)
			}
		case ebiten.KeyQ, ebiten.KeyEscape:
			out = append(out, core.ActionQuit)
		}
	}

	if in.clicked {
		switch {
		case !g.session.RestartAvailable():
			out = append(out, core.ActionJump)
		case flappy.RestartButton(g.cfg).Contains(in.x, in.y):
			out = append(out, core.ActionRestart)
		}
	}
	return out
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(&imageSurface{dst: screen})
	if g.session.RestartAvailable() {
		drawButton(screen, flappy.RestartButton(g.cfg), restartLabel)
	}
}

// Layout implements ebiten.Game. The logical screen is the board.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}

// imageSurface draws sprites as solid rectangles of their RGB color.
type imageSurface struct {
	dst *ebiten.Image
}

// DrawImage implements flappy.Surface.
func (s *imageSurface) DrawImage(img flappy.Image, r core.Rect) {
	sp, ok := img.(*sprites.Sprite)
	if !ok {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), sp.RGBA, false)
}

// DrawText implements flappy.Surface.
func (s *imageSurface) DrawText(x, y int, text string) {
	ebitenutil.DebugPrintAt(s.dst, text, x, y-debugLineHeight)
}

func drawButton(dst *ebiten.Image, r core.Rect, label string) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(dst, x, y, w, h, buttonFill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, buttonBorder, false)

	tx, ty := labelOrigin(r, label)
	ebitenutil.DebugPrintAt(dst, label, tx, ty)
}

// labelOrigin returns the top-left corner that centers label in r.
func labelOrigin(r core.Rect, label string) (int, int) {
	return r.X + (r.W-len(label)*debugCharWidth)/2, r.Y + (r.H-debugLineHeight)/2
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.cfg.Board.Width, g.cfg.Board.Height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(g.cfg.Timing.TickRate)

	g.logger.Debug("window opened", "tps", g.cfg.Timing.TickRate)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
