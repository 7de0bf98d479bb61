package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Surface is the host's drawing target. Coordinates are board units; text y is
// the baseline.
type Surface interface {
	DrawImage(img Image, r core.Rect)
	DrawText(x, y int, text string)
}

// HUD text positions.
const (
	hudX         = 10
	hudLine1     = 35
	hudLine2     = 80
	hudLine3     = 125
	GameOverText = "Game Over"
)

// Render draws the current state. It never mutates the session.
func (s *Session) Render(dst Surface) {
	board := core.NewRect(0, 0, s.cfg.Board.Width, s.cfg.Board.Height)
	dst.DrawImage(s.images.Background, board)

	dst.DrawImage(s.images.Bird, s.bird.Rect())

	for _, p := range s.pipes {
		dst.DrawImage(p.image(s.images), p.Rect())
	}

	if s.state == StateGameOver {
		dst.DrawText(hudX, hudLine1, GameOverText)
		dst.DrawText(hudX, hudLine2, fmt.Sprintf("Score: %d", int(s.score)))
		dst.DrawText(hudX, hudLine3, fmt.Sprintf("High Score: %d", int(s.highScore)))
		return
	}
	dst.DrawText(hudX, hudLine1, fmt.Sprintf("%d", int(s.score)))
}

// RestartButton returns where hosts place the restart affordance: a 100x40
// button centered horizontally, just below the middle of the board.
func RestartButton(cfg config.FlappyConfig) core.Rect {
	return core.NewRect(cfg.Board.Width/2-50, cfg.Board.Height/2+50, 100, 40)
}
