package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sprites"
)

// hudColor is the foreground of HUD text.
const hudColor = core.ColorBlack

// cellSurface draws board-unit rectangles onto the top rows of a Screen,
// scaling the board to the terminal. Every drawn image covers at least one
// cell so the bird stays visible on small terminals.
type cellSurface struct {
	screen *core.Screen
	boardW int
	boardH int
	cols   int
	rows   int
}

func newCellSurface(screen *core.Screen, boardW, boardH, cols, rows int) *cellSurface {
	s := &cellSurface{screen: screen, boardW: boardW, boardH: boardH}
	s.resize(cols, rows)
	return s
}

// resize sets the number of cells the board is mapped onto.
func (s *cellSurface) resize(cols, rows int) {
	s.cols = core.Max(cols, 1)
	s.rows = core.Max(rows, 1)
}

// field returns the cell area the board occupies.
func (s *cellSurface) field() core.Rect {
	return core.NewRect(0, 0, s.cols, s.rows)
}

// cellRect maps a board rectangle to cells.
func (s *cellSurface) cellRect(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*s.cols, s.boardW)
	x1 := floorDiv(r.Right()*s.cols, s.boardW)
	y0 := floorDiv(r.Y*s.rows, s.boardH)
	y1 := floorDiv(r.Bottom()*s.rows, s.boardH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// toCell maps a board point to a cell.
func (s *cellSurface) toCell(x, y int) (int, int) {
	return floorDiv(x*s.cols, s.boardW), floorDiv(y*s.rows, s.boardH)
}

// DrawImage implements flappy.Surface. Handles that are not sprites are ignored.
func (s *cellSurface) DrawImage(img flappy.Image, r core.Rect) {
	sp, ok := img.(*sprites.Sprite)
	if !ok {
		return
	}
	if clipped, ok := clip(s.cellRect(r), s.field()); ok {
		s.screen.FillRect(clipped, sp.Cell())
	}
}

// DrawText implements flappy.Surface. y is a baseline, so the text sits on
// the row just above it.
func (s *cellSurface) DrawText(x, y int, text string) {
	col, row := s.toCell(x, y-1)
	if row < 0 || row >= s.rows {
		return
	}
	s.screen.DrawText(col, row, text, hudColor)
}

// clip intersects r with bounds.
func clip(r, bounds core.Rect) (core.Rect, bool) {
	x0 := core.Max(r.X, bounds.X)
	y0 := core.Max(r.Y, bounds.Y)
	x1 := core.Min(r.Right(), bounds.Right())
	y1 := core.Min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// floorDiv divides rounding towards negative infinity; pipes hang above the
// board at negative y.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// buttonRect maps a board-space button to cells, grown so a one-line label
// fits inside a border.
func (s *cellSurface) buttonRect(r core.Rect, label string) core.Rect {
	c := s.cellRect(r)
	if minW := utf8.RuneCountInString(label) + 2; c.W < minW {
		c.X -= (minW - c.W) / 2
		c.W = minW
	}
	if c.H < 3 {
		c.Y -= (3 - c.H) / 2
		c.H = 3
	}
	return c
}

// drawButton draws a bordered, labeled button at c.
func (s *cellSurface) drawButton(c core.Rect, label string) {
	s.screen.FillRect(c, core.Cell{Rune: ' ', Fg: core.ColorBlack, Bg: core.ColorBrightWhite})
	s.screen.DrawBox(c)
	x := c.X + (c.W-utf8.RuneCountInString(label))/2
	s.screen.DrawText(x, c.Y+c.H/2, label, core.ColorBlack)
}
