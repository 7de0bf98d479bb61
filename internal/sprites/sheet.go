// Package sprites loads the named images the game draws from a YAML sprite
// sheet. The same sheet serves the terminal host (glyph and ANSI colors) and
// the desktop host (RGB fill).
package sprites

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Sprite names every sheet must define.
const (
	NameBackground = "background"
	NameBird       = "bird"
	NameTopPipe    = "top_pipe"
	NameBottomPipe = "bottom_pipe"
)

//go:embed defaults/sprites.yaml
var defaultSheetYAML []byte

// ErrMissingSprite is returned when a sheet lacks one of the required sprites.
var ErrMissingSprite = errors.New("sprites: missing sprite")

// Sprite is one loaded image.
type Sprite struct {
	Name  string
	Glyph rune
	Fg    core.Color
	Bg    core.Color
	RGBA  color.RGBA
}

// Cell returns the terminal cell used to fill the sprite's area.
func (s *Sprite) Cell() core.Cell {
	return core.Cell{Rune: s.Glyph, Fg: s.Fg, Bg: s.Bg}
}

// Sheet holds the four sprites the game needs.
type Sheet struct {
	Background *Sprite
	Bird       *Sprite
	TopPipe    *Sprite
	BottomPipe *Sprite
}

// Images returns the sheet as the game's image handles.
func (s *Sheet) Images() flappy.Images {
	return flappy.Images{
		Background: s.Background,
		Bird:       s.Bird,
		TopPipe:    s.TopPipe,
		BottomPipe: s.BottomPipe,
	}
}

type rawSprite struct {
	Glyph string `yaml:"glyph"`
	Fg    string `yaml:"fg"`
	Bg    string `yaml:"bg"`
	RGB   string `yaml:"rgb"`
}

type rawSheet struct {
	Sprites map[string]rawSprite `yaml:"sprites"`
}

// Load reads a sprite sheet from customPath, or the embedded default sheet
// when customPath is empty.
func Load(customPath string) (*Sheet, error) {
	if customPath == "" {
		return Parse(defaultSheetYAML)
	}

	data, err := os.ReadFile(customPath)
	if err != nil {
		return nil, fmt.Errorf("sprites: cannot read %s: %w", customPath, err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, customPath)
	}
	return sheet, nil
}

// Parse decodes a sprite sheet. Every required sprite must be present.
func Parse(data []byte) (*Sheet, error) {
	var raw rawSheet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("sprites: cannot parse sheet: %w", err)
	}

	sheet := &Sheet{}
	targets := []struct {
		name string
		dst  **Sprite
	}{
		{NameBackground, &sheet.Background},
		{NameBird, &sheet.Bird},
		{NameTopPipe, &sheet.TopPipe},
		{NameBottomPipe, &sheet.BottomPipe},
	}

	for _, tgt := range targets {
		r, ok := raw.Sprites[tgt.name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingSprite, tgt.name)
		}
		s, err := r.decode(tgt.name)
		if err != nil {
			return nil, err
		}
		*tgt.dst = s
	}

	return sheet, nil
}

func (r rawSprite) decode(name string) (*Sprite, error) {
	s := &Sprite{Name: name, Glyph: ' '}

	if r.Glyph != "" {
		if utf8.RuneCountInString(r.Glyph) != 1 {
			return nil, fmt.Errorf("sprites: %s: glyph %q must be a single character", name, r.Glyph)
		}
		s.Glyph, _ = utf8.DecodeRuneInString(r.Glyph)
	}

	var ok bool
	if s.Fg, ok = core.ParseColor(r.Fg); !ok {
		return nil, fmt.Errorf("sprites: %s: unknown fg color %q", name, r.Fg)
	}
	if s.Bg, ok = core.ParseColor(r.Bg); !ok {
		return nil, fmt.Errorf("sprites: %s: unknown bg color %q", name, r.Bg)
	}

	s.RGBA = color.RGBA{A: 0xff}
	if r.RGB != "" {
		c, err := colorful.Hex(r.RGB)
		if err != nil {
			return nil, fmt.Errorf("sprites: %s: %w", name, err)
		}
		s.RGBA.R, s.RGBA.G, s.RGBA.B = c.RGB255()
	}

	return s, nil
}
