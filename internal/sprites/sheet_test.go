package sprites

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func TestLoadDefaultSheet(t *testing.T) {
	sheet, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, NameBackground, sheet.Background.Name)
	assert.Equal(t, core.ColorCyan, sheet.Background.Bg)
	assert.Equal(t, '●', sheet.Bird.Glyph)
	assert.Equal(t, core.ColorBrightYellow, sheet.Bird.Fg)
	assert.Equal(t, color.RGBA{R: 0x5e, G: 0xa8, B: 0x3e, A: 0xff}, sheet.TopPipe.RGBA)
	assert.Equal(t, NameBottomPipe, sheet.BottomPipe.Name)
}

func TestParseMissingSprite(t *testing.T) {
	data := []byte(`
sprites:
  background: {bg: blue}
  bird: {glyph: "o"}
  top_pipe: {glyph: "#"}
`)
	_, err := Parse(data)
	require.ErrorIs(t, err, ErrMissingSprite)
	assert.Contains(t, err.Error(), NameBottomPipe)
}

func TestParseRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		bird string
	}{
		{"multi-rune glyph", `{glyph: "oo"}`},
		{"unknown color", `{fg: chartreuse}`},
		{"bad rgb", `{rgb: "#zzzzzz"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := []byte("sprites:\n  background: {}\n  top_pipe: {}\n  bottom_pipe: {}\n  bird: " + tc.bird + "\n")
			_, err := Parse(data)
			assert.Error(t, err)
		})
	}
}

func TestSpriteDefaults(t *testing.T) {
	sheet, err := Parse([]byte("sprites:\n  background: {}\n  bird: {}\n  top_pipe: {}\n  bottom_pipe: {}\n"))
	require.NoError(t, err)

	assert.Equal(t, core.Cell{Rune: ' '}, sheet.Bird.Cell())
	assert.Equal(t, color.RGBA{A: 0xff}, sheet.Bird.RGBA)
}

func TestLoadCustomSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	data := []byte("sprites:\n  background: {}\n  bird: {glyph: \"@\", fg: red}\n  top_pipe: {}\n  bottom_pipe: {}\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	sheet, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, core.Cell{Rune: '@', Fg: core.ColorRed}, sheet.Bird.Cell())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSheetImages(t *testing.T) {
	sheet, err := Load("")
	require.NoError(t, err)

	images := sheet.Images()
	assert.Same(t, sheet.Bird, images.Bird)
	assert.Same(t, sheet.TopPipe, images.TopPipe)

	s, err := flappy.NewSession(config.DefaultFlappyConfig(), images)
	require.NoError(t, err)
	assert.Equal(t, flappy.StatePlaying, s.State())
}
