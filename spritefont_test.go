package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestSpriteFont builds a 2x2-glyph sprite font in dir: "a" red, "b"
// blue, and "/" mapped to slash.png in green.
func writeTestSpriteFont(t *testing.T, dir string) {
	t.Helper()

	writeGlyph := func(name string, c color.Color) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				img.Set(x, y, c)
			}
		}
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		defer f.Close()
		require.NoError(t, png.Encode(f, img))
	}
	writeGlyph("a.png", RGB(255, 0, 0))
	writeGlyph("b.png", RGB(0, 0, 255))
	writeGlyph("slash.png", RGB(0, 255, 0))

	xml := `<font width="2" height="2" spacing="1">
    <character value="/">slash.png</character>
</font>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "font.xml"), []byte(xml), 0o644))
}

func testSpriteFont(t *testing.T) *SpriteFont {
	t.Helper()
	dir := t.TempDir()
	writeTestSpriteFont(t, dir)
	f, err := LoadSpriteFont(dir)
	require.NoError(t, err)
	return f
}

func TestLoadSpriteFont(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := testSpriteFont(t)
		assert.Equal(t, Size{Width: 2, Height: 2}, f.CharacterSize())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadSpriteFont(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("missing attributes", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "font.xml"), []byte(`<font width="2"/>`), 0o644))
		_, err := LoadSpriteFont(dir)
		assert.Error(t, err)
	})

	t.Run("wrong root element", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "font.xml"), []byte(`<glyphs/>`), 0o644))
		_, err := LoadSpriteFont(dir)
		assert.Error(t, err)
	})
}

func TestSpriteFontMeasure(t *testing.T) {
	f := testSpriteFont(t)

	tests := map[string]struct {
		text string
		want Size
	}{
		"empty":       {text: "", want: Size{}},
		"single":      {text: "a", want: Size{Width: 2, Height: 2}},
		"two glyphs":  {text: "ab", want: Size{Width: 5, Height: 2}},
		"with mapped": {text: "a/b", want: Size{Width: 8, Height: 2}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, f.Measure(test.text))
		})
	}
}

func TestRenderSpriteText(t *testing.T) {
	f := testSpriteFont(t)

	t.Run("glyphs placed with spacing", func(t *testing.T) {
		img, err := Render(NewSpriteText(f, "ab"), 5, 2)
		require.NoError(t, err)

		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(0, 0)))
		assert.Zero(t, alphaAt(img, 2, 0), "spacing stays transparent")
		assertColour(t, [4]uint8{0, 0, 255, 255}, rgba8(img.At(3, 0)))
	})

	t.Run("mapped character", func(t *testing.T) {
		img, err := Render(NewSpriteText(f, "/"), 2, 2)
		require.NoError(t, err)
		assertColour(t, [4]uint8{0, 255, 0, 255}, rgba8(img.At(0, 0)))
	})

	t.Run("missing glyph fails", func(t *testing.T) {
		_, err := Render(NewSpriteText(f, "z"), 10, 10)
		assert.Error(t, err)
	})

	t.Run("content change refits", func(t *testing.T) {
		st := NewSpriteText(f, "a")
		assert.Equal(t, Size{Width: 2, Height: 2}, st.LayoutSpec().Size)

		st.SetContent("ab")
		assert.Equal(t, Size{Width: 5, Height: 2}, st.LayoutSpec().Size)
	})
}
