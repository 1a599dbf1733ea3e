package scene

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font is a TrueType/OpenType font at a fixed pixel size.
type Font struct {
	face font.Face
}

// NewFont creates a font from raw TTF/OTF data at the given pixel size.
func NewFont(data []byte, sizePx float64) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: parsing font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72, // 1pt = 1px so Size is in pixels
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("scene: creating font face: %w", err)
	}
	return &Font{face: face}, nil
}

// LoadFont reads a TTF/OTF file and creates a font at the given pixel size.
func LoadFont(path string, sizePx float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading font %q: %w", path, err)
	}
	return NewFont(data, sizePx)
}

// Measure returns the size of a single line of text drawn with this font.
func (f *Font) Measure(s string) Size {
	width := font.MeasureString(f.face, s)
	m := f.face.Metrics()
	return Size{
		Width:  fixedToFloat(width),
		Height: fixedToFloat(m.Ascent + m.Descent),
	}
}

func (f *Font) lineHeight() float64 {
	m := f.face.Metrics()
	return fixedToFloat(m.Ascent + m.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// TextMode specifies how text fits its drawable.
type TextMode uint8

const (
	// TextSingleLine draws the text on one line, auto-sizing the drawable
	// to fit it (default).
	TextSingleLine TextMode = iota
	// TextSquish draws on one line, auto-sizing only the height and
	// compressing the text horizontally if it exceeds the authored width.
	TextSquish
	// TextWrap wraps the text to the authored width.
	TextWrap
)

// Text is a node that draws a string with a [Font]. Its anchor doubles as
// the alignment of the text inside the drawable when they differ in size.
type Text struct {
	Drawable

	font        *Font
	content     string
	colour      color.Color
	mode        TextMode
	lineSpacing float64
}

// NewText creates a text node drawing content with the given font.
// The default colour is white and the default mode is [TextSingleLine].
func NewText(f *Font, content string, opts ...Option) *Text {
	t := &Text{
		Drawable: newDrawable(),
		font:     f,
		content:  content,
		colour:   color.White,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.updateSize()
	return t
}

// Content returns the displayed string.
func (t *Text) Content() string { return t.content }

// SetContent replaces the displayed string, re-fitting the drawable in
// single-line and squish modes.
func (t *Text) SetContent(s string) {
	t.content = s
	t.updateSize()
	t.MarkDirty()
}

// Colour returns the colour text is drawn with.
func (t *Text) Colour() color.Color { return t.colour }

// SetColour sets the colour text is drawn with.
func (t *Text) SetColour(c color.Color) {
	t.colour = c
	t.MarkDirty()
}

// Mode returns how the text fits its drawable.
func (t *Text) Mode() TextMode { return t.mode }

// SetMode sets how the text fits its drawable.
func (t *Text) SetMode(m TextMode) {
	t.mode = m
	t.updateSize()
	t.MarkDirty()
}

// LineSpacing returns the vertical space between wrapped lines.
func (t *Text) LineSpacing() float64 { return t.lineSpacing }

// SetLineSpacing sets the vertical space between wrapped lines. Only used in
// [TextWrap] mode.
func (t *Text) SetLineSpacing(px float64) {
	t.lineSpacing = px
	t.MarkDirty()
}

// updateSize fits the drawable to the measured text. Wrap mode keeps the
// authored size; squish mode only adopts the measured height.
func (t *Text) updateSize() {
	if t.font == nil || t.content == "" || t.mode == TextWrap {
		return
	}
	measured := t.font.Measure(t.content)
	switch t.mode {
	case TextSingleLine:
		t.spec.Size = measured
	case TextSquish:
		t.spec.Size.Height = measured.Height
	}
}

// wrapLines breaks content into lines no wider than width, splitting on
// whitespace. A single word wider than the limit gets its own line rather
// than being broken mid-word.
func (t *Text) wrapLines(width float64) []string {
	words := strings.Fields(t.content)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if t.font.Measure(candidate).Width > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// lineImage rasterizes a single line of text at its measured size.
func (t *Text) lineImage(s string) *image.RGBA {
	size := t.font.Measure(s)
	img := image.NewRGBA(image.Rect(0, 0, ceilPositive(size.Width), ceilPositive(size.Height)))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.colour),
		Face: t.font.face,
		Dot:  fixed.Point26_6{Y: t.font.face.Metrics().Ascent},
	}
	d.DrawString(s)
	return img
}
